package templates

import (
	"context"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FormTemplateMongoRepository struct {
	Collection *mongo.Collection
}

func NewFormTemplateMongoRepository(db *mongo.Client, dbName string) contracts.FormTemplateRepository {
	return &FormTemplateMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFormTemplates),
	}
}

func (r *FormTemplateMongoRepository) CreateTemplate(ctx context.Context, template *models.FormTemplate) (string, error) {
	result, err := r.Collection.InsertOne(ctx, template)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *FormTemplateMongoRepository) FindTemplateByID(ctx context.Context, templateID string) (*models.FormTemplate, error) {
	objectID, err := primitive.ObjectIDFromHex(templateID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var template models.FormTemplate
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &template, nil
}

func (r *FormTemplateMongoRepository) FindTemplateBySlug(ctx context.Context, slug string) (*models.FormTemplate, error) {
	var template models.FormTemplate
	err := r.Collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &template, nil
}

func (r *FormTemplateMongoRepository) FindTemplates(ctx context.Context, activeOnly bool) ([]models.FormTemplate, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "orderIndex", Value: 1},
		{Key: "createdAt", Value: 1},
	})

	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var templates []models.FormTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return templates, nil
}

func (r *FormTemplateMongoRepository) UpdateTemplate(ctx context.Context, template *models.FormTemplate) error {
	objectID, err := primitive.ObjectIDFromHex(template.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"title":       template.Title,
		"description": template.Description,
		"schema":      template.Schema,
		"isActive":    template.IsActive,
		"orderIndex":  template.OrderIndex,
		"updatedAt":   template.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *FormTemplateMongoRepository) DeleteTemplateByID(ctx context.Context, templateID string) error {
	objectID, err := primitive.ObjectIDFromHex(templateID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
