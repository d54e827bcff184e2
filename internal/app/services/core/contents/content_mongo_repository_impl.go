package contents

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

type ScreenTextMongoRepository struct {
	Collection *mongo.Collection
}

func NewScreenTextMongoRepository(db *mongo.Client, dbName string) contracts.ScreenTextRepository {
	return &ScreenTextMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionScreenTexts),
	}
}

func (r *ScreenTextMongoRepository) UpsertScreenText(ctx context.Context, text *models.ScreenText) error {
	filter := bson.M{"screenKey": text.ScreenKey}
	update := bson.M{
		"$set": bson.M{
			"title":     text.Title,
			"content":   text.Content,
			"updatedAt": text.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"screenKey": text.ScreenKey,
			"createdAt": text.CreatedAt,
		},
	}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ScreenTextMongoRepository) FindScreenTextByKey(ctx context.Context, screenKey string) (*models.ScreenText, error) {
	var text models.ScreenText
	err := r.Collection.FindOne(ctx, bson.M{"screenKey": screenKey}).Decode(&text)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &text, nil
}

func (r *ScreenTextMongoRepository) FindScreenTexts(ctx context.Context) ([]models.ScreenText, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "screenKey", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var texts []models.ScreenText
	if err := cursor.All(ctx, &texts); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return texts, nil
}

type ContentFileMongoRepository struct {
	Collection *mongo.Collection
}

func NewContentFileMongoRepository(db *mongo.Client, dbName string) contracts.ContentFileRepository {
	return &ContentFileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionContentFiles),
	}
}

func (r *ContentFileMongoRepository) CreateFile(ctx context.Context, file *models.ContentFile) (string, error) {
	result, err := r.Collection.InsertOne(ctx, file)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ContentFileMongoRepository) FindFileByID(ctx context.Context, fileID string) (*models.ContentFile, error) {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var file models.ContentFile
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&file)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &file, nil
}

func (r *ContentFileMongoRepository) FindFiles(ctx context.Context) ([]models.ContentFile, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var files []models.ContentFile
	if err := cursor.All(ctx, &files); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return files, nil
}

func (r *ContentFileMongoRepository) DeleteFileByID(ctx context.Context, fileID string) error {
	objectID, err := primitive.ObjectIDFromHex(fileID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
