package responses

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

type FormResponseMongoRepository struct {
	Collection *mongo.Collection
}

func NewFormResponseMongoRepository(db *mongo.Client, dbName string) contracts.FormResponseRepository {
	return &FormResponseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionFormResponses),
	}
}

// UpsertResponse writes the (patientId, templateId) response in a single
// UpdateOne so concurrent submissions cannot produce duplicates. submittedAt
// is only written on insert and never moves afterwards.
func (r *FormResponseMongoRepository) UpsertResponse(ctx context.Context, response *models.FormResponse) (string, error) {
	filter := bson.M{
		"patientId":  response.PatientID,
		"templateId": response.TemplateID,
	}
	update := bson.M{
		"$set": bson.M{
			"answers":    response.Answers,
			"totalScore": response.TotalScore,
			"updatedAt":  response.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"patientId":   response.PatientID,
			"templateId":  response.TemplateID,
			"submittedAt": response.SubmittedAt,
		},
	}

	result, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return "", exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.UpsertedID != nil {
		return result.UpsertedID.(primitive.ObjectID).Hex(), nil
	}

	existing, err := r.FindResponse(ctx, response.PatientID, response.TemplateID)
	if err != nil {
		return "", err
	}
	if existing == nil {
		return "", nil
	}
	return existing.ID, nil
}

func (r *FormResponseMongoRepository) FindResponse(ctx context.Context, patientID, templateID string) (*models.FormResponse, error) {
	var response models.FormResponse
	filter := bson.M{
		"patientId":  patientID,
		"templateId": templateID,
	}
	err := r.Collection.FindOne(ctx, filter).Decode(&response)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &response, nil
}

func (r *FormResponseMongoRepository) FindResponsesByTemplateID(ctx context.Context, templateID string) ([]models.FormResponse, error) {
	return r.findResponses(ctx, bson.M{"templateId": templateID})
}

func (r *FormResponseMongoRepository) FindResponsesByPatientID(ctx context.Context, patientID string) ([]models.FormResponse, error) {
	return r.findResponses(ctx, bson.M{"patientId": patientID})
}

func (r *FormResponseMongoRepository) DeleteResponsesByTemplateID(ctx context.Context, templateID string) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{"templateId": templateID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}

func (r *FormResponseMongoRepository) findResponses(ctx context.Context, filter bson.M) ([]models.FormResponse, error) {
	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var responses []models.FormResponse
	if err := cursor.All(ctx, &responses); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return responses, nil
}
