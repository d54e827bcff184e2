package nextsteps

import (
	"context"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NextStepMongoRepository struct {
	Collection *mongo.Collection
}

func NewNextStepMongoRepository(db *mongo.Client, dbName string) contracts.NextStepRepository {
	return &NextStepMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatientNextSteps),
	}
}

// UpsertNextStep keeps a single pointer document per patient.
func (r *NextStepMongoRepository) UpsertNextStep(ctx context.Context, step *models.PatientNextStep) error {
	filter := bson.M{"patientId": step.PatientID}
	update := bson.M{
		"$set": bson.M{
			"nextStepSlug":  step.NextStepSlug,
			"nextStepTitle": step.NextStepTitle,
			"nextStepUrl":   step.NextStepURL,
			"available":     step.Available,
			"availableFrom": step.AvailableFrom,
			"updatedAt":     step.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"patientId": step.PatientID,
			"createdAt": step.CreatedAt,
		},
	}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *NextStepMongoRepository) FindNextStepByPatientID(ctx context.Context, patientID string) (*models.PatientNextStep, error) {
	var step models.PatientNextStep
	err := r.Collection.FindOne(ctx, bson.M{"patientId": patientID}).Decode(&step)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &step, nil
}

func (r *NextStepMongoRepository) DeleteNextStepByPatientID(ctx context.Context, patientID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
