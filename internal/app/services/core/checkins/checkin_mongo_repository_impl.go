package checkins

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

type CheckinMongoRepository struct {
	Collection *mongo.Collection
}

func NewCheckinMongoRepository(db *mongo.Client, dbName string) contracts.CheckinRepository {
	return &CheckinMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCheckins),
	}
}

func (r *CheckinMongoRepository) CreateCheckin(ctx context.Context, checkin *models.Checkin) (string, error) {
	result, err := r.Collection.InsertOne(ctx, checkin)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *CheckinMongoRepository) FindCheckinsByPatientID(ctx context.Context, patientID string) ([]models.Checkin, error) {
	return r.findCheckins(ctx, bson.M{"patientId": patientID})
}

func (r *CheckinMongoRepository) FindCheckins(ctx context.Context) ([]models.Checkin, error) {
	return r.findCheckins(ctx, bson.M{})
}

func (r *CheckinMongoRepository) findCheckins(ctx context.Context, filter bson.M) ([]models.Checkin, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var checkins []models.Checkin
	if err := cursor.All(ctx, &checkins); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return checkins, nil
}
