package messages

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

type DoctorMessageMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMessageMongoRepository(db *mongo.Client, dbName string) contracts.DoctorMessageRepository {
	return &DoctorMessageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctorMessages),
	}
}

func (r *DoctorMessageMongoRepository) CreateMessage(ctx context.Context, message *models.DoctorMessage) (string, error) {
	result, err := r.Collection.InsertOne(ctx, message)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *DoctorMessageMongoRepository) FindMessageByID(ctx context.Context, messageID string) (*models.DoctorMessage, error) {
	objectID, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var message models.DoctorMessage
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &message, nil
}

func (r *DoctorMessageMongoRepository) FindMessages(ctx context.Context) ([]models.DoctorMessage, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var messages []models.DoctorMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return messages, nil
}

func (r *DoctorMessageMongoRepository) FindLatestActiveMessage(ctx context.Context) (*models.DoctorMessage, error) {
	findOptions := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	var message models.DoctorMessage
	err := r.Collection.FindOne(ctx, bson.M{"isActive": true}, findOptions).Decode(&message)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &message, nil
}

func (r *DoctorMessageMongoRepository) UpdateMessage(ctx context.Context, message *models.DoctorMessage) error {
	objectID, err := primitive.ObjectIDFromHex(message.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"content":   message.Content,
		"audioUrl":  message.AudioURL,
		"isActive":  message.IsActive,
		"updatedAt": message.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *DoctorMessageMongoRepository) DeleteMessageByID(ctx context.Context, messageID string) error {
	objectID, err := primitive.ObjectIDFromHex(messageID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
