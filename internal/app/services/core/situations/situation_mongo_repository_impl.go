package situations

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

type SituationMongoRepository struct {
	Collection *mongo.Collection
}

func NewSituationMongoRepository(db *mongo.Client, dbName string) contracts.SituationRepository {
	return &SituationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDifficultSituations),
	}
}

func (r *SituationMongoRepository) CreateSituation(ctx context.Context, situation *models.DifficultSituation) (string, error) {
	result, err := r.Collection.InsertOne(ctx, situation)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *SituationMongoRepository) FindSituationByID(ctx context.Context, situationID string) (*models.DifficultSituation, error) {
	objectID, err := primitive.ObjectIDFromHex(situationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	var situation models.DifficultSituation
	err = r.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&situation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &situation, nil
}

func (r *SituationMongoRepository) FindSituations(ctx context.Context) ([]models.DifficultSituation, error) {
	findOptions := options.Find().SetSort(bson.D{
		{Key: "category", Value: 1},
		{Key: "sortOrder", Value: 1},
	})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var situations []models.DifficultSituation
	if err := cursor.All(ctx, &situations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return situations, nil
}

func (r *SituationMongoRepository) UpdateSituation(ctx context.Context, situation *models.DifficultSituation) error {
	objectID, err := primitive.ObjectIDFromHex(situation.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{"$set": bson.M{
		"category":  situation.Category,
		"title":     situation.Title,
		"tips":      situation.Tips,
		"sortOrder": situation.SortOrder,
		"updatedAt": situation.UpdatedAt,
	}}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *SituationMongoRepository) DeleteSituationByID(ctx context.Context, situationID string) error {
	objectID, err := primitive.ObjectIDFromHex(situationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
