package planning

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

type WeeklyPlanMongoRepository struct {
	Collection *mongo.Collection
}

func NewWeeklyPlanMongoRepository(db *mongo.Client, dbName string) contracts.WeeklyPlanRepository {
	return &WeeklyPlanMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionWeeklyPlanning),
	}
}

// UpsertPlanByDay keys on dayOfWeek: one document per weekday, replaced on
// every save.
func (r *WeeklyPlanMongoRepository) UpsertPlanByDay(ctx context.Context, plan *models.WeeklyPlan) error {
	filter := bson.M{"dayOfWeek": plan.DayOfWeek}
	update := bson.M{
		"$set": bson.M{
			"breakfast": plan.Breakfast,
			"lunch":     plan.Lunch,
			"dinner":    plan.Dinner,
			"updatedAt": plan.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"dayOfWeek": plan.DayOfWeek,
			"createdAt": plan.CreatedAt,
		},
	}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *WeeklyPlanMongoRepository) FindPlans(ctx context.Context) ([]models.WeeklyPlan, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "dayOfWeek", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var plans []models.WeeklyPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return plans, nil
}
