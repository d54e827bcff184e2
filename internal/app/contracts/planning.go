package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
)

type WeeklyPlanRepository interface {
	UpsertPlanByDay(ctx context.Context, plan *models.WeeklyPlan) error
	FindPlans(ctx context.Context) ([]models.WeeklyPlan, error)
}

type WeeklyPlanUsecase interface {
	UpsertPlanning(ctx context.Context, request *requests.UpsertWeeklyPlanning) ([]models.WeeklyPlan, error)
	FindPlanning(ctx context.Context) ([]models.WeeklyPlan, error)
}
