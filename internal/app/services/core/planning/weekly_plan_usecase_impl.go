package planning

import (
	"context"
	"sync"
	"time"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
)

type weeklyPlanUsecase struct {
	PlanRepository contracts.WeeklyPlanRepository
}

var (
	weeklyPlanUsecaseInstance contracts.WeeklyPlanUsecase
	onceWeeklyPlanUsecase     sync.Once
)

func NewWeeklyPlanUsecase(planRepository contracts.WeeklyPlanRepository) contracts.WeeklyPlanUsecase {
	onceWeeklyPlanUsecase.Do(func() {
		weeklyPlanUsecaseInstance = &weeklyPlanUsecase{PlanRepository: planRepository}
	})
	return weeklyPlanUsecaseInstance
}

func (uc *weeklyPlanUsecase) UpsertPlanning(ctx context.Context, request *requests.UpsertWeeklyPlanning) ([]models.WeeklyPlan, error) {
	now := time.Now()
	for _, entry := range request.Days {
		plan := &models.WeeklyPlan{
			DayOfWeek: entry.DayOfWeek,
			Breakfast: entry.Breakfast,
			Lunch:     entry.Lunch,
			Dinner:    entry.Dinner,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if err := uc.PlanRepository.UpsertPlanByDay(ctx, plan); err != nil {
			return nil, err
		}
	}
	return uc.PlanRepository.FindPlans(ctx)
}

func (uc *weeklyPlanUsecase) FindPlanning(ctx context.Context) ([]models.WeeklyPlan, error) {
	return uc.PlanRepository.FindPlans(ctx)
}
