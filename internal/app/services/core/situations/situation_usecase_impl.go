package situations

import (
	"context"
	"sync"
	"time"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"
)

type situationUsecase struct {
	SituationRepository contracts.SituationRepository
}

var (
	situationUsecaseInstance contracts.SituationUsecase
	onceSituationUsecase     sync.Once
)

func NewSituationUsecase(situationRepository contracts.SituationRepository) contracts.SituationUsecase {
	onceSituationUsecase.Do(func() {
		situationUsecaseInstance = &situationUsecase{SituationRepository: situationRepository}
	})
	return situationUsecaseInstance
}

func (uc *situationUsecase) CreateSituation(ctx context.Context, request *requests.CreateSituation) (*models.DifficultSituation, error) {
	now := time.Now()
	situation := &models.DifficultSituation{
		Category:  request.Category,
		Title:     request.Title,
		Tips:      request.Tips,
		SortOrder: request.SortOrder,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	situationID, err := uc.SituationRepository.CreateSituation(ctx, situation)
	if err != nil {
		return nil, err
	}
	situation.ID = situationID
	return situation, nil
}

func (uc *situationUsecase) FindSituations(ctx context.Context) ([]models.DifficultSituation, error) {
	return uc.SituationRepository.FindSituations(ctx)
}

func (uc *situationUsecase) UpdateSituation(ctx context.Context, request *requests.UpdateSituation) (*models.DifficultSituation, error) {
	situation, err := uc.SituationRepository.FindSituationByID(ctx, request.SituationID)
	if err != nil {
		return nil, err
	}
	if situation == nil {
		return nil, exceptions.ErrSituationNotFound(nil)
	}

	situation.Category = request.Category
	situation.Title = request.Title
	situation.Tips = request.Tips
	situation.SortOrder = request.SortOrder
	situation.UpdatedAt = time.Now()

	if err := uc.SituationRepository.UpdateSituation(ctx, situation); err != nil {
		return nil, err
	}
	return situation, nil
}

func (uc *situationUsecase) DeleteSituation(ctx context.Context, situationID string) error {
	situation, err := uc.SituationRepository.FindSituationByID(ctx, situationID)
	if err != nil {
		return err
	}
	if situation == nil {
		return exceptions.ErrSituationNotFound(nil)
	}
	return uc.SituationRepository.DeleteSituationByID(ctx, situationID)
}
