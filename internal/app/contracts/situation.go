package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
)

type SituationRepository interface {
	CreateSituation(ctx context.Context, situation *models.DifficultSituation) (string, error)
	FindSituationByID(ctx context.Context, situationID string) (*models.DifficultSituation, error)
	FindSituations(ctx context.Context) ([]models.DifficultSituation, error)
	UpdateSituation(ctx context.Context, situation *models.DifficultSituation) error
	DeleteSituationByID(ctx context.Context, situationID string) error
}

type SituationUsecase interface {
	CreateSituation(ctx context.Context, request *requests.CreateSituation) (*models.DifficultSituation, error)
	FindSituations(ctx context.Context) ([]models.DifficultSituation, error)
	UpdateSituation(ctx context.Context, request *requests.UpdateSituation) (*models.DifficultSituation, error)
	DeleteSituation(ctx context.Context, situationID string) error
}
