package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
)

type CheckinRepository interface {
	CreateCheckin(ctx context.Context, checkin *models.Checkin) (string, error)
	FindCheckinsByPatientID(ctx context.Context, patientID string) ([]models.Checkin, error)
	FindCheckins(ctx context.Context) ([]models.Checkin, error)
}

type CheckinUsecase interface {
	SubmitCheckin(ctx context.Context, request *requests.CreateCheckin) (*models.Checkin, error)
	FindCheckinsByPatientID(ctx context.Context, patientID string) ([]models.Checkin, error)
	FindCheckins(ctx context.Context) ([]models.Checkin, error)
}
