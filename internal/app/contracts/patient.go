package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
)

type PatientUsecase interface {
	FindPatients(ctx context.Context) ([]models.User, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.User, error)
}
