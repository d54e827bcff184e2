package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type NextStepRepository interface {
	UpsertNextStep(ctx context.Context, step *models.PatientNextStep) error
	FindNextStepByPatientID(ctx context.Context, patientID string) (*models.PatientNextStep, error)
	DeleteNextStepByPatientID(ctx context.Context, patientID string) error
}

type NextStepUsecase interface {
	UpsertNextStep(ctx context.Context, request *requests.UpsertNextStep) (*models.PatientNextStep, error)
	FindNextStep(ctx context.Context, patientID string) (*models.PatientNextStep, error)
	DeleteNextStep(ctx context.Context, patientID string) error
	Evaluations(ctx context.Context, patientID string) ([]responses.EvaluationEntry, error)
}
