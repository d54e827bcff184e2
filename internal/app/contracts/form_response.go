package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type FormResponseRepository interface {
	UpsertResponse(ctx context.Context, response *models.FormResponse) (string, error)
	FindResponse(ctx context.Context, patientID, templateID string) (*models.FormResponse, error)
	FindResponsesByTemplateID(ctx context.Context, templateID string) ([]models.FormResponse, error)
	FindResponsesByPatientID(ctx context.Context, patientID string) ([]models.FormResponse, error)
	DeleteResponsesByTemplateID(ctx context.Context, templateID string) error
}

type FormResponseUsecase interface {
	RenderForm(ctx context.Context, request *requests.RenderForm) (*responses.RenderForm, error)
	SubmitResponse(ctx context.Context, request *requests.SubmitFormResponse) (*responses.SubmitFormResult, error)
	FindResponse(ctx context.Context, request *requests.FindResponse) (*models.FormResponse, error)
	TemplateCompletion(ctx context.Context, templateID string) ([]responses.PatientCompletion, error)
}
