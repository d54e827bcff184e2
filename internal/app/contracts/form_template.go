package contracts

import (
	"context"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
)

type FormTemplateRepository interface {
	CreateTemplate(ctx context.Context, template *models.FormTemplate) (string, error)
	FindTemplateByID(ctx context.Context, templateID string) (*models.FormTemplate, error)
	FindTemplateBySlug(ctx context.Context, slug string) (*models.FormTemplate, error)
	FindTemplates(ctx context.Context, activeOnly bool) ([]models.FormTemplate, error)
	UpdateTemplate(ctx context.Context, template *models.FormTemplate) error
	DeleteTemplateByID(ctx context.Context, templateID string) error
}

type FormTemplateUsecase interface {
	CreateForm(ctx context.Context, request *requests.CreateFormTemplate) (*models.FormTemplate, error)
	CreateTest(ctx context.Context, request *requests.CreateTestTemplate) (*models.FormTemplate, error)
	FindTemplates(ctx context.Context, activeOnly bool) ([]models.FormTemplate, error)
	FindTemplateByID(ctx context.Context, templateID string) (*models.FormTemplate, error)
	FindTemplateBySlug(ctx context.Context, slug string) (*models.FormTemplate, error)
	UpdateTemplate(ctx context.Context, request *requests.UpdateFormTemplate) (*models.FormTemplate, error)
	PublishTemplate(ctx context.Context, templateID string) (*models.FormTemplate, error)
	DeleteTemplate(ctx context.Context, templateID string) error
	ExportTemplates(ctx context.Context) ([]models.FormTemplate, error)
	ImportTemplates(ctx context.Context, request *requests.ImportTemplates) (*responses.ImportTemplatesResult, error)
}
