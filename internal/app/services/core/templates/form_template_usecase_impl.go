package templates

import (
	"context"
	"errors"
	"sync"
	"time"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type formTemplateUsecase struct {
	TemplateRepository contracts.FormTemplateRepository
	ResponseRepository contracts.FormResponseRepository
	Log                *zap.Logger
}

var (
	formTemplateUsecaseInstance contracts.FormTemplateUsecase
	onceFormTemplateUsecase     sync.Once
)

func NewFormTemplateUsecase(
	templateRepository contracts.FormTemplateRepository,
	responseRepository contracts.FormResponseRepository,
	logger *zap.Logger,
) contracts.FormTemplateUsecase {
	onceFormTemplateUsecase.Do(func() {
		formTemplateUsecaseInstance = &formTemplateUsecase{
			TemplateRepository: templateRepository,
			ResponseRepository: responseRepository,
			Log:                logger,
		}
	})
	return formTemplateUsecaseInstance
}

func (uc *formTemplateUsecase) CreateForm(ctx context.Context, request *requests.CreateFormTemplate) (*models.FormTemplate, error) {
	if err := request.Schema.Validate(); err != nil {
		return nil, exceptions.ErrSchemaIntegrity(err)
	}
	if err := uc.ensureSlugFree(ctx, request.Slug); err != nil {
		return nil, err
	}

	template := uc.buildTemplate(request.Slug, request.Title, request.Description, request.Schema, request.Activate, request.OrderIndex)
	return uc.persistNewTemplate(ctx, template)
}

func (uc *formTemplateUsecase) CreateTest(ctx context.Context, request *requests.CreateTestTemplate) (*models.FormTemplate, error) {
	if err := request.Schema.Validate(); err != nil {
		return nil, exceptions.ErrSchemaIntegrity(err)
	}
	if err := validateTestSchema(&request.Schema); err != nil {
		return nil, exceptions.ErrSchemaIntegrity(err)
	}
	if err := uc.ensureSlugFree(ctx, request.Slug); err != nil {
		return nil, err
	}

	// Tests go live on creation, there is no draft stage for them.
	template := uc.buildTemplate(request.Slug, request.Title, request.Description, request.Schema, true, request.OrderIndex)
	return uc.persistNewTemplate(ctx, template)
}

func (uc *formTemplateUsecase) FindTemplates(ctx context.Context, activeOnly bool) ([]models.FormTemplate, error) {
	return uc.TemplateRepository.FindTemplates(ctx, activeOnly)
}

func (uc *formTemplateUsecase) FindTemplateByID(ctx context.Context, templateID string) (*models.FormTemplate, error) {
	template, err := uc.TemplateRepository.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrFormTemplateNotFound(nil)
	}
	return template, nil
}

func (uc *formTemplateUsecase) FindTemplateBySlug(ctx context.Context, slug string) (*models.FormTemplate, error) {
	template, err := uc.TemplateRepository.FindTemplateBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrFormTemplateNotFound(nil)
	}
	return template, nil
}

// UpdateTemplate replaces the stored schema wholesale and always demotes the
// template back to draft, so edits never reach patients before an explicit
// re-publish.
func (uc *formTemplateUsecase) UpdateTemplate(ctx context.Context, request *requests.UpdateFormTemplate) (*models.FormTemplate, error) {
	if err := request.Schema.Validate(); err != nil {
		return nil, exceptions.ErrSchemaIntegrity(err)
	}

	template, err := uc.FindTemplateByID(ctx, request.TemplateID)
	if err != nil {
		return nil, err
	}

	template.Title = request.Title
	template.Description = request.Description
	template.Schema = request.Schema
	template.OrderIndex = request.OrderIndex
	template.IsActive = false
	template.UpdatedAt = time.Now()

	if err := uc.TemplateRepository.UpdateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

func (uc *formTemplateUsecase) PublishTemplate(ctx context.Context, templateID string) (*models.FormTemplate, error) {
	template, err := uc.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	template.IsActive = true
	template.UpdatedAt = time.Now()

	if err := uc.TemplateRepository.UpdateTemplate(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// DeleteTemplate removes every response submitted against the template
// before the template itself. Responses go first: a failed cascade leaves
// the template in place, so the delete stays retryable and no answers end
// up orphaned behind a missing template.
func (uc *formTemplateUsecase) DeleteTemplate(ctx context.Context, templateID string) error {
	template, err := uc.FindTemplateByID(ctx, templateID)
	if err != nil {
		return err
	}

	if err := uc.ResponseRepository.DeleteResponsesByTemplateID(ctx, template.ID); err != nil {
		return err
	}
	return uc.TemplateRepository.DeleteTemplateByID(ctx, template.ID)
}

func (uc *formTemplateUsecase) ExportTemplates(ctx context.Context) ([]models.FormTemplate, error) {
	return uc.TemplateRepository.FindTemplates(ctx, false)
}

// ImportTemplates upserts by slug: an existing slug gets its content
// replaced in place, an unknown slug becomes a fresh template. Incoming ids
// are discarded either way.
func (uc *formTemplateUsecase) ImportTemplates(ctx context.Context, request *requests.ImportTemplates) (*responses.ImportTemplatesResult, error) {
	for i := range request.Templates {
		if err := request.Templates[i].Schema.Validate(); err != nil {
			return nil, exceptions.ErrSchemaIntegrity(err)
		}
	}

	result := new(responses.ImportTemplatesResult)
	for _, entry := range request.Templates {
		existing, err := uc.TemplateRepository.FindTemplateBySlug(ctx, entry.Slug)
		if err != nil {
			return nil, err
		}

		if existing == nil {
			template := uc.buildTemplate(entry.Slug, entry.Title, entry.Description, entry.Schema, entry.IsActive, entry.OrderIndex)
			if _, err := uc.TemplateRepository.CreateTemplate(ctx, template); err != nil {
				return nil, err
			}
			result.Created++
			continue
		}

		existing.Title = entry.Title
		existing.Description = entry.Description
		existing.Schema = entry.Schema
		existing.IsActive = entry.IsActive
		existing.OrderIndex = entry.OrderIndex
		existing.UpdatedAt = time.Now()
		if err := uc.TemplateRepository.UpdateTemplate(ctx, existing); err != nil {
			return nil, err
		}
		result.Updated++
	}

	uc.Log.Info("templates imported",
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
	)
	return result, nil
}

func (uc *formTemplateUsecase) ensureSlugFree(ctx context.Context, slug string) error {
	existing, err := uc.TemplateRepository.FindTemplateBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if existing != nil {
		return exceptions.ErrSlugAlreadyExists(nil)
	}
	return nil
}

func (uc *formTemplateUsecase) buildTemplate(slug, title, description string, schema models.FormSchema, isActive bool, orderIndex int) *models.FormTemplate {
	now := time.Now()
	return &models.FormTemplate{
		Slug:        slug,
		Title:       title,
		Description: description,
		Schema:      schema,
		IsActive:    isActive,
		OrderIndex:  orderIndex,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

func (uc *formTemplateUsecase) persistNewTemplate(ctx context.Context, template *models.FormTemplate) (*models.FormTemplate, error) {
	templateID, err := uc.TemplateRepository.CreateTemplate(ctx, template)
	if err != nil {
		return nil, err
	}
	template.ID = templateID
	return template, nil
}

// validateTestSchema enforces the scored-evaluation shape: every question is
// a radio with a score on each option, and the scoring block resolves to at
// least one result range.
func validateTestSchema(schema *models.FormSchema) error {
	for _, field := range schema.AllFields() {
		if field.Type != models.FieldTypeRadio {
			return errors.New("test question " + field.Key + " must be of type " + models.FieldTypeRadio)
		}
		for _, option := range field.Options {
			if option.Score == nil {
				return errors.New("test option " + option.Value + " of field " + field.Key + " has no score")
			}
		}
	}
	if schema.Scoring == nil || !schema.Scoring.Enabled || len(schema.Scoring.Results) == 0 {
		return errors.New("test schema requires enabled scoring with at least one result range")
	}
	return nil
}
