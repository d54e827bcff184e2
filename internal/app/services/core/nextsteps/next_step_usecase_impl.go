package nextsteps

import (
	"context"
	"strings"
	"sync"
	"time"

	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/scoring"
)

type nextStepUsecase struct {
	NextStepRepository contracts.NextStepRepository
	TemplateRepository contracts.FormTemplateRepository
	ResponseRepository contracts.FormResponseRepository
}

var (
	nextStepUsecaseInstance contracts.NextStepUsecase
	onceNextStepUsecase     sync.Once
)

func NewNextStepUsecase(
	nextStepRepository contracts.NextStepRepository,
	templateRepository contracts.FormTemplateRepository,
	responseRepository contracts.FormResponseRepository,
) contracts.NextStepUsecase {
	onceNextStepUsecase.Do(func() {
		nextStepUsecaseInstance = &nextStepUsecase{
			NextStepRepository: nextStepRepository,
			TemplateRepository: templateRepository,
			ResponseRepository: responseRepository,
		}
	})
	return nextStepUsecaseInstance
}

func (uc *nextStepUsecase) UpsertNextStep(ctx context.Context, request *requests.UpsertNextStep) (*models.PatientNextStep, error) {
	var availableFrom *time.Time
	if request.AvailableFrom != "" {
		parsed, err := time.Parse(time.RFC3339, request.AvailableFrom)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		availableFrom = &parsed
	}

	// A "form:" slug must point at an existing template, otherwise patients
	// would be sent to a dead evaluation.
	if formSlug, ok := strings.CutPrefix(request.NextStepSlug, constvars.NextStepFormPrefix); ok {
		template, err := uc.TemplateRepository.FindTemplateBySlug(ctx, formSlug)
		if err != nil {
			return nil, err
		}
		if template == nil {
			return nil, exceptions.ErrFormTemplateNotFound(nil)
		}
	}

	now := time.Now()
	step := &models.PatientNextStep{
		PatientID:     request.PatientID,
		NextStepSlug:  request.NextStepSlug,
		NextStepTitle: request.NextStepTitle,
		NextStepURL:   request.NextStepURL,
		Available:     request.Available,
		AvailableFrom: availableFrom,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := uc.NextStepRepository.UpsertNextStep(ctx, step); err != nil {
		return nil, err
	}
	return step, nil
}

// FindNextStep returns the patient's pointer with the availability window
// already applied, so callers never see a step as available before its time.
func (uc *nextStepUsecase) FindNextStep(ctx context.Context, patientID string) (*models.PatientNextStep, error) {
	step, err := uc.NextStepRepository.FindNextStepByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if step == nil {
		return nil, nil
	}
	step.Available = step.EffectiveAvailable(time.Now())
	return step, nil
}

func (uc *nextStepUsecase) DeleteNextStep(ctx context.Context, patientID string) error {
	return uc.NextStepRepository.DeleteNextStepByPatientID(ctx, patientID)
}

// Evaluations lists the active scored templates for the patient: which are
// open, and which they already completed. A pending next-step window on a
// "form:" pointer keeps that one evaluation closed.
func (uc *nextStepUsecase) Evaluations(ctx context.Context, patientID string) ([]responses.EvaluationEntry, error) {
	templates, err := uc.TemplateRepository.FindTemplates(ctx, true)
	if err != nil {
		return nil, err
	}
	submitted, err := uc.ResponseRepository.FindResponsesByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	step, err := uc.NextStepRepository.FindNextStepByPatientID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	completedTemplates := make(map[string]bool, len(submitted))
	for _, response := range submitted {
		completedTemplates[response.TemplateID] = true
	}

	gatedSlug := ""
	if step != nil && !step.EffectiveAvailable(time.Now()) {
		gatedSlug = strings.TrimPrefix(step.NextStepSlug, constvars.NextStepFormPrefix)
	}

	entries := make([]responses.EvaluationEntry, 0, len(templates))
	for i := range templates {
		template := &templates[i]
		if !scoring.HasScoringEnabled(&template.Schema) {
			continue
		}
		entries = append(entries, responses.EvaluationEntry{
			Slug:      template.Slug,
			Title:     template.Title,
			Available: template.Slug != gatedSlug,
			Completed: completedTemplates[template.ID],
		})
	}
	return entries, nil
}
