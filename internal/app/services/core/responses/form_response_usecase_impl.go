package responses

import (
	"context"
	"sync"
	"time"

	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/contracts"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/dto/responses"
	"nutricare-service/internal/pkg/exceptions"
	"nutricare-service/internal/pkg/formvalidator"
	"nutricare-service/internal/pkg/scoring"

	"go.uber.org/zap"
)

type formResponseUsecase struct {
	TemplateRepository contracts.FormTemplateRepository
	ResponseRepository contracts.FormResponseRepository
	UserRepository     contracts.UserRepository
	ActivityNotifier   contracts.ActivityNotifier
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
}

var (
	formResponseUsecaseInstance contracts.FormResponseUsecase
	onceFormResponseUsecase     sync.Once
)

func NewFormResponseUsecase(
	templateRepository contracts.FormTemplateRepository,
	responseRepository contracts.FormResponseRepository,
	userRepository contracts.UserRepository,
	activityNotifier contracts.ActivityNotifier,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.FormResponseUsecase {
	onceFormResponseUsecase.Do(func() {
		formResponseUsecaseInstance = &formResponseUsecase{
			TemplateRepository: templateRepository,
			ResponseRepository: responseRepository,
			UserRepository:     userRepository,
			ActivityNotifier:   activityNotifier,
			InternalConfig:     internalConfig,
			Log:                logger,
		}
	})
	return formResponseUsecaseInstance
}

// RenderForm assembles everything the form screen needs: the active
// template, the caller's prior answers and whether those answers are frozen.
func (uc *formResponseUsecase) RenderForm(ctx context.Context, request *requests.RenderForm) (*responses.RenderForm, error) {
	template, err := uc.findActiveTemplate(ctx, request.TemplateSlug)
	if err != nil {
		return nil, err
	}

	prior, err := uc.ResponseRepository.FindResponse(ctx, request.PatientID, template.ID)
	if err != nil {
		return nil, err
	}

	return &responses.RenderForm{
		Template:      template,
		PriorResponse: prior,
		Locked:        prior != nil && uc.InternalConfig.Form.IsLockedSlug(template.Slug),
	}, nil
}

func (uc *formResponseUsecase) SubmitResponse(ctx context.Context, request *requests.SubmitFormResponse) (*responses.SubmitFormResult, error) {
	template, err := uc.findActiveTemplate(ctx, request.TemplateSlug)
	if err != nil {
		return nil, err
	}

	if uc.InternalConfig.Form.IsLockedSlug(template.Slug) {
		prior, err := uc.ResponseRepository.FindResponse(ctx, request.PatientID, template.ID)
		if err != nil {
			return nil, err
		}
		if prior != nil {
			return nil, exceptions.ErrResponseLocked(nil)
		}
	}

	cleaned, fieldErrors := formvalidator.New(&template.Schema).Validate(request.Answers)
	if fieldErrors != nil {
		return nil, exceptions.ErrFormValidation(fieldErrors)
	}

	scored := scoring.HasScoringEnabled(&template.Schema)
	var totalScore *int
	if scored {
		total := scoring.CalculateScore(&template.Schema, cleaned)
		totalScore = &total
	}

	now := time.Now()
	response := &models.FormResponse{
		TemplateID:  template.ID,
		PatientID:   request.PatientID,
		Answers:     cleaned,
		TotalScore:  totalScore,
		SubmittedAt: now,
		UpdatedAt:   now,
	}
	responseID, err := uc.ResponseRepository.UpsertResponse(ctx, response)
	if err != nil {
		return nil, err
	}

	result := &responses.SubmitFormResult{
		ResponseID: responseID,
		TotalScore: totalScore,
	}
	if scored {
		result.ScoreResult = scoring.ResolveScoreResult(template.Schema.Scoring, *totalScore)
		uc.notifyEvaluationSubmitted(ctx, request.PatientID, template.Slug)
	} else {
		result.Success = template.Schema.Success
	}
	return result, nil
}

func (uc *formResponseUsecase) FindResponse(ctx context.Context, request *requests.FindResponse) (*models.FormResponse, error) {
	template, err := uc.TemplateRepository.FindTemplateByID(ctx, request.TemplateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrFormTemplateNotFound(nil)
	}
	return uc.ResponseRepository.FindResponse(ctx, request.PatientID, request.TemplateID)
}

// TemplateCompletion lists every patient alongside their response to one
// template, response nil for patients who have not submitted.
func (uc *formResponseUsecase) TemplateCompletion(ctx context.Context, templateID string) ([]responses.PatientCompletion, error) {
	template, err := uc.TemplateRepository.FindTemplateByID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrFormTemplateNotFound(nil)
	}

	patients, err := uc.UserRepository.FindUsersByRole(ctx, constvars.RolePatient)
	if err != nil {
		return nil, err
	}
	submitted, err := uc.ResponseRepository.FindResponsesByTemplateID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	byPatient := make(map[string]*models.FormResponse, len(submitted))
	for i := range submitted {
		byPatient[submitted[i].PatientID] = &submitted[i]
	}

	completion := make([]responses.PatientCompletion, 0, len(patients))
	for i := range patients {
		completion = append(completion, responses.PatientCompletion{
			Patient:  &patients[i],
			Response: byPatient[patients[i].ID],
		})
	}
	return completion, nil
}

func (uc *formResponseUsecase) findActiveTemplate(ctx context.Context, slug string) (*models.FormTemplate, error) {
	template, err := uc.TemplateRepository.FindTemplateBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if template == nil || !template.IsActive {
		return nil, exceptions.ErrFormTemplateNotFound(nil)
	}
	return template, nil
}

// notifyEvaluationSubmitted is best effort: a broker hiccup must not fail a
// submission that is already persisted.
func (uc *formResponseUsecase) notifyEvaluationSubmitted(ctx context.Context, patientID, templateSlug string) {
	event := &models.ActivityEvent{
		EventType:  constvars.ActivityEventEvaluationSubmitted,
		PatientID:  patientID,
		Reference:  templateSlug,
		OccurredAt: time.Now(),
	}
	if err := uc.ActivityNotifier.Publish(ctx, event); err != nil {
		uc.Log.Warn("failed to publish evaluation activity",
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}
