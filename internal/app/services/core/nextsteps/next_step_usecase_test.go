package nextsteps

import (
	"context"
	"testing"
	"time"

	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockNextStepRepository struct {
	mock.Mock
}

func (m *MockNextStepRepository) UpsertNextStep(ctx context.Context, step *models.PatientNextStep) error {
	args := m.Called(ctx, step)
	return args.Error(0)
}

func (m *MockNextStepRepository) FindNextStepByPatientID(ctx context.Context, patientID string) (*models.PatientNextStep, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.PatientNextStep), args.Error(1)
}

func (m *MockNextStepRepository) DeleteNextStepByPatientID(ctx context.Context, patientID string) error {
	args := m.Called(ctx, patientID)
	return args.Error(0)
}

type MockFormTemplateRepository struct {
	mock.Mock
}

func (m *MockFormTemplateRepository) CreateTemplate(ctx context.Context, template *models.FormTemplate) (string, error) {
	args := m.Called(ctx, template)
	return args.String(0), args.Error(1)
}

func (m *MockFormTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*models.FormTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FormTemplate), args.Error(1)
}

func (m *MockFormTemplateRepository) FindTemplateBySlug(ctx context.Context, slug string) (*models.FormTemplate, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FormTemplate), args.Error(1)
}

func (m *MockFormTemplateRepository) FindTemplates(ctx context.Context, activeOnly bool) ([]models.FormTemplate, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FormTemplate), args.Error(1)
}

func (m *MockFormTemplateRepository) UpdateTemplate(ctx context.Context, template *models.FormTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockFormTemplateRepository) DeleteTemplateByID(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

type MockFormResponseRepository struct {
	mock.Mock
}

func (m *MockFormResponseRepository) UpsertResponse(ctx context.Context, response *models.FormResponse) (string, error) {
	args := m.Called(ctx, response)
	return args.String(0), args.Error(1)
}

func (m *MockFormResponseRepository) FindResponse(ctx context.Context, patientID, templateID string) (*models.FormResponse, error) {
	args := m.Called(ctx, patientID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FormResponse), args.Error(1)
}

func (m *MockFormResponseRepository) FindResponsesByTemplateID(ctx context.Context, templateID string) ([]models.FormResponse, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FormResponse), args.Error(1)
}

func (m *MockFormResponseRepository) FindResponsesByPatientID(ctx context.Context, patientID string) ([]models.FormResponse, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.FormResponse), args.Error(1)
}

func (m *MockFormResponseRepository) DeleteResponsesByTemplateID(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

func newNextStepUsecaseForTest() (*nextStepUsecase, *MockNextStepRepository, *MockFormTemplateRepository, *MockFormResponseRepository) {
	stepRepo := new(MockNextStepRepository)
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := &nextStepUsecase{
		NextStepRepository: stepRepo,
		TemplateRepository: templateRepo,
		ResponseRepository: responseRepo,
	}
	return uc, stepRepo, templateRepo, responseRepo
}

func scoredTemplate(id, slug, title string) models.FormTemplate {
	zero := 0
	return models.FormTemplate{
		ID:       id,
		Slug:     slug,
		Title:    title,
		IsActive: true,
		Schema: models.FormSchema{
			Version: 1,
			Sections: []models.FormSection{
				{
					Fields: []models.FormField{
						{
							Key:  "q1",
							Type: models.FieldTypeRadio,
							Options: []models.FormFieldOption{
								{Value: "a", Score: &zero},
							},
						},
					},
				},
			},
			Scoring: &models.ScoringConfig{
				Enabled: true,
				Results: []models.ScoreResult{{MinScore: 0, MaxScore: 0, ResultTitle: "Low"}},
			},
		},
	}
}

func plainTemplate(id, slug string) models.FormTemplate {
	return models.FormTemplate{
		ID:       id,
		Slug:     slug,
		Title:    slug,
		IsActive: true,
		Schema: models.FormSchema{
			Version: 1,
			Sections: []models.FormSection{
				{Fields: []models.FormField{{Key: "notes", Type: models.FieldTypeText}}},
			},
		},
	}
}

func TestUpsertNextStepRejectsDeadFormReference(t *testing.T) {
	uc, _, templateRepo, _ := newNextStepUsecaseForTest()

	templateRepo.On("FindTemplateBySlug", mock.Anything, "missing").Return(nil, nil)

	_, err := uc.UpsertNextStep(context.Background(), &requests.UpsertNextStep{
		PatientID:    "p-1",
		NextStepSlug: constvars.NextStepFormPrefix + "missing",
		Available:    true,
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestUpsertNextStepRejectsBadAvailableFrom(t *testing.T) {
	uc, _, _, _ := newNextStepUsecaseForTest()

	_, err := uc.UpsertNextStep(context.Background(), &requests.UpsertNextStep{
		PatientID:     "p-1",
		NextStepSlug:  "call_dietician",
		Available:     true,
		AvailableFrom: "next tuesday",
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestUpsertNextStepNonFormSlugSkipsTemplateLookup(t *testing.T) {
	uc, stepRepo, templateRepo, _ := newNextStepUsecaseForTest()

	stepRepo.On("UpsertNextStep", mock.Anything, mock.AnythingOfType("*models.PatientNextStep")).Return(nil)

	step, err := uc.UpsertNextStep(context.Background(), &requests.UpsertNextStep{
		PatientID:    "p-1",
		NextStepSlug: "call_dietician",
		Available:    true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "call_dietician", step.NextStepSlug)
	templateRepo.AssertNotCalled(t, "FindTemplateBySlug", mock.Anything, mock.Anything)
}

func TestFindNextStepAppliesAvailabilityWindow(t *testing.T) {
	uc, stepRepo, _, _ := newNextStepUsecaseForTest()

	future := time.Now().Add(48 * time.Hour)
	stepRepo.On("FindNextStepByPatientID", mock.Anything, "p-1").Return(&models.PatientNextStep{
		PatientID:     "p-1",
		NextStepSlug:  constvars.NextStepFormPrefix + "baseline_0_2",
		Available:     true,
		AvailableFrom: &future,
	}, nil)

	step, err := uc.FindNextStep(context.Background(), "p-1")

	assert.NoError(t, err)
	assert.False(t, step.Available)
}

func TestFindNextStepNoneAssigned(t *testing.T) {
	uc, stepRepo, _, _ := newNextStepUsecaseForTest()

	stepRepo.On("FindNextStepByPatientID", mock.Anything, "p-1").Return(nil, nil)

	step, err := uc.FindNextStep(context.Background(), "p-1")

	assert.NoError(t, err)
	assert.Nil(t, step)
}

func TestEvaluationsListsScoredTemplatesOnly(t *testing.T) {
	uc, stepRepo, templateRepo, responseRepo := newNextStepUsecaseForTest()

	templateRepo.On("FindTemplates", mock.Anything, true).Return([]models.FormTemplate{
		scoredTemplate("t-1", "baseline_0_2", "Baseline"),
		plainTemplate("t-2", "daily_checkin"),
		scoredTemplate("t-3", "followup_3_5", "Follow-up"),
	}, nil)
	responseRepo.On("FindResponsesByPatientID", mock.Anything, "p-1").Return([]models.FormResponse{
		{ID: "r-1", PatientID: "p-1", TemplateID: "t-1"},
	}, nil)
	stepRepo.On("FindNextStepByPatientID", mock.Anything, "p-1").Return(nil, nil)

	entries, err := uc.Evaluations(context.Background(), "p-1")

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "baseline_0_2", entries[0].Slug)
	assert.True(t, entries[0].Completed)
	assert.True(t, entries[0].Available)
	assert.Equal(t, "followup_3_5", entries[1].Slug)
	assert.False(t, entries[1].Completed)
}

func TestEvaluationsGatesPendingNextStepWindow(t *testing.T) {
	uc, stepRepo, templateRepo, responseRepo := newNextStepUsecaseForTest()

	templateRepo.On("FindTemplates", mock.Anything, true).Return([]models.FormTemplate{
		scoredTemplate("t-1", "baseline_0_2", "Baseline"),
		scoredTemplate("t-3", "followup_3_5", "Follow-up"),
	}, nil)
	responseRepo.On("FindResponsesByPatientID", mock.Anything, "p-1").Return(nil, nil)

	future := time.Now().Add(24 * time.Hour)
	stepRepo.On("FindNextStepByPatientID", mock.Anything, "p-1").Return(&models.PatientNextStep{
		PatientID:     "p-1",
		NextStepSlug:  constvars.NextStepFormPrefix + "followup_3_5",
		Available:     true,
		AvailableFrom: &future,
	}, nil)

	entries, err := uc.Evaluations(context.Background(), "p-1")

	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.True(t, entries[0].Available)
	assert.False(t, entries[1].Available)
}
