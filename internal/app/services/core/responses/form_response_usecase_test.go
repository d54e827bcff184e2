package responses

import (
	"context"
	"testing"

	"nutricare-service/internal/app/config"
	"nutricare-service/internal/app/models"
	"nutricare-service/internal/pkg/constvars"
	"nutricare-service/internal/pkg/dto/requests"
	"nutricare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

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

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindUsersByRole(ctx context.Context, role string) ([]models.User, error) {
	args := m.Called(ctx, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

type MockActivityNotifier struct {
	mock.Mock
}

func (m *MockActivityNotifier) Publish(ctx context.Context, event *models.ActivityEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type responseUsecaseMocks struct {
	templateRepo *MockFormTemplateRepository
	responseRepo *MockFormResponseRepository
	userRepo     *MockUserRepository
	notifier     *MockActivityNotifier
}

func newResponseUsecaseForTest(lockedSlugs ...string) (*formResponseUsecase, *responseUsecaseMocks) {
	mocks := &responseUsecaseMocks{
		templateRepo: new(MockFormTemplateRepository),
		responseRepo: new(MockFormResponseRepository),
		userRepo:     new(MockUserRepository),
		notifier:     new(MockActivityNotifier),
	}
	uc := &formResponseUsecase{
		TemplateRepository: mocks.templateRepo,
		ResponseRepository: mocks.responseRepo,
		UserRepository:     mocks.userRepo,
		ActivityNotifier:   mocks.notifier,
		InternalConfig: &config.InternalConfig{
			Form: config.Form{LockedSlugs: lockedSlugs},
		},
		Log: zap.NewNop(),
	}
	return uc, mocks
}

func checkinFormTemplate() *models.FormTemplate {
	return &models.FormTemplate{
		ID:       "t-1",
		Slug:     "daily_checkin",
		Title:    "Daily check-in",
		IsActive: true,
		Schema: models.FormSchema{
			Version: 1,
			Sections: []models.FormSection{
				{
					Title: "Today",
					Fields: []models.FormField{
						{Key: "mood", Label: "Mood", Type: models.FieldTypeText, Required: true},
						{Key: "notes", Label: "Notes", Type: models.FieldTypeTextarea},
					},
				},
			},
			Success: &models.SuccessBlock{Title: "Saved", Message: "See you tomorrow"},
		},
	}
}

func anxietyTestTemplate() *models.FormTemplate {
	score := func(v int) *int { return &v }
	return &models.FormTemplate{
		ID:       "t-2",
		Slug:     "baseline_0_2",
		Title:    "Baseline evaluation",
		IsActive: true,
		Schema: models.FormSchema{
			Version: 1,
			Sections: []models.FormSection{
				{
					Title: "Symptoms",
					Fields: []models.FormField{
						{
							Key:      "sleep",
							Label:    "Sleep",
							Type:     models.FieldTypeRadio,
							Required: true,
							Options: []models.FormFieldOption{
								{Value: "good", Label: "Good", Score: score(0)},
								{Value: "poor", Label: "Poor", Score: score(2)},
							},
						},
						{
							Key:      "appetite",
							Label:    "Appetite",
							Type:     models.FieldTypeRadio,
							Required: true,
							Options: []models.FormFieldOption{
								{Value: "normal", Label: "Normal", Score: score(0)},
								{Value: "reduced", Label: "Reduced", Score: score(1)},
							},
						},
					},
				},
			},
			Scoring: &models.ScoringConfig{
				Enabled: true,
				Results: []models.ScoreResult{
					{MinScore: 0, MaxScore: 1, ResultTitle: "Low"},
					{MinScore: 2, MaxScore: 3, ResultTitle: "Elevated"},
				},
			},
		},
	}
}

func TestSubmitResponseUnknownSlug(t *testing.T) {
	uc, mocks := newResponseUsecaseForTest()

	mocks.templateRepo.On("FindTemplateBySlug", mock.Anything, "missing").Return(nil, nil)

	_, err := uc.SubmitResponse(context.Background(), &requests.SubmitFormResponse{
		TemplateSlug: "missing",
		PatientID:    "p-1",
		Answers:      map[string]interface{}{},
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestSubmitResponseDraftTemplateHidden(t *testing.T) {
	uc, mocks := newResponseUsecaseForTest()

	draft := checkinFormTemplate()
	draft.IsActive = false
	mocks.templateRepo.On("FindTemplateBySlug", mock.Anything, "daily_checkin").Return(draft, nil)

	_, err := uc.SubmitResponse(context.Background(), &requests.SubmitFormResponse{
		TemplateSlug: "daily_checkin",
		PatientID:    "p-1",
		Answers:      map[string]interface{}{"mood": "fine"},
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestSubmitResponseLockedAfterFirstSubmission(t *testing.T) {
	uc, mocks := newResponseUsecaseForTest("baseline_0_2")

	template := anxietyTestTemplate()
	mocks.templateRepo.On("FindTemplateBySlug", mock.Anything, "baseline_0_2").Return(template, nil)
	mocks.responseRepo.On("FindResponse", mock.Anything, "p-1", "t-2").
		Return(&models.FormResponse{ID: "r-1", PatientID: "p-1", TemplateID: "t-2"}, nil)

	_, err := uc.SubmitResponse(context.Background(), &requests.SubmitFormResponse{
		TemplateSlug: "baseline_0_2",
		PatientID:    "p-1",
		Answers:      map[string]interface{}{"sleep": "good", "appetite": "normal"},
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusLocked, customErr.StatusCode)
	mocks.responseRepo.AssertNotCalled(t, "UpsertResponse", mock.Anything, mock.Anything)
}

func TestSubmitResponseValidationErrorsCarryFields(t *testing.T) {
	uc, mocks := newResponseUsecaseForTest()

	mocks.templateRepo.On("FindTemplateBySlug", mock.Anything, "daily_checkin").Return(checkinFormTemplate(), nil)

	_, err := uc.SubmitResponse(context.Background(), &requests.SubmitFormResponse{
		TemplateSlug: "daily_checkin",
		PatientID:    "p-1",
		Answers:      map[string]interface{}{"notes": "slept badly"},
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	assert.Contains(t, customErr.Fields, "mood")
	mocks.responseRepo.AssertNotCalled(t, "UpsertResponse", mock.Anything, mock.Anything)
}

func TestSubmitResponsePlainFormReturnsSuccessBlock(t *testing.T) {
	uc, mocks := newResponseUsecaseForTest()

	mocks.templateRepo.On("FindTemplateBySlug", mock.Anything, "daily_checkin").Return(checkinFormTemplate(), nil)

	var persisted *models.FormResponse
	mocks.responseRepo.On("UpsertResponse", mock.Anything, mock.AnythingOfType("*models.FormResponse")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*models.FormResponse)
		}).
		Return("r-1", nil)

	result, err := uc.SubmitResponse(context.Background(), &requests.SubmitFormResponse{
		TemplateSlug: "daily_checkin",
		PatientID:    "p-1",
		Answers:      map[string]interface{}{"mood": "fine", "notes": "", "stray": "dropped"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "r-1", result.ResponseID)
	assert.Nil(t, result.TotalScore)
	assert.Nil(t, result.ScoreResult)
	assert.Equal(t, "Saved", result.Success.Title)

	assert.Equal(t, map[string]interface{}{"mood": "fine"}, persisted.Answers)
	assert.Nil(t, persisted.TotalScore)
	mocks.notifier.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestSubmitResponseScoredTestResolvesResult(t *testing.T) {
	uc, mocks := newResponseUsecaseForTest()

	mocks.templateRepo.On("FindTemplateBySlug", mock.Anything, "baseline_0_2").Return(anxietyTestTemplate(), nil)

	var persisted *models.FormResponse
	mocks.responseRepo.On("UpsertResponse", mock.Anything, mock.AnythingOfType("*models.FormResponse")).
		Run(func(args mock.Arguments) {
			persisted = args.Get(1).(*models.FormResponse)
		}).
		Return("r-2", nil)

	var published *models.ActivityEvent
	mocks.notifier.On("Publish", mock.Anything, mock.AnythingOfType("*models.ActivityEvent")).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*models.ActivityEvent)
		}).
		Return(nil)

	result, err := uc.SubmitResponse(context.Background(), &requests.SubmitFormResponse{
		TemplateSlug: "baseline_0_2",
		PatientID:    "p-1",
		Answers:      map[string]interface{}{"sleep": "poor", "appetite": "reduced"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 3, *result.TotalScore)
	assert.Equal(t, "Elevated", result.ScoreResult.ResultTitle)
	assert.Nil(t, result.Success)

	assert.Equal(t, 3, *persisted.TotalScore)
	assert.Equal(t, constvars.ActivityEventEvaluationSubmitted, published.EventType)
	assert.Equal(t, "baseline_0_2", published.Reference)
}

func TestSubmitResponseSurvivesNotifierFailure(t *testing.T) {
	uc, mocks := newResponseUsecaseForTest()

	mocks.templateRepo.On("FindTemplateBySlug", mock.Anything, "baseline_0_2").Return(anxietyTestTemplate(), nil)
	mocks.responseRepo.On("UpsertResponse", mock.Anything, mock.AnythingOfType("*models.FormResponse")).Return("r-2", nil)
	mocks.notifier.On("Publish", mock.Anything, mock.AnythingOfType("*models.ActivityEvent")).
		Return(exceptions.ErrQueuePublish(nil))

	result, err := uc.SubmitResponse(context.Background(), &requests.SubmitFormResponse{
		TemplateSlug: "baseline_0_2",
		PatientID:    "p-1",
		Answers:      map[string]interface{}{"sleep": "good", "appetite": "normal"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "r-2", result.ResponseID)
}

func TestRenderFormReportsLockedState(t *testing.T) {
	uc, mocks := newResponseUsecaseForTest("baseline_0_2")

	template := anxietyTestTemplate()
	prior := &models.FormResponse{ID: "r-1", PatientID: "p-1", TemplateID: "t-2"}
	mocks.templateRepo.On("FindTemplateBySlug", mock.Anything, "baseline_0_2").Return(template, nil)
	mocks.responseRepo.On("FindResponse", mock.Anything, "p-1", "t-2").Return(prior, nil)

	rendered, err := uc.RenderForm(context.Background(), &requests.RenderForm{
		TemplateSlug: "baseline_0_2",
		PatientID:    "p-1",
	})

	assert.NoError(t, err)
	assert.True(t, rendered.Locked)
	assert.Equal(t, prior, rendered.PriorResponse)
}

func TestRenderFormUnlockedWithoutPriorResponse(t *testing.T) {
	uc, mocks := newResponseUsecaseForTest("baseline_0_2")

	mocks.templateRepo.On("FindTemplateBySlug", mock.Anything, "baseline_0_2").Return(anxietyTestTemplate(), nil)
	mocks.responseRepo.On("FindResponse", mock.Anything, "p-1", "t-2").Return(nil, nil)

	rendered, err := uc.RenderForm(context.Background(), &requests.RenderForm{
		TemplateSlug: "baseline_0_2",
		PatientID:    "p-1",
	})

	assert.NoError(t, err)
	assert.False(t, rendered.Locked)
	assert.Nil(t, rendered.PriorResponse)
}

func TestTemplateCompletionJoinsPatientsAndResponses(t *testing.T) {
	uc, mocks := newResponseUsecaseForTest()

	mocks.templateRepo.On("FindTemplateByID", mock.Anything, "t-2").Return(anxietyTestTemplate(), nil)
	mocks.userRepo.On("FindUsersByRole", mock.Anything, constvars.RolePatient).Return([]models.User{
		{ID: "p-1", FullName: "Ana"},
		{ID: "p-2", FullName: "Ben"},
	}, nil)
	mocks.responseRepo.On("FindResponsesByTemplateID", mock.Anything, "t-2").Return([]models.FormResponse{
		{ID: "r-1", PatientID: "p-2", TemplateID: "t-2"},
	}, nil)

	completion, err := uc.TemplateCompletion(context.Background(), "t-2")

	assert.NoError(t, err)
	assert.Len(t, completion, 2)
	assert.Nil(t, completion[0].Response)
	assert.Equal(t, "r-1", completion[1].Response.ID)
}
