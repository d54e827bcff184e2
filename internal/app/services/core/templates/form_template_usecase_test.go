package templates

import (
	"context"
	"testing"

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

func newTemplateUsecaseForTest(templateRepo *MockFormTemplateRepository, responseRepo *MockFormResponseRepository) *formTemplateUsecase {
	return &formTemplateUsecase{
		TemplateRepository: templateRepo,
		ResponseRepository: responseRepo,
		Log:                zap.NewNop(),
	}
}

func intakeFormSchema() models.FormSchema {
	return models.FormSchema{
		Version: 1,
		Sections: []models.FormSection{
			{
				Title: "About you",
				Fields: []models.FormField{
					{Key: "name", Label: "Full name", Type: models.FieldTypeText, Required: true},
					{Key: "goal", Label: "Goal", Type: models.FieldTypeTextarea},
				},
			},
		},
		Success: &models.SuccessBlock{Title: "Done", Message: "Thank you"},
	}
}

func scoredTestSchema() models.FormSchema {
	score := func(v int) *int { return &v }
	return models.FormSchema{
		Version: 1,
		Sections: []models.FormSection{
			{
				Title: "Symptoms",
				Fields: []models.FormField{
					{
						Key:      "appetite",
						Label:    "Appetite",
						Type:     models.FieldTypeRadio,
						Required: true,
						Options: []models.FormFieldOption{
							{Value: "normal", Label: "Normal", Score: score(0)},
							{Value: "reduced", Label: "Reduced", Score: score(2)},
						},
					},
				},
			},
		},
		Scoring: &models.ScoringConfig{
			Enabled: true,
			Results: []models.ScoreResult{
				{MinScore: 0, MaxScore: 1, ResultTitle: "Low"},
				{MinScore: 2, MaxScore: 2, ResultTitle: "Elevated"},
			},
		},
	}
}

func TestCreateFormRejectsTakenSlug(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	templateRepo.On("FindTemplateBySlug", mock.Anything, "intake").
		Return(&models.FormTemplate{ID: "t-1", Slug: "intake"}, nil)

	_, err := uc.CreateForm(context.Background(), &requests.CreateFormTemplate{
		Slug:   "intake",
		Title:  "Intake",
		Schema: intakeFormSchema(),
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	templateRepo.AssertNotCalled(t, "CreateTemplate", mock.Anything, mock.Anything)
}

func TestCreateFormPersistsDraftBySlug(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	templateRepo.On("FindTemplateBySlug", mock.Anything, "intake").Return(nil, nil)
	templateRepo.On("CreateTemplate", mock.Anything, mock.AnythingOfType("*models.FormTemplate")).Return("t-1", nil)

	template, err := uc.CreateForm(context.Background(), &requests.CreateFormTemplate{
		Slug:   "intake",
		Title:  "Intake",
		Schema: intakeFormSchema(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "t-1", template.ID)
	assert.False(t, template.IsActive)
}

func TestCreateFormRejectsDuplicateFieldKeys(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	schema := intakeFormSchema()
	schema.Sections[0].Fields = append(schema.Sections[0].Fields, models.FormField{
		Key: "name", Label: "Name again", Type: models.FieldTypeText,
	})

	_, err := uc.CreateForm(context.Background(), &requests.CreateFormTemplate{
		Slug:   "intake",
		Title:  "Intake",
		Schema: schema,
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	templateRepo.AssertNotCalled(t, "FindTemplateBySlug", mock.Anything, mock.Anything)
}

func TestCreateTestGoesLiveImmediately(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	templateRepo.On("FindTemplateBySlug", mock.Anything, "baseline").Return(nil, nil)
	templateRepo.On("CreateTemplate", mock.Anything, mock.AnythingOfType("*models.FormTemplate")).Return("t-2", nil)

	template, err := uc.CreateTest(context.Background(), &requests.CreateTestTemplate{
		Slug:   "baseline",
		Title:  "Baseline",
		Schema: scoredTestSchema(),
	})

	assert.NoError(t, err)
	assert.True(t, template.IsActive)
}

func TestCreateTestRejectsNonRadioQuestion(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	schema := scoredTestSchema()
	schema.Sections[0].Fields = append(schema.Sections[0].Fields, models.FormField{
		Key: "notes", Label: "Notes", Type: models.FieldTypeText,
	})

	_, err := uc.CreateTest(context.Background(), &requests.CreateTestTemplate{
		Slug:   "baseline",
		Title:  "Baseline",
		Schema: schema,
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestCreateTestRejectsUnscoredOption(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	schema := scoredTestSchema()
	schema.Sections[0].Fields[0].Options[1].Score = nil

	_, err := uc.CreateTest(context.Background(), &requests.CreateTestTemplate{
		Slug:   "baseline",
		Title:  "Baseline",
		Schema: schema,
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestCreateTestRequiresScoringRanges(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	schema := scoredTestSchema()
	schema.Scoring.Results = nil

	_, err := uc.CreateTest(context.Background(), &requests.CreateTestTemplate{
		Slug:   "baseline",
		Title:  "Baseline",
		Schema: schema,
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
}

func TestUpdateTemplateDemotesToDraft(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	stored := &models.FormTemplate{ID: "t-1", Slug: "intake", Title: "Intake", Schema: intakeFormSchema(), IsActive: true}
	templateRepo.On("FindTemplateByID", mock.Anything, "t-1").Return(stored, nil)
	templateRepo.On("UpdateTemplate", mock.Anything, mock.AnythingOfType("*models.FormTemplate")).Return(nil)

	updated, err := uc.UpdateTemplate(context.Background(), &requests.UpdateFormTemplate{
		TemplateID: "t-1",
		Title:      "Intake v2",
		Schema:     intakeFormSchema(),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Intake v2", updated.Title)
	assert.False(t, updated.IsActive)
}

func TestPublishTemplateActivates(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	stored := &models.FormTemplate{ID: "t-1", Slug: "intake", Schema: intakeFormSchema()}
	templateRepo.On("FindTemplateByID", mock.Anything, "t-1").Return(stored, nil)
	templateRepo.On("UpdateTemplate", mock.Anything, mock.AnythingOfType("*models.FormTemplate")).Return(nil)

	published, err := uc.PublishTemplate(context.Background(), "t-1")

	assert.NoError(t, err)
	assert.True(t, published.IsActive)
}

func TestDeleteTemplateCascadesToResponses(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	stored := &models.FormTemplate{ID: "t-1", Slug: "intake", Schema: intakeFormSchema()}
	templateRepo.On("FindTemplateByID", mock.Anything, "t-1").Return(stored, nil)

	var deleteOrder []string
	responseRepo.On("DeleteResponsesByTemplateID", mock.Anything, "t-1").
		Run(func(args mock.Arguments) {
			deleteOrder = append(deleteOrder, "responses")
		}).
		Return(nil)
	templateRepo.On("DeleteTemplateByID", mock.Anything, "t-1").
		Run(func(args mock.Arguments) {
			deleteOrder = append(deleteOrder, "template")
		}).
		Return(nil)

	err := uc.DeleteTemplate(context.Background(), "t-1")

	assert.NoError(t, err)
	assert.Equal(t, []string{"responses", "template"}, deleteOrder)
}

func TestDeleteTemplateKeepsTemplateWhenCascadeFails(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	stored := &models.FormTemplate{ID: "t-1", Slug: "intake", Schema: intakeFormSchema()}
	templateRepo.On("FindTemplateByID", mock.Anything, "t-1").Return(stored, nil)
	responseRepo.On("DeleteResponsesByTemplateID", mock.Anything, "t-1").
		Return(exceptions.ErrMongoDBDeleteDocument(nil))

	err := uc.DeleteTemplate(context.Background(), "t-1")

	assert.Error(t, err)
	templateRepo.AssertNotCalled(t, "DeleteTemplateByID", mock.Anything, mock.Anything)
}

func TestDeleteTemplateUnknownID(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	templateRepo.On("FindTemplateByID", mock.Anything, "missing").Return(nil, nil)

	err := uc.DeleteTemplate(context.Background(), "missing")

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
}

func TestImportTemplatesUpsertsBySlug(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	existing := &models.FormTemplate{ID: "t-1", Slug: "intake", Title: "Old title", Schema: intakeFormSchema()}
	templateRepo.On("FindTemplateBySlug", mock.Anything, "intake").Return(existing, nil)
	templateRepo.On("FindTemplateBySlug", mock.Anything, "baseline").Return(nil, nil)
	templateRepo.On("UpdateTemplate", mock.Anything, mock.AnythingOfType("*models.FormTemplate")).Return(nil)
	templateRepo.On("CreateTemplate", mock.Anything, mock.AnythingOfType("*models.FormTemplate")).Return("t-2", nil)

	result, err := uc.ImportTemplates(context.Background(), &requests.ImportTemplates{
		Templates: []requests.ImportTemplateEntry{
			{Slug: "intake", Title: "New title", Schema: intakeFormSchema()},
			{Slug: "baseline", Title: "Baseline", Schema: scoredTestSchema(), IsActive: true},
		},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, "New title", existing.Title)
}

func TestImportTemplatesRejectsBrokenSchemaBeforeWriting(t *testing.T) {
	templateRepo := new(MockFormTemplateRepository)
	responseRepo := new(MockFormResponseRepository)
	uc := newTemplateUsecaseForTest(templateRepo, responseRepo)

	broken := intakeFormSchema()
	broken.Sections[0].Fields[0].Key = ""

	_, err := uc.ImportTemplates(context.Background(), &requests.ImportTemplates{
		Templates: []requests.ImportTemplateEntry{
			{Slug: "intake", Title: "Intake", Schema: intakeFormSchema()},
			{Slug: "broken", Title: "Broken", Schema: broken},
		},
	})

	customErr, ok := err.(*exceptions.CustomError)
	assert.True(t, ok)
	assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	templateRepo.AssertNotCalled(t, "CreateTemplate", mock.Anything, mock.Anything)
	templateRepo.AssertNotCalled(t, "UpdateTemplate", mock.Anything, mock.Anything)
}
