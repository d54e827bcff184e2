package responses

import "nutricare-service/internal/app/models"

// RenderForm is the payload the form screen is built from: the active
// template plus whatever this patient already submitted. Locked means the
// answers are shown read-only and re-submission is rejected.
type RenderForm struct {
	Template      *models.FormTemplate `json:"template"`
	PriorResponse *models.FormResponse `json:"prior_response,omitempty"`
	Locked        bool                 `json:"locked"`
}

// SubmitFormResult reports one submission outcome. ScoreResult is set when
// the template scores and a range matched; Success carries the schema's
// plain-form confirmation block when there is one.
type SubmitFormResult struct {
	ResponseID  string               `json:"response_id"`
	TotalScore  *int                 `json:"total_score,omitempty"`
	ScoreResult *models.ScoreResult  `json:"score_result,omitempty"`
	Success     *models.SuccessBlock `json:"success,omitempty"`
}

// PatientCompletion pairs one patient with their response to one template,
// nil when they have not submitted yet.
type PatientCompletion struct {
	Patient  *models.User         `json:"patient"`
	Response *models.FormResponse `json:"response"`
}

// ImportTemplatesResult counts what an import did per slug.
type ImportTemplatesResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// EvaluationEntry is one row of the patient's evaluation list: a next-step
// form reference resolved to its template.
type EvaluationEntry struct {
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Available bool   `json:"available"`
	Completed bool   `json:"completed"`
}
