package requests

// UpsertNextStep sets a patient's single next-step pointer. A slug with the
// "form:" prefix points at a form template instead of a URL.
type UpsertNextStep struct {
	NextStepSlug  string `json:"next_step_slug" validate:"required"`
	NextStepTitle string `json:"next_step_title" validate:"required"`
	NextStepURL   string `json:"next_step_url,omitempty"`
	Available     bool   `json:"available"`
	AvailableFrom string `json:"available_from,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	PatientID     string
}
