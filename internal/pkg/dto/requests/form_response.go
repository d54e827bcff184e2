package requests

type SubmitFormResponse struct {
	Answers      map[string]interface{} `json:"answers_json" validate:"required"`
	TemplateSlug string
	PatientID    string
}

type RenderForm struct {
	TemplateSlug string
	PatientID    string
}

type FindResponse struct {
	TemplateID string
	PatientID  string
}
