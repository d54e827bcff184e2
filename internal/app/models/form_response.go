package models

import "time"

// FormResponse holds one patient's answers to one template. At most one
// document exists per (patientId, templateId); re-submission overwrites
// answers and score. Answer values are typed per field: string for
// text/textarea/radio, float64 for number, []string for checkbox.
type FormResponse struct {
	ID          string                 `json:"id" bson:"_id,omitempty"`
	TemplateID  string                 `json:"template_id" bson:"templateId"`
	PatientID   string                 `json:"patient_id" bson:"patientId"`
	Answers     map[string]interface{} `json:"answers_json" bson:"answers"`
	TotalScore  *int                   `json:"total_score,omitempty" bson:"totalScore,omitempty"`
	SubmittedAt time.Time              `json:"submitted_at" bson:"submittedAt"`
	UpdatedAt   time.Time              `json:"updated_at" bson:"updatedAt"`
}
