package models

import "time"

// PatientNextStep points a patient at their next action. Slugs with the
// "form:" prefix resolve to a form template; AvailableFrom in the future
// hides the step until that moment.
type PatientNextStep struct {
	ID            string     `json:"id" bson:"_id,omitempty"`
	PatientID     string     `json:"patient_id" bson:"patientId"`
	NextStepSlug  string     `json:"next_step_slug" bson:"nextStepSlug"`
	NextStepTitle string     `json:"next_step_title" bson:"nextStepTitle"`
	NextStepURL   string     `json:"next_step_url" bson:"nextStepUrl"`
	Available     bool       `json:"available" bson:"available"`
	AvailableFrom *time.Time `json:"available_from,omitempty" bson:"availableFrom,omitempty"`
	TimeModel     `bson:",inline"`
}

// EffectiveAvailable applies the availability window to the stored flag.
func (s *PatientNextStep) EffectiveAvailable(now time.Time) bool {
	if !s.Available {
		return false
	}
	if s.AvailableFrom != nil && s.AvailableFrom.After(now) {
		return false
	}
	return true
}
