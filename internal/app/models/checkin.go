package models

import "time"

// Checkin is one weekly self-report. Unlike form responses, check-ins
// append: a patient may have many, one per week.
type Checkin struct {
	ID                string    `json:"id" bson:"_id,omitempty"`
	PatientID         string    `json:"patient_id" bson:"patientId"`
	WeekRating        string    `json:"week_rating,omitempty" bson:"weekRating,omitempty"`
	DifficultMoment   string    `json:"difficult_moment,omitempty" bson:"difficultMoment,omitempty"`
	AnxietyLevel      *int      `json:"anxiety_level,omitempty" bson:"anxietyLevel,omitempty"`
	PlanDeviations    string    `json:"plan_deviations,omitempty" bson:"planDeviations,omitempty"`
	AdjustmentsNeeded string    `json:"adjustments_needed,omitempty" bson:"adjustmentsNeeded,omitempty"`
	CreatedAt         time.Time `json:"created_at" bson:"createdAt"`
}
