package requests

type CreateCheckin struct {
	WeekRating        string `json:"week_rating,omitempty"`
	DifficultMoment   string `json:"difficult_moment,omitempty"`
	AnxietyLevel      *int   `json:"anxiety_level,omitempty" validate:"omitempty,min=0,max=10"`
	PlanDeviations    string `json:"plan_deviations,omitempty"`
	AdjustmentsNeeded string `json:"adjustments_needed,omitempty"`
	PatientID         string
}
