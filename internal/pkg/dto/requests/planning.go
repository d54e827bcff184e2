package requests

type UpsertWeeklyPlanning struct {
	Days []WeeklyPlanEntry `json:"days" validate:"required,min=1,max=7,dive"`
}

type WeeklyPlanEntry struct {
	DayOfWeek int    `json:"day_of_week" validate:"min=0,max=6"`
	Breakfast string `json:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty"`
	Dinner    string `json:"dinner,omitempty"`
}
