package models

// WeeklyPlan is one weekday's meal plan. DayOfWeek is 0..6, Monday first.
type WeeklyPlan struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	DayOfWeek int    `json:"day_of_week" bson:"dayOfWeek"`
	Breakfast string `json:"breakfast,omitempty" bson:"breakfast,omitempty"`
	Lunch     string `json:"lunch,omitempty" bson:"lunch,omitempty"`
	Dinner    string `json:"dinner,omitempty" bson:"dinner,omitempty"`
	TimeModel `bson:",inline"`
}
