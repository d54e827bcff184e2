package models

// DifficultSituation is a guidance card for a tricky moment (social events,
// cravings, travel), shown to patients grouped by category.
type DifficultSituation struct {
	ID        string   `json:"id" bson:"_id,omitempty"`
	Category  string   `json:"category" bson:"category"`
	Title     string   `json:"title" bson:"title"`
	Tips      []string `json:"tips,omitempty" bson:"tips,omitempty"`
	SortOrder int      `json:"sort_order" bson:"sortOrder"`
	TimeModel `bson:",inline"`
}
