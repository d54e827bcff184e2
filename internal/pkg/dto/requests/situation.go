package requests

type CreateSituation struct {
	Category  string   `json:"category" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Tips      []string `json:"tips,omitempty"`
	SortOrder int      `json:"sort_order,omitempty"`
}

type UpdateSituation struct {
	Category    string   `json:"category" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Tips        []string `json:"tips,omitempty"`
	SortOrder   int      `json:"sort_order,omitempty"`
	SituationID string
}
