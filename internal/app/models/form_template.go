package models

// FormTemplate wraps a FormSchema with publication metadata. The slug is
// immutable after creation and is the key patients use to reach the form.
type FormTemplate struct {
	ID          string     `json:"id" bson:"_id,omitempty"`
	Slug        string     `json:"slug" bson:"slug"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Schema      FormSchema `json:"schema_json" bson:"schema"`
	IsActive    bool       `json:"is_active" bson:"isActive"`
	OrderIndex  int        `json:"order_index" bson:"orderIndex"`
	TimeModel   `bson:",inline"`
}
