package requests

import "nutricare-service/internal/app/models"

type CreateFormTemplate struct {
	Slug        string            `json:"slug" validate:"required,slug"`
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description,omitempty"`
	Schema      models.FormSchema `json:"schema_json" validate:"required"`
	OrderIndex  int               `json:"order_index,omitempty"`
	Activate    bool              `json:"activate,omitempty"`
}

// CreateTestTemplate creates a scored evaluation. The schema must be
// all-radio with per-option scores and at least one result range; tests go
// live immediately on creation.
type CreateTestTemplate struct {
	Slug        string            `json:"slug" validate:"required,slug"`
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description,omitempty"`
	Schema      models.FormSchema `json:"schema_json" validate:"required"`
	OrderIndex  int               `json:"order_index,omitempty"`
}

// UpdateFormTemplate replaces the whole schema. The slug stays as created;
// an edited template always drops back to draft.
type UpdateFormTemplate struct {
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description,omitempty"`
	Schema      models.FormSchema `json:"schema_json" validate:"required"`
	OrderIndex  int               `json:"order_index,omitempty"`
	TemplateID  string
}

type ImportTemplates struct {
	Templates []ImportTemplateEntry `json:"templates" validate:"required,min=1,dive"`
}

type ImportTemplateEntry struct {
	Slug        string            `json:"slug" validate:"required,slug"`
	Title       string            `json:"title" validate:"required"`
	Description string            `json:"description,omitempty"`
	Schema      models.FormSchema `json:"schema_json" validate:"required"`
	IsActive    bool              `json:"is_active"`
	OrderIndex  int               `json:"order_index,omitempty"`
}
