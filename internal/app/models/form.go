package models

import (
	"fmt"
)

// Field types form a closed set. Radio and checkbox fields carry options;
// only radio options contribute to scoring.
const (
	FieldTypeText     = "text"
	FieldTypeTextarea = "textarea"
	FieldTypeNumber   = "number"
	FieldTypeRadio    = "radio"
	FieldTypeCheckbox = "checkbox"
)

// FormSchema is the versioned definition of one form or test. Templates
// replace the whole document on every edit; the schema itself is never
// mutated in place.
type FormSchema struct {
	Version  int            `json:"version" bson:"version"`
	Sections []FormSection  `json:"sections" bson:"sections"`
	Success  *SuccessBlock  `json:"success,omitempty" bson:"success,omitempty"`
	Scoring  *ScoringConfig `json:"scoring,omitempty" bson:"scoring,omitempty"`
}

type FormSection struct {
	Title       string      `json:"title" bson:"title"`
	Description string      `json:"description,omitempty" bson:"description,omitempty"`
	Fields      []FormField `json:"fields" bson:"fields"`
}

type FormField struct {
	Key      string            `json:"key" bson:"key"`
	Label    string            `json:"label" bson:"label"`
	HelpText string            `json:"helpText,omitempty" bson:"helpText,omitempty"`
	Type     string            `json:"type" bson:"type"`
	Required bool              `json:"required" bson:"required"`
	Options  []FormFieldOption `json:"options,omitempty" bson:"options,omitempty"`
}

type FormFieldOption struct {
	Value string `json:"value" bson:"value"`
	Label string `json:"label" bson:"label"`
	Score *int   `json:"score,omitempty" bson:"score,omitempty"`
}

// SuccessBlock is purely presentational completion metadata.
type SuccessBlock struct {
	Title           string `json:"title" bson:"title"`
	Message         string `json:"message" bson:"message"`
	PrimaryCtaLabel string `json:"primaryCtaLabel,omitempty" bson:"primaryCtaLabel,omitempty"`
	PrimaryCtaTo    string `json:"primaryCtaTo,omitempty" bson:"primaryCtaTo,omitempty"`
}

type ScoringConfig struct {
	Enabled bool          `json:"enabled" bson:"enabled"`
	Results []ScoreResult `json:"results" bson:"results"`
}

// ScoreResult maps an inclusive score range to a clinical result bucket.
// Ranges are matched in authoring order, first match wins.
type ScoreResult struct {
	MinScore    int    `json:"min_score" bson:"minScore"`
	MaxScore    int    `json:"max_score" bson:"maxScore"`
	ResultTitle string `json:"result_title" bson:"resultTitle"`
	ResultText  string `json:"result_text" bson:"resultText"`
}

// AllFields flattens every section's fields in presentation order.
func (s *FormSchema) AllFields() []FormField {
	var fields []FormField
	for _, section := range s.Sections {
		fields = append(fields, section.Fields...)
	}
	return fields
}

func (f *FormField) HasOptions() bool {
	return f.Type == FieldTypeRadio || f.Type == FieldTypeCheckbox
}

// Validate checks the structural invariants of a schema: field keys unique
// across all sections, option values unique per field, options present for
// choice fields, and per-range min<=max. Overlapping or gapped score ranges
// are allowed; range lookup is first-match by contract.
func (s *FormSchema) Validate() error {
	seenKeys := make(map[string]bool)
	for _, section := range s.Sections {
		for _, field := range section.Fields {
			if field.Key == "" {
				return fmt.Errorf("field without key in section %q", section.Title)
			}
			if seenKeys[field.Key] {
				return fmt.Errorf("duplicate field key %q", field.Key)
			}
			seenKeys[field.Key] = true

			switch field.Type {
			case FieldTypeText, FieldTypeTextarea, FieldTypeNumber:
			case FieldTypeRadio, FieldTypeCheckbox:
				if len(field.Options) == 0 {
					return fmt.Errorf("field %q of type %s requires options", field.Key, field.Type)
				}
				seenValues := make(map[string]bool)
				for _, option := range field.Options {
					if seenValues[option.Value] {
						return fmt.Errorf("duplicate option value %q on field %q", option.Value, field.Key)
					}
					seenValues[option.Value] = true
				}
			default:
				return fmt.Errorf("field %q has unknown type %q", field.Key, field.Type)
			}
		}
	}

	if s.Scoring != nil {
		for i, result := range s.Scoring.Results {
			if result.MinScore > result.MaxScore {
				return fmt.Errorf("score range %d has min %d greater than max %d", i, result.MinScore, result.MaxScore)
			}
		}
	}
	return nil
}
