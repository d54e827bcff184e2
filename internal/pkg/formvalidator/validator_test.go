package formvalidator

import (
	"encoding/json"
	"reflect"
	"testing"

	"nutricare-service/internal/app/models"
)

func sampleSchema() *models.FormSchema {
	return &models.FormSchema{
		Version: 1,
		Sections: []models.FormSection{
			{
				Title: "Intake",
				Fields: []models.FormField{
					{Key: "name", Label: "Name", Type: models.FieldTypeText, Required: true},
					{Key: "notes", Label: "Notes", Type: models.FieldTypeTextarea},
					{Key: "weight", Label: "Weight", Type: models.FieldTypeNumber},
					{
						Key:      "goal",
						Label:    "Goal",
						Type:     models.FieldTypeRadio,
						Required: true,
						Options: []models.FormFieldOption{
							{Value: "lose", Label: "Lose"},
							{Value: "keep", Label: "Keep"},
						},
					},
					{
						Key:   "habits",
						Label: "Habits",
						Type:  models.FieldTypeCheckbox,
						Options: []models.FormFieldOption{
							{Value: "snacking", Label: "Snacking"},
							{Value: "soda", Label: "Soda"},
						},
					},
				},
			},
		},
	}
}

func TestValidateRequiredFields(t *testing.T) {
	v := New(sampleSchema())

	_, errs := v.Validate(map[string]interface{}{})
	if errs == nil {
		t.Fatal("expected validation errors for empty submission")
	}
	if got := errs["name"]; got != "this field is mandatory" {
		t.Errorf("name error = %q, want mandatory message", got)
	}
	if got := errs["goal"]; got != "you must select an option" {
		t.Errorf("goal error = %q, want select option message", got)
	}
	if _, ok := errs["notes"]; ok {
		t.Error("optional field reported as missing")
	}
}

func TestValidateCleansOptionalEmptyValues(t *testing.T) {
	v := New(sampleSchema())

	cleaned, errs := v.Validate(map[string]interface{}{
		"name":   "Ana",
		"goal":   "keep",
		"notes":  "",
		"weight": "",
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := map[string]interface{}{"name": "Ana", "goal": "keep", "habits": []string{}}
	if !reflect.DeepEqual(cleaned, want) {
		t.Errorf("cleaned = %v, want %v", cleaned, want)
	}
}

func TestValidateKeepsEmptyCheckboxSlice(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{"submitted empty selection", map[string]interface{}{
			"name":   "Ana",
			"goal":   "lose",
			"habits": []interface{}{},
		}},
		{"unanswered optional checkbox", map[string]interface{}{
			"name": "Ana",
			"goal": "lose",
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New(sampleSchema())
			cleaned, errs := v.Validate(tt.raw)
			if errs != nil {
				t.Fatalf("unexpected errors: %v", errs)
			}
			got, ok := cleaned["habits"]
			if !ok {
				t.Fatal("checkbox key missing from cleaned answers")
			}
			slice, ok := got.([]string)
			if !ok || len(slice) != 0 {
				t.Errorf("habits = %#v, want empty []string", got)
			}
		})
	}
}

func TestValidateRequiredCheckbox(t *testing.T) {
	schema := &models.FormSchema{
		Sections: []models.FormSection{
			{
				Fields: []models.FormField{
					{
						Key:      "habits",
						Type:     models.FieldTypeCheckbox,
						Required: true,
						Options: []models.FormFieldOption{
							{Value: "snacking"},
						},
					},
				},
			},
		},
	}
	v := New(schema)

	if _, errs := v.Validate(map[string]interface{}{"habits": []interface{}{}}); errs == nil {
		t.Fatal("expected error for empty required checkbox")
	} else if errs["habits"] != "you must select at least one option" {
		t.Errorf("habits error = %q", errs["habits"])
	}

	cleaned, errs := v.Validate(map[string]interface{}{"habits": []interface{}{"snacking"}})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if slice, ok := cleaned["habits"].([]string); !ok || len(slice) != 1 || slice[0] != "snacking" {
		t.Errorf("habits = %#v", cleaned["habits"])
	}
}

func TestValidateNumberCoercion(t *testing.T) {
	v := New(sampleSchema())
	base := map[string]interface{}{"name": "Ana", "goal": "keep"}

	tests := []struct {
		name string
		raw  interface{}
		want interface{}
		kept bool
	}{
		{"float64 passes through", 72.5, 72.5, true},
		{"numeric string parses", "68", float64(68), true},
		{"json number parses", json.Number("70.25"), 70.25, true},
		{"unparseable string dropped", "heavy", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := map[string]interface{}{"weight": tt.raw}
			for k, vv := range base {
				raw[k] = vv
			}
			cleaned, errs := v.Validate(raw)
			if errs != nil {
				t.Fatalf("unexpected errors: %v", errs)
			}
			got, ok := cleaned["weight"]
			if ok != tt.kept {
				t.Fatalf("weight kept = %v, want %v", ok, tt.kept)
			}
			if tt.kept && got != tt.want {
				t.Errorf("weight = %v (%T), want %v", got, got, tt.want)
			}
		})
	}
}

func TestValidateRequiredNumberRejectsUnparseable(t *testing.T) {
	schema := &models.FormSchema{
		Sections: []models.FormSection{
			{
				Fields: []models.FormField{
					{Key: "age", Type: models.FieldTypeNumber, Required: true},
				},
			},
		},
	}
	v := New(schema)
	if _, errs := v.Validate(map[string]interface{}{"age": "abc"}); errs == nil {
		t.Fatal("expected error for unparseable required number")
	}
}

func TestValidateWhitespaceTextPasses(t *testing.T) {
	v := New(sampleSchema())
	cleaned, errs := v.Validate(map[string]interface{}{"name": "   ", "goal": "keep"})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if cleaned["name"] != "   " {
		t.Errorf("name = %q, whitespace should pass untrimmed", cleaned["name"])
	}
}

func TestValidateIgnoresUnknownKeys(t *testing.T) {
	v := New(sampleSchema())
	cleaned, errs := v.Validate(map[string]interface{}{
		"name":   "Ana",
		"goal":   "lose",
		"rogue":  "value",
		"rogue2": 42,
	})
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := cleaned["rogue"]; ok {
		t.Error("unknown key survived cleanup")
	}
}
