// Package formvalidator derives a structural answer validator from a form
// schema at runtime. There is no fixed validator per question set: New walks
// the schema's fields and builds one rule closure per field from its type
// and required flag.
package formvalidator

import (
	"strconv"

	"nutricare-service/internal/app/models"

	"github.com/goccy/go-json"
)

const (
	msgMandatory        = "this field is mandatory"
	msgSelectOption     = "you must select an option"
	msgSelectAtLeastOne = "you must select at least one option"
)

// rule inspects one raw answer value. It returns the normalized value, a
// keep flag (false means the key is dropped from the cleaned map), and an
// error message, empty when the value is acceptable.
type rule func(raw interface{}, answered bool) (value interface{}, keep bool, errMsg string)

type Validator struct {
	order []string
	rules map[string]rule
}

// New builds a validator for schema. Construction never fails: any
// well-formed schema yields a validator.
func New(schema *models.FormSchema) *Validator {
	v := &Validator{rules: make(map[string]rule)}
	for _, field := range schema.AllFields() {
		v.order = append(v.order, field.Key)
		v.rules[field.Key] = buildRule(field)
	}
	return v
}

// Validate checks raw answers against every field rule. On success it
// returns the cleaned answer map: empty or absent values are dropped, except
// checkbox fields which always keep their (possibly empty) selection list.
// On failure it returns one message per offending field.
func (v *Validator) Validate(raw map[string]interface{}) (map[string]interface{}, map[string]string) {
	cleaned := make(map[string]interface{})
	fieldErrors := make(map[string]string)

	for _, key := range v.order {
		rawValue, answered := raw[key]
		value, keep, errMsg := v.rules[key](rawValue, answered)
		if errMsg != "" {
			fieldErrors[key] = errMsg
			continue
		}
		if keep {
			cleaned[key] = value
		}
	}

	if len(fieldErrors) > 0 {
		return nil, fieldErrors
	}
	return cleaned, nil
}

func buildRule(field models.FormField) rule {
	switch field.Type {
	case models.FieldTypeNumber:
		return numberRule(field.Required)
	case models.FieldTypeRadio:
		return radioRule(field.Required)
	case models.FieldTypeCheckbox:
		return checkboxRule(field.Required)
	default:
		return textRule(field.Required)
	}
}

// numberRule accepts numeric or string input. Empty and unparseable strings
// coerce to absent; only a required field turns absent into an error.
func numberRule(required bool) rule {
	return func(raw interface{}, answered bool) (interface{}, bool, string) {
		number, present := coerceNumber(raw, answered)
		if !present {
			if required {
				return nil, false, msgMandatory
			}
			return nil, false, ""
		}
		return number, true, ""
	}
}

func coerceNumber(raw interface{}, answered bool) (float64, bool) {
	if !answered || raw == nil {
		return 0, false
	}
	switch value := raw.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case json.Number:
		parsed, err := value.Float64()
		if err != nil {
			return 0, false
		}
		return parsed, true
	case string:
		if value == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func radioRule(required bool) rule {
	return func(raw interface{}, answered bool) (interface{}, bool, string) {
		value, _ := raw.(string)
		if value == "" {
			if required {
				return nil, false, msgSelectOption
			}
			return nil, false, ""
		}
		return value, true, ""
	}
}

// checkboxRule is the one rule whose empty value survives cleanup: an
// optional multi-select defaults to an empty list, so the key is always
// present in the cleaned answers, answered or not.
func checkboxRule(required bool) rule {
	return func(raw interface{}, _ bool) (interface{}, bool, string) {
		values := coerceStringSlice(raw)
		if len(values) == 0 && required {
			return nil, false, msgSelectAtLeastOne
		}
		return values, true, ""
	}
}

func coerceStringSlice(raw interface{}) []string {
	switch value := raw.(type) {
	case []string:
		return value
	case []interface{}:
		out := make([]string, 0, len(value))
		for _, item := range value {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// textRule covers text and textarea. No trimming: a whitespace-only answer
// is non-empty and passes.
func textRule(required bool) rule {
	return func(raw interface{}, answered bool) (interface{}, bool, string) {
		value, _ := raw.(string)
		if value == "" {
			if required {
				return nil, false, msgMandatory
			}
			return nil, false, ""
		}
		return value, true, ""
	}
}
