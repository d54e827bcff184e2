// Package scoring computes test results from questionnaire answers. All
// functions are pure: missing or unexpected answers contribute nothing and
// never produce an error.
package scoring

import (
	"nutricare-service/internal/app/models"
)

// CalculateScore sums the scores of the selected options of every radio
// field in the schema. Only radio fields count; checkbox options are ignored
// even if they carry a score. A field whose answer matches no option, or
// whose matched option has no score, contributes 0.
func CalculateScore(schema *models.FormSchema, answers map[string]interface{}) int {
	totalScore := 0
	for _, section := range schema.Sections {
		for _, field := range section.Fields {
			if field.Type != models.FieldTypeRadio || len(field.Options) == 0 {
				continue
			}
			selectedValue, ok := answers[field.Key].(string)
			if !ok {
				continue
			}
			for _, option := range field.Options {
				if option.Value == selectedValue {
					if option.Score != nil {
						totalScore += *option.Score
					}
					break
				}
			}
		}
	}
	return totalScore
}

// ResolveScoreResult returns the first result whose inclusive range contains
// score, in authoring order. Ranges may overlap; the earliest listed match
// wins. Returns nil when no range matches, the caller renders a generic
// fallback.
func ResolveScoreResult(scoring *models.ScoringConfig, score int) *models.ScoreResult {
	if scoring == nil {
		return nil
	}
	for i := range scoring.Results {
		result := &scoring.Results[i]
		if score >= result.MinScore && score <= result.MaxScore {
			return result
		}
	}
	return nil
}

// HasScoringEnabled reports whether the schema is a test: scoring present,
// enabled, and carrying at least one result range.
func HasScoringEnabled(schema *models.FormSchema) bool {
	return schema.Scoring != nil && schema.Scoring.Enabled && len(schema.Scoring.Results) > 0
}
