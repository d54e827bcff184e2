package scoring

import (
	"testing"

	"nutricare-service/internal/app/models"
)

func intPtr(v int) *int { return &v }

func twoQuestionTestSchema() *models.FormSchema {
	return &models.FormSchema{
		Version: 1,
		Sections: []models.FormSection{
			{
				Title: "Questions",
				Fields: []models.FormField{
					{
						Key:      "f1",
						Label:    "First",
						Type:     models.FieldTypeRadio,
						Required: true,
						Options: []models.FormFieldOption{
							{Value: "a", Label: "A", Score: intPtr(0)},
							{Value: "b", Label: "B", Score: intPtr(1)},
						},
					},
					{
						Key:      "f2",
						Label:    "Second",
						Type:     models.FieldTypeRadio,
						Required: true,
						Options: []models.FormFieldOption{
							{Value: "c", Label: "C", Score: intPtr(0)},
							{Value: "d", Label: "D", Score: intPtr(2)},
						},
					},
				},
			},
		},
		Scoring: &models.ScoringConfig{
			Enabled: true,
			Results: []models.ScoreResult{
				{MinScore: 0, MaxScore: 1, ResultTitle: "low", ResultText: "Low range"},
				{MinScore: 2, MaxScore: 3, ResultTitle: "high", ResultText: "High range"},
			},
		},
	}
}

func TestCalculateScoreSumsSelectedRadioOptions(t *testing.T) {
	schema := twoQuestionTestSchema()

	tests := []struct {
		name    string
		answers map[string]interface{}
		want    int
	}{
		{"max answers", map[string]interface{}{"f1": "b", "f2": "d"}, 3},
		{"min answers", map[string]interface{}{"f1": "a", "f2": "c"}, 0},
		{"partial answers contribute zero", map[string]interface{}{"f1": "b"}, 1},
		{"unknown value contributes zero", map[string]interface{}{"f1": "b", "f2": "zzz"}, 1},
		{"no answers", map[string]interface{}{}, 0},
		{"non string answer contributes zero", map[string]interface{}{"f1": 3.0, "f2": "d"}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateScore(schema, tt.answers)
			if got != tt.want {
				t.Errorf("CalculateScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCalculateScoreIgnoresCheckboxScores(t *testing.T) {
	schema := &models.FormSchema{
		Version: 1,
		Sections: []models.FormSection{
			{
				Fields: []models.FormField{
					{
						Key:  "multi",
						Type: models.FieldTypeCheckbox,
						Options: []models.FormFieldOption{
							{Value: "x", Score: intPtr(5)},
						},
					},
				},
			},
		},
	}
	if got := CalculateScore(schema, map[string]interface{}{"multi": "x"}); got != 0 {
		t.Errorf("checkbox score counted: got %d, want 0", got)
	}
}

func TestCalculateScoreSkipsOptionsWithoutScore(t *testing.T) {
	schema := &models.FormSchema{
		Sections: []models.FormSection{
			{
				Fields: []models.FormField{
					{
						Key:  "q",
						Type: models.FieldTypeRadio,
						Options: []models.FormFieldOption{
							{Value: "plain", Label: "Plain"},
						},
					},
				},
			},
		},
	}
	if got := CalculateScore(schema, map[string]interface{}{"q": "plain"}); got != 0 {
		t.Errorf("option without score counted: got %d, want 0", got)
	}
}

func TestResolveScoreResultMatchesSpecScenario(t *testing.T) {
	schema := twoQuestionTestSchema()

	high := ResolveScoreResult(schema.Scoring, CalculateScore(schema, map[string]interface{}{"f1": "b", "f2": "d"}))
	if high == nil || high.ResultTitle != "high" {
		t.Fatalf("score 3 resolved to %+v, want high", high)
	}

	low := ResolveScoreResult(schema.Scoring, CalculateScore(schema, map[string]interface{}{"f1": "a", "f2": "c"}))
	if low == nil || low.ResultTitle != "low" {
		t.Fatalf("score 0 resolved to %+v, want low", low)
	}
}

func TestResolveScoreResultFirstMatchWinsOnOverlap(t *testing.T) {
	cfg := &models.ScoringConfig{
		Enabled: true,
		Results: []models.ScoreResult{
			{MinScore: 0, MaxScore: 10, ResultTitle: "broad"},
			{MinScore: 5, MaxScore: 5, ResultTitle: "exact"},
		},
	}
	got := ResolveScoreResult(cfg, 5)
	if got == nil || got.ResultTitle != "broad" {
		t.Errorf("overlap resolved to %+v, want the earliest listed range", got)
	}
}

func TestResolveScoreResultReturnsNilOnGap(t *testing.T) {
	cfg := &models.ScoringConfig{
		Enabled: true,
		Results: []models.ScoreResult{
			{MinScore: 0, MaxScore: 1, ResultTitle: "low"},
		},
	}
	if got := ResolveScoreResult(cfg, 7); got != nil {
		t.Errorf("gap resolved to %+v, want nil", got)
	}
	if got := ResolveScoreResult(nil, 0); got != nil {
		t.Errorf("nil config resolved to %+v, want nil", got)
	}
}

func TestHasScoringEnabled(t *testing.T) {
	tests := []struct {
		name   string
		schema *models.FormSchema
		want   bool
	}{
		{"no scoring", &models.FormSchema{}, false},
		{"disabled", &models.FormSchema{Scoring: &models.ScoringConfig{Enabled: false, Results: []models.ScoreResult{{}}}}, false},
		{"enabled without results", &models.FormSchema{Scoring: &models.ScoringConfig{Enabled: true}}, false},
		{"enabled with results", &models.FormSchema{Scoring: &models.ScoringConfig{Enabled: true, Results: []models.ScoreResult{{}}}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasScoringEnabled(tt.schema); got != tt.want {
				t.Errorf("HasScoringEnabled() = %v, want %v", got, tt.want)
			}
		})
	}
}
