package sentiment

import (
	"testing"
)

func TestAnalyzeScenarios(t *testing.T) {
	tests := []struct {
		name  string
		title string
		label Label
	}{
		{
			name:  "positive title",
			title: "I love this!",
			label: LabelPositive,
		},
		{
			name:  "negative title",
			title: "This is terrible.",
			label: LabelNegative,
		},
		{
			name:  "neutral title",
			title: "The sky is blue.",
			label: LabelNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, label := Analyze(tt.title)

			if label != tt.label {
				t.Errorf("Expected label %s, got: %s (score %f)", tt.label, label, score)
			}

			switch tt.label {
			case LabelPositive:
				if score <= 0.1 {
					t.Errorf("Expected score > 0.1 for positive title, got: %f", score)
				}
			case LabelNegative:
				if score >= -0.1 {
					t.Errorf("Expected score < -0.1 for negative title, got: %f", score)
				}
			case LabelNeutral:
				if score < -0.1 || score > 0.1 {
					t.Errorf("Expected score in [-0.1, 0.1] for neutral title, got: %f", score)
				}
			}
		})
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	title := "An awesome day with a terrible ending"

	score1, label1 := Analyze(title)
	score2, label2 := Analyze(title)

	if score1 != score2 {
		t.Errorf("Expected identical scores for identical input, got: %f and %f", score1, score2)
	}
	if label1 != label2 {
		t.Errorf("Expected identical labels for identical input, got: %s and %s", label1, label2)
	}
}

func TestAnalyzeEmptyTitle(t *testing.T) {
	score, label := Analyze("")

	if score != 0.0 {
		t.Errorf("Expected score 0.0 for empty title, got: %f", score)
	}
	if label != LabelNeutral {
		t.Errorf("Expected Neutral label for empty title, got: %s", label)
	}
}

func TestAnalyzeUnrecognizedTokens(t *testing.T) {
	score, label := Analyze("quarterly spreadsheet reconciliation meeting")

	if score != 0.0 {
		t.Errorf("Expected score 0.0 for unrecognized tokens, got: %f", score)
	}
	if label != LabelNeutral {
		t.Errorf("Expected Neutral label, got: %s", label)
	}
}

func TestAnalyzeAveragesRecognizedTokensOnly(t *testing.T) {
	// "good" (0.7) and "bad" (-0.7) average to 0.0; the other tokens
	// are not in the lexicon and must not dilute the mean.
	score, label := Analyze("good product with bad packaging")

	if score != 0.0 {
		t.Errorf("Expected balanced score 0.0, got: %f", score)
	}
	if label != LabelNeutral {
		t.Errorf("Expected Neutral label, got: %s", label)
	}
}

func TestAnalyzeCaseFolding(t *testing.T) {
	lower, _ := Analyze("great success")
	upper, _ := Analyze("GREAT SUCCESS")

	if lower != upper {
		t.Errorf("Expected case-insensitive scoring, got: %f and %f", lower, upper)
	}
	if lower <= 0.1 {
		t.Errorf("Expected positive score, got: %f", lower)
	}
}

func TestClassifyThresholds(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		label Label
	}{
		{"above positive threshold", 0.11, LabelPositive},
		{"exactly positive threshold", 0.1, LabelNeutral},
		{"zero", 0.0, LabelNeutral},
		{"exactly negative threshold", -0.1, LabelNeutral},
		{"below negative threshold", -0.11, LabelNegative},
		{"maximum", 1.0, LabelPositive},
		{"minimum", -1.0, LabelNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.score); got != tt.label {
				t.Errorf("Classify(%f) = %s, want %s", tt.score, got, tt.label)
			}
		})
	}
}

func TestPolarityClamped(t *testing.T) {
	score, _ := Analyze("awesome excellent perfect wonderful delicious")

	if score > 1.0 || score < -1.0 {
		t.Errorf("Expected score within [-1, 1], got: %f", score)
	}
}
