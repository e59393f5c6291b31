package sentiment

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

type Label string

const (
	LabelPositive Label = "Positive"
	LabelNegative Label = "Negative"
	LabelNeutral  Label = "Neutral"
)

// Classification thresholds. Fixed constants: changing them breaks
// parity with previously generated reports.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// Analyze computes a lexical polarity score for the given text and the
// matching three-way label. The score is the mean polarity of recognized
// tokens, clamped to [-1, 1]; unrecognized tokens contribute nothing.
// A text with no recognized tokens scores 0.0 and reads as Neutral.
func Analyze(text string) (float64, Label) {
	score := polarity(text)
	return score, Classify(score)
}

// Classify maps a polarity score to its label. Thresholds are applied
// in order: positive first, then negative, everything else is neutral.
func Classify(score float64) Label {
	switch {
	case score > positiveThreshold:
		return LabelPositive
	case score < negativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}

func polarity(text string) float64 {
	tokens := tokenize(text)

	var sum float64
	recognized := 0
	for _, token := range tokens {
		value, ok := lexicon[token]
		if !ok {
			continue
		}
		sum += value
		recognized++
	}

	if recognized == 0 {
		return 0.0
	}

	score := sum / float64(recognized)
	return clamp(score)
}

func tokenize(text string) []string {
	// Casers are stateful, so a fresh one per call keeps Analyze safe
	// for concurrent workers.
	folded := cases.Fold().String(text)

	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func clamp(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	if score < -1.0 {
		return -1.0
	}
	return score
}
