package sentiment

// Word-level polarity values in [-1, 1]. Derived from common
// English-sentiment wordlists; lookups happen after case folding, so
// every key is lowercase.
var lexicon = map[string]float64{
	// Positive
	"amazing":     0.6,
	"awesome":     1.0,
	"beautiful":   0.85,
	"best":        1.0,
	"better":      0.5,
	"brilliant":   0.9,
	"celebrate":   0.5,
	"charming":    0.6,
	"clean":       0.367,
	"clever":      0.5,
	"comfortable": 0.5,
	"cool":        0.35,
	"delicious":   1.0,
	"delight":     1.0,
	"easy":        0.433,
	"effective":   0.6,
	"elegant":     0.5,
	"enjoy":       0.4,
	"excellent":   1.0,
	"exciting":    0.3,
	"fantastic":   0.4,
	"fast":        0.2,
	"favorite":    0.5,
	"fresh":       0.3,
	"fun":         0.3,
	"generous":    0.6,
	"glad":        0.5,
	"good":        0.7,
	"great":       0.8,
	"happy":       0.8,
	"helpful":     0.5,
	"impressive":  1.0,
	"incredible":  0.9,
	"interesting": 0.5,
	"joy":         0.8,
	"like":        0.3,
	"love":        0.5,
	"lovely":      0.5,
	"nice":        0.6,
	"outstanding": 1.0,
	"perfect":     1.0,
	"pleasant":    0.733,
	"powerful":    0.5,
	"proud":       0.65,
	"reliable":    0.5,
	"remarkable":  0.75,
	"rich":        0.375,
	"safe":        0.5,
	"smart":       0.55,
	"solid":       0.4,
	"strong":      0.45,
	"stunning":    0.9,
	"succeed":     0.6,
	"success":     0.65,
	"successful":  0.75,
	"superb":      0.85,
	"sweet":       0.35,
	"terrific":    0.8,
	"thanks":      0.4,
	"useful":      0.3,
	"win":         0.8,
	"winner":      0.7,
	"wonderful":   1.0,
	"wow":         0.4,

	// Negative
	"angry":         -0.5,
	"annoying":      -0.8,
	"awful":         -1.0,
	"bad":           -0.7,
	"boring":        -1.0,
	"broken":        -0.4,
	"catastrophe":   -0.8,
	"crash":         -0.5,
	"creepy":        -0.6,
	"cruel":         -0.8,
	"danger":        -0.6,
	"dangerous":     -0.6,
	"dead":          -0.2,
	"difficult":     -0.5,
	"dirty":         -0.6,
	"disappointing": -0.75,
	"disaster":      -0.8,
	"dreadful":      -1.0,
	"fail":          -0.5,
	"failure":       -0.6,
	"fake":          -0.5,
	"fear":          -0.6,
	"greedy":        -0.8,
	"hate":          -0.8,
	"horrible":      -1.0,
	"hurt":          -0.6,
	"lose":          -0.4,
	"loss":          -0.4,
	"mess":          -0.4,
	"miserable":     -1.0,
	"nasty":         -1.0,
	"outrage":       -0.8,
	"pain":          -0.7,
	"painful":       -0.7,
	"pathetic":      -1.0,
	"poor":          -0.4,
	"problem":       -0.3,
	"sad":           -0.5,
	"scam":          -0.7,
	"scary":         -0.5,
	"shame":         -0.55,
	"sick":          -0.7,
	"slow":          -0.3,
	"stupid":        -0.8,
	"terrible":      -1.0,
	"toxic":         -0.7,
	"tragedy":       -0.8,
	"tragic":        -0.8,
	"ugly":          -0.7,
	"unfair":        -0.5,
	"unhappy":       -0.6,
	"unreliable":    -0.5,
	"useless":       -0.5,
	"waste":         -0.4,
	"weak":          -0.5,
	"worse":         -0.6,
	"worst":         -1.0,
	"wrong":         -0.5,

	// Weak or context-dependent words kept near zero so they do not
	// dominate short titles.
	"big":   0.0,
	"long":  -0.05,
	"new":   0.136,
	"old":   0.1,
	"small": -0.25,
}
