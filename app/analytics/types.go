package analytics

import (
	"time"

	"github.com/lysyi3m/reddit-pulse/app/database"
	"github.com/lysyi3m/reddit-pulse/app/sentiment"
)

// Snapshot is a point-in-time aggregate over the stored corpus. It is
// built once per run and never mutated afterwards; renderers and API
// handlers consume it as-is.
type Snapshot struct {
	GeneratedAt  time.Time
	Overall      database.OverallStats
	Extremes     *database.SentimentExtremes
	Distribution map[sentiment.Label]int
	TopPosts     []database.TopPost
}
