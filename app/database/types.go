package database

import (
	"github.com/lysyi3m/reddit-pulse/app/sentiment"
)

// OverallStats aggregates the whole stored corpus. Averages are nil
// (not zero) when the table is empty.
type OverallStats struct {
	TotalPosts      int
	AvgScore        *float64
	AvgCommentCount *float64
}

// SentimentExtremes holds the titles of the highest- and lowest-scoring
// posts by sentiment. Ties resolve to the first stored row.
type SentimentExtremes struct {
	MostPositiveTitle string
	MostNegativeTitle string
}

type TopPost struct {
	Title          string
	Source         string
	Score          int
	SentimentLabel sentiment.Label
}
