package database

import (
	"time"

	"github.com/lysyi3m/reddit-pulse/app/sentiment"
)

// Post is the canonical, fully validated representation of one feed
// item. The extractor either produces a complete Post or nothing;
// partially populated records never reach this package.
type Post struct {
	PostID         string
	Source         string
	Title          string
	Author         string
	Score          int
	CommentCount   int
	UpvoteRatio    float64
	SentimentScore float64
	SentimentLabel sentiment.Label
	FetchedAt      time.Time
	CreatedAt      time.Time
}
