package database

import (
	"github.com/lysyi3m/reddit-pulse/app/sentiment"
)

type PostRepository interface {
	Upsert(post Post) error
	GetPost(postID string) (*Post, error)
	GetPostCount() (int, error)

	GetOverallStats() (OverallStats, error)
	GetSentimentExtremes() (*SentimentExtremes, error)
	GetSentimentDistribution() (map[sentiment.Label]int, error)
	GetTopPostsByScore(limit int) ([]TopPost, error)
}
