package analytics

import (
	"fmt"
	"time"

	"github.com/lysyi3m/reddit-pulse/app/database"
)

// TopPostsLimit matches the report's top-posts table size. Kept fixed
// for parity with previously generated reports.
const TopPostsLimit = 10

type Aggregator struct {
	repo database.PostRepository
}

func NewAggregator(repo database.PostRepository) *Aggregator {
	return &Aggregator{repo: repo}
}

// Run combines the store's aggregation queries into one snapshot. An
// empty store is a valid input: the snapshot then carries absent
// averages and extremes, an empty distribution, and an empty top list.
func (a *Aggregator) Run() (*Snapshot, error) {
	overall, err := a.repo.GetOverallStats()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate overall stats: %w", err)
	}

	extremes, err := a.repo.GetSentimentExtremes()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sentiment extremes: %w", err)
	}

	distribution, err := a.repo.GetSentimentDistribution()
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sentiment distribution: %w", err)
	}

	topPosts, err := a.repo.GetTopPostsByScore(TopPostsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate top posts: %w", err)
	}

	return &Snapshot{
		GeneratedAt:  time.Now().UTC(),
		Overall:      overall,
		Extremes:     extremes,
		Distribution: distribution,
		TopPosts:     topPosts,
	}, nil
}
