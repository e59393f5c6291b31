package extractor

import (
	"time"

	"github.com/lysyi3m/reddit-pulse/app/database"
	"github.com/lysyi3m/reddit-pulse/app/sentiment"
)

// DeletedAuthor is the sentinel stored when the upstream item carries
// no author.
const DeletedAuthor = "[deleted]"

// Normalize turns one raw item into a validated post, or reports why it
// cannot. Defaults apply strictly before range checks. The sentiment
// fields are always recomputed here; they are never taken from
// upstream data or prior fetches.
func Normalize(raw RawItem, sourceName string) (*database.Post, error) {
	if sourceName == "" {
		return nil, &ValidationError{Field: "source", Reason: "must not be empty"}
	}

	author := DeletedAuthor
	if raw.Author != nil && *raw.Author != "" {
		author = *raw.Author
	}

	score := 0
	if raw.Score != nil {
		score = *raw.Score
	}

	commentCount := 0
	if raw.NumComments != nil {
		commentCount = *raw.NumComments
	}

	upvoteRatio := 0.5
	if raw.UpvoteRatio != nil {
		upvoteRatio = *raw.UpvoteRatio
	}

	if raw.ID == nil || *raw.ID == "" {
		return nil, &ValidationError{Field: "post_id", Reason: "missing or empty"}
	}
	if raw.Title == nil || *raw.Title == "" {
		return nil, &ValidationError{Field: "title", Reason: "missing or empty"}
	}
	if score < 0 {
		return nil, &ValidationError{Field: "score", Reason: "must be non-negative"}
	}
	if commentCount < 0 {
		return nil, &ValidationError{Field: "comment_count", Reason: "must be non-negative"}
	}
	if upvoteRatio < 0.0 || upvoteRatio > 1.0 {
		return nil, &ValidationError{Field: "upvote_ratio", Reason: "must be within [0.0, 1.0]"}
	}

	sentimentScore, sentimentLabel := sentiment.Analyze(*raw.Title)

	return &database.Post{
		PostID:         *raw.ID,
		Source:         sourceName,
		Title:          *raw.Title,
		Author:         author,
		Score:          score,
		CommentCount:   commentCount,
		UpvoteRatio:    upvoteRatio,
		SentimentScore: sentimentScore,
		SentimentLabel: sentimentLabel,
		FetchedAt:      time.Now().UTC(),
	}, nil
}
