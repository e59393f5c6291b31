package extractor

import (
	"fmt"
)

// RawItem is the typed intermediate between the upstream item mapping
// and a validated post. Every field the upstream may omit is a pointer;
// defaulting and validation happen in Normalize, nowhere else.
type RawItem struct {
	ID          *string  `json:"id"`
	Title       *string  `json:"title"`
	Author      *string  `json:"author"`
	Score       *int     `json:"score"`
	NumComments *int     `json:"num_comments"`
	UpvoteRatio *float64 `json:"upvote_ratio"`
}

type redditListing struct {
	Data struct {
		Children []struct {
			Data RawItem `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

// SourceUnavailableError reports a failed source fetch (network or
// parse). The run skips the source and continues.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("source '%s' unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// ValidationError reports a single raw item that failed normalization.
// The batch skips the item and continues.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
