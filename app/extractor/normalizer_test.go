package extractor

import (
	"errors"
	"testing"

	"github.com/lysyi3m/reddit-pulse/app/sentiment"
)

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }

func fullRawItem() RawItem {
	return RawItem{
		ID:          strPtr("abc123"),
		Title:       strPtr("I love this!"),
		Author:      strPtr("gopher"),
		Score:       intPtr(42),
		NumComments: intPtr(7),
		UpvoteRatio: floatPtr(0.93),
	}
}

func TestNormalizeValidItem(t *testing.T) {
	post, err := Normalize(fullRawItem(), "golang")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if post.PostID != "abc123" {
		t.Errorf("Expected post_id 'abc123', got: %s", post.PostID)
	}
	if post.Source != "golang" {
		t.Errorf("Expected source 'golang', got: %s", post.Source)
	}
	if post.Author != "gopher" {
		t.Errorf("Expected author 'gopher', got: %s", post.Author)
	}
	if post.Score != 42 {
		t.Errorf("Expected score 42, got: %d", post.Score)
	}
	if post.CommentCount != 7 {
		t.Errorf("Expected comment count 7, got: %d", post.CommentCount)
	}
	if post.UpvoteRatio != 0.93 {
		t.Errorf("Expected upvote ratio 0.93, got: %f", post.UpvoteRatio)
	}
	if post.SentimentLabel != sentiment.LabelPositive {
		t.Errorf("Expected Positive sentiment for title, got: %s", post.SentimentLabel)
	}
	if post.SentimentScore <= 0.1 {
		t.Errorf("Expected sentiment score > 0.1, got: %f", post.SentimentScore)
	}
	if post.FetchedAt.IsZero() {
		t.Error("Expected fetched_at to be stamped")
	}
}

func TestNormalizeDefaults(t *testing.T) {
	raw := RawItem{
		ID:    strPtr("abc123"),
		Title: strPtr("Plain title"),
	}

	post, err := Normalize(raw, "golang")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if post.Author != DeletedAuthor {
		t.Errorf("Expected author default '%s', got: %s", DeletedAuthor, post.Author)
	}
	if post.Score != 0 {
		t.Errorf("Expected score default 0, got: %d", post.Score)
	}
	if post.CommentCount != 0 {
		t.Errorf("Expected comment count default 0, got: %d", post.CommentCount)
	}
	if post.UpvoteRatio != 0.5 {
		t.Errorf("Expected upvote ratio default 0.5, got: %f", post.UpvoteRatio)
	}
}

func TestNormalizeEmptyAuthorDefaults(t *testing.T) {
	raw := fullRawItem()
	raw.Author = strPtr("")

	post, err := Normalize(raw, "golang")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if post.Author != DeletedAuthor {
		t.Errorf("Expected empty author to default to '%s', got: %s", DeletedAuthor, post.Author)
	}
}

func TestNormalizeRejectsInvalidItems(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(raw *RawItem)
		field  string
	}{
		{
			name:   "missing post_id",
			mutate: func(raw *RawItem) { raw.ID = nil },
			field:  "post_id",
		},
		{
			name:   "empty post_id",
			mutate: func(raw *RawItem) { raw.ID = strPtr("") },
			field:  "post_id",
		},
		{
			name:   "missing title",
			mutate: func(raw *RawItem) { raw.Title = nil },
			field:  "title",
		},
		{
			name:   "empty title",
			mutate: func(raw *RawItem) { raw.Title = strPtr("") },
			field:  "title",
		},
		{
			name:   "negative score",
			mutate: func(raw *RawItem) { raw.Score = intPtr(-1) },
			field:  "score",
		},
		{
			name:   "negative comment count",
			mutate: func(raw *RawItem) { raw.NumComments = intPtr(-5) },
			field:  "comment_count",
		},
		{
			name:   "upvote ratio above range",
			mutate: func(raw *RawItem) { raw.UpvoteRatio = floatPtr(1.2) },
			field:  "upvote_ratio",
		},
		{
			name:   "upvote ratio below range",
			mutate: func(raw *RawItem) { raw.UpvoteRatio = floatPtr(-0.1) },
			field:  "upvote_ratio",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := fullRawItem()
			tt.mutate(&raw)

			post, err := Normalize(raw, "golang")
			if post != nil {
				t.Errorf("Expected no post for invalid item, got: %+v", post)
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected ValidationError, got: %v", err)
			}
			if validationErr.Field != tt.field {
				t.Errorf("Expected failure on field %s, got: %s", tt.field, validationErr.Field)
			}
		})
	}
}

func TestNormalizeEmptySource(t *testing.T) {
	post, err := Normalize(fullRawItem(), "")
	if post != nil {
		t.Errorf("Expected no post for empty source, got: %+v", post)
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got: %v", err)
	}
}

func TestNormalizeBoundaryRatios(t *testing.T) {
	for _, ratio := range []float64{0.0, 1.0} {
		raw := fullRawItem()
		raw.UpvoteRatio = floatPtr(ratio)

		post, err := Normalize(raw, "golang")
		if err != nil {
			t.Errorf("Expected ratio %f to be valid, got: %v", ratio, err)
			continue
		}
		if post.UpvoteRatio != ratio {
			t.Errorf("Expected ratio %f, got: %f", ratio, post.UpvoteRatio)
		}
	}
}
