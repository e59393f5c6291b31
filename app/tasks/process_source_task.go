package tasks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/lysyi3m/reddit-pulse/app/database"
	"github.com/lysyi3m/reddit-pulse/app/extractor"
	"github.com/lysyi3m/reddit-pulse/app/sources"
)

// ProcessSourceTask fetches one source, normalizes its items and
// upserts the valid ones. Invalid items and failed upserts are logged
// and skipped; only a source-level fetch failure fails the task.
type ProcessSourceTask struct {
	Task
	Source sources.Source
	ext    *extractor.Extractor
	repo   database.PostRepository

	// Counters populated by Execute, read by one-shot runs for the
	// per-source summary.
	Fetched int
	Stored  int
	Invalid int
}

func NewProcessSourceTask(source sources.Source, ext *extractor.Extractor, repo database.PostRepository) *ProcessSourceTask {
	return &ProcessSourceTask{
		Task:   NewTask(TaskTypeProcessSource, source.Name),
		Source: source,
		ext:    ext,
		repo:   repo,
	}
}

func (t *ProcessSourceTask) Execute(ctx context.Context) error {

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	items, err := t.ext.Fetch(ctx, t.Source)
	if err != nil {
		return fmt.Errorf("failed to fetch source: %w", err)
	}

	t.Fetched = len(items)
	t.Stored = 0
	t.Invalid = 0

	for _, item := range items {
		post, err := extractor.Normalize(item, t.Source.Name)
		if err != nil {
			t.Invalid++

			var validationErr *extractor.ValidationError
			if errors.As(err, &validationErr) {
				slog.Warn("Skipping invalid item", "source", t.SourceName, "field", validationErr.Field, "reason", validationErr.Reason)
			} else {
				slog.Warn("Skipping invalid item", "source", t.SourceName, "error", err)
			}
			continue
		}

		if err := t.repo.Upsert(*post); err != nil {
			slog.Error("Failed to store post, skipping", "source", t.SourceName, "post_id", post.PostID, "error", err)
			continue
		}
		t.Stored++
	}

	slog.Info("Task completed",
		"type", "ProcessSource",
		"source", t.SourceName,
		"duration", t.GetDuration(),
		"fetched", t.Fetched,
		"stored", t.Stored,
		"invalid", t.Invalid)

	return nil
}
