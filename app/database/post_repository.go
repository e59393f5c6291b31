package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lysyi3m/reddit-pulse/app/sentiment"
)

var _ PostRepository = (*SQLitePostRepository)(nil)

// SQLitePostRepository handles database operations for posts
type SQLitePostRepository struct {
	db *DB
}

func NewPostRepository(db *DB) *SQLitePostRepository {
	return &SQLitePostRepository{db: db}
}

// Upsert inserts the post or replaces the existing row sharing its
// post_id. The replacement covers every payload column in one
// statement, so a partial overwrite is not a possible outcome. The
// conflict update keeps the original rowid, which preserves first-seen
// ordering for tie-breaks in the sentiment queries.
func (r *SQLitePostRepository) Upsert(post Post) error {
	_, err := r.db.Exec(`
		INSERT INTO posts (
			post_id, source, title, author, score, comment_count,
			upvote_ratio, sentiment_score, sentiment_label, fetched_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (post_id) DO UPDATE SET
			source = excluded.source,
			title = excluded.title,
			author = excluded.author,
			score = excluded.score,
			comment_count = excluded.comment_count,
			upvote_ratio = excluded.upvote_ratio,
			sentiment_score = excluded.sentiment_score,
			sentiment_label = excluded.sentiment_label,
			fetched_at = excluded.fetched_at
	`, post.PostID, post.Source, post.Title, post.Author, post.Score,
		post.CommentCount, post.UpvoteRatio, post.SentimentScore,
		string(post.SentimentLabel), formatTime(post.FetchedAt))

	if err != nil {
		return fmt.Errorf("failed to upsert post: %w", err)
	}

	return nil
}

// GetPost returns the stored post with the given ID, or nil if absent
func (r *SQLitePostRepository) GetPost(postID string) (*Post, error) {
	var post Post
	var label, fetchedAt, createdAt string

	err := r.db.QueryRow(`
		SELECT post_id, source, title, author, score, comment_count,
		       upvote_ratio, COALESCE(sentiment_score, 0), COALESCE(sentiment_label, ''),
		       fetched_at, created_at
		FROM posts
		WHERE post_id = ?
	`, postID).Scan(
		&post.PostID, &post.Source, &post.Title, &post.Author, &post.Score,
		&post.CommentCount, &post.UpvoteRatio, &post.SentimentScore, &label,
		&fetchedAt, &createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	post.SentimentLabel = sentiment.Label(label)
	post.FetchedAt = parseTime(fetchedAt)
	post.CreatedAt = parseTime(createdAt)

	return &post, nil
}

// GetPostCount returns the total number of stored posts
func (r *SQLitePostRepository) GetPostCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get post count: %w", err)
	}
	return count, nil
}

// GetOverallStats returns corpus-wide counters and averages. The
// averages come back nil when no posts are stored.
func (r *SQLitePostRepository) GetOverallStats() (OverallStats, error) {
	var stats OverallStats
	var avgScore, avgComments sql.NullFloat64

	err := r.db.QueryRow(`
		SELECT COUNT(*), AVG(score), AVG(comment_count)
		FROM posts
	`).Scan(&stats.TotalPosts, &avgScore, &avgComments)

	if err != nil {
		return OverallStats{}, fmt.Errorf("failed to get overall stats: %w", err)
	}

	if avgScore.Valid {
		stats.AvgScore = &avgScore.Float64
	}
	if avgComments.Valid {
		stats.AvgCommentCount = &avgComments.Float64
	}

	return stats, nil
}

// GetSentimentExtremes returns the most positive and most negative
// titles, or nil when the store is empty. Ties break first-seen:
// rowid order is insertion order, and upserts keep the original rowid.
func (r *SQLitePostRepository) GetSentimentExtremes() (*SentimentExtremes, error) {
	var extremes SentimentExtremes

	err := r.db.QueryRow(`
		SELECT title FROM posts
		WHERE sentiment_score IS NOT NULL
		ORDER BY sentiment_score DESC, rowid ASC
		LIMIT 1
	`).Scan(&extremes.MostPositiveTitle)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get most positive post: %w", err)
	}

	err = r.db.QueryRow(`
		SELECT title FROM posts
		WHERE sentiment_score IS NOT NULL
		ORDER BY sentiment_score ASC, rowid ASC
		LIMIT 1
	`).Scan(&extremes.MostNegativeTitle)

	if err != nil {
		return nil, fmt.Errorf("failed to get most negative post: %w", err)
	}

	return &extremes, nil
}

// GetSentimentDistribution returns a count per label, covering only
// labels actually present in the store.
func (r *SQLitePostRepository) GetSentimentDistribution() (map[sentiment.Label]int, error) {
	rows, err := r.db.Query(`
		SELECT sentiment_label, COUNT(*)
		FROM posts
		WHERE sentiment_label IS NOT NULL
		GROUP BY sentiment_label
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get sentiment distribution: %w", err)
	}
	defer rows.Close()

	distribution := make(map[sentiment.Label]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, fmt.Errorf("failed to scan distribution row: %w", err)
		}
		distribution[sentiment.Label(label)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating distribution rows: %w", err)
	}

	return distribution, nil
}

// GetTopPostsByScore returns up to limit posts ordered by score
// descending, ties broken by post_id ascending for determinism.
func (r *SQLitePostRepository) GetTopPostsByScore(limit int) ([]TopPost, error) {
	rows, err := r.db.Query(`
		SELECT title, source, score, COALESCE(sentiment_label, '')
		FROM posts
		ORDER BY score DESC, post_id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get top posts: %w", err)
	}
	defer rows.Close()

	var posts []TopPost
	for rows.Next() {
		var post TopPost
		var label string
		if err := rows.Scan(&post.Title, &post.Source, &post.Score, &label); err != nil {
			return nil, fmt.Errorf("failed to scan top post row: %w", err)
		}
		post.SentimentLabel = sentiment.Label(label)
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating top post rows: %w", err)
	}

	return posts, nil
}

// Timestamps are stored as RFC 3339 UTC strings so that lexical order
// matches chronological order.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
