package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/reddit-pulse/app/analytics"
	"github.com/lysyi3m/reddit-pulse/app/database"
	"github.com/lysyi3m/reddit-pulse/app/extractor"
	"github.com/lysyi3m/reddit-pulse/app/report"
	"github.com/lysyi3m/reddit-pulse/app/sources"
	"github.com/lysyi3m/reddit-pulse/app/tasks"
)

func NewHandler(repo database.PostRepository, ext *extractor.Extractor,
	sourceList []sources.Source, scheduler tasks.TaskSchedulerInterface) *Handler {
	return &Handler{
		repo:       repo,
		aggregator: analytics.NewAggregator(repo),
		generator:  report.NewGenerator(),
		ext:        ext,
		sourceList: sourceList,
		scheduler:  scheduler,
	}
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"sources":   len(h.sourceList),
	}

	if postCount, err := h.repo.GetPostCount(); err == nil {
		health["posts"] = postCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	snapshot, err := h.aggregator.Run()
	if err != nil {
		slog.Error("Aggregation error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Aggregation failed"})
		return
	}

	stats := map[string]interface{}{
		"generated_at": snapshot.GeneratedAt.Format(time.RFC3339),
		"total_posts":  snapshot.Overall.TotalPosts,
	}

	if snapshot.Overall.AvgScore != nil {
		stats["avg_score"] = *snapshot.Overall.AvgScore
	}
	if snapshot.Overall.AvgCommentCount != nil {
		stats["avg_comment_count"] = *snapshot.Overall.AvgCommentCount
	}

	if snapshot.Extremes != nil {
		stats["sentiment_extremes"] = map[string]interface{}{
			"most_positive": snapshot.Extremes.MostPositiveTitle,
			"most_negative": snapshot.Extremes.MostNegativeTitle,
		}
	}

	distribution := map[string]int{}
	for label, count := range snapshot.Distribution {
		distribution[string(label)] = count
	}
	stats["sentiment_distribution"] = distribution

	topPosts := make([]map[string]interface{}, 0, len(snapshot.TopPosts))
	for _, post := range snapshot.TopPosts {
		topPosts = append(topPosts, map[string]interface{}{
			"title":     post.Title,
			"source":    post.Source,
			"score":     post.Score,
			"sentiment": string(post.SentimentLabel),
		})
	}
	stats["top_posts"] = topPosts

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) GetReport(c *gin.Context) {
	snapshot, err := h.aggregator.Run()
	if err != nil {
		slog.Error("Aggregation error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	html := h.generator.Run(snapshot)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

func (h *Handler) APIRefreshSources(c *gin.Context) {
	enqueued := make([]gin.H, 0, len(h.sourceList))

	for _, source := range h.sourceList {
		task := tasks.NewProcessSourceTask(source, h.ext, h.repo)
		if err := h.scheduler.EnqueueTask(task); err != nil {
			slog.Error("Error enqueueing refresh task", "source", source.Name, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to enqueue refresh task",
				"details": err.Error(),
			})
			return
		}

		enqueued = append(enqueued, gin.H{
			"id":     task.ID,
			"type":   task.Type,
			"source": source.Name,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Refresh tasks enqueued successfully",
		"tasks":   enqueued,
	})
}
