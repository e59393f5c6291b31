package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/lysyi3m/reddit-pulse/app/analytics"
	"github.com/lysyi3m/reddit-pulse/app/api"
	"github.com/lysyi3m/reddit-pulse/app/cfg"
	"github.com/lysyi3m/reddit-pulse/app/database"
	"github.com/lysyi3m/reddit-pulse/app/extractor"
	"github.com/lysyi3m/reddit-pulse/app/report"
	"github.com/lysyi3m/reddit-pulse/app/sources"
	"github.com/lysyi3m/reddit-pulse/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appCfg.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Reddit Pulse", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	schemaVersion, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "schema_version", schemaVersion, "dirty", dirty)

	sourceList, err := sources.Load(appCfg.Sources, appCfg.SourcesFile, appCfg.Limit)
	if err != nil {
		slog.Error("Failed to load sources", "error", err)
		os.Exit(1)
	}
	slog.Info("Sources loaded", "count", len(sourceList))

	repo := database.NewPostRepository(db)
	ext := extractor.NewExtractor(&http.Client{}, appCfg.UserAgent, time.Duration(appCfg.Timeout)*time.Second)

	if appCfg.Serve {
		runServer(appCfg, sourceList, ext, repo)
		return
	}

	if err := runPipeline(appCfg, sourceList, ext, repo); err != nil {
		slog.Error("Pipeline run failed", "error", err)
		os.Exit(1)
	}
}

// runPipeline is the one-shot mode: process every source once, then
// aggregate and write the HTML report. A failing source is logged and
// skipped so the report still reflects whatever was stored.
func runPipeline(appCfg *cfg.Cfg, sourceList []sources.Source, ext *extractor.Extractor, repo database.PostRepository) error {
	runID := uuid.NewString()
	slog.Info("Starting pipeline run", "run_id", runID, "sources", len(sourceList))

	failedCount := 0
	for _, source := range sourceList {
		task := tasks.NewProcessSourceTask(source, ext, repo)
		task.Start()

		if err := task.Execute(context.Background()); err != nil {
			failedCount++
			slog.Error("Source processing failed", "run_id", runID, "source", source.Name, "error", err)
		}
	}

	snapshot, err := analytics.NewAggregator(repo).Run()
	if err != nil {
		return fmt.Errorf("failed to aggregate analytics: %w", err)
	}

	html := report.NewGenerator().Run(snapshot)
	if err := os.WriteFile(appCfg.Output, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Info("Pipeline run completed",
		"run_id", runID,
		"report", appCfg.Output,
		"total_posts", snapshot.Overall.TotalPosts,
		"failed_sources", failedCount)

	if failedCount == len(sourceList) && len(sourceList) > 0 {
		return fmt.Errorf("all %d sources failed", failedCount)
	}

	return nil
}

// runServer is the long-running mode: a background scheduler refreshes
// sources periodically while the HTTP server exposes stats and the
// rendered report.
func runServer(appCfg *cfg.Cfg, sourceList []sources.Source, ext *extractor.Extractor, repo database.PostRepository) {
	slog.Info("Starting background scheduler", "workers", appCfg.WorkerCount, "refresh_interval", appCfg.RefreshInterval)
	scheduler := tasks.NewScheduler(sourceList, ext, repo)
	scheduler.Start()
	defer scheduler.Stop()

	apiHandler := api.NewHandler(repo, ext, sourceList, scheduler)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
