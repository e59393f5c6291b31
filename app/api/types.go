package api

import (
	"github.com/lysyi3m/reddit-pulse/app/analytics"
	"github.com/lysyi3m/reddit-pulse/app/database"
	"github.com/lysyi3m/reddit-pulse/app/extractor"
	"github.com/lysyi3m/reddit-pulse/app/report"
	"github.com/lysyi3m/reddit-pulse/app/sources"
	"github.com/lysyi3m/reddit-pulse/app/tasks"
)

type GeneratorInterface interface {
	Run(snapshot *analytics.Snapshot) string
}

var _ GeneratorInterface = (*report.Generator)(nil)

type Handler struct {
	repo       database.PostRepository
	aggregator *analytics.Aggregator
	generator  GeneratorInterface
	ext        *extractor.Extractor
	sourceList []sources.Source
	scheduler  tasks.TaskSchedulerInterface
}
