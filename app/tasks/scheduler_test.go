package tasks

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lysyi3m/reddit-pulse/app/cfg"
	"github.com/lysyi3m/reddit-pulse/app/extractor"
	"github.com/lysyi3m/reddit-pulse/app/sources"
)

type stubTask struct {
	Task
	executions atomic.Int32
	failures   int32
}

func (t *stubTask) Execute(ctx context.Context) error {
	count := t.executions.Add(1)
	if count <= t.failures {
		return context.DeadlineExceeded
	}
	return nil
}

func newTestScheduler(sourceList []sources.Source) TaskSchedulerInterface {
	cfg.SetForTesting(&cfg.Cfg{
		RefreshInterval: 3600,
		WorkerCount:     2,
	})

	ext := extractor.NewExtractor(&http.Client{}, "reddit-pulse-test/1.0", 1*time.Second)
	return NewScheduler(sourceList, ext, newFakePostRepository())
}

func TestSchedulerStartStop(t *testing.T) {
	scheduler := newTestScheduler(nil)

	scheduler.Start()
	scheduler.Stop()
}

func TestSchedulerExecutesEnqueuedTask(t *testing.T) {
	scheduler := newTestScheduler(nil)
	scheduler.Start()
	defer scheduler.Stop()

	task := &stubTask{Task: NewTask(TaskTypeProcessSource, "golang")}
	if err := scheduler.EnqueueTask(task); err != nil {
		t.Fatalf("Expected enqueue to succeed, got: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for task.executions.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("Expected task to be executed")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestSchedulerRetriesFailedTask(t *testing.T) {
	scheduler := newTestScheduler(nil)
	scheduler.Start()
	defer scheduler.Stop()

	task := &stubTask{Task: NewTask(TaskTypeProcessSource, "golang"), failures: 1}
	if err := scheduler.EnqueueTask(task); err != nil {
		t.Fatalf("Expected enqueue to succeed, got: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for task.executions.Load() < 2 {
		select {
		case <-deadline:
			t.Fatalf("Expected task to be retried, executions: %d", task.executions.Load())
		case <-time.After(10 * time.Millisecond):
		}
	}
}
