package tasks

// TaskSchedulerInterface defines the interface for background task
// scheduling. The main application uses it to run periodic source
// refreshes with a bounded worker pool.
// Example usage:
//
//	scheduler := NewScheduler(sourceList, ext, repo)
//	scheduler.Start()
//	defer scheduler.Stop()
type TaskSchedulerInterface interface {
	Start()
	Stop()
	EnqueueTask(task TaskInterface) error
}
