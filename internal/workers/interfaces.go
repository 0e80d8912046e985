// Package workers runs the client's background jobs for the lifetime of a
// context.
package workers

import "context"

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; the job runs until ctx is cancelled or Stop is
// called. Stop blocks until the job has fully exited and is safe to call on
// a job that was never started.
//
// The periodic sync job is the canonical implementation:
//
//	job := service.NewClientSyncJob(syncSvc, cfg.Workers, log)
//	ws := workers.NewWorkers(job)
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
