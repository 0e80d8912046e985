package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-grocery-sync/internal/config"
	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/models"
)

const defaultSyncInterval = 15 * time.Minute

type clientSyncJob struct {
	syncService ClientSyncService

	interval time.Duration
	retryMin time.Duration
	retryMax time.Duration

	// trigger holds at most one pending request; further requests coalesce.
	trigger chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	resultMu   sync.RWMutex
	lastResult models.SyncResult
	hasResult  bool

	logger *logger.Logger
}

// NewClientSyncJob creates a job that calls syncService.Synchronize every
// cfg.SyncInterval and whenever RequestSync is called. Retryable failures are
// retried after a backoff doubling from cfg.RetryMin up to cfg.RetryMax; a
// fatal failure ends the job. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, cfg config.ClientWorkers, logger *logger.Logger) ClientSyncJob {
	interval := cfg.SyncInterval
	if interval <= 0 {
		interval = defaultSyncInterval
	}
	retryMin := cfg.RetryMin
	if retryMin <= 0 {
		retryMin = interval
	}
	retryMax := max(cfg.RetryMax, retryMin)

	return &clientSyncJob{
		syncService: syncService,
		interval:    interval,
		retryMin:    retryMin,
		retryMax:    retryMax,
		trigger:     make(chan struct{}, 1),
		logger:      logger,
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine. The goroutine exits when ctx is cancelled,
// Stop is called or a sync attempt fails fatally.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		j.loop(jobCtx)
	}()
}

func (j *clientSyncJob) loop(ctx context.Context) {
	t := time.NewTimer(j.interval)
	defer t.Stop()

	var backoff time.Duration
	for {
		select {
		case <-ctx.Done():
			return
		case <-j.trigger:
		case <-t.C:
		}

		res := j.syncService.Synchronize(ctx)
		j.setResult(res)

		var next time.Duration
		switch res.Outcome {
		case models.OutcomeSuccess:
			backoff = 0
			next = j.interval
		case models.OutcomeRetryable:
			backoff = j.nextBackoff(backoff)
			next = backoff
			j.logger.Warn().
				Err(res.Err).
				Str("func", "clientSyncJob.loop").
				Dur("retry_in", next).
				Msg("sync failed, will retry")
		default:
			j.logger.Error().
				Err(res.Err).
				Str("func", "clientSyncJob.loop").
				Msg("sync failed fatally, background sync stopped")
			return
		}

		t.Reset(next)
	}
}

func (j *clientSyncJob) nextBackoff(prev time.Duration) time.Duration {
	if prev <= 0 {
		return j.retryMin
	}
	return min(prev*2, j.retryMax)
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// RequestSync never blocks.
func (j *clientSyncJob) RequestSync() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

func (j *clientSyncJob) LastResult() (models.SyncResult, bool) {
	j.resultMu.RLock()
	defer j.resultMu.RUnlock()
	return j.lastResult, j.hasResult
}

func (j *clientSyncJob) setResult(res models.SyncResult) {
	j.resultMu.Lock()
	j.lastResult = res
	j.hasResult = true
	j.resultMu.Unlock()
}
