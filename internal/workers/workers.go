package workers

import (
	"context"

	"github.com/MKhiriev/go-grocery-sync/internal/logger"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{workers: workers, logger: logger}
}

// Run starts every worker in order, blocks until ctx is done and then stops
// them in reverse order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
	w.logger.Info().Str("func", "Workers.Run").Int("workers", len(w.workers)).Msg("background workers started")

	<-ctx.Done()

	w.Stop()
}

// Stop stops every worker in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
	w.logger.Info().Str("func", "Workers.Stop").Msg("background workers stopped")
}
