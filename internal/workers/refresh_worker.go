package workers

import (
	"context"
	"time"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/services"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/pkg/logger"
)

// RefreshWorker periodically reloads the in-memory snapshot from the
// backend so rows edited outside the UI show up in the tree. A failed
// reload keeps the previous snapshot on screen.
type RefreshWorker struct {
	*BaseWorker
	treeService *services.TreeService
	interval    time.Duration
}

// NewRefreshWorker creates a new refresh worker
func NewRefreshWorker(workerID string, treeService *services.TreeService, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		BaseWorker:  NewBaseWorker(workerID),
		treeService: treeService,
		interval:    interval,
	}
}

// Start begins the refresh loop
func (w *RefreshWorker) Start(ctx context.Context) error {
	w.Running = true
	logger.Infof("Refresh worker %s started with interval %s", w.WorkerID, w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Infof("Refresh worker %s stopping due to context cancellation", w.WorkerID)
			return ctx.Err()
		case <-w.StopChan:
			logger.Infof("Refresh worker %s stopping", w.WorkerID)
			return nil
		case <-ticker.C:
			if err := w.treeService.Load(); err != nil {
				logger.WithError(err).Warnf("Refresh worker %s failed to reload people", w.WorkerID)
			}
		}
	}
}
