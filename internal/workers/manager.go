package workers

import (
	"context"
	"sync"
	"time"

	"github.com/Fadibatarseh/Batarseh-Family-Tree/internal/services"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/pkg/config"
	"github.com/Fadibatarseh/Batarseh-Family-Tree/pkg/logger"
)

// WorkerManager manages the background workers
type WorkerManager struct {
	workers     []Worker
	treeService *services.TreeService
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(treeService *services.TreeService) *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers:     make([]Worker, 0),
		treeService: treeService,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// StartAll starts all workers based on configuration
func (wm *WorkerManager) StartAll() error {
	interval := config.AppConfig.Tree.RefreshInterval
	if interval <= 0 {
		logger.Info("Refresh worker disabled")
		return nil
	}

	worker := NewRefreshWorker("refresh-1", wm.treeService, time.Duration(interval)*time.Second)
	wm.workers = append(wm.workers, worker)
	wm.startWorker(worker)

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	// Cancel the context to signal all workers to stop
	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.Errorf("Error stopping worker %s: %v", worker.GetWorkerID(), err)
		}
	}

	// Wait for all workers to finish
	wm.wg.Wait()

	logger.Info("All workers stopped")
	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && err != context.Canceled {
			logger.Errorf("Worker %s stopped with error: %v", worker.GetWorkerID(), err)
		}
	}()
}
