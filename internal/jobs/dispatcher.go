// Package jobs runs dispatch requests on a pool of background workers.
package jobs

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/sevigo/slash-dispatch/internal/core"
)

const queueSize = 100

// ErrQueueFull is returned by Dispatch when no more requests can be accepted.
var ErrQueueFull = errors.New("job queue is full")

// dispatcher implements core.JobDispatcher with a fixed pool of workers
// reading from a bounded queue.
type dispatcher struct {
	ctx        context.Context            // Context every request runs under.
	job        core.Job                   // Job implementation executed by each worker.
	jobQueue   chan *core.DispatchRequest // Queue of accepted dispatch requests.
	maxWorkers int                        // Number of concurrent workers.
	wg         sync.WaitGroup             // Tracks active workers for graceful shutdown.
	stopOnce   sync.Once                  // Makes Stop safe to call twice.
	logger     *slog.Logger               // Logger instance for the dispatcher.
}

// NewDispatcher starts maxWorkers workers running job. If maxWorkers is 0 or
// negative, it defaults to 1. Requests run under ctx, so cancelling it stops
// the remote calls of queued requests from being issued.
func NewDispatcher(ctx context.Context, job core.Job, maxWorkers int, logger *slog.Logger) core.JobDispatcher {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	d := &dispatcher{
		ctx:        ctx,
		job:        job,
		maxWorkers: maxWorkers,
		jobQueue:   make(chan *core.DispatchRequest, queueSize),
		logger:     logger,
	}
	d.startWorkers()
	return d
}

func (d *dispatcher) startWorkers() {
	for i := range d.maxWorkers {
		d.wg.Add(1)
		go d.startWorker(i)
	}
}

func (d *dispatcher) startWorker(workerID int) {
	defer d.wg.Done()
	d.logger.Debug("starting dispatch worker", "id", workerID)

	for req := range d.jobQueue {
		d.process(workerID, req)
	}

	d.logger.Debug("shutting down dispatch worker", "id", workerID)
}

func (d *dispatcher) process(workerID int, req *core.DispatchRequest) {
	d.logger.Info("worker processing dispatch",
		"worker_id", workerID,
		"command", req.Command.Command,
		"repository", req.Command.Repository,
	)

	// The engine logs and records failures; nothing else to do here.
	_ = d.job.Run(d.ctx, req)
}

// Dispatch queues a request without blocking.
func (d *dispatcher) Dispatch(_ context.Context, req *core.DispatchRequest) error {
	select {
	case d.jobQueue <- req:
		d.logger.Info("queued dispatch", "command", req.Command.Command, "actor", req.Actor)
		return nil
	default:
		return ErrQueueFull
	}
}

// Stop closes the queue and waits for queued and in-flight requests to finish.
// Requests still queued when the dispatcher's context is already cancelled
// issue no GitHub call; they end as failed runs with the context error.
func (d *dispatcher) Stop() {
	d.stopOnce.Do(func() {
		d.logger.Info("stopping dispatcher and waiting for jobs to finish")
		close(d.jobQueue)
		d.wg.Wait()
		d.logger.Info("all dispatch jobs have finished")
	})
}
