package core

import (
	"context"
)

// JobDispatcher defines the contract for a system that can accept and queue
// dispatch requests for asynchronous processing. It decouples the HTTP
// endpoint from the execution of the command.
type JobDispatcher interface {
	// Dispatch queues a request. It returns an error if the request cannot be
	// queued, for example when the queue is full.
	Dispatch(ctx context.Context, req *DispatchRequest) error
	// Stop drains the queue and waits for in-flight requests.
	Stop()
}

// Job runs a single dispatch request to completion.
type Job interface {
	Run(ctx context.Context, req *DispatchRequest) error
}
