// Package tasks runs mutating operations in the background, strictly
// ordered per resource key (an interface name, the fixed NAT key, or a
// firewall rule name). Work for different keys proceeds independently.
package tasks

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"
)

const queueCapacity = 64

type job struct {
	name string
	fn   func(ctx context.Context) error
}

type Runner struct {
	ctx context.Context

	mx     sync.Mutex
	queues map[string]chan job
	closed bool

	wg conc.WaitGroup
}

// NewRunner creates a runner whose jobs execute under ctx. A started job is
// never cancelled mid-run; individual shell commands carry their own
// timeouts.
func NewRunner(ctx context.Context) *Runner {
	return &Runner{
		ctx:    ctx,
		queues: make(map[string]chan job),
	}
}

// Submit enqueues fn behind all previously submitted work for the same key.
// Job errors are logged, not propagated: callers observe the outcome through
// subsequent status queries.
func (r *Runner) Submit(key, name string, fn func(ctx context.Context) error) {
	r.mx.Lock()
	if r.closed {
		r.mx.Unlock()
		log.Warn().
			Str("key", key).
			Str("task", name).
			Msg("Submit: runner closed, task dropped")

		return
	}

	queue, ok := r.queues[key]
	if !ok {
		queue = make(chan job, queueCapacity)
		r.queues[key] = queue
		r.wg.Go(func() {
			r.drain(key, queue)
		})
	}

	// the send stays under the lock: Close marks closed and closes lanes
	// under the same lock, so a send can never race a closing lane
	queue <- job{name: name, fn: fn}
	r.mx.Unlock()
}

// Close stops accepting work and waits for queued jobs to finish.
func (r *Runner) Close() {
	r.mx.Lock()
	if r.closed {
		r.mx.Unlock()
		return
	}

	r.closed = true
	for _, queue := range r.queues {
		close(queue)
	}
	r.mx.Unlock()

	r.wg.Wait()
}

func (r *Runner) drain(key string, queue chan job) {
	for queued := range queue {
		log.Debug().
			Str("key", key).
			Str("task", queued.name).
			Msg("drain: task started")

		if err := queued.fn(r.ctx); err != nil {
			log.Error().
				Err(err).
				Str("key", key).
				Str("task", queued.name).
				Msg("drain: task failed")

			continue
		}

		log.Debug().
			Str("key", key).
			Str("task", queued.name).
			Msg("drain: task finished")
	}
}
