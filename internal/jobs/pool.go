// Package jobs runs accepted imports on a bounded in-process worker pool.
// Channels carry the work; backpressure is a non-blocking enqueue that fails
// fast when the buffer is full. Suitable for single-instance deployments;
// a multi-instance setup would swap this for an external queue behind the
// same ports.ImportDispatcher interface.
package jobs

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/jeleniasty/budget-aggregator/internal/core/ports"
)

// ImportPool implements ports.ImportDispatcher over a fixed set of worker
// goroutines and a bounded queue. Each task is one full import run.
type ImportPool struct {
	importer ports.TransactionImporter
	tasks    chan ports.ImportTask
	workers  int
	log      zerolog.Logger

	mu      sync.Mutex
	wg      sync.WaitGroup
	started bool
	closed  bool
}

// NewImportPool creates a pool with the given worker count and queue
// capacity. Start must be called before tasks are consumed.
func NewImportPool(importer ports.TransactionImporter, workers, queueCapacity int, log zerolog.Logger) *ImportPool {
	return &ImportPool{
		importer: importer,
		tasks:    make(chan ports.ImportTask, queueCapacity),
		workers:  workers,
		log:      log,
	}
}

// Start launches the worker goroutines. Workers run until Stop closes the
// queue, draining any tasks still buffered.
func (p *ImportPool) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started || p.closed {
		return
	}
	p.started = true

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}
	p.log.Info().
		Int("workers", p.workers).
		Int("queue_capacity", cap(p.tasks)).
		Msg("import worker pool started")
}

// Dispatch enqueues one import run without blocking. A full queue returns
// ports.ErrQueueFull so the caller can surface backpressure.
func (p *ImportPool) Dispatch(ctx context.Context, task ports.ImportTask) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return fmt.Errorf("import pool is stopped")
	}
	p.mu.Unlock()

	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ports.ErrQueueFull
	}
}

// Stop closes the queue and waits for in-flight and buffered runs to finish,
// bounded by ctx.
func (p *ImportPool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		p.log.Info().Msg("import worker pool stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *ImportPool) worker(id int) {
	defer p.wg.Done()
	for task := range p.tasks {
		p.log.Debug().
			Int("worker", id).
			Str("import_id", task.ImportID.String()).
			Str("file_name", task.FileName).
			Msg("import run picked up")
		// Runs use a background context: an accepted import survives the
		// HTTP request that submitted it.
		p.importer.Run(context.Background(), task.ImportID, bytes.NewReader(task.Content))
	}
}
