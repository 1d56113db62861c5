// Package worker provides a worker pool for parallel FEN processing.
package worker

import (
	"context"
	"runtime"
	"sync"

	"github.com/lgbarn/fenboard/internal/chess"
)

// WorkItem represents one FEN record to be processed.
type WorkItem struct {
	Line  string
	Index int // Original index for ordering results
}

// ProcessResult represents the result of processing a FEN record.
type ProcessResult struct {
	Index     int
	Input     string
	FEN       string          // Canonical FEN, empty on error
	Position  *chess.Position // Decoded position (nil on error)
	Key       uint64          // Zobrist key of the position
	Duplicate bool            // An earlier record had the same position
	Error     error
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over submitted items on a fixed number of
// goroutines. Results arrive in completion order.
type Pool struct {
	workers int
	work    chan WorkItem
	results chan ProcessResult
	process ProcessFunc
	wg      sync.WaitGroup
}

// NewPool creates a pool of workers goroutines (runtime.NumCPU() when
// workers <= 0) with channels of bufferSize items (workers when
// bufferSize <= 0).
func NewPool(workers, bufferSize int, process ProcessFunc) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if bufferSize <= 0 {
		bufferSize = workers
	}
	return &Pool{
		workers: workers,
		work:    make(chan WorkItem, bufferSize),
		results: make(chan ProcessResult, bufferSize),
		process: process,
	}
}

// Start starts the worker goroutines. Once ctx is done, queued items are
// drained without being processed.
func (p *Pool) Start(ctx context.Context) {
	for range p.workers {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.work {
		if ctx.Err() != nil {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the queue is full. It returns
// ctx.Err() if ctx is done before the item is accepted.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.work <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting items and waits for the workers to finish. The
// result channel is closed once every worker is done.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel. It must be drained for the workers to
// make progress.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}
