// Package workerpool provides bounded concurrent processing utilities.
package workerpool

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Submit once the pool has been closed.
var ErrClosed = errors.New("worker pool closed")

type options struct {
	queueSize int
	onFull    func()
}

// Option configures a Pool.
type Option func(*options)

// WithQueueSize sets how many submitted items may wait for a free worker.
func WithQueueSize(size int) Option {
	return func(o *options) {
		if size >= 0 {
			o.queueSize = size
		}
	}
}

// WithBackpressureHook registers fn to be called each time Submit has to wait for queue space.
func WithBackpressureHook(fn func()) Option {
	return func(o *options) {
		o.onFull = fn
	}
}

// Pool runs process for every submitted item on a fixed number of workers.
// Items accepted by Submit are always processed, even after Close.
type Pool[T any] struct {
	tasks  chan T
	onFull func()

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// New starts workerCount workers that call process with ctx for each submitted item.
func New[T any](ctx context.Context, workerCount int, process func(context.Context, T), opts ...Option) *Pool[T] {
	if workerCount < 1 {
		workerCount = 1
	}
	o := options{queueSize: workerCount}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pool[T]{
		tasks:  make(chan T, o.queueSize),
		onFull: o.onFull,
	}
	for i := 0; i < workerCount; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for item := range p.tasks {
				process(ctx, item)
			}
		}()
	}
	return p
}

// Submit enqueues item, blocking while the queue is full.
// It returns ctx.Err() if ctx ends before the item is accepted and ErrClosed after Close.
func (p *Pool[T]) Submit(ctx context.Context, item T) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}

	select {
	case p.tasks <- item:
		return nil
	default:
	}

	if p.onFull != nil {
		p.onFull()
	}

	select {
	case p.tasks <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting new items. It waits for Submit calls that are already blocked.
func (p *Pool[T]) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	p.closed = true
	close(p.tasks)
}

// Wait blocks until every accepted item has been processed. Call Close first.
func (p *Pool[T]) Wait() {
	p.wg.Wait()
}
