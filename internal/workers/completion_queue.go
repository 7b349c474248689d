// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/movie-manager/internal/logger"
)

// CompletionQueue runs posted functions one at a time, in posting order, on
// a single goroutine. Results of concurrent calls are handed to their
// callbacks through it, so callbacks never run concurrently with each other.
//
// Run must be called before the buffer fills up. Posting from inside a
// queued function blocks once the buffer is full.
type CompletionQueue struct {
	jobs chan func()
	done chan struct{}

	mu      sync.RWMutex
	closed  bool
	started atomic.Bool
	stop    sync.Once

	logger *logger.Logger
}

// NewCompletionQueue creates a queue holding up to buffer pending functions.
func NewCompletionQueue(buffer int, logger *logger.Logger) *CompletionQueue {
	if buffer < 1 {
		buffer = 1
	}
	return &CompletionQueue{
		jobs:   make(chan func(), buffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// Run implements [Worker]. Calling it more than once has no effect.
func (q *CompletionQueue) Run() {
	if !q.started.CompareAndSwap(false, true) {
		return
	}
	go q.loop()
}

func (q *CompletionQueue) loop() {
	defer close(q.done)
	for fn := range q.jobs {
		q.invoke(fn)
	}
}

// invoke runs fn; a panic in fn is logged and does not stop the queue.
func (q *CompletionQueue) invoke(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			q.logger.Error().Interface("panic", r).Msg("completion callback panicked")
		}
	}()
	fn()
}

// Post enqueues fn. It returns false, without running fn, once Stop has been
// called.
func (q *CompletionQueue) Post(fn func()) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return false
	}
	q.jobs <- fn
	return true
}

// Stop implements [Worker]. Functions already posted still run; Stop returns
// after the last of them has finished.
func (q *CompletionQueue) Stop() {
	q.stop.Do(func() {
		q.mu.Lock()
		q.closed = true
		close(q.jobs)
		q.mu.Unlock()
	})

	if q.started.Load() {
		<-q.done
	}
}
