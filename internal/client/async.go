// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/movie-manager/internal/config"
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/service"
	"github.com/MKhiriev/movie-manager/internal/workers"
	"github.com/MKhiriev/movie-manager/models"
)

// ErrClientClosed is delivered to callbacks of calls started after Close.
var ErrClientClosed = errors.New("client is closed")

// Call is the handle of one asynchronous operation.
type Call struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Cancel cancels the context of the operation. The callback still runs,
// usually with the context error.
func (c *Call) Cancel() {
	c.cancel()
}

// Done is closed after the callback has returned.
func (c *Call) Done() <-chan struct{} {
	return c.done
}

// AsyncClient runs client operations in the background and reports each
// outcome to a callback. Every callback runs exactly once, on the goroutine
// of the completion queue, so callbacks never overlap.
//
// A nil callback is allowed; the outcome is then dropped.
type AsyncClient struct {
	services *service.ClientServices
	queue    *workers.CompletionQueue
	workers  *workers.Workers

	mu       sync.Mutex
	closed   bool
	inflight sync.WaitGroup
	stopOnce sync.Once
	stopped  chan struct{}

	logger *logger.Logger
}

// NewAsyncClient starts the completion queue and returns the client.
func NewAsyncClient(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *AsyncClient {
	queue := workers.NewCompletionQueue(cfg.CompletionBuffer, logger)
	ws := workers.NewWorkers(queue)
	ws.Run()

	return &AsyncClient{
		services: services,
		queue:    queue,
		workers:  ws,
		stopped:  make(chan struct{}),
		logger:   logger,
	}
}

// Close waits for every started call to deliver its callback and then stops
// the completion queue. It is safe to call more than once.
//
// Close must not be called from a callback: the queue cannot stop while one
// of its callbacks is blocked. Use [AsyncClient.CloseAsync] there.
func (c *AsyncClient) Close() {
	<-c.CloseAsync()
}

// CloseAsync rejects new calls and returns at once. The returned channel is
// closed after the started calls have delivered and the queue has stopped.
func (c *AsyncClient) CloseAsync() <-chan struct{} {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.stopOnce.Do(func() {
		go func() {
			defer close(c.stopped)
			c.inflight.Wait()
			c.workers.Stop()
		}()
	})
	return c.stopped
}

// IsAuthenticated reports whether a session is held. It does no I/O and
// returns immediately.
func (c *AsyncClient) IsAuthenticated() bool {
	return c.services.AuthService.IsAuthenticated()
}

// FindMovie looks id up in the local lists. It does no I/O.
func (c *AsyncClient) FindMovie(id int64) (models.Movie, bool) {
	return c.services.MovieService.FindMovie(id)
}

func (c *AsyncClient) Login(ctx context.Context, creds models.Credentials, done func(models.Account, error)) *Call {
	return submit(ctx, c, func(ctx context.Context) (models.Account, error) {
		return c.services.AuthService.Login(ctx, creds)
	}, done)
}

func (c *AsyncClient) BeginWebLogin(ctx context.Context, done func(string, error)) *Call {
	return submit(ctx, c, c.services.AuthService.BeginWebLogin, done)
}

func (c *AsyncClient) CompleteWebLogin(ctx context.Context, done func(models.Account, error)) *Call {
	return submit(ctx, c, c.services.AuthService.CompleteWebLogin, done)
}

func (c *AsyncClient) Logout(ctx context.Context, done func(error)) *Call {
	return submitErr(ctx, c, c.services.AuthService.Logout, done)
}

func (c *AsyncClient) Refresh(ctx context.Context, done func(error)) *Call {
	return submitErr(ctx, c, c.services.MovieService.Refresh, done)
}

func (c *AsyncClient) Watchlist(ctx context.Context, done func([]models.Movie, error)) *Call {
	return submit(ctx, c, c.services.MovieService.Watchlist, done)
}

func (c *AsyncClient) Favorites(ctx context.Context, done func([]models.Movie, error)) *Call {
	return submit(ctx, c, c.services.MovieService.Favorites, done)
}

func (c *AsyncClient) Search(ctx context.Context, query string, done func([]models.Movie, error)) *Call {
	return submit(ctx, c, func(ctx context.Context) ([]models.Movie, error) {
		return c.services.MovieService.Search(ctx, query)
	}, done)
}

func (c *AsyncClient) ToggleWatchlist(ctx context.Context, movie models.Movie, done func(bool, error)) *Call {
	return submit(ctx, c, func(ctx context.Context) (bool, error) {
		return c.services.MovieService.ToggleWatchlist(ctx, movie)
	}, done)
}

func (c *AsyncClient) ToggleFavorite(ctx context.Context, movie models.Movie, done func(bool, error)) *Call {
	return submit(ctx, c, func(ctx context.Context) (bool, error) {
		return c.services.MovieService.ToggleFavorite(ctx, movie)
	}, done)
}

func (c *AsyncClient) Poster(ctx context.Context, movie models.Movie, done func([]byte, error)) *Call {
	return submit(ctx, c, func(ctx context.Context) ([]byte, error) {
		return c.services.MovieService.Poster(ctx, movie)
	}, done)
}

func submitErr(ctx context.Context, c *AsyncClient, op func(context.Context) error, done func(error)) *Call {
	var deliver func(struct{}, error)
	if done != nil {
		deliver = func(_ struct{}, err error) { done(err) }
	}
	return submit(ctx, c, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, op(ctx)
	}, deliver)
}

// submit runs op on its own goroutine and posts the outcome to the
// completion queue. After Close the callback is invoked with
// ErrClientClosed on the calling goroutine before submit returns.
func submit[T any](ctx context.Context, c *AsyncClient, op func(context.Context) (T, error), done func(T, error)) *Call {
	ctx, cancel := context.WithCancel(ctx)
	call := &Call{cancel: cancel, done: make(chan struct{})}

	complete := func(v T, err error) {
		defer close(call.done)
		defer cancel()
		if done != nil {
			done(v, err)
		}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		var zero T
		complete(zero, ErrClientClosed)
		return call
	}
	c.inflight.Add(1)
	c.mu.Unlock()

	go func() {
		defer c.inflight.Done()

		v, err := op(ctx)
		if !c.queue.Post(func() { complete(v, err) }) {
			c.logger.Error().Err(err).Msg("completion queue stopped before delivery")
		}
	}()

	return call
}
