package client

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/movie-manager/internal/config"
	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/MKhiriev/movie-manager/internal/mock"
	"github.com/MKhiriev/movie-manager/internal/service"
	"github.com/MKhiriev/movie-manager/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAsyncClient(t *testing.T) (*AsyncClient, *mock.MockClientAuthService, *mock.MockClientMovieService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	auth := mock.NewMockClientAuthService(ctrl)
	movies := mock.NewMockClientMovieService(ctrl)

	c := NewAsyncClient(&service.ClientServices{AuthService: auth, MovieService: movies},
		config.ClientWorkers{CompletionBuffer: 4}, logger.Nop())
	t.Cleanup(c.Close)
	return c, auth, movies
}

func waitDone(t *testing.T, call *Call) {
	t.Helper()
	select {
	case <-call.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("callback was not delivered")
	}
}

func TestAsyncClient_DeliversResultOnce(t *testing.T) {
	c, auth, _ := newTestAsyncClient(t)
	creds := models.Credentials{Username: "alice", Password: "pw"}
	auth.EXPECT().Login(gomock.Any(), creds).Return(models.Account{ID: 42}, nil)

	var calls atomic.Int32
	var got models.Account
	call := c.Login(context.Background(), creds, func(a models.Account, err error) {
		calls.Add(1)
		got = a
		assert.NoError(t, err)
	})
	waitDone(t, call)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int64(42), got.ID)
}

func TestAsyncClient_DeliversError(t *testing.T) {
	c, auth, _ := newTestAsyncClient(t)
	auth.EXPECT().Logout(gomock.Any()).Return(service.ErrLogoutRejected)

	var got error
	waitDone(t, c.Logout(context.Background(), func(err error) { got = err }))

	assert.ErrorIs(t, got, service.ErrLogoutRejected)
}

func TestAsyncClient_CancelStillDelivers(t *testing.T) {
	c, _, movies := newTestAsyncClient(t)
	movies.EXPECT().Search(gomock.Any(), "slow").DoAndReturn(func(ctx context.Context, _ string) ([]models.Movie, error) {
		<-ctx.Done()
		return []models.Movie{}, ctx.Err()
	})

	var got error
	call := c.Search(context.Background(), "slow", func(_ []models.Movie, err error) { got = err })
	call.Cancel()
	waitDone(t, call)

	assert.ErrorIs(t, got, context.Canceled)
}

func TestAsyncClient_CallbacksNeverOverlap(t *testing.T) {
	c, _, movies := newTestAsyncClient(t)
	movies.EXPECT().Watchlist(gomock.Any()).Return([]models.Movie{}, nil).Times(20)

	var active, maxActive atomic.Int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		c.Watchlist(context.Background(), func([]models.Movie, error) {
			defer wg.Done()
			n := active.Add(1)
			if n > maxActive.Load() {
				maxActive.Store(n)
			}
			time.Sleep(time.Millisecond)
			active.Add(-1)
		})
	}
	wg.Wait()

	assert.Equal(t, int32(1), maxActive.Load())
}

func TestAsyncClient_CloseWaitsForInflight(t *testing.T) {
	c, _, movies := newTestAsyncClient(t)
	release := make(chan struct{})
	movies.EXPECT().Refresh(gomock.Any()).DoAndReturn(func(context.Context) error {
		<-release
		return nil
	})

	var delivered atomic.Bool
	c.Refresh(context.Background(), func(error) { delivered.Store(true) })

	closed := make(chan struct{})
	go func() {
		c.Close()
		close(closed)
	}()

	select {
	case <-closed:
		t.Fatal("Close returned before the in-flight call finished")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	<-closed
	assert.True(t, delivered.Load())
}

func TestAsyncClient_AfterClose(t *testing.T) {
	c, _, _ := newTestAsyncClient(t)
	c.Close()

	var got error
	call := c.ToggleWatchlist(context.Background(), models.Movie{ID: 1}, func(_ bool, err error) { got = err })

	select {
	case <-call.Done():
	default:
		t.Fatal("callback must run before the call returns")
	}
	assert.ErrorIs(t, got, ErrClientClosed)
}

func TestAsyncClient_CloseAsyncFromCallback(t *testing.T) {
	c, auth, _ := newTestAsyncClient(t)
	auth.EXPECT().Logout(gomock.Any()).Return(nil)

	stopped := make(chan (<-chan struct{}), 1)
	call := c.Logout(context.Background(), func(error) {
		stopped <- c.CloseAsync()
	})
	waitDone(t, call)
	done := <-stopped

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("client did not stop after closing from a callback")
	}

	var got error
	c.Refresh(context.Background(), func(err error) { got = err })
	assert.ErrorIs(t, got, ErrClientClosed)
}

func TestAsyncClient_NilCallback(t *testing.T) {
	c, _, movies := newTestAsyncClient(t)
	movies.EXPECT().ToggleFavorite(gomock.Any(), models.Movie{ID: 3}).Return(true, nil)

	waitDone(t, c.ToggleFavorite(context.Background(), models.Movie{ID: 3}, nil))
}

func TestAsyncClient_Passthrough(t *testing.T) {
	c, auth, movies := newTestAsyncClient(t)
	poster := models.Movie{ID: 9, PosterPath: new(string)}

	auth.EXPECT().IsAuthenticated().Return(true)
	auth.EXPECT().BeginWebLogin(gomock.Any()).Return("https://auth/T", nil)
	auth.EXPECT().CompleteWebLogin(gomock.Any()).Return(models.Account{ID: 1}, nil)
	movies.EXPECT().FindMovie(int64(9)).Return(poster, true)
	movies.EXPECT().Favorites(gomock.Any()).Return([]models.Movie{poster}, nil)
	movies.EXPECT().Poster(gomock.Any(), poster).Return([]byte("img"), nil)

	assert.True(t, c.IsAuthenticated())
	m, ok := c.FindMovie(9)
	require.True(t, ok)
	assert.Equal(t, poster, m)

	var url string
	waitDone(t, c.BeginWebLogin(context.Background(), func(u string, err error) { url = u }))
	assert.Equal(t, "https://auth/T", url)

	var account models.Account
	waitDone(t, c.CompleteWebLogin(context.Background(), func(a models.Account, err error) { account = a }))
	assert.Equal(t, int64(1), account.ID)

	var favs []models.Movie
	waitDone(t, c.Favorites(context.Background(), func(m []models.Movie, err error) { favs = m }))
	assert.Len(t, favs, 1)

	var data []byte
	waitDone(t, c.Poster(context.Background(), poster, func(b []byte, err error) { data = b }))
	assert.Equal(t, []byte("img"), data)
}
