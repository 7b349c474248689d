package workers

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/movie-manager/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompletionQueue_RunsInPostingOrder(t *testing.T) {
	q := NewCompletionQueue(4, logger.Nop())
	q.Run()

	var got []int
	for i := range 10 {
		require.True(t, q.Post(func() { got = append(got, i) }))
	}
	q.Stop()

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestCompletionQueue_NeverConcurrent(t *testing.T) {
	q := NewCompletionQueue(8, logger.Nop())
	q.Run()

	var active, maxActive atomic.Int32
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q.Post(func() {
				n := active.Add(1)
				if n > maxActive.Load() {
					maxActive.Store(n)
				}
				time.Sleep(time.Millisecond)
				active.Add(-1)
			})
		}()
	}
	wg.Wait()
	q.Stop()

	assert.Equal(t, int32(1), maxActive.Load())
}

func TestCompletionQueue_PostAfterStop(t *testing.T) {
	q := NewCompletionQueue(1, logger.Nop())
	q.Run()
	q.Stop()

	ran := false
	assert.False(t, q.Post(func() { ran = true }))
	assert.False(t, ran)

	// A second Stop is a no-op.
	q.Stop()
}

func TestCompletionQueue_StopDrainsPending(t *testing.T) {
	q := NewCompletionQueue(16, logger.Nop())

	var count atomic.Int32
	for range 5 {
		q.Post(func() { count.Add(1) })
	}
	q.Run()
	q.Stop()

	assert.Equal(t, int32(5), count.Load())
}

func TestCompletionQueue_SurvivesPanic(t *testing.T) {
	q := NewCompletionQueue(2, logger.Nop())
	q.Run()

	ran := false
	q.Post(func() { panic("boom") })
	q.Post(func() { ran = true })
	q.Stop()

	assert.True(t, ran)
}

func TestCompletionQueue_StopWithoutRun(t *testing.T) {
	q := NewCompletionQueue(0, logger.Nop())

	done := make(chan struct{})
	go func() {
		q.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a queue that was never started")
	}
}

func TestCompletionQueue_IsWorker(t *testing.T) {
	var _ Worker = NewCompletionQueue(1, logger.Nop())
}
