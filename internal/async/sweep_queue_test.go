package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

type recordingSweeper struct {
	mu    sync.Mutex
	seen  []uuid.UUID
	err   error
	delay time.Duration
}

func (s *recordingSweeper) AutoApply(_ context.Context, schemeID uuid.UUID) ([]*entity.Application, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seen = append(s.seen, schemeID)
	return nil, s.err
}

func (s *recordingSweeper) schemes() []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]uuid.UUID, len(s.seen))
	copy(out, s.seen)
	return out
}

func TestSweepQueueProcessesAllJobs(t *testing.T) {
	sweeper := &recordingSweeper{}
	q := NewSweepQueue(sweeper, slog.Default(), WithWorkers(2), WithQueueSize(8))

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		require.NoError(t, q.Enqueue(context.Background(), Job{SchemeID: id, SubmittedAt: time.Now()}))
	}
	// Shutdown drains the channel before returning.
	q.Shutdown(context.Background())

	assert.ElementsMatch(t, ids, sweeper.schemes())
}

func TestSweepQueueSweepErrorDoesNotStopWorkers(t *testing.T) {
	sweeper := &recordingSweeper{err: errors.New("scheme gone")}
	q := NewSweepQueue(sweeper, slog.Default(), WithWorkers(1))

	a, b := uuid.New(), uuid.New()
	require.NoError(t, q.Enqueue(context.Background(), Job{SchemeID: a}))
	require.NoError(t, q.Enqueue(context.Background(), Job{SchemeID: b}))
	q.Shutdown(context.Background())

	assert.Len(t, sweeper.schemes(), 2)
}

func TestSweepQueueEnqueueAfterShutdownIsDropped(t *testing.T) {
	sweeper := &recordingSweeper{}
	q := NewSweepQueue(sweeper, slog.Default(), WithWorkers(1))
	q.Shutdown(context.Background())

	require.NoError(t, q.Enqueue(context.Background(), Job{SchemeID: uuid.New()}))
	assert.Empty(t, sweeper.schemes())
}

func TestSweepQueueShutdownIsIdempotent(t *testing.T) {
	q := NewSweepQueue(&recordingSweeper{}, slog.Default(), WithWorkers(1))
	q.Shutdown(context.Background())
	q.Shutdown(context.Background())
}
