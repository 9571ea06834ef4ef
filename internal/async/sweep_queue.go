package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/internal/apply"
	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

// Sweeper runs one auto-apply sweep over a scheme. *apply.Service satisfies it.
type Sweeper interface {
	AutoApply(ctx context.Context, schemeID uuid.UUID) ([]*entity.Application, error)
}

var _ Sweeper = (*apply.Service)(nil)

// SweepQueue fans scheme sweeps out to a fixed worker pool. Sweeps for
// distinct schemes may run concurrently; duplicate enqueues of the same
// scheme are harmless because the sweep itself is idempotent.
type SweepQueue struct {
	sweeper Sweeper
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*SweepQueue)

func WithWorkers(n int) Option {
	return func(q *SweepQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *SweepQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithSweepTimeout(d time.Duration) Option {
	return func(q *SweepQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewSweepQueue(sweeper Sweeper, logger *slog.Logger, opts ...Option) *SweepQueue {
	q := &SweepQueue{
		sweeper: sweeper,
		logger:  logger,
		workers: 4,
		timeout: 5 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *SweepQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("sweep worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					created, err := q.sweeper.AutoApply(ctx, job.SchemeID)
					cancel()

					if err != nil {
						q.logger.Error("sweep failed", "worker_id", workerID, "scheme_id", job.SchemeID, "error", err)
					} else {
						q.logger.Info("sweep complete", "worker_id", workerID, "scheme_id", job.SchemeID, "created", len(created))
					}
				}

				q.logger.Info("sweep worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *SweepQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "scheme_id", job.SchemeID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued scheme for sweep", "scheme_id", job.SchemeID)
	default:
		q.logger.Warn("queue full, applying backpressure", "scheme_id", job.SchemeID)
		q.ch <- job
	}
	return nil
}

func (q *SweepQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
