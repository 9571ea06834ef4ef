package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Job is one scheme sweep. Extend as needed later (priority, trace, retry, etc).
type Job struct {
	SchemeID    uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
