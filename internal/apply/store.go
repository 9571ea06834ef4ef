package apply

import (
	"context"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

// Narrow store ports consumed by the apply service. The ent-backed
// repositories satisfy these; tests substitute in-memory fakes.

type FarmerStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Farmer, error)
	ListAutoApply(ctx context.Context) ([]*entity.Farmer, error)
}

type SchemeStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Scheme, error)
}

type DocumentStore interface {
	ListByFarmer(ctx context.Context, farmerID uuid.UUID) ([]*entity.FarmerDocument, error)
}

type ApplicationStore interface {
	GetByFarmerAndScheme(ctx context.Context, farmerID, schemeID uuid.UUID) (*entity.Application, error)
	GetByApplicationID(ctx context.Context, applicationID string) (*entity.Application, error)
	// Insert must surface uniqueness violations distinguishably:
	// common.ErrAlreadyApplied for the (farmer, scheme) pair and
	// common.ErrDuplicateApplicationID for the identifier.
	Insert(ctx context.Context, app *entity.Application) (*entity.Application, error)
	Update(ctx context.Context, app *entity.Application) (*entity.Application, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *entity.Notification) error
}
