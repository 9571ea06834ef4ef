package repository

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/constants"
	"github.com/chandrashekharddev/agroscheme/gen/ent"
	"github.com/chandrashekharddev/agroscheme/gen/ent/application"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

// ApplicationFilter narrows ListApplications. Zero values match everything.
type ApplicationFilter struct {
	FarmerID uuid.UUID
	SchemeID uuid.UUID
	Status   constants.ApplicationStatus
}

type ApplicationRepository interface {
	GetByFarmerAndScheme(ctx context.Context, farmerID, schemeID uuid.UUID) (*entity.Application, error)
	GetByApplicationID(ctx context.Context, applicationID string) (*entity.Application, error)
	Insert(ctx context.Context, app *entity.Application) (*entity.Application, error)
	Update(ctx context.Context, app *entity.Application) (*entity.Application, error)
	ListApplications(ctx context.Context, filter ApplicationFilter) ([]*entity.Application, error)
}

type applicationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewApplicationRepository(client *ent.Client, logger *slog.Logger) ApplicationRepository {
	return &applicationRepository{
		client: client,
		logger: logger,
	}
}

func (r *applicationRepository) GetByFarmerAndScheme(ctx context.Context, farmerID, schemeID uuid.UUID) (*entity.Application, error) {
	a, err := r.client.Application.Query().
		Where(
			application.FarmerID(farmerID),
			application.SchemeID(schemeID),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toApplication(a, r.logger), nil
}

func (r *applicationRepository) GetByApplicationID(ctx context.Context, applicationID string) (*entity.Application, error) {
	a, err := r.client.Application.Query().
		Where(application.ApplicationID(applicationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toApplication(a, r.logger), nil
}

// Insert relies on the database constraints for uniqueness and classifies
// violations: the (farmer, scheme) index maps to ErrAlreadyApplied, the
// application_id unique constraint to ErrDuplicateApplicationID.
func (r *applicationRepository) Insert(ctx context.Context, app *entity.Application) (*entity.Application, error) {
	history, err := entity.EncodeHistory(app.StatusHistory)
	if err != nil {
		return nil, common.WrapError(err, "encode status history")
	}

	builder := r.client.Application.Create().
		SetApplicationID(app.ApplicationID).
		SetFarmerID(app.FarmerID).
		SetSchemeID(app.SchemeID).
		SetStatus(string(app.Status)).
		SetSource(string(app.Source)).
		SetNillableAppliedAmount(app.AppliedAmount).
		SetStatusHistory(history)

	if len(app.Eligibility) > 0 {
		builder = builder.SetEligibility(app.Eligibility)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			if strings.Contains(err.Error(), "application_id") {
				return nil, common.ErrDuplicateApplicationID
			}
			return nil, common.ErrAlreadyApplied
		}
		r.logger.Error("failed to insert application", "application_id", app.ApplicationID, "error", err)
		return nil, err
	}
	return toApplication(a, r.logger), nil
}

func (r *applicationRepository) Update(ctx context.Context, app *entity.Application) (*entity.Application, error) {
	history, err := entity.EncodeHistory(app.StatusHistory)
	if err != nil {
		return nil, common.WrapError(err, "encode status history")
	}

	a, err := r.client.Application.UpdateOneID(app.ID).
		SetStatus(string(app.Status)).
		SetNillableApprovedAmount(app.ApprovedAmount).
		SetStatusHistory(history).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update application", "application_id", app.ApplicationID, "error", err)
		return nil, err
	}
	return toApplication(a, r.logger), nil
}

func (r *applicationRepository) ListApplications(ctx context.Context, filter ApplicationFilter) ([]*entity.Application, error) {
	q := r.client.Application.Query()
	if filter.FarmerID != uuid.Nil {
		q = q.Where(application.FarmerID(filter.FarmerID))
	}
	if filter.SchemeID != uuid.Nil {
		q = q.Where(application.SchemeID(filter.SchemeID))
	}
	if filter.Status != "" {
		q = q.Where(application.Status(string(filter.Status)))
	}
	alist, err := q.Order(application.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list applications", "error", err)
		return nil, err
	}
	result := make([]*entity.Application, len(alist))
	for i, a := range alist {
		result[i] = toApplication(a, r.logger)
	}
	return result, nil
}
