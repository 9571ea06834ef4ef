package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/gen/ent"
	"github.com/chandrashekharddev/agroscheme/gen/ent/scheme"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/eligibility"
	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

// CreateSchemeRequest wraps parameters for publishing a scheme.
type CreateSchemeRequest struct {
	Name              string
	Description       string
	BenefitAmount     float64
	Criteria          json.RawMessage
	RequiredDocuments []string
}

type SchemeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Scheme, error)
	CreateScheme(ctx context.Context, request *CreateSchemeRequest) (*entity.Scheme, error)
	ListSchemes(ctx context.Context, activeOnly bool) ([]*entity.Scheme, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Scheme, error)
}

type schemeRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewSchemeRepository(client *ent.Client, logger *slog.Logger) SchemeRepository {
	return &schemeRepository{
		client: client,
		logger: logger,
	}
}

func (r *schemeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Scheme, error) {
	s, err := r.client.Scheme.Query().Where(scheme.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toScheme(s), nil
}

// CreateScheme validates the criteria document against the criteria schema
// before insert; schemes with unknown criteria keys are rejected outright.
func (r *schemeRepository) CreateScheme(ctx context.Context, request *CreateSchemeRequest) (*entity.Scheme, error) {
	if len(request.Criteria) > 0 {
		if err := eligibility.ValidateCriteria(request.Criteria); err != nil {
			return nil, common.WrapError(common.ErrInvalidInput, err.Error())
		}
	}

	builder := r.client.Scheme.Create().
		SetName(request.Name).
		SetBenefitAmount(request.BenefitAmount).
		SetRequiredDocuments(request.RequiredDocuments)

	if request.Description != "" {
		builder = builder.SetDescription(request.Description)
	}
	if len(request.Criteria) > 0 {
		builder = builder.SetCriteria(request.Criteria)
	}

	s, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("failed to create scheme", "name", request.Name, "error", err)
		return nil, err
	}
	return toScheme(s), nil
}

func (r *schemeRepository) ListSchemes(ctx context.Context, activeOnly bool) ([]*entity.Scheme, error) {
	q := r.client.Scheme.Query()
	if activeOnly {
		q = q.Where(scheme.Active(true))
	}
	slist, err := q.Order(scheme.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list schemes", "error", err)
		return nil, err
	}
	result := make([]*entity.Scheme, len(slist))
	for i, s := range slist {
		result[i] = toScheme(s)
	}
	return result, nil
}

func (r *schemeRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) (*entity.Scheme, error) {
	s, err := r.client.Scheme.UpdateOneID(id).SetActive(active).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update scheme active flag", "scheme_id", id, "error", err)
		return nil, err
	}
	return toScheme(s), nil
}
