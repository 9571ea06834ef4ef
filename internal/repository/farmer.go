package repository

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/gen/ent"
	"github.com/chandrashekharddev/agroscheme/gen/ent/farmer"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

// CreateFarmerRequest wraps parameters for registering a farmer.
type CreateFarmerRequest struct {
	FarmerCode string
	Name       string
	Phone      string
	Village    string
	District   string
	AutoApply  bool
}

type FarmerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Farmer, error)
	GetByCode(ctx context.Context, code string) (*entity.Farmer, error)
	CreateFarmer(ctx context.Context, request *CreateFarmerRequest) (*entity.Farmer, error)
	ListFarmers(ctx context.Context) ([]*entity.Farmer, error)
	ListAutoApply(ctx context.Context) ([]*entity.Farmer, error)
	SetAutoApply(ctx context.Context, id uuid.UUID, enabled bool) (*entity.Farmer, error)
}

type farmerRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewFarmerRepository(client *ent.Client, logger *slog.Logger) FarmerRepository {
	return &farmerRepository{
		client: client,
		logger: logger,
	}
}

func (r *farmerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Farmer, error) {
	f, err := r.client.Farmer.Query().Where(farmer.ID(id)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toFarmer(f), nil
}

func (r *farmerRepository) GetByCode(ctx context.Context, code string) (*entity.Farmer, error) {
	f, err := r.client.Farmer.Query().Where(farmer.FarmerCode(code)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	return toFarmer(f), nil
}

func (r *farmerRepository) CreateFarmer(ctx context.Context, request *CreateFarmerRequest) (*entity.Farmer, error) {
	builder := r.client.Farmer.Create().
		SetFarmerCode(request.FarmerCode).
		SetName(request.Name).
		SetAutoApply(request.AutoApply)

	if request.Phone != "" {
		builder = builder.SetPhone(request.Phone)
	}
	if request.Village != "" {
		builder = builder.SetVillage(request.Village)
	}
	if request.District != "" {
		builder = builder.SetDistrict(request.District)
	}

	f, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, errors.New("farmer code already registered")
		}
		r.logger.Error("failed to create farmer", "farmer_code", request.FarmerCode, "error", err)
		return nil, err
	}
	return toFarmer(f), nil
}

func (r *farmerRepository) ListFarmers(ctx context.Context) ([]*entity.Farmer, error) {
	flist, err := r.client.Farmer.Query().Order(farmer.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list farmers", "error", err)
		return nil, err
	}
	result := make([]*entity.Farmer, len(flist))
	for i, f := range flist {
		result[i] = toFarmer(f)
	}
	return result, nil
}

func (r *farmerRepository) ListAutoApply(ctx context.Context) ([]*entity.Farmer, error) {
	flist, err := r.client.Farmer.Query().
		Where(farmer.AutoApply(true)).
		Order(farmer.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list auto-apply farmers", "error", err)
		return nil, err
	}
	result := make([]*entity.Farmer, len(flist))
	for i, f := range flist {
		result[i] = toFarmer(f)
	}
	return result, nil
}

func (r *farmerRepository) SetAutoApply(ctx context.Context, id uuid.UUID, enabled bool) (*entity.Farmer, error) {
	f, err := r.client.Farmer.UpdateOneID(id).SetAutoApply(enabled).Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, common.ErrNotFound
		}
		r.logger.Error("failed to update auto-apply flag", "farmer_id", id, "error", err)
		return nil, err
	}
	return toFarmer(f), nil
}
