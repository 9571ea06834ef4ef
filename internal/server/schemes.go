package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	agroschemepb "github.com/chandrashekharddev/agroscheme/gen/proto/agroscheme/v1"
	"github.com/chandrashekharddev/agroscheme/internal/async"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/repository"
	"github.com/chandrashekharddev/agroscheme/internal/utils"
)

type SchemesServer struct {
	agroschemepb.UnimplementedSchemesServiceServer
	schemeRepo repository.SchemeRepository
	sweeps     async.Queue
	logger     *slog.Logger
}

func NewSchemesServer(schemeRepo repository.SchemeRepository, sweeps async.Queue, logger *slog.Logger) *SchemesServer {
	return &SchemesServer{
		schemeRepo: schemeRepo,
		sweeps:     sweeps,
		logger:     logger,
	}
}

// CreateScheme publishes a scheme and queues an auto-apply sweep over all
// opted-in farmers.
func (s *SchemesServer) CreateScheme(ctx context.Context, req *agroschemepb.CreateSchemeRequest) (*agroschemepb.CreateSchemeResponse, error) {
	if strings.TrimSpace(req.GetName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if req.GetBenefitAmount() < 0 {
		return nil, status.Error(codes.InvalidArgument, "benefit_amount must not be negative")
	}

	var criteria json.RawMessage
	if cj := strings.TrimSpace(req.GetCriteriaJson()); cj != "" {
		criteria = json.RawMessage(cj)
	}

	scheme, err := s.schemeRepo.CreateScheme(ctx, &repository.CreateSchemeRequest{
		Name:              strings.TrimSpace(req.GetName()),
		Description:       strings.TrimSpace(req.GetDescription()),
		BenefitAmount:     req.GetBenefitAmount(),
		Criteria:          criteria,
		RequiredDocuments: req.GetRequiredDocuments(),
	})
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			return nil, status.Errorf(codes.InvalidArgument, "criteria: %v", err)
		}
		s.logger.Error("failed to create scheme", "name", req.GetName(), "error", err)
		return nil, status.Errorf(codes.Internal, "create scheme: %v", err)
	}

	if s.sweeps != nil {
		_ = s.sweeps.Enqueue(ctx, async.Job{SchemeID: scheme.ID, SubmittedAt: time.Now()})
	}

	return &agroschemepb.CreateSchemeResponse{Scheme: utils.ToPBScheme(scheme)}, nil
}

func (s *SchemesServer) GetScheme(ctx context.Context, req *agroschemepb.GetSchemeRequest) (*agroschemepb.GetSchemeResponse, error) {
	schemeID, err := parseUUID(req.GetSchemeId(), "scheme_id")
	if err != nil {
		return nil, err
	}
	scheme, err := s.schemeRepo.GetByID(ctx, schemeID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "scheme not found")
		}
		return nil, status.Errorf(codes.Internal, "get scheme: %v", err)
	}
	return &agroschemepb.GetSchemeResponse{Scheme: utils.ToPBScheme(scheme)}, nil
}

func (s *SchemesServer) ListSchemes(ctx context.Context, req *agroschemepb.ListSchemesRequest) (*agroschemepb.ListSchemesResponse, error) {
	slist, err := s.schemeRepo.ListSchemes(ctx, req.GetActiveOnly())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list schemes: %v", err)
	}
	out := make([]*agroschemepb.Scheme, 0, len(slist))
	for _, sc := range slist {
		out = append(out, utils.ToPBScheme(sc))
	}
	return &agroschemepb.ListSchemesResponse{Schemes: out}, nil
}

func (s *SchemesServer) SetSchemeActive(ctx context.Context, req *agroschemepb.SetSchemeActiveRequest) (*agroschemepb.SetSchemeActiveResponse, error) {
	schemeID, err := parseUUID(req.GetSchemeId(), "scheme_id")
	if err != nil {
		return nil, err
	}
	scheme, err := s.schemeRepo.SetActive(ctx, schemeID, req.GetActive())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "scheme not found")
		}
		return nil, status.Errorf(codes.Internal, "set scheme active: %v", err)
	}
	s.logger.Info("scheme active flag updated", "scheme_id", schemeID, "active", req.GetActive())
	return &agroschemepb.SetSchemeActiveResponse{Scheme: utils.ToPBScheme(scheme)}, nil
}
