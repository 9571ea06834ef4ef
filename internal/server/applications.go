package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/chandrashekharddev/agroscheme/constants"
	agroschemepb "github.com/chandrashekharddev/agroscheme/gen/proto/agroscheme/v1"
	"github.com/chandrashekharddev/agroscheme/internal/apply"
	"github.com/chandrashekharddev/agroscheme/internal/async"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/export"
	"github.com/chandrashekharddev/agroscheme/internal/repository"
	"github.com/chandrashekharddev/agroscheme/internal/utils"
)

type ApplicationsServer struct {
	agroschemepb.UnimplementedApplicationsServiceServer
	svc             *apply.Service
	applicationRepo repository.ApplicationRepository
	exporter        *export.Service
	sweeps          async.Queue
	logger          *slog.Logger
}

func NewApplicationsServer(svc *apply.Service, applicationRepo repository.ApplicationRepository, exporter *export.Service, sweeps async.Queue, logger *slog.Logger) *ApplicationsServer {
	return &ApplicationsServer{
		svc:             svc,
		applicationRepo: applicationRepo,
		exporter:        exporter,
		sweeps:          sweeps,
		logger:          logger,
	}
}

func (s *ApplicationsServer) EvaluateEligibility(ctx context.Context, req *agroschemepb.EvaluateEligibilityRequest) (*agroschemepb.EvaluateEligibilityResponse, error) {
	farmerID, err := parseUUID(req.GetFarmerId(), "farmer_id")
	if err != nil {
		return nil, err
	}
	schemeID, err := parseUUID(req.GetSchemeId(), "scheme_id")
	if err != nil {
		return nil, err
	}

	verdict, err := s.svc.Evaluate(ctx, farmerID, schemeID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "scheme not found")
		}
		return nil, status.Errorf(codes.Internal, "evaluate: %v", err)
	}
	return &agroschemepb.EvaluateEligibilityResponse{Verdict: utils.ToPBVerdict(verdict)}, nil
}

func (s *ApplicationsServer) ManualApply(ctx context.Context, req *agroschemepb.ManualApplyRequest) (*agroschemepb.ManualApplyResponse, error) {
	farmerID, err := parseUUID(req.GetFarmerId(), "farmer_id")
	if err != nil {
		return nil, err
	}
	schemeID, err := parseUUID(req.GetSchemeId(), "scheme_id")
	if err != nil {
		return nil, err
	}

	result, err := s.svc.ManualApply(ctx, farmerID, schemeID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "farmer or scheme not found")
		}
		s.logger.Error("manual apply failed", "farmer_id", farmerID, "scheme_id", schemeID, "error", err)
		return nil, status.Errorf(codes.Internal, "apply: %v", err)
	}
	return utils.ToPBApplyResult(result), nil
}

// SweepScheme queues an asynchronous auto-apply pass for one scheme.
func (s *ApplicationsServer) SweepScheme(ctx context.Context, req *agroschemepb.SweepSchemeRequest) (*agroschemepb.SweepSchemeResponse, error) {
	schemeID, err := parseUUID(req.GetSchemeId(), "scheme_id")
	if err != nil {
		return nil, err
	}
	if s.sweeps == nil {
		return nil, status.Error(codes.Unavailable, "sweep queue not configured")
	}
	if err := s.sweeps.Enqueue(ctx, async.Job{SchemeID: schemeID, SubmittedAt: time.Now()}); err != nil {
		return nil, status.Errorf(codes.Internal, "enqueue sweep: %v", err)
	}
	return &agroschemepb.SweepSchemeResponse{Queued: true}, nil
}

func (s *ApplicationsServer) UpdateApplicationStatus(ctx context.Context, req *agroschemepb.UpdateApplicationStatusRequest) (*agroschemepb.UpdateApplicationStatusResponse, error) {
	applicationID := strings.TrimSpace(req.GetApplicationId())
	if applicationID == "" {
		return nil, status.Error(codes.InvalidArgument, "application_id is required")
	}
	next, ok := constants.ParseApplicationStatus(strings.TrimSpace(req.GetStatus()))
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", req.GetStatus())
	}

	var approvedAmount *float64
	if req.ApprovedAmount != nil {
		v := req.GetApprovedAmount()
		if v < 0 {
			return nil, status.Error(codes.InvalidArgument, "approved_amount must not be negative")
		}
		approvedAmount = &v
	}

	app, err := s.svc.UpdateStatus(ctx, applicationID, next, approvedAmount)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			return nil, status.Error(codes.NotFound, "application not found")
		case errors.Is(err, common.ErrIllegalTransition):
			return nil, status.Errorf(codes.FailedPrecondition, "%v", err)
		default:
			s.logger.Error("status update failed", "application_id", applicationID, "error", err)
			return nil, status.Errorf(codes.Internal, "update status: %v", err)
		}
	}
	return &agroschemepb.UpdateApplicationStatusResponse{Application: utils.ToPBApplication(app)}, nil
}

func (s *ApplicationsServer) ListApplications(ctx context.Context, req *agroschemepb.ListApplicationsRequest) (*agroschemepb.ListApplicationsResponse, error) {
	var filter repository.ApplicationFilter
	if strings.TrimSpace(req.GetFarmerId()) != "" {
		id, err := parseUUID(req.GetFarmerId(), "farmer_id")
		if err != nil {
			return nil, err
		}
		filter.FarmerID = id
	}
	if strings.TrimSpace(req.GetSchemeId()) != "" {
		id, err := parseUUID(req.GetSchemeId(), "scheme_id")
		if err != nil {
			return nil, err
		}
		filter.SchemeID = id
	}
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		parsed, ok := constants.ParseApplicationStatus(st)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", st)
		}
		filter.Status = parsed
	}

	alist, err := s.applicationRepo.ListApplications(ctx, filter)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list applications: %v", err)
	}
	out := make([]*agroschemepb.Application, 0, len(alist))
	for _, a := range alist {
		out = append(out, utils.ToPBApplication(a))
	}
	return &agroschemepb.ListApplicationsResponse{Applications: out}, nil
}

func (s *ApplicationsServer) ExportApplications(ctx context.Context, req *agroschemepb.ExportApplicationsRequest) (*agroschemepb.ExportApplicationsResponse, error) {
	schemeID, err := parseUUID(req.GetSchemeId(), "scheme_id")
	if err != nil {
		return nil, err
	}
	xlsx, err := s.exporter.ExportApplicationsXLSX(ctx, schemeID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "scheme not found")
		}
		s.logger.Error("export.xlsx.failed", "scheme_id", schemeID, "err", err)
		return nil, status.Errorf(codes.Internal, "export: %v", err)
	}
	return &agroschemepb.ExportApplicationsResponse{Xlsx: xlsx}, nil
}
