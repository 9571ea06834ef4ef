package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	agroschemepb "github.com/chandrashekharddev/agroscheme/gen/proto/agroscheme/v1"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/repository"
	"github.com/chandrashekharddev/agroscheme/internal/utils"
)

type FarmersServer struct {
	agroschemepb.UnimplementedFarmersServiceServer
	farmerRepo       repository.FarmerRepository
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

func NewFarmersServer(farmerRepo repository.FarmerRepository, notificationRepo repository.NotificationRepository, logger *slog.Logger) *FarmersServer {
	return &FarmersServer{
		farmerRepo:       farmerRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// CreateFarmer registers a new farmer profile.
func (s *FarmersServer) CreateFarmer(ctx context.Context, req *agroschemepb.CreateFarmerRequest) (*agroschemepb.CreateFarmerResponse, error) {
	if strings.TrimSpace(req.GetFarmerCode()) == "" {
		return nil, status.Error(codes.InvalidArgument, "farmer_code is required")
	}
	if strings.TrimSpace(req.GetName()) == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}

	f, err := s.farmerRepo.CreateFarmer(ctx, &repository.CreateFarmerRequest{
		FarmerCode: strings.TrimSpace(req.GetFarmerCode()),
		Name:       strings.TrimSpace(req.GetName()),
		Phone:      strings.TrimSpace(req.GetPhone()),
		Village:    strings.TrimSpace(req.GetVillage()),
		District:   strings.TrimSpace(req.GetDistrict()),
		AutoApply:  req.GetAutoApply(),
	})
	if err != nil {
		s.logger.Error("failed to create farmer", "farmer_code", req.GetFarmerCode(), "error", err)
		return nil, status.Errorf(codes.Internal, "create farmer: %v", err)
	}

	return &agroschemepb.CreateFarmerResponse{Farmer: utils.ToPBFarmer(f)}, nil
}

func (s *FarmersServer) GetFarmer(ctx context.Context, req *agroschemepb.GetFarmerRequest) (*agroschemepb.GetFarmerResponse, error) {
	farmerID, err := parseUUID(req.GetFarmerId(), "farmer_id")
	if err != nil {
		return nil, err
	}
	f, err := s.farmerRepo.GetByID(ctx, farmerID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "farmer not found")
		}
		return nil, status.Errorf(codes.Internal, "get farmer: %v", err)
	}
	return &agroschemepb.GetFarmerResponse{Farmer: utils.ToPBFarmer(f)}, nil
}

func (s *FarmersServer) ListFarmers(ctx context.Context, _ *agroschemepb.ListFarmersRequest) (*agroschemepb.ListFarmersResponse, error) {
	flist, err := s.farmerRepo.ListFarmers(ctx)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list farmers: %v", err)
	}
	out := make([]*agroschemepb.Farmer, 0, len(flist))
	for _, f := range flist {
		out = append(out, utils.ToPBFarmer(f))
	}
	return &agroschemepb.ListFarmersResponse{Farmers: out}, nil
}

func (s *FarmersServer) SetAutoApply(ctx context.Context, req *agroschemepb.SetAutoApplyRequest) (*agroschemepb.SetAutoApplyResponse, error) {
	farmerID, err := parseUUID(req.GetFarmerId(), "farmer_id")
	if err != nil {
		return nil, err
	}
	f, err := s.farmerRepo.SetAutoApply(ctx, farmerID, req.GetEnabled())
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "farmer not found")
		}
		return nil, status.Errorf(codes.Internal, "set auto-apply: %v", err)
	}
	s.logger.Info("auto-apply flag updated", "farmer_id", farmerID, "enabled", req.GetEnabled())
	return &agroschemepb.SetAutoApplyResponse{Farmer: utils.ToPBFarmer(f)}, nil
}

func (s *FarmersServer) ListNotifications(ctx context.Context, req *agroschemepb.ListNotificationsRequest) (*agroschemepb.ListNotificationsResponse, error) {
	farmerID, err := parseUUID(req.GetFarmerId(), "farmer_id")
	if err != nil {
		return nil, err
	}
	nlist, err := s.notificationRepo.ListByFarmer(ctx, farmerID, req.GetUnreadOnly())
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list notifications: %v", err)
	}
	out := make([]*agroschemepb.Notification, 0, len(nlist))
	for _, n := range nlist {
		out = append(out, utils.ToPBNotification(n))
	}
	return &agroschemepb.ListNotificationsResponse{Notifications: out}, nil
}

func (s *FarmersServer) MarkNotificationRead(ctx context.Context, req *agroschemepb.MarkNotificationReadRequest) (*agroschemepb.MarkNotificationReadResponse, error) {
	notificationID, err := parseUUID(req.GetNotificationId(), "notification_id")
	if err != nil {
		return nil, err
	}
	if err := s.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, status.Error(codes.NotFound, "notification not found")
		}
		return nil, status.Errorf(codes.Internal, "mark notification read: %v", err)
	}
	return &agroschemepb.MarkNotificationReadResponse{}, nil
}

func parseUUID(raw, field string) (uuid.UUID, error) {
	if strings.TrimSpace(raw) == "" {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s is required", field)
	}
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "%s must be a UUID", field)
	}
	return id, nil
}
