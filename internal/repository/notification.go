package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/chandrashekharddev/agroscheme/gen/ent"
	"github.com/chandrashekharddev/agroscheme/gen/ent/notification"
	"github.com/chandrashekharddev/agroscheme/internal/common"
	"github.com/chandrashekharddev/agroscheme/internal/entity"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByFarmer(ctx context.Context, farmerID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

type notificationRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewNotificationRepository(client *ent.Client, logger *slog.Logger) NotificationRepository {
	return &notificationRepository{
		client: client,
		logger: logger,
	}
}

func (r *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	_, err := r.client.Notification.Create().
		SetFarmerID(n.FarmerID).
		SetTitle(n.Title).
		SetMessage(n.Message).
		SetNotificationType(string(n.Type)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create notification", "farmer_id", n.FarmerID, "error", err)
		return err
	}
	return nil
}

func (r *notificationRepository) ListByFarmer(ctx context.Context, farmerID uuid.UUID, unreadOnly bool) ([]*entity.Notification, error) {
	q := r.client.Notification.Query().Where(notification.FarmerID(farmerID))
	if unreadOnly {
		q = q.Where(notification.Read(false))
	}
	nlist, err := q.Order(notification.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list notifications", "farmer_id", farmerID, "error", err)
		return nil, err
	}
	result := make([]*entity.Notification, len(nlist))
	for i, n := range nlist {
		result[i] = toNotification(n)
	}
	return result, nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uuid.UUID) error {
	err := r.client.Notification.UpdateOneID(id).SetRead(true).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return common.ErrNotFound
		}
		r.logger.Error("failed to mark notification read", "notification_id", id, "error", err)
		return err
	}
	return nil
}
