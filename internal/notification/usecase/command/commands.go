package command

import (
	"context"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// MarkReadCommand represents the command to mark one of the caller's notifications read
type MarkReadCommand struct {
	ID uint `json:"-" validate:"required"`
}

// DeleteNotificationCommand represents the command to delete a notification
type DeleteNotificationCommand struct {
	ID uint `json:"-" validate:"required"`
}

// MarkedRead reports how many notifications changed
type MarkedRead struct {
	Updated int64 `json:"updated"`
}

// NotificationCommandHandler handles notification mutations
type NotificationCommandHandler struct {
	exec *pipeline.Executor
	repo domain.NotificationRepository
}

// NewNotificationCommandHandler creates a new notification command handler
func NewNotificationCommandHandler(exec *pipeline.Executor, repo domain.NotificationRepository) *NotificationCommandHandler {
	return &NotificationCommandHandler{exec: exec, repo: repo}
}

// MarkRead marks one notification read. Notifications of other users are not found.
func (h *NotificationCommandHandler) MarkRead(ctx context.Context, cmd MarkReadCommand) (pipeline.Result[*domain.Notification], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[MarkReadCommand, *domain.Notification]{
		Name:     "MarkNotificationRead",
		Action:   identity.ActionUpdate,
		Resource: identity.ResourceNotification,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd MarkReadCommand) (*domain.Notification, error) {
			return h.repo.MarkRead(ctx, cmd.ID, actor.Ref)
		},
		EntityID: func(n *domain.Notification) uint { return n.ID },
		Message:  "Notification marked as read",
	}, cmd)
}

// MarkAllRead marks every unread notification of the caller read. Repeating it is a no-op.
func (h *NotificationCommandHandler) MarkAllRead(ctx context.Context) (pipeline.Result[MarkedRead], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[struct{}, MarkedRead]{
		Name:     "MarkAllNotificationsRead",
		Action:   identity.ActionUpdate,
		Resource: identity.ResourceNotification,
		Mutate: func(ctx context.Context, actor pipeline.Actor, _ struct{}) (MarkedRead, error) {
			n, err := h.repo.MarkAllRead(ctx, actor.Ref)
			if err != nil {
				return MarkedRead{}, err
			}
			return MarkedRead{Updated: n}, nil
		},
		Message: "All notifications marked as read",
	}, struct{}{})
}

// Delete removes any notification
func (h *NotificationCommandHandler) Delete(ctx context.Context, cmd DeleteNotificationCommand) (pipeline.Result[uint], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[DeleteNotificationCommand, uint]{
		Name:     "DeleteNotification",
		Action:   identity.ActionDelete,
		Resource: identity.ResourceNotification,
		Mutate: func(ctx context.Context, _ pipeline.Actor, cmd DeleteNotificationCommand) (uint, error) {
			if err := h.repo.Delete(ctx, cmd.ID); err != nil {
				return 0, err
			}
			return cmd.ID, nil
		},
		EntityID: func(id uint) uint { return id },
		Message:  "Notification deleted successfully",
	}, cmd)
}
