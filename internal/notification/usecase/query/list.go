package query

import (
	"context"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// ListNotificationsQuery represents the query to list the caller's notifications
type ListNotificationsQuery struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// ListNotificationsHandler handles list notifications query
type ListNotificationsHandler struct {
	exec *pipeline.Executor
	repo domain.NotificationRepository
}

// NewListNotificationsHandler creates a new list notifications handler
func NewListNotificationsHandler(exec *pipeline.Executor, repo domain.NotificationRepository) *ListNotificationsHandler {
	return &ListNotificationsHandler{exec: exec, repo: repo}
}

// Handle returns the caller's own feed, newest first, whatever their role
func (h *ListNotificationsHandler) Handle(ctx context.Context, q ListNotificationsQuery) ([]domain.Notification, error) {
	actor, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceNotification)
	if err != nil {
		return nil, err
	}
	return h.repo.FindByUser(ctx, actor.Ref, q.UnreadOnly, q.Limit, q.Offset)
}
