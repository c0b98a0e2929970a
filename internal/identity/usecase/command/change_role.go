package command

import (
	"context"

	"github.com/tair/backoffice/internal/identity/client"
	"github.com/tair/backoffice/internal/identity/domain"
	notification "github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// ChangeRoleCommand represents the command to change a user's role (admin only)
type ChangeRoleCommand struct {
	UserID uint        `json:"-" validate:"required"`
	Role   domain.Role `json:"role" validate:"required,oneof=ADMIN MODERATOR MEMBER USER"`
}

// ChangeRoleHandler handles user role change command
type ChangeRoleHandler struct {
	exec     *pipeline.Executor
	repo     domain.UserRepository
	metadata client.MetadataUpdater
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(exec *pipeline.Executor, repo domain.UserRepository, metadata client.MetadataUpdater) *ChangeRoleHandler {
	return &ChangeRoleHandler{exec: exec, repo: repo, metadata: metadata}
}

// Handle updates the stored role and the identity provider together. If the provider
// rejects the change the stored role is left as it was.
func (h *ChangeRoleHandler) Handle(ctx context.Context, cmd ChangeRoleCommand) (pipeline.Result[*domain.User], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[ChangeRoleCommand, *domain.User]{
		Name:     "ChangeRole",
		Action:   domain.ActionUpdate,
		Resource: domain.ResourceUser,
		Mutate: func(ctx context.Context, _ pipeline.Actor, cmd ChangeRoleCommand) (*domain.User, error) {
			return h.repo.UpdateRole(ctx, cmd.UserID, cmd.Role, func(ctx context.Context, user *domain.User) error {
				return h.metadata.UpdateRole(ctx, user.ExternalRef, user.Role)
			})
		},
		Notices: func(_ pipeline.Actor, user *domain.User) []notification.Notice {
			return []notification.Notice{
				notification.NewNotice(notification.Direct(user.ExternalRef), notification.TypeRoleUpdated, string(user.Role)),
			}
		},
		EntityID: func(u *domain.User) uint { return u.ID },
		Message:  "User role updated successfully",
	}, cmd)
}
