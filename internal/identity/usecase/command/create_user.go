package command

import (
	"context"

	"github.com/tair/backoffice/internal/identity/domain"
	notification "github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// CreateUserCommand represents the command to provision the caller's own profile
type CreateUserCommand struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Name     string `json:"name" validate:"max=120"`
	Email    string `json:"email" validate:"omitempty,email"`
	Phone    string `json:"phone" validate:"max=32"`
}

// CreateUserHandler handles create user command
type CreateUserHandler struct {
	exec *pipeline.Executor
	repo domain.UserRepository
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(exec *pipeline.Executor, repo domain.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{exec: exec, repo: repo}
}

// Handle stores a USER record linked to the caller. A second call conflicts.
func (h *CreateUserHandler) Handle(ctx context.Context, cmd CreateUserCommand) (pipeline.Result[*domain.User], error) {
	return pipeline.Execute(ctx, h.exec, pipeline.Operation[CreateUserCommand, *domain.User]{
		Name:          "CreateUser",
		Action:        domain.ActionCreate,
		Resource:      domain.ResourceUser,
		SelfProvision: true,
		Mutate: func(ctx context.Context, actor pipeline.Actor, cmd CreateUserCommand) (*domain.User, error) {
			user := &domain.User{
				ExternalRef: actor.Ref,
				Username:    cmd.Username,
				Name:        cmd.Name,
				Email:       cmd.Email,
				Phone:       cmd.Phone,
				Role:        domain.RoleUser,
			}
			if err := h.repo.Create(ctx, user); err != nil {
				return nil, err
			}
			return user, nil
		},
		Notices: func(actor pipeline.Actor, user *domain.User) []notification.Notice {
			return []notification.Notice{
				notification.NewNotice(notification.Direct(actor.Ref), notification.TypeUserCreated, user.Username),
			}
		},
		EntityID: func(u *domain.User) uint { return u.ID },
		Message:  "User created successfully",
	}, cmd)
}
