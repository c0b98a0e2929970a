package query

import (
	"context"

	"github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// ListUsersQuery represents the query to list users
type ListUsersQuery struct {
	Limit  int
	Offset int
}

// UserQueryHandler serves profile and directory reads
type UserQueryHandler struct {
	exec *pipeline.Executor
	repo domain.UserRepository
}

// NewUserQueryHandler creates a new user query handler
func NewUserQueryHandler(exec *pipeline.Executor, repo domain.UserRepository) *UserQueryHandler {
	return &UserQueryHandler{exec: exec, repo: repo}
}

// Me returns the caller's own record
func (h *UserQueryHandler) Me(ctx context.Context) (*domain.User, error) {
	actor, err := h.exec.Authorize(ctx, domain.ActionRead, domain.ResourceUser)
	if err != nil {
		return nil, err
	}
	return actor.User, nil
}

// List returns every user, newest first
func (h *UserQueryHandler) List(ctx context.Context, q ListUsersQuery) ([]domain.User, error) {
	if _, err := h.exec.Authorize(ctx, domain.ActionRead, domain.ResourceUserDirectory); err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, q.Limit, q.Offset)
}

// Lookup resolves a user by external reference for service-to-service callers
func (h *UserQueryHandler) Lookup(ctx context.Context, ref string) (*domain.User, error) {
	return h.repo.FindByExternalRef(ctx, ref)
}
