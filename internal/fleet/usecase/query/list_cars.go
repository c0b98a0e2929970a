package query

import (
	"context"

	"github.com/tair/backoffice/internal/fleet/domain"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/pipeline"
)

// ListCarsQuery represents the query to list cars
type ListCarsQuery struct {
	Limit  int
	Offset int
}

// ListCarsHandler handles list cars query
type ListCarsHandler struct {
	exec *pipeline.Executor
	repo domain.CarRepository
}

// NewListCarsHandler creates a new list cars handler
func NewListCarsHandler(exec *pipeline.Executor, repo domain.CarRepository) *ListCarsHandler {
	return &ListCarsHandler{exec: exec, repo: repo}
}

// Handle returns every car for elevated roles and only the caller's cars otherwise
func (h *ListCarsHandler) Handle(ctx context.Context, q ListCarsQuery) ([]domain.Car, error) {
	actor, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceCar)
	if err != nil {
		return nil, err
	}
	return h.repo.FindAll(ctx, actor.Scope(), q.Limit, q.Offset)
}
