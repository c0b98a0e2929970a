package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/fleet/domain"
	"github.com/tair/backoffice/internal/fleet/repository"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/testutil"
	"github.com/tair/backoffice/internal/testutil/fixture"
)

func TestListCarsScope(t *testing.T) {
	env := fixture.New(t, &domain.Car{})
	repo := repository.NewGormCarRepository(env.DB)
	h := NewListCarsHandler(env.Exec, repo)

	userCtx := env.Seed(t, "user_a", identity.RoleUser)
	memberCtx := env.Seed(t, "user_m", identity.RoleMember)

	for _, owner := range []string{"user_a", "user_b", "user_b"} {
		require.NoError(t, repo.Create(context.Background(), &domain.Car{
			OwnerRef: owner, Name: "car-" + owner, PlateNumber: "P", Status: domain.CarStatusActive,
		}))
	}

	cars, err := h.Handle(userCtx, ListCarsQuery{Limit: 50})
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, "user_a", cars[0].OwnerRef)

	cars, err = h.Handle(memberCtx, ListCarsQuery{Limit: 50})
	require.NoError(t, err)
	assert.Len(t, cars, 3)

	_, err = h.Handle(context.Background(), ListCarsQuery{Limit: 50})
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))

	_, err = h.Handle(testutil.WithPrincipal(context.Background(), "ghost"), ListCarsQuery{Limit: 50})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
