package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/testutil"
)

func TestGormUserRepository_FindByRoles(t *testing.T) {
	db := testutil.NewDB(t, &domain.User{})
	repo := NewGormUserRepository(db)

	testutil.SeedUser(t, db, "a", domain.RoleAdmin)
	testutil.SeedUser(t, db, "m", domain.RoleModerator)
	testutil.SeedUser(t, db, "u", domain.RoleUser)

	users, err := repo.FindByRoles(context.Background(), domain.RoleAdmin, domain.RoleModerator)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "a", users[0].ExternalRef)
	assert.Equal(t, "m", users[1].ExternalRef)

	_, err = repo.FindByExternalRef(context.Background(), "nobody")
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestGormUserRepository_UpdateRole(t *testing.T) {
	db := testutil.NewDB(t, &domain.User{})
	repo := NewGormUserRepository(db)
	user := testutil.SeedUser(t, db, "u", domain.RoleUser)

	var seen domain.Role
	updated, err := repo.UpdateRole(context.Background(), user.ID, domain.RoleModerator, func(_ context.Context, u *domain.User) error {
		seen = u.Role
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleModerator, seen)
	assert.Equal(t, domain.RoleModerator, updated.Role)

	_, err = repo.UpdateRole(context.Background(), 999, domain.RoleAdmin, nil)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
