package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/internal/apperr"
	identity "github.com/tair/backoffice/internal/identity/domain"
	notification "github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/partner/repository"
	"github.com/tair/backoffice/internal/testutil/fixture"
)

func TestCreateCompany(t *testing.T) {
	env := fixture.New(t, &domain.Company{})
	h := NewCompanyCommandHandler(env.Exec, repository.NewGormCompanyRepository(env.DB))

	adminCtx := env.Seed(t, "user_admin", identity.RoleAdmin)
	env.Seed(t, "user_mod", identity.RoleModerator)
	memberCtx := env.Seed(t, "user_member", identity.RoleMember)

	cmd := CompanyCommand{Name: "Acme Traders", Email: "billing@acme.test", GSTIN: "29ABCDE1234F1Z5"}

	result, err := h.Create(adminCtx, cmd)
	require.NoError(t, err)
	assert.Equal(t, "user_admin", result.Data.OwnerRef)

	for _, ref := range []string{"user_admin", "user_mod"} {
		rows := env.NotificationsFor(t, ref)
		require.Len(t, rows, 1, ref)
		assert.Equal(t, notification.TypeCompanyCreated, rows[0].Type)
		assert.Equal(t, "Company Acme Traders has been created.", rows[0].Message)
	}
	assert.Empty(t, env.NotificationsFor(t, "user_member"))

	t.Run("second company for the same owner conflicts", func(t *testing.T) {
		_, err := h.Create(adminCtx, CompanyCommand{Name: "Acme Again"})
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.Len(t, env.NotificationsFor(t, "user_mod"), 1)
	})

	t.Run("member cannot create", func(t *testing.T) {
		_, err := h.Create(memberCtx, cmd)
		assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
	})

	t.Run("invalid gstin", func(t *testing.T) {
		ctx := env.Seed(t, "user_admin2", identity.RoleAdmin)
		_, err := h.Create(ctx, CompanyCommand{Name: "x", GSTIN: "short"})
		assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
	})

	t.Run("anonymous", func(t *testing.T) {
		_, err := h.Create(context.Background(), cmd)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
	})
}

func TestUpdateAndDeleteCompany(t *testing.T) {
	env := fixture.New(t, &domain.Company{})
	repo := repository.NewGormCompanyRepository(env.DB)
	h := NewCompanyCommandHandler(env.Exec, repo)

	adminCtx := env.Seed(t, "user_admin", identity.RoleAdmin)
	env.Seed(t, "user_mod", identity.RoleModerator)

	created, err := h.Create(adminCtx, CompanyCommand{Name: "Acme"})
	require.NoError(t, err)

	_, err = h.Update(adminCtx, CompanyCommand{ID: created.Data.ID, Name: "Acme Traders"})
	require.NoError(t, err)

	deleted, err := h.Delete(adminCtx, DeleteCompanyCommand{ID: created.Data.ID})
	require.NoError(t, err)
	assert.Equal(t, "Company deleted successfully", deleted.Message)

	_, err = repo.FindByID(context.Background(), created.Data.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	for _, ref := range []string{"user_admin", "user_mod"} {
		rows := env.NotificationsFor(t, ref)
		require.Len(t, rows, 3, ref)
		var messages []string
		for _, row := range rows {
			messages = append(messages, row.Message)
		}
		assert.Contains(t, messages, "Company Acme Traders has been deleted.")
	}

	t.Run("missing company sends nothing", func(t *testing.T) {
		_, err := h.Delete(adminCtx, DeleteCompanyCommand{ID: 999})
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
		assert.Len(t, env.NotificationsFor(t, "user_mod"), 3)
	})
}

func TestCreateSellerConflicts(t *testing.T) {
	env := fixture.New(t, &domain.Seller{})
	h := NewCreateSellerHandler(env.Exec, repository.NewGormSellerRepository(env.DB))

	modCtx := env.Seed(t, "user_mod", identity.RoleModerator)
	adminCtx := env.Seed(t, "user_admin", identity.RoleAdmin)

	_, err := h.Handle(modCtx, CreateSellerCommand{Name: "Fresh Farms", Email: "sales@farms.test"})
	require.NoError(t, err)

	_, err = h.Handle(adminCtx, CreateSellerCommand{Name: "Other", Email: "sales@farms.test"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "A seller with this email already exists", apperr.PublicMessage(err))

	_, err = h.Handle(modCtx, CreateSellerCommand{Name: "Second", Email: "second@farms.test"})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Equal(t, "A seller is already registered for this user", apperr.PublicMessage(err))

	_, err = h.Handle(adminCtx, CreateSellerCommand{Name: "Bad", Email: "not-an-email"})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestCustomerLifecycle(t *testing.T) {
	env := fixture.New(t, &domain.Customer{})
	repo := repository.NewGormCustomerRepository(env.DB)
	h := NewCustomerCommandHandler(env.Exec, repo)

	userCtx := env.Seed(t, "user_plain", identity.RoleUser)
	modCtx := env.Seed(t, "user_mod", identity.RoleModerator)

	created, err := h.Create(userCtx, CustomerCommand{Name: "Ravi", Email: "ravi@example.com"})
	require.NoError(t, err)

	_, err = h.Update(userCtx, CustomerCommand{ID: created.Data.ID, Name: "Ravi K"})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	updated, err := h.Update(modCtx, CustomerCommand{ID: created.Data.ID, Name: "Ravi K", Phone: "9999"})
	require.NoError(t, err)
	assert.Equal(t, "user_plain", updated.Data.OwnerRef)

	_, err = h.Delete(modCtx, DeleteCustomerCommand{ID: created.Data.ID})
	require.NoError(t, err)

	_, err = repo.FindByID(context.Background(), created.Data.ID)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	userRows := env.NotificationsFor(t, "user_plain")
	require.Len(t, userRows, 1)
	assert.Equal(t, notification.TypeCustomerCreated, userRows[0].Type)

	modRows := env.NotificationsFor(t, "user_mod")
	require.Len(t, modRows, 2)
	types := []notification.Type{modRows[0].Type, modRows[1].Type}
	assert.ElementsMatch(t, []notification.Type{notification.TypeCustomerUpdated, notification.TypeCustomerDeleted}, types)
}
