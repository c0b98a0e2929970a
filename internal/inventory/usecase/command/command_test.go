package command

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/internal/apperr"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/inventory/domain"
	"github.com/tair/backoffice/internal/inventory/repository"
	notification "github.com/tair/backoffice/internal/notification/domain"
	partner "github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/testutil/fixture"
)

func TestSellProduct(t *testing.T) {
	env := fixture.New(t, &partner.Seller{}, &domain.ProductPurchase{}, &domain.ProductSelling{})
	purchases := NewCreatePurchaseHandler(env.Exec, repository.NewGormPurchaseRepository(env.DB))
	sell := NewSellProductHandler(env.Exec, repository.NewGormSellingRepository(env.DB))

	modCtx := env.Seed(t, "user_mod", identity.RoleModerator)
	env.Seed(t, "user_admin", identity.RoleAdmin)
	memberCtx := env.Seed(t, "user_member", identity.RoleMember)

	seller := &partner.Seller{OwnerRef: "seller_owner", Name: "Fresh Farms", Email: "sales@farms.test"}
	require.NoError(t, env.DB.Create(seller).Error)

	_, err := purchases.Handle(modCtx, CreatePurchaseCommand{
		SellerID: 999, ProductName: "Mango", Quantity: 1, PurchaseAmount: decimal.NewFromInt(10),
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = purchases.Handle(modCtx, CreatePurchaseCommand{
		SellerID: seller.ID, ProductName: "Mango", Quantity: 0, PurchaseAmount: decimal.NewFromInt(10),
	})
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))

	created, err := purchases.Handle(modCtx, CreatePurchaseCommand{
		SellerID: seller.ID, ProductName: "Mango", Quantity: 4, PurchaseAmount: decimal.RequireFromString("25.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.PurchaseStatusPending, created.Data.Status)
	assert.True(t, decimal.NewFromInt(102).Equal(created.Data.Total()))

	_, err = sell.Handle(memberCtx, SellProductCommand{ProductPurchaseID: created.Data.ID, SellingAmount: decimal.NewFromInt(150)})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	sold, err := sell.Handle(modCtx, SellProductCommand{ProductPurchaseID: created.Data.ID, SellingAmount: decimal.NewFromInt(150)})
	require.NoError(t, err)
	assert.Equal(t, "Mango", sold.Data.ProductName)

	_, err = sell.Handle(modCtx, SellProductCommand{ProductPurchaseID: created.Data.ID, SellingAmount: decimal.NewFromInt(150)})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	modTypes := []notification.Type{}
	for _, n := range env.NotificationsFor(t, "user_mod") {
		modTypes = append(modTypes, n.Type)
	}
	assert.ElementsMatch(t, []notification.Type{notification.TypeProductSold, notification.TypeProductSoldAlert}, modTypes)

	adminRows := env.NotificationsFor(t, "user_admin")
	require.Len(t, adminRows, 1)
	assert.Equal(t, notification.TypeProductSoldAlert, adminRows[0].Type)
	assert.Empty(t, env.NotificationsFor(t, "user_member"))
}

func TestCrateNotifications(t *testing.T) {
	env := fixture.New(t, &domain.Crate{})
	h := NewCrateCommandHandler(env.Exec, repository.NewGormCrateRepository(env.DB))
	ctx := env.Seed(t, "user_mod", identity.RoleModerator)

	created, err := h.Create(ctx, CrateCommand{CrateID: "CR-7", Name: "Blue crate", Quantity: 12})
	require.NoError(t, err)
	assert.Empty(t, env.NotificationsFor(t, "user_mod"))

	_, err = h.Update(ctx, CrateCommand{ID: created.Data.ID, CrateID: "CR-7", Name: "Blue crate", Quantity: 10})
	require.NoError(t, err)
	_, err = h.Delete(ctx, DeleteCrateCommand{ID: created.Data.ID})
	require.NoError(t, err)

	rows := env.NotificationsFor(t, "user_mod")
	require.Len(t, rows, 2)
	types := []notification.Type{rows[0].Type, rows[1].Type}
	assert.ElementsMatch(t, []notification.Type{notification.TypeCrateUpdated, notification.TypeCrateDeleted}, types)

	_, err = h.Delete(context.Background(), DeleteCrateCommand{ID: created.Data.ID})
	assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
}
