package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/inventory/domain"
	partner "github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/testutil"
)

func seedPurchase(t *testing.T, db *gorm.DB) *domain.ProductPurchase {
	t.Helper()

	seller := &partner.Seller{OwnerRef: "seller_owner", Name: "Fresh Farms", Email: "sales@farms.test"}
	require.NoError(t, db.Create(seller).Error)

	purchase := &domain.ProductPurchase{
		OwnerRef:       "user_mod",
		SellerID:       seller.ID,
		ProductName:    "Mango Alphonso",
		Quantity:       10,
		PurchaseAmount: decimal.RequireFromString("120.50"),
		PurchaseDate:   time.Now().UTC(),
		Status:         domain.PurchaseStatusPending,
	}
	require.NoError(t, NewGormPurchaseRepository(db).Create(context.Background(), purchase))
	return purchase
}

func TestDeductConcurrent(t *testing.T) {
	db := testutil.NewDB(t, &partner.Seller{}, &domain.ProductPurchase{}, &domain.ProductSelling{})
	purchase := seedPurchase(t, db)
	repo := NewGormSellingRepository(db)

	const attempts = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Deduct(context.Background(), &domain.ProductSelling{
				OwnerRef:          "user_mod",
				ProductPurchaseID: purchase.ID,
				SellingAmount:     decimal.NewFromInt(1500),
				SoldAt:            time.Now().UTC(),
			})
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		}()
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.Equal(t, "product purchase already deducted", apperr.PublicMessage(err))
	}
	assert.Equal(t, 1, succeeded)

	var sellings int64
	require.NoError(t, db.Model(&domain.ProductSelling{}).Count(&sellings).Error)
	assert.Equal(t, int64(1), sellings)

	stored, err := NewGormPurchaseRepository(db).FindByID(context.Background(), purchase.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PurchaseStatusDeducted, stored.Status)
}

func TestDeductDerivesProductName(t *testing.T) {
	db := testutil.NewDB(t, &partner.Seller{}, &domain.ProductPurchase{}, &domain.ProductSelling{})
	purchase := seedPurchase(t, db)
	repo := NewTracingSellingRepository(NewGormSellingRepository(db))

	selling := &domain.ProductSelling{
		OwnerRef:          "user_mod",
		ProductPurchaseID: purchase.ID,
		SellingAmount:     decimal.NewFromInt(1500),
		SoldAt:            time.Now().UTC(),
	}
	require.NoError(t, repo.Deduct(context.Background(), selling))
	assert.Equal(t, "Mango Alphonso", selling.ProductName)

	list, err := repo.FindAll(context.Background(), 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Mango Alphonso", list[0].ProductName)
	assert.True(t, decimal.NewFromInt(1500).Equal(list[0].SellingAmount))

	err = repo.Deduct(context.Background(), &domain.ProductSelling{ProductPurchaseID: 999, SellingAmount: decimal.NewFromInt(1), SoldAt: time.Now()})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestPurchaseUnknownSeller(t *testing.T) {
	db := testutil.NewDB(t, &partner.Seller{}, &domain.ProductPurchase{})
	err := NewGormPurchaseRepository(db).Create(context.Background(), &domain.ProductPurchase{
		OwnerRef:       "user_mod",
		SellerID:       42,
		ProductName:    "Ghost",
		Quantity:       1,
		PurchaseAmount: decimal.NewFromInt(1),
		PurchaseDate:   time.Now(),
		Status:         domain.PurchaseStatusPending,
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, "Seller not found", apperr.PublicMessage(err))
}

func TestCrateOwnerUniqueness(t *testing.T) {
	db := testutil.NewDB(t, &domain.Crate{})
	repo := NewGormCrateRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &domain.Crate{OwnerRef: "a", CrateID: "CR-1", Name: "Blue", Quantity: 5}))
	require.NoError(t, repo.Create(ctx, &domain.Crate{OwnerRef: "b", CrateID: "CR-1", Name: "Blue", Quantity: 5}))

	err := repo.Create(ctx, &domain.Crate{OwnerRef: "a", CrateID: "CR-1", Name: "Again", Quantity: 1})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
}

func newMockSellingRepository(t *testing.T) (*GormSellingRepository, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDB, DriverName: "postgres"}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return NewGormSellingRepository(gormDB), mock
}

func TestDeductIssuesConditionalUpdate(t *testing.T) {
	repo, mock := newMockSellingRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "product_purchases" SET "status"=\$1,"updated_at"=\$2 WHERE id = \$3 AND status = \$4`).
		WithArgs("deducted", sqlmock.AnyArg(), 7, "pending").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT "id" FROM "product_purchases"`).
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectRollback()

	err := repo.Deduct(context.Background(), &domain.ProductSelling{
		ProductPurchaseID: 7,
		SellingAmount:     decimal.NewFromInt(10),
		SoldAt:            time.Now(),
	})
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
