package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/inventory/domain"
	"github.com/tair/backoffice/internal/inventory/repository"
	"github.com/tair/backoffice/internal/inventory/usecase/command"
	"github.com/tair/backoffice/internal/inventory/usecase/query"
	partner "github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/testutil/fixture"
)

func TestCrateRoutes(t *testing.T) {
	env := fixture.New(t, &domain.Crate{}, &partner.Seller{}, &domain.ProductPurchase{}, &domain.ProductSelling{})
	crates := repository.NewGormCrateRepository(env.DB)
	purchases := repository.NewGormPurchaseRepository(env.DB)
	sellings := repository.NewGormSellingRepository(env.DB)

	h := NewInventoryHandler(
		command.NewCrateCommandHandler(env.Exec, crates),
		query.NewListCratesHandler(env.Exec, crates),
		command.NewCreatePurchaseHandler(env.Exec, purchases),
		query.NewListPurchasesHandler(env.Exec, purchases),
		command.NewSellProductHandler(env.Exec, sellings),
		query.NewListSellingsHandler(env.Exec, sellings),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	ctx := env.Seed(t, "user_mod", identity.RoleModerator)
	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(ctx)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := do(http.MethodPost, "/crates", `{"crateId":"C1","crateName":"Box","crateQuantity":10}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"crateName":"Box"`)
	assert.Empty(t, env.NotificationsFor(t, "user_mod"))

	rec = do(http.MethodPost, "/crates", `{"crateId":"C2","crateName":"Box","crateQuantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"crateQuantity must be greater than 0"}`, rec.Body.String())

	rec = do(http.MethodPost, "/crates", `{"crateName":"Box","crateQuantity":3}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"crateId is required"}`, rec.Body.String())

	rec = do(http.MethodPost, "/crates", `{"crateId":"C1","crateName":"Box","crateQuantity":10}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(http.MethodGet, "/product-purchases?status=sold", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(http.MethodGet, "/crates", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"crateId":"C1"`)
	assert.Contains(t, rec.Body.String(), `"crateQuantity":10`)
}
