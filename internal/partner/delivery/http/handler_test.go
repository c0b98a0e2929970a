package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/partner/repository"
	"github.com/tair/backoffice/internal/partner/usecase/command"
	"github.com/tair/backoffice/internal/partner/usecase/query"
	"github.com/tair/backoffice/internal/testutil/fixture"
)

func newRouter(t *testing.T) (*mux.Router, *fixture.Env) {
	env := fixture.New(t, &domain.Company{}, &domain.Seller{}, &domain.Customer{})
	companies := repository.NewGormCompanyRepository(env.DB)
	sellers := repository.NewGormSellerRepository(env.DB)
	customers := repository.NewGormCustomerRepository(env.DB)

	h := NewPartnerHandler(
		command.NewCompanyCommandHandler(env.Exec, companies),
		query.NewCompanyQueryHandler(env.Exec, companies),
		command.NewCreateSellerHandler(env.Exec, sellers),
		query.NewListSellersHandler(env.Exec, sellers),
		command.NewCustomerCommandHandler(env.Exec, customers),
		query.NewListCustomersHandler(env.Exec, customers),
	)

	router := mux.NewRouter()
	h.RegisterRoutes(router)
	return router, env
}

func serve(router http.Handler, ctx context.Context, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body)).WithContext(ctx)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCompanyRoutes(t *testing.T) {
	router, env := newRouter(t)
	adminCtx := env.Seed(t, "user_admin", identity.RoleAdmin)
	memberCtx := env.Seed(t, "user_member", identity.RoleMember)

	rec := serve(router, memberCtx, http.MethodPost, "/companies", `{"name":"Acme"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Forbidden: MEMBER cannot create company"}`, rec.Body.String())

	rec = serve(router, adminCtx, http.MethodPost, "/companies", `{"name":"Acme","gstin":"29ABCDE1234F1Z5"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(router, adminCtx, http.MethodPost, "/companies", `{"name":"Acme 2"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(router, memberCtx, http.MethodGet, "/companies/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Acme"`)

	rec = serve(router, adminCtx, http.MethodPut, "/companies/1", `{"name":"Acme Traders"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Acme Traders"`)

	rec = serve(router, adminCtx, http.MethodGet, "/companies/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, adminCtx, http.MethodPost, "/companies", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSellerRoutes(t *testing.T) {
	router, env := newRouter(t)
	modCtx := env.Seed(t, "user_mod", identity.RoleModerator)
	userCtx := env.Seed(t, "user_plain", identity.RoleUser)

	rec := serve(router, modCtx, http.MethodPost, "/sellers", `{"name":"Fresh Farms","email":"farm@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(router, modCtx, http.MethodPost, "/sellers", `{"name":"Second","email":"second@example.com"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(router, userCtx, http.MethodGet, "/sellers", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCustomerRoutes(t *testing.T) {
	router, env := newRouter(t)
	adminCtx := env.Seed(t, "user_admin", identity.RoleAdmin)
	aliceCtx := env.Seed(t, "user_alice", identity.RoleUser)
	bobCtx := env.Seed(t, "user_bob", identity.RoleUser)

	rec := serve(router, aliceCtx, http.MethodPost, "/customers", `{"name":"Ravi","email":"ravi@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(router, aliceCtx, http.MethodPost, "/customers", `{"name":"Bad","email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	list := func(ctx context.Context) []domain.Customer {
		rec := serve(router, ctx, http.MethodGet, "/customers", "")
		require.Equal(t, http.StatusOK, rec.Code)
		var rows []domain.Customer
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		return rows
	}
	assert.Len(t, list(aliceCtx), 1)
	assert.Empty(t, list(bobCtx))
	assert.Len(t, list(adminCtx), 1)

	rec = serve(router, aliceCtx, http.MethodDelete, "/customers/1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = serve(router, adminCtx, http.MethodPut, "/customers/1", `{"name":"Ravi Kumar","email":"ravi@example.com"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, adminCtx, http.MethodDelete, "/customers/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, list(adminCtx))
}
