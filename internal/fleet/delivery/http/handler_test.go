package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/internal/fleet/domain"
	"github.com/tair/backoffice/internal/fleet/repository"
	"github.com/tair/backoffice/internal/fleet/usecase/command"
	"github.com/tair/backoffice/internal/fleet/usecase/query"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/testutil/fixture"
)

func newRouter(t *testing.T) (*mux.Router, *fixture.Env) {
	env := fixture.New(t, &domain.Car{})
	repo := repository.NewGormCarRepository(env.DB)
	h := NewCarHandler(command.NewCarCommandHandler(env.Exec, repo), query.NewListCarsHandler(env.Exec, repo))

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

func TestCarRoutes(t *testing.T) {
	router, env := newRouter(t)
	userCtx := env.Seed(t, "user_plain", identity.RoleUser)
	adminCtx := env.Seed(t, "user_admin", identity.RoleAdmin)

	rec := serve(router, userCtx, http.MethodPost, "/cars", `{"name":"Swift","plateNumber":"KA01"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Car created successfully"`)

	rec = serve(router, userCtx, http.MethodDelete, "/cars/1", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Forbidden: USER cannot delete car"}`, rec.Body.String())

	rec = serve(router, adminCtx, http.MethodDelete, "/cars/1", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, adminCtx, http.MethodPut, "/cars/1", `{"name":"x","plateNumber":"y","status":"active"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, context.Background(), http.MethodGet, "/cars", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(router, adminCtx, http.MethodPost, "/cars", `{`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
