package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	billing "github.com/tair/backoffice/internal/billing/domain"
	billingrepo "github.com/tair/backoffice/internal/billing/repository"
	identity "github.com/tair/backoffice/internal/identity/domain"
	partner "github.com/tair/backoffice/internal/partner/domain"
	"github.com/tair/backoffice/internal/report/usecase/query"
	"github.com/tair/backoffice/internal/testutil/fixture"
	"github.com/tair/backoffice/pkg/cache"
)

func TestDashboardRoutes(t *testing.T) {
	env := fixture.New(t, &partner.Company{}, &partner.Customer{}, &billing.Invoice{})
	h := NewDashboardHandler(query.NewDashboardHandler(env.Exec, billingrepo.NewGormInvoiceRepository(env.DB), cache.New(nil, "dashboard", time.Minute)))
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	ctx := env.Seed(t, "user_plain", identity.RoleUser)
	do := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	rec := do("/dashboard/stats")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"totalRevenue":"0","receivedAmount":"0","unpaidAmount":"0","pendingAmount":"0","activeCustomers":0}`, rec.Body.String())

	rec = do("/dashboard/stats?filter=quarter")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do("/dashboard/stats?companyId=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do("/dashboard/sales-trend")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = do("/dashboard/sales-trend?bucket=day")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
