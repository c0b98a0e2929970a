package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tair/backoffice/internal/apperr"
	"github.com/tair/backoffice/internal/report/domain"
	"github.com/tair/backoffice/internal/report/usecase/query"
	"github.com/tair/backoffice/internal/respond"
)

// DashboardHandler handles HTTP requests for dashboard aggregates
type DashboardHandler struct {
	dashboard *query.DashboardHandler
}

// NewDashboardHandler creates a new dashboard HTTP handler
func NewDashboardHandler(dashboard *query.DashboardHandler) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// Stats handles GET /dashboard/stats?company_id=&filter=
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	filter := domain.TimeFilter(r.URL.Query().Get("filter"))
	if !filter.Valid() {
		respond.Error(w, r, apperr.InvalidInput("filter must be one of [hour day week month year]"))
		return
	}

	stats, err := h.dashboard.Stats(r.Context(), query.StatsQuery{CompanyID: companyID, Filter: filter})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}

// SalesTrend handles GET /dashboard/sales-trend?company_id=&bucket=month
func (h *DashboardHandler) SalesTrend(w http.ResponseWriter, r *http.Request) {
	companyID, err := companyParam(r)
	if err != nil {
		respond.Error(w, r, err)
		return
	}

	var monthly bool
	switch r.URL.Query().Get("bucket") {
	case "":
	case "month":
		monthly = true
	default:
		respond.Error(w, r, apperr.InvalidInput("bucket must be month"))
		return
	}

	trend, err := h.dashboard.Trend(r.Context(), query.TrendQuery{CompanyID: companyID, Monthly: monthly})
	if err != nil {
		respond.Error(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, trend)
}

// RegisterRoutes registers dashboard routes on the authenticated api router
func (h *DashboardHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/dashboard/stats", h.Stats).Methods(http.MethodGet)
	router.HandleFunc("/dashboard/sales-trend", h.SalesTrend).Methods(http.MethodGet)
}

func companyParam(r *http.Request) (uint, error) {
	raw := r.URL.Query().Get("companyId")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperr.InvalidInput("Invalid companyId")
	}
	return uint(id), nil
}
