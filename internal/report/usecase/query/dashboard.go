package query

import (
	"context"
	"errors"
	"strconv"
	"time"

	billing "github.com/tair/backoffice/internal/billing/domain"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/pipeline"
	"github.com/tair/backoffice/internal/report/domain"
	"github.com/tair/backoffice/kafka"
	"github.com/tair/backoffice/pkg/cache"
	"github.com/tair/backoffice/pkg/logger"
)

// StatsQuery represents the query for dashboard statistics
type StatsQuery struct {
	CompanyID uint
	Filter    domain.TimeFilter
}

// TrendQuery represents the query for the sales trend
type TrendQuery struct {
	CompanyID uint
	// Monthly selects one point per calendar month instead of per creation timestamp
	Monthly bool
}

// DashboardHandler serves cached invoice aggregates
type DashboardHandler struct {
	exec     *pipeline.Executor
	invoices billing.InvoiceRepository
	cache    *cache.Cache
	now      func() time.Time
}

// NewDashboardHandler creates a new dashboard handler. A cache without a Redis client is a no-op.
func NewDashboardHandler(exec *pipeline.Executor, invoices billing.InvoiceRepository, c *cache.Cache) *DashboardHandler {
	return &DashboardHandler{exec: exec, invoices: invoices, cache: c, now: time.Now}
}

// Stats returns totals over invoices visible to the caller
func (h *DashboardHandler) Stats(ctx context.Context, q StatsQuery) (domain.Stats, error) {
	actor, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceDashboard)
	if err != nil {
		return domain.Stats{}, err
	}

	key := h.cache.Key("stats", scopeKey(actor.Scope()), strconv.FormatUint(uint64(q.CompanyID), 10), string(q.Filter))
	var stats domain.Stats
	if h.fromCache(ctx, key, &stats) {
		return stats, nil
	}

	now := h.now()
	rows, err := h.invoices.FindSince(ctx, actor.Scope(), q.CompanyID, q.Filter.Since(now))
	if err != nil {
		return domain.Stats{}, err
	}
	stats = domain.ComputeStats(domain.FilterByTime(rows, now, q.Filter))

	h.store(ctx, key, stats)
	return stats, nil
}

// Trend returns the six month sales trend over invoices visible to the caller
func (h *DashboardHandler) Trend(ctx context.Context, q TrendQuery) ([]domain.TrendPoint, error) {
	actor, err := h.exec.Authorize(ctx, identity.ActionRead, identity.ResourceDashboard)
	if err != nil {
		return nil, err
	}

	bucket := "instant"
	if q.Monthly {
		bucket = "month"
	}
	key := h.cache.Key("trend", scopeKey(actor.Scope()), strconv.FormatUint(uint64(q.CompanyID), 10), bucket)
	var trend []domain.TrendPoint
	if h.fromCache(ctx, key, &trend) {
		return trend, nil
	}

	now := h.now()
	since := domain.TrendSince(now)
	if q.Monthly {
		since = domain.MonthlyTrendSince(now)
	}
	rows, err := h.invoices.FindSince(ctx, actor.Scope(), q.CompanyID, since)
	if err != nil {
		return nil, err
	}

	if q.Monthly {
		trend = domain.MonthlySalesTrend(rows, now)
	} else {
		trend = domain.SalesTrend(rows, now)
	}

	h.store(ctx, key, trend)
	return trend, nil
}

// Invalidate drops every cached aggregate. It is registered for invoice and payment mutations.
func (h *DashboardHandler) Invalidate(ctx context.Context, event kafka.MutationEvent) error {
	if err := h.cache.Invalidate(ctx); err != nil {
		return err
	}
	logger.Debug(ctx).
		Str("resource", event.Resource).
		Str("operation", event.Operation).
		Msg("Dashboard cache invalidated")
	return nil
}

func (h *DashboardHandler) fromCache(ctx context.Context, key string, dst any) bool {
	err := h.cache.Get(ctx, key, dst)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrMiss) {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Dashboard cache read failed")
	}
	return false
}

func (h *DashboardHandler) store(ctx context.Context, key string, value any) {
	if err := h.cache.Set(ctx, key, value); err != nil {
		logger.Warn(ctx).Err(err).Str("cache_key", key).Msg("Dashboard cache write failed")
	}
}

func scopeKey(s identity.Scope) string {
	if s.Global() {
		return "all"
	}
	return "owner-" + s.OwnerRef
}
