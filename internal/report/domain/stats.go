package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	billing "github.com/tair/backoffice/internal/billing/domain"
)

// Stats summarises a set of sales invoices
type Stats struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	ReceivedAmount  decimal.Decimal `json:"receivedAmount"`
	UnpaidAmount    decimal.Decimal `json:"unpaidAmount"`
	PendingAmount   decimal.Decimal `json:"pendingAmount"`
	ActiveCustomers int             `json:"activeCustomers"`
}

// ComputeStats reduces invoices to dashboard totals. Received is revenue minus unpaid,
// so PENDING invoices count as received in full.
func ComputeStats(invoices []billing.Invoice) Stats {
	stats := Stats{
		TotalRevenue:   decimal.Zero,
		ReceivedAmount: decimal.Zero,
		UnpaidAmount:   decimal.Zero,
		PendingAmount:  decimal.Zero,
	}
	customers := make(map[uint]struct{})

	for _, inv := range invoices {
		stats.TotalRevenue = stats.TotalRevenue.Add(inv.NetAmount)
		switch inv.PaymentStatus {
		case billing.PaymentStatusUnpaid:
			stats.UnpaidAmount = stats.UnpaidAmount.Add(inv.NetAmount)
		case billing.PaymentStatusPending:
			stats.PendingAmount = stats.PendingAmount.Add(inv.NetAmount)
		}
		customers[inv.CustomerID] = struct{}{}
	}

	stats.ReceivedAmount = stats.TotalRevenue.Sub(stats.UnpaidAmount)
	stats.ActiveCustomers = len(customers)
	return stats
}

// TimeFilter selects a reporting window
type TimeFilter string

const (
	FilterNone  TimeFilter = ""
	FilterHour  TimeFilter = "hour"
	FilterDay   TimeFilter = "day"
	FilterWeek  TimeFilter = "week"
	FilterMonth TimeFilter = "month"
	FilterYear  TimeFilter = "year"
)

// Sliding windows. Month and year use calendar equality instead.
var windows = map[TimeFilter]time.Duration{
	FilterHour: 3_600_000 * time.Millisecond,
	FilterDay:  86_400_000 * time.Millisecond,
	FilterWeek: 604_800_000 * time.Millisecond,
}

// Valid reports whether f is a known filter. The empty filter is valid.
func (f TimeFilter) Valid() bool {
	switch f {
	case FilterNone, FilterHour, FilterDay, FilterWeek, FilterMonth, FilterYear:
		return true
	}
	return false
}

// Since returns the earliest creation time f can retain, or the zero time for no filter
func (f TimeFilter) Since(now time.Time) time.Time {
	if w, ok := windows[f]; ok {
		return now.Add(-w)
	}
	switch f {
	case FilterMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case FilterYear:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	}
	return time.Time{}
}

// FilterByTime keeps invoices created within filter relative to now
func FilterByTime(invoices []billing.Invoice, now time.Time, filter TimeFilter) []billing.Invoice {
	if filter == FilterNone {
		return invoices
	}

	out := make([]billing.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if within(inv.CreatedAt, now, filter) {
			out = append(out, inv)
		}
	}
	return out
}

func within(created, now time.Time, filter TimeFilter) bool {
	if w, ok := windows[filter]; ok {
		return now.Sub(created) <= w
	}
	created = created.In(now.Location())
	switch filter {
	case FilterMonth:
		return created.Month() == now.Month() && created.Year() == now.Year()
	case FilterYear:
		return created.Year() == now.Year()
	}
	return false
}

// TrendPoint is one sales trend entry
type TrendPoint struct {
	Month string          `json:"month"`
	Date  time.Time       `json:"date"`
	Total decimal.Decimal `json:"total"`
}

// TrendSince is the start of the six month trend window
func TrendSince(now time.Time) time.Time {
	return now.AddDate(0, -6, 0)
}

// SalesTrend sums net amounts over the last six months, one point per distinct creation
// timestamp, oldest first.
func SalesTrend(invoices []billing.Invoice, now time.Time) []TrendPoint {
	since := TrendSince(now)

	byInstant := make(map[int64]*TrendPoint)
	for _, inv := range invoices {
		if inv.CreatedAt.Before(since) {
			continue
		}
		key := inv.CreatedAt.UnixNano()
		p, ok := byInstant[key]
		if !ok {
			p = &TrendPoint{
				Month: inv.CreatedAt.In(now.Location()).Format("Jan"),
				Date:  inv.CreatedAt,
				Total: decimal.Zero,
			}
			byInstant[key] = p
		}
		p.Total = p.Total.Add(inv.NetAmount)
	}
	return sorted(byInstant)
}

// MonthlySalesTrend sums net amounts per calendar month for the current month and the five
// before it. Months without sales are reported as zero.
func MonthlySalesTrend(invoices []billing.Invoice, now time.Time) []TrendPoint {
	first := MonthlyTrendSince(now)

	points := make([]TrendPoint, 6)
	for i := range points {
		start := first.AddDate(0, i, 0)
		points[i] = TrendPoint{Month: start.Format("Jan"), Date: start, Total: decimal.Zero}
	}

	for _, inv := range invoices {
		created := inv.CreatedAt.In(now.Location())
		i := (created.Year()-first.Year())*12 + int(created.Month()-first.Month())
		if i < 0 || i >= len(points) {
			continue
		}
		points[i].Total = points[i].Total.Add(inv.NetAmount)
	}
	return points
}

// MonthlyTrendSince is the first instant of the oldest monthly bucket
func MonthlyTrendSince(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, now.Location())
}

func sorted(points map[int64]*TrendPoint) []TrendPoint {
	keys := make([]int64, 0, len(points))
	for k := range points {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	out := make([]TrendPoint, 0, len(keys))
	for _, k := range keys {
		out = append(out, *points[k])
	}
	return out
}
