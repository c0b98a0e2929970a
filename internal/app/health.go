package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tair/backoffice/pkg/logger"
)

// Health statuses
const (
	StatusHealthy   = "healthy"
	StatusDegraded  = "degraded"
	StatusUnhealthy = "unhealthy"
)

// DependencyHealth is the result of probing one backing service
type DependencyHealth struct {
	Status    string  `json:"status"`
	LatencyMS float64 `json:"latencyMs"`
	Error     string  `json:"error,omitempty"`
}

// Health is the body of GET /health
type Health struct {
	Status       string                      `json:"status"`
	Dependencies map[string]DependencyHealth `json:"dependencies"`
	Uptime       float64                     `json:"uptimeSeconds"`
}

type probe func(ctx context.Context) error

// HealthChecker probes the database and, when configured, Redis.
// The database is required; losing Redis only degrades the service.
type HealthChecker struct {
	required  map[string]probe
	optional  map[string]probe
	timeout   time.Duration
	startTime time.Time
}

// NewHealthChecker creates a checker. rdb may be nil.
func NewHealthChecker(db *sql.DB, rdb *redis.Client) *HealthChecker {
	h := &HealthChecker{
		required:  map[string]probe{"database": db.PingContext},
		optional:  map[string]probe{},
		timeout:   2 * time.Second,
		startTime: time.Now(),
	}
	if rdb != nil {
		h.optional["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
	}
	return h
}

// Check probes every dependency concurrently
func (h *HealthChecker) Check(ctx context.Context) Health {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	deps := make(map[string]DependencyHealth, len(h.required)+len(h.optional))
	var wg sync.WaitGroup
	var mu sync.Mutex

	run := func(name string, p probe) {
		defer wg.Done()
		start := time.Now()
		err := p(ctx)
		result := DependencyHealth{Status: StatusHealthy, LatencyMS: float64(time.Since(start).Microseconds()) / 1000}
		if err != nil {
			result.Status = StatusUnhealthy
			result.Error = err.Error()
			logger.Warn(ctx).Str("dependency", name).Err(err).Msg("Dependency health check failed")
		}
		mu.Lock()
		deps[name] = result
		mu.Unlock()
	}

	for name, p := range h.required {
		wg.Add(1)
		go run(name, p)
	}
	for name, p := range h.optional {
		wg.Add(1)
		go run(name, p)
	}
	wg.Wait()

	return Health{
		Status:       h.overall(deps),
		Dependencies: deps,
		Uptime:       time.Since(h.startTime).Seconds(),
	}
}

func (h *HealthChecker) overall(deps map[string]DependencyHealth) string {
	status := StatusHealthy
	for name, dep := range deps {
		if dep.Status == StatusHealthy {
			continue
		}
		if _, ok := h.required[name]; ok {
			return StatusUnhealthy
		}
		status = StatusDegraded
	}
	return status
}

// ServeHTTP answers 503 only when a required dependency is down
func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	health := h.Check(r.Context())

	code := http.StatusOK
	if health.Status == StatusUnhealthy {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(health)
}
