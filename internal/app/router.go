package app

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tair/backoffice/pkg/auth"
	"github.com/tair/backoffice/pkg/middleware"
)

// RouterOptions carries the infrastructure the HTTP surface needs besides the handlers
type RouterOptions struct {
	DB          *sql.DB
	Validator   *auth.TokenValidator
	Redis       *redis.Client
	Registry    *prometheus.Registry
	CORSOrigins []string
	// RateLimit is requests per minute per client; zero or no Redis disables it
	RateLimit int
}

// Router mounts health, metrics and docs at the root and every module under /api behind bearer auth
func (a *Application) Router(opts RouterOptions) http.Handler {
	router := mux.NewRouter()

	mwConfig := middleware.DefaultConfig(opts.CORSOrigins)
	if opts.Registry != nil {
		mwConfig.Metrics = middleware.NewHTTPMetrics(opts.Registry)
	}
	if opts.Redis != nil && opts.RateLimit > 0 {
		mwConfig.RateLimiter = middleware.NewRateLimiter(opts.Redis, opts.RateLimit, time.Minute)
	}
	middleware.Register(router, mwConfig)

	router.Handle("/health", NewHealthChecker(opts.DB, opts.Redis)).Methods(http.MethodGet)
	if opts.Registry != nil {
		router.Handle("/metrics", promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	router.PathPrefix("/swagger/").Handler(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	api := router.PathPrefix("/api").Subrouter()
	api.Use(opts.Validator.Middleware)

	a.Users.RegisterRoutes(api)
	a.Cars.RegisterRoutes(api)
	a.Partners.RegisterRoutes(api)
	a.Inventory.RegisterRoutes(api)
	a.Billing.RegisterRoutes(api)
	a.Notifications.RegisterRoutes(api)
	a.Dashboard.RegisterRoutes(api)

	return middleware.CORS(mwConfig, router)
}
