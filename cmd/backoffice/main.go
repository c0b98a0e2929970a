package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	_ "github.com/tair/backoffice/docs"
	"github.com/tair/backoffice/internal/app"
	"github.com/tair/backoffice/internal/identity/client"
	grpcDelivery "github.com/tair/backoffice/internal/identity/delivery/grpc"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/kafka"
	"github.com/tair/backoffice/pkg/auth"
	"github.com/tair/backoffice/pkg/cache"
	"github.com/tair/backoffice/pkg/config"
	"github.com/tair/backoffice/pkg/database"
	"github.com/tair/backoffice/pkg/logger"
	"github.com/tair/backoffice/pkg/tracing"
)

func main() {
	cfg, err := config.Load(os.Getenv("BACKOFFICE_CONFIG"))
	if err != nil {
		logger.Init("backoffice", true)
		logger.Logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.App.Name, cfg.IsDevelopment())
	logger.SetLevel(cfg.Log.Level)

	logger.Logger.Info().
		Str("service", cfg.App.Name).
		Str("environment", cfg.App.Environment).
		Str("log_level", cfg.Log.Level).
		Msg("Starting backoffice service")

	tp, err := tracing.InitTracer(cfg.App.Name, cfg.Tracing)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize tracer")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracing.Shutdown(ctx, tp); err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
		}
	}()

	// Database
	sqlDB, err := database.NewPostgresConnection(cfg.Database)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer sqlDB.Close()

	db, err := database.NewGormConnection(sqlDB)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to open gorm session")
	}
	if err := db.AutoMigrate(app.Models()...); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}
	logger.Logger.Info().Msg("Database initialized successfully")

	// Redis is optional. A nil client disables the stats cache and rate limiting.
	rdb, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		logger.Logger.Warn().Err(err).Msg("Redis unavailable, continuing without cache and rate limiting")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	// Kafka is optional. Without brokers, mutation events are dispatched in-process.
	var bus app.Bus
	var localBus *kafka.LocalBus
	if len(cfg.Kafka.Brokers) > 0 {
		publisher, err := kafka.NewPublisher(cfg.Kafka.Brokers)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka publisher")
		}
		defer publisher.Close()
		bus = publisher
	} else {
		logger.Logger.Warn().Msg("No Kafka brokers configured, dispatching mutation events in-process and logging reminders")
		localBus = kafka.NewLocalBus()
		bus = localBus
	}

	var metadata client.MetadataUpdater = client.LogMetadataUpdater{}
	if cfg.GRPC.IdentityProviderAddr != "" {
		metadataClient, err := client.NewMetadataClient(cfg.GRPC.IdentityProviderAddr)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create identity provider client")
		}
		defer metadataClient.Close()
		metadata = client.NewBreakingUpdater(metadataClient, 5, 30*time.Second)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	application, err := app.InitializeApplication(cfg, db, rdb, bus, metadata, reg)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize application")
	}

	validator := auth.NewTokenValidator(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	if len(cfg.Kafka.Brokers) > 0 {
		consumer, err := kafka.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
		if err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to create Kafka consumer")
		}
		subscribeDashboard(consumer, application)
		consumer.Start(gctx)
		g.Go(func() error {
			<-gctx.Done()
			return consumer.Close()
		})
	} else {
		subscribeDashboard(localBus, application)
	}

	httpServer := &http.Server{
		Addr: ":" + cfg.App.HTTPPort,
		Handler: application.Router(app.RouterOptions{
			DB:          sqlDB,
			Validator:   validator,
			Redis:       rdb,
			Registry:    reg,
			CORSOrigins: cfg.App.CORSOrigins,
			RateLimit:   cfg.App.RateLimit,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		logger.Logger.Info().
			Str("port", cfg.App.HTTPPort).
			Str("metrics_endpoint", "/metrics").
			Str("swagger", "/swagger/index.html").
			Msg("HTTP server started")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	grpcServer := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpcDelivery.LoggingInterceptor,
			grpcDelivery.AuthInterceptor(validator),
		),
	)
	application.Principals.Register(grpcServer)
	reflection.Register(grpcServer)

	g.Go(func() error {
		lis, err := net.Listen("tcp", ":"+cfg.GRPC.Port)
		if err != nil {
			return err
		}
		logger.Logger.Info().Str("port", cfg.GRPC.Port).Msg("gRPC server started")
		return grpcServer.Serve(lis)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Logger.Info().Msg("Shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		grpcServer.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Logger.Error().Err(err).Msg("Server stopped with error")
		return
	}
	logger.Logger.Info().Msg("Server exited")
}

type mutationSubscriber interface {
	RegisterHandler(resource string, handler kafka.MutationHandler)
}

// subscribeDashboard drops cached dashboard stats whenever invoices or payments change
func subscribeDashboard(sub mutationSubscriber, application *app.Application) {
	sub.RegisterHandler(string(identity.ResourceInvoice), application.DashboardQueries.Invalidate)
	sub.RegisterHandler(string(identity.ResourcePayment), application.DashboardQueries.Invalidate)
}
