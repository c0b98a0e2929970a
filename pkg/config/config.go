package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Auth     AuthConfig
	GRPC     GRPCConfig
	Tracing  TracingConfig
	Reminder ReminderConfig
	Log      LogConfig
}

// AppConfig holds process-level settings
type AppConfig struct {
	Name        string
	Environment string
	HTTPPort    string
	CORSOrigins []string
	RateLimit   int
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RedisConfig holds Redis connection settings. An empty Addr disables caching and rate limiting.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	StatsTTL time.Duration
}

// KafkaConfig holds broker settings. No brokers means events and reminders are only logged.
type KafkaConfig struct {
	Brokers []string
	GroupID string
}

// AuthConfig configures bearer token validation
type AuthConfig struct {
	JWTSecret string
	Issuer    string
}

// GRPCConfig holds the principal service port and the identity provider address
type GRPCConfig struct {
	Port                 string
	IdentityProviderAddr string
}

// TracingConfig configures the Jaeger exporter
type TracingConfig struct {
	Enabled  bool
	Endpoint string
}

// ReminderConfig bounds bulk reminder dispatch
type ReminderConfig struct {
	Concurrency int
	PerSecond   float64
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string
}

// IsDevelopment reports whether console logging should be used
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// DSN returns the lib/pq connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode,
	)
}

// Load reads configuration from an optional config file and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindLegacyEnv(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		App: AppConfig{
			Name:        v.GetString("app.name"),
			Environment: v.GetString("app.environment"),
			HTTPPort:    v.GetString("app.http_port"),
			CORSOrigins: splitList(v.GetStringSlice("app.cors_origins")),
			RateLimit:   v.GetInt("app.rate_limit"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("database.host"),
			Port:            v.GetString("database.port"),
			User:            v.GetString("database.user"),
			Password:        v.GetString("database.password"),
			DBName:          v.GetString("database.name"),
			SSLMode:         v.GetString("database.sslmode"),
			MaxOpenConns:    v.GetInt("database.max_open_conns"),
			MaxIdleConns:    v.GetInt("database.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("database.conn_max_lifetime"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("redis.addr"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
			StatsTTL: v.GetDuration("redis.stats_ttl"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetStringSlice("kafka.brokers")),
			GroupID: v.GetString("kafka.group_id"),
		},
		Auth: AuthConfig{
			JWTSecret: v.GetString("auth.jwt_secret"),
			Issuer:    v.GetString("auth.issuer"),
		},
		GRPC: GRPCConfig{
			Port:                 v.GetString("grpc.port"),
			IdentityProviderAddr: v.GetString("grpc.identity_provider_addr"),
		},
		Tracing: TracingConfig{
			Enabled:  v.GetBool("tracing.enabled"),
			Endpoint: v.GetString("tracing.endpoint"),
		},
		Reminder: ReminderConfig{
			Concurrency: v.GetInt("reminder.concurrency"),
			PerSecond:   v.GetFloat64("reminder.per_second"),
		},
		Log: LogConfig{
			Level: v.GetString("log.level"),
		},
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required")
	}
	if cfg.Reminder.Concurrency <= 0 {
		return nil, fmt.Errorf("reminder.concurrency must be positive")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "backoffice")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.http_port", "8080")
	v.SetDefault("app.cors_origins", []string{"*"})
	v.SetDefault("app.rate_limit", 100)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "backoffice")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.stats_ttl", time.Minute)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.group_id", "backoffice")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")

	v.SetDefault("grpc.port", "9090")
	v.SetDefault("grpc.identity_provider_addr", "")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.endpoint", "http://localhost:14268/api/traces")

	v.SetDefault("reminder.concurrency", 8)
	v.SetDefault("reminder.per_second", 20.0)

	v.SetDefault("log.level", "info")
}

// bindLegacyEnv keeps the flat variable names used by the deployment manifests.
func bindLegacyEnv(v *viper.Viper) {
	bindings := map[string]string{
		"app.environment":             "ENVIRONMENT",
		"app.http_port":               "HTTP_PORT",
		"app.cors_origins":            "CORS_ALLOWED_ORIGINS",
		"database.host":               "DB_HOST",
		"database.port":               "DB_PORT",
		"database.user":               "DB_USER",
		"database.password":           "DB_PASSWORD",
		"database.name":               "DB_NAME",
		"database.sslmode":            "DB_SSLMODE",
		"redis.addr":                  "REDIS_ADDR",
		"redis.password":              "REDIS_PASSWORD",
		"kafka.brokers":               "KAFKA_BROKERS",
		"auth.jwt_secret":             "JWT_SECRET",
		"auth.issuer":                 "JWT_ISSUER",
		"grpc.port":                   "GRPC_PORT",
		"grpc.identity_provider_addr": "IDENTITY_PROVIDER_GRPC_ADDR",
		"tracing.endpoint":            "JAEGER_ENDPOINT",
		"log.level":                   "LOG_LEVEL",
	}
	for key, env := range bindings {
		_ = v.BindEnv(key, "BACKOFFICE_"+strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env)
	}
}

// splitList accepts both a real list and a single comma separated env value.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
