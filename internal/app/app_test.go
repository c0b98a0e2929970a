package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/internal/identity/client"
	"github.com/tair/backoffice/internal/testutil"
	"github.com/tair/backoffice/kafka"
	"github.com/tair/backoffice/pkg/auth"
	"github.com/tair/backoffice/pkg/config"
)

type server struct {
	handler   http.Handler
	validator *auth.TokenValidator
}

func newServer(t *testing.T) *server {
	db := testutil.NewDB(t, Models()...)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	cfg := &config.Config{
		Redis:    config.RedisConfig{StatsTTL: time.Minute},
		Reminder: config.ReminderConfig{Concurrency: 1},
	}
	reg := prometheus.NewRegistry()

	application, err := InitializeApplication(cfg, db, nil, kafka.LogPublisher{}, client.LogMetadataUpdater{}, reg)
	require.NoError(t, err)

	validator := auth.NewTokenValidator("test-secret", "backoffice")
	return &server{
		handler: application.Router(RouterOptions{
			DB:          sqlDB,
			Validator:   validator,
			Registry:    reg,
			CORSOrigins: []string{"*"},
		}),
		validator: validator,
	}
}

func (s *server) do(t *testing.T, ref, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if ref != "" {
		token, err := s.validator.GenerateToken(ref, time.Hour)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Health(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, "", http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_RequiresBearerToken(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, "", http.MethodGet, "/api/cars", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
}

func TestRouter_SelfProvisionAndUse(t *testing.T) {
	s := newServer(t)

	rec := s.do(t, "user_2abc", http.MethodPost, "/api/users", `{"username":"ravi","email":"ravi@example.com"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"message":"User created successfully"`)

	rec = s.do(t, "user_2abc", http.MethodGet, "/api/users/me", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"role":"USER"`)

	rec = s.do(t, "user_2abc", http.MethodPost, "/api/cars", `{"name":"Swift","plateNumber":"KA01"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = s.do(t, "user_2abc", http.MethodGet, "/api/notifications", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var notifications []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notifications))
	assert.Len(t, notifications, 2)

	rec = s.do(t, "user_2abc", http.MethodGet, "/api/users", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	s := newServer(t)
	s.do(t, "", http.MethodGet, "/health", "")

	rec := s.do(t, "", http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `backoffice_http_requests_total{endpoint="/health",method="GET",status="200"} 1`)
}
