package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/notification/usecase/command"
	"github.com/tair/backoffice/internal/notification/usecase/query"
	"github.com/tair/backoffice/internal/testutil/fixture"
)

func TestNotificationRoutes(t *testing.T) {
	env := fixture.New(t)
	h := NewNotificationHandler(
		command.NewNotificationCommandHandler(env.Exec, env.Notifications),
		query.NewListNotificationsHandler(env.Exec, env.Notifications),
	)
	router := mux.NewRouter()
	h.RegisterRoutes(router)

	ctx := env.Seed(t, "user_plain", identity.RoleUser)
	require.NoError(t, env.Notifications.CreateBatch(context.Background(), []domain.Notification{
		{UserRef: "user_plain", Type: domain.TypeUserCreated, Message: "Welcome user_plain, your profile has been created."},
		{UserRef: "user_plain", Type: domain.TypeCustomerCreated, Message: "Customer Ravi has been created.", Read: true},
	}))

	do := func(method, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil).WithContext(ctx)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	list := func(path string) []domain.Notification {
		rec := do(http.MethodGet, path)
		require.Equal(t, http.StatusOK, rec.Code)
		var rows []domain.Notification
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
		return rows
	}

	assert.Len(t, list("/notifications"), 2)
	unread := list("/notifications?unread=true")
	require.Len(t, unread, 1)
	assert.Equal(t, domain.TypeUserCreated, unread[0].Type)

	rec := do(http.MethodPatch, "/notifications/read-all")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"All notifications marked as read","data":{"updated":1}}`, rec.Body.String())
	assert.Empty(t, list("/notifications?unread=true"))

	rec = do(http.MethodDelete, "/notifications/1")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Forbidden: USER cannot delete notification"}`, rec.Body.String())
}
