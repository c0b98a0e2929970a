// Package fixture assembles a real executor over an in-memory database for use-case tests.
package fixture

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	identity "github.com/tair/backoffice/internal/identity/domain"
	identityrepo "github.com/tair/backoffice/internal/identity/repository"
	notification "github.com/tair/backoffice/internal/notification/domain"
	notificationrepo "github.com/tair/backoffice/internal/notification/repository"
	notificationcmd "github.com/tair/backoffice/internal/notification/usecase/command"
	"github.com/tair/backoffice/internal/pipeline"
	"github.com/tair/backoffice/internal/testutil"
	"github.com/tair/backoffice/kafka"
)

type Env struct {
	DB            *gorm.DB
	Users         *identityrepo.GormUserRepository
	Notifications *notificationrepo.GormNotificationRepository
	Exec          *pipeline.Executor
	Registry      *prometheus.Registry
}

// New migrates users, notifications and models, and wires the notifier and executor
func New(t testing.TB, models ...any) *Env {
	t.Helper()

	db := testutil.NewDB(t, append([]any{&identity.User{}, &notification.Notification{}}, models...)...)
	users := identityrepo.NewGormUserRepository(db)
	notifications := notificationrepo.NewGormNotificationRepository(db)
	reg := prometheus.NewRegistry()
	notifier := notificationcmd.NewNotifier(notifications, users, reg)

	return &Env{
		DB:            db,
		Users:         users,
		Notifications: notifications,
		Exec:          pipeline.NewExecutor(users, notifier, kafka.LogPublisher{}, reg),
		Registry:      reg,
	}
}

// Seed stores a user and returns a context authenticated as it
func (e *Env) Seed(t testing.TB, ref string, role identity.Role) context.Context {
	t.Helper()
	testutil.SeedUser(t, e.DB, ref, role)
	return testutil.WithPrincipal(context.Background(), ref)
}

// NotificationsFor returns every notification stored for ref, newest first
func (e *Env) NotificationsFor(t testing.TB, ref string) []notification.Notification {
	t.Helper()
	rows, err := e.Notifications.FindByUser(context.Background(), ref, false, 100, 0)
	require.NoError(t, err)
	return rows
}
