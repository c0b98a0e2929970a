package command_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tair/backoffice/internal/apperr"
	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/internal/notification/usecase/command"
	"github.com/tair/backoffice/internal/testutil/fixture"
)

func TestMarkAllRead(t *testing.T) {
	env := fixture.New(t)
	h := command.NewNotificationCommandHandler(env.Exec, env.Notifications)
	ctx := env.Seed(t, "user_member", identity.RoleMember)

	rows := make([]domain.Notification, 0, 8)
	for i := 0; i < 5; i++ {
		rows = append(rows, domain.Notification{UserRef: "user_member", Type: domain.TypeCarCreated, Message: "unread"})
	}
	for i := 0; i < 2; i++ {
		rows = append(rows, domain.Notification{UserRef: "user_member", Type: domain.TypeCarUpdated, Message: "read", Read: true})
	}
	rows = append(rows, domain.Notification{UserRef: "someone_else", Type: domain.TypeCarCreated, Message: "other"})
	require.NoError(t, env.Notifications.CreateBatch(context.Background(), rows))

	result, err := h.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(5), result.Data.Updated)

	mine := env.NotificationsFor(t, "user_member")
	require.Len(t, mine, 7)
	for _, n := range mine {
		assert.True(t, n.Read, n.Message)
	}

	again, err := h.MarkAllRead(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Data.Updated)

	other := env.NotificationsFor(t, "someone_else")
	require.Len(t, other, 1)
	assert.False(t, other[0].Read)
}

func TestMarkReadAndDelete(t *testing.T) {
	env := fixture.New(t)
	h := command.NewNotificationCommandHandler(env.Exec, env.Notifications)
	userCtx := env.Seed(t, "user_plain", identity.RoleUser)
	memberCtx := env.Seed(t, "user_member", identity.RoleMember)
	modCtx := env.Seed(t, "user_mod", identity.RoleModerator)

	rows := []domain.Notification{
		{UserRef: "user_plain", Type: domain.TypeCustomerCreated, Message: "Customer Ravi has been created."},
		{UserRef: "user_member", Type: domain.TypeCarCreated, Message: "Car Swift has been created."},
	}
	require.NoError(t, env.Notifications.CreateBatch(context.Background(), rows))
	own, foreign := rows[0].ID, rows[1].ID

	result, err := h.MarkRead(userCtx, command.MarkReadCommand{ID: own})
	require.NoError(t, err)
	assert.True(t, result.Data.Read)

	_, err = h.MarkRead(userCtx, command.MarkReadCommand{ID: foreign})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	_, err = h.Delete(memberCtx, command.DeleteNotificationCommand{ID: foreign})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, err = h.Delete(modCtx, command.DeleteNotificationCommand{ID: foreign})
	require.NoError(t, err)
	assert.Empty(t, env.NotificationsFor(t, "user_member"))

	_, err = h.Delete(modCtx, command.DeleteNotificationCommand{ID: foreign})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

type mockNotificationRepo struct {
	mock.Mock
	domain.NotificationRepository
}

func (m *mockNotificationRepo) CreateBatch(ctx context.Context, rows []domain.Notification) error {
	return m.Called(ctx, rows).Error(0)
}

type staticDirectory []identity.User

func (d staticDirectory) FindByRoles(_ context.Context, roles ...identity.Role) ([]identity.User, error) {
	var out []identity.User
	for _, u := range d {
		for _, r := range roles {
			if u.Role == r {
				out = append(out, u)
			}
		}
	}
	return out, nil
}

func TestNotifier(t *testing.T) {
	users := staticDirectory{
		{ExternalRef: "a", Role: identity.RoleAdmin},
		{ExternalRef: "m", Role: identity.RoleModerator},
		{ExternalRef: "u", Role: identity.RoleUser},
	}

	t.Run("broadcast expands to matching roles", func(t *testing.T) {
		repo := &mockNotificationRepo{}
		repo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(rows []domain.Notification) bool {
			return len(rows) == 2 && rows[0].UserRef == "a" && rows[1].UserRef == "m" &&
				rows[0].Message == "Seller Fresh Farms has been added."
		})).Return(nil).Once()
		repo.On("CreateBatch", mock.Anything, mock.MatchedBy(func(rows []domain.Notification) bool {
			return len(rows) == 1 && rows[0].UserRef == "u"
		})).Return(nil).Once()

		reg := prometheus.NewRegistry()
		n := command.NewNotifier(repo, users, reg)
		n.Notify(context.Background(),
			domain.NewNotice(domain.Broadcast(), domain.TypeSellerCreated, "Fresh Farms"),
			domain.NewNotice(domain.Direct("u"), domain.TypeUserCreated, "u"),
		)

		repo.AssertExpectations(t)
		expected := `
# HELP backoffice_notifications_total Notification rows written or dropped, by type
# TYPE backoffice_notifications_total counter
backoffice_notifications_total{outcome="written",type="SELLER_CREATED"} 2
backoffice_notifications_total{outcome="written",type="USER_CREATED"} 1
`
		assert.NoError(t, promtestutil.GatherAndCompare(reg, strings.NewReader(expected), "backoffice_notifications_total"))
	})

	t.Run("write failures are dropped", func(t *testing.T) {
		repo := &mockNotificationRepo{}
		repo.On("CreateBatch", mock.Anything, mock.Anything).Return(errors.New("db down"))

		reg := prometheus.NewRegistry()
		n := command.NewNotifier(repo, users, reg)
		assert.NotPanics(t, func() {
			n.Notify(context.Background(), domain.NewNotice(domain.Broadcast(identity.RoleAdmin), domain.TypeCompanyCreated, "Acme"))
		})
		expected := `
# HELP backoffice_notifications_total Notification rows written or dropped, by type
# TYPE backoffice_notifications_total counter
backoffice_notifications_total{outcome="dropped",type="COMPANY_CREATED"} 1
`
		assert.NoError(t, promtestutil.GatherAndCompare(reg, strings.NewReader(expected), "backoffice_notifications_total"))
	})
}
