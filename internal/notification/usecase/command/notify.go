package command

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	identity "github.com/tair/backoffice/internal/identity/domain"
	"github.com/tair/backoffice/internal/notification/domain"
	"github.com/tair/backoffice/pkg/logger"
)

// RoleDirectory finds users by role for broadcasts
type RoleDirectory interface {
	FindByRoles(ctx context.Context, roles ...identity.Role) ([]identity.User, error)
}

// Notifier writes notification rows for notices. It never fails its caller.
type Notifier struct {
	repo    domain.NotificationRepository
	users   RoleDirectory
	written *prometheus.CounterVec
}

// NewNotifier creates a notifier and registers its counter
func NewNotifier(repo domain.NotificationRepository, users RoleDirectory, reg prometheus.Registerer) *Notifier {
	written := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "backoffice_notifications_total",
			Help: "Notification rows written or dropped, by type",
		},
		[]string{"type", "outcome"},
	)
	reg.MustRegister(written)

	return &Notifier{repo: repo, users: users, written: written}
}

// Notify expands each notice to its recipients and stores one row per recipient.
// Failures are logged and dropped.
func (n *Notifier) Notify(ctx context.Context, notices ...domain.Notice) {
	for _, notice := range notices {
		rows, err := n.expand(ctx, notice)
		if err != nil {
			n.written.WithLabelValues(string(notice.Type), "dropped").Inc()
			logger.Error(ctx).
				Err(err).
				Str("type", string(notice.Type)).
				Msg("Failed to resolve notification recipients")
			continue
		}

		if err := n.repo.CreateBatch(ctx, rows); err != nil {
			n.written.WithLabelValues(string(notice.Type), "dropped").Add(float64(len(rows)))
			logger.Error(ctx).
				Err(err).
				Str("type", string(notice.Type)).
				Int("recipients", len(rows)).
				Msg("Failed to write notifications")
			continue
		}

		n.written.WithLabelValues(string(notice.Type), "written").Add(float64(len(rows)))
		logger.Debug(ctx).
			Str("type", string(notice.Type)).
			Int("recipients", len(rows)).
			Msg("Notifications written")
	}
}

func (n *Notifier) expand(ctx context.Context, notice domain.Notice) ([]domain.Notification, error) {
	if notice.Audience.TargetRef != "" {
		return []domain.Notification{{
			UserRef: notice.Audience.TargetRef,
			Type:    notice.Type,
			Message: notice.Message,
		}}, nil
	}

	users, err := n.users.FindByRoles(ctx, notice.Audience.Roles...)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.Notification, 0, len(users))
	for _, u := range users {
		rows = append(rows, domain.Notification{
			UserRef: u.ExternalRef,
			Type:    notice.Type,
			Message: notice.Message,
		})
	}
	return rows, nil
}
