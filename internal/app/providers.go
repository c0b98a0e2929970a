// Package app assembles the backoffice service from its modules.
package app

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	billing "github.com/tair/backoffice/internal/billing/domain"
	billingrepo "github.com/tair/backoffice/internal/billing/repository"
	billingcmd "github.com/tair/backoffice/internal/billing/usecase/command"
	fleet "github.com/tair/backoffice/internal/fleet/domain"
	fleetrepo "github.com/tair/backoffice/internal/fleet/repository"
	identity "github.com/tair/backoffice/internal/identity/domain"
	identityrepo "github.com/tair/backoffice/internal/identity/repository"
	inventory "github.com/tair/backoffice/internal/inventory/domain"
	inventoryrepo "github.com/tair/backoffice/internal/inventory/repository"
	notification "github.com/tair/backoffice/internal/notification/domain"
	notificationrepo "github.com/tair/backoffice/internal/notification/repository"
	notificationcmd "github.com/tair/backoffice/internal/notification/usecase/command"
	partner "github.com/tair/backoffice/internal/partner/domain"
	partnerrepo "github.com/tair/backoffice/internal/partner/repository"
	"github.com/tair/backoffice/internal/pipeline"
	"github.com/tair/backoffice/kafka"
	"github.com/tair/backoffice/pkg/cache"
	"github.com/tair/backoffice/pkg/config"
)

// Bus carries mutation events and payment reminders. *kafka.Publisher and kafka.LogPublisher satisfy it.
type Bus interface {
	PublishMutation(ctx context.Context, event kafka.MutationEvent) error
	PublishReminder(ctx context.Context, msg kafka.ReminderMessage) error
}

// Models lists every table the service owns, in dependency order
func Models() []any {
	return []any{
		&identity.User{},
		&notification.Notification{},
		&fleet.Car{},
		&partner.Company{},
		&partner.Seller{},
		&partner.Customer{},
		&inventory.Crate{},
		&inventory.ProductPurchase{},
		&inventory.ProductSelling{},
		&billing.Invoice{},
		&billing.Payment{},
		&billing.PurchaseInvoice{},
	}
}

// Repository providers

func ProvideUserRepository(db *gorm.DB) identity.UserRepository {
	return identityrepo.NewTracingUserRepository(identityrepo.NewGormUserRepository(db))
}

func ProvideNotificationRepository(db *gorm.DB) notification.NotificationRepository {
	return notificationrepo.NewGormNotificationRepository(db)
}

func ProvideCarRepository(db *gorm.DB) fleet.CarRepository {
	return fleetrepo.NewGormCarRepository(db)
}

func ProvideCompanyRepository(db *gorm.DB) partner.CompanyRepository {
	return partnerrepo.NewGormCompanyRepository(db)
}

func ProvideSellerRepository(db *gorm.DB) partner.SellerRepository {
	return partnerrepo.NewGormSellerRepository(db)
}

func ProvideCustomerRepository(db *gorm.DB) partner.CustomerRepository {
	return partnerrepo.NewGormCustomerRepository(db)
}

func ProvideCrateRepository(db *gorm.DB) inventory.CrateRepository {
	return inventoryrepo.NewGormCrateRepository(db)
}

func ProvidePurchaseRepository(db *gorm.DB) inventory.PurchaseRepository {
	return inventoryrepo.NewGormPurchaseRepository(db)
}

// ProvideSellingRepository traces deductions, the only multi-row stock mutation
func ProvideSellingRepository(db *gorm.DB) inventory.SellingRepository {
	return inventoryrepo.NewTracingSellingRepository(inventoryrepo.NewGormSellingRepository(db))
}

func ProvideInvoiceRepository(db *gorm.DB) billing.InvoiceRepository {
	return billingrepo.NewGormInvoiceRepository(db)
}

func ProvidePaymentRepository(db *gorm.DB) billing.PaymentRepository {
	return billingrepo.NewGormPaymentRepository(db)
}

func ProvidePurchaseInvoiceRepository(db *gorm.DB) billing.PurchaseInvoiceRepository {
	return billingrepo.NewGormPurchaseInvoiceRepository(db)
}

// Cross-cutting providers

func ProvideNotifier(repo notification.NotificationRepository, users identity.UserRepository, reg *prometheus.Registry) pipeline.Notifier {
	return notificationcmd.NewNotifier(repo, users, reg)
}

func ProvideExecutor(users identity.UserRepository, notifier pipeline.Notifier, bus Bus, reg *prometheus.Registry) *pipeline.Executor {
	return pipeline.NewExecutor(users, notifier, bus, reg)
}

func ProvideReminderSender(bus Bus) billingcmd.ReminderSender {
	return bus
}

func ProvideReminderConfig(cfg *config.Config) config.ReminderConfig {
	return cfg.Reminder
}

// ProvideStatsCache returns the dashboard cache. A nil client disables it.
func ProvideStatsCache(rdb *redis.Client, cfg *config.Config) *cache.Cache {
	return cache.New(rdb, "backoffice:dashboard", cfg.Redis.StatsTTL)
}

