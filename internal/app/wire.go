//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	billinghttp "github.com/tair/backoffice/internal/billing/delivery/http"
	billingcmd "github.com/tair/backoffice/internal/billing/usecase/command"
	billingquery "github.com/tair/backoffice/internal/billing/usecase/query"
	fleethttp "github.com/tair/backoffice/internal/fleet/delivery/http"
	fleetcmd "github.com/tair/backoffice/internal/fleet/usecase/command"
	fleetquery "github.com/tair/backoffice/internal/fleet/usecase/query"
	"github.com/tair/backoffice/internal/identity/client"
	identitygrpc "github.com/tair/backoffice/internal/identity/delivery/grpc"
	identityhttp "github.com/tair/backoffice/internal/identity/delivery/http"
	identitycmd "github.com/tair/backoffice/internal/identity/usecase/command"
	identityquery "github.com/tair/backoffice/internal/identity/usecase/query"
	inventoryhttp "github.com/tair/backoffice/internal/inventory/delivery/http"
	inventorycmd "github.com/tair/backoffice/internal/inventory/usecase/command"
	inventoryquery "github.com/tair/backoffice/internal/inventory/usecase/query"
	notificationhttp "github.com/tair/backoffice/internal/notification/delivery/http"
	notificationcmd "github.com/tair/backoffice/internal/notification/usecase/command"
	notificationquery "github.com/tair/backoffice/internal/notification/usecase/query"
	partnerhttp "github.com/tair/backoffice/internal/partner/delivery/http"
	partnercmd "github.com/tair/backoffice/internal/partner/usecase/command"
	partnerquery "github.com/tair/backoffice/internal/partner/usecase/query"
	reporthttp "github.com/tair/backoffice/internal/report/delivery/http"
	reportquery "github.com/tair/backoffice/internal/report/usecase/query"
	"github.com/tair/backoffice/pkg/config"
)

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
	ProvideNotificationRepository,
	ProvideCarRepository,
	ProvideCompanyRepository,
	ProvideSellerRepository,
	ProvideCustomerRepository,
	ProvideCrateRepository,
	ProvidePurchaseRepository,
	ProvideSellingRepository,
	ProvideInvoiceRepository,
	ProvidePaymentRepository,
	ProvidePurchaseInvoiceRepository,
)

var PipelineSet = wire.NewSet(
	ProvideNotifier,
	ProvideExecutor,
	ProvideReminderSender,
	ProvideReminderConfig,
	ProvideStatsCache,
)

var CommandHandlerSet = wire.NewSet(
	identitycmd.NewCreateUserHandler,
	identitycmd.NewChangeRoleHandler,
	fleetcmd.NewCarCommandHandler,
	partnercmd.NewCompanyCommandHandler,
	partnercmd.NewCreateSellerHandler,
	partnercmd.NewCustomerCommandHandler,
	inventorycmd.NewCrateCommandHandler,
	inventorycmd.NewCreatePurchaseHandler,
	inventorycmd.NewSellProductHandler,
	billingcmd.NewCreateInvoiceHandler,
	billingcmd.NewRecordPaymentHandler,
	billingcmd.NewCreatePurchaseInvoiceHandler,
	billingcmd.NewSendRemindersHandler,
	notificationcmd.NewNotificationCommandHandler,
)

var QueryHandlerSet = wire.NewSet(
	identityquery.NewUserQueryHandler,
	fleetquery.NewListCarsHandler,
	partnerquery.NewCompanyQueryHandler,
	partnerquery.NewListSellersHandler,
	partnerquery.NewListCustomersHandler,
	inventoryquery.NewListCratesHandler,
	inventoryquery.NewListPurchasesHandler,
	inventoryquery.NewListSellingsHandler,
	billingquery.NewInvoiceQueryHandler,
	billingquery.NewPurchaseInvoiceQueryHandler,
	notificationquery.NewListNotificationsHandler,
	reportquery.NewDashboardHandler,
)

var DeliverySet = wire.NewSet(
	identityhttp.NewUserHandler,
	fleethttp.NewCarHandler,
	partnerhttp.NewPartnerHandler,
	inventoryhttp.NewInventoryHandler,
	billinghttp.NewBillingHandler,
	notificationhttp.NewNotificationHandler,
	reporthttp.NewDashboardHandler,
	identitygrpc.NewPrincipalServer,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	PipelineSet,
	CommandHandlerSet,
	QueryHandlerSet,
	DeliverySet,
)

// InitializeApplication builds every handler over the given infrastructure
func InitializeApplication(
	cfg *config.Config,
	db *gorm.DB,
	rdb *redis.Client,
	bus Bus,
	metadata client.MetadataUpdater,
	reg *prometheus.Registry,
) (*Application, error) {
	wire.Build(
		AllHandlersSet,
		NewApplication,
	)
	return nil, nil
}
