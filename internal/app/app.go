package app

import (
	billinghttp "github.com/tair/backoffice/internal/billing/delivery/http"
	fleethttp "github.com/tair/backoffice/internal/fleet/delivery/http"
	identitygrpc "github.com/tair/backoffice/internal/identity/delivery/grpc"
	identityhttp "github.com/tair/backoffice/internal/identity/delivery/http"
	inventoryhttp "github.com/tair/backoffice/internal/inventory/delivery/http"
	notificationhttp "github.com/tair/backoffice/internal/notification/delivery/http"
	partnerhttp "github.com/tair/backoffice/internal/partner/delivery/http"
	reporthttp "github.com/tair/backoffice/internal/report/delivery/http"
	reportquery "github.com/tair/backoffice/internal/report/usecase/query"
)

// Application holds every transport handler of the service
type Application struct {
	Users         *identityhttp.UserHandler
	Cars          *fleethttp.CarHandler
	Partners      *partnerhttp.PartnerHandler
	Inventory     *inventoryhttp.InventoryHandler
	Billing       *billinghttp.BillingHandler
	Notifications *notificationhttp.NotificationHandler
	Dashboard     *reporthttp.DashboardHandler

	// DashboardQueries is exposed so the event consumer can drop cached aggregates
	DashboardQueries *reportquery.DashboardHandler
	Principals       *identitygrpc.PrincipalServer
}

// NewApplication collects the handlers built by the injector
func NewApplication(
	users *identityhttp.UserHandler,
	cars *fleethttp.CarHandler,
	partners *partnerhttp.PartnerHandler,
	inventory *inventoryhttp.InventoryHandler,
	billing *billinghttp.BillingHandler,
	notifications *notificationhttp.NotificationHandler,
	dashboard *reporthttp.DashboardHandler,
	dashboardQueries *reportquery.DashboardHandler,
	principals *identitygrpc.PrincipalServer,
) *Application {
	return &Application{
		Users:            users,
		Cars:             cars,
		Partners:         partners,
		Inventory:        inventory,
		Billing:          billing,
		Notifications:    notifications,
		Dashboard:        dashboard,
		DashboardQueries: dashboardQueries,
		Principals:       principals,
	}
}
