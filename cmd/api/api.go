package api

import (
	"net/http"
	"os"

	"github.com/leafrank/backend/framework/connection"
	"github.com/leafrank/backend/framework/mid"
	"github.com/leafrank/backend/framework/web"
	"github.com/leafrank/backend/logger"
	subscriptionHandlers "github.com/leafrank/backend/subscription/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics())

	subscriptions := subscriptionHandlers.NewSubscriptionsHandler(loggerProvider, a.conn)

	// Dashboard routes. Callers must hold a valid Firebase token for the
	// organization in the path.
	orgGroup := web.NewGroup(app, "/api/v1/orgs/:orgID", mid.AuthRequired(a.conn), mid.AuthOrgRequired())
	{
		subscriptionGroup := orgGroup.NewSubgroup("/subscription")
		{
			subscriptionGroup.Get("", subscriptions.GetSubscription)
			subscriptionGroup.Post("/create", subscriptions.CreateSubscription)
			subscriptionGroup.Post("/upgrade", subscriptions.UpgradeSubscription)
			subscriptionGroup.Post("/cancel", subscriptions.CancelSubscription)
		}

		orgGroup.Get("/invoices", subscriptions.ListInvoices)
	}

	// Scheduled task routes, triggered by Cloud Scheduler with the shared
	// cron secret.
	tasksGroup := web.NewGroup(app, "/tasks", mid.CronSecret())
	{
		subscriptionsTasksGroup := tasksGroup.NewSubgroup("/subscriptions")
		{
			subscriptionsTasksGroup.Post("/decrement-promo-months", subscriptions.DecrementPromoMonths)
			subscriptionsTasksGroup.Post("/usage-alerts", subscriptions.SendUsageAlerts)
			subscriptionsTasksGroup.Post("/reconcile-cancellations", subscriptions.ReconcileCanceledSubscriptions)
		}
	}

	return app
}
