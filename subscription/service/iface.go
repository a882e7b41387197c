package service

import (
	"context"

	invoicesDomain "github.com/leafrank/backend/invoicing/domain"
	"github.com/leafrank/backend/subscription/domain"
)

//go:generate mockery --name SubscriptionWorkflows --output ./mocks
type SubscriptionWorkflows interface {
	GetSubscription(ctx context.Context, orgID string) (*domain.Subscription, error)
	ListInvoices(ctx context.Context, orgID string, limit int) ([]*invoicesDomain.Invoice, error)
	CreateSubscription(ctx context.Context, req *domain.CreateSubscriptionRequest) (*domain.CreateSubscriptionResult, error)
	UpgradeSubscription(ctx context.Context, req *domain.UpgradeSubscriptionRequest) (*domain.UpgradeSubscriptionResult, error)
	CancelSubscription(ctx context.Context, orgID string) (*domain.CancelSubscriptionResult, error)
	DecrementPromoMonths(ctx context.Context) error
	SendUsageAlerts(ctx context.Context) error
	ReconcileCanceledSubscriptions(ctx context.Context) error
}
