package gateway

import (
	"context"

	"github.com/leafrank/backend/billing/gateway/domain"
)

// PaymentGateway is the narrow surface of the payment processor the
// subscription workflow depends on. All four operations may fail; the
// workflow decides which failures are fatal.
//
//go:generate mockery --name PaymentGateway --output ./mocks
type PaymentGateway interface {
	CreateCustomerProfile(ctx context.Context, billTo domain.BillTo, opaqueData domain.OpaqueData) (*domain.CustomerProfile, error)
	CreateSubscriptionFromProfile(ctx context.Context, profile *domain.CustomerProfile, name string, amount int64) (string, error)
	UpdateARBSubscription(ctx context.Context, subscriptionID string, newAmount int64) error
	CancelARBSubscription(ctx context.Context, subscriptionID string) error
}
