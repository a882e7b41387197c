//go:generate mockery --name Subscriptions --output ./mocks
package dal

import (
	"context"

	"github.com/leafrank/backend/subscription/domain"
)

type Subscriptions interface {
	Get(ctx context.Context, orgID string) (*domain.Subscription, error)
	Set(ctx context.Context, orgID string, subscription *domain.Subscription) error
	Update(ctx context.Context, orgID string, fields map[string]interface{}) error
	CountByPromoCode(ctx context.Context, code string) (int, error)
	ListActiveWithFreeMonths(ctx context.Context) ([]*domain.Subscription, error)
	ListActive(ctx context.Context) ([]*domain.Subscription, error)
	ListCancelPending(ctx context.Context) ([]*domain.Subscription, error)
}
