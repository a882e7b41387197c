package service

import (
	"context"
	"errors"
	"time"

	lfFirestore "github.com/leafrank/backend/pkg/firestore"
	"github.com/leafrank/backend/subscription/domain"
	tiersDomain "github.com/leafrank/backend/tiers/domain"
)

// CancelSubscription records the cancellation locally first, then tries the
// gateway. The local write is authoritative for the customer: a gateway
// failure is logged, the record is left in cancel_pending, and the
// reconciliation job retries the gateway side out of band. The call always
// succeeds once the local write lands.
func (s *SubscriptionService) CancelSubscription(ctx context.Context, orgID string) (*domain.CancelSubscriptionResult, error) {
	l := s.loggerProvider(ctx)

	org, err := s.orgsDAL.GetOrganization(ctx, orgID)
	if err != nil {
		return nil, err
	}

	subscription, err := s.subscriptionsDAL.Get(ctx, orgID)
	if err != nil {
		if errors.Is(err, lfFirestore.ErrNotFound) {
			return nil, domain.ErrNoActiveSubscription
		}

		return nil, err
	}

	if !subscription.IsActive() || subscription.AuthorizeNetSubscriptionID == "" {
		return nil, domain.ErrNoActiveSubscription
	}

	now := time.Now().UTC()

	updates := map[string]interface{}{
		"status":       string(domain.StatusCanceled),
		"canceledAt":   now,
		"gatewayState": string(domain.GatewayStateCancelPending),
	}

	if err := s.subscriptionsDAL.Update(ctx, orgID, updates); err != nil {
		return nil, err
	}

	if err := s.gateway.CancelARBSubscription(ctx, subscription.AuthorizeNetSubscriptionID); err != nil {
		l.Errorf("gateway cancel failed for org %s (subscription %s), left for reconciliation: %v",
			orgID, subscription.AuthorizeNetSubscriptionID, err)
	} else {
		if err := s.subscriptionsDAL.Update(ctx, orgID, map[string]interface{}{
			"gatewayState": string(domain.GatewayStateSynced),
		}); err != nil {
			l.Errorf("failed to mark gateway state synced for org %s: %v", orgID, err)
		}
	}

	if err := s.notifier.NotifySubscriptionCanceled(ctx, org, tiersDomain.TierID(subscription.TierID)); err != nil {
		l.Errorf("failed to send cancellation notifications for org %s: %v", org.ID, err)
	}

	return &domain.CancelSubscriptionResult{Success: true}, nil
}
