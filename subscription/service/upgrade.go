package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	lfFirestore "github.com/leafrank/backend/pkg/firestore"
	"github.com/leafrank/backend/promo"
	"github.com/leafrank/backend/subscription/domain"
	tiersDomain "github.com/leafrank/backend/tiers/domain"
)

// UpgradeSubscription moves an active subscription to a strictly higher
// tier. The gateway amount is updated first; only then are the mirrored
// store documents written, so a gateway failure leaves the local record
// untouched. Exactly one upgradeHistory entry is appended per call; the
// operation is not idempotent and relies on the UI disabling resubmits.
//
// A free_months promo does not carry over to the new tier; percent_off promo
// fields persist on the record but the new amount is the plain tier price.
func (s *SubscriptionService) UpgradeSubscription(ctx context.Context, req *domain.UpgradeSubscriptionRequest) (*domain.UpgradeSubscriptionResult, error) {
	l := s.loggerProvider(ctx)

	newTierID := tiersDomain.TierID(req.TierID)

	newTier, ok := tiersDomain.Get(newTierID)
	if !ok {
		return &domain.UpgradeSubscriptionResult{Error: domain.ErrInvalidTier.Error()}, nil
	}

	org, err := s.orgsDAL.GetOrganization(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}

	subscription, err := s.subscriptionsDAL.Get(ctx, req.OrgID)
	if err != nil {
		if errors.Is(err, lfFirestore.ErrNotFound) {
			return &domain.UpgradeSubscriptionResult{Error: domain.ErrNoActiveSubscription.Error()}, nil
		}

		return nil, err
	}

	if !subscription.IsActive() || subscription.AuthorizeNetSubscriptionID == "" {
		return &domain.UpgradeSubscriptionResult{Error: domain.ErrNoActiveSubscription.Error()}, nil
	}

	currentTierID := tiersDomain.TierID(subscription.TierID)

	if !tiersDomain.Less(currentTierID, newTierID) {
		return &domain.UpgradeSubscriptionResult{Error: domain.ErrNotAnUpgrade.Error()}, nil
	}

	newAmount := newTier.Price

	// No pro-ration: the gateway charges the new amount on the current
	// billing cycle date.
	if err := s.gateway.UpdateARBSubscription(ctx, subscription.AuthorizeNetSubscriptionID, newAmount); err != nil {
		l.Errorf("gateway amount update failed for org %s: %v", req.OrgID, err)
		return &domain.UpgradeSubscriptionResult{Error: "payment gateway rejected the new amount"}, nil
	}

	entry := domain.UpgradeHistoryEntry{
		FromTier:  subscription.TierID,
		ToTier:    req.TierID,
		Timestamp: time.Now().UTC(),
	}

	updates := map[string]interface{}{
		"tierId":         req.TierID,
		"amount":         newAmount,
		"upgradeHistory": append(subscription.UpgradeHistory, entry),
		// allocations grow with the tier, so the usage alert may fire again
		"alertSentAt80Percent": false,
	}

	if subscription.PromoType == promo.TypeFreeMonths {
		updates["promoCode"] = nil
		updates["promoType"] = nil
		updates["promoMonthsRemaining"] = 0
	}

	if err := s.subscriptionsDAL.Update(ctx, req.OrgID, updates); err != nil {
		return nil, err
	}

	currentTier, _ := tiersDomain.Get(currentTierID)

	s.recordInvoice(ctx, org.ID, newAmount, fmt.Sprintf("Upgrade from %s to %s", currentTier.Name, newTier.Name), newTierID)
	s.assignPlaybooks(ctx, org.ID, newTierID)

	if err := s.notifier.NotifySubscriptionUpgraded(ctx, org, currentTierID, newTierID, newAmount); err != nil {
		l.Errorf("failed to send upgrade notifications for org %s: %v", org.ID, err)
	}

	return &domain.UpgradeSubscriptionResult{
		Success:   true,
		NewAmount: newAmount,
	}, nil
}
