package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	gwDomain "github.com/leafrank/backend/billing/gateway/domain"
	lfFirestore "github.com/leafrank/backend/pkg/firestore"
	"github.com/leafrank/backend/promo"
	"github.com/leafrank/backend/subscription/domain"
	tiersDomain "github.com/leafrank/backend/tiers/domain"
)

// CreateSubscription runs the checkout workflow: defensive promo re-check,
// gateway profile and recurring-subscription creation, then the mirrored
// store write. Side effects (invoice, playbooks, notification) are
// best-effort and run only after the subscription is recorded.
//
// Gateway failures abort before any store write, so a declined card never
// leaves a local record. The inverse gap — a store write failing after the
// gateway accepted — leaves a dangling gateway subscription with no local
// record; it is logged for manual follow-up.
func (s *SubscriptionService) CreateSubscription(ctx context.Context, req *domain.CreateSubscriptionRequest) (*domain.CreateSubscriptionResult, error) {
	l := s.loggerProvider(ctx)

	tierID := tiersDomain.TierID(req.TierID)

	tier, ok := tiersDomain.Get(tierID)
	if !ok {
		return &domain.CreateSubscriptionResult{Error: domain.ErrInvalidTier.Error()}, nil
	}

	if !tiersDomain.IsPaid(tierID) {
		return &domain.CreateSubscriptionResult{Error: "tier does not require a subscription"}, nil
	}

	org, err := s.orgsDAL.GetOrganization(ctx, req.OrgID)
	if err != nil {
		return nil, err
	}

	existing, err := s.subscriptionsDAL.Get(ctx, req.OrgID)
	if err != nil && !errors.Is(err, lfFirestore.ErrNotFound) {
		return nil, err
	}

	if existing.IsActive() {
		return &domain.CreateSubscriptionResult{Error: domain.ErrSubscriptionExists.Error()}, nil
	}

	amount := tier.Price

	var appliedPromo *promo.Code

	if req.PromoCode != "" {
		// Defensive re-check only: the UI already validated the code, so a
		// promo that no longer applies must not abort checkout.
		redeemed, err := s.subscriptionsDAL.CountByPromoCode(ctx, req.PromoCode)
		if err != nil {
			l.Warningf("could not count redemptions for promo %s: %v", req.PromoCode, err)
			redeemed = 0
		}

		code, err := promo.Validate(req.PromoCode, tierID, redeemed, time.Now().UTC())
		if err != nil {
			l.Warningf("promo %s did not apply for org %s: %v", req.PromoCode, req.OrgID, err)
		} else {
			appliedPromo = &code
			amount = code.DiscountedAmount(amount)
		}
	}

	billTo := gwDomain.BillTo{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Company:   req.Company,
		Address:   req.Address,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Country:   req.Country,
	}

	opaqueData := gwDomain.OpaqueData{
		DataDescriptor: req.DataDescriptor,
		DataValue:      req.DataValue,
	}

	profile, err := s.gateway.CreateCustomerProfile(ctx, billTo, opaqueData)
	if err != nil {
		l.Errorf("gateway profile creation failed for org %s: %v", req.OrgID, err)
		return &domain.CreateSubscriptionResult{Error: "payment profile creation failed"}, nil
	}

	subscriptionID, err := s.gateway.CreateSubscriptionFromProfile(ctx, profile, fmt.Sprintf("LeafRank %s", tier.Name), amount)
	if err != nil {
		l.Errorf("gateway subscription creation failed for org %s: %v", req.OrgID, err)
		return &domain.CreateSubscriptionResult{Error: "subscription was declined by the payment gateway"}, nil
	}

	subscription := &domain.Subscription{
		TierID:                     req.TierID,
		Status:                     domain.StatusActive,
		Amount:                     amount,
		AuthorizeNetSubscriptionID: subscriptionID,
		CustomerProfileID:          profile.CustomerProfileID,
		CustomerPaymentProfileID:   profile.CustomerPaymentProfileID,
		GatewayState:               domain.GatewayStateSynced,
		CreatedAt:                  time.Now().UTC(),
	}

	if appliedPromo != nil {
		subscription.PromoCode = appliedPromo.Code
		subscription.PromoType = appliedPromo.Type

		if appliedPromo.Type == promo.TypeFreeMonths {
			subscription.PromoMonthsRemaining = int64(appliedPromo.Value)
		}
	}

	if err := s.subscriptionsDAL.Set(ctx, req.OrgID, subscription); err != nil {
		l.Errorf("failed to store subscription for org %s (gateway subscription %s is dangling): %v", req.OrgID, subscriptionID, err)
		return &domain.CreateSubscriptionResult{Error: "failed to record subscription"}, nil
	}

	s.recordInvoice(ctx, org.ID, amount, fmt.Sprintf("%s subscription", tier.Name), tierID)
	s.assignPlaybooks(ctx, org.ID, tierID)

	if err := s.notifier.NotifySubscriptionCreated(ctx, org, tierID, amount, subscription.PromoCode); err != nil {
		l.Errorf("failed to send creation notifications for org %s: %v", org.ID, err)
	}

	return &domain.CreateSubscriptionResult{
		Success:        true,
		SubscriptionID: subscriptionID,
		Amount:         amount,
		PromoApplied:   subscription.PromoCode,
	}, nil
}
