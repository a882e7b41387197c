package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/leafrank/backend/common"
	"github.com/leafrank/backend/subscription/domain"
	tiersDomain "github.com/leafrank/backend/tiers/domain"
)

const (
	usageAlertThreshold = 0.8

	// After this many failed gateway cancel attempts the subscription is
	// parked for a human instead of retrying forever.
	maxCancelAttempts = 5

	internalAlertsChannel = "#leafrank-billing"
)

// DecrementPromoMonths runs once per billing cycle. Every active
// subscription with a free_months promo loses one month; reaching 1 sends
// the expiring notice and reaching 0 sends the expired notice and clears the
// promo fields.
func (s *SubscriptionService) DecrementPromoMonths(ctx context.Context) error {
	l := s.loggerProvider(ctx)

	subscriptions, err := s.subscriptionsDAL.ListActiveWithFreeMonths(ctx)
	if err != nil {
		return err
	}

	var result *multierror.Error

	for _, subscription := range subscriptions {
		remaining := subscription.PromoMonthsRemaining - 1

		updates := map[string]interface{}{
			"promoMonthsRemaining": remaining,
		}

		if remaining <= 0 {
			updates["promoCode"] = nil
			updates["promoType"] = nil
		}

		if err := s.subscriptionsDAL.Update(ctx, subscription.ID, updates); err != nil {
			l.Errorf("failed to decrement promo months for org %s: %v", subscription.ID, err)
			result = multierror.Append(result, err)

			continue
		}

		org, err := s.orgsDAL.GetOrganization(ctx, subscription.ID)
		if err != nil {
			l.Errorf("failed to load org %s for promo notification: %v", subscription.ID, err)
			result = multierror.Append(result, err)

			continue
		}

		switch {
		case remaining <= 0:
			if err := s.notifier.NotifyPromoExpired(ctx, org, subscription.PromoCode); err != nil {
				l.Errorf("failed to send promo expired notice to org %s: %v", org.ID, err)
			}
		case remaining == 1:
			if err := s.notifier.NotifyPromoExpiring(ctx, org, subscription.PromoCode, remaining); err != nil {
				l.Errorf("failed to send promo expiring notice to org %s: %v", org.ID, err)
			}
		}
	}

	l.Infof("promo decrement processed %d subscriptions", len(subscriptions))

	return result.ErrorOrNil()
}

type metricUsage struct {
	name       string
	used       int64
	allocation int64
}

// SendUsageAlerts alerts each organization once when any tracked metric
// crosses 80% of its tier allocation. The alertSentAt80Percent flag keeps
// the alert from repeating; an upgrade resets it (see UpgradeSubscription).
func (s *SubscriptionService) SendUsageAlerts(ctx context.Context) error {
	l := s.loggerProvider(ctx)

	subscriptions, err := s.subscriptionsDAL.ListActive(ctx)
	if err != nil {
		return err
	}

	var result *multierror.Error

	for _, subscription := range subscriptions {
		if subscription.AlertSentAt80Pct {
			continue
		}

		tier, ok := tiersDomain.Get(tiersDomain.TierID(subscription.TierID))
		if !ok {
			l.Errorf("org %s has unknown tier %s", subscription.ID, subscription.TierID)
			continue
		}

		metrics := []metricUsage{
			{"emails", subscription.Usage.Emails, tier.Allocations.Emails},
			{"smsCustomer", subscription.Usage.SMSCustomer, tier.Allocations.SMSCustomer},
			{"seoPages", subscription.Usage.SEOPages, tier.Allocations.SEOPages},
		}

		name, ratio, crossed := firstCrossedMetric(metrics)
		if !crossed {
			continue
		}

		org, err := s.orgsDAL.GetOrganization(ctx, subscription.ID)
		if err != nil {
			l.Errorf("failed to load org %s for usage alert: %v", subscription.ID, err)
			result = multierror.Append(result, err)

			continue
		}

		if err := s.notifier.NotifyUsage80Percent(ctx, org, name, ratio); err != nil {
			l.Errorf("failed to send usage alert to org %s: %v", org.ID, err)
			result = multierror.Append(result, err)

			continue
		}

		if err := s.subscriptionsDAL.Update(ctx, subscription.ID, map[string]interface{}{
			"alertSentAt80Percent": true,
		}); err != nil {
			l.Errorf("failed to set usage alert flag for org %s: %v", subscription.ID, err)
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

func firstCrossedMetric(metrics []metricUsage) (string, float64, bool) {
	for _, m := range metrics {
		if m.allocation <= 0 {
			continue
		}

		ratio := float64(m.used) / float64(m.allocation)
		if ratio >= usageAlertThreshold {
			return m.name, ratio, true
		}
	}

	return "", 0, false
}

// ReconcileCanceledSubscriptions retries the gateway cancel for
// subscriptions canceled locally whose gateway side never confirmed. After
// maxCancelAttempts failures the record moves to manual_review and the
// billing channel is alerted.
func (s *SubscriptionService) ReconcileCanceledSubscriptions(ctx context.Context) error {
	l := s.loggerProvider(ctx)

	subscriptions, err := s.subscriptionsDAL.ListCancelPending(ctx)
	if err != nil {
		return err
	}

	var result *multierror.Error

	for _, subscription := range subscriptions {
		cancelErr := s.gateway.CancelARBSubscription(ctx, subscription.AuthorizeNetSubscriptionID)
		if cancelErr == nil {
			if err := s.subscriptionsDAL.Update(ctx, subscription.ID, map[string]interface{}{
				"gatewayState": string(domain.GatewayStateSynced),
			}); err != nil {
				result = multierror.Append(result, err)
			}

			continue
		}

		l.Warningf("gateway cancel retry failed for org %s: %v", subscription.ID, cancelErr)

		attempts := subscription.CancelAttempts + 1

		updates := map[string]interface{}{
			"cancelAttempts": attempts,
		}

		if attempts >= maxCancelAttempts {
			updates["gatewayState"] = string(domain.GatewayStateManualReview)

			s.alertManualReview(ctx, subscription)
		}

		if err := s.subscriptionsDAL.Update(ctx, subscription.ID, updates); err != nil {
			l.Errorf("failed to update cancel attempts for org %s: %v", subscription.ID, err)
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

func (s *SubscriptionService) alertManualReview(ctx context.Context, subscription *domain.Subscription) {
	l := s.loggerProvider(ctx)

	message := map[string]interface{}{
		"channel": internalAlertsChannel,
		"text": fmt.Sprintf("Gateway cancel for org %s (ARB %s) failed %d times; parked for manual review.",
			subscription.ID, subscription.AuthorizeNetSubscriptionID, maxCancelAttempts),
	}

	if _, err := common.PublishToSlack(ctx, message, internalAlertsChannel); err != nil {
		l.Errorf("failed to publish manual review alert for org %s: %v", subscription.ID, err)
	}
}
