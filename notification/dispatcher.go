//go:generate mockery --name Dispatcher --output ./mocks
package notification

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/slack-go/slack"

	"github.com/leafrank/backend/common"
	"github.com/leafrank/backend/logger"
	"github.com/leafrank/backend/mailer"
	orgDomain "github.com/leafrank/backend/organization/domain"
	tiersDomain "github.com/leafrank/backend/tiers/domain"
)

const internalBillingChannel = "#leafrank-billing"

// Dispatcher fans subscription lifecycle events out to email, the tenant's
// Slack webhook, and the internal billing channel. All sends are best-effort
// from the caller's point of view; the returned error is for logging only.
type Dispatcher interface {
	NotifySubscriptionCreated(ctx context.Context, org *orgDomain.Organization, tierID tiersDomain.TierID, amount int64, promoCode string) error
	NotifySubscriptionUpgraded(ctx context.Context, org *orgDomain.Organization, fromTier, toTier tiersDomain.TierID, newAmount int64) error
	NotifySubscriptionCanceled(ctx context.Context, org *orgDomain.Organization, tierID tiersDomain.TierID) error
	NotifyUsage80Percent(ctx context.Context, org *orgDomain.Organization, metric string, ratio float64) error
	NotifyPromoExpiring(ctx context.Context, org *orgDomain.Organization, promoCode string, monthsRemaining int64) error
	NotifyPromoExpired(ctx context.Context, org *orgDomain.Organization, promoCode string) error
}

type webhookPoster func(ctx context.Context, url string, msg *slack.WebhookMessage) error

type NotificationService struct {
	loggerProvider logger.Provider
	mailer         mailer.Mailer
	postWebhook    webhookPoster
}

func NewNotificationService(loggerProvider logger.Provider, m mailer.Mailer) *NotificationService {
	return &NotificationService{
		loggerProvider: loggerProvider,
		mailer:         m,
		postWebhook:    slack.PostWebhookContext,
	}
}

func tierName(id tiersDomain.TierID) string {
	if tier, ok := tiersDomain.Get(id); ok {
		return tier.Name
	}

	return string(id)
}

// dispatch sends the email and, when the tenant configured one, the Slack
// webhook message. Failures are collected rather than short-circuiting so a
// dead webhook does not block the email.
func (s *NotificationService) dispatch(ctx context.Context, org *orgDomain.Organization, sn *mailer.SimpleNotification, slackText string) error {
	l := s.loggerProvider(ctx)

	var result *multierror.Error

	if err := s.mailer.SendSimpleNotification(ctx, sn, org.BillingContact()); err != nil {
		l.Errorf("failed to send %q email to org %s: %v", sn.Subject, org.ID, err)
		result = multierror.Append(result, err)
	}

	if org.SlackWebhook != "" {
		msg := &slack.WebhookMessage{Text: slackText}

		if err := s.postWebhook(ctx, org.SlackWebhook, msg); err != nil {
			l.Errorf("failed to post slack webhook for org %s: %v", org.ID, err)
			result = multierror.Append(result, err)
		}
	}

	return result.ErrorOrNil()
}

// notifyInternal posts to the internal billing channel. Errors are logged
// and swallowed; internal visibility never affects tenant notifications.
func (s *NotificationService) notifyInternal(ctx context.Context, text string) {
	l := s.loggerProvider(ctx)

	message := map[string]interface{}{
		"channel": internalBillingChannel,
		"text":    text,
	}

	if _, err := common.PublishToSlack(ctx, message, internalBillingChannel); err != nil {
		l.Errorf("failed to publish internal slack message: %v", err)
	}
}

func (s *NotificationService) NotifySubscriptionCreated(ctx context.Context, org *orgDomain.Organization, tierID tiersDomain.TierID, amount int64, promoCode string) error {
	body := fmt.Sprintf("Your %s subscription is active. You will be billed $%d/month.", tierName(tierID), amount)
	if promoCode != "" {
		body += fmt.Sprintf(" Promo %s applied.", promoCode)
	}

	sn := &mailer.SimpleNotification{
		Subject:    fmt.Sprintf("Welcome to LeafRank %s", tierName(tierID)),
		Preheader:  "Your subscription is active",
		Body:       body,
		Categories: []string{mailer.CategoryBilling},
	}

	s.notifyInternal(ctx, fmt.Sprintf("New %s subscription: %s ($%d/mo)", tierName(tierID), org.Name, amount))

	return s.dispatch(ctx, org, sn, fmt.Sprintf("%s is now on LeafRank %s.", org.Name, tierName(tierID)))
}

func (s *NotificationService) NotifySubscriptionUpgraded(ctx context.Context, org *orgDomain.Organization, fromTier, toTier tiersDomain.TierID, newAmount int64) error {
	sn := &mailer.SimpleNotification{
		Subject:    fmt.Sprintf("Upgraded to LeafRank %s", tierName(toTier)),
		Preheader:  "Your plan has changed",
		Body:       fmt.Sprintf("Your plan was upgraded from %s to %s. Your new monthly price is $%d.", tierName(fromTier), tierName(toTier), newAmount),
		Categories: []string{mailer.CategoryBilling},
	}

	s.notifyInternal(ctx, fmt.Sprintf("Upgrade: %s moved from %s to %s", org.Name, tierName(fromTier), tierName(toTier)))

	return s.dispatch(ctx, org, sn, fmt.Sprintf("%s upgraded to LeafRank %s.", org.Name, tierName(toTier)))
}

func (s *NotificationService) NotifySubscriptionCanceled(ctx context.Context, org *orgDomain.Organization, tierID tiersDomain.TierID) error {
	sn := &mailer.SimpleNotification{
		Subject:    "Your LeafRank subscription has been canceled",
		Preheader:  "Subscription canceled",
		Body:       fmt.Sprintf("Your %s subscription has been canceled. Your data remains available until the end of the current billing period.", tierName(tierID)),
		Categories: []string{mailer.CategoryBilling},
	}

	s.notifyInternal(ctx, fmt.Sprintf("Cancellation: %s (%s)", org.Name, tierName(tierID)))

	return s.dispatch(ctx, org, sn, fmt.Sprintf("%s canceled their LeafRank subscription.", org.Name))
}

func (s *NotificationService) NotifyUsage80Percent(ctx context.Context, org *orgDomain.Organization, metric string, ratio float64) error {
	sn := &mailer.SimpleNotification{
		Subject:    fmt.Sprintf("You've used %.0f%% of your %s allocation", ratio*100, metric),
		Preheader:  "Usage alert",
		Body:       fmt.Sprintf("Your organization has used %.0f%% of its monthly %s allocation. Consider upgrading your plan to avoid interruptions.", ratio*100, metric),
		Categories: []string{mailer.CategoryUsage},
	}

	return s.dispatch(ctx, org, sn, fmt.Sprintf("%s is at %.0f%% of its %s allocation.", org.Name, ratio*100, metric))
}

func (s *NotificationService) NotifyPromoExpiring(ctx context.Context, org *orgDomain.Organization, promoCode string, monthsRemaining int64) error {
	sn := &mailer.SimpleNotification{
		Subject:    fmt.Sprintf("Your promo %s expires soon", promoCode),
		Preheader:  "Promo expiring",
		Body:       fmt.Sprintf("Your promotional pricing from code %s ends in %d month(s). Regular pricing applies afterwards.", promoCode, monthsRemaining),
		Categories: []string{mailer.CategoryPromo},
	}

	return s.dispatch(ctx, org, sn, fmt.Sprintf("Promo %s for %s ends in %d month(s).", promoCode, org.Name, monthsRemaining))
}

func (s *NotificationService) NotifyPromoExpired(ctx context.Context, org *orgDomain.Organization, promoCode string) error {
	sn := &mailer.SimpleNotification{
		Subject:    fmt.Sprintf("Your promo %s has ended", promoCode),
		Preheader:  "Promo ended",
		Body:       fmt.Sprintf("Your promotional pricing from code %s has ended. Your subscription now bills at the regular tier price.", promoCode),
		Categories: []string{mailer.CategoryPromo},
	}

	return s.dispatch(ctx, org, sn, fmt.Sprintf("Promo %s for %s has ended.", promoCode, org.Name))
}
