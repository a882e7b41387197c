package notification

import (
	"context"
	"fmt"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/leafrank/backend/logger"
	loggerMocks "github.com/leafrank/backend/logger/mocks"
	"github.com/leafrank/backend/mailer"
	mailerMocks "github.com/leafrank/backend/mailer/mocks"
	orgDomain "github.com/leafrank/backend/organization/domain"
	tiersDomain "github.com/leafrank/backend/tiers/domain"
)

func testLoggerProvider() logger.Provider {
	return func(ctx context.Context) logger.ILogger {
		l := &loggerMocks.ILogger{}
		l.On("Errorf", mock.Anything, mock.Anything).Maybe()
		l.On("Errorf", mock.Anything, mock.Anything, mock.Anything).Maybe()
		l.On("Errorf", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

		return l
	}
}

func testOrg(webhook string) *orgDomain.Organization {
	return &orgDomain.Organization{
		ID:           "org_thrive_syracuse",
		Name:         "Thrive Syracuse",
		OwnerEmail:   "owner@thrivesyracuse.com",
		BillingEmail: "billing@thrivesyracuse.com",
		SlackWebhook: webhook,
	}
}

func TestNotificationService_Dispatch(t *testing.T) {
	ctx := context.Background()

	t.Run("email goes to billing contact", func(t *testing.T) {
		m := mailerMocks.NewMailer(t)
		m.
			On("SendSimpleNotification", ctx, mock.AnythingOfType("*mailer.SimpleNotification"), "billing@thrivesyracuse.com").
			Return(nil).
			Once()

		s := NewNotificationService(testLoggerProvider(), m)

		err := s.NotifyUsage80Percent(ctx, testOrg(""), "emails", 0.84)
		assert.NoError(t, err)
	})

	t.Run("webhook posted when configured", func(t *testing.T) {
		m := mailerMocks.NewMailer(t)
		m.
			On("SendSimpleNotification", ctx, mock.Anything, "billing@thrivesyracuse.com").
			Return(nil).
			Once()

		var posted []string

		s := NewNotificationService(testLoggerProvider(), m)
		s.postWebhook = func(ctx context.Context, url string, msg *slack.WebhookMessage) error {
			posted = append(posted, url)
			return nil
		}

		err := s.NotifyPromoExpiring(ctx, testOrg("https://hooks.slack.com/services/T00/B00/x"), "LAUNCH2", 1)
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://hooks.slack.com/services/T00/B00/x"}, posted)
	})

	t.Run("webhook failure does not block email", func(t *testing.T) {
		m := mailerMocks.NewMailer(t)
		m.
			On("SendSimpleNotification", ctx, mock.Anything, "billing@thrivesyracuse.com").
			Return(nil).
			Once()

		s := NewNotificationService(testLoggerProvider(), m)
		s.postWebhook = func(ctx context.Context, url string, msg *slack.WebhookMessage) error {
			return fmt.Errorf("webhook gone")
		}

		err := s.NotifyPromoExpired(ctx, testOrg("https://hooks.slack.com/services/T00/B00/x"), "LAUNCH2")
		assert.Error(t, err)
	})

	t.Run("email failure is collected", func(t *testing.T) {
		m := mailerMocks.NewMailer(t)
		m.
			On("SendSimpleNotification", ctx, mock.Anything, "billing@thrivesyracuse.com").
			Return(fmt.Errorf("rate limited")).
			Once()

		s := NewNotificationService(testLoggerProvider(), m)

		err := s.NotifyUsage80Percent(ctx, testOrg(""), "smsCustomer", 0.81)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})
}

func TestNotificationService_SubjectContent(t *testing.T) {
	ctx := context.Background()

	var captured *mailer.SimpleNotification

	m := mailerMocks.NewMailer(t)
	m.
		On("SendSimpleNotification", ctx, mock.Anything, "billing@thrivesyracuse.com").
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(*mailer.SimpleNotification)
		}).
		Return(nil).
		Once()

	s := NewNotificationService(testLoggerProvider(), m)

	err := s.NotifySubscriptionUpgraded(ctx, testOrg(""), tiersDomain.TierPro, tiersDomain.TierGrowth, 249)
	assert.NoError(t, err)
	assert.Contains(t, captured.Subject, "Growth")
	assert.Contains(t, captured.Body, "from Pro to Growth")
	assert.Contains(t, captured.Body, "$249")
}
