// Package service orchestrates the subscription lifecycle: checkout,
// upgrades, cancellation, and the scheduled jobs that maintain promos,
// usage alerts, and gateway reconciliation.
package service

import (
	"context"

	"github.com/leafrank/backend/billing/gateway"
	"github.com/leafrank/backend/framework/connection"
	invoicesDal "github.com/leafrank/backend/invoicing/dal"
	invoicesDomain "github.com/leafrank/backend/invoicing/domain"
	"github.com/leafrank/backend/logger"
	"github.com/leafrank/backend/mailer"
	"github.com/leafrank/backend/notification"
	orgsDal "github.com/leafrank/backend/organization/dal"
	playbooksDal "github.com/leafrank/backend/playbooks/dal"
	playbooksService "github.com/leafrank/backend/playbooks/service"
	"github.com/leafrank/backend/subscription/dal"
	"github.com/leafrank/backend/subscription/domain"
	tiersDomain "github.com/leafrank/backend/tiers/domain"
)

type SubscriptionService struct {
	loggerProvider logger.Provider
	conn           *connection.Connection

	subscriptionsDAL dal.Subscriptions
	orgsDAL          orgsDal.Organizations
	invoicesDAL      invoicesDal.Invoices
	gateway          gateway.PaymentGateway
	playbooks        playbooksService.Assigner
	notifier         notification.Dispatcher
}

func NewSubscriptionService(log logger.Provider, conn *connection.Connection) (*SubscriptionService, error) {
	gatewayClient, err := gateway.NewClient()
	if err != nil {
		return nil, err
	}

	sendgridMailer, err := mailer.NewSendGridMailer()
	if err != nil {
		return nil, err
	}

	return &SubscriptionService{
		loggerProvider:   log,
		conn:             conn,
		subscriptionsDAL: dal.NewSubscriptionsFirestoreWithClient(conn.Firestore),
		orgsDAL:          orgsDal.NewOrganizationsFirestoreWithClient(conn.Firestore),
		invoicesDAL:      invoicesDal.NewInvoicesFirestoreWithClient(conn.Firestore),
		gateway:          gatewayClient,
		playbooks: playbooksService.NewPlaybookAssigner(
			log,
			playbooksDal.NewPlaybooksFirestoreWithClient(conn.Firestore),
		),
		notifier: notification.NewNotificationService(log, sendgridMailer),
	}, nil
}

// GetSubscription returns the organization's subscription record.
func (s *SubscriptionService) GetSubscription(ctx context.Context, orgID string) (*domain.Subscription, error) {
	return s.subscriptionsDAL.Get(ctx, orgID)
}

// ListInvoices returns the organization's invoices, newest first up to limit.
func (s *SubscriptionService) ListInvoices(ctx context.Context, orgID string, limit int) ([]*invoicesDomain.Invoice, error) {
	return s.invoicesDAL.ListByOrg(ctx, orgID, limit)
}

// recordInvoice appends a billing record. Invoice write failures are logged
// and swallowed; they never fail the owning operation.
func (s *SubscriptionService) recordInvoice(ctx context.Context, orgID string, amount int64, description string, tierID tiersDomain.TierID) {
	l := s.loggerProvider(ctx)

	invoice := &invoicesDomain.Invoice{
		OrgID:       orgID,
		Amount:      amount,
		Description: description,
		TierID:      string(tierID),
	}

	if _, err := s.invoicesDAL.Add(ctx, invoice); err != nil {
		l.Errorf("failed to record invoice for org %s: %v", orgID, err)
	}
}

// assignPlaybooks provisions the playbook set for the tier's mapped playbook
// tier. Failures are logged and swallowed.
func (s *SubscriptionService) assignPlaybooks(ctx context.Context, orgID string, tierID tiersDomain.TierID) {
	l := s.loggerProvider(ctx)

	playbookTier, ok := tiersDomain.PlaybookTier(tierID)
	if !ok {
		l.Errorf("no playbook tier mapping for tier %s", tierID)
		return
	}

	if err := s.playbooks.AssignTierPlaybooks(ctx, orgID, playbookTier); err != nil {
		l.Errorf("failed to assign %s playbooks to org %s: %v", playbookTier, orgID, err)
	}
}
