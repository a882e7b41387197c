package domain

import (
	"errors"
	"time"

	"github.com/leafrank/backend/promo"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusCanceled Status = "canceled"
)

// GatewayState tracks whether the local record agrees with Authorize.net.
// Cancellation flips the local record first; cancel_pending means the gateway
// side has not been confirmed yet and the reconciliation job owns the retry.
type GatewayState string

const (
	GatewayStateSynced        GatewayState = "synced"
	GatewayStateCancelPending GatewayState = "cancel_pending"
	GatewayStateManualReview  GatewayState = "manual_review"
)

var (
	ErrSubscriptionExists   = errors.New("organization already has a subscription")
	ErrNoActiveSubscription = errors.New("organization has no active subscription")
	ErrInvalidTier          = errors.New("invalid tier")
	ErrNotAnUpgrade         = errors.New("target tier is not higher than the current tier")
)

type UpgradeHistoryEntry struct {
	FromTier  string    `firestore:"fromTier"`
	ToTier    string    `firestore:"toTier"`
	Timestamp time.Time `firestore:"timestamp"`
}

type Usage struct {
	Emails      int64 `firestore:"emails"`
	SMSCustomer int64 `firestore:"smsCustomer"`
	SEOPages    int64 `firestore:"seoPages"`
}

type Subscription struct {
	ID     string `firestore:"-"`
	TierID string `firestore:"tierId"`
	Status Status `firestore:"status"`

	// Amount is the recurring monthly charge in whole dollars, after any
	// percent_off promo is applied.
	Amount int64 `firestore:"amount"`

	AuthorizeNetSubscriptionID string `firestore:"authorizeNetSubscriptionId"`
	CustomerProfileID          string `firestore:"customerProfileId"`
	CustomerPaymentProfileID   string `firestore:"customerPaymentProfileId"`

	PromoCode            string     `firestore:"promoCode,omitempty"`
	PromoType            promo.Type `firestore:"promoType,omitempty"`
	PromoMonthsRemaining int64      `firestore:"promoMonthsRemaining,omitempty"`

	UpgradeHistory []UpgradeHistoryEntry `firestore:"upgradeHistory,omitempty"`

	GatewayState   GatewayState `firestore:"gatewayState"`
	CancelAttempts int64        `firestore:"cancelAttempts,omitempty"`

	Usage            Usage      `firestore:"usage"`
	AlertSentAt80Pct bool       `firestore:"alertSentAt80Percent"`
	CreatedAt        time.Time  `firestore:"createdAt"`
	CanceledAt       *time.Time `firestore:"canceledAt,omitempty"`
}

func (s *Subscription) IsActive() bool {
	return s != nil && s.Status == StatusActive
}

// HasFreeMonths reports whether a free_months promo still has months left.
func (s *Subscription) HasFreeMonths() bool {
	return s.PromoType == promo.TypeFreeMonths && s.PromoMonthsRemaining > 0
}

// CreateSubscriptionResult is returned to the UI layer; validation and
// gateway failures are reported in Error rather than raised, so forms can
// render them inline.
type CreateSubscriptionResult struct {
	Success        bool   `json:"success"`
	SubscriptionID string `json:"subscriptionId,omitempty"`
	Amount         int64  `json:"amount,omitempty"`
	PromoApplied   string `json:"promoApplied,omitempty"`
	Error          string `json:"error,omitempty"`
}

type UpgradeSubscriptionResult struct {
	Success   bool   `json:"success"`
	NewAmount int64  `json:"newAmount,omitempty"`
	Error     string `json:"error,omitempty"`
}

type CancelSubscriptionResult struct {
	Success bool `json:"success"`
}

type CreateSubscriptionRequest struct {
	OrgID     string `json:"-"`
	TierID    string `json:"tierId"`
	PromoCode string `json:"promoCode"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Country   string `json:"country"`

	DataDescriptor string `json:"dataDescriptor"`
	DataValue      string `json:"dataValue"`
}

type UpgradeSubscriptionRequest struct {
	OrgID  string `json:"-"`
	TierID string `json:"tierId"`
}
