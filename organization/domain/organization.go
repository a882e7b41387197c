package domain

import "time"

// Organization is a dispensary or brand tenant.
type Organization struct {
	ID           string    `json:"id" firestore:"-"`
	Name         string    `json:"name" firestore:"name"`
	OwnerEmail   string    `json:"ownerEmail" firestore:"ownerEmail"`
	OwnerName    string    `json:"ownerName" firestore:"ownerName"`
	BillingEmail string    `json:"billingEmail" firestore:"billingEmail"`
	SlackWebhook string    `json:"slackWebhook,omitempty" firestore:"slackWebhook"`
	CreatedAt    time.Time `json:"createdAt" firestore:"createdAt"`
}

// BillingContact returns the address notifications about billing go to,
// falling back to the owner when no dedicated billing contact is set.
func (o *Organization) BillingContact() string {
	if o.BillingEmail != "" {
		return o.BillingEmail
	}

	return o.OwnerEmail
}
