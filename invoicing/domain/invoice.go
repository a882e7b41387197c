package domain

import "time"

const StatusPending = "pending"

// Invoice is an append-only billing record. Invoices are never updated or
// deleted after creation.
type Invoice struct {
	ID          string    `firestore:"-"`
	OrgID       string    `firestore:"orgId"`
	Amount      int64     `firestore:"amount"`
	Description string    `firestore:"description"`
	Status      string    `firestore:"status"`
	TierID      string    `firestore:"tierId"`
	CreatedAt   time.Time `firestore:"createdAt"`
}
