package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/leafrank/backend/framework/connection"
	lfFirestore "github.com/leafrank/backend/pkg/firestore"
	"github.com/leafrank/backend/pkg/firestore/iface"
	"github.com/leafrank/backend/promo"
	"github.com/leafrank/backend/subscription/domain"
)

const (
	subscriptionsCollection   = "subscriptions"
	organizationsCollection   = "organizations"
	subscriptionSubcollection = "subscription"
	currentDoc                = "current"
)

var ErrInvalidOrgID = errors.New("invalid organization id")

// SubscriptionsFirestore is used to interact with subscriptions stored on Firestore.
// Every subscription is stored in two places: the flat subscriptions collection
// (cross-org queries) and organizations/{orgID}/subscription/current (org-scoped
// reads). Writes go to both in a single batch so neither copy can drift.
type SubscriptionsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

// NewSubscriptionsFirestore returns a new SubscriptionsFirestore instance with given project id.
func NewSubscriptionsFirestore(ctx context.Context, projectID string) (*SubscriptionsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewSubscriptionsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewSubscriptionsFirestoreWithClient returns a new SubscriptionsFirestore using given client.
func NewSubscriptionsFirestoreWithClient(fun connection.FirestoreFromContextFun) *SubscriptionsFirestore {
	return &SubscriptionsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   lfFirestore.DocumentHandler{},
	}
}

func (d *SubscriptionsFirestore) flatRef(ctx context.Context, orgID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(subscriptionsCollection).Doc(orgID)
}

func (d *SubscriptionsFirestore) mirrorRef(ctx context.Context, orgID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).
		Collection(organizationsCollection).
		Doc(orgID).
		Collection(subscriptionSubcollection).
		Doc(currentDoc)
}

// Get reads the subscription from the flat collection, the source used for
// all reads.
func (d *SubscriptionsFirestore) Get(ctx context.Context, orgID string) (*domain.Subscription, error) {
	if orgID == "" {
		return nil, ErrInvalidOrgID
	}

	snap, err := d.documentsHandler.Get(ctx, d.flatRef(ctx, orgID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, lfFirestore.ErrNotFound
		}

		return nil, err
	}

	var subscription domain.Subscription

	if err := snap.DataTo(&subscription); err != nil {
		return nil, err
	}

	subscription.ID = snap.ID()

	return &subscription, nil
}

// Set writes the full subscription document to both mirror locations in one
// batch commit.
func (d *SubscriptionsFirestore) Set(ctx context.Context, orgID string, subscription *domain.Subscription) error {
	if orgID == "" {
		return ErrInvalidOrgID
	}

	batch := d.firestoreClientFun(ctx).Batch()
	batch.Set(d.flatRef(ctx, orgID), subscription)
	batch.Set(d.mirrorRef(ctx, orgID), subscription)

	_, err := batch.Commit(ctx)

	return err
}

// Update applies a partial update to both mirror locations in one batch commit.
func (d *SubscriptionsFirestore) Update(ctx context.Context, orgID string, fields map[string]interface{}) error {
	if orgID == "" {
		return ErrInvalidOrgID
	}

	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}

	batch := d.firestoreClientFun(ctx).Batch()
	batch.Update(d.flatRef(ctx, orgID), updates)
	batch.Update(d.mirrorRef(ctx, orgID), updates)

	_, err := batch.Commit(ctx)

	return err
}

func (d *SubscriptionsFirestore) list(ctx context.Context, query firestore.Query) ([]*domain.Subscription, error) {
	snaps, err := d.documentsHandler.GetAll(query.Documents(ctx))
	if err != nil {
		return nil, err
	}

	subscriptions := make([]*domain.Subscription, 0, len(snaps))

	for _, snap := range snaps {
		var subscription domain.Subscription

		if err := snap.DataTo(&subscription); err != nil {
			return nil, err
		}

		subscription.ID = snap.ID()
		subscriptions = append(subscriptions, &subscription)
	}

	return subscriptions, nil
}

// CountByPromoCode returns how many subscriptions have redeemed the given
// promo code, canceled ones included.
func (d *SubscriptionsFirestore) CountByPromoCode(ctx context.Context, code string) (int, error) {
	query := d.firestoreClientFun(ctx).
		Collection(subscriptionsCollection).
		Where("promoCode", "==", code)

	snaps, err := d.documentsHandler.GetAll(query.Documents(ctx))
	if err != nil {
		return 0, err
	}

	return len(snaps), nil
}

// ListActive returns every active subscription.
func (d *SubscriptionsFirestore) ListActive(ctx context.Context) ([]*domain.Subscription, error) {
	query := d.firestoreClientFun(ctx).
		Collection(subscriptionsCollection).
		Where("status", "==", string(domain.StatusActive))

	return d.list(ctx, query)
}

// ListActiveWithFreeMonths returns active subscriptions that still have a
// free_months promo attached.
func (d *SubscriptionsFirestore) ListActiveWithFreeMonths(ctx context.Context) ([]*domain.Subscription, error) {
	query := d.firestoreClientFun(ctx).
		Collection(subscriptionsCollection).
		Where("status", "==", string(domain.StatusActive)).
		Where("promoType", "==", string(promo.TypeFreeMonths)).
		Where("promoMonthsRemaining", ">", 0)

	return d.list(ctx, query)
}

// ListCancelPending returns canceled subscriptions whose gateway-side cancel
// has not been confirmed yet.
func (d *SubscriptionsFirestore) ListCancelPending(ctx context.Context) ([]*domain.Subscription, error) {
	query := d.firestoreClientFun(ctx).
		Collection(subscriptionsCollection).
		Where("status", "==", string(domain.StatusCanceled)).
		Where("gatewayState", "==", string(domain.GatewayStateCancelPending))

	return d.list(ctx, query)
}
