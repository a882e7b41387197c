package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/leafrank/backend/framework/connection"
	"github.com/leafrank/backend/invoicing/domain"
	lfFirestore "github.com/leafrank/backend/pkg/firestore"
	"github.com/leafrank/backend/pkg/firestore/iface"
)

const invoicesCollection = "invoices"

type InvoicesFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

func NewInvoicesFirestore(ctx context.Context, projectID string) (*InvoicesFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewInvoicesFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

func NewInvoicesFirestoreWithClient(fun connection.FirestoreFromContextFun) *InvoicesFirestore {
	return &InvoicesFirestore{
		firestoreClientFun: fun,
		documentsHandler:   lfFirestore.DocumentHandler{},
	}
}

// Add appends an invoice record. Status and createdAt are stamped here so
// callers only describe the charge.
func (d *InvoicesFirestore) Add(ctx context.Context, invoice *domain.Invoice) (string, error) {
	if invoice.Status == "" {
		invoice.Status = domain.StatusPending
	}

	if invoice.CreatedAt.IsZero() {
		invoice.CreatedAt = time.Now().UTC()
	}

	ref, _, err := d.documentsHandler.Add(ctx, d.firestoreClientFun(ctx).Collection(invoicesCollection), invoice)
	if err != nil {
		return "", err
	}

	return ref.ID, nil
}

func (d *InvoicesFirestore) ListByOrg(ctx context.Context, orgID string, limit int) ([]*domain.Invoice, error) {
	query := d.
		firestoreClientFun(ctx).
		Collection(invoicesCollection).
		Where("orgId", "==", orgID)

	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)

	snaps, err := d.documentsHandler.GetAll(iter)
	if err != nil {
		return nil, err
	}

	invoices := make([]*domain.Invoice, len(snaps))

	for i, snap := range snaps {
		var invoice domain.Invoice
		if err := snap.DataTo(&invoice); err != nil {
			return nil, err
		}

		invoice.ID = snap.ID()
		invoices[i] = &invoice
	}

	return invoices, nil
}
