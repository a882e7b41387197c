package dal

import (
	"context"
	"errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/leafrank/backend/framework/connection"
	"github.com/leafrank/backend/organization/domain"
	lfFirestore "github.com/leafrank/backend/pkg/firestore"
	"github.com/leafrank/backend/pkg/firestore/iface"
)

const organizationsCollection = "organizations"

var ErrInvalidOrgID = errors.New("invalid organization id")

// OrganizationsFirestore is used to interact with organizations stored on Firestore.
type OrganizationsFirestore struct {
	firestoreClientFun connection.FirestoreFromContextFun
	documentsHandler   iface.DocumentsHandler
}

// NewOrganizationsFirestore returns a new OrganizationsFirestore instance with given project id.
func NewOrganizationsFirestore(ctx context.Context, projectID string) (*OrganizationsFirestore, error) {
	fs, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return NewOrganizationsFirestoreWithClient(
		func(ctx context.Context) *firestore.Client {
			return fs
		},
	), nil
}

// NewOrganizationsFirestoreWithClient returns a new OrganizationsFirestore using given client.
func NewOrganizationsFirestoreWithClient(fun connection.FirestoreFromContextFun) *OrganizationsFirestore {
	return &OrganizationsFirestore{
		firestoreClientFun: fun,
		documentsHandler:   lfFirestore.DocumentHandler{},
	}
}

func (d *OrganizationsFirestore) GetRef(ctx context.Context, orgID string) *firestore.DocumentRef {
	return d.firestoreClientFun(ctx).Collection(organizationsCollection).Doc(orgID)
}

// GetOrganization returns the organization's data.
func (d *OrganizationsFirestore) GetOrganization(ctx context.Context, orgID string) (*domain.Organization, error) {
	if orgID == "" {
		return nil, ErrInvalidOrgID
	}

	snap, err := d.documentsHandler.Get(ctx, d.GetRef(ctx, orgID))
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, lfFirestore.ErrNotFound
		}

		return nil, err
	}

	var org domain.Organization

	if err := snap.DataTo(&org); err != nil {
		return nil, err
	}

	org.ID = snap.ID()

	return &org, nil
}
