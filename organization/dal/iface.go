package dal

import (
	"context"

	"cloud.google.com/go/firestore"

	"github.com/leafrank/backend/organization/domain"
)

//go:generate mockery --name Organizations --output ./mocks
type Organizations interface {
	GetRef(ctx context.Context, orgID string) *firestore.DocumentRef
	GetOrganization(ctx context.Context, orgID string) (*domain.Organization, error)
}
