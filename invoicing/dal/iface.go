//go:generate mockery --name Invoices --output ./mocks
package dal

import (
	"context"

	"github.com/leafrank/backend/invoicing/domain"
)

type Invoices interface {
	Add(ctx context.Context, invoice *domain.Invoice) (string, error)
	ListByOrg(ctx context.Context, orgID string, limit int) ([]*domain.Invoice, error)
}
