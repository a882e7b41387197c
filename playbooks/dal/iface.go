//go:generate mockery --name Playbooks --output ./mocks
package dal

import (
	"context"

	"github.com/leafrank/backend/playbooks/domain"
)

type Playbooks interface {
	ListTemplatesByTier(ctx context.Context, playbookTier string) ([]*domain.Playbook, error)
	SetOrgPlaybooks(ctx context.Context, orgID string, playbooks []*domain.Playbook) error
}
