//go:generate mockery --name Assigner --output ./mocks
package service

import (
	"context"
	"fmt"

	"github.com/leafrank/backend/logger"
	"github.com/leafrank/backend/playbooks/dal"
	tiersDomain "github.com/leafrank/backend/tiers/domain"
)

type Assigner interface {
	AssignTierPlaybooks(ctx context.Context, orgID string, playbookTier tiersDomain.TierID) error
}

type PlaybookAssigner struct {
	loggerProvider logger.Provider
	playbooksDAL   dal.Playbooks
}

func NewPlaybookAssigner(loggerProvider logger.Provider, playbooksDAL dal.Playbooks) *PlaybookAssigner {
	return &PlaybookAssigner{
		loggerProvider: loggerProvider,
		playbooksDAL:   playbooksDAL,
	}
}

// AssignTierPlaybooks copies the templates for the given playbook tier into
// the organization. Callers pass an already-mapped playbook tier, not the
// subscription tier.
func (s *PlaybookAssigner) AssignTierPlaybooks(ctx context.Context, orgID string, playbookTier tiersDomain.TierID) error {
	l := s.loggerProvider(ctx)

	if !tiersDomain.IsValid(playbookTier) {
		return fmt.Errorf("unknown playbook tier %q", playbookTier)
	}

	templates, err := s.playbooksDAL.ListTemplatesByTier(ctx, string(playbookTier))
	if err != nil {
		return err
	}

	if len(templates) == 0 {
		l.Warningf("no playbook templates found for tier %s", playbookTier)
		return nil
	}

	if err := s.playbooksDAL.SetOrgPlaybooks(ctx, orgID, templates); err != nil {
		return err
	}

	l.Infof("assigned %d %s playbooks to org %s", len(templates), playbookTier, orgID)

	return nil
}
