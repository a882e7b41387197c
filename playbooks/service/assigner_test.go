package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/leafrank/backend/logger"
	loggerMocks "github.com/leafrank/backend/logger/mocks"
	dalMocks "github.com/leafrank/backend/playbooks/dal/mocks"
	"github.com/leafrank/backend/playbooks/domain"
	tiersDomain "github.com/leafrank/backend/tiers/domain"
)

func testLoggerProvider() logger.Provider {
	return func(ctx context.Context) logger.ILogger {
		l := &loggerMocks.ILogger{}
		l.On("Infof", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()
		l.On("Warningf", mock.Anything, mock.Anything).Maybe()

		return l
	}
}

func TestPlaybookAssigner_AssignTierPlaybooks(t *testing.T) {
	ctx := context.Background()

	templates := []*domain.Playbook{
		{ID: "pb_seo_basics", Name: "SEO Basics", Tier: "pro"},
		{ID: "pb_review_engine", Name: "Review Engine", Tier: "pro"},
	}

	t.Run("copies templates for the tier", func(t *testing.T) {
		playbooksDAL := dalMocks.NewPlaybooks(t)
		playbooksDAL.On("ListTemplatesByTier", ctx, "pro").Return(templates, nil).Once()
		playbooksDAL.On("SetOrgPlaybooks", ctx, "org_thrive_syracuse", templates).Return(nil).Once()

		s := NewPlaybookAssigner(testLoggerProvider(), playbooksDAL)

		err := s.AssignTierPlaybooks(ctx, "org_thrive_syracuse", tiersDomain.TierPro)
		assert.NoError(t, err)
	})

	t.Run("unknown tier", func(t *testing.T) {
		playbooksDAL := dalMocks.NewPlaybooks(t)

		s := NewPlaybookAssigner(testLoggerProvider(), playbooksDAL)

		err := s.AssignTierPlaybooks(ctx, "org_thrive_syracuse", "platinum")
		assert.Error(t, err)
	})

	t.Run("no templates is not an error", func(t *testing.T) {
		playbooksDAL := dalMocks.NewPlaybooks(t)
		playbooksDAL.On("ListTemplatesByTier", ctx, "scout").Return([]*domain.Playbook{}, nil).Once()

		s := NewPlaybookAssigner(testLoggerProvider(), playbooksDAL)

		err := s.AssignTierPlaybooks(ctx, "org_thrive_syracuse", tiersDomain.TierScout)
		assert.NoError(t, err)
	})

	t.Run("list failure propagates", func(t *testing.T) {
		playbooksDAL := dalMocks.NewPlaybooks(t)
		playbooksDAL.On("ListTemplatesByTier", ctx, "empire").Return(nil, fmt.Errorf("unavailable")).Once()

		s := NewPlaybookAssigner(testLoggerProvider(), playbooksDAL)

		err := s.AssignTierPlaybooks(ctx, "org_thrive_syracuse", tiersDomain.TierEmpire)
		assert.Error(t, err)
	})
}
