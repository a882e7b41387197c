package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierOrder(t *testing.T) {
	assert.True(t, Less(TierScout, TierPro))
	assert.True(t, Less(TierPro, TierGrowth))
	assert.True(t, Less(TierGrowth, TierEmpire))

	assert.False(t, Less(TierGrowth, TierGrowth))
	assert.False(t, Less(TierEmpire, TierScout))
	assert.False(t, Less("unknown", TierPro))
}

func TestPlaybookTierMapping(t *testing.T) {
	// growth inherits pro's playbook set, the rest map to themselves
	pt, ok := PlaybookTier(TierGrowth)
	assert.True(t, ok)
	assert.Equal(t, TierPro, pt)

	pt, ok = PlaybookTier(TierEmpire)
	assert.True(t, ok)
	assert.Equal(t, TierEmpire, pt)

	_, ok = PlaybookTier("unknown")
	assert.False(t, ok)
}

func TestAllocations(t *testing.T) {
	pro, ok := Get(TierPro)
	assert.True(t, ok)
	assert.Equal(t, int64(5000), pro.Allocations.Emails)

	// allocations compare directly against tracked usage counters
	var used int64 = 4200
	assert.Greater(t, pro.Allocations.Emails, used)
}

func TestIsPaid(t *testing.T) {
	assert.False(t, IsPaid(TierScout))
	assert.True(t, IsPaid(TierPro))
	assert.True(t, IsPaid(TierEmpire))
	assert.False(t, IsPaid("unknown"))
}
