package promo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	tiers "github.com/leafrank/backend/tiers/domain"
)

func TestValidate(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

	type args struct {
		code     string
		tierID   tiers.TierID
		redeemed int
		now      time.Time
	}

	tests := []struct {
		name        string
		args        args
		expectedErr error
	}{
		{
			name: "unknown code",
			args: args{code: "NOPE", tierID: tiers.TierPro, now: now},

			expectedErr: ErrUnknownCode,
		},
		{
			name:        "expired code",
			args:        args{code: "MJBIZ25", tierID: tiers.TierPro, now: time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC)},
			expectedErr: ErrExpired,
		},
		{
			name:        "tier not applicable",
			args:        args{code: "EMPIRE10", tierID: tiers.TierPro, now: now},
			expectedErr: ErrTierInapplicable,
		},
		{
			name:        "redemptions exhausted",
			args:        args{code: "LAUNCH2", tierID: tiers.TierPro, redeemed: 200, now: now},
			expectedErr: ErrExhausted,
		},
		{
			name: "valid free months promo",
			args: args{code: "LAUNCH2", tierID: tiers.TierGrowth, redeemed: 12, now: now},
		},
		{
			name: "valid percent off promo",
			args: args{code: "MJBIZ25", tierID: tiers.TierEmpire, now: now},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Validate(tt.args.code, tt.args.tierID, tt.args.redeemed, tt.args.now)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.args.code, c.Code)
		})
	}
}

func TestDiscountedAmount(t *testing.T) {
	percentOff, _ := Get("MJBIZ25")
	assert.Equal(t, int64(75), percentOff.DiscountedAmount(100))
	assert.Equal(t, int64(187), percentOff.DiscountedAmount(249))

	freeMonths, _ := Get("LAUNCH2")
	assert.Equal(t, int64(99), freeMonths.DiscountedAmount(99))
}
