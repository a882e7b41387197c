// Package promo holds the static promo code registry and validation rules.
package promo

import (
	"errors"
	"time"

	tiers "github.com/leafrank/backend/tiers/domain"
)

type Type string

const (
	TypeFreeMonths Type = "free_months"
	TypePercentOff Type = "percent_off"
)

// Validation errors. Callers treat these as a structured result, not a fault
// (an invalid promo simply fails to apply).
var (
	ErrUnknownCode      = errors.New("unknown promo code")
	ErrExpired          = errors.New("promo code expired")
	ErrTierInapplicable = errors.New("promo code does not apply to this tier")
	ErrExhausted        = errors.New("promo code redemption limit reached")
)

// Code is a static promo definition. Value is months for free_months promos
// and a percentage (1-100) for percent_off promos.
type Code struct {
	Code                 string
	Type                 Type
	Value                int
	MaxRedemptions       *int
	ApplicableTiers      []tiers.TierID
	ExpiresAt            *time.Time
	RequiresVerification bool
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

// registry is the active promo catalog. Codes are uppercase.
var registry = map[string]Code{
	"LAUNCH2": {
		Code:            "LAUNCH2",
		Type:            TypeFreeMonths,
		Value:           2,
		MaxRedemptions:  intPtr(200),
		ApplicableTiers: []tiers.TierID{tiers.TierPro, tiers.TierGrowth},
	},
	"MJBIZ25": {
		Code:                 "MJBIZ25",
		Type:                 TypePercentOff,
		Value:                25,
		MaxRedemptions:       nil,
		ApplicableTiers:      []tiers.TierID{tiers.TierPro, tiers.TierGrowth, tiers.TierEmpire},
		ExpiresAt:            timePtr(time.Date(2026, time.December, 31, 23, 59, 59, 0, time.UTC)),
		RequiresVerification: true,
	},
	"EMPIRE10": {
		Code:            "EMPIRE10",
		Type:            TypePercentOff,
		Value:           10,
		MaxRedemptions:  intPtr(50),
		ApplicableTiers: []tiers.TierID{tiers.TierEmpire},
	},
}

// Get returns the promo code definition, if registered.
func Get(code string) (Code, bool) {
	c, ok := registry[code]
	return c, ok
}

// Validate checks the code against the registry for the given tier, current
// redemption count and time. It returns the promo definition on success.
func Validate(code string, tierID tiers.TierID, redeemed int, now time.Time) (Code, error) {
	c, ok := registry[code]
	if !ok {
		return Code{}, ErrUnknownCode
	}

	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return Code{}, ErrExpired
	}

	applicable := false

	for _, t := range c.ApplicableTiers {
		if t == tierID {
			applicable = true
			break
		}
	}

	if !applicable {
		return Code{}, ErrTierInapplicable
	}

	if c.MaxRedemptions != nil && redeemed >= *c.MaxRedemptions {
		return Code{}, ErrExhausted
	}

	return c, nil
}

// DiscountedAmount returns the monthly amount after applying the promo.
// free_months promos do not change the recurring amount (the free period is
// tracked on the subscription); percent_off promos reduce it.
func (c Code) DiscountedAmount(amount int64) int64 {
	if c.Type != TypePercentOff {
		return amount
	}

	return amount - amount*int64(c.Value)/100
}
