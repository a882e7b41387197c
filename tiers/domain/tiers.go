// Package domain holds the static subscription tier catalog.
package domain

type TierID string

const (
	TierScout  TierID = "scout"
	TierPro    TierID = "pro"
	TierGrowth TierID = "growth"
	TierEmpire TierID = "empire"
)

// Allocations are the monthly feature quotas attached to a tier.
type Allocations struct {
	Emails      int64 `json:"emails" firestore:"emails"`
	SMSCustomer int64 `json:"smsCustomer" firestore:"smsCustomer"`
	Competitors int64 `json:"competitors" firestore:"competitors"`
	Playbooks   int64 `json:"playbooks" firestore:"playbooks"`
	Locations   int64 `json:"locations" firestore:"locations"`
	SEOPages    int64 `json:"seoPages" firestore:"seoPages"`
}

// Tier is a subscription plan level. The catalog is static configuration:
// tiers are never created or mutated at runtime.
type Tier struct {
	ID          TierID      `json:"id" firestore:"id"`
	Name        string      `json:"name" firestore:"name"`
	Price       int64       `json:"price" firestore:"price"`
	Allocations Allocations `json:"allocations" firestore:"allocations"`
}

// rank defines the total order used for upgrade eligibility.
var rank = map[TierID]int{
	TierScout:  0,
	TierPro:    1,
	TierGrowth: 2,
	TierEmpire: 3,
}

// Tiers is the catalog, keyed by tier id. Prices are monthly, in whole
// dollars.
var Tiers = map[TierID]Tier{
	TierScout: {
		ID:    TierScout,
		Name:  "Scout",
		Price: 0,
		Allocations: Allocations{
			Emails:      500,
			SMSCustomer: 0,
			Competitors: 1,
			Playbooks:   2,
			Locations:   1,
			SEOPages:    10,
		},
	},
	TierPro: {
		ID:    TierPro,
		Name:  "Pro",
		Price: 99,
		Allocations: Allocations{
			Emails:      5000,
			SMSCustomer: 1000,
			Competitors: 3,
			Playbooks:   10,
			Locations:   3,
			SEOPages:    100,
		},
	},
	TierGrowth: {
		ID:    TierGrowth,
		Name:  "Growth",
		Price: 249,
		Allocations: Allocations{
			Emails:      20000,
			SMSCustomer: 5000,
			Competitors: 10,
			Playbooks:   25,
			Locations:   10,
			SEOPages:    500,
		},
	},
	TierEmpire: {
		ID:    TierEmpire,
		Name:  "Empire",
		Price: 499,
		Allocations: Allocations{
			Emails:      100000,
			SMSCustomer: 25000,
			Competitors: 25,
			Playbooks:   100,
			Locations:   50,
			SEOPages:    2500,
		},
	},
}

// playbookTiers maps a subscription tier to the playbook template set it is
// provisioned with. The mapping is not 1:1 (growth inherits pro's set), so it
// must always be looked up, never derived from the tier id.
var playbookTiers = map[TierID]TierID{
	TierScout:  TierScout,
	TierPro:    TierPro,
	TierGrowth: TierPro,
	TierEmpire: TierEmpire,
}

// Get returns the tier for the given id.
func Get(id TierID) (Tier, bool) {
	t, ok := Tiers[id]
	return t, ok
}

// IsValid reports whether id names a cataloged tier.
func IsValid(id TierID) bool {
	_, ok := rank[id]
	return ok
}

// IsPaid reports whether the tier carries a monthly price.
func IsPaid(id TierID) bool {
	t, ok := Tiers[id]
	return ok && t.Price > 0
}

// Less reports whether a sorts strictly below b in the tier order.
func Less(a, b TierID) bool {
	ra, aok := rank[a]
	rb, bok := rank[b]

	return aok && bok && ra < rb
}

// PlaybookTier returns the playbook template tier provisioned for the given
// subscription tier.
func PlaybookTier(id TierID) (TierID, bool) {
	pt, ok := playbookTiers[id]
	return pt, ok
}
