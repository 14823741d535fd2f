package models

// Tier is the subscription level that gates feature access.
type Tier string

const (
	TierFree    Tier = "free"
	TierPlus    Tier = "plus"
	TierPremium Tier = "premium"
)

// Valid reports whether the tier is one of the known levels.
func (t Tier) Valid() bool {
	switch t {
	case TierFree, TierPlus, TierPremium:
		return true
	}
	return false
}
