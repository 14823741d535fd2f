package services

import "budgetwise/internal/models"

// Feature names a gated capability.
type Feature string

const (
	FeatureCustomBudgets         Feature = "custom_budgets"
	FeatureRecurringTransactions Feature = "recurring_transactions"
	FeatureRolloverAutomation    Feature = "rollover_automation"
	FeatureExport                Feature = "export"
)

// Limit names a counted resource with a per-tier ceiling.
type Limit string

// LimitCustomBudgets caps how many custom budgets a tier may hold.
const LimitCustomBudgets Limit = "custom_budgets"

// unlimited marks a tier with no ceiling for a limit.
const unlimited = -1

var tierFeatures = map[models.Tier]map[Feature]bool{
	models.TierFree: {
		FeatureCustomBudgets: true,
		FeatureExport:        true,
	},
	models.TierPlus: {
		FeatureCustomBudgets:         true,
		FeatureExport:                true,
		FeatureRecurringTransactions: true,
	},
	models.TierPremium: {
		FeatureCustomBudgets:         true,
		FeatureExport:                true,
		FeatureRecurringTransactions: true,
		FeatureRolloverAutomation:    true,
	},
}

var tierLimits = map[models.Tier]map[Limit]int{
	models.TierFree:    {LimitCustomBudgets: 3},
	models.TierPlus:    {LimitCustomBudgets: 10},
	models.TierPremium: {LimitCustomBudgets: unlimited},
}

// featureService gates operations by subscription tier.
type featureService struct{}

// NewFeatureService creates a new FeatureServicer.
func NewFeatureService() FeatureServicer {
	return &featureService{}
}

// HasAccessTo reports whether the tier includes the feature.
func (s *featureService) HasAccessTo(tier models.Tier, feature Feature) bool {
	return tierFeatures[tier][feature]
}

// IsLimitReached reports whether creating one more of the counted resource
// would exceed the tier's ceiling.
func (s *featureService) IsLimitReached(tier models.Tier, limit Limit, currentCount int) bool {
	ceiling, ok := tierLimits[tier][limit]
	if !ok || ceiling == unlimited {
		return false
	}
	return currentCount >= ceiling
}
