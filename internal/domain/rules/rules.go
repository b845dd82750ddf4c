// Package rules contains the pure calculation logic for game mechanics.
// This package is PURE and must NOT import any infrastructure packages.
package rules

import "math"

// Interest rate tuning.
const (
	BaseInterestRate     = 0.08
	MaxInterestRate      = 0.35 // hard cap after repeated borrowing
	MaxModerationRate    = 0.25 // cap when moderation spending forces debt
	BorrowRateIncrease   = 0.03
	ModerateRateIncrease = 0.02
)

// Debt pressure: above this much debt the inner circle starts to crack.
const (
	DebtLoyaltyFloor      = 2000
	DebtLoyaltyPenaltyCap = 3
)

// BlindPenalty is the fixed cost of executing a plan without spinning.
const BlindPenalty = 5

// LoyaltyThreshold is the loyalty bar for winning a new term. High chaos
// lowers the bar: a chaotic incumbent gets re-elected on less loyalty.
// Non-increasing in chaos, bounded in [65,87].
func LoyaltyThreshold(chaos int) int {
	reduction := int(math.Floor(float64(chaos) / 100.0 * 22.0))
	threshold := 87 - reduction
	if threshold < 65 {
		threshold = 65
	}
	return threshold
}

// MinimumScore is the extra score required at term end when the player can
// rely on neither chaos nor loyalty: low chaos AND low loyalty means actual
// achievements are needed.
func MinimumScore(chaos, loyalty int) int {
	if chaos < 30 && loyalty < 50 {
		return ((30 - chaos) + (50 - loyalty)) * 5
	}
	return 0
}

// EffectiveInterestRate adds the chaos and valuation-deficit pressure to the
// base rate: up to +5% at max chaos, up to +3% at minimum coin valuation.
// A valuation above par grants no discount.
func EffectiveInterestRate(base float64, chaos, coinValuation int) float64 {
	chaosBonus := float64(chaos) / 100.0 * 0.05
	deficit := 100 - coinValuation
	if deficit < 0 {
		deficit = 0
	}
	valuationBonus := float64(deficit) / 50.0 * 0.03
	return base + chaosBonus + valuationBonus
}

// Interest computes one turn of interest on the given debt.
func Interest(debt int, rate float64) int {
	if debt <= 0 {
		return 0
	}
	return int(math.Floor(float64(debt) * rate))
}

// DebtLoyaltyPenalty is the loyalty hit for carrying heavy debt, proportional
// and capped.
func DebtLoyaltyPenalty(debt int) int {
	if debt <= DebtLoyaltyFloor {
		return 0
	}
	penalty := debt / DebtLoyaltyFloor
	if penalty > DebtLoyaltyPenaltyCap {
		penalty = DebtLoyaltyPenaltyCap
	}
	return penalty
}

// AdjustedCost scales a base cost by the inverse of coin valuation: at 100%
// valuation cost is unchanged, at 50% it doubles. Low support makes
// everything half again as expensive.
func AdjustedCost(baseCost, coinValuation, support int) int {
	multiplier := 100.0 / float64(coinValuation)
	if support < 30 {
		multiplier *= 1.5
	}
	return int(math.Ceil(float64(baseCost) * multiplier))
}

// BlindScore computes the deterministic no-spin score: a weighted read of the
// current position plus a bounded random term, minus the blind penalty,
// clamped to [0,100]. roll is uniform in [0,1).
func BlindScore(chaos, support, loyalty int, roll float64) int {
	base := int(math.Floor(0.25*float64(chaos) + 0.20*float64(support) + 0.20*float64(loyalty)))
	random := int(math.Floor(roll * 26)) // 0-25
	score := base + random - BlindPenalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score
}
