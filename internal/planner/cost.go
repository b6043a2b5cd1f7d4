package planner

import (
	"math/rand"
	"strings"
)

// EstimateCost returns the per-person cost of one activity, clamped to
// [CostFloorRatio, CostCeilingRatio] of the daily per-person budget.
func (g *Generator) EstimateCost(activityType string, place Place, params TripParameters, dailyBudget float64, rng *rand.Rand) float64 {
	t := g.cfg.Tables

	cost, ok := t.BaseCosts[activityType]
	if !ok {
		cost = t.DefaultBaseCost
	}

	category := fold(place.Category)
	for _, m := range t.CategoryMultipliers {
		if category != "" && strings.Contains(category, m.Keyword) {
			cost *= m.Factor
			break
		}
	}

	requirements := fold(params.SpecialRequirements)
	for _, m := range t.RequirementMultipliers {
		if containsAny(requirements, m.Keywords) {
			cost *= m.Factor
		}
	}

	if g.isFoodActivity(activityType) && containsAny(fold(params.DietaryRestrictions), t.DietaryKeywords) {
		cost *= t.DietaryMultiplier
	}

	cost *= clamp(dailyBudget/g.cfg.BudgetScaleDivisor, g.cfg.BudgetScaleMin, g.cfg.BudgetScaleMax)
	cost *= g.cfg.VariationMin + rng.Float64()*(g.cfg.VariationMax-g.cfg.VariationMin)
	cost = clamp(cost, g.cfg.CostFloorRatio*dailyBudget, g.cfg.CostCeilingRatio*dailyBudget)

	return round2(cost)
}

func (g *Generator) isFoodActivity(activityType string) bool {
	for _, t := range g.cfg.Tables.FoodActivityTypes {
		if activityType == t {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
