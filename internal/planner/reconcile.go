package planner

// Reconcile rescales every activity cost by one uniform factor so the group
// total lands in [BandLow, BandHigh] of the total group budget, and returns
// the factor and the resulting total. It must be called exactly once per
// itinerary.
//
// Below the band the factor aims at BandTarget and is capped at MaxUpscale,
// unless the cap alone would leave the total under BandLow; then the factor
// is raised just enough to reach the floor.
func (g *Generator) Reconcile(plans []DailyPlan, totalGroupBudget float64, groupSize int) (factor, total float64) {
	raw := itineraryTotal(plans, groupSize)
	if raw <= 0 {
		return 1, raw
	}

	upper := totalGroupBudget * g.cfg.BandHigh
	lower := totalGroupBudget * g.cfg.BandLow

	switch {
	case raw > upper:
		factor = upper / raw
	case raw < lower:
		factor = (totalGroupBudget * g.cfg.BandTarget) / raw
		if factor > g.cfg.MaxUpscale {
			factor = g.cfg.MaxUpscale
		}
		if raw*factor < lower {
			factor = lower / raw
		}
	default:
		return 1, round2(raw)
	}

	for d := range plans {
		for a := range plans[d].Activities {
			plans[d].Activities[a].EstimatedCost = round2(plans[d].Activities[a].EstimatedCost * factor)
		}
	}
	return factor, round2(itineraryTotal(plans, groupSize))
}

func itineraryTotal(plans []DailyPlan, groupSize int) float64 {
	var sum float64
	for _, d := range plans {
		for _, a := range d.Activities {
			sum += a.EstimatedCost * float64(groupSize)
		}
	}
	return sum
}
