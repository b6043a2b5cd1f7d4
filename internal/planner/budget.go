package planner

// BudgetBreakdown is the spending hierarchy derived from the raw trip budget.
type BudgetBreakdown struct {
	TotalGroupBudget        float64 `json:"total_group_budget"`
	ActivityShare           float64 `json:"activity_share"`
	PerPersonActivityBudget float64 `json:"per_person_activity_budget"`
	DailyPerPersonBudget    float64 `json:"daily_per_person_budget"`
	DurationDays            int     `json:"duration_days"`
}

// AllocateBudget assumes params already passed Validate. Every activity is
// costed against the whole daily figure, not a per-activity split.
func (g *Generator) AllocateBudget(params TripParameters) BudgetBreakdown {
	days := params.DurationDays()
	total := params.Budget * float64(params.GroupSize)
	share := total * g.cfg.ActivityShare
	perPerson := share / float64(params.GroupSize)

	return BudgetBreakdown{
		TotalGroupBudget:        total,
		ActivityShare:           share,
		PerPersonActivityBudget: perPerson,
		DailyPerPersonBudget:    perPerson / float64(days),
		DurationDays:            days,
	}
}

// ActivitiesPerDay maps the activity level to a slot count, defaulting for
// unknown levels.
func (g *Generator) ActivitiesPerDay(level string) int {
	if n, ok := g.cfg.Tables.ActivitiesPerLevel[fold(level)]; ok {
		return n
	}
	return g.cfg.Tables.DefaultActivityCount
}
