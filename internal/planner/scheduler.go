package planner

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/thoas/go-funk"
)

// schedule walks the trip day by day and consumes the distributed places
// left to right across the whole trip.
func (g *Generator) schedule(params TripParameters, budget BudgetBreakdown, places []Place, perDay int, rng *rand.Rand) []DailyPlan {
	windows := g.TimeWindows(perDay)
	types := g.activityTypes(params)
	start := time.Date(params.StartDate.Year(), params.StartDate.Month(), params.StartDate.Day(), 0, 0, 0, 0, time.UTC)

	plans := make([]DailyPlan, 0, budget.DurationDays)
	slot := 0
	for day := 1; day <= budget.DurationDays; day++ {
		activities := make([]PlannedActivity, 0, perDay)
		for i := 0; i < perDay && slot < len(places); i, slot = i+1, slot+1 {
			place := places[slot]
			activity := ActivitySlot{DayNumber: day, ActivityType: types[i%len(types)]}
			if i < len(windows) {
				activity.Window = windows[i]
			}
			activities = append(activities, PlannedActivity{
				PlaceID:         place.ID,
				PlaceName:       place.Name,
				ActivityType:    activity.ActivityType,
				StartTime:       activity.Window.Start,
				EndTime:         activity.Window.End,
				DurationMinutes: activity.Window.Minutes(),
				EstimatedCost:   g.EstimateCost(activity.ActivityType, place, params, budget.DailyPerPersonBudget, rng),
				Notes:           g.activityNotes(activity.ActivityType, place, params),
			})
		}

		plans = append(plans, DailyPlan{
			DayNumber:   day,
			Date:        start.AddDate(0, 0, day-1),
			Title:       fmt.Sprintf("Day %d: %s", day, g.dayTheme(day, params.TripType)),
			Description: g.dayDescription(day, activities),
			Activities:  activities,
		})
	}
	return plans
}

// TimeWindows returns the slot table for perDay activities, or a single
// full-day window when the table has no entry.
func (g *Generator) TimeWindows(perDay int) []TimeWindow {
	if w, ok := g.cfg.Tables.TimeWindows[perDay]; ok && len(w) > 0 {
		return w
	}
	return []TimeWindow{g.cfg.Tables.FullDayWindow}
}

// Minutes is the window length, or 0 when either bound is missing or malformed.
func (w TimeWindow) Minutes() int {
	start, err := time.Parse("15:04", w.Start)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", w.End)
	if err != nil || !end.After(start) {
		return 0
	}
	return int(end.Sub(start).Minutes())
}

// activityTypes is the rotation used to label slots: trip type tags first,
// then interests.
func (g *Generator) activityTypes(params TripParameters) []string {
	types := append([]string(nil), g.tripTypeTags(params.TripType)...)
	for _, interest := range params.Interests {
		if alias, ok := g.cfg.Tables.InterestAliases[fold(interest)]; ok {
			types = append(types, alias)
			continue
		}
		if tag := normalizeTag(interest); tag != "" {
			types = append(types, tag)
		}
	}
	types = funk.UniqString(types)
	if len(types) == 0 {
		return g.cfg.Tables.DefaultTripTypeTags
	}
	return types
}

func (g *Generator) activityNotes(activityType string, place Place, params TripParameters) string {
	t := g.cfg.Tables
	tmpl, ok := t.NoteTemplates[activityType]
	if !ok {
		tmpl = t.DefaultNote
	}
	parts := []string{fmt.Sprintf(tmpl, place.Name)}

	requirements := fold(params.SpecialRequirements)
	for _, rn := range t.RequirementNotes {
		if containsAny(requirements, rn.Keywords) {
			parts = append(parts, rn.Note)
		}
	}

	if diet := strings.TrimSpace(params.DietaryRestrictions); diet != "" && g.isFoodActivity(activityType) {
		parts = append(parts, fmt.Sprintf(t.DietaryNote, diet))
	}
	return strings.Join(parts, " ")
}

func (g *Generator) dayTheme(day int, tripType string) string {
	themes, ok := g.cfg.Tables.DayThemes[normalizeTag(tripType)]
	if !ok {
		themes = g.cfg.Tables.DayThemes[g.cfg.Tables.DefaultThemeKey]
	}
	if len(themes) == 0 {
		return "Exploration"
	}
	idx := day - 1
	if idx > len(themes)-1 {
		idx = len(themes) - 1
	}
	return themes[idx]
}

func (g *Generator) dayDescription(day int, activities []PlannedActivity) string {
	t := g.cfg.Tables
	if day == 1 {
		return t.ArrivalDescription
	}
	if len(activities) == 0 {
		return t.EmptyDayDesc
	}
	kinds := make([]string, 0, len(activities))
	for _, a := range activities {
		kinds = append(kinds, humanize(a.ActivityType))
	}
	return fmt.Sprintf(t.DayDescription, strings.Join(funk.UniqString(kinds), ", "))
}
