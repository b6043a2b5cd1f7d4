// Package planner turns trip parameters and a place catalog into a day-by-day
// itinerary with per-activity cost estimates.
//
// A Generator holds only immutable configuration. The catalog and the random
// source are passed on every call, so one Generator can serve concurrent
// requests.
package planner

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Generator struct {
	cfg    Config
	logger *zap.Logger
}

type Option func(*Generator)

func WithConfig(cfg Config) Option {
	return func(g *Generator) {
		g.cfg = cfg
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:    DefaultConfig(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Generator) Config() Config {
	return g.cfg
}

// Generate builds a complete itinerary or returns an error; it never returns
// a partial result. A nil rng is replaced by a time-seeded source.
func (g *Generator) Generate(params TripParameters, catalog []Place, rng *rand.Rand) (*GeneratedItinerary, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = timeSeeded()
	}

	candidates, err := g.SelectDestinations(params, catalog)
	if err != nil {
		return nil, errors.Wrapf(err, "destination %q, trip type %q", params.DestinationPreference, params.TripType)
	}

	budget := g.AllocateBudget(params)
	perDay := g.ActivitiesPerDay(params.ActivityLevel)
	totalSlots := budget.DurationDays * perDay

	places := g.Distribute(candidates, totalSlots, perDay, rng)
	plans := g.schedule(params, budget, places, perDay, rng)

	factor, total := g.Reconcile(plans, budget.TotalGroupBudget, params.GroupSize)
	g.logger.Debug("reconciled itinerary cost",
		zap.Float64("factor", factor),
		zap.Float64("total", total),
		zap.Float64("group_budget", budget.TotalGroupBudget))

	primary := candidates[0]
	return &GeneratedItinerary{
		Title:                   g.tripTitle(params.TripType, primary, budget.DurationDays),
		Description:             g.tripDescription(params, primary, budget.DurationDays),
		Currency:                params.Currency,
		DurationDays:            budget.DurationDays,
		DailyPlans:              plans,
		ConfidenceScore:         ScoreConfidence(len(candidates), params),
		EstimatedTotalCost:      total,
		RecommendedDestinations: g.recommended(candidates, plans),
		Budget:                  budget,
	}, nil
}

func (g *Generator) tripTitle(tripType string, primary Place, days int) string {
	tmpl, ok := g.cfg.Tables.TripTitles[normalizeTag(tripType)]
	if !ok {
		tmpl = g.cfg.Tables.DefaultTripTitle
	}
	return fmt.Sprintf(tmpl, days, primary.Locality())
}

func (g *Generator) tripDescription(params TripParameters, primary Place, days int) string {
	t := g.cfg.Tables
	parts := []string{fmt.Sprintf(t.BaseDescription, days, primary.Locality())}
	if s, ok := t.TripDescriptions[normalizeTag(params.TripType)]; ok {
		parts = append(parts, s)
	}
	if len(params.Interests) > 0 {
		interests := params.Interests
		if len(interests) > 3 {
			interests = interests[:3]
		}
		parts = append(parts, fmt.Sprintf(t.InterestsSentence, strings.Join(interests, ", ")))
	}
	if params.GroupSize > 1 {
		parts = append(parts, fmt.Sprintf(t.GroupSentence, params.GroupSize))
	}
	return strings.Join(parts, " ")
}

// recommended lists the best-ranked candidates that made it into the schedule.
func (g *Generator) recommended(candidates []Place, plans []DailyPlan) []string {
	used := make(map[string]bool)
	for _, d := range plans {
		for _, a := range d.Activities {
			used[a.PlaceID] = true
		}
	}
	out := make([]string, 0, g.cfg.RecommendedCount)
	for _, c := range candidates {
		if len(out) == g.cfg.RecommendedCount {
			break
		}
		if used[c.ID] {
			out = append(out, c.Name)
		}
	}
	return out
}
