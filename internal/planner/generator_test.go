package planner

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_ExampleRequest(t *testing.T) {
	g := newTestGenerator(t)
	catalog := makePlaces(15, "museum", "Alger")

	it, err := g.Generate(baseParams(), catalog, NewRand(2025))
	require.NoError(t, err)

	assert.Equal(t, 4, it.DurationDays)
	assert.Equal(t, "USD", it.Currency)
	assert.Equal(t, "Cultural Discovery: 4 Days in Alger-Centre", it.Title)
	assert.Contains(t, it.Description, "4-day itinerary")
	assert.Contains(t, it.Description, "photography, historical sites")
	assert.Contains(t, it.Description, "groups of 2 people")
	assert.InDelta(t, 0.95, it.ConfidenceScore, 1e-9)
	assert.InDelta(t, 43.75, it.Budget.DailyPerPersonBudget, 1e-9)

	require.Len(t, it.DailyPlans, 4)
	counts := placeCounts(it.DailyPlans)
	assert.Len(t, counts, 12)
	for id, c := range counts {
		assert.Equal(t, 1, c, "place %s repeated", id)
	}
	for i, day := range it.DailyPlans {
		assert.Equal(t, i+1, day.DayNumber)
		assert.Len(t, day.Activities, 3)
	}

	assert.LessOrEqual(t, len(it.RecommendedDestinations), 3)
	assert.NotEmpty(t, it.RecommendedDestinations)
}

func TestGenerate_FewCandidates(t *testing.T) {
	g := newTestGenerator(t)
	catalog := makePlaces(5, "museum", "Alger")

	it, err := g.Generate(baseParams(), catalog, NewRand(8))
	require.NoError(t, err)

	counts := placeCounts(it.DailyPlans)
	require.Len(t, counts, 5)
	threes := 0
	for _, c := range counts {
		assert.LessOrEqual(t, c, 3)
		if c == 3 {
			threes++
		}
	}
	assert.Equal(t, 2, threes)
}

func TestGenerate_TotalStaysInBudgetBand(t *testing.T) {
	g := newTestGenerator(t)
	catalog := makePlaces(8, "museum", "Alger")
	catalog = append(catalog, makePlaces(6, "Traditional Restaurant", "Alger")...)

	for _, budget := range []float64{20, 250, 1000, 8000} {
		for _, group := range []int{1, 3, 20} {
			for _, level := range []string{"low", "moderate", "high"} {
				params := baseParams()
				params.Budget = budget
				params.GroupSize = group
				params.ActivityLevel = level
				params.Interests = append(params.Interests, "food")

				it, err := g.Generate(params, catalog, NewRand(int64(budget)+int64(group)))
				require.NoError(t, err)

				slots := 0
				for _, d := range it.DailyPlans {
					slots += len(d.Activities)
				}
				tolerance := 0.005 * float64(slots*group)
				tgb := budget * float64(group)
				name := fmt.Sprintf("budget=%v group=%d level=%s", budget, group, level)
				assert.GreaterOrEqual(t, it.EstimatedTotalCost, 0.8*tgb-tolerance, name)
				assert.LessOrEqual(t, it.EstimatedTotalCost, 1.2*tgb+tolerance, name)
				assert.InDelta(t, itineraryTotal(it.DailyPlans, group), it.EstimatedTotalCost, 0.01, name)
			}
		}
	}
}

func TestGenerate_SameSeedSameItinerary(t *testing.T) {
	g := newTestGenerator(t)
	catalog := makePlaces(7, "museum", "Alger")

	a, err := g.Generate(baseParams(), catalog, NewRand(77))
	require.NoError(t, err)
	b, err := g.Generate(baseParams(), catalog, NewRand(77))
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, string(ja), string(jb))
}

func TestGenerate_ConcurrentCallsAreIndependent(t *testing.T) {
	g := newTestGenerator(t)
	catalog := makePlaces(9, "museum", "Alger")

	want := make([]*GeneratedItinerary, 8)
	for i := range want {
		it, err := g.Generate(baseParams(), catalog, NewRand(int64(i)))
		require.NoError(t, err)
		want[i] = it
	}

	got := make([]*GeneratedItinerary, len(want))
	var wg sync.WaitGroup
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			it, err := g.Generate(baseParams(), catalog, NewRand(int64(i)))
			if err == nil {
				got[i] = it
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, want, got)
}

func TestGenerate_LeavesCatalogUntouched(t *testing.T) {
	g := newTestGenerator(t)
	catalog := makePlaces(6, "museum", "Alger")
	catalog[0], catalog[5] = catalog[5], catalog[0]
	before := append([]Place(nil), catalog...)

	_, err := g.Generate(baseParams(), catalog, NewRand(1))
	require.NoError(t, err)
	assert.Equal(t, before, catalog)
}

func TestGenerate_InvalidParameters(t *testing.T) {
	g := newTestGenerator(t)
	catalog := makePlaces(5, "museum", "Alger")

	tests := map[string]func(*TripParameters){
		"same day":       func(p *TripParameters) { p.EndDate = p.StartDate },
		"end before":     func(p *TripParameters) { p.EndDate = p.StartDate.AddDate(0, 0, -2) },
		"missing date":   func(p *TripParameters) { p.StartDate = time.Time{} },
		"zero budget":    func(p *TripParameters) { p.Budget = 0 },
		"negative group": func(p *TripParameters) { p.GroupSize = -1 },
		"empty group":    func(p *TripParameters) { p.GroupSize = 0 },
	}
	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			params := baseParams()
			mutate(&params)
			it, err := g.Generate(params, catalog, NewRand(1))
			assert.ErrorIs(t, err, ErrInvalidParameters)
			assert.Nil(t, it)
		})
	}
}

func TestGenerate_NoSuitableDestinations(t *testing.T) {
	g := newTestGenerator(t)
	params := baseParams()
	params.DestinationPreference = "Djanet"

	it, err := g.Generate(params, makePlaces(5, "museum", "Alger"), NewRand(1))
	assert.ErrorIs(t, err, ErrNoSuitableDestinations)
	assert.Contains(t, err.Error(), "Djanet")
	assert.Nil(t, it)
}

func TestGenerate_NilRandIsAllowed(t *testing.T) {
	g := newTestGenerator(t)
	it, err := g.Generate(baseParams(), makePlaces(5, "museum", "Alger"), nil)
	require.NoError(t, err)
	assert.Len(t, it.DailyPlans, 4)
}

func TestNewGenerator_RejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BandLow = 1.5
	_, err := NewGenerator(WithConfig(cfg))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	cfg = DefaultConfig()
	cfg.Tables.TimeWindows = nil
	cfg.Tables.FullDayWindow = TimeWindow{}
	_, err = NewGenerator(WithConfig(cfg))
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
