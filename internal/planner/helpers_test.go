package planner

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func rating(v float64) *float64 { return &v }

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// makePlaces builds n places of one category; earlier places rank higher.
func makePlaces(n int, category, province string) []Place {
	places := make([]Place, 0, n)
	for i := 0; i < n; i++ {
		places = append(places, Place{
			ID:            fmt.Sprintf("%s-%s-%02d", province, category, i),
			Name:          fmt.Sprintf("%s %s %d", province, category, i),
			Category:      category,
			Province:      province,
			District:      province + "-Centre",
			Rating:        rating(5 - float64(i)*0.1),
			FeedbackCount: 100 - i,
		})
	}
	return places
}

func baseParams() TripParameters {
	return TripParameters{
		StartDate:             date("2025-10-26"),
		EndDate:               date("2025-10-29"),
		Budget:                250,
		Currency:              "USD",
		GroupSize:             2,
		TripType:              "cultural",
		Interests:             []string{"photography", "historical sites"},
		DestinationPreference: "Algiers",
		TravelStyle:           "cultural heritage",
		ActivityLevel:         "moderate",
		SpecialRequirements:   "quiet places, local restaurants",
		DietaryRestrictions:   "halal",
	}
}

func newTestGenerator(t *testing.T, opts ...Option) *Generator {
	t.Helper()
	g, err := NewGenerator(opts...)
	require.NoError(t, err)
	return g
}

func placeCounts(plans []DailyPlan) map[string]int {
	counts := make(map[string]int)
	for _, d := range plans {
		for _, a := range d.Activities {
			counts[a.PlaceID]++
		}
	}
	return counts
}
