package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myguide/internal/planner"
)

func generatedItinerary(placeIDs ...string) *planner.GeneratedItinerary {
	acts := make([]planner.PlannedActivity, 0, len(placeIDs))
	for _, id := range placeIDs {
		acts = append(acts, planner.PlannedActivity{
			PlaceID:         id,
			ActivityType:    "cultural",
			StartTime:       "09:00",
			EndTime:         "11:30",
			DurationMinutes: 150,
			EstimatedCost:   35,
		})
	}
	return &planner.GeneratedItinerary{
		Title:              "Cultural Discovery: 2 Days in Alger-Centre",
		Currency:           "USD",
		DurationDays:       2,
		EstimatedTotalCost: 140,
		DailyPlans: []planner.DailyPlan{
			{DayNumber: 1, Title: "Day 1: Arrival & City Tour", Activities: acts},
			{DayNumber: 2, Title: "Day 2: Heritage Sites"},
		},
	}
}

func journeyInput() *CreateJourneyInput {
	return &CreateJourneyInput{
		UserID:    uuid.New(),
		StartDate: time.Date(2025, 10, 26, 0, 0, 0, 0, time.UTC),
		Location:  "Algiers",
		TripType:  "cultural",
		GroupSize: 2,
		Seed:      42,
	}
}

func TestBuildJourneyRecord(t *testing.T) {
	placeID := uuid.New()
	j, err := buildJourneyRecord(journeyInput(), generatedItinerary(placeID.String()))
	require.NoError(t, err)

	assert.Equal(t, "Algiers", j.Location)
	assert.Equal(t, int64(42), j.Seed)
	require.NotNil(t, j.EndDate)
	assert.Equal(t, int64(86400), *j.EndDate-j.StartDate)

	require.Len(t, j.Days, 2)
	assert.Equal(t, "2025-10-27", j.Days[1].Date.Format(time.DateOnly))
	require.Len(t, j.Days[0].Activities, 1)
	act := j.Days[0].Activities[0]
	assert.Equal(t, placeID, act.SelectedPlaceID)
	assert.Equal(t, "09:00", act.Time.Format("15:04"))
	require.NotNil(t, act.EndTime)
	assert.Equal(t, "11:30", act.EndTime.Format("15:04"))
	assert.Empty(t, j.Days[1].Activities)
}

func TestBuildJourneyRecord_RejectsUnknownPlaceID(t *testing.T) {
	j, err := buildJourneyRecord(journeyInput(), generatedItinerary(uuid.NewString(), "casbah-01"))
	assert.ErrorIs(t, err, ErrInvalidPlaceID)
	assert.Contains(t, err.Error(), "casbah-01")
	assert.Nil(t, j)
}

func TestBuildJourneyRecord_RequiresInput(t *testing.T) {
	_, err := buildJourneyRecord(nil, generatedItinerary())
	assert.Error(t, err)
	_, err = buildJourneyRecord(journeyInput(), nil)
	assert.Error(t, err)
}
