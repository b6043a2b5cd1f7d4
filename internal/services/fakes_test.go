package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dbm "myguide/internal/models/db_models"
	"myguide/internal/models/request_models"
	"myguide/internal/planner"
	"myguide/internal/repositories"
	mem "myguide/pkg/memcache"
)

type fakePlaceRepo struct {
	rows []repositories.CatalogRow
	err  error
}

func (f *fakePlaceRepo) ListCatalog(ctx context.Context) ([]repositories.CatalogRow, error) {
	return f.rows, f.err
}

type fakeJourneyRepo struct {
	saved     []*repositories.CreateJourneyInput
	itinerary *planner.GeneratedItinerary
	saveErr   error

	journeys []dbm.Journey
	detail   *dbm.Journey
	err      error

	lastPage, lastPageSize int

	userTypes, recentTypes []repositories.TripTypeCount
	countErr               error
	lastSince              int64
}

func (f *fakeJourneyRepo) SaveGeneratedItinerary(ctx context.Context, in *repositories.CreateJourneyInput, it *planner.GeneratedItinerary) (uuid.UUID, error) {
	if f.saveErr != nil {
		return uuid.Nil, f.saveErr
	}
	f.saved = append(f.saved, in)
	f.itinerary = it
	return uuid.MustParse("6f1c2a9e-3b41-4f0a-9d7e-1a2b3c4d5e6f"), nil
}

func (f *fakeJourneyRepo) GetListOfJourneyByUserId(ctx context.Context, page int, pagesize int, userId string) ([]dbm.Journey, error) {
	f.lastPage, f.lastPageSize = page, pagesize
	return f.journeys, f.err
}

func (f *fakeJourneyRepo) GetDetailsOfJourneyById(ctx context.Context, journeyId string) (*dbm.Journey, error) {
	return f.detail, f.err
}

func (f *fakeJourneyRepo) CountTripTypesByUser(ctx context.Context, userId string) ([]repositories.TripTypeCount, error) {
	return f.userTypes, f.countErr
}

func (f *fakeJourneyRepo) CountTripTypesSince(ctx context.Context, since int64) ([]repositories.TripTypeCount, error) {
	f.lastSince = since
	return f.recentTypes, f.countErr
}

func catalogRows(n int, category, province string) []repositories.CatalogRow {
	rows := make([]repositories.CatalogRow, 0, n)
	for i := 0; i < n; i++ {
		r := 4.9 - float64(i)*0.1
		rows = append(rows, repositories.CatalogRow{
			ID:            uuid.New(),
			Name:          fmt.Sprintf("%s %s %d", province, category, i),
			Category:      category,
			Province:      province,
			District:      province + "-Centre",
			Rating:        &r,
			FeedbackCount: 10 + i,
		})
	}
	return rows
}

func tripRequest() request_models.GenerateItineraryRequest {
	seed := int64(42)
	return request_models.GenerateItineraryRequest{
		StartDate:             "2025-10-26",
		EndDate:               "2025-10-29",
		Budget:                250,
		GroupSize:             2,
		TripType:              "cultural",
		Interests:             []string{"photography", "historical sites"},
		DestinationPreference: "Algiers",
		TravelStyle:           "cultural heritage",
		ActivityLevel:         "moderate",
		DietaryRestrictions:   "halal",
		Seed:                  &seed,
	}
}

var testUserID = "0b9f8f2e-6f0d-4a55-8f0e-5d2c7c1f9a10"

func newTestItineraryService(t *testing.T, places *fakePlaceRepo, journeys *fakeJourneyRepo) (*ItineraryService, *mem.Drafts) {
	t.Helper()
	g, err := planner.NewGenerator()
	require.NoError(t, err)
	drafts := mem.NewDrafts(time.Minute)
	svc := NewItineraryService(g, places, journeys, drafts, ItineraryLimits{
		MaxTripDays:  30,
		MaxGroupSize: 20,
		DraftTTL:     30 * time.Minute,
	}, zap.NewNop())
	return svc.(*ItineraryService), drafts
}
