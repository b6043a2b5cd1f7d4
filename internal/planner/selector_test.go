package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectDestinations_StrictCategoryMatch(t *testing.T) {
	g := newTestGenerator(t)
	catalog := append(makePlaces(14, "museum", "Alger"), makePlaces(5, "beach", "Alger")...)
	catalog = append(catalog, makePlaces(3, "museum", "Oran")...)

	params := baseParams()
	params.Interests = nil
	params.TravelStyle = ""

	got, err := g.SelectDestinations(params, catalog)
	require.NoError(t, err)
	assert.Len(t, got, 14)
	for _, p := range got {
		assert.Equal(t, "museum", p.Category)
		assert.Equal(t, "Alger", p.Province)
	}
}

func TestSelectDestinations_WidensToAcceptableCategories(t *testing.T) {
	g := newTestGenerator(t)
	catalog := makePlaces(5, "museum", "Alger")
	catalog = append(catalog, makePlaces(4, "", "Alger")...)
	catalog = append(catalog, makePlaces(3, "Religious Site", "Alger")...)
	catalog = append(catalog, makePlaces(6, "beach", "Alger")...)

	params := baseParams()
	params.Interests = nil
	params.TravelStyle = ""

	got, err := g.SelectDestinations(params, catalog)
	require.NoError(t, err)
	assert.Len(t, got, 12)
	for _, p := range got {
		assert.NotEqual(t, "beach", p.Category)
	}
}

func TestSelectDestinations_FallsBackToGeographicFilter(t *testing.T) {
	g := newTestGenerator(t)
	catalog := makePlaces(3, "museum", "Oran")
	catalog = append(catalog, makePlaces(2, "", "Oran")...)
	catalog = append(catalog, makePlaces(8, "beach", "Oran")...)
	catalog = append(catalog, makePlaces(4, "museum", "Annaba")...)

	params := baseParams()
	params.DestinationPreference = "wahran"
	params.Interests = nil
	params.TravelStyle = ""

	got, err := g.SelectDestinations(params, catalog)
	require.NoError(t, err)
	assert.Len(t, got, 13)
	for _, p := range got {
		assert.Equal(t, "Oran", p.Province)
	}
}

func TestSelectDestinations_RanksAndCaps(t *testing.T) {
	g := newTestGenerator(t)
	catalog := []Place{
		{ID: "a", Name: "A", Category: "museum", Rating: rating(4.5), FeedbackCount: 1},
		{ID: "b", Name: "B", Category: "museum", Rating: rating(4.9)},
		{ID: "c", Name: "C", Category: "museum", FeedbackCount: 100},
		{ID: "d", Name: "D", Category: "museum", Rating: rating(4.5), FeedbackCount: 10},
	}
	params := baseParams()
	params.DestinationPreference = ""

	got, err := g.SelectDestinations(params, catalog)
	require.NoError(t, err)

	ids := make([]string, 0, len(got))
	for _, p := range got {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"b", "d", "a", "c"}, ids)

	got, err = g.SelectDestinations(params, makePlaces(30, "museum", "Alger"))
	require.NoError(t, err)
	assert.Len(t, got, 20)
	assert.Equal(t, "Alger-museum-00", got[0].ID)
}

func TestSelectDestinations_MatchesAliasesAndAccents(t *testing.T) {
	g := newTestGenerator(t)
	catalog := []Place{
		{ID: "1", Name: "Casbah of Algiers", Category: "historical", Province: "Alger", District: "Casbah"},
		{ID: "2", Name: "Yemma Gouraya", Category: "park", Province: "Béjaïa"},
		{ID: "3", Name: "Santa Cruz Fort", Category: "historical", Province: "Oran"},
	}

	params := baseParams()
	got, err := g.SelectDestinations(params, catalog)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	params.DestinationPreference = "Bougie"
	got, err = g.SelectDestinations(params, catalog)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	params.DestinationPreference = "BEJAIA"
	got, err = g.SelectDestinations(params, catalog)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestSelectDestinations_NoMatch(t *testing.T) {
	g := newTestGenerator(t)
	params := baseParams()
	params.DestinationPreference = "Tamanrasset"

	_, err := g.SelectDestinations(params, makePlaces(5, "museum", "Alger"))
	assert.ErrorIs(t, err, ErrNoSuitableDestinations)

	_, err = g.SelectDestinations(params, nil)
	assert.ErrorIs(t, err, ErrNoSuitableDestinations)
}

func TestSelectDestinations_DoesNotMutateCatalog(t *testing.T) {
	g := newTestGenerator(t)
	catalog := []Place{
		{ID: "low", Name: "Low", Category: "museum", Province: "Alger", Rating: rating(3)},
		{ID: "high", Name: "High", Category: "museum", Province: "Alger", Rating: rating(5)},
	}
	before := append([]Place(nil), catalog...)

	_, err := g.SelectDestinations(baseParams(), catalog)
	require.NoError(t, err)
	assert.Equal(t, before, catalog)
}

func TestPreferredTags(t *testing.T) {
	g := newTestGenerator(t)
	tags := g.preferredTags(baseParams())
	assert.Equal(t, []string{
		"cultural", "historical", "religious", "sightseeing", "photography", "historical_sites",
	}, tags)

	params := baseParams()
	params.TripType = "space tourism"
	params.Interests = nil
	params.TravelStyle = ""
	assert.Equal(t, g.cfg.Tables.DefaultTripTypeTags, g.preferredTags(params))
}

func TestRankByPopularity(t *testing.T) {
	catalog := makePlaces(4, "park", "Oran")
	catalog[3].Rating = nil
	catalog[2].Rating = rating(5)
	catalog[2].FeedbackCount = 1

	top := RankByPopularity(catalog, 3)
	require.Len(t, top, 3)
	assert.Equal(t, []string{"Oran-park-00", "Oran-park-02", "Oran-park-01"},
		[]string{top[0].ID, top[1].ID, top[2].ID})
	assert.Equal(t, "Oran-park-00", catalog[0].ID)
	assert.Equal(t, "Oran-park-02", catalog[2].ID)

	assert.Len(t, RankByPopularity(catalog, 10), 4)
	assert.Equal(t, "Oran-park-03", RankByPopularity(catalog, 10)[3].ID)
}
