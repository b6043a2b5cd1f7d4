package planner

import (
	"sort"
	"strings"

	"github.com/thoas/go-funk"
	"go.uber.org/zap"
)

// SelectDestinations filters the catalog down to ranked candidates for the
// trip. The catalog is never modified.
func (g *Generator) SelectDestinations(params TripParameters, catalog []Place) ([]Place, error) {
	geo := g.filterByLocation(catalog, params.DestinationPreference)
	categories := g.preferredCategories(params)

	candidates := make([]Place, 0, len(geo))
	for _, p := range geo {
		if categories[normalizeTag(p.Category)] {
			candidates = append(candidates, p)
		}
	}

	if len(candidates) < g.cfg.MinStrictCandidates {
		widened := make([]Place, 0, len(geo))
		for _, p := range geo {
			if categories[normalizeTag(p.Category)] || g.generallyAcceptable(p.Category) {
				widened = append(widened, p)
			}
		}
		if len(widened) > len(candidates) {
			g.logger.Debug("widened destination categories",
				zap.Int("strict", len(candidates)), zap.Int("widened", len(widened)))
			candidates = widened
		}
	}

	if len(candidates) < g.cfg.MinCandidates {
		g.logger.Debug("dropping category filter",
			zap.Int("candidates", len(candidates)), zap.Int("geographic", len(geo)))
		candidates = append(candidates[:0:0], geo...)
	}

	rankPlaces(candidates)
	if len(candidates) > g.cfg.MaxCandidates {
		candidates = candidates[:g.cfg.MaxCandidates]
	}

	if len(candidates) == 0 {
		return nil, ErrNoSuitableDestinations
	}
	return candidates, nil
}

func (g *Generator) filterByLocation(catalog []Place, preference string) []Place {
	pref := fold(preference)
	if pref == "" {
		return append([]Place(nil), catalog...)
	}
	canonical := g.canonicalLocation(pref)

	out := make([]Place, 0, len(catalog))
	for _, p := range catalog {
		for _, level := range []string{p.Province, p.District, p.Municipality} {
			name := fold(level)
			if name == "" {
				continue
			}
			if strings.Contains(name, canonical) || strings.Contains(name, pref) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// canonicalLocation rewrites alternate spellings, longest alias first.
func (g *Generator) canonicalLocation(pref string) string {
	if c, ok := g.cfg.Tables.LocationAliases[pref]; ok {
		return fold(c)
	}
	aliases := funk.Keys(g.cfg.Tables.LocationAliases).([]string)
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i]) != len(aliases[j]) {
			return len(aliases[i]) > len(aliases[j])
		}
		return aliases[i] < aliases[j]
	})
	for _, alias := range aliases {
		key := fold(alias)
		if key != "" && strings.Contains(pref, key) {
			return strings.Replace(pref, key, fold(g.cfg.Tables.LocationAliases[alias]), 1)
		}
	}
	return pref
}

// preferredTags merges trip type, interests and travel style into one ordered tag list.
func (g *Generator) preferredTags(params TripParameters) []string {
	tags := append([]string(nil), g.tripTypeTags(params.TripType)...)
	for _, interest := range params.Interests {
		raw := normalizeTag(interest)
		if raw == "" {
			continue
		}
		if alias, ok := g.cfg.Tables.InterestAliases[fold(interest)]; ok {
			tags = append(tags, alias)
		}
		tags = append(tags, raw)
	}
	style := fold(params.TravelStyle)
	if style != "" {
		for _, kt := range g.cfg.Tables.TravelStyleTags {
			if strings.Contains(style, kt.Keyword) {
				tags = append(tags, kt.Tags...)
			}
		}
	}
	return funk.UniqString(tags)
}

func (g *Generator) tripTypeTags(tripType string) []string {
	if tags, ok := g.cfg.Tables.TripTypeTags[normalizeTag(tripType)]; ok {
		return tags
	}
	return g.cfg.Tables.DefaultTripTypeTags
}

func (g *Generator) preferredCategories(params TripParameters) map[string]bool {
	set := make(map[string]bool)
	for _, tag := range g.preferredTags(params) {
		categories, ok := g.cfg.Tables.TagCategories[tag]
		if !ok {
			categories = []string{tag}
		}
		for _, c := range categories {
			set[normalizeTag(c)] = true
		}
	}
	return set
}

// generallyAcceptable also admits uncategorized places.
func (g *Generator) generallyAcceptable(category string) bool {
	c := fold(category)
	if c == "" {
		return true
	}
	return containsAny(c, g.cfg.Tables.AcceptableCategories)
}

// RankByPopularity returns the n best rated places of catalog, breaking
// rating ties by feedback count. catalog is not modified.
func RankByPopularity(catalog []Place, n int) []Place {
	ranked := make([]Place, len(catalog))
	copy(ranked, catalog)
	rankPlaces(ranked)
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// rankPlaces orders by rating then feedback count, both descending. Unrated
// places sort after rated ones; ties keep catalog order.
func rankPlaces(places []Place) {
	sort.SliceStable(places, func(i, j int) bool {
		ri, rj := places[i].Rating, places[j].Rating
		switch {
		case ri != nil && rj == nil:
			return true
		case ri == nil && rj != nil:
			return false
		case ri != nil && rj != nil && *ri != *rj:
			return *ri > *rj
		}
		return places[i].FeedbackCount > places[j].FeedbackCount
	})
}
