package planner

import (
	"math"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NewRand returns a random source for a single generation call. Sources are
// never shared between calls.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func timeSeeded() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}

// fold lower-cases s and strips diacritics so "Béjaïa" matches "bejaia".
func fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(strings.ToLower(out)), " ")
}

// normalizeTag turns free text such as "Food & Drink" into "food_and_drink".
func normalizeTag(s string) string {
	s = strings.ReplaceAll(fold(s), "&", "and")
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), "_")
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

func humanize(tag string) string {
	return strings.ReplaceAll(tag, "_", " ")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
