package planner

import (
	"math/rand"

	"go.uber.org/zap"
)

// Distribute returns exactly totalSlots places, one per slot. With enough
// candidates no place repeats; otherwise no place is used more than
// ceil(totalSlots / len(candidates)) times and repeats are kept at least
// spacing slots apart whenever the counts allow it.
func (g *Generator) Distribute(candidates []Place, totalSlots, spacing int, rng *rand.Rand) []Place {
	if totalSlots <= 0 || len(candidates) == 0 {
		return nil
	}

	if len(candidates) >= totalSlots {
		out := append([]Place(nil), candidates[:totalSlots]...)
		shufflePlaces(out, rng)
		return out
	}

	n := len(candidates)
	base, extra := totalSlots/n, totalSlots%n
	g.logger.Warn("degraded distribution, places will repeat",
		zap.Int("candidates", n),
		zap.Int("slots", totalSlots),
		zap.Int("base_uses", base),
		zap.Int("extra", extra))

	// Higher-ranked candidates take the extra use.
	uses := make([]int, n)
	for i := range uses {
		uses[i] = base
		if i < extra {
			uses[i]++
		}
	}
	rounds := base
	if extra > 0 {
		rounds++
	}

	out := make([]Place, 0, totalSlots)
	for k := 0; k < rounds; k++ {
		round := make([]Place, 0, n)
		for i, p := range candidates {
			if uses[i] > k {
				round = append(round, p)
			}
		}
		shufflePlaces(round, rng)
		out = append(out, round...)
	}

	shufflePlaces(out, rng)
	spreadRepeats(out, spacing)

	for i := 0; len(out) < totalSlots; i++ {
		out = append(out, candidates[i%n])
	}
	return out[:totalSlots]
}

func shufflePlaces(places []Place, rng *rand.Rand) {
	rng.Shuffle(len(places), func(i, j int) {
		places[i], places[j] = places[j], places[i]
	})
}

// spreadRepeats swaps entries until no place appears twice within window
// consecutive slots. A swap is only kept when it leaves both positions clean,
// so conflicts never increase. It is best effort: when counts make a gap
// impossible the remaining conflicts stay.
func spreadRepeats(seq []Place, window int) {
	if window < 2 {
		return
	}
	n := len(seq)
	for i := 1; i < n; i++ {
		if !conflicts(seq, i, window) {
			continue
		}
		// later slots first, then wrap around to earlier ones
		for k := 1; k < n; k++ {
			j := (i + k) % n
			if seq[j].ID == seq[i].ID {
				continue
			}
			seq[i], seq[j] = seq[j], seq[i]
			if !conflicts(seq, i, window) && !conflicts(seq, j, window) {
				break
			}
			seq[i], seq[j] = seq[j], seq[i]
		}
	}
}

func conflicts(seq []Place, i, window int) bool {
	lo, hi := i-window+1, i+window-1
	if lo < 0 {
		lo = 0
	}
	if hi > len(seq)-1 {
		hi = len(seq) - 1
	}
	for j := lo; j <= hi; j++ {
		if j != i && seq[j].ID == seq[i].ID {
			return true
		}
	}
	return false
}
