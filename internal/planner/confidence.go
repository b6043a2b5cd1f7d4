package planner

// ScoreConfidence is a heuristic in [0.5, 1.0] describing how well supported a plan is.
func ScoreConfidence(candidates int, params TripParameters) float64 {
	score := 0.5

	switch {
	case candidates >= 3:
		score += 0.2
	case candidates >= 1:
		score += 0.1
	}

	switch {
	case params.Budget >= 500:
		score += 0.1
	case params.Budget >= 200:
		score += 0.05
	}

	days := params.DurationDays()
	switch {
	case days >= 3 && days <= 14:
		score += 0.1
	case days >= 1 && days <= 21:
		score += 0.05
	}

	if n := len(params.Interests); n > 0 {
		score += min(0.05*float64(n), 0.1)
	}

	return round2(min(score, 1.0))
}
