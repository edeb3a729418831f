package searcher

import "math"

// ucb1 = wins/visits + c*sqrt(ln(parentVisits)/visits). Unvisited children
// score +Inf so they are always tried first.
func ucb1(wins float64, visits int, parentVisits int, c float64) float64 {
	if visits == 0 {
		return math.Inf(1)
	}
	if parentVisits == 0 { // Prevent log of zero
		panic("cannot compute UCB1: parent has children but no visits")
	}

	exploitation := wins / float64(visits)
	exploration := c * math.Sqrt(math.Log(float64(parentVisits))/float64(visits))
	return exploitation + exploration
}
