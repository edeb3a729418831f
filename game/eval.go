package game

// Score awarded for an open two: two marks of one player and an empty cell.
const OpenTwoScore = 10

// EvaluateLines tallies open twos over all eight lines: +10 for each line
// with two X and one empty cell, -10 for each with two O and one empty cell.
func EvaluateLines(s State) int {
	score := 0
	for _, line := range Lines {
		var crosses, noughts, empty int
		for _, cell := range line {
			switch s.board[cell] {
			case X:
				crosses++
			case O:
				noughts++
			default:
				empty++
			}
		}

		if empty != 1 {
			continue
		}
		if crosses == 2 {
			score += OpenTwoScore
		} else if noughts == 2 {
			score -= OpenTwoScore
		}
	}
	return score
}
