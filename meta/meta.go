// meta/meta.go
package meta

import "math"

// GAMES defines the number of games played per matchup.
const GAMES = 100

// WORKERS defines the number of games played concurrently.
const WORKERS = 8

// FULL_DEPTH is the depth at which minimax reaches every terminal state.
const FULL_DEPTH = 9

// SIMULATIONS defines the number of simulations per MCTS decision.
const SIMULATIONS = 100

// CONFIDENCE is the confidence level, in percent, of reported intervals.
const CONFIDENCE = 95.0

// DEPTHS are the search depths compared by the depth experiments.
var DEPTHS = []int{1, 2, 3, 5, FULL_DEPTH}

// EXPLORATIONS are the UCB1 constants compared by the exploration experiment.
var EXPLORATIONS = []float64{math.Sqrt2, 2, 0.5, 3, 0.1}
