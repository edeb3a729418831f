package game

import "errors"

// Side is the width and height of the board.
const Side = 3

// Cells is the number of cells on the board.
const Cells = Side * Side

var (
	ErrInvalidMove  = errors.New("invalid move")
	ErrGameOver     = errors.New("game is already over")
	ErrNotTerminal  = errors.New("state is not terminal")
	ErrInvalidMark  = errors.New("invalid mark")
	ErrInvalidBoard = errors.New("invalid board")
)

// Lines lists every winning line: rows, then columns, then diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Evaluates a non-terminal state to a heuristic score from X's perspective:
// positive favors X (the maximizer), negative favors O.
type Evaluate func(State) int
