package game

import (
	"fmt"
	"strings"
)

// State is a tic-tac-toe position. It is a value type: Play copies the
// board, so a State handed to one search branch is never observed by another.
type State struct {
	board [Cells]Mark
	turn  Mark
}

// NewState returns the empty board with first to move.
func NewState(first Mark) (State, error) {
	if !first.IsPlayer() {
		return State{}, fmt.Errorf("%w: %v cannot move first", ErrInvalidMark, first)
	}
	return State{turn: first}, nil
}

// Parse reads a board written as nine cells (X, O, and one of . _ - for
// empty cells). Row separators '/' and whitespace are ignored, so
// "XXX/OO./..." and "X X X\nO O _\n_ _ _" are equivalent.
func Parse(board string, turn Mark) (State, error) {
	if !turn.IsPlayer() {
		return State{}, fmt.Errorf("%w: %v cannot be on turn", ErrInvalidMark, turn)
	}

	s := State{turn: turn}
	i := 0
	for _, r := range board {
		switch r {
		case '/', ' ', '\t', '\n', '\r':
			continue
		}
		if i >= Cells {
			return State{}, fmt.Errorf("%w: more than %d cells in %q", ErrInvalidBoard, Cells, board)
		}
		switch r {
		case 'X', 'x':
			s.board[i] = X
		case 'O', 'o':
			s.board[i] = O
		case '.', '_', '-':
			s.board[i] = Empty
		default:
			return State{}, fmt.Errorf("%w: unexpected cell %q", ErrInvalidBoard, r)
		}
		i++
	}
	if i != Cells {
		return State{}, fmt.Errorf("%w: expected %d cells, got %d", ErrInvalidBoard, Cells, i)
	}

	diff := s.Count(X) - s.Count(O)
	switch {
	case diff < -1 || diff > 1:
		return State{}, fmt.Errorf("%w: mark counts differ by %d", ErrInvalidBoard, diff)
	case diff == 1 && turn != O, diff == -1 && turn != X:
		// The player with more marks moved last
		return State{}, fmt.Errorf("%w: %v cannot be on turn with %d X and %d O", ErrInvalidBoard, turn, s.Count(X), s.Count(O))
	}
	return s, nil
}

// MustParse is Parse for fixed, known-good boards.
func MustParse(board string, turn Mark) State {
	s, err := Parse(board, turn)
	if err != nil {
		panic(err)
	}
	return s
}

func (s State) Turn() Mark {
	return s.turn
}

func (s State) At(cell int) Mark {
	return s.board[cell]
}

func (s State) Board() [Cells]Mark {
	return s.board
}

func (s State) Count(mark Mark) int {
	n := 0
	for _, cell := range s.board {
		if cell == mark {
			n++
		}
	}
	return n
}

// LegalMoves returns the empty cells in index order, or nil when the game is over.
func (s State) LegalMoves() []Move {
	if s.Winner() != Empty {
		return nil
	}
	moves := make([]Move, 0, Cells)
	for i, cell := range s.board {
		if cell == Empty {
			moves = append(moves, Move(i))
		}
	}
	return moves
}

// Play returns the state after the player on turn marks the given cell.
// The receiver is left untouched.
func (s State) Play(move Move) (State, error) {
	if !move.Valid() {
		return s, fmt.Errorf("%w: cell %d out of range", ErrInvalidMove, int(move))
	}
	if s.board[move] != Empty {
		return s, fmt.Errorf("%w: cell %d already holds %v", ErrInvalidMove, int(move), s.board[move])
	}
	if s.IsTerminal() {
		return s, ErrGameOver
	}

	next := s
	next.board[move] = s.turn
	next.turn = s.turn.Opponent()
	return next, nil
}

// Winner returns the mark completing the first full line, or Empty.
func (s State) Winner() Mark {
	for _, line := range Lines {
		a, b, c := s.board[line[0]], s.board[line[1]], s.board[line[2]]
		if a != Empty && a == b && b == c {
			return a
		}
	}
	return Empty
}

func (s State) full() bool {
	for _, cell := range s.board {
		if cell == Empty {
			return false
		}
	}
	return true
}

// IsDraw reports a full board without a winner.
func (s State) IsDraw() bool {
	return s.full() && s.Winner() == Empty
}

func (s State) IsTerminal() bool {
	return s.Winner() != Empty || s.full()
}

// Utility is +1 when X won, -1 when O won and 0 for a draw.
func (s State) Utility() (int, error) {
	switch s.Winner() {
	case X:
		return 1, nil
	case O:
		return -1, nil
	}
	if s.full() {
		return 0, nil
	}
	return 0, ErrNotTerminal
}

// String renders the board as three rows separated by '/', e.g. "XXX/OO./...".
func (s State) String() string {
	var sb strings.Builder
	for i, cell := range s.board {
		if i > 0 && i%Side == 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(cell.String())
	}
	return sb.String()
}
