package game

import "fmt"

// Mark is the content of a cell, and doubles as the player identifier.
type Mark int8

const (
	Empty Mark = iota
	X          // maximizing player
	O          // minimizing player
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player, or Empty for Empty.
func (m Mark) Opponent() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

func (m Mark) IsPlayer() bool {
	return m == X || m == O
}

// ParseMark accepts "X"/"x" and "O"/"o".
func ParseMark(s string) (Mark, error) {
	switch s {
	case "X", "x":
		return X, nil
	case "O", "o":
		return O, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidMark, s)
}

// Move is a cell index in row-major order, 0 being the top left cell.
type Move int

// NoMove is returned by searches on terminal states.
const NoMove Move = -1

func (m Move) Valid() bool {
	return m >= 0 && m < Cells
}

// Row and Col are zero based.
func (m Move) Row() int { return int(m) / Side }
func (m Move) Col() int { return int(m) % Side }

func (m Move) String() string {
	if !m.Valid() {
		return "none"
	}
	return fmt.Sprintf("%d(%d,%d)", int(m), m.Row(), m.Col())
}
