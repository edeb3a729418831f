package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluateLines(t *testing.T) {
	tests := []struct {
		name  string
		board string
		turn  Mark
		want  int
	}{
		{"empty board", ".../.../...", X, 0},
		{"single open two for X", "XX./O../...", O, 10},
		{"single open two for O", "OO./X../..X", X, -10},
		{"blocked line scores nothing", "XXO/.../...", O, 0},
		{"X fork", "X.X/.O./X.O", O, 20},
		{"open twos cancel out", "XX./OO./...", X, 0},
		{"open two for O beside a blocked diagonal", "X../.X./O.O", X, -10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MustParse(tt.board, tt.turn)
			require.Equal(t, tt.want, EvaluateLines(s))
		})
	}
}
