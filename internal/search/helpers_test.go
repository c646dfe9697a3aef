package search

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/rules"
)

// fixedRand cycles through values; with no values it always returns 0.5,
// which gives zero jitter.
type fixedRand struct {
	values []float64
	i      int
}

func (r *fixedRand) Float64() float64 {
	if len(r.values) == 0 {
		return 0.5
	}
	v := r.values[r.i%len(r.values)]
	r.i++
	return v
}

func boardFromFen(t *testing.T, fen string) *rules.Board {
	board, err := rules.BoardFromFen(fen)
	require.True(t, IsNil(err), err)
	return board
}

func swapCase(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsUpper(r) {
			return unicode.ToLower(r)
		}
		return unicode.ToUpper(r)
	}, s)
}

// mirrorFen flips the board vertically and swaps the colors of every piece
// and right, so white's position becomes black's.
func mirrorFen(fen string) string {
	fields := strings.Fields(fen)

	ranks := strings.Split(fields[0], "/")
	for i, j := 0, len(ranks)-1; i < j; i, j = i+1, j-1 {
		ranks[i], ranks[j] = ranks[j], ranks[i]
	}
	fields[0] = swapCase(strings.Join(ranks, "/"))

	if fields[1] == "w" {
		fields[1] = "b"
	} else {
		fields[1] = "w"
	}

	if fields[2] != "-" {
		swapped := swapCase(fields[2])
		castling := ""
		for _, c := range "KQkq" {
			if strings.ContainsRune(swapped, c) {
				castling += string(c)
			}
		}
		fields[2] = castling
	}

	if fields[3] != "-" {
		rank := "6"
		if fields[3][1] == '6' {
			rank = "3"
		}
		fields[3] = fields[3][:1] + rank
	}

	return strings.Join(fields, " ")
}

func moveStrings(moves []Move) []string {
	return MapSlice(moves, func(m Move) string { return m.String() })
}
