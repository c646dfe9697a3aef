package search

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/rules"
)

var _evaluationFens = []string{
	rules.StartFen,
	"r3k2r/pppq1ppp/2np1n2/2b1p1B1/2B1P1b1/2NP1N2/PPPQ1PPP/R3K2R w KQkq - 4 8",
	"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
	"8/1P4k1/8/8/8/8/6p1/K7 w - - 0 1",
	"5b2/3kp2p/4r3/1p6/4n3/p3P1p1/3p1r2/6K1 b - - 1 46",
	"4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
	"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
	"rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2",
}

func TestEvaluateStartingPosition(t *testing.T) {
	assert.InDelta(t, 0.0, Evaluate(rules.NewBoard()), 1e-9)
}

func TestEvaluateMaterial(t *testing.T) {
	assert.InDelta(t, 5.0, Evaluate(boardFromFen(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")), 1e-9)
	assert.InDelta(t, 9.0-3.0, Evaluate(boardFromFen(t, "4k1n1/8/8/8/8/8/8/3QK3 b - - 0 1")), 1e-9)
	assert.InDelta(t, 0.0, Evaluate(boardFromFen(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")), 1e-9)
}

func TestEvaluateAdvancement(t *testing.T) {
	// pawn three ranks up
	assert.InDelta(t, 1.3, Evaluate(boardFromFen(t, "4k3/8/8/4P3/8/8/8/4K3 w - - 0 1")), 1e-9)
	// black knight two ranks down from its home rank
	assert.InDelta(t, -3.2, Evaluate(boardFromFen(t, "4k3/8/5n2/8/8/8/8/4K3 w - - 0 1")), 1e-9)

	board := rules.NewBoard()
	assert.InDelta(t, 0.0, EvaluateAdvancement(board, White), 1e-9)
	assert.InDelta(t, 0.0, EvaluateAdvancement(board, Black), 1e-9)
	assert.InDelta(t, 39.0, EvaluatePieces(board, White), 1e-9)
}

func TestEvaluateCheck(t *testing.T) {
	board := boardFromFen(t, "4k3/8/8/8/8/8/8/r3K3 w - - 0 1")
	assert.True(t, board.IsInCheck())
	assert.InDelta(t, -5.0-CheckPenalty, Evaluate(board), 1e-9)
}

func TestEvaluateCheckmate(t *testing.T) {
	board := boardFromFen(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	assert.Equal(t, -MateScore, Evaluate(board))

	board = boardFromFen(t, "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4")
	assert.Equal(t, MateScore, Evaluate(board))
}

func TestEvaluationSymmetry(t *testing.T) {
	for _, fen := range _evaluationFens {
		mirrored := mirrorFen(fen)
		assert.InDelta(t,
			Evaluate(boardFromFen(t, fen)),
			-Evaluate(boardFromFen(t, mirrored)),
			1e-9, "%v vs %v", fen, mirrored)
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	for _, fen := range _evaluationFens {
		board := boardFromFen(t, fen)
		before := board.Fen()
		Evaluate(board)
		assert.Equal(t, before, board.Fen())
	}
}

func TestMirrorFen(t *testing.T) {
	assert.Equal(t,
		"rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 1",
		mirrorFen("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"))
	assert.Equal(t, "4k3/8/8/8/8/8/8/4K3 b Kq - 0 1", mirrorFen("4k3/8/8/8/8/8/8/4K3 w Qk - 0 1"))
}
