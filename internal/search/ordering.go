package search

import (
	"sort"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
)

const (
	CastlingBonus   = 0.5
	KingMovePenalty = 0.5
	OrderingJitter  = 0.05
)

type ScoredMove struct {
	Move  Move
	Score float64
}

// ScoreMove plays the move, scores the result for the side that moved and
// takes the move back.
func ScoreMove(pos Position, move Move, rand Rand) float64 {
	mover := sideToMove(pos)

	pos.MakeMove(move)
	score := mover.Sign() * Evaluate(pos)
	pos.UndoMove(move)

	if move.IsCastling() {
		score += CastlingBonus
	} else if move.Piece == King {
		score -= KingMovePenalty
	}

	return score + (rand.Float64()*2-1)*OrderingJitter
}

// OrderMoves returns the moves best first. The input slice is left as is.
func OrderMoves(pos Position, moves []Move, rand Rand) []Move {
	scored := make([]ScoredMove, len(moves))
	for i, move := range moves {
		scored[i] = ScoredMove{move, ScoreMove(pos, move, rand)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	return MapSlice(scored, func(m ScoredMove) Move {
		return m.Move
	})
}
