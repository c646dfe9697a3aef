package search

import (
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/bitboards"
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
)

// Position is the mutable board the searcher walks. MakeMove and UndoMove
// must be exact inverses; the searcher never copies a Position.
type Position interface {
	LegalMoves() []Move
	MakeMove(m Move)
	UndoMove(m Move)

	IsInCheckmate() bool
	IsDraw() bool
	IsInCheck() bool
	IsWhiteToMove() bool

	Pieces(pieceType PieceType, player Player) Bitboard
}

type Clock interface {
	MillisecondsElapsedThisTurn() int
	MillisecondsRemaining() int
}

// Rand supplies move ordering jitter in [0, 1).
type Rand interface {
	Float64() float64
}

func sideToMove(pos Position) Player {
	if pos.IsWhiteToMove() {
		return White
	}
	return Black
}

func totalPieces(pos Position) int {
	total := 0
	for _, player := range AllPlayers {
		for _, pieceType := range AllPieceTypes {
			total += OnesCount(pos.Pieces(pieceType, player))
		}
	}
	return total
}
