package search

import (
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/bitboards"
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
)

const (
	MateScore    = 1000.0
	CheckPenalty = 1.0
)

type EvaluationBitboard struct {
	multiplier float64
	b          Bitboard
}

var _advancementScale = 0.1

var _pieceScores = [7]float64{
	5, // rook
	3, // knight
	3, // bishop
	0, // king
	9, // queen
	1, // pawn
	0,
}

var PawnAdvancementBitboards = advancementsPerPlayer(1)
var KnightAdvancementBitboards = advancementsPerPlayer(0)

// advancementsPerPlayer weights each rank by its distance from homeRank,
// counted from white's side and mirrored for black.
func advancementsPerPlayer(homeRank int) [2][]EvaluationBitboard {
	result := [2][]EvaluationBitboard{}
	for rank := homeRank + 1; rank < 8; rank++ {
		multiplier := float64(rank-homeRank) * _advancementScale
		result[White] = append(result[White], EvaluationBitboard{multiplier, RankBitboard(rank)})
		result[Black] = append(result[Black], EvaluationBitboard{multiplier, RankBitboard(rank).Mirror()})
	}
	return result
}

func evaluateAdvancementForPiece(b Bitboard, e []EvaluationBitboard) float64 {
	result := 0.0
	for _, eval := range e {
		result += eval.multiplier * float64(OnesCount(eval.b&b))
	}
	return result
}

func EvaluateAdvancement(pos Position, player Player) float64 {
	return evaluateAdvancementForPiece(pos.Pieces(Pawn, player), PawnAdvancementBitboards[player]) +
		evaluateAdvancementForPiece(pos.Pieces(Knight, player), KnightAdvancementBitboards[player])
}

func EvaluatePieces(pos Position, player Player) float64 {
	result := 0.0
	for _, pieceType := range AllPieceTypes {
		result += _pieceScores[pieceType] * float64(OnesCount(pos.Pieces(pieceType, player)))
	}
	return result
}

// Evaluate scores the position for white: positive favours white, negative
// favours black. A checkmate scores +/-MateScore.
func Evaluate(pos Position) float64 {
	if pos.IsInCheckmate() {
		return -sideToMove(pos).Sign() * MateScore
	}
	return evaluateStatic(pos)
}

func evaluateStatic(pos Position) float64 {
	result := 0.0
	for _, player := range AllPlayers {
		result += player.Sign() * (EvaluatePieces(pos, player) + EvaluateAdvancement(pos, player))
	}
	if pos.IsInCheck() {
		result -= sideToMove(pos).Sign() * CheckPenalty
	}
	return result
}
