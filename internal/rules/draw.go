package rules

import (
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/bitboards"
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
)

const FiftyMoveRuleHalfMoves = 100

// IsDraw reports stalemate, the fifty-move rule, threefold repetition and
// insufficient material. Checkmate is not a draw even on the hundredth ply.
func (r *Board) IsDraw() bool {
	if r.IsInCheckmate() {
		return false
	}
	return r.IsStalemate() ||
		r.halfMoveClock >= FiftyMoveRuleHalfMoves ||
		r.IsRepetition(3) ||
		r.IsInsufficientMaterial()
}

// IsRepetition reports whether the current position has occurred at least n
// times, counting only positions reached through this Board's moves.
func (r *Board) IsRepetition(n int) bool {
	current := r.b.Hash()
	occurrences := 1
	for i := len(r.applied) - 1; i >= 0; i-- {
		if r.applied[i].irreversible {
			break
		}
		if r.applied[i].prevHash == current {
			occurrences++
			if occurrences >= n {
				return true
			}
		}
	}
	return occurrences >= n
}

func (r *Board) IsInsufficientMaterial() bool {
	for _, player := range AllPlayers {
		if r.Pieces(Pawn, player)|r.Pieces(Rook, player)|r.Pieces(Queen, player) != 0 {
			return false
		}
	}

	knights := r.Pieces(Knight, White) | r.Pieces(Knight, Black)
	bishops := r.Pieces(Bishop, White) | r.Pieces(Bishop, Black)
	minors := OnesCount(knights) + OnesCount(bishops)

	if minors <= 1 {
		return true
	}

	// any number of bishops all on one square color cannot mate
	if knights == 0 && (bishops&LightSquares == 0 || bishops&DarkSquares == 0) {
		return true
	}
	return false
}
