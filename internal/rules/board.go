// Package rules is the rules engine the search consumes: legal moves,
// in-place apply/undo and terminal-state queries, backed by dragontoothmg.
package rules

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/bitboards"
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
)

const StartFen = dragontoothmg.Startpos

type appliedMove struct {
	move    Move
	unapply func()

	prevHash          uint64
	prevHalfMoveClock int
	irreversible      bool
}

// Board is a single mutable position. MakeMove and UndoMove must be called in
// strict stack order; a Board must not be copied once moves have been applied.
type Board struct {
	b dragontoothmg.Board

	halfMoveClock int
	applied       []appliedMove

	legalMovesValid bool
	legalMoves      []dragontoothmg.Move
}

func NewBoard() *Board {
	board, err := BoardFromFen(StartFen)
	if !IsNil(err) {
		panic(err)
	}
	return board
}

func BoardFromFen(fen string) (*Board, Error) {
	parsed, err := parseFen(fen)
	if !IsNil(err) {
		return nil, err
	}

	return &Board{
		b:             dragontoothmg.ParseFen(parsed.normalized),
		halfMoveClock: parsed.halfMoveClock,
	}, NilError
}

func (r *Board) Fen() string {
	return r.b.ToFen()
}

func (r *Board) Hash() uint64 {
	return r.b.Hash()
}

func (r *Board) String() string {
	return r.Fen()
}

func (r *Board) generate() []dragontoothmg.Move {
	if !r.legalMovesValid {
		r.legalMoves = r.b.GenerateLegalMoves()
		r.legalMovesValid = true
	}
	return r.legalMoves
}

func (r *Board) LegalMoves() []Move {
	moves := r.generate()
	bitboards := r.Bitboards()
	result := make([]Move, len(moves))
	for i := range moves {
		result[i] = moveFromEncoded(&bitboards, moves[i])
	}
	return result
}

func (r *Board) NumLegalMoves() int {
	return len(r.generate())
}

// ParseMove matches UCI long algebraic notation against the legal moves.
func (r *Board) ParseMove(s string) (Move, Error) {
	result := FindInSlice(r.LegalMoves(), func(m Move) bool {
		return m.String() == s
	})
	if result.IsEmpty() {
		return Move{}, Errorf("%v is not a legal move in %v", s, r.Fen())
	}
	return result.Value(), NilError
}

func (r *Board) MakeMove(m Move) {
	applied := appliedMove{
		move:              m,
		prevHash:          r.b.Hash(),
		prevHalfMoveClock: r.halfMoveClock,
		irreversible:      m.Piece == Pawn || m.MoveType.Captures(),
	}

	applied.unapply = r.b.Apply(dragontoothmg.Move(m.Encoded))
	r.applied = append(r.applied, applied)
	r.legalMovesValid = false

	if applied.irreversible {
		r.halfMoveClock = 0
	} else {
		r.halfMoveClock++
	}
}

// UndoMove reverts the most recent MakeMove, which must have been m.
func (r *Board) UndoMove(m Move) {
	if len(r.applied) == 0 {
		panic(fmt.Sprintf("undo %v with no applied moves", m))
	}
	last := r.applied[len(r.applied)-1]
	if last.move != m {
		panic(fmt.Sprintf("undo %v does not match last applied move %v", m, last.move))
	}

	last.unapply()
	r.applied = r.applied[:len(r.applied)-1]
	r.halfMoveClock = last.prevHalfMoveClock
	r.legalMovesValid = false
}

func (r *Board) NumAppliedMoves() int {
	return len(r.applied)
}

func (r *Board) IsWhiteToMove() bool {
	return r.b.Wtomove
}

func (r *Board) IsInCheck() bool {
	return r.b.OurKingInCheck()
}

func (r *Board) IsInCheckmate() bool {
	return r.IsInCheck() && len(r.generate()) == 0
}

func (r *Board) IsStalemate() bool {
	return !r.IsInCheck() && len(r.generate()) == 0
}

func (r *Board) HalfMoveClock() int {
	return r.halfMoveClock
}

func (r *Board) bitboardsFor(player Player) *dragontoothmg.Bitboards {
	if player == White {
		return &r.b.White
	}
	return &r.b.Black
}

func (r *Board) Pieces(pieceType PieceType, player Player) Bitboard {
	bb := r.bitboardsFor(player)
	switch pieceType {
	case Rook:
		return Bitboard(bb.Rooks)
	case Knight:
		return Bitboard(bb.Knights)
	case Bishop:
		return Bitboard(bb.Bishops)
	case King:
		return Bitboard(bb.Kings)
	case Queen:
		return Bitboard(bb.Queens)
	case Pawn:
		return Bitboard(bb.Pawns)
	}
	return 0
}

func (r *Board) Bitboards() Bitboards {
	result := Bitboards{}
	for _, player := range AllPlayers {
		for _, pieceType := range AllPieceTypes {
			pieces := r.Pieces(pieceType, player)
			result.Players[player].Pieces[pieceType] = pieces
			result.Players[player].Occupied |= pieces
		}
		result.Occupied |= result.Players[player].Occupied
	}
	return result
}

var _promotionPieces = map[dragontoothmg.Piece]PieceType{
	dragontoothmg.Knight: Knight,
	dragontoothmg.Bishop: Bishop,
	dragontoothmg.Rook:   Rook,
	dragontoothmg.Queen:  Queen,
}

func moveFromEncoded(bitboards *Bitboards, encoded dragontoothmg.Move) Move {
	startIndex := int(encoded.From())
	endIndex := int(encoded.To())

	_, piece := bitboards.PieceTypeAt(startIndex)
	_, captured := bitboards.PieceTypeAt(endIndex)

	moveType := QuietMove
	if piece == King && AbsDiff(startIndex, endIndex) == 2 {
		moveType = CastlingMove
	} else if captured != InvalidPiece {
		moveType = CaptureMove
	} else if piece == Pawn && startIndex%8 != endIndex%8 {
		moveType = EnPassantMove
	}

	promotion := Empty[PieceType]()
	if promotionPiece, ok := _promotionPieces[encoded.Promote()]; ok {
		promotion = Some(promotionPiece)
	}

	return Move{
		MoveType:       moveType,
		StartIndex:     startIndex,
		EndIndex:       endIndex,
		Piece:          piece,
		PromotionPiece: promotion,
		Encoded:        uint16(encoded),
	}
}
