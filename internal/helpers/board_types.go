package helpers

type File uint
type Rank uint

type FileRank struct {
	File File
	Rank Rank
}

type Player uint

const (
	White Player = iota
	Black
)

var AllPlayers = [2]Player{White, Black}

var _playerStrings = [2]string{
	"white", "black",
}

func (p Player) String() string {
	return _playerStrings[p]
}

func (p Player) Other() Player {
	return 1 - p
}

// Sign is +1 for white and -1 for black: scores are white-positive.
func (p Player) Sign() float64 {
	if p == White {
		return 1
	}
	return -1
}

type PieceType uint

const (
	Rook PieceType = iota
	Knight
	Bishop
	King
	Queen
	Pawn
	InvalidPiece
)

var AllPieceTypes = [6]PieceType{Rook, Knight, Bishop, King, Queen, Pawn}

func (p PieceType) String() string {
	return [7]string{
		"r", "n", "b", "k", "q", "p", "?",
	}[p]
}

func (p PieceType) IsValid() bool {
	return p >= Rook && p <= Pawn
}

func PieceTypeFromString(s string) PieceType {
	switch s {
	case "r":
		return Rook
	case "n":
		return Knight
	case "b":
		return Bishop
	case "k":
		return King
	case "q":
		return Queen
	case "p":
		return Pawn
	default:
		return InvalidPiece
	}
}

func (f File) String() string {
	return [8]string{
		"a", "b", "c", "d", "e", "f", "g", "h",
	}[f]
}
func (r Rank) String() string {
	return [8]string{
		"1", "2", "3", "4", "5", "6", "7", "8",
	}[r]
}

func RankFromChar(c byte) (Rank, Error) {
	rank := int(c) - '1'
	if rank < 0 || rank >= 8 {
		return 0, Errorf("rank invalid %q", c)
	}
	return Rank(rank), NilError
}

func FileFromChar(c byte) (File, Error) {
	file := int(c) - 'a'
	if file < 0 || file >= 8 {
		return 0, Errorf("file invalid %q", c)
	}
	return File(file), NilError
}

func (v FileRank) String() string {
	return v.File.String() + v.Rank.String()
}

func FileRankFromString(s string) (FileRank, Error) {
	if len(s) != 2 {
		return FileRank{}, Errorf("invalid location %v", s)
	}

	file, fileErr := FileFromChar(s[0])
	rank, rankErr := RankFromChar(s[1])
	if !IsNil(fileErr) || !IsNil(rankErr) {
		return FileRank{}, Errorf("invalid location %v: %w", s, Join(fileErr, rankErr))
	}

	return FileRank{file, rank}, NilError
}

func IndexFromFileRank(location FileRank) int {
	return int(location.Rank)*8 + int(location.File)
}

func FileRankFromIndex(index int) FileRank {
	f := File(index & 0b111)
	r := Rank(index >> 3)
	return FileRank{f, r}
}

func StringFromBoardIndex(index int) string {
	return FileRankFromIndex(index).String()
}

type MoveType int

const (
	QuietMove MoveType = iota
	CaptureMove
	CastlingMove
	EnPassantMove
)

func (t MoveType) Captures() bool {
	return t == CaptureMove || t == EnPassantMove
}

func (t MoveType) String() string {
	switch t {
	case QuietMove:
		return "QuietMove"
	case CaptureMove:
		return "CaptureMove"
	case CastlingMove:
		return "CastlingMove"
	case EnPassantMove:
		return "EnPassantMove"
	}
	return "Invalid"
}

// Move is produced by the rules engine. It is comparable, so two moves are the
// same move exactly when they are ==. Encoded is the rules engine's own
// representation and is opaque to everything else.
type Move struct {
	MoveType       MoveType
	StartIndex     int
	EndIndex       int
	Piece          PieceType
	PromotionPiece Optional[PieceType]
	Encoded        uint16
}

func (m Move) IsCastling() bool {
	return m.MoveType == CastlingMove
}

func (m Move) String() string {
	if m.PromotionPiece.HasValue() {
		return StringFromBoardIndex(m.StartIndex) + StringFromBoardIndex(m.EndIndex) + m.PromotionPiece.Value().String()
	}
	return StringFromBoardIndex(m.StartIndex) + StringFromBoardIndex(m.EndIndex)
}

func (m Move) DebugString() string {
	if m.PromotionPiece.HasValue() {
		return StringFromBoardIndex(m.StartIndex) + StringFromBoardIndex(m.EndIndex) + m.PromotionPiece.Value().String()
	}
	if m.MoveType.Captures() {
		return StringFromBoardIndex(m.StartIndex) + "x" + StringFromBoardIndex(m.EndIndex)
	}
	if m.IsCastling() {
		return StringFromBoardIndex(m.StartIndex) + StringFromBoardIndex(m.EndIndex) + " (castle)"
	}
	return StringFromBoardIndex(m.StartIndex) + StringFromBoardIndex(m.EndIndex)
}
