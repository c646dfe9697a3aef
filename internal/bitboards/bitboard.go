package bitboards

import (
	"fmt"
	"math/bits"
	"strings"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
)

// Bitboard has bit i set when square i (a1 = 0, h8 = 63) is occupied.
type Bitboard uint64

type PlayerBitboards struct {
	Occupied Bitboard
	Pieces   [6]Bitboard // indexed via PieceType
}

type Bitboards struct {
	Occupied Bitboard
	Players  [2]PlayerBitboards
}

// PieceTypeAt returns InvalidPiece for an empty square.
func (b *Bitboards) PieceTypeAt(index int) (Player, PieceType) {
	single := SingleBitboard(index)
	for _, player := range AllPlayers {
		if b.Players[player].Occupied&single == 0 {
			continue
		}
		for _, pieceType := range AllPieceTypes {
			if b.Players[player].Pieces[pieceType]&single != 0 {
				return player, pieceType
			}
		}
	}
	return White, InvalidPiece
}

var SingleBitboards [64]Bitboard = func() [64]Bitboard {
	result := [64]Bitboard{}
	for i := 0; i < 64; i++ {
		result[i] = Bitboard(1) << i
	}
	return result
}()

func SingleBitboard(index int) Bitboard {
	return SingleBitboards[index]
}

var RankBitboards [8]Bitboard = func() [8]Bitboard {
	result := [8]Bitboard{}
	for rank := 0; rank < 8; rank++ {
		result[rank] = Bitboard(0xff) << (rank * 8)
	}
	return result
}()

func RankBitboard(rank int) Bitboard {
	return RankBitboards[rank]
}

var (
	LightSquares Bitboard = 0x55aa55aa55aa55aa
	DarkSquares  Bitboard = ^LightSquares
)

func OnesCount(b Bitboard) int {
	return bits.OnesCount64(uint64(b))
}

// Mirror flips the board vertically, rank 1 <-> rank 8.
func (b Bitboard) Mirror() Bitboard {
	return Bitboard(bits.ReverseBytes64(uint64(b)))
}

func (b Bitboard) String() string {
	ranks := [8]string{}
	for rank := 0; rank < 8; rank++ {
		row := uint8(b >> (rank * 8))
		// print a-file first
		ranks[7-rank] = fmt.Sprintf("%08b", bits.Reverse8(row))
	}

	return strings.Join(ranks[0:], "\n")
}

func BitboardFromStrings(strings [8]string) Bitboard {
	b := Bitboard(0)
	for inverseRank, line := range strings {
		for file, c := range line {
			if c == '1' {
				index := IndexFromFileRank(FileRank{File: File(file), Rank: Rank(7 - inverseRank)})
				b |= SingleBitboard(index)
			}
		}
	}
	return b
}
