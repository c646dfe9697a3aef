package bench

import (
	"github.com/AcrylicShrimp/Chess-Challenge/internal/rules"
)

var Openings = []Entry{
	{Name: "start", Fen: rules.StartFen},
	{Name: "king's pawn", Fen: "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1"},
	{Name: "italian", Fen: "r1bqkbnr/pppp1ppp/2n5/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R b KQkq - 3 3"},
}

var Middlegames = []Entry{
	{Name: "both sides castle", Fen: "rn1qk2r/ppp3pp/3b1n2/3ppb2/8/2NPBNP1/PPP2PBP/R2QK2R b KQkq - 15 8"},
	{Name: "hanging queen", Fen: "4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1", BestMoves: []string{"d2d5"}},
}

var MatesInOne = []Entry{
	{Name: "back rank", Fen: "6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1", BestMoves: []string{"a1a8"}},
	{Name: "back rank black", Fen: "r5k1/5ppp/8/8/8/8/5PPP/6K1 b - - 0 1", BestMoves: []string{"a8a1"}},
	{Name: "scholar's mate", Fen: "r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w KQkq - 4 4", BestMoves: []string{"h5f7"}},
	{Name: "promotion", Fen: "5b2/3kp2p/4r3/1p6/4n3/p3P1p1/3p1r2/6K1 b - - 1 46", BestMoves: []string{"d2d1q", "d2d1r"}},
}

var Endgames = []Entry{
	{Name: "king and pawn", Fen: "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1"},
	{Name: "king and queen", Fen: "8/8/8/4k3/8/8/3QK3/8 w - - 0 1"},
	{Name: "king and rook", Fen: "8/8/4k3/8/8/8/R7/4K3 w - - 0 1"},
}

// DefaultSuite is every built-in position.
func DefaultSuite() []Entry {
	result := []Entry{}
	for _, entries := range [][]Entry{Openings, Middlegames, MatesInOne, Endgames} {
		result = append(result, entries...)
	}
	return result
}
