package rules

import (
	"strconv"
	"strings"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
)

type parsedFen struct {
	normalized    string
	halfMoveClock int
}

// parseFen checks a FEN string before it reaches dragontoothmg, which assumes
// well-formed input. Missing clock fields default to "0 1".
func parseFen(fen string) (parsedFen, Error) {
	fields := strings.Fields(fen)
	if len(fields) == 4 {
		fields = append(fields, "0", "1")
	}
	if len(fields) != 6 {
		return parsedFen{}, Errorf("fen %q: expected 4 or 6 fields, got %v", fen, len(fields))
	}

	err := validatePlacement(fields[0])
	if !IsNil(err) {
		return parsedFen{}, Errorf("fen %q: %w", fen, err)
	}

	if fields[1] != "w" && fields[1] != "b" {
		return parsedFen{}, Errorf("fen %q: invalid side to move %q", fen, fields[1])
	}

	if fields[2] != "-" {
		for _, c := range fields[2] {
			if !strings.ContainsRune("KQkq", c) {
				return parsedFen{}, Errorf("fen %q: invalid castling rights %q", fen, fields[2])
			}
		}
	}

	if fields[3] != "-" {
		location, err := FileRankFromString(fields[3])
		if !IsNil(err) {
			return parsedFen{}, Errorf("fen %q: invalid en passant target: %w", fen, err)
		}
		if location.Rank != 2 && location.Rank != 5 {
			return parsedFen{}, Errorf("fen %q: en passant target %v not on the 3rd or 6th rank", fen, location)
		}
	}

	halfMoveClock, parseErr := strconv.Atoi(fields[4])
	if parseErr != nil || halfMoveClock < 0 {
		return parsedFen{}, Errorf("fen %q: invalid halfmove clock %q", fen, fields[4])
	}
	fullMoveClock, parseErr := strconv.Atoi(fields[5])
	if parseErr != nil || fullMoveClock < 1 {
		return parsedFen{}, Errorf("fen %q: invalid fullmove number %q", fen, fields[5])
	}

	return parsedFen{
		normalized:    strings.Join(fields, " "),
		halfMoveClock: halfMoveClock,
	}, NilError
}

func validatePlacement(placement string) Error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return Errorf("expected 8 ranks, got %v", len(ranks))
	}

	kings := map[rune]int{}
	for i, rank := range ranks {
		squares := 0
		for _, c := range rank {
			if c >= '1' && c <= '8' {
				squares += int(c - '0')
				continue
			}

			pieceType := PieceTypeFromString(strings.ToLower(string(c)))
			if !pieceType.IsValid() {
				return Errorf("invalid piece %q", c)
			}
			squares++
			if pieceType == King {
				kings[c]++
			}
			if pieceType == Pawn && (i == 0 || i == 7) {
				return Errorf("pawn on back rank %v", 8-i)
			}
		}
		if squares != 8 {
			return Errorf("rank %v has %v squares", 8-i, squares)
		}
	}

	if kings['K'] != 1 || kings['k'] != 1 {
		return Errorf("expected one king per side, got %v white and %v black", kings['K'], kings['k'])
	}
	return NilError
}
