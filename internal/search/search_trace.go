package search

import (
	"fmt"
	"strings"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
)

type searchTraceLine struct {
	DebugString string
	Depth       int
	Alpha       float64
	Beta        float64
	Score       Optional[float64]
}

// SearchTrace records every move the searcher explores. Attach one with
// WithSearchTrace; it is appended to across searches until Reset.
type SearchTrace struct {
	CurrentDepth int
	Result       []searchTraceLine
}

func (s *SearchTrace) Reset() {
	s.CurrentDepth = 0
	s.Result = nil
}

// DebugString prints completed moves shallower than depth, deepest first.
func (s *SearchTrace) DebugString(depth int) string {
	result := ""
	for i := range s.Result {
		line := s.Result[len(s.Result)-i-1]
		if line.Depth >= depth {
			continue
		}
		if line.Score.HasValue() {
			result += fmt.Sprintf("%v%v (%v %v) %v\n",
				strings.Repeat(" ", line.Depth),
				line.DebugString,
				ScoreString(line.Alpha),
				ScoreString(line.Beta),
				ScoreString(line.Score.Value()))
		}
	}
	return result
}

func (s *SearchTrace) MovePush(move string, alpha float64, beta float64) {
	s.Result = append(s.Result, searchTraceLine{
		DebugString: "> " + move,
		Depth:       s.CurrentDepth,
		Alpha:       alpha,
		Beta:        beta,
	})
	s.CurrentDepth += 1
}

// MovePop closes the last push. An empty score marks a move abandoned by
// the time cutoff.
func (s *SearchTrace) MovePop(move string, alpha float64, beta float64, score Optional[float64]) {
	s.CurrentDepth -= 1
	s.Result = append(s.Result, searchTraceLine{
		DebugString: "$ " + move,
		Depth:       s.CurrentDepth,
		Alpha:       alpha,
		Beta:        beta,
		Score:       score,
	})
}

// NumMoves counts the moves that were explored to completion.
func (s *SearchTrace) NumMoves() int {
	n := 0
	for _, line := range s.Result {
		if line.Score.HasValue() {
			n++
		}
	}
	return n
}
