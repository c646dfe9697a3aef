package uci

import (
	"fmt"
	"strings"
	"time"

	"github.com/AcrylicShrimp/Chess-Challenge/internal/clock"
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/rules"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/search"
)

type Position struct {
	Fen   string
	Moves []string
}

type RunnerOptions struct {
	SearchOptions []search.SearchOption
	Logger        Optional[Logger]
}

// Runner keeps the game a UCI session is playing. Moves are replayed
// incrementally when the GUI resends the same game with new moves appended.
type Runner struct {
	Logger Logger

	searchOptions []search.SearchOption

	board    *rules.Board
	StartFen string
	history  []Move
}

func NewRunner(opts RunnerOptions) *Runner {
	return &Runner{
		Logger:        opts.Logger.ValueOr(&SilentLogger),
		searchOptions: opts.SearchOptions,
	}
}

func (r *Runner) Reset() {
	r.board = nil
	r.StartFen = ""
	r.history = nil
}

func (r *Runner) IsNew() bool {
	return r.board == nil
}

func (r *Runner) Board() *rules.Board {
	return r.board
}

func (r *Runner) SetupPosition(position Position) Error {
	r.Reset()

	board, err := rules.BoardFromFen(position.Fen)
	if !IsNil(err) {
		return Errorf("couldn't create game from %v: %w", position.Fen, err)
	}
	r.board = board
	r.StartFen = position.Fen

	for _, m := range position.Moves {
		err := r.PerformMoveFromString(m)
		if !IsNil(err) {
			r.Reset()
			return err
		}
	}

	return NilError
}

func firstIndexNotMatching[A any, B any](a []A, b []B, matches func(A, B) bool) int {
	for i := 0; i < MinInt(len(a), len(b)); i++ {
		if !matches(a[i], b[i]) {
			return i
		}
	}
	return MinInt(len(a), len(b))
}

// PerformMoves brings the game to startFen followed by moves, reusing as
// much of the current history as possible.
func (r *Runner) PerformMoves(startFen string, moves []string) Error {
	if r.IsNew() || r.StartFen != startFen {
		return r.SetupPosition(Position{Fen: startFen, Moves: moves})
	}

	startIndex := firstIndexNotMatching(r.history, moves, func(a Move, b string) bool {
		return a.String() == b
	})
	r.Rewind(len(r.history) - startIndex)

	for i := startIndex; i < len(moves); i++ {
		err := r.PerformMoveFromString(moves[i])
		if !IsNil(err) {
			r.Reset()
			return err
		}
	}

	return NilError
}

func (r *Runner) PerformMoveFromString(s string) Error {
	if r.IsNew() {
		return Errorf("no position to play %v in", s)
	}
	move, err := r.board.ParseMove(s)
	if !IsNil(err) {
		return Errorf("PerformMoveFromString: %w", err)
	}
	r.board.MakeMove(move)
	r.history = append(r.history, move)
	return NilError
}

func (r *Runner) Rewind(num int) {
	for i := 0; i < MinInt(num, len(r.history)); i++ {
		last := r.history[len(r.history)-1]
		r.board.UndoMove(last)
		r.history = r.history[:len(r.history)-1]
	}
}

func (r *Runner) FenString() string {
	if r.IsNew() {
		return ""
	}
	return r.board.Fen()
}

func (r *Runner) MoveHistory() []string {
	return MapSlice(r.history, func(m Move) string {
		return m.String()
	})
}

// PgnFromMoveHistory numbers the moves played since the start position, e.g.
// "1. e2e4 e7e5 2. g1f3".
func (r *Runner) PgnFromMoveHistory() string {
	parts := []string{}
	for i, move := range r.history {
		if i%2 == 0 {
			parts = append(parts, fmt.Sprintf("%v.", i/2+1))
		}
		parts = append(parts, move.String())
	}
	return strings.Join(parts, " ")
}

// Search chooses a move for the current position under limits. A searcher is
// built per call so nothing carries over between turns.
func (r *Runner) Search(limits Limits) (Optional[string], Error) {
	if r.IsNew() {
		return Empty[string](), Errorf("position not setup")
	}
	if r.board.NumLegalMoves() == 0 {
		return Empty[string](), Errorf("no legal moves in %v", r.board.Fen())
	}

	remaining, budget := limits.TimeForMove(r.board.IsWhiteToMove())

	options := []search.SearchOption{search.WithLogger{Logger: r.Logger}}
	options = append(options, r.searchOptions...)
	options = append(options, search.WithTimeBudget{Millis: budget})
	if limits.Depth > 0 {
		options = append(options, search.WithDepth{Depth: limits.Depth})
	}

	c := clock.NewTurnClock(remaining)
	move := search.NewSearcher(options...).ChooseMove(r.board, c)

	r.Logger.Printf("%v in %v from %v\n", move.String(),
		time.Duration(c.MillisecondsElapsedThisTurn())*time.Millisecond, r.FenString())

	return Some(move.String()), NilError
}
