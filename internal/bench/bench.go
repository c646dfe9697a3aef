// Package bench runs the searcher over a fixed set of positions and reports
// what it played, how long it took and how many nodes it visited.
package bench

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"github.com/AcrylicShrimp/Chess-Challenge/internal/clock"
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/rules"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/search"
)

type Entry struct {
	Name string
	Fen  string
	// BestMoves, when set, are the moves that count as solving the position.
	BestMoves []string
}

type Options struct {
	TimeBudgetMillis int
	// Depth overrides the piece-count depth table when positive.
	Depth int
	// Jobs is the number of positions searched at once.
	Jobs int
	// Progress receives a progress bar when set.
	Progress      io.Writer
	SearchOptions []search.SearchOption
}

type Result struct {
	Entry
	Move     string
	Duration time.Duration
	Stats    search.Stats
}

// Solved is empty for positions without known best moves.
func (r Result) Solved() Optional[bool] {
	if len(r.BestMoves) == 0 {
		return Empty[bool]()
	}
	return Some(Contains(r.BestMoves, r.Move))
}

func runEntry(entry Entry, options []search.SearchOption) (Result, Error) {
	board, err := rules.BoardFromFen(entry.Fen)
	if !IsNil(err) {
		return Result{}, Errorf("%v: %w", entry.Name, err)
	}
	if board.NumLegalMoves() == 0 {
		return Result{}, Errorf("%v: no legal moves in %v", entry.Name, entry.Fen)
	}

	searcher := search.NewSearcher(options...)
	start := time.Now()
	move := searcher.ChooseMove(board, clock.NewTurnClock(time.Hour))

	return Result{
		Entry:    entry,
		Move:     move.String(),
		Duration: time.Since(start),
		Stats:    searcher.Stats(),
	}, NilError
}

// Run searches every entry with its own board and searcher. Results are in
// the order of entries.
func Run(ctx context.Context, entries []Entry, opts Options) ([]Result, Error) {
	options := []search.SearchOption{search.WithLogger{Logger: &SilentLogger}}
	options = append(options, opts.SearchOptions...)
	if opts.TimeBudgetMillis > 0 {
		options = append(options, search.WithTimeBudget{Millis: opts.TimeBudgetMillis})
	}
	if opts.Depth > 0 {
		options = append(options, search.WithDepth{Depth: opts.Depth})
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(entries),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription("bench"),
			progressbar.OptionShowCount(),
		)
	}

	results := make([]Result, len(entries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(MaxInt(opts.Jobs, 1))
	for i, entry := range entries {
		i, entry := i, entry
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}

			result, err := runEntry(entry, options)
			if !IsNil(err) {
				return err
			}
			results[i] = result

			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Wrap(err)
	}
	if bar != nil {
		_ = bar.Finish()
		fmt.Fprintln(opts.Progress)
	}

	return results, NilError
}

// Report writes one line per result followed by totals.
func Report(w io.Writer, results []Result) {
	nodes := 0
	solved, known := 0, 0
	elapsed := time.Duration(0)

	for _, r := range results {
		status := ""
		if s := r.Solved(); s.HasValue() {
			known++
			if s.Value() {
				solved++
				status = " ok"
			} else {
				status = fmt.Sprintf(" expected %v", r.BestMoves)
			}
		}

		searched := fmt.Sprintf("depth %v score %v", r.Stats.Depth, search.ScoreString(r.Stats.Score))
		if r.Stats.Forced {
			searched = "forced"
		}

		fmt.Fprintf(w, "%-24s %-6s %v nodes %v in %v%s\n",
			r.Name, r.Move, searched,
			humanize.Comma(int64(r.Stats.Nodes)), r.Duration.Round(time.Millisecond), status)

		nodes += r.Stats.Nodes
		elapsed += r.Duration
	}

	fmt.Fprintf(w, "positions %v, solved %v/%v, nodes %v, search time %v\n",
		len(results), solved, known, humanize.Comma(int64(nodes)), elapsed.Round(time.Millisecond))
	if elapsed > 0 {
		fmt.Fprintf(w, "%v nodes/s\n", humanize.Comma(int64(float64(nodes)/elapsed.Seconds())))
	}
}
