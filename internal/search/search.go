package search

import (
	"math"
	"math/rand"
	"time"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
)

type Stats struct {
	Depth         int
	Nodes         int
	Evaluations   int
	ElapsedMillis int
	OutOfTime     bool
	Score         float64
	// Forced is set when there was a single legal move and nothing was searched.
	Forced bool
}

type Searcher struct {
	Logger Logger

	rand             Rand
	depth            Optional[int]
	timeBudget       int
	lowTimeThreshold int
	contempt         float64
	trace            *SearchTrace

	// valid for the duration of one ChooseMove
	pos       Position
	clock     Clock
	rootSign  float64
	rootMoves []Move
	outOfTime bool

	stats Stats
}

func NewSearcher(options ...SearchOption) *Searcher {
	s := &Searcher{
		Logger:           DefaultLogger,
		rand:             rand.New(rand.NewSource(time.Now().UnixNano())),
		timeBudget:       DefaultTimeBudgetMillis,
		lowTimeThreshold: DefaultLowTimeThresholdMillis,
		contempt:         DefaultContempt,
	}
	for _, option := range options {
		option.apply(s)
	}
	return s
}

// ChooseMove picks a move for the side to move in pos. pos must have at least
// one legal move; it is returned to its original state.
func ChooseMove(pos Position, clock Clock, options ...SearchOption) Move {
	return NewSearcher(options...).ChooseMove(pos, clock)
}

// Stats describes the most recent ChooseMove.
func (s *Searcher) Stats() Stats {
	return s.stats
}

func (s *Searcher) ChooseMove(pos Position, clock Clock) Move {
	s.begin(pos, clock)
	defer s.end()

	moves := pos.LegalMoves()
	if len(moves) == 1 {
		s.stats.Forced = true
		s.stats.ElapsedMillis = clock.MillisecondsElapsedThisTurn()
		s.Logger.Println("only legal move", moves[0].String())
		return moves[0]
	}

	s.rootMoves = s.orderMoves(moves)
	s.stats.Depth = s.SearchDepth(pos, clock)

	score, best := s.negamax(s.stats.Depth, -Inf, Inf, 1, 0)

	s.stats.Score = score
	s.stats.OutOfTime = s.outOfTime
	s.stats.ElapsedMillis = clock.MillisecondsElapsedThisTurn()

	if best.IsEmpty() {
		s.Logger.Println("no move completed before cutoff, falling back to", s.rootMoves[0].String())
		return s.rootMoves[0]
	}

	s.Logger.Printf("evaluated %v to depth %v: %v (nodes %v, evaluations %v, %vms, cutoff %v)\n",
		best.Value().String(),
		s.stats.Depth,
		ScoreString(score),
		s.stats.Nodes,
		s.stats.Evaluations,
		s.stats.ElapsedMillis,
		s.stats.OutOfTime)

	return best.Value()
}

func (s *Searcher) begin(pos Position, clock Clock) {
	s.pos = pos
	s.clock = clock
	s.rootSign = sideToMove(pos).Sign()
	s.rootMoves = nil
	s.outOfTime = false
	s.stats = Stats{}
}

func (s *Searcher) end() {
	s.pos = nil
	s.clock = nil
	s.rootMoves = nil
}

func (s *Searcher) orderMoves(moves []Move) []Move {
	s.stats.Evaluations += len(moves)
	return OrderMoves(s.pos, moves, s.rand)
}

func (s *Searcher) isOutOfTime() bool {
	if !s.outOfTime && s.clock.MillisecondsElapsedThisTurn() > s.timeBudget {
		s.outOfTime = true
	}
	return s.outOfTime
}

// negamax scores the position for the side to move. colorSign is 1 when that
// side is the root's and -1 otherwise; each ply flips it.
func (s *Searcher) negamax(depth int, alpha float64, beta float64, colorSign float64, ply int) (float64, Optional[Move]) {
	s.stats.Nodes++

	if s.pos.IsInCheckmate() {
		mate := -sideToMove(s.pos).Sign() * MateInPly(ply)
		return colorSign * s.rootSign * mate, Empty[Move]()
	}
	// a drawn root still has to produce a move
	if ply > 0 && s.pos.IsDraw() {
		return colorSign * -s.contempt, Empty[Move]()
	}
	if depth <= 0 {
		s.stats.Evaluations++
		return colorSign * s.rootSign * evaluateStatic(s.pos), Empty[Move]()
	}

	var moves []Move
	if ply == 0 && s.rootMoves != nil {
		moves = s.rootMoves
	} else {
		moves = s.orderMoves(s.pos.LegalMoves())
	}

	bestScore := -Inf
	best := Empty[Move]()

	for _, move := range moves {
		if s.isOutOfTime() {
			break
		}

		if s.trace != nil {
			s.trace.MovePush(move.String(), alpha, beta)
		}

		s.pos.MakeMove(move)
		childScore, _ := s.negamax(depth-1, -beta, -alpha, -colorSign, ply+1)
		s.pos.UndoMove(move)

		if s.outOfTime {
			// the child was cut short, its score is partial
			if s.trace != nil {
				s.trace.MovePop(move.String(), alpha, beta, Empty[float64]())
			}
			break
		}

		score := -childScore
		if s.trace != nil {
			s.trace.MovePop(move.String(), alpha, beta, Some(score))
		}

		if score > bestScore {
			bestScore = score
			best = Some(move)
		}

		alpha = math.Max(alpha, bestScore)
		if alpha >= beta {
			break
		}
	}

	return bestScore, best
}
