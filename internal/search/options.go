package search

import (
	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
)

const (
	DefaultTimeBudgetMillis       = 3000
	DefaultLowTimeThresholdMillis = 10000
	DefaultContempt               = 0.1
)

type SearchOption interface {
	apply(s *Searcher)
}

type WithLogger struct {
	Logger Logger
}

func (o WithLogger) apply(s *Searcher) {
	s.Logger = o.Logger
}

type WithRand struct {
	Rand Rand
}

func (o WithRand) apply(s *Searcher) {
	s.rand = o.Rand
}

// WithDepth replaces the piece-count depth table with a fixed depth.
type WithDepth struct {
	Depth int
}

func (o WithDepth) apply(s *Searcher) {
	s.depth = Some(MaxInt(o.Depth, 1))
}

type WithTimeBudget struct {
	Millis int
}

func (o WithTimeBudget) apply(s *Searcher) {
	s.timeBudget = o.Millis
}

type WithLowTimeThreshold struct {
	Millis int
}

func (o WithLowTimeThreshold) apply(s *Searcher) {
	s.lowTimeThreshold = o.Millis
}

// WithContempt sets how much the searching side dislikes a draw.
type WithContempt struct {
	Contempt float64
}

func (o WithContempt) apply(s *Searcher) {
	s.contempt = o.Contempt
}

type WithSearchTrace struct {
	Trace *SearchTrace
}

func (o WithSearchTrace) apply(s *Searcher) {
	s.trace = o.Trace
}
