// Package clock provides the turn clocks the searcher polls.
package clock

import "time"

// TurnClock measures wall time since StartTurn against the time the side to
// move had left when the turn began.
type TurnClock struct {
	now func() time.Time

	remaining time.Duration
	turnStart time.Time
}

func NewTurnClock(remaining time.Duration) *TurnClock {
	return newTurnClockWithNow(remaining, time.Now)
}

func newTurnClockWithNow(remaining time.Duration, now func() time.Time) *TurnClock {
	c := &TurnClock{
		now:       now,
		remaining: remaining,
	}
	c.StartTurn()
	return c
}

func (c *TurnClock) StartTurn() {
	c.turnStart = c.now()
}

func (c *TurnClock) MillisecondsElapsedThisTurn() int {
	return int(c.now().Sub(c.turnStart) / time.Millisecond)
}

func (c *TurnClock) MillisecondsRemaining() int {
	remaining := int((c.remaining - c.now().Sub(c.turnStart)) / time.Millisecond)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FixedClock always reports the same readings.
type FixedClock struct {
	Elapsed   int
	Remaining int
}

func (c FixedClock) MillisecondsElapsedThisTurn() int {
	return c.Elapsed
}

func (c FixedClock) MillisecondsRemaining() int {
	return c.Remaining
}
