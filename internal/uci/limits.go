package uci

import (
	"strconv"
	"time"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/search"
)

// Limits are the arguments of a "go" command, in milliseconds. WhiteTime and
// BlackTime are empty when the GUI did not send them.
type Limits struct {
	WhiteTime      Optional[int]
	BlackTime      Optional[int]
	WhiteIncrement int
	BlackIncrement int
	MovesToGo      int
	MoveTime       int
	Depth          int
}

const (
	_defaultMovesToGo = 20
	_minBudgetMillis  = 50
	_unknownRemaining = time.Hour
)

func ParseLimits(args []string) (Limits, Error) {
	result := Limits{}
	fields := map[string]func(int){
		"wtime":     func(v int) { result.WhiteTime = Some(v) },
		"btime":     func(v int) { result.BlackTime = Some(v) },
		"winc":      func(v int) { result.WhiteIncrement = v },
		"binc":      func(v int) { result.BlackIncrement = v },
		"movestogo": func(v int) { result.MovesToGo = v },
		"movetime":  func(v int) { result.MoveTime = v },
		"depth":     func(v int) { result.Depth = v },
	}

	for i := 0; i < len(args); i++ {
		set, ok := fields[args[i]]
		if !ok {
			// infinite, ponder, nodes and friends are accepted and ignored
			continue
		}
		if i+1 >= len(args) {
			return result, Errorf("go: missing value for %v", args[i])
		}
		value, err := strconv.Atoi(args[i+1])
		if err != nil {
			return result, Errorf("go: invalid value for %v: %w", args[i], err)
		}
		set(value)
		i++
	}

	return result, NilError
}

// TimeForMove returns the time the side to move has left and how many
// milliseconds to spend on this move. A clock at or below zero leaves no
// budget.
func (l Limits) TimeForMove(whiteToMove bool) (time.Duration, int) {
	if l.MoveTime > 0 {
		return _unknownRemaining, l.MoveTime
	}

	clock, inc := l.WhiteTime, l.WhiteIncrement
	if !whiteToMove {
		clock, inc = l.BlackTime, l.BlackIncrement
	}
	if clock.IsEmpty() {
		return _unknownRemaining, search.DefaultTimeBudgetMillis
	}
	main := MaxInt(clock.Value(), 0)

	movesToGo := _defaultMovesToGo
	if l.MovesToGo > 0 {
		movesToGo = MinInt(l.MovesToGo, _defaultMovesToGo)
	}

	budget := main/movesToGo + inc/2
	budget = MinInt(budget, search.DefaultTimeBudgetMillis)
	budget = MinInt(budget, main/2)
	budget = MaxInt(budget, MinInt(_minBudgetMillis, main))

	return time.Duration(main) * time.Millisecond, budget
}
