package uci

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	. "github.com/AcrylicShrimp/Chess-Challenge/internal/helpers"
	"github.com/AcrylicShrimp/Chess-Challenge/internal/search"
)

func TestParseLimits(t *testing.T) {
	limits, err := ParseLimits([]string{"wtime", "1000", "btime", "2000", "winc", "10", "binc", "20", "movestogo", "5"})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Limits{
		WhiteTime:      Some(1000),
		BlackTime:      Some(2000),
		WhiteIncrement: 10,
		BlackIncrement: 20,
		MovesToGo:      5,
	}, limits)

	limits, err = ParseLimits([]string{"infinite", "depth", "3", "ponder"})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Limits{Depth: 3}, limits)

	limits, err = ParseLimits([]string{"wtime", "0", "btime", "-20"})
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Limits{WhiteTime: Some(0), BlackTime: Some(-20)}, limits)

	limits, err = ParseLimits(nil)
	assert.True(t, IsNil(err), err)
	assert.Equal(t, Limits{}, limits)

	_, err = ParseLimits([]string{"movetime"})
	assert.True(t, err.HasError())

	_, err = ParseLimits([]string{"wtime", "soon"})
	assert.True(t, err.HasError())
}

func TestTimeForMove(t *testing.T) {
	testCases := []struct {
		name      string
		limits    Limits
		white     bool
		remaining time.Duration
		budget    int
	}{
		{"nothing given", Limits{}, true, time.Hour, search.DefaultTimeBudgetMillis},
		{"movetime", Limits{MoveTime: 500, WhiteTime: Some(10)}, true, time.Hour, 500},
		{"plenty", Limits{WhiteTime: Some(600000)}, true, 600 * time.Second, search.DefaultTimeBudgetMillis},
		{"moves to go", Limits{WhiteTime: Some(20000), MovesToGo: 10}, true, 20 * time.Second, 2000},
		{"increment", Limits{BlackTime: Some(20000), BlackIncrement: 1000}, false, 20 * time.Second, 1500},
		{"half of what is left", Limits{BlackTime: Some(100), BlackIncrement: 1000}, false, 100 * time.Millisecond, 50},
		{"floor", Limits{WhiteTime: Some(400)}, true, 400 * time.Millisecond, 50},
		{"almost flagged", Limits{WhiteTime: Some(30)}, true, 30 * time.Millisecond, 30},
		{"flagged", Limits{WhiteTime: Some(0), WhiteIncrement: 1000}, true, 0, 0},
		{"lagging", Limits{BlackTime: Some(-250), BlackIncrement: 1000}, false, 0, 0},
		{"other side's clock", Limits{WhiteTime: Some(20000)}, false, time.Hour, search.DefaultTimeBudgetMillis},
	}

	for _, tc := range testCases {
		remaining, budget := tc.limits.TimeForMove(tc.white)
		assert.Equal(t, tc.remaining, remaining, tc.name)
		assert.Equal(t, tc.budget, budget, tc.name)
	}
}
