package search

import (
	"fmt"
	"math"
)

var Inf = math.Inf(1)

// mates are scored MateScore minus the distance in plies
const _mateWindow = 100.0

func MateInPly(ply int) float64 {
	return MateScore - float64(ply)
}

func IsMate(score float64) bool {
	return math.Abs(score) > MateScore-_mateWindow && !math.IsInf(score, 0)
}

func ScoreString(score float64) string {
	if math.IsInf(score, 0) {
		return fmt.Sprint(score)
	}
	if score > MateScore-_mateWindow {
		return fmt.Sprint("mate+", int(math.Round(MateScore-score)))
	}
	if score < -MateScore+_mateWindow {
		return fmt.Sprint("mate-", int(math.Round(MateScore+score)))
	}
	return fmt.Sprintf("%.2f", score)
}
