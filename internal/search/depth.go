package search

// indexed by min(total pieces, 11), kings included
var _depthByPieceCount = [12]int{8, 8, 8, 8, 7, 6, 6, 5, 5, 4, 4, 4}

func DepthForPieceCount(pieces int) int {
	if pieces < 0 {
		pieces = 0
	}
	if pieces >= len(_depthByPieceCount) {
		pieces = len(_depthByPieceCount) - 1
	}
	return _depthByPieceCount[pieces]
}

func halveDepth(depth int) int {
	depth /= 2
	if depth < 1 {
		return 1
	}
	return depth
}

// SearchDepth is the depth ChooseMove will search pos to.
func (s *Searcher) SearchDepth(pos Position, clock Clock) int {
	if s.depth.HasValue() {
		return s.depth.Value()
	}

	depth := DepthForPieceCount(totalPieces(pos))
	if clock.MillisecondsRemaining() < s.lowTimeThreshold {
		depth = halveDepth(depth)
	}
	return depth
}
