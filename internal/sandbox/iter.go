package sandbox

// VerticalOrder controls whether a traversal visits rows bottom-up or top-down.
type VerticalOrder int

const (
	BottomUp VerticalOrder = iota
	TopDown
)

// HorizontalOrder controls the column order within a row.
type HorizontalOrder int

const (
	LeftRight HorizontalOrder = iota
	RightLeft
	RandomHorizontal
)

// CellFunc is invoked once per visited cell; returning false aborts the
// entire traversal (§4.5).
type CellFunc func(g *Grid, x, y int) bool

// traverse visits every (x, y) exactly once in the given order, skipping any
// cell whose containing chunk is inactive in the current read-set mask.
func traverse(g *Grid, v VerticalOrder, h HorizontalOrder, rng *tickRNG, fn CellFunc) {
	rows := make([]int, g.H)
	for i := range rows {
		rows[i] = i
	}
	if v == BottomUp {
		reverseInts(rows)
	}

	horiz := h
	if horiz == RandomHorizontal {
		if rng.Bool() {
			horiz = LeftRight
		} else {
			horiz = RightLeft
		}
	}

	for _, y := range rows {
		if !rowHasActiveChunk(g, y) {
			continue
		}
		cols := make([]int, g.W)
		for i := range cols {
			cols[i] = i
		}
		if horiz == RightLeft {
			reverseInts(cols)
		}
		for _, x := range cols {
			if !g.isChunkActiveAt(x, y) {
				continue
			}
			if !fn(g, x, y) {
				return
			}
		}
	}
}

func rowHasActiveChunk(g *Grid, y int) bool {
	cy := y / ChunkSize
	for cx := 0; cx < g.chunksX; cx++ {
		if g.IsChunkActive(cx, cy) {
			return true
		}
	}
	return false
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// iterateFalling is BottomUp + Random horizontal, used by the powder, fire and
// acid stages (the fluid stage runs the same order through multiPass).
func iterateFalling(g *Grid, rng *tickRNG, fn CellFunc) {
	traverse(g, BottomUp, RandomHorizontal, rng, fn)
}

// iterateRising is TopDown + Random horizontal, used by the gas stage.
func iterateRising(g *Grid, rng *tickRNG, fn CellFunc) {
	traverse(g, TopDown, RandomHorizontal, rng, fn)
}

// multiPass runs N passes of a traversal, optionally clearing the Updated
// flag on visited cells between passes. Used by the fluid stage with N=2 (§4.5).
func multiPass(g *Grid, rng *tickRNG, passes int, clearBetween bool, v VerticalOrder, h HorizontalOrder, fn CellFunc) {
	for p := 0; p < passes; p++ {
		traverse(g, v, h, rng, fn)
		if clearBetween && p < passes-1 {
			g.ClearTickFlags()
		}
	}
}
