package sandbox

import "testing"

func TestTraverseVisitsEveryActiveCellExactlyOnce(t *testing.T) {
	g := NewGrid(10, 10)
	rng := newTickRNG(1)
	visits := map[[2]int]int{}
	traverse(g, BottomUp, LeftRight, rng, func(g *Grid, x, y int) bool {
		visits[[2]int{x, y}]++
		return true
	})
	if len(visits) != g.W*g.H {
		t.Fatalf("visited %d cells, want %d", len(visits), g.W*g.H)
	}
	for k, n := range visits {
		if n != 1 {
			t.Errorf("cell %v visited %d times, want 1", k, n)
		}
	}
}

func TestTraverseSkipsInactiveChunks(t *testing.T) {
	g := NewGrid(96, 96)
	for i := range g.chunkActive {
		g.chunkActive[i] = false
	}
	// Activate only chunk (0,0)'s read-set directly, since UpdateChunkActivation
	// would also clear the write-set we're not using here.
	g.chunkActive[0] = true

	rng := newTickRNG(1)
	visited := 0
	traverse(g, BottomUp, LeftRight, rng, func(g *Grid, x, y int) bool {
		visited++
		return true
	})
	if visited != ChunkSize*ChunkSize {
		t.Fatalf("visited %d cells, want exactly one chunk's worth (%d)", visited, ChunkSize*ChunkSize)
	}
}

func TestTraverseAbortsOnFalse(t *testing.T) {
	g := NewGrid(10, 10)
	rng := newTickRNG(1)
	visited := 0
	traverse(g, BottomUp, LeftRight, rng, func(g *Grid, x, y int) bool {
		visited++
		return visited < 5
	})
	if visited != 5 {
		t.Fatalf("traverse visited %d cells before stopping, want 5", visited)
	}
}

func TestMultiPassClearsUpdatedBetweenPasses(t *testing.T) {
	g := NewGrid(4, 4)
	rng := newTickRNG(1)
	var flagAtSecondPassStart CellFlags
	pass := 0
	multiPass(g, rng, 2, true, BottomUp, LeftRight, func(g *Grid, x, y int) bool {
		if x == 0 && y == 0 {
			if pass == 1 {
				flagAtSecondPassStart = g.GetFlags(x, y) & FlagUpdated
			}
			g.MarkUpdated(x, y)
			pass++
		}
		return true
	})
	if flagAtSecondPassStart != 0 {
		t.Errorf("Updated flag from pass 1 leaked into pass 2, want it cleared between passes")
	}
}
