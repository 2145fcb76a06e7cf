package sandbox

// Grid is the SoA world state described by §3/§4.2. It exclusively owns all
// per-cell arrays and chunk masks; the Tick Driver borrows it for one tick
// at a time and stages mutate it only through the operations below.
type Grid struct {
	W, H int

	mat     []Material
	matNext []Material
	flags   []CellFlags

	colorSeed []uint32

	temp     []float64
	tempNext []float64

	pressure []float64
	density  []float64

	velX []Fixed
	velY []Fixed

	lifetime []uint8

	chunksX, chunksY   int
	chunkActive        []bool
	chunkActiveNext    []bool

	seedGen uint32
}

// NewGrid allocates a grid of the given dimensions, all cells Empty at
// ambient temperature, all chunks initially active (§3 Lifecycle).
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	total := w * h
	cx := (w + ChunkSize - 1) / ChunkSize
	cy := (h + ChunkSize - 1) / ChunkSize
	g := &Grid{
		W: w, H: h,
		mat:       make([]Material, total),
		matNext:   make([]Material, total),
		flags:     make([]CellFlags, total),
		colorSeed: make([]uint32, total),
		temp:      make([]float64, total),
		tempNext:  make([]float64, total),
		pressure:  make([]float64, total),
		density:   make([]float64, total),
		velX:      make([]Fixed, total),
		velY:      make([]Fixed, total),
		lifetime:  make([]uint8, total),
		chunksX:   cx,
		chunksY:   cy,
		chunkActive:     make([]bool, cx*cy),
		chunkActiveNext: make([]bool, cx*cy),
		seedGen:   0x1234abcd,
	}
	for i := range g.temp {
		g.temp[i] = AmbientTemp
		g.tempNext[i] = AmbientTemp
		g.colorSeed[i] = g.nextSeed()
	}
	for i := range g.chunkActive {
		g.chunkActive[i] = true
	}
	return g
}

func (g *Grid) nextSeed() uint32 {
	g.seedGen = hash32(g.seedGen + 0x9e3779b9)
	return g.seedGen
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

func (g *Grid) index(x, y int) int { return y*g.W + x }

// GetMat returns the material at (x, y); out-of-bounds reads return Empty (§4.2).
func (g *Grid) GetMat(x, y int) Material {
	if !g.inBounds(x, y) {
		return Empty
	}
	return g.mat[g.index(x, y)]
}

// SetMat writes the material at (x, y), zeroing velocity and activating the
// cell's 3x3 chunk neighborhood. Writes outside the grid are no-ops (§4.2).
func (g *Grid) SetMat(x, y int, m Material) {
	if !g.inBounds(x, y) {
		return
	}
	i := g.index(x, y)
	g.mat[i] = m
	g.velX[i] = 0
	g.velY[i] = 0
	g.activateChunkAt(x, y)
}

// GetFlags returns the flag bitmask at (x, y); out-of-bounds reads return FlagNone.
func (g *Grid) GetFlags(x, y int) CellFlags {
	if !g.inBounds(x, y) {
		return FlagNone
	}
	return g.flags[g.index(x, y)]
}

// SetFlags overwrites the flag bitmask at (x, y).
func (g *Grid) SetFlags(x, y int, f CellFlags) {
	if !g.inBounds(x, y) {
		return
	}
	g.flags[g.index(x, y)] = f
}

// AddFlag ORs flag into the cell's bitmask.
func (g *Grid) AddFlag(x, y int, flag CellFlags) {
	if !g.inBounds(x, y) {
		return
	}
	g.flags[g.index(x, y)] |= flag
}

// RemoveFlag clears flag from the cell's bitmask.
func (g *Grid) RemoveFlag(x, y int, flag CellFlags) {
	if !g.inBounds(x, y) {
		return
	}
	g.flags[g.index(x, y)] &^= flag
}

// HasFlag reports whether flag is set at (x, y); out-of-bounds reads are false.
func (g *Grid) HasFlag(x, y int, flag CellFlags) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.flags[g.index(x, y)]&flag != 0
}

// IsPassableSolid reports whether (x, y) should be treated as solid for
// movement validation: true both for out-of-bounds cells and for in-bounds
// solid materials (§4.2 invariant, §7).
func (g *Grid) IsPassableSolid(x, y int) bool {
	if !g.inBounds(x, y) {
		return true
	}
	return isSolidMat(g.mat[g.index(x, y)])
}

// GetVelocity returns the fixed-point velocity at (x, y).
func (g *Grid) GetVelocity(x, y int) (Fixed, Fixed) {
	if !g.inBounds(x, y) {
		return 0, 0
	}
	i := g.index(x, y)
	return g.velX[i], g.velY[i]
}

// SetVelocity writes the fixed-point velocity at (x, y).
func (g *Grid) SetVelocity(x, y int, vx, vy Fixed) {
	if !g.inBounds(x, y) {
		return
	}
	i := g.index(x, y)
	g.velX[i] = vx
	g.velY[i] = vy
}

// GetLifetime returns the saturating lifetime counter at (x, y).
func (g *Grid) GetLifetime(x, y int) uint8 {
	if !g.inBounds(x, y) {
		return 0
	}
	return g.lifetime[g.index(x, y)]
}

// SetLifetime writes the lifetime counter at (x, y).
func (g *Grid) SetLifetime(x, y int, v uint8) {
	if !g.inBounds(x, y) {
		return
	}
	g.lifetime[g.index(x, y)] = v
}

// IncLifetime increments the lifetime counter at (x, y), saturating at 255 (§3).
func (g *Grid) IncLifetime(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	i := g.index(x, y)
	if g.lifetime[i] < 255 {
		g.lifetime[i]++
	}
}

// GetTemp returns the current-frame temperature at (x, y); ambient outside bounds.
func (g *Grid) GetTemp(x, y int) float64 {
	if !g.inBounds(x, y) {
		return AmbientTemp
	}
	return g.temp[g.index(x, y)]
}

// SetTemp writes the current-frame temperature at (x, y), clamped to
// [MinTemperature, MaxTemperature].
func (g *Grid) SetTemp(x, y int, t float64) {
	if !g.inBounds(x, y) {
		return
	}
	g.temp[g.index(x, y)] = clampTemp(t)
}

func clampTemp(t float64) float64 {
	if t < MinTemperature {
		return MinTemperature
	}
	if t > MaxTemperature {
		return MaxTemperature
	}
	return t
}

// GetColorSeed returns the deterministic per-cell color seed.
func (g *Grid) GetColorSeed(x, y int) uint32 {
	if !g.inBounds(x, y) {
		return 0
	}
	return g.colorSeed[g.index(x, y)]
}

// GetCellColor returns the material's base color perturbed by the cell's
// color seed (§4.2, §4.3).
func (g *Grid) GetCellColor(x, y int) RGBA {
	m := g.GetMat(x, y)
	return Color(m, g.GetColorSeed(x, y))
}

// SwapCells swaps material, color seed, velocity, and lifetime between two
// cells atomically w.r.t. the Grid. Flags and temperature are not swapped.
// Both chunks are activated (§4.2).
func (g *Grid) SwapCells(x1, y1, x2, y2 int) {
	if !g.inBounds(x1, y1) || !g.inBounds(x2, y2) {
		return
	}
	i1, i2 := g.index(x1, y1), g.index(x2, y2)
	g.mat[i1], g.mat[i2] = g.mat[i2], g.mat[i1]
	g.colorSeed[i1], g.colorSeed[i2] = g.colorSeed[i2], g.colorSeed[i1]
	g.velX[i1], g.velX[i2] = g.velX[i2], g.velX[i1]
	g.velY[i1], g.velY[i2] = g.velY[i2], g.velY[i1]
	g.lifetime[i1], g.lifetime[i2] = g.lifetime[i2], g.lifetime[i1]
	g.activateChunkAt(x1, y1)
	g.activateChunkAt(x2, y2)
}

// MarkUpdated sets the Updated flag on (x, y), the sole guard against a cell
// being the source of more than one movement per tick (§5).
func (g *Grid) MarkUpdated(x, y int) {
	g.AddFlag(x, y, FlagUpdated)
}

// PaintCircle sets every cell within Euclidean radius r of (cx, cy) to m (§4.2).
func (g *Grid) PaintCircle(cx, cy, r int, m Material) {
	if r < 0 {
		return
	}
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			g.SetMat(cx+dx, cy+dy, m)
		}
	}
}

// PaintLine draws a Bresenham line between the two endpoints, painting a
// circle of the given radius at each step (§4.2).
func (g *Grid) PaintLine(x0, y0, x1, y1, r int, m Material) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		g.PaintCircle(x, y, r, m)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Clear resets material, flags, velocities, and lifetime to zero. Color seed
// and temperature are untouched — temperature only returns to ambient via
// thermal relaxation (§4.2).
func (g *Grid) Clear() {
	total := g.W * g.H
	for i := 0; i < total; i++ {
		g.mat[i] = Empty
		g.matNext[i] = Empty
		g.flags[i] = FlagNone
		g.velX[i] = 0
		g.velY[i] = 0
		g.lifetime[i] = 0
	}
	for cy := 0; cy < g.chunksY; cy++ {
		for cx := 0; cx < g.chunksX; cx++ {
			g.chunkActiveNext[cy*g.chunksX+cx] = true
		}
	}
}

// ClearTickFlags clears the Updated bit on every cell (§4.1 step 2).
func (g *Grid) ClearTickFlags() {
	for i := range g.flags {
		g.flags[i] &^= FlagUpdated
	}
}

func (g *Grid) chunkIndex(cx, cy int) (int, bool) {
	if cx < 0 || cx >= g.chunksX || cy < 0 || cy >= g.chunksY {
		return 0, false
	}
	return cy*g.chunksX + cx, true
}

// ActivateChunk marks chunk (cx, cy) and its full 3x3 neighborhood active in
// the write-set (`_next`) mask, so particles crossing chunk boundaries don't
// orphan themselves (§3, §9).
func (g *Grid) ActivateChunk(cx, cy int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if idx, ok := g.chunkIndex(cx+dx, cy+dy); ok {
				g.chunkActiveNext[idx] = true
			}
		}
	}
}

func (g *Grid) activateChunkAt(x, y int) {
	if !g.inBounds(x, y) {
		return
	}
	g.ActivateChunk(x/ChunkSize, y/ChunkSize)
}

// ActivateChunkAt activates the chunk (and 3x3 neighborhood) containing (x, y).
func (g *Grid) ActivateChunkAt(x, y int) {
	g.activateChunkAt(x, y)
}

// IsChunkActive reports whether chunk (cx, cy) is active in the current
// read-set mask.
func (g *Grid) IsChunkActive(cx, cy int) bool {
	idx, ok := g.chunkIndex(cx, cy)
	if !ok {
		return false
	}
	return g.chunkActive[idx]
}

func (g *Grid) isChunkActiveAt(x, y int) bool {
	return g.IsChunkActive(x/ChunkSize, y/ChunkSize)
}

// UpdateChunkActivation swaps active<->next, then zeroes the new write-set
// for the next tick, and returns the count of chunks now active (§4.2, §9).
func (g *Grid) UpdateChunkActivation() int {
	g.chunkActive, g.chunkActiveNext = g.chunkActiveNext, g.chunkActive
	active := 0
	for i := range g.chunkActive {
		if g.chunkActive[i] {
			active++
		}
	}
	for i := range g.chunkActiveNext {
		g.chunkActiveNext[i] = false
	}
	return active
}

// ChunksX and ChunksY report the chunk grid dimensions.
func (g *Grid) ChunksX() int { return g.chunksX }
func (g *Grid) ChunksY() int { return g.chunksY }
