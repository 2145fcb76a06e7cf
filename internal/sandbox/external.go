package sandbox

import (
	"fmt"
	"time"

	"sandsim/internal/core"
)

// FrameSink receives a fully rendered frame each time the external caller
// wants to present the grid; it decouples the engine from any particular
// windowing toolkit (§6).
type FrameSink interface {
	PresentFrame(w, h int, rgba []byte)
}

// InputSource is polled once per external Update call for brush strokes and
// transport controls, so app/render code never touches Grid or Driver
// internals directly (§6).
type InputSource interface {
	PollStrokes() []Stroke
	PollPause() (togglePause bool, stepOnce bool)
}

// Stroke is one brush action: a line from (X0,Y0) to (X1,Y1), radius R,
// painting Material.
type Stroke struct {
	X0, Y0, X1, Y1 int
	R              int
	Material       Material
}

// World is the external-facing facade the app/render/ui layers drive: it
// owns a Grid and a Driver and exposes only the operations §6 permits from
// outside the package.
type World struct {
	grid   *Grid
	driver *Driver
}

// NewWorld constructs a World of the given size at the given tick rate,
// seeded from the wall clock.
func NewWorld(w, h, tickHz int) *World {
	return &World{
		grid:   NewGrid(w, h),
		driver: Create(tickHz),
	}
}

// NewWorldSeeded constructs a World with an explicit RNG seed, for
// reproducible scenarios and determinism tests (§8).
func NewWorldSeeded(w, h, tickHz int, seed int64) *World {
	return &World{
		grid:   NewGrid(w, h),
		driver: CreateSeeded(tickHz, seed),
	}
}

// Advance runs Update for realDt of wall-clock time (§6).
func (wd *World) Advance(realDt time.Duration) { wd.driver.Update(wd.grid, realDt) }

// PaintStroke applies a single brush stroke to the grid (§6).
func (wd *World) PaintStroke(s Stroke) {
	wd.grid.PaintLine(s.X0, s.Y0, s.X1, s.Y1, s.R, s.Material)
}

// ApplyInput drains one InputSource's queued strokes and transport requests.
func (wd *World) ApplyInput(in InputSource) {
	for _, s := range in.PollStrokes() {
		wd.PaintStroke(s)
	}
	toggle, step := in.PollPause()
	if toggle {
		wd.driver.TogglePause()
	}
	if step {
		wd.driver.StepOnce(wd.grid)
	}
}

// ClearWorld resets every cell to Empty (§6).
func (wd *World) ClearWorld() { wd.grid.Clear() }

func (wd *World) SetPaused(p bool)  { wd.driver.SetPaused(p) }
func (wd *World) TogglePause() bool { return wd.driver.TogglePause() }
func (wd *World) Paused() bool      { return wd.driver.Paused() }
func (wd *World) StepOnce()         { wd.driver.StepOnce(wd.grid) }

func (wd *World) Width() int  { return wd.grid.W }
func (wd *World) Height() int { return wd.grid.H }

func (wd *World) TickCount() uint64  { return wd.driver.TickCount() }
func (wd *World) CellsUpdated() int  { return wd.driver.CellsUpdated() }
func (wd *World) ActiveChunks() int  { return wd.driver.ActiveChunks() }
func (wd *World) SetTickHz(hz int)   { wd.driver.SetTickHz(hz) }
func (wd *World) TickHz() int        { return wd.driver.TickHz() }

// CellColor exposes the deterministic per-cell display color (§4.3).
func (wd *World) CellColor(x, y int) RGBA { return wd.grid.GetCellColor(x, y) }

// CellColorRGBA satisfies render.CellColorSource without internal/render
// needing to import this package's RGBA type.
func (wd *World) CellColorRGBA(x, y int) (r, g, b, a uint8) {
	c := wd.grid.GetCellColor(x, y)
	return c.R, c.G, c.B, c.A
}

// CellMaterial exposes the material at (x, y) for HUD probes and scripting.
func (wd *World) CellMaterial(x, y int) Material { return wd.grid.GetMat(x, y) }

// Fingerprint returns the deterministic state digest of the current grid
// (§8, fingerprint.go).
func (wd *World) Fingerprint() [32]byte { return Fingerprint(wd.grid) }

// Grid exposes the underlying grid for render code that needs a tight pixel
// loop; PaintStroke/ClearWorld remain the mutation path for everything else.
func (wd *World) Grid() *Grid { return wd.grid }

// simAdapter satisfies core.Sim so the falling-sand engine can register
// under the teacher's generic simulation registry (internal/core.Register)
// and reuse the existing HUD parameter-control plumbing.
type simAdapter struct {
	world  *World
	cells  []uint8
	stride time.Duration
}

func newSimAdapter(w, h int, cfg map[string]string) core.Sim {
	hz := TickHz
	return &simAdapter{
		world:  NewWorld(w, h, hz),
		cells:  make([]uint8, w*h),
		stride: time.Second / time.Duration(hz),
	}
}

// World exposes the adapter's underlying World so app.go can drive brush
// painting and color sampling without going through the generic core.Sim
// interface, which only exchanges material-id bytes.
func (s *simAdapter) World() *World { return s.world }

func (s *simAdapter) Name() string { return "sandbox" }

func (s *simAdapter) Size() core.Size {
	return core.Size{W: s.world.Width(), H: s.world.Height()}
}

func (s *simAdapter) Reset(seed int64) {
	s.world.driver.Reset(seed)
	s.world.ClearWorld()
}

func (s *simAdapter) Step() { s.world.Advance(s.stride) }

// Cells returns the material id grid as bytes; a downstream palette or the
// richer World.CellColor path can render either representation.
func (s *simAdapter) Cells() []uint8 {
	g := s.world.grid
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			s.cells[y*g.W+x] = uint8(g.GetMat(x, y))
		}
	}
	return s.cells
}

func (s *simAdapter) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "tick_hz", Label: "Tick Rate", Type: core.ParamTypeInt, Step: 5, Min: 10, Max: 240, HasMin: true, HasMax: true},
	}
}

func (s *simAdapter) SetIntParameter(key string, value int) bool {
	switch key {
	case "tick_hz":
		s.world.SetTickHz(value)
		s.stride = time.Second / time.Duration(value)
		return true
	}
	return false
}

// Parameters reports the adapter's current tunable values so the HUD can
// display them next to their +/- controls.
func (s *simAdapter) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Engine",
				Params: []core.Parameter{
					{Key: "tick_hz", Label: "Tick Rate", Type: core.ParamTypeInt, Value: fmt.Sprintf("%d", s.world.TickHz())},
				},
			},
		},
	}
}
