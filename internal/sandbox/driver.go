package sandbox

import (
	"time"

	"sandsim/internal/core"
)

// tickStats accumulates per-tick counters reset at the start of every Tick
// (§4.1 step 3).
type tickStats struct {
	cellsUpdated  int
	activeChunks  int
	stageProfile  [6]time.Duration
}

const (
	stagePowder = iota
	stageFluid
	stageFire
	stageGas
	stageAcid
	stageThermal
)

// Driver owns the fixed-tick-rate loop described in §4.1. It borrows a Grid
// for the duration of each Tick call and never retains it between calls.
type Driver struct {
	tickHz int
	step   time.Duration

	accumulator time.Duration
	paused      bool

	master *tickRNG

	tickCount uint64
	lastStats tickStats
}

// Create constructs a Driver targeting tickHz ticks per second, seeded from
// the wall clock (§4.1, §6).
func Create(tickHz int) *Driver {
	return CreateSeeded(tickHz, seedFromWallClock())
}

// CreateSeeded constructs a Driver with an explicit RNG seed, used by
// determinism-law tests and scripted scenarios (§8).
func CreateSeeded(tickHz int, seed int64) *Driver {
	if tickHz <= 0 {
		tickHz = TickHz
	}
	d := &Driver{
		tickHz: tickHz,
		master: newTickRNG(seed),
	}
	d.step = time.Second / time.Duration(tickHz)
	return d
}

// SetTickHz changes the tick rate; the accumulator is left as-is so a rate
// change never itself forces or skips a tick.
func (d *Driver) SetTickHz(hz int) {
	if hz <= 0 {
		hz = TickHz
	}
	d.tickHz = hz
	d.step = time.Second / time.Duration(hz)
}

func (d *Driver) TickHz() int { return d.tickHz }

// SetPaused sets the pause state; a paused Driver still accepts StepOnce.
func (d *Driver) SetPaused(p bool) { d.paused = p }

// TogglePause flips the pause state and returns the new value.
func (d *Driver) TogglePause() bool {
	d.paused = !d.paused
	return d.paused
}

func (d *Driver) Paused() bool { return d.paused }

// StepOnce advances exactly one tick regardless of pause state, for
// frame-by-frame stepping from the UI (§6).
func (d *Driver) StepOnce(g *Grid) {
	d.Tick(g)
}

// Update advances the simulation by realDt of wall-clock time, running as
// many fixed ticks as have accumulated. The accumulator is capped at
// accumulatorCapTicks*step to prevent a spiral of death after a stall (§4.1).
func (d *Driver) Update(g *Grid, realDt time.Duration) {
	if d.paused {
		return
	}
	d.accumulator += realDt
	maxAccumulator := d.step * accumulatorCapTicks
	if d.accumulator > maxAccumulator {
		d.accumulator = maxAccumulator
	}
	for d.accumulator >= d.step {
		d.accumulator -= d.step
		d.Tick(g)
	}
}

// Tick executes exactly one deterministic simulation step (§4.1 steps 1-7):
// derive a fresh per-tick seed from the master RNG, clear the Updated guard
// flag, reset per-tick stats, run the six ordered stages against that one
// seed, swap chunk activation buffers, and advance the tick counter.
//
// The master RNG advances exactly once per tick, right here; every stage
// this tick draws only from the resulting per-tick generator, never from
// d.master directly (§4.1 step 1, §5 RNG discipline).
func (d *Driver) Tick(g *Grid) {
	g.ClearTickFlags()

	tick := newTickRNG(int64(d.master.Uint32()))
	stats := &tickStats{}

	t0 := time.Now()
	stepPowder(g, tick, stats)
	stats.stageProfile[stagePowder] = time.Since(t0)

	t0 = time.Now()
	stepFluid(g, tick, stats)
	stats.stageProfile[stageFluid] = time.Since(t0)

	t0 = time.Now()
	stepFire(g, tick, stats)
	stats.stageProfile[stageFire] = time.Since(t0)

	t0 = time.Now()
	stepGas(g, tick, stats)
	stats.stageProfile[stageGas] = time.Since(t0)

	t0 = time.Now()
	stepAcid(g, tick, stats)
	stats.stageProfile[stageAcid] = time.Since(t0)

	t0 = time.Now()
	stepThermal(g, tick, stats)
	stats.stageProfile[stageThermal] = time.Since(t0)

	stats.activeChunks = g.UpdateChunkActivation()

	d.lastStats = *stats
	d.tickCount++
}

// Reset zeroes the tick counter and reseeds the master RNG; the Grid itself
// is left untouched, matching the teacher's convention that Reset re-arms
// the driver rather than owning world state (internal/core.Sim.Reset).
func (d *Driver) Reset(seed int64) {
	d.tickCount = 0
	d.accumulator = 0
	d.master = newTickRNG(seed)
}

func (d *Driver) TickCount() uint64 { return d.tickCount }

// CellsUpdated reports the cells-touched count from the most recently
// completed tick, exposed for HUD diagnostics (§6).
func (d *Driver) CellsUpdated() int { return d.lastStats.cellsUpdated }

// ActiveChunks reports the active-chunk count from the most recently
// completed tick.
func (d *Driver) ActiveChunks() int { return d.lastStats.activeChunks }

// Rand returns a uniform float64 in [0, 1] drawn directly from the master
// RNG, exposed for scenario scripting that runs between ticks rather than
// inside one (§6). It does not touch the per-tick generator stages consume.
func (d *Driver) Rand() float64 { return d.master.Float64() }

// RandRange returns a uniform integer n with lo <= n <= hi, drawn from the
// master RNG.
func (d *Driver) RandRange(lo, hi int) int { return d.master.IntRange(lo, hi) }

// init adapts Driver+Grid into the teacher's generic core.Sim
// registry so the existing HUD parameter machinery keeps working for the
// falling-sand engine (internal/core.Register, as used by ecology/life).
func init() {
	core.Register("sandbox", func(cfg map[string]string) core.Sim {
		w, h := DefaultWidth, DefaultHeight
		return newSimAdapter(w, h, cfg)
	})
}
