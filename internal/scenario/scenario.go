// Package scenario runs Lua startup scripts against a sandbox.World,
// letting a deployment seed interesting initial states (a dam, a lit fuse,
// a block of ice over a fire) without recompiling the engine.
package scenario

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"sandsim/internal/sandbox"
)

// Runner owns one Lua state bound to a single World for the lifetime of a
// script run.
type Runner struct {
	world *sandbox.World
	state *lua.LState
}

// NewRunner constructs a Runner and registers the scenario API globals.
func NewRunner(world *sandbox.World) *Runner {
	r := &Runner{world: world, state: lua.NewState()}
	r.registerGlobals()
	return r
}

// Close releases the underlying Lua state.
func (r *Runner) Close() { r.state.Close() }

// RunFile loads and executes a scenario script.
func (r *Runner) RunFile(path string) error {
	if err := r.state.DoFile(path); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	return nil
}

// RunString executes a scenario script from a string, primarily for tests.
func (r *Runner) RunString(src string) error {
	if err := r.state.DoString(src); err != nil {
		return fmt.Errorf("scenario: %w", err)
	}
	return nil
}

func (r *Runner) registerGlobals() {
	L := r.state

	L.SetGlobal("paint_circle", L.NewFunction(r.luaPaintCircle))
	L.SetGlobal("paint_line", L.NewFunction(r.luaPaintLine))
	L.SetGlobal("clear", L.NewFunction(r.luaClear))
	L.SetGlobal("set_paused", L.NewFunction(r.luaSetPaused))
	L.SetGlobal("step", L.NewFunction(r.luaStep))
	L.SetGlobal("tick_hz", L.NewFunction(r.luaTickHz))
	L.SetGlobal("width", L.NewFunction(r.luaWidth))
	L.SetGlobal("height", L.NewFunction(r.luaHeight))

	materialsTable := L.NewTable()
	for _, name := range []string{
		"Empty", "Sand", "Stone", "Water", "Wood", "Fire",
		"Smoke", "Soil", "Ice", "Steam", "Ash", "Acid",
	} {
		materialsTable.RawSetString(name, lua.LString(name))
	}
	L.SetGlobal("materials", materialsTable)
}

func (r *Runner) resolveMaterial(L *lua.LState, idx int) (sandbox.Material, error) {
	name := L.CheckString(idx)
	m, ok := sandbox.MaterialByName(name)
	if !ok {
		return sandbox.Empty, fmt.Errorf("unknown material %q", name)
	}
	return m, nil
}

func (r *Runner) luaPaintCircle(L *lua.LState) int {
	x := L.CheckInt(1)
	y := L.CheckInt(2)
	radius := L.CheckInt(3)
	mat, err := r.resolveMaterial(L, 4)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	r.world.PaintStroke(sandbox.Stroke{X0: x, Y0: y, X1: x, Y1: y, R: radius, Material: mat})
	return 0
}

func (r *Runner) luaPaintLine(L *lua.LState) int {
	x0 := L.CheckInt(1)
	y0 := L.CheckInt(2)
	x1 := L.CheckInt(3)
	y1 := L.CheckInt(4)
	radius := L.CheckInt(5)
	mat, err := r.resolveMaterial(L, 6)
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	r.world.PaintStroke(sandbox.Stroke{X0: x0, Y0: y0, X1: x1, Y1: y1, R: radius, Material: mat})
	return 0
}

func (r *Runner) luaClear(L *lua.LState) int {
	r.world.ClearWorld()
	return 0
}

func (r *Runner) luaSetPaused(L *lua.LState) int {
	r.world.SetPaused(L.CheckBool(1))
	return 0
}

func (r *Runner) luaStep(L *lua.LState) int {
	r.world.StepOnce()
	return 0
}

func (r *Runner) luaTickHz(L *lua.LState) int {
	L.Push(lua.LNumber(r.world.TickHz()))
	return 1
}

func (r *Runner) luaWidth(L *lua.LState) int {
	L.Push(lua.LNumber(r.world.Width()))
	return 1
}

func (r *Runner) luaHeight(L *lua.LState) int {
	L.Push(lua.LNumber(r.world.Height()))
	return 1
}
