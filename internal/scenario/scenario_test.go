package scenario

import (
	"testing"

	"sandsim/internal/sandbox"
)

func TestPaintCircleFromLua(t *testing.T) {
	world := sandbox.NewWorldSeeded(16, 16, 60, 1)
	r := NewRunner(world)
	defer r.Close()

	if err := r.RunString(`paint_circle(8, 8, 0, materials.Sand)`); err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	if world.CellMaterial(8, 8) != sandbox.Sand {
		t.Errorf("paint_circle did not paint Sand at (8,8)")
	}
}

func TestClearAndSetPausedFromLua(t *testing.T) {
	world := sandbox.NewWorldSeeded(16, 16, 60, 1)
	r := NewRunner(world)
	defer r.Close()

	world.PaintStroke(sandbox.Stroke{X0: 1, Y0: 1, X1: 1, Y1: 1, Material: sandbox.Stone})
	if err := r.RunString(`clear() set_paused(true)`); err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	if world.CellMaterial(1, 1) != sandbox.Empty {
		t.Errorf("clear() did not reset the world")
	}
	if !world.Paused() {
		t.Errorf("set_paused(true) did not pause the world")
	}
}

func TestUnknownMaterialRaisesLuaError(t *testing.T) {
	world := sandbox.NewWorldSeeded(4, 4, 60, 1)
	r := NewRunner(world)
	defer r.Close()

	if err := r.RunString(`paint_circle(0, 0, 0, "NotAMaterial")`); err == nil {
		t.Errorf("expected an error for an unknown material name")
	}
}

func TestWidthHeightTickHzExposedToLua(t *testing.T) {
	world := sandbox.NewWorldSeeded(20, 30, 90, 1)
	r := NewRunner(world)
	defer r.Close()

	if err := r.RunString(`
		if width() ~= 20 then error("width mismatch") end
		if height() ~= 30 then error("height mismatch") end
		if tick_hz() ~= 90 then error("tick_hz mismatch") end
	`); err != nil {
		t.Errorf("scenario globals did not match the World: %v", err)
	}
}

func TestStepFromLuaAdvancesTickCount(t *testing.T) {
	world := sandbox.NewWorldSeeded(8, 8, 60, 1)
	r := NewRunner(world)
	defer r.Close()

	before := world.TickCount()
	if err := r.RunString(`step() step()`); err != nil {
		t.Fatalf("RunString failed: %v", err)
	}
	if world.TickCount() != before+2 {
		t.Errorf("TickCount() = %d, want %d", world.TickCount(), before+2)
	}
}
