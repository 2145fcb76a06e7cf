package sandbox

import "testing"

func TestWorldPaintStrokeAndClear(t *testing.T) {
	w := NewWorldSeeded(16, 16, 60, 1)
	w.PaintStroke(Stroke{X0: 0, Y0: 0, X1: 5, Y1: 0, R: 0, Material: Sand})
	if w.CellMaterial(0, 0) != Sand || w.CellMaterial(5, 0) != Sand {
		t.Fatalf("PaintStroke did not paint its endpoints")
	}
	w.ClearWorld()
	if w.CellMaterial(0, 0) != Empty {
		t.Errorf("ClearWorld did not reset a painted cell")
	}
}

func TestWorldPauseAndStepOnce(t *testing.T) {
	w := NewWorldSeeded(8, 8, 60, 1)
	w.SetPaused(true)
	if !w.Paused() {
		t.Fatal("SetPaused(true) did not take effect")
	}
	before := w.TickCount()
	w.StepOnce()
	if w.TickCount() != before+1 {
		t.Errorf("StepOnce while paused did not advance TickCount")
	}
}

func TestWorldCellColorRGBAMatchesCellColor(t *testing.T) {
	w := NewWorldSeeded(4, 4, 60, 1)
	w.PaintStroke(Stroke{X0: 1, Y0: 1, X1: 1, Y1: 1, R: 0, Material: Water})
	c := w.CellColor(1, 1)
	r, g, b, a := w.CellColorRGBA(1, 1)
	if r != c.R || g != c.G || b != c.B || a != c.A {
		t.Errorf("CellColorRGBA (%d,%d,%d,%d) does not match CellColor %+v", r, g, b, a, c)
	}
}

type fakeInput struct {
	strokes  []Stroke
	toggle   bool
	stepOnce bool
}

func (f *fakeInput) PollStrokes() []Stroke   { return f.strokes }
func (f *fakeInput) PollPause() (bool, bool) { return f.toggle, f.stepOnce }

func TestApplyInputDrainsStrokesAndTransportRequests(t *testing.T) {
	w := NewWorldSeeded(8, 8, 60, 1)
	in := &fakeInput{
		strokes: []Stroke{{X0: 2, Y0: 2, X1: 2, Y1: 2, R: 0, Material: Stone}},
		toggle:  true,
	}
	w.ApplyInput(in)
	if w.CellMaterial(2, 2) != Stone {
		t.Errorf("ApplyInput did not paint the queued stroke")
	}
	if !w.Paused() {
		t.Errorf("ApplyInput did not toggle pause")
	}
}

func TestSimAdapterCellsReflectsGridMaterials(t *testing.T) {
	adapter := newSimAdapter(4, 4, nil)
	holder := adapter.(*simAdapter)
	holder.world.PaintStroke(Stroke{X0: 0, Y0: 0, X1: 0, Y1: 0, R: 0, Material: Sand})
	cells := adapter.Cells()
	if Material(cells[0]) != Sand {
		t.Errorf("simAdapter.Cells()[0] = %v, want Sand", Material(cells[0]))
	}
}

func TestSimAdapterSetIntParameterTickHz(t *testing.T) {
	adapter := newSimAdapter(4, 4, nil).(*simAdapter)
	if !adapter.SetIntParameter("tick_hz", 30) {
		t.Fatal("SetIntParameter(tick_hz) reported failure")
	}
	if adapter.world.TickHz() != 30 {
		t.Errorf("tick_hz was not applied to the World")
	}
	if adapter.SetIntParameter("nonexistent", 1) {
		t.Errorf("SetIntParameter should reject unknown keys")
	}
}
