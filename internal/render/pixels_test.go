package render

import "testing"

type fakeSource struct {
	w, h int
}

func (f fakeSource) Width() int  { return f.w }
func (f fakeSource) Height() int { return f.h }
func (f fakeSource) CellColorRGBA(x, y int) (uint8, uint8, uint8, uint8) {
	return uint8(x), uint8(y), 7, 255
}

func TestFillWorldRGBA(t *testing.T) {
	src := fakeSource{w: 3, h: 2}
	buf := make([]byte, 4*3*2)
	fillWorldRGBA(buf, src)

	base := (1*3 + 2) * 4 // (x=2, y=1)
	if buf[base+0] != 2 || buf[base+1] != 1 || buf[base+2] != 7 || buf[base+3] != 255 {
		t.Fatalf("unexpected pixel at (2,1): %v", buf[base:base+4])
	}
}
