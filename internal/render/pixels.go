// Package render turns a sandbox.World's cell grid into RGBA pixels for
// display. It knows nothing about ebiten; GridPainter (painter.go) is the
// only file that touches the GPU-facing API, behind the ebiten build tag.
package render

// CellColorSource is the minimal read surface GridPainter needs from a
// sandbox.World, kept as an interface here so this package never imports
// the physics package directly.
type CellColorSource interface {
	Width() int
	Height() int
	CellColorRGBA(x, y int) (r, g, b, a uint8)
}

// fillWorldRGBA samples src at every grid cell into buf, one RGBA quad per
// cell, row-major matching sandbox.Grid's own indexing.
func fillWorldRGBA(buf []byte, src CellColorSource) {
	w, h := src.Width(), src.Height()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			base := (y*w + x) * 4
			r, g, b, a := src.CellColorRGBA(x, y)
			buf[base+0] = r
			buf[base+1] = g
			buf[base+2] = b
			buf[base+3] = a
		}
	}
}
