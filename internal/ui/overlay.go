//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"sandsim/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws optional debugging visuals over the sand grid: the
// chunk-activation mask (§3, §9) and the current brush footprint.
type Overlay struct {
	world *sandbox.World
	scale int

	showChunks bool

	pixel   *ebiten.Image
	brushX  int
	brushY  int
	brushR  int
	showBrush bool
}

// NewOverlay constructs an overlay bound to world, rendered at scale pixels
// per cell.
func NewOverlay(world *sandbox.World, scale int) *Overlay {
	o := &Overlay{world: world, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the chunk-debug overlay on F1.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		o.showChunks = !o.showChunks
	}
}

// SetBrush records the brush footprint for the next Draw call, or hides it.
func (o *Overlay) SetBrush(x, y, r int, visible bool) {
	o.brushX, o.brushY, o.brushR, o.showBrush = x, y, r, visible
}

// Draw renders the active overlays onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showChunks {
		o.drawChunkGrid(screen, scale)
	}
	if o.showBrush {
		o.drawBrushRing(screen, scale)
	}
}

func (o *Overlay) drawChunkGrid(screen *ebiten.Image, scale int) {
	g := o.world.Grid()
	cs := sandbox.ChunkSize * scale
	tint := color.RGBA{R: 255, G: 80, B: 80, A: 60}
	for cy := 0; cy < g.ChunksY(); cy++ {
		for cx := 0; cx < g.ChunksX(); cx++ {
			if !g.IsChunkActive(cx, cy) {
				continue
			}
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(float64(cs), float64(cs))
			op.GeoM.Translate(float64(cx*cs), float64(cy*cs))
			op.ColorM.Scale(float64(tint.R)/255, float64(tint.G)/255, float64(tint.B)/255, float64(tint.A)/255)
			screen.DrawImage(o.pixel, op)
		}
	}
}

func (o *Overlay) drawBrushRing(screen *ebiten.Image, scale int) {
	const segments = 24
	col := color.RGBA{R: 255, G: 255, B: 255, A: 180}
	cx := float64(o.brushX * scale)
	cy := float64(o.brushY * scale)
	radius := float64(o.brushR * scale)
	if radius <= 0 {
		radius = float64(scale) * 0.5
	}
	for i := 0; i < segments; i++ {
		a0 := 2 * math.Pi * float64(i) / segments
		a1 := 2 * math.Pi * float64(i+1) / segments
		x0, y0 := cx+radius*math.Cos(a0), cy+radius*math.Sin(a0)
		x1, y1 := cx+radius*math.Cos(a1), cy+radius*math.Sin(a1)
		op := &ebiten.DrawImageOptions{}
		length := math.Hypot(x1-x0, y1-y0)
		if length < 1e-4 {
			continue
		}
		op.GeoM.Scale(length, 1)
		op.GeoM.Rotate(math.Atan2(y1-y0, x1-x0))
		op.GeoM.Translate(x0, y0)
		op.ColorM.Scale(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
		screen.DrawImage(o.pixel, op)
	}
}
