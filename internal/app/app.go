//go:build ebiten

package app

import (
	"time"

	"sandsim/internal/core"
	"sandsim/internal/render"
	"sandsim/internal/sandbox"
	"sandsim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// worldHolder is satisfied by the "sandbox" core.Sim registration; it lets
// Game reach the richer sandbox.World API the generic core.Sim interface
// deliberately hides.
type worldHolder interface {
	World() *sandbox.World
}

// palette is the material hotbar bound to number keys 1-9 and 0, in the
// order a brush is most likely to reach for.
var palette = []sandbox.Material{
	sandbox.Sand, sandbox.Water, sandbox.Stone, sandbox.Wood, sandbox.Fire,
	sandbox.Soil, sandbox.Ice, sandbox.Acid, sandbox.Smoke, sandbox.Empty,
}

var paletteKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0,
}

// Game adapts a sandbox.World to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	world   *sandbox.World
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale       int
	seed        int64
	brushRadius int
	material    sandbox.Material

	lastMouseX, lastMouseY int
	dragging                bool
}

// New constructs a Game for the provided simulation, which must be the
// "sandbox" registration from internal/core.Sims().
func New(sim core.Sim, scale int, seed int64) *Game {
	holder, ok := sim.(worldHolder)
	if !ok {
		panic("app.New requires a sim registered with a World() accessor")
	}
	world := holder.World()

	const hudWidth = 220
	return &Game{
		sim:         sim,
		world:       world,
		painter:     render.NewGridPainter(world.Width(), world.Height()),
		hud:         ui.NewHUD(sim, hudWidth),
		overlay:     ui.NewOverlay(world, scale),
		scale:       scale,
		seed:        seed,
		brushRadius: 4,
		material:    sandbox.Sand,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.world.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.world.SetPaused(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.world.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) && g.brushRadius > 0 {
		g.brushRadius--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brushRadius++
	}
	for i, k := range paletteKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.material = palette[i]
		}
	}

	g.handleBrush()

	if g.overlay != nil {
		g.overlay.Update()
		mx, my := ebiten.CursorPosition()
		gx, gy := mx/g.scale, my/g.scale
		g.overlay.SetBrush(gx, gy, g.brushRadius, true)
	}
	if g.hud != nil {
		g.hud.Update(g.world.Width() * g.scale)
	}

	g.world.Advance(time.Second / time.Duration(g.world.TickHz()))
	return nil
}

func (g *Game) handleBrush() {
	mx, my := ebiten.CursorPosition()
	gx, gy := mx/g.scale, my/g.scale

	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	erasing := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !pressed && !erasing {
		g.dragging = false
		return
	}

	mat := g.material
	if erasing {
		mat = sandbox.Empty
	}

	x0, y0 := gx, gy
	if g.dragging {
		x0, y0 = g.lastMouseX, g.lastMouseY
	}
	g.world.PaintStroke(sandbox.Stroke{X0: x0, Y0: y0, X1: gx, Y1: gy, R: g.brushRadius, Material: mat})
	g.lastMouseX, g.lastMouseY = gx, gy
	g.dragging = true
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.world, g.scale)
	if g.overlay != nil {
		g.overlay.Draw(screen)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.world.Width()*g.scale, g.scale)
	}
}

// Layout returns the logical screen size, including the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	const hudWidth = 220
	return g.world.Width()*g.scale + hudWidth, g.world.Height() * g.scale
}
