//go:build ebiten

package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"sandsim/internal/app"
	"sandsim/internal/config"
	"sandsim/internal/core"
	"sandsim/internal/scenario"
	"sandsim/internal/sandbox"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"
	"go.uber.org/zap"
)

// worldHolder is the same probe internal/app uses to reach the richer
// sandbox.World API behind the generic core.Sim registry entry.
type worldHolder interface {
	World() *sandbox.World
}

func main() {
	cfgPath := ""
	palettePath := ""
	scenarioPath := ""
	width := 0
	height := 0
	scale := 2
	seed := 0

	flaggy.String(&cfgPath, "c", "config", "Path to a TOML engine config file")
	flaggy.String(&palettePath, "p", "palette", "Path to a YAML brush palette file")
	flaggy.String(&scenarioPath, "s", "scenario", "Path to a Lua scenario script to run at startup")
	flaggy.Int(&width, "x", "width", "Grid width in cells, stored in the engine config (the sandbox grid is always 512 wide)")
	flaggy.Int(&height, "y", "height", "Grid height in cells, stored in the engine config (the sandbox grid is always 512 high)")
	flaggy.Int(&scale, "z", "scale", "Pixels per cell")
	flaggy.Int(&seed, "e", "seed", "Deterministic RNG seed (0 derives from wall clock)")
	flaggy.Parse()

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadEngine(cfgPath)
	if err != nil {
		logger.Fatal("loading engine config", zap.Error(err))
	}
	if width > 0 {
		cfg.Width = width
	}
	if height > 0 {
		cfg.Height = height
	}
	if seed != 0 {
		cfg.Seed = int64(seed)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if scale > 0 {
		cfg.Scale = scale
	}

	if _, err := config.LoadPalette(palettePath); err != nil {
		logger.Warn("loading brush palette, falling back to defaults", zap.Error(err))
	}

	factory, ok := core.Sims()["sandbox"]
	if !ok {
		logger.Fatal("sandbox simulation is not registered")
	}
	sim := factory(nil)
	sim.Reset(cfg.Seed)

	holder, ok := sim.(worldHolder)
	if !ok {
		logger.Fatal("registered sandbox factory does not expose a World")
	}
	world := holder.World()
	world.SetTickHz(cfg.TickHz)

	if scenarioPath != "" {
		if err := runScenario(world, scenarioPath); err != nil {
			logger.Fatal("running startup scenario", zap.String("path", scenarioPath), zap.Error(err))
		}
	}

	game := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()

	fmt.Println(aurora.Colorize("sandsim", aurora.CyanFg).String() + " — " + aurora.Green(sim.Name()).String())

	ebiten.SetWindowTitle(fmt.Sprintf("sandsim — %s", sim.Name()))
	ebiten.SetTPS(cfg.TickHz)
	ebiten.SetWindowResizable(true)
	ebiten.SetWindowSize(size.W*cfg.Scale+220, size.H*cfg.Scale)

	logger.Info("starting simulation",
		zap.String("sim", sim.Name()),
		zap.Int("width", size.W),
		zap.Int("height", size.H),
		zap.Int64("seed", cfg.Seed),
		zap.Int("tick_hz", cfg.TickHz),
		zap.Int("scale", cfg.Scale),
	)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Error("simulation exited with error", zap.Error(err))
		os.Exit(1)
	}
}

// runScenario executes a Lua startup script against world before the window
// opens, letting a deployment seed a dam, a lit fuse, or a block of ice over
// a fire without recompiling the engine.
func runScenario(world *sandbox.World, path string) error {
	runner := scenario.NewRunner(world)
	defer runner.Close()
	return runner.RunFile(path)
}
