package main

import (
	"flag"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/deepdig/deepdig/assets"
	"github.com/deepdig/deepdig/internal/game"
	"github.com/deepdig/deepdig/internal/render"
	"github.com/deepdig/deepdig/internal/screen"
	"github.com/deepdig/deepdig/internal/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Bindings, in catalog order; the HUD labels come from render.*Keys.
var (
	equipmentKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6, ebiten.Key7}
	upgradeKeys   = []ebiten.Key{ebiten.KeyQ, ebiten.KeyW, ebiten.KeyE, ebiten.KeyR, ebiten.KeyT, ebiten.KeyY}
	skillKeys     = []ebiten.Key{ebiten.KeyZ, ebiten.KeyX, ebiten.KeyC, ebiten.KeyV, ebiten.KeyB}
)

// Held dodge keys repeat after a short delay.
const (
	repeatDelay = 12
	repeatEvery = 4
)

// Game is the Ebitengine game struct. It owns rendering and input.
// All gameplay state lives in sim.
type Game struct {
	buffer *render.CellBuffer
	grid   *screen.GridRenderer
	sim    *game.Sim
	snap   game.Snapshot
}

func NewGame(sim *game.Sim) *Game {
	g := &Game{
		buffer: render.NewCellBuffer(render.GridCols, render.GridRows),
		grid:   screen.NewGridRenderer(render.CellWidth, render.CellHeight),
		sim:    sim,
	}
	g.refresh()
	return g
}

func (g *Game) refresh() {
	g.snap = g.sim.Snapshot()
	render.DrawHUD(g.buffer, g.snap)
}

func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	return d == 1 || (d >= repeatDelay && d%repeatEvery == 0)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.snap.CaveIn == nil {
			return ebiten.Termination
		}
		g.sim.Dismiss()
	}

	if g.snap.CaveIn != nil && g.snap.CaveIn.Outcome == game.OutcomePending {
		if repeating(ebiten.KeyLeft) || repeating(ebiten.KeyA) {
			g.sim.MoveLeft()
		}
		if repeating(ebiten.KeyRight) || repeating(ebiten.KeyD) {
			g.sim.MoveRight()
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.sim.Mine()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		for k := world.ResourceKind(0); k < world.ResourceCount; k++ {
			if g.snap.Player.Quantity(k) > 0 {
				g.sim.SellAll(k)
			}
		}
	}
	for i, key := range equipmentKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.sim.BuyEquipment(world.EquipmentKind(i))
		}
	}
	for i, key := range upgradeKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.sim.BuyUpgrade(world.UpgradeKind(i))
		}
	}
	for i, key := range skillKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.sim.SpendSkillPoint(world.SkillID(i))
		}
	}

	g.sim.Tick()
	g.refresh()
	return nil
}

func (g *Game) Draw(dst *ebiten.Image) {
	g.grid.Draw(dst, g.buffer)
	if g.snap.CaveIn != nil {
		screen.DrawCaveIn(dst, g.snap.CaveIn, render.CaveInX, render.CaveInY)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return render.ScreenWidth, render.ScreenHeight
}

func main() {
	tuningPath := flag.String("tuning", "", "tuning YAML file (defaults to the embedded one)")
	seed := flag.Uint64("seed", 0, "random seed for rare finds and rock spawns (0 = time based)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	data := assets.Tuning
	if *tuningPath != "" {
		b, err := os.ReadFile(*tuningPath)
		if err != nil {
			log.Fatalf("read tuning: %v", err)
		}
		data = b
	}
	tuning, err := world.LoadTuning(data)
	if err != nil {
		log.Fatalf("load tuning: %v", err)
	}

	opts := []game.Option{game.WithLogger(logger)}
	if *seed != 0 {
		opts = append(opts, game.WithRoller(rand.New(rand.NewPCG(*seed, *seed>>1))))
	}
	sim := game.NewSim(tuning, opts...)
	logger.Info("starting", "tps", tuning.TicksPerSecond, "milestone", tuning.Minigame.MilestoneStep, "seed", *seed)

	ebiten.SetWindowSize(render.ScreenWidth, render.ScreenHeight)
	ebiten.SetWindowTitle(render.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(tuning.TicksPerSecond)

	if err := ebiten.RunGame(NewGame(sim)); err != nil {
		log.Fatal(err)
	}
}
