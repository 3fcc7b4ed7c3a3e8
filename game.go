package main

import (
	"fmt"
	"image/color"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/wanderers/camera"
	"github.com/milk9111/wanderers/clock"
	"github.com/milk9111/wanderers/common"
	"github.com/milk9111/wanderers/ecs"
	"github.com/milk9111/wanderers/ecs/system"
	"github.com/milk9111/wanderers/prefabs"
	"github.com/milk9111/wanderers/sim"
)

type Options struct {
	SpecName string
	Debug    bool
	Seed     uint64
	Watch    bool
}

type Game struct {
	opts  Options
	clock clock.Clock
	frame *clock.Frame
	rng   *rand.Rand

	roster   *sim.Roster
	renderer *system.RenderSystem
	cam      camera.Camera
	camCtrl  *camera.Controller
	bg       color.Color

	overlay *DebugOverlay
	watcher *prefabs.Watcher
}

func NewGame(opts Options) (*Game, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	g := &Game{
		opts:  opts,
		clock: clock.System{},
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	if err := g.load(); err != nil {
		return nil, err
	}
	g.overlay = NewDebugOverlay(g)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("prefabs: watch %s: %v", prefabs.Dir, err)
		} else {
			g.watcher = w
		}
	}
	if opts.Debug {
		log.Printf("game: seed=%d instances=%d", seed, g.roster.Len())
	}
	return g, nil
}

// load builds the roster, sheet and camera from the spec. On error the game
// keeps whatever it had before.
func (g *Game) load() error {
	spec, err := prefabs.LoadWanderSpec(g.opts.SpecName)
	if err != nil {
		return err
	}
	table, err := spec.DirectionalAnimations()
	if err != nil {
		return err
	}

	sheet, err := spec.LoadSheet()
	if err != nil {
		return err
	}

	now := g.clock.Now()
	roster, err := sim.NewRoster(spec.RosterConfig(), table, g.rng, now)
	if err != nil {
		return err
	}

	g.roster = roster
	g.renderer = system.NewRenderSystem(sheet, spec.Sheet.SpriteSize)
	g.cam = spec.View()
	g.camCtrl = camera.NewController(spec.Camera.Speed)
	g.bg = spec.Background.Color
	g.frame = clock.NewFrame(g.clock)
	return nil
}

func (g *Game) Update() error {
	g.pollReload()

	g.camCtrl.ReadKeys()
	g.camCtrl.Apply(&g.cam)

	now, elapsed := g.frame.Tick()
	g.roster.Tick(now, elapsed)
	g.drainEvents()
	if g.opts.Debug && inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.logSnapshots()
	}

	g.overlay.Update(elapsed)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	g.renderer.Draw(g.roster.World(), screen, g.cam)
	g.overlay.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close releases the spec watcher.
func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("prefabs: close watcher: %v", err)
		}
	}
}

// SetBackground replaces the clear colour.
func (g *Game) SetBackground(c color.Color) {
	g.bg = c
}

// Background returns the clear colour.
func (g *Game) Background() color.Color {
	return g.bg
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if err := g.load(); err != nil {
				log.Printf("prefabs: reload after %s: %v", name, err)
				continue
			}
			log.Printf("prefabs: reloaded %s, %d instances", name, g.roster.Len())
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefabs: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) drainEvents() {
	events := g.roster.World().Events().Drain()
	if !g.opts.Debug {
		return
	}
	for _, ev := range events {
		switch ev.Type {
		case ecs.EventMotionChanged, ecs.EventDirectionChanged:
			log.Printf("sim: entity=%s %s %v", ev.Entity, ev.Type, ev.Data)
		}
	}
}

// logSnapshots dumps every instance in roster order.
func (g *Game) logSnapshots() {
	for _, s := range g.roster.Snapshots() {
		log.Printf("sim: #%d %s %s pos=(%.2f, %.2f) frame=%d", s.Index, s.Motion, s.Direction, s.Position.X, s.Position.Y, s.Frame)
	}
}

func (g *Game) statusLine(frameTime time.Duration) string {
	ms := float64(frameTime) / float64(time.Millisecond)
	return fmt.Sprintf("Frametime: %.2fms  FPS: %.1f  TPS: %.1f", ms, ebiten.ActualFPS(), ebiten.ActualTPS())
}
