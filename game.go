package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/swordduel/config"
	"github.com/milk9111/swordduel/ecs"
	"github.com/milk9111/swordduel/ecs/entity"
	"github.com/milk9111/swordduel/ecs/render"
	"github.com/milk9111/swordduel/ecs/system"
)

type GameOptions struct {
	ConfigName string
	Seed       int64
	Debug      bool
	Watch      bool
}

type Game struct {
	spec       *config.MatchSpec
	configName string
	debug      bool

	world     *ecs.World
	duel      *entity.Duel
	scheduler *ecs.Scheduler
	input     *InputSystem
	renderer  *render.Renderer
	hud       *render.HUD
	watcher   *config.Watcher

	lastUpdate time.Time
}

func NewGame(spec *config.MatchSpec, opts GameOptions) (*Game, error) {
	w := ecs.NewWorld()
	duel, err := entity.NewDuel(w, spec)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	ai := system.NewAISystem(spec, rand.New(rand.NewSource(opts.Seed)))
	ai.Register(w)

	g := &Game{
		spec:       spec,
		configName: opts.ConfigName,
		debug:      opts.Debug,
		world:      w,
		duel:       duel,
		scheduler: ecs.NewScheduler(
			system.NewPlayerControllerSystem(spec),
			system.NewCommandSystem(),
			system.NewPhysicsSystem(spec),
			system.NewCombatSystem(spec),
			system.NewMatchSystem(spec),
		),
		input:    NewInputSystem(),
		renderer: render.NewRenderer(spec),
		hud:      render.NewHUD(spec),
	}

	if opts.Watch {
		watcher, err := config.NewWatcher(config.DiskPath(opts.ConfigName))
		if err != nil {
			log.Printf("Game: config watch disabled: %v", err)
		} else {
			g.watcher = watcher
			log.Printf("Game: watching %s for config changes", watcher.Path())
		}
	}

	return g, nil
}

func (g *Game) Update() error {
	g.input.Update(g.world)
	if g.input.Quit() {
		return ebiten.Termination
	}

	g.reloadConfig()

	now := time.Now()
	if !g.lastUpdate.IsZero() {
		g.world.Timers().Advance(now.Sub(g.lastUpdate))
	}
	g.lastUpdate = now

	g.scheduler.Update(g.world)
	return nil
}

// reloadConfig applies any config change reported by the watcher since the
// last frame. A spec that fails to load is logged and ignored.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case err, ok := <-g.watcher.Errors:
			if ok {
				log.Printf("Game: config watch error: %v", err)
			}
		default:
		}

		changed, ok := g.watcher.Poll()
		if !ok {
			return
		}
		next, err := config.LoadMatchSpec(g.configName)
		if err != nil {
			log.Printf("Game: reload %s: %v", changed, err)
			continue
		}
		g.spec.ApplyReload(next)
		g.world.PhysicsWorld().Tune(g.spec.Physics.Gravity, g.spec.Physics.Damping)
		log.Printf("Game: reloaded %s", changed)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)
	if g.debug {
		render.DrawPhysicsDebug(g.world, screen)
		render.DrawMatchDebug(g.world, screen)
	}
	g.hud.Draw(system.ReadScoreboard(g.world), screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return g.spec.Arena.Width, g.spec.Arena.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// Close stops the config watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
