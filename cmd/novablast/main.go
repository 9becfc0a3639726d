package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/arkadyan/novablast/audio"
	"github.com/arkadyan/novablast/config"
	"github.com/arkadyan/novablast/core"
	"github.com/arkadyan/novablast/engine"
	"github.com/arkadyan/novablast/render"
	"github.com/arkadyan/novablast/system"
)

const (
	frameInterval = 16 * time.Millisecond

	// Terminal input has no key-up events, so movement keys hold their
	// effect for a short window after each press
	inputHold = 120 * time.Millisecond
)

func main() {
	configPath := flag.String("config", "", "path to YAML config (optional)")
	logPath := flag.String("log", "novablast.log", "path to log file")
	flag.Parse()

	if err := run(*configPath, *logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type game struct {
	cfg    config.Config
	log    *zap.Logger
	world  *engine.World
	sched  *engine.Scheduler
	waves  *system.WaveSystem
	damage *system.DamageSystem

	thrustUntil time.Time
	turnUntil   time.Time
	turnDir     int
	ship        core.Entity
}

func run(configPath, logPath string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	log, err := newLogger(logPath)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer log.Sync()

	g := &game{cfg: cfg, log: log}
	if err := g.buildWorld(); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	sound, err := audio.NewService(-1)
	if err != nil {
		log.Warn("audio disabled", zap.Error(err))
	}

	renderer := render.NewRenderer(screen, cfg.Arena.Width, cfg.Arena.Height)

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go screen.ChannelEvents(events, quit)

	reload := watchConfig(configPath, quit, log)

	g.sched.Start()
	defer g.sched.Stop()

	origin := time.Now()
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if done := g.handleInput(ev); done {
				return nil
			}

		case _, ok := <-reload:
			if !ok {
				reload = nil
				continue
			}
			g.applyReload(configPath)

		case <-ticker.C:
			g.applyHeldInput()
			g.sched.Advance(time.Since(origin))
			for _, ev := range g.world.DrainEvents() {
				sound.Handle(ev)
			}
			renderer.Draw(g.world, g.waves.Wave())
		}
	}
}

// buildWorld constructs a fresh World and the system pipeline
// Registration order is execution order: controls and spawning feed
// steering and integration, collision runs after all movement, and the
// event consumers run last so they see this tick's collisions
func (g *game) buildWorld() error {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	w := engine.NewWorld()
	collision, err := system.NewCollisionSystem(g.cfg.Engine.CellSize)
	if err != nil {
		return err
	}
	g.waves = system.NewWaveSystem(rng,
		g.cfg.Arena.Width, g.cfg.Arena.Height,
		g.cfg.Game.AsteroidBaseCount, g.cfg.Game.AsteroidPerWave, g.cfg.Game.BossWaveInterval)
	g.damage = system.NewDamageSystem(rng, g.cfg.Game.PowerUpDropChance)

	w.AddSystem(system.NewControlSystem())
	w.AddSystem(g.waves)
	w.AddSystem(system.NewBossSystem())
	w.AddSystem(system.NewWeaponSystem())
	w.AddSystem(system.NewHomingSystem())
	w.AddSystem(system.NewMovementSystem())
	w.AddSystem(system.NewBoundsSystem(g.cfg.Arena.Width, g.cfg.Arena.Height))
	w.AddSystem(system.NewLifetimeSystem())
	w.AddSystem(collision)
	w.AddSystem(g.damage)
	w.AddSystem(system.NewPowerUpSystem())

	sched, err := engine.NewScheduler(w, g.cfg.FixedStep(), g.cfg.FrameDeltaCap(), g.log)
	if err != nil {
		return err
	}

	g.world = w
	g.sched = sched
	g.ship = system.SpawnShip(w, core.Vec2{X: g.cfg.Arena.Width / 2, Y: g.cfg.Arena.Height / 2})
	return nil
}

// handleInput reacts to a single tcell event; returns true to quit
func (g *game) handleInput(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return false
	}

	now := time.Now()
	switch {
	case key.Key() == tcell.KeyEscape, key.Rune() == 'q':
		return true
	case key.Key() == tcell.KeyUp, key.Rune() == 'w':
		g.thrustUntil = now.Add(inputHold)
	case key.Key() == tcell.KeyLeft, key.Rune() == 'a':
		g.turnUntil = now.Add(inputHold)
		g.turnDir = -1
	case key.Key() == tcell.KeyRight, key.Rune() == 'd':
		g.turnUntil = now.Add(inputHold)
		g.turnDir = 1
	case key.Rune() == ' ':
		g.setFiring()
	case key.Rune() == 'm':
		g.fireMissile()
	case key.Rune() == 'r':
		g.restart()
	}
	return false
}

// applyHeldInput projects the held-key windows onto the ship components
// It runs between frames, never during a tick
func (g *game) applyHeldInput() {
	ship, ok := g.world.Ships.Get(g.ship)
	if !ok {
		return
	}
	now := time.Now()

	ship.Thrusting = now.Before(g.thrustUntil)
	ship.Turning = 0
	if now.Before(g.turnUntil) {
		ship.Turning = g.turnDir
	}
	g.world.Ships.Set(g.ship, ship)
}

func (g *game) setFiring() {
	if wp, ok := g.world.Weapons.Get(g.ship); ok {
		wp.Firing = true
		g.world.Weapons.Set(g.ship, wp)
	}
}

func (g *game) fireMissile() {
	if wp, ok := g.world.Weapons.Get(g.ship); ok {
		wp.FireMissile = true
		g.world.Weapons.Set(g.ship, wp)
	}
}

// restart clears the session and spawns a fresh ship
// Handles stay retired: the new session never sees old entities
func (g *game) restart() {
	if g.world.Ships.Count() > 0 {
		return
	}
	g.world.Clear()
	g.waves.Reset()
	g.ship = system.SpawnShip(g.world, core.Vec2{X: g.cfg.Arena.Width / 2, Y: g.cfg.Arena.Height / 2})
	g.log.Info("session restarted")
}

// applyReload re-reads the config file and applies the live-tunable values
// Kernel settings (tick rate, cell size, arena) stay fixed for the session
func (g *game) applyReload(configPath string) {
	loaded, err := config.Load(configPath)
	if err != nil {
		g.log.Warn("config reload rejected", zap.Error(err))
		return
	}
	g.waves.SetTuning(loaded.Game.AsteroidBaseCount, loaded.Game.AsteroidPerWave, loaded.Game.BossWaveInterval)
	g.damage.SetDropChance(loaded.Game.PowerUpDropChance)
	g.log.Info("config reloaded", zap.String("path", configPath))
}

// watchConfig emits on the returned channel when the config file changes
// The channel closes once done closes and the watcher is released
// Returns a nil channel (never ready) when no config file is in use
func watchConfig(path string, done <-chan struct{}, log *zap.Logger) <-chan struct{} {
	if path == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("config watch unavailable", zap.Error(err))
		return nil
	}
	if err := watcher.Add(path); err != nil {
		log.Warn("config watch unavailable", zap.Error(err))
		watcher.Close()
		return nil
	}

	ch := make(chan struct{}, 1)
	go func() {
		defer close(ch)
		defer watcher.Close()
		for {
			select {
			case <-done:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
					select {
					case ch <- struct{}{}:
					default:
					}
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()
	return ch
}

// newLogger writes JSON logs to a file; the terminal is owned by tcell
func newLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	return cfg.Build()
}
