package app

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/pingpong/internal/audio"
	"github.com/diegok/pingpong/internal/config"
	"github.com/diegok/pingpong/internal/game"
	"github.com/diegok/pingpong/internal/protocol"
	"github.com/diegok/pingpong/internal/ui"
)

// App is the main application controller that runs the frame loop.
type App struct {
	cfg      *config.Config
	logger   *log.Logger
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *game.Engine
	sounds   *audio.SoundManager
	held     ui.HeldKeys

	quit     chan struct{}
	quitOnce sync.Once
	sigChan  chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:    cfg,
		logger: log.New(os.Stderr, "", 0),
		quit:   make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It prepares audio, initializes the screen, sets up signal handling, and plays until quit.
func (a *App) Run() error {
	// Audio first: asset generation logs to the terminal before tcell takes it over
	a.sounds = a.initAudio()

	screen, err := ui.InitScreen()
	if err != nil {
		a.sounds.Close()
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.sounds.SetLogger(log.New(io.Discard, "", 0))

	seed := a.cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.attach(screen, rand.New(rand.NewSource(seed)))

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-a.sigChan:
			a.stop()
		case <-a.quit:
		}
	}()

	runErr := a.mainLoop()

	a.cleanup()

	return runErr
}

// initAudio loads the sound effects; any failure leaves the game silent
func (a *App) initAudio() *audio.SoundManager {
	sm := audio.NewSoundManager(a.logger)
	sm.SetVolume(a.cfg.Volume)
	if a.cfg.Mute {
		sm.Toggle()
	}

	if err := sm.Init(); err != nil {
		a.logger.Printf("Audio initialization failed: %v", err)
	}
	if err := sm.Load(a.cfg.SoundsDir); err != nil {
		a.logger.Printf("Sound effects unavailable: %v", err)
	}
	return sm
}

// attach wires the screen and a fresh match together
func (a *App) attach(screen *ui.Screen, rng *rand.Rand) {
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)
	a.engine = game.NewEngine(game.CourtWidth, game.CourtHeight, a.cfg.PointsToWin, rng, a.sounds)
}

// mainLoop polls input, advances the engine and renders once per frame.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / game.TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			a.step()
			a.render()
		}
	}
}

// step advances the match by one frame
func (a *App) step() {
	if a.engine.IsGameOver() {
		return
	}
	a.engine.HandleInput(a.held.Frame())
	a.engine.Update()
}

// handleEvent processes keyboard and other events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Ctrl+C always works
		if ui.IsInterruptKey(ev.Key()) {
			return true
		}

		if ui.IsMuteKey(ev.Key(), ev.Rune()) {
			a.sounds.Toggle()
			return false
		}

		if a.engine.IsGameOver() {
			return a.handleGameOverEvent(ev)
		}
		return a.handleGameEvent(ev)

	case *tcell.EventResize:
		a.screen.Clear()
		a.render()
	}

	return false
}

// handleGameEvent handles events during play.
func (a *App) handleGameEvent(ev *tcell.EventKey) bool {
	if ui.IsQuitKey(ev.Key(), ev.Rune()) {
		return true
	}
	a.held.Press(ui.KeyToDirection(ev.Key(), ev.Rune()))
	return false
}

// handleGameOverEvent handles the replay menu.
func (a *App) handleGameOverEvent(ev *tcell.EventKey) bool {
	switch a.engine.HandleGameOverInput(ui.KeyToMenuKey(ev.Key(), ev.Rune())) {
	case protocol.ActionExit:
		return true
	case protocol.ActionContinue:
		// Keys pressed on the menu must not carry into the new match
		a.held.Release()
	}
	return false
}

func (a *App) render() {
	state := a.engine.Snapshot()
	state.SoundOn = a.sounds.Enabled()
	a.renderer.RenderGame(state)
}

// stop closes the quit channel, releasing every helper goroutine
func (a *App) stop() {
	a.quitOnce.Do(func() { close(a.quit) })
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	a.stop()
	a.sounds.Close()

	if a.screen != nil {
		a.screen.Fini()
	}

	signal.Stop(a.sigChan)
}
