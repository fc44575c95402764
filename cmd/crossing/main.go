package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/crossing/audio"
	"github.com/lixenwraith/crossing/config"
	"github.com/lixenwraith/crossing/engine"
	"github.com/lixenwraith/crossing/events"
	"github.com/lixenwraith/crossing/modes"
	"github.com/lixenwraith/crossing/render"
)

func main() {
	cfg, err := config.Load(os.Args[1:], config.DefaultEnvFile)
	if errors.Is(err, flag.ErrHelp) {
		config.Usage(os.Stderr)
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "crossing: %v\n\n", err)
		config.Usage(os.Stderr)
		os.Exit(2)
	}

	if logFile := setupLogging(cfg.Debug); logFile != nil {
		defer logFile.Close()
	}

	applyColorMode(cfg.ColorMode)

	screen, err := newScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mCROSSING CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	run(screen, cfg)
}

func newScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))
	screen.HideCursor()
	screen.Clear()
	return screen, nil
}

// applyColorMode steers tcell's color detection, which reads the environment at screen creation
func applyColorMode(mode config.ColorMode) {
	switch mode {
	case config.Color256:
		os.Setenv("TCELL_TRUECOLOR", "disable")
	case config.ColorTrueColor:
		os.Setenv("COLORTERM", "truecolor")
	}
}

func run(screen tcell.Screen, cfg config.Config) {
	var rng engine.RandomSource
	if cfg.Seeded() {
		rng = engine.NewRandomSource(cfg.Seed)
	}

	queue := events.NewEventQueue()
	bridge := events.NewDisplayBridge(queue)
	session := engine.NewSession(engine.SessionOptions{
		Obstacles: cfg.Obstacles,
		Random:    rng,
		Display:   bridge,
	})
	log.Printf("[%s] session start: obstacles=%d seed=%d fps=%d", session.ID(), cfg.Obstacles, cfg.Seed, cfg.FPS)

	sound := audio.NewSoundManager()
	if err := sound.Initialize(); err != nil {
		log.Printf("[%s] audio unavailable: %v (continuing without audio)", session.ID(), err)
	} else {
		defer sound.Cleanup()
	}
	sound.SetEnabled(cfg.Sound)

	hud := render.NewHUD(session)
	hud.SoundOn = cfg.Sound
	renderer := render.NewTerminalRenderer(screen)

	router := events.NewRouter[*engine.Session](queue)
	router.Register(hud)
	router.Register(audio.NewCueHandler(sound))
	router.Register(newLogHandler())

	clock := engine.NewPausableClock(nil)
	driver := engine.NewTickDriver(clock)

	input := modes.NewInputHandler(session, clock, bridge, cfg.Sound, modes.Hooks{
		Resize: func() {
			screen.Sync()
			renderer.Resize()
		},
		Dismiss: hud.DismissModal,
	})

	eventChan := make(chan tcell.Event, 64)
	go pollEvents(screen, eventChan)

	frameTicker := time.NewTicker(cfg.FrameInterval())
	defer frameTicker.Stop()

	var frame int64
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok {
				return
			}
			if !input.HandleEvent(ev) {
				log.Printf("[%s] quit: level=%d score=%d paused=%v", session.ID(), session.Level(), session.Score(), clock.GetTotalPauseDuration())
				return
			}

		case <-frameTicker.C:
			frame++
			bridge.SetFrame(frame)

			input.Dispatch()
			session.Tick(driver.Next())
			router.DispatchAll(session)
			renderer.RenderFrame(session.Renderables(), hud)
		}
	}
}

// pollEvents forwards terminal events until the screen is finalized
func pollEvents(screen tcell.Screen, out chan<- tcell.Event) {
	// Panic recovery for input polling goroutine to ensure terminal cleanup
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(out)
			return
		}
		out <- ev
	}
}

func newLogHandler() events.Handler[*engine.Session] {
	return events.HandlerFunc[*engine.Session]{
		Types: []events.EventType{
			events.EventLevelUp,
			events.EventLifeLost,
			events.EventGameEnd,
			events.EventPauseToggle,
			events.EventSoundToggle,
		},
		Fn: func(s *engine.Session, ev events.GameEvent) {
			log.Printf("[%s] frame %d %s %+v", s.ID(), ev.Frame, ev.Type, ev.Payload)
		},
	}
}
