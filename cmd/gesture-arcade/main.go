package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/lixenwraith/gesture-arcade/audio"
	"github.com/lixenwraith/gesture-arcade/config"
	"github.com/lixenwraith/gesture-arcade/core"
	"github.com/lixenwraith/gesture-arcade/engine"
	"github.com/lixenwraith/gesture-arcade/events"
	"github.com/lixenwraith/gesture-arcade/input"
	"github.com/lixenwraith/gesture-arcade/render"
	"github.com/lixenwraith/gesture-arcade/snake"
	"github.com/lixenwraith/gesture-arcade/status"
	"github.com/lixenwraith/gesture-arcade/tower"
	"github.com/lixenwraith/gesture-arcade/vision"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	// Flags override the environment
	flag.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write logs/gesture-arcade.log and show the metrics line")
	flag.TextVar(&cfg.Game, "game", cfg.Game, "game shown first: snake or tower")
	flag.TextVar(&cfg.Difficulty, "difficulty", cfg.Difficulty, "easy, normal or hard")
	flag.StringVar(&cfg.Source, "source", cfg.Source, "hand source: pointer (mouse) or feed (websocket landmarks)")
	flag.StringVar(&cfg.Feed.URL, "feed", cfg.Feed.URL, "landmark feed websocket URL")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed, 0 for time-based")
	mute := flag.Bool("mute", !cfg.Audio.Enabled, "disable audio")
	flag.Parse()
	cfg.Audio.Enabled = !*mute

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "gesture-arcade needs an interactive terminal")
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		log.Printf("exit: %v", err)
		fmt.Fprintf(os.Stderr, "gesture-arcade: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, unix.SIGTERM, unix.SIGHUP)
	defer stop()

	reg := status.NewRegistry()
	reg.Strings.Get(status.KeyCaptureSource).Store(cfg.Source)

	// Capture opens before the screen so a failure prints on a sane terminal
	pointer := vision.NewPointer()
	var capture vision.Capture = pointer
	var mouse input.MouseHandler = pointer
	if cfg.Source == config.SourceFeed {
		capture = vision.NewFeed(cfg.Feed)
		mouse = nil
	}
	if err := capture.Open(ctx); err != nil {
		return fmt.Errorf("open capture: %w", err)
	}
	defer capture.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	core.SetCrashScreen(screen)
	defer core.SetCrashScreen(nil)

	screen.HideCursor()
	if mouse != nil {
		screen.EnableMouse(tcell.MouseMotionEvents)
	}

	sm := audio.NewSoundManager(&cfg.Audio, reg)
	if err := sm.Initialize(); err != nil {
		log.Printf("audio: %v (continuing without audio)", err)
	}
	defer sm.Cleanup()

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("session seed %d, source %s", seed, cfg.Source)

	cues := events.NewEventQueue()
	commands := events.NewEventQueue()

	renderer := render.NewTerminal(screen, reg)
	renderer.Debug = cfg.Debug

	arcade, err := engine.NewArcade(engine.Options{
		Snake:    snake.NewGame(rand.New(rand.NewPCG(seed, 1)), cues),
		Tower:    tower.NewGame(rand.New(rand.NewPCG(seed, 2)), cues),
		Game:     cfg.Game,
		Session:  cfg.Session(),
		Commands: commands,
		Cues:     cues,
		Source:   vision.NewSampler(capture, vision.LandmarkTracker{Mirror: cfg.Feed.Mirror}, reg),
		Renderer: renderer,
		Status:   reg,
	})
	if err != nil {
		return err
	}
	arcade.RegisterCueHandler(sm)

	poller := input.NewPoller(screen, nil, commands, mouse)
	poller.Start()
	defer poller.Stop()

	return arcade.Run(ctx)
}
