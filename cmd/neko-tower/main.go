package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/lixenwraith/neko-tower/audio"
	"github.com/lixenwraith/neko-tower/config"
	"github.com/lixenwraith/neko-tower/constants"
	"github.com/lixenwraith/neko-tower/core"
	"github.com/lixenwraith/neko-tower/engine"
	"github.com/lixenwraith/neko-tower/input"
	"github.com/lixenwraith/neko-tower/metrics"
	"github.com/lixenwraith/neko-tower/render"
	"github.com/lixenwraith/neko-tower/tower"
)

var (
	configFlag      = flag.String("config", "", "Path to YAML config (default $"+config.EnvPath+")")
	debugFlag       = flag.Bool("debug", false, "Write debug logs to "+logDir+"/"+logFileName)
	metricsAddrFlag = flag.String("metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9090")
	seedFlag        = flag.Int64("seed", 0, "Random seed for tower generation (0 = config or time based)")
	muteFlag        = flag.Bool("mute", false, "Start with sound disabled")
	dumpConfigFlag  = flag.Bool("dump-config", false, "Print the effective config as YAML and exit")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Game.RNGSeed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	if *dumpConfigFlag {
		out, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to encode config: %v\n", err)
			os.Exit(1)
		}
		os.Stdout.Write(out)
		return
	}

	logger, logFile := setupLogging(*debugFlag)

	err = run(cfg, logger)

	_ = logger.Sync()
	if logFile != nil {
		logFile.Close()
	}

	if err != nil {
		if errors.Is(err, tower.ErrEmptyTower) {
			fmt.Fprintf(os.Stderr, "Tower ran out of pieces: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "neko-tower: %v\n", err)
		}
		os.Exit(1)
	}
}

// run owns the terminal for the lifetime of the game
func run(cfg *config.Config, logger *zap.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	screen.EnableMouse()
	screen.HideCursor()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	collector, err := metrics.NewCollector(registry)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if *metricsAddrFlag != "" {
		srv := metrics.NewServer(*metricsAddrFlag, registry, logger)
		srv.Start()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				logger.Warn("metrics server shutdown", zap.Error(err))
			}
		}()
	}

	// Audio is optional; the game runs silent without a device
	sound := audio.NewSoundManager(audio.NewAudioConfig(cfg.Audio.Enabled, cfg.Audio.MasterVolume))
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", zap.Error(err))
	} else {
		defer sound.Cleanup()
	}

	keyTable, err := cfg.KeyTable()
	if err != nil {
		return err
	}
	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	seed := cfg.Game.RNGSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	clock := engine.NewPausableClock(engine.NewMonotonicTimeProvider())
	renderer := render.NewTerminalRenderer(screen, clock)

	controller, err := engine.NewRoundController(
		engine.Presenters{renderer, sound},
		engine.WithSettings(settings),
		engine.WithRand(rand.New(rand.NewSource(seed))),
		engine.WithLogger(logger.With(zap.Int64("seed", seed))),
		engine.WithListener(collector),
	)
	if err != nil {
		return err
	}

	g := &game{
		screen:     screen,
		controller: controller,
		renderer:   renderer,
		keys:       input.NewMachine(keyTable),
		clock:      clock,
		frameClock: engine.NewFrameClock(clock, constants.MaxFrameDelta),
		sound:      sound,
		logger:     logger,
	}

	events := make(chan tcell.Event, constants.EventBufferSize)
	// Input polling goroutine only forwards events; the loop owns the controller
	core.Go(func() {
		defer close(events)

		for {
			ev := screen.PollEvent()
			// Nil after Fini
			if ev == nil {
				return
			}
			events <- ev
		}
	})

	logger.Info("game started", zap.Stringer("run", controller.RunID()))
	return g.loop(events, cfg.Game.TickInterval)
}
