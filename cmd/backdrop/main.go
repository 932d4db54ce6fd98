package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orbit-backdrop/internal/anim"
	"orbit-backdrop/internal/config"
	"orbit-backdrop/internal/debug"
	"orbit-backdrop/internal/field"
	"orbit-backdrop/internal/graphics"
	"orbit-backdrop/internal/hover"
	"orbit-backdrop/internal/logger"
	"orbit-backdrop/internal/palette"
	"orbit-backdrop/internal/pointer"
	"orbit-backdrop/internal/scene"
)

func main() {
	configPath := flag.String("config", "", "config file (default $"+config.EnvConfigPath+" or "+config.DefaultPath+")")
	envPath := flag.String("env", ".env", "dotenv file with BACKDROP_* overrides")
	flag.Parse()

	log := logger.New()

	if err := config.LoadEnv(*envPath); err != nil {
		log.Logf(logger.Warn, "%v", err)
	}
	path := *configPath
	if path == "" {
		path = config.PathFromEnv(config.DefaultPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Logf(logger.Warn, "%v; using defaults", err)
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		log.Logf(logger.Warn, "env overrides: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log.Logf(logger.Info, "starting %s variant, seed %d", cfg.Variant, cfg.Seed)

	rng := field.NewRand(uint64(cfg.Seed))
	fs := field.Build(cfg, rng)
	st := anim.New(fs, cfg)
	tracker := pointer.NewTracker()
	detector := hover.NewDetector()
	loop := anim.NewLoop(st, tracker, detector, cfg.Window.Width, cfg.Window.Height)

	seed, err := palette.LoadCSS(cfg.Palette.SeedCSS)
	if err != nil {
		log.Logf(logger.Warn, "palette seed: %v", err)
	}
	osc := palette.New(cfg.Palette, rng, 0, seed)
	bg := scene.NewBackground()
	sinks := palette.Sinks{bg}
	if cfg.Palette.StyleOut != "" {
		sinks = append(sinks, palette.NewCSSFile(cfg.Palette.StyleOut))
	}

	host := graphics.NewHost(cfg.Window, log)
	scn := scene.New(fs, st, cfg)
	host.OnClose(scn.Unload)
	overlay := debug.New(cfg.Debug, debug.Probe{
		Hovered:      func() bool { return st.Hovered },
		Transitions:  osc.Transitions,
		Frames:       st.Frames,
		HoverTests:   detector.Tests,
		PointerMoves: tracker.Moves,
		LogLines:     log.Lines,
	})

	host.OnResize(func(w, h int) {
		loop.Resize(w, h)
		log.Logf(logger.Info, "viewport %dx%d", w, h)
	})
	host.OnPointerMove(tracker.Move)

	host.OnFrame(func(now float64) {
		loop.Frame(float32(now))
		scn.Update()
	})
	var stopPalette func()
	stopPalette = host.OnFrame(func(now float64) {
		if err := sinks.Apply(palette.Vars(osc.Tick(now * 1000))); err != nil {
			log.Logf(logger.Error, "palette stopped: %v", err)
			stopPalette()
		}
	})

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	host.OnFrame(func(float64) {
		select {
		case s := <-sig:
			log.Logf(logger.Info, "received %v, stopping", s)
			host.Stop()
		default:
		}
	})

	host.AddLayer(bg.Draw)
	host.AddLayer(scn.Draw)
	host.AddLayer(overlay.Draw)
	host.Run()
}
