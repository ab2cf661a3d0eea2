package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"

	"clubsite/app"
	"clubsite/hal"
	"clubsite/internal/buildinfo"
	"clubsite/internal/config"
	"clubsite/internal/logging"
)

func main() {
	var (
		headless  bool
		hz        int
		ticks     uint64
		shape     string
		fps       float64
		width     int
		height    int
		configDir string
		version   bool
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.IntVar(&hz, "hz", 90, "Tick rate in headless mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.StringVar(&shape, "shape", "cube", "Wireframe preset to draw.")
	flag.Float64Var(&fps, "fps", 90, "Reference frame rate for the default rotation speed.")
	flag.IntVar(&width, "width", 1280, "Window or framebuffer width.")
	flag.IntVar(&height, "height", 720, "Window or framebuffer height.")
	flag.StringVar(&configDir, "config", "", "Directory holding clubsite.yaml and .env files.")
	flag.BoolVar(&version, "version", false, "Print the build version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	// Only flags given on the command line override the config file and environment.
	overrides := map[string]interface{}{}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "hz":
			overrides["headless.hz"] = hz
		case "ticks":
			overrides["headless.ticks"] = ticks
		case "shape":
			overrides["background.shape"] = shape
		case "fps":
			overrides["background.fps"] = fps
		case "width":
			overrides["window.width"] = width
		case "height":
			overrides["window.height"] = height
		}
	})

	cfg, err := config.Load(config.Options{Dir: configDir, Overrides: overrides})
	if err != nil {
		fatal(err)
	}
	lvl, _ := logging.ParseLevel(cfg.LogLevel)
	logging.Configure(lvl, nil)

	appCfg, err := backgroundConfig(cfg)
	if err != nil {
		fatal(err)
	}
	newApp := func(h hal.HAL) func() error {
		return app.NewWithConfig(h, appCfg)
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hal.HeadlessConfig{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Hz:     cfg.Headless.Hz,
			Ticks:  cfg.Headless.Ticks,
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			fatal(err)
		}
		return
	}

	if err := hal.RunWindow(newApp, hal.WindowConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
	}); err != nil {
		fatal(err)
	}
}

func backgroundConfig(cfg *config.Config) (app.Config, error) {
	g, err := cfg.Geometry()
	if err != nil {
		return app.Config{}, err
	}
	opts, err := cfg.WireframeOptions()
	if err != nil {
		return app.Config{}, err
	}
	b := cfg.Background
	return app.Config{
		Geometry:     g,
		Options:      opts,
		Pixelated:    b.Pixelated,
		SplashTitle:  b.SplashTitle,
		SplashFrames: b.SplashFrames,
		Restart:      b.Restart,
		RestartDelay: b.RestartDelay,
	}, nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
