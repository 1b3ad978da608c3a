package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/urfave/cli"
	"github.com/ushitora-anqou/aqpix/color"
	"github.com/ushitora-anqou/aqpix/config"
	"github.com/ushitora-anqou/aqpix/log"
	"github.com/ushitora-anqou/aqpix/pattern"
)

var logger = log.New("aqpix")

var configFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "title",
		Usage: "window title",
	},
	cli.IntFlag{
		Name:  "width",
		Usage: "logical window width",
	},
	cli.IntFlag{
		Name:  "height",
		Usage: "logical window height",
	},
	cli.IntFlag{
		Name:  "buffer-width",
		Usage: "pixel buffer width",
	},
	cli.IntFlag{
		Name:  "buffer-height",
		Usage: "pixel buffer height",
	},
	cli.Float64Flag{
		Name:  "rate",
		Usage: "target refresh rate in Hz",
	},
	cli.StringFlag{
		Name:  "background",
		Usage: "background color (" + strings.Join(color.Names(), ", ") + " or #rrggbb[aa])",
	},
}

func setupLogging(ctx *cli.Context) error {
	if name := ctx.GlobalString("log-level"); name != "" {
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
	}

	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}

// loadConfig reads the global config file, if any, and applies the flags
// given on the command line on top of it.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := ctx.GlobalString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if ctx.IsSet("title") {
		cfg.Title = ctx.String("title")
	}
	if ctx.IsSet("width") {
		cfg.Window.Width = ctx.Int("width")
	}
	if ctx.IsSet("height") {
		cfg.Window.Height = ctx.Int("height")
	}
	if ctx.IsSet("buffer-width") {
		cfg.Buffer.Width = ctx.Int("buffer-width")
	}
	if ctx.IsSet("buffer-height") {
		cfg.Buffer.Height = ctx.Int("buffer-height")
	}
	if ctx.IsSet("rate") {
		cfg.RefreshRate = ctx.Float64("rate")
	}
	if ctx.IsSet("background") {
		cfg.Background = ctx.String("background")
	}

	return cfg, cfg.Validate()
}

func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Open a window and animate a test pattern.
func RunWindow(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	scene, err := pattern.Lookup(ctx.String("pattern"), cfg.BackgroundColor())
	if err != nil {
		return err
	}

	name := ctx.String("backend")
	if name == "" {
		name = defaultBackend()
	}
	open, ok := backends[name]
	if !ok {
		return fmt.Errorf("unknown back-end %q (available: %s)", name, backendList())
	}

	runCtx, cancel := interruptContext()
	defer cancel()

	logger.Noticef("running %q on %s back-end", ctx.String("pattern"), name)
	stats, err := open(runCtx, cfg, backendOptions{
		outDir:    ctx.String("out"),
		maxFrames: ctx.Int("frames"),
	}, scene)
	displayStats(stats)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Render frames of a test pattern to PNG files.
func RenderFrames(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	scene, err := pattern.Lookup(ctx.String("pattern"), cfg.BackgroundColor())
	if err != nil {
		return err
	}
	if ctx.Int("frames") <= 0 {
		return errors.New("render: frame count must be positive")
	}

	out := "frames"
	if ctx.NArg() > 0 {
		out = ctx.Args().First()
	}

	runCtx, cancel := interruptContext()
	defer cancel()

	stats, err := runHeadless(runCtx, cfg, backendOptions{
		outDir:    out,
		maxFrames: ctx.Int("frames"),
	}, scene)
	if err != nil {
		return err
	}
	logger.Noticef("wrote %d frames to %s", stats.Frames, out)
	displayStats(stats)
	return nil
}

// Print the effective configuration.
func PrintConfig(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
