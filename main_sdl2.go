//go:build sdl2

package main

import (
	"context"
	"runtime"
	"time"

	"github.com/ushitora-anqou/aqpix/config"
	"github.com/ushitora-anqou/aqpix/window"
)

func init() {
	// SDL must be driven from the main OS thread.
	runtime.LockOSThread()
	backends["sdl2"] = runSDL2
}

func runSDL2(ctx context.Context, cfg config.Config, opts backendOptions, scene window.Scene) (window.Stats, error) {
	if err := window.SDLInitialize(); err != nil {
		return window.Stats{}, err
	}
	defer window.SDLQuit()

	wind, err := window.NewSDLWindow(cfg)
	if err != nil {
		return window.Stats{}, err
	}
	r, err := window.NewRenderer(cfg, wind, wind, time.Now())
	if err != nil {
		wind.Close()
		return window.Stats{}, err
	}
	defer r.Close()

	if opts.maxFrames > 0 {
		scene = limitFrames(scene, opts.maxFrames, r)
	}
	err = window.Run(ctx, r, wind, scene)
	return r.Stats(time.Now()), err
}
