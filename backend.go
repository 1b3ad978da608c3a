package main

import (
	"context"
	"strings"
	"time"

	"github.com/ushitora-anqou/aqpix/config"
	"github.com/ushitora-anqou/aqpix/frame"
	"github.com/ushitora-anqou/aqpix/window"
)

type backendOptions struct {
	outDir    string
	maxFrames int
}

// backend opens a window, runs scene until the window is closed, and
// returns what the renderer did.
type backend func(ctx context.Context, cfg config.Config, opts backendOptions, scene window.Scene) (window.Stats, error)

// Back-ends behind build tags register themselves from init.
var backends = map[string]backend{
	"headless": runHeadless,
}

var backendPreference = []string{"sdl2", "ebiten", "headless"}

func defaultBackend() string {
	for _, name := range backendPreference {
		if _, ok := backends[name]; ok {
			return name
		}
	}
	return "headless"
}

func backendList() string {
	names := []string{}
	for _, name := range backendPreference {
		if _, ok := backends[name]; ok {
			names = append(names, name)
		}
	}
	return strings.Join(names, ", ")
}

func runHeadless(ctx context.Context, cfg config.Config, opts backendOptions, scene window.Scene) (window.Stats, error) {
	wind, err := window.NewHeadless(cfg, opts.outDir, opts.maxFrames)
	if err != nil {
		return window.Stats{}, err
	}
	r, err := window.NewRenderer(cfg, wind, wind, time.Now())
	if err != nil {
		return window.Stats{}, err
	}
	defer r.Close()

	err = window.Run(ctx, r, wind, scene)
	return r.Stats(time.Now()), err
}

// limitFrames wraps scene so that the renderer is closed instead of drawing
// frame number limit.
func limitFrames(scene window.Scene, limit int, r *window.Renderer) window.Scene {
	return window.SceneFunc(func(c frame.Canvas, frameNo uint64) error {
		if frameNo >= uint64(limit) {
			r.HandleEvent(window.NewEvent(window.CloseRequested, time.Now()))
			return nil
		}
		if scene == nil {
			return nil
		}
		return scene.Draw(c, frameNo)
	})
}
