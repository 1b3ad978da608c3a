//go:build ebiten

package main

import (
	"context"
	"time"

	"github.com/ushitora-anqou/aqpix/config"
	"github.com/ushitora-anqou/aqpix/window"
)

func init() {
	backends["ebiten"] = runEbiten
}

func runEbiten(ctx context.Context, cfg config.Config, opts backendOptions, scene window.Scene) (window.Stats, error) {
	window.EbitenInitialize(cfg)

	wind := window.NewEbitenWindow()
	r, err := window.NewRenderer(cfg, wind, wind, time.Now())
	if err != nil {
		return window.Stats{}, err
	}
	defer r.Close()

	if opts.maxFrames > 0 {
		scene = limitFrames(scene, opts.maxFrames, r)
	}
	err = wind.Run(ctx, r, scene)
	return r.Stats(time.Now()), err
}
