//go:build sdl2

package window

import (
	"fmt"
	"time"

	"github.com/ushitora-anqou/aqpix/config"
	"github.com/ushitora-anqou/aqpix/frame"
	"github.com/veandco/go-sdl2/sdl"
)

// SDLInitialize must be called from the main OS thread before NewSDLWindow.
func SDLInitialize() error {
	return sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}

func SDLQuit() {
	sdl.Quit()
}

type SDLWindow struct {
	window        *sdl.Window
	renderer      *sdl.Renderer
	texture       *sdl.Texture
	redrawPending bool
}

// NewSDLWindow creates a window of the logical size and a streaming texture
// of the buffer resolution. SDL scales the texture to the window.
func NewSDLWindow(cfg config.Config) (*SDLWindow, error) {
	window, err := sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Window.Width),
		int32(cfg.Window.Height),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		window.Destroy()
		return nil, err
	}

	// ABGR8888 is stored as R, G, B, A bytes on little-endian hosts, which
	// is the layout of frame.Buffer.
	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(cfg.Buffer.Width),
		int32(cfg.Buffer.Height),
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		return nil, err
	}

	logger.Debugf("created SDL window %q (%dx%d) with %dx%d texture",
		cfg.Title, cfg.Window.Width, cfg.Window.Height, cfg.Buffer.Width, cfg.Buffer.Height)

	return &SDLWindow{
		window:   window,
		renderer: renderer,
		texture:  texture,
	}, nil
}

func (wind *SDLWindow) Size() (int, int) {
	w, h := wind.window.GetSize()
	return int(w), int(h)
}

// RequestRedraw queues a RedrawRequested event for the next PollEvents.
func (wind *SDLWindow) RequestRedraw() {
	wind.redrawPending = true
}

func (wind *SDLWindow) Present(b *frame.Buffer) error {
	// Update the texture
	pixels, pitch, err := wind.texture.Lock(nil)
	if err != nil {
		return err
	}
	err = b.CopyTo(pixels, pitch)
	wind.texture.Unlock()
	if err != nil {
		return err
	}

	// Present the scene
	if err := wind.renderer.Clear(); err != nil {
		return err
	}
	if err := wind.renderer.Copy(wind.texture, nil, nil); err != nil {
		return err
	}
	wind.renderer.Present()

	return nil
}

func (wind *SDLWindow) PollEvents(timeout time.Duration) ([]Event, error) {
	events := []Event{}
	if wind.redrawPending {
		wind.redrawPending = false
		events = append(events, NewEvent(RedrawRequested, timeNow()))
	}

	var event sdl.Event
	if len(events) == 0 && timeout > 0 {
		event = sdl.WaitEventTimeout(int(timeout / time.Millisecond))
	} else {
		event = sdl.PollEvent()
	}
	for ; event != nil; event = sdl.PollEvent() {
		events = append(events, NewEvent(translateSDLEvent(event), timeNow()))
	}

	return events, nil
}

func translateSDLEvent(event sdl.Event) EventKind {
	switch ev := event.(type) {
	case *sdl.QuitEvent:
		return CloseRequested

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_CLOSE {
			return CloseRequested
		}

	case *sdl.KeyboardEvent:
		if ev.Type == sdl.KEYDOWN && ev.Keysym.Sym == sdl.K_ESCAPE {
			return CloseRequested
		}
	}
	return Other
}

func (wind *SDLWindow) Close() error {
	if wind.texture != nil {
		if err := wind.texture.Destroy(); err != nil {
			return fmt.Errorf("destroying texture: %w", err)
		}
		wind.texture = nil
	}
	if wind.renderer != nil {
		if err := wind.renderer.Destroy(); err != nil {
			return fmt.Errorf("destroying renderer: %w", err)
		}
		wind.renderer = nil
	}
	if wind.window != nil {
		if err := wind.window.Destroy(); err != nil {
			return fmt.Errorf("destroying window: %w", err)
		}
		wind.window = nil
	}
	return nil
}
