package window

import (
	"fmt"
	"image"
	"io"
	"time"

	"github.com/ushitora-anqou/aqpix/color"
	"github.com/ushitora-anqou/aqpix/config"
	"github.com/ushitora-anqou/aqpix/frame"
)

// Renderer owns a surface buffer bound to a window. It is not safe for
// concurrent use: drawing and HandleEvent must be called from the goroutine
// running the event loop.
type Renderer struct {
	handle    Handle
	presenter Presenter
	buf       *frame.Buffer
	state     State
	stats     Stats
	started   time.Time
	closed    bool
}

// NewRenderer allocates the buffer at the configured resolution and starts
// pacing from now.
func NewRenderer(cfg config.Config, handle Handle, presenter Presenter, now time.Time) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	buf, err := frame.New(cfg.Buffer.Width, cfg.Buffer.Height)
	if err != nil {
		return nil, err
	}
	pacer, err := NewPacer(cfg.RefreshRate, now)
	if err != nil {
		return nil, err
	}

	return &Renderer{
		handle:    handle,
		presenter: presenter,
		buf:       buf,
		state:     State{Flow: Running, Pacer: pacer},
		started:   now,
	}, nil
}

// HandleEvent feeds one event through Reduce and performs the resulting
// action. A failed presentation moves the renderer to ExitRequested and is
// returned as a *PresentationError.
func (r *Renderer) HandleEvent(ev Event) (ControlFlow, error) {
	next, action := Reduce(r.state, ev)
	r.state = next
	r.stats.Events++

	switch action {
	case ActionRequestRedraw:
		r.stats.RedrawRequests++
		r.handle.RequestRedraw()

	case ActionPresent:
		if err := r.presenter.Present(r.buf); err != nil {
			r.state.Flow = ExitRequested
			return r.state.Flow, &PresentationError{Err: err}
		}
		r.stats.Frames++
	}

	return r.state.Flow, nil
}

func (r *Renderer) Flow() ControlFlow {
	return r.state.Flow
}

// State returns a copy of the control-flow and pacing state.
func (r *Renderer) State() State {
	return r.state
}

// UntilNextFrame returns how long the loop may wait before the next frame
// is due.
func (r *Renderer) UntilNextFrame(now time.Time) time.Duration {
	return r.state.Pacer.Until(now)
}

func (r *Renderer) Stats(now time.Time) Stats {
	s := r.stats
	s.Elapsed = now.Sub(r.started)
	return s
}

// WindowSize returns the logical size of the window, which may differ from
// the buffer resolution.
func (r *Renderer) WindowSize() (int, int) {
	return r.handle.Size()
}

func (r *Renderer) Width() int {
	return r.buf.Width()
}

func (r *Renderer) Height() int {
	return r.buf.Height()
}

func (r *Renderer) writable() error {
	if r.closed || r.state.Flow == ExitRequested {
		return ErrExitRequested
	}
	return nil
}

func (r *Renderer) DrawRect(x, y, width, height int, c color.Color) error {
	if err := r.writable(); err != nil {
		return err
	}
	return r.buf.DrawRect(x, y, width, height, c)
}

func (r *Renderer) Draw(x, y int, c color.Color) error {
	if err := r.writable(); err != nil {
		return err
	}
	return r.buf.Draw(x, y, c)
}

func (r *Renderer) DrawHLine(y int, c color.Color) error {
	if err := r.writable(); err != nil {
		return err
	}
	return r.buf.DrawHLine(y, c)
}

func (r *Renderer) DrawVLine(x int, c color.Color) error {
	if err := r.writable(); err != nil {
		return err
	}
	return r.buf.DrawVLine(x, c)
}

func (r *Renderer) Fill(c color.Color) error {
	if err := r.writable(); err != nil {
		return err
	}
	return r.buf.Fill(c)
}

func (r *Renderer) Clear() error {
	if err := r.writable(); err != nil {
		return err
	}
	return r.buf.Clear()
}

// At reads a pixel of the buffer.
func (r *Renderer) At(x, y int) (color.Color, error) {
	return r.buf.At(x, y)
}

// Image returns a copy of the current frame.
func (r *Renderer) Image() *image.RGBA {
	return r.buf.Snapshot()
}

// Close moves the renderer to ExitRequested and releases the window handle
// if it can be closed. The buffer is kept readable but no longer writable.
func (r *Renderer) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	r.state.Flow = ExitRequested
	if c, ok := r.handle.(io.Closer); ok {
		if err := c.Close(); err != nil {
			return fmt.Errorf("closing window: %w", err)
		}
	}
	return nil
}
