// Package window drives a frame.Buffer against a platform window.
//
// The package is split in two: Reduce is a pure function mapping a platform
// event to the next control-flow state and an Action, and Renderer
// interprets those actions against a Handle and a Presenter. Neither needs a
// real window, so both are tested with fakes. Run is the reference event
// loop; the SDL2, ebiten and headless back-ends supply the platform side.
package window

import (
	"time"

	"github.com/ushitora-anqou/aqpix/frame"
	"github.com/ushitora-anqou/aqpix/log"
)

var logger = log.New("window")

// Handle is the platform window the buffer is bound to.
type Handle interface {
	// Size returns the logical size of the window.
	Size() (width, height int)
	// RequestRedraw asks the platform to deliver a RedrawRequested event.
	RequestRedraw()
}

// Presenter copies the buffer to the visible screen.
type Presenter interface {
	Present(b *frame.Buffer) error
}

// EventSource delivers the platform events pending for one loop iteration.
// It waits at most timeout for the first event and must not emit IdleTick;
// the loop does that once the batch is drained.
type EventSource interface {
	PollEvents(timeout time.Duration) ([]Event, error)
}

// Scene draws one frame. It is invoked right before a redraw is presented.
type Scene interface {
	Draw(c frame.Canvas, frameNo uint64) error
}

type SceneFunc func(c frame.Canvas, frameNo uint64) error

func (f SceneFunc) Draw(c frame.Canvas, frameNo uint64) error {
	return f(c, frameNo)
}
