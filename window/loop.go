package window

import (
	"context"
	"fmt"
	"time"
)

var timeNow = time.Now

// Run drives r with the events of src until the renderer reaches
// ExitRequested or ctx is done. scene, if not nil, draws each frame right
// before it is presented.
//
// Each iteration polls the pending events, handles them in order, and then
// handles one IdleTick. A presentation failure ends the loop and is returned.
func Run(ctx context.Context, r *Renderer, src EventSource, scene Scene) error {
	logger.Infof("entering event loop (%dx%d buffer, frame interval %s)",
		r.Width(), r.Height(), r.State().Pacer.Interval())

	var frameNo uint64
	for {
		if err := ctx.Err(); err != nil {
			logger.Infof("event loop cancelled: %v", err)
			return err
		}

		events, err := src.PollEvents(r.UntilNextFrame(timeNow()))
		if err != nil {
			return fmt.Errorf("polling events: %w", err)
		}

		for _, ev := range events {
			if ev.Kind == RedrawRequested && scene != nil {
				if err := scene.Draw(r, frameNo); err != nil {
					return fmt.Errorf("drawing frame %d: %w", frameNo, err)
				}
				frameNo++
			}

			flow, err := r.HandleEvent(ev)
			if err != nil {
				logger.Errorf("%v", err)
				return err
			}
			if flow == ExitRequested {
				logger.Infof("exit requested after %d frames", frameNo)
				return nil
			}
		}

		// IdleTick never presents, so it cannot fail.
		r.HandleEvent(NewEvent(IdleTick, timeNow()))
	}
}
