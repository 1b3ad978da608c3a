package window

import "time"

// Stats counts what a renderer did since it was created.
type Stats struct {
	// Events handled, including idle ticks.
	Events uint64
	// RedrawRequests is the number of redraws the pacer asked for.
	RedrawRequests uint64
	// Frames presented successfully.
	Frames uint64

	Elapsed time.Duration
}

// FPS returns the average presented frame rate.
func (s Stats) FPS() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Elapsed.Seconds()
}
