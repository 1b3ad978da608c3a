package window

import (
	"fmt"
	"math"
	"time"
)

// Pacer decides when the next frame is due. It is a value type; Reduce
// returns an updated copy.
type Pacer struct {
	last     time.Time
	interval time.Duration
}

// IntervalFor converts a refresh rate in Hz into a frame interval.
func IntervalFor(hz float64) (time.Duration, error) {
	if !(hz > 0) || math.IsInf(hz, 0) {
		return 0, fmt.Errorf("%w: %v Hz", ErrInvalidRefreshRate, hz)
	}
	return time.Duration(float64(time.Second) / hz), nil
}

// NewPacer returns a pacer at hz whose last frame was drawn at now.
func NewPacer(hz float64, now time.Time) (Pacer, error) {
	interval, err := IntervalFor(hz)
	if err != nil {
		return Pacer{}, err
	}
	return Pacer{last: now, interval: interval}, nil
}

func (p Pacer) Last() time.Time {
	return p.last
}

func (p Pacer) Interval() time.Duration {
	return p.interval
}

// Due reports whether a frame should be drawn at now.
func (p Pacer) Due(now time.Time) bool {
	return now.Sub(p.last) >= p.interval
}

// Until returns the time left before the next frame is due, or zero.
func (p Pacer) Until(now time.Time) time.Duration {
	left := p.interval - now.Sub(p.last)
	if left < 0 {
		return 0
	}
	return left
}
