package window

import (
	"fmt"
	"time"
)

type EventKind int

const (
	// Other is any platform event the renderer does not react to.
	Other EventKind = iota
	// IdleTick is emitted once all pending events of an iteration are drained.
	IdleTick
	RedrawRequested
	CloseRequested
)

func (k EventKind) String() string {
	switch k {
	case IdleTick:
		return "IdleTick"
	case RedrawRequested:
		return "RedrawRequested"
	case CloseRequested:
		return "CloseRequested"
	case Other:
		return "Other"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

type Event struct {
	Kind EventKind
	Time time.Time
}

func NewEvent(kind EventKind, t time.Time) Event {
	return Event{Kind: kind, Time: t}
}
