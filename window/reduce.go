package window

type ControlFlow int

const (
	Running ControlFlow = iota
	// ExitRequested is terminal.
	ExitRequested
)

func (f ControlFlow) String() string {
	if f == ExitRequested {
		return "ExitRequested"
	}
	return "Running"
}

// Action is the side effect a reduction step asks its interpreter to perform.
type Action int

const (
	ActionNone Action = iota
	ActionRequestRedraw
	ActionPresent
)

func (a Action) String() string {
	switch a {
	case ActionRequestRedraw:
		return "RequestRedraw"
	case ActionPresent:
		return "Present"
	}
	return "None"
}

type State struct {
	Flow  ControlFlow
	Pacer Pacer
}

// Reduce computes the state following ev. It has no side effects; the
// returned Action tells the caller what to do with the window.
func Reduce(st State, ev Event) (State, Action) {
	if st.Flow == ExitRequested {
		return st, ActionNone
	}

	switch ev.Kind {
	case IdleTick:
		if st.Pacer.Due(ev.Time) {
			st.Pacer.last = ev.Time
			return st, ActionRequestRedraw
		}
	case RedrawRequested:
		return st, ActionPresent
	case CloseRequested:
		st.Flow = ExitRequested
	}
	return st, ActionNone
}
