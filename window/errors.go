package window

import (
	"errors"
	"fmt"
)

var (
	ErrPresentation       = errors.New("window: presentation failed")
	ErrExitRequested      = errors.New("window: exit requested")
	ErrInvalidRefreshRate = errors.New("window: invalid refresh rate")
)

// PresentationError wraps the error returned by a Presenter. Once returned,
// the renderer is in ExitRequested.
type PresentationError struct {
	Err error
}

func (e *PresentationError) Error() string {
	return fmt.Sprintf("window: presentation failed: %v", e.Err)
}

func (e *PresentationError) Unwrap() error {
	return e.Err
}

func (e *PresentationError) Is(target error) bool {
	return target == ErrPresentation
}
