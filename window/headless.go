package window

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/ushitora-anqou/aqpix/config"
	"github.com/ushitora-anqou/aqpix/frame"
	xdraw "golang.org/x/image/draw"
)

// Headless is a back-end without a display. Every presented frame is scaled
// to the logical window size and written to a PNG file.
type Headless struct {
	width, height int
	dir           string
	maxFrames     int
	presented     int
	redrawPending bool
	sleep         func(time.Duration)
}

// NewHeadless writes frames into dir, creating it if needed. Once maxFrames
// frames are presented it emits CloseRequested; zero means no limit.
func NewHeadless(cfg config.Config, dir string, maxFrames int) (*Headless, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	logger.Debugf("headless back-end writing %dx%d frames to %s",
		cfg.Window.Width, cfg.Window.Height, dir)

	return &Headless{
		width:     cfg.Window.Width,
		height:    cfg.Window.Height,
		dir:       dir,
		maxFrames: maxFrames,
		sleep:     time.Sleep,
	}, nil
}

func (h *Headless) Size() (int, int) {
	return h.width, h.height
}

func (h *Headless) RequestRedraw() {
	h.redrawPending = true
}

func (h *Headless) Presented() int {
	return h.presented
}

// FramePath returns the file the n-th presented frame is written to.
func (h *Headless) FramePath(n int) string {
	return filepath.Join(h.dir, fmt.Sprintf("frame-%06d.png", n))
}

func (h *Headless) Present(b *frame.Buffer) error {
	src := b.Snapshot()
	dst := image.NewRGBA(image.Rect(0, 0, h.width, h.height))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	file, err := os.Create(h.FramePath(h.presented))
	if err != nil {
		return err
	}
	if err := png.Encode(file, dst); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	h.presented++
	return nil
}

func (h *Headless) PollEvents(timeout time.Duration) ([]Event, error) {
	now := timeNow()
	if h.maxFrames > 0 && h.presented >= h.maxFrames {
		return []Event{NewEvent(CloseRequested, now)}, nil
	}
	if h.redrawPending {
		h.redrawPending = false
		return []Event{NewEvent(RedrawRequested, now)}, nil
	}
	if timeout > 0 {
		h.sleep(timeout)
	}
	return nil, nil
}
