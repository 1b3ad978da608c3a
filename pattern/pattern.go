// Package pattern provides test-pattern scenes drawn with the frame
// primitives only.
package pattern

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ushitora-anqou/aqpix/color"
	"github.com/ushitora-anqou/aqpix/frame"
	"github.com/ushitora-anqou/aqpix/window"
)

var ErrUnknownPattern = errors.New("pattern: unknown pattern")

// Solid fills every frame with one color.
type Solid struct {
	Color color.Color
}

func (s Solid) Draw(c frame.Canvas, frameNo uint64) error {
	return c.Fill(s.Color)
}

// Grid draws horizontal and vertical lines every Spacing pixels.
type Grid struct {
	Spacing    int
	Line       color.Color
	Background color.Color
}

func (g Grid) Draw(c frame.Canvas, frameNo uint64) error {
	if g.Spacing <= 0 {
		return fmt.Errorf("pattern: invalid grid spacing %d", g.Spacing)
	}
	if err := c.Fill(g.Background); err != nil {
		return err
	}
	for y := 0; y < c.Height(); y += g.Spacing {
		if err := c.DrawHLine(y, g.Line); err != nil {
			return err
		}
	}
	for x := 0; x < c.Width(); x += g.Spacing {
		if err := c.DrawVLine(x, g.Line); err != nil {
			return err
		}
	}
	return nil
}

// Bars splits the canvas into vertical bars of Colors. The last bar takes
// the remainder when the width does not divide evenly.
type Bars struct {
	Colors []color.Color
}

func (b Bars) Draw(c frame.Canvas, frameNo uint64) error {
	n := len(b.Colors)
	if n == 0 {
		return c.Clear()
	}
	width := c.Width() / n
	if width == 0 {
		width = 1
	}
	for i, col := range b.Colors {
		x := i * width
		if x >= c.Width() {
			break
		}
		w := width
		if i == n-1 || x+w > c.Width() {
			w = c.Width() - x
		}
		if err := c.DrawRect(x, 0, w, c.Height(), col); err != nil {
			return err
		}
	}
	return nil
}

// Bounce moves a square one pixel per frame, reflecting off the edges.
type Bounce struct {
	Size       int
	Color      color.Color
	Background color.Color
}

// Position returns the top-left corner of the square at frameNo on a canvas
// of the given size.
func (b Bounce) Position(width, height int, frameNo uint64) (int, int) {
	return reflect(frameNo, width-b.Size), reflect(frameNo, height-b.Size)
}

// reflect walks 0..limit and back.
func reflect(step uint64, limit int) int {
	if limit <= 0 {
		return 0
	}
	period := uint64(2 * limit)
	p := int(step % period)
	if p > limit {
		return 2*limit - p
	}
	return p
}

func (b Bounce) Draw(c frame.Canvas, frameNo uint64) error {
	if b.Size <= 0 {
		return fmt.Errorf("pattern: invalid bounce size %d", b.Size)
	}
	if err := c.Fill(b.Background); err != nil {
		return err
	}
	size := b.Size
	if size > c.Width() {
		size = c.Width()
	}
	if size > c.Height() {
		size = c.Height()
	}
	x, y := Bounce{Size: size}.Position(c.Width(), c.Height(), frameNo)
	return c.DrawRect(x, y, size, size, b.Color)
}

var scenes = map[string]func(bg color.Color) window.Scene{
	"solid": func(bg color.Color) window.Scene {
		return Solid{Color: bg}
	},
	"grid": func(bg color.Color) window.Scene {
		return Grid{Spacing: 16, Line: color.Green, Background: bg}
	},
	"bars": func(bg color.Color) window.Scene {
		return Bars{Colors: []color.Color{color.White, color.Red, color.Green, color.Blue, bg}}
	},
	"bounce": func(bg color.Color) window.Scene {
		return Bounce{Size: 16, Color: color.Red, Background: bg}
	},
}

// Lookup returns the named scene drawn over bg.
func Lookup(name string, bg color.Color) (window.Scene, error) {
	ctor, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return ctor(bg), nil
}

func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
