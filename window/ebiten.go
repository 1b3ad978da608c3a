//go:build ebiten

package window

import (
	"context"
	"errors"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ushitora-anqou/aqpix/config"
	"github.com/ushitora-anqou/aqpix/frame"
)

var errNoScreen = errors.New("window: no ebiten screen to present to")

// EbitenInitialize applies the window settings. Call it before RunGame.
func EbitenInitialize(cfg config.Config) {
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Title)
	// Ticks run twice per frame so that a tick landing just before the
	// frame deadline does not push the redraw back by a whole frame.
	ebiten.SetTPS(2 * int(math.Ceil(cfg.RefreshRate)))
	ebiten.SetWindowClosingHandled(true)
	// The buffer is only written on redraw; keep the last frame on screen.
	ebiten.SetScreenClearedEveryFrame(false)
}

// EbitenWindow adapts a Renderer to ebiten, which owns the event loop.
// Update maps to close requests and idle ticks, Draw to redraw events.
type EbitenWindow struct {
	ctx           context.Context
	r             *Renderer
	scene         Scene
	screen        *ebiten.Image
	redrawPending bool
	frameNo       uint64
	err           error
}

func NewEbitenWindow() *EbitenWindow {
	return &EbitenWindow{}
}

func (wind *EbitenWindow) Size() (int, int) {
	return ebiten.WindowSize()
}

func (wind *EbitenWindow) RequestRedraw() {
	wind.redrawPending = true
}

func (wind *EbitenWindow) Present(b *frame.Buffer) error {
	if wind.screen == nil {
		return errNoScreen
	}
	wind.screen.WritePixels(b.Bytes())
	return nil
}

// Run blocks until r reaches ExitRequested, ctx is done or ebiten fails.
func (wind *EbitenWindow) Run(ctx context.Context, r *Renderer, scene Scene) error {
	wind.ctx = ctx
	wind.r = r
	wind.scene = scene

	err := ebiten.RunGame(&ebitenGame{wind})
	if errors.Is(err, ebiten.Termination) {
		return wind.err
	}
	return err
}

type ebitenGame struct {
	wind *EbitenWindow
}

func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.wind.r.Width(), g.wind.r.Height()
}

func (g *ebitenGame) Update() error {
	wind := g.wind
	if wind.err != nil {
		return ebiten.Termination
	}
	if err := wind.ctx.Err(); err != nil {
		wind.err = err
		return ebiten.Termination
	}

	if ebiten.IsWindowBeingClosed() {
		wind.r.HandleEvent(NewEvent(CloseRequested, timeNow()))
	}
	if flow, _ := wind.r.HandleEvent(NewEvent(IdleTick, timeNow())); flow == ExitRequested {
		return ebiten.Termination
	}
	return nil
}

func (g *ebitenGame) Draw(screen *ebiten.Image) {
	wind := g.wind
	if !wind.redrawPending || wind.r.Flow() == ExitRequested {
		return
	}
	wind.redrawPending = false

	if wind.scene != nil {
		if err := wind.scene.Draw(wind.r, wind.frameNo); err != nil {
			wind.err = err
			return
		}
		wind.frameNo++
	}

	wind.screen = screen
	_, err := wind.r.HandleEvent(NewEvent(RedrawRequested, timeNow()))
	wind.screen = nil
	if err != nil {
		logger.Errorf("%v", err)
		wind.err = err
	}
}
