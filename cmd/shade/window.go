package main

import (
	"errors"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/shade/internal/demo"
)

const (
	scrollStep = 64
	statsEvery = 5 * time.Second
)

// WindowCmd opens the interactive window.
type WindowCmd struct {
	SceneParams
}

// Run implements the window subcommand. It blocks until the window closes.
func (c *WindowCmd) Run() error {
	app, err := c.newApp()
	if err != nil {
		return err
	}

	g := &game{app: app, last: time.Now(), lastStats: time.Now()}
	ebiten.SetWindowTitle("Shade")
	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	slog.Info("window closed", "stats", app.Stats().String())
	return nil
}

// game presents the scene through ebiten.
type game struct {
	app *demo.App

	screen *ebiten.Image
	pix    []byte

	last      time.Time
	lastStats time.Time
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	x, y := ebiten.CursorPosition()
	in := demo.Input{
		MouseX:       x,
		MouseY:       y,
		MouseDown:    ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MousePressed: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowLeft):
		in.Scroll = -scrollStep
	case ebiten.IsKeyPressed(ebiten.KeyArrowRight):
		in.Scroll = scrollStep
	}
	_, wheel := ebiten.Wheel()
	in.Scroll += int(wheel * scrollStep)

	now := time.Now()
	dt := now.Sub(g.last)
	g.last = now
	if err := g.app.Update(dt, in); err != nil {
		return err
	}

	if now.Sub(g.lastStats) >= statsEvery {
		g.lastStats = now
		slog.Debug("frame stats", "stats", g.app.Stats().String())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	frame := g.app.Render()
	w, h := frame.Width(), frame.Height()
	if g.screen == nil || g.screen.Bounds().Dx() != w || g.screen.Bounds().Dy() != h {
		if g.screen != nil {
			g.screen.Deallocate()
		}
		g.screen = ebiten.NewImage(w, h)
	}
	g.pix = frame.AppendRGBA(g.pix[:0])
	g.screen.WritePixels(g.pix)
	screen.DrawImage(g.screen, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if err := g.app.Resize(outsideWidth, outsideHeight); err != nil {
		slog.Error("could not resize scene", "width", outsideWidth, "height", outsideHeight, "error", err)
		return g.app.Frame().Width(), g.app.Frame().Height()
	}
	return outsideWidth, outsideHeight
}
