// Package demo implements the interactive waveform scene shown by cmd/shade.
//
// The scene is independent of any windowing system: the host feeds it input
// and elapsed time through Update and presents the image returned by Render.
package demo

import (
	"fmt"
	"image"
	"slices"
	"time"

	"github.com/gogpu/shade"
)

// Scene colors.
var (
	colorFill      = shade.Hex(0xFF161616)
	colorBand      = shade.Hex(0xFF333333)
	colorBlock     = shade.Hex(0xFFA08563)
	colorSelection = shade.Hex(0x80A08563)
	colorCursor    = shade.Hex(0xFF880000)
	colorWave      = shade.Hex(0xFFE8E0D0)
	colorBackTop   = shade.Hex(0xFF202020)
	colorBackEnd   = shade.Hex(0xFF050505)
)

const (
	// Block speeds in pixels per second.
	slowSpeed = 10
	fastSpeed = 50

	defaultWindow = 2048
)

// Config describes the scene.
type Config struct {
	Width, Height int

	// Wave is the waveform shown in the band. Nil shows an empty band.
	Wave *shade.Waveform

	// Window is the number of samples visible at once.
	Window int

	// Logo is drawn in the top-left corner when set.
	Logo image.Image

	Smooth  bool
	Options []shade.ImageOption
}

// Input is the host input state for one frame.
type Input struct {
	MouseX, MouseY int

	// MouseDown reports whether the primary button is held.
	MouseDown bool

	// MousePressed reports whether the primary button went down this frame.
	MousePressed bool

	// Scroll moves the waveform window by this many samples.
	Scroll int
}

// App is the scene state.
type App struct {
	cfg   Config
	frame *shade.Image

	sprites    []*shade.Sprite
	background *shade.Sprite
	waveSprite *shade.Sprite
	wave       *shade.WaveformContent

	pos1, pos2 float64
	input      Input
	selStart   int
	stats      Stats
}

// New creates the scene at the configured size.
func New(cfg Config) (*App, error) {
	if cfg.Window <= 0 {
		cfg.Window = defaultWindow
	}
	a := &App{cfg: cfg}

	frame, err := shade.NewImage(cfg.Width, cfg.Height, cfg.Options...)
	if err != nil {
		return nil, err
	}
	a.frame = frame

	band := bandHeight(cfg.Height)
	a.background, err = shade.NewSprite(shade.LayerBackground, cfg.Width, max(1, cfg.Height-band),
		shade.GradientContent{Start: colorBackTop, End: colorBackEnd, Axis: shade.GradientHorizontal},
		cfg.Options...)
	if err != nil {
		return nil, err
	}
	a.background.Position = shade.V2(0, float64(band))
	a.sprites = append(a.sprites, a.background)

	if cfg.Wave != nil {
		a.wave = &shade.WaveformContent{
			Wave:   cfg.Wave,
			Range:  min(cfg.Window, cfg.Wave.SampleCount()),
			Color:  colorWave,
			Smooth: cfg.Smooth,
		}
		a.waveSprite, err = shade.NewSprite(shade.LayerWave, cfg.Width, max(1, band/2), a.wave, cfg.Options...)
		if err != nil {
			return nil, err
		}
		a.waveSprite.Position = shade.V2(0, float64(band/4))
		a.sprites = append(a.sprites, a.waveSprite)
	}

	if cfg.Logo != nil {
		b := cfg.Logo.Bounds()
		logo, err := shade.NewSprite(shade.LayerGUI, b.Dx(), b.Dy(), shade.BitmapContent{Source: cfg.Logo}, cfg.Options...)
		if err != nil {
			return nil, fmt.Errorf("logo: %w", err)
		}
		a.sprites = append(a.sprites, logo)
	}

	slices.SortStableFunc(a.sprites, func(x, y *shade.Sprite) int {
		return int(x.Layer) - int(y.Layer)
	})
	return a, nil
}

// bandHeight is the height of the top band holding the waveform.
func bandHeight(height int) int {
	return height * 7 / 12
}

// Frame returns the image the last Render produced.
func (a *App) Frame() *shade.Image {
	return a.frame
}

// Stats returns the frame statistics.
func (a *App) Stats() *Stats {
	return &a.stats
}

// Resize changes the output size. Sprites are resized and regenerated on the
// next Update.
func (a *App) Resize(width, height int) error {
	if width == a.frame.Width() && height == a.frame.Height() {
		return nil
	}
	frame, err := shade.NewImage(width, height, a.cfg.Options...)
	if err != nil {
		return err
	}
	band := bandHeight(height)
	if err := a.background.Resize(width, max(1, height-band)); err != nil {
		return err
	}
	a.background.Position = shade.V2(0, float64(band))
	if a.waveSprite != nil {
		if err := a.waveSprite.Resize(width, max(1, band/2)); err != nil {
			return err
		}
		a.waveSprite.Position = shade.V2(0, float64(band/4))
	}
	a.frame = frame
	a.cfg.Width, a.cfg.Height = width, height
	shade.Logger().Debug("scene resized", "width", width, "height", height)
	return nil
}

// Update advances the scene by dt and applies the input. Dirty sprites are
// regenerated here so that Render cannot fail.
func (a *App) Update(dt time.Duration, in Input) error {
	a.stats.Add(dt)

	w := float64(a.frame.Width())
	a.pos1 += slowSpeed * dt.Seconds()
	a.pos2 += fastSpeed * dt.Seconds()
	if a.pos1 > w {
		a.pos1 = 0
	}
	if a.pos2 > w {
		a.pos2 = 0
	}

	if in.MousePressed {
		a.selStart = in.MouseX
	}
	a.input = in

	if in.Scroll != 0 && a.wave != nil && a.wave.Scroll(in.Scroll) {
		a.waveSprite.MarkDirty()
	}

	for _, s := range a.sprites {
		if err := s.RegenerateAll(); err != nil {
			return err
		}
	}
	return nil
}

// Render draws the scene and returns the frame.
func (a *App) Render() *shade.Image {
	img := a.frame
	w, h := img.Width(), img.Height()
	band := bandHeight(h)

	img.Fill(colorFill)
	img.DrawRect(0, 0, w, band, colorBand)

	gui := len(a.sprites)
	for i, s := range a.sprites {
		if s.Layer >= shade.LayerGUI {
			gui = i
			break
		}
		s.DrawTo(img)
	}

	img.DrawRect(int(a.pos1), 0, 20, 100, colorBlock)
	img.DrawRect(int(a.pos2), band*5/7, 100, 100, colorBlock)

	for _, s := range a.sprites[gui:] {
		s.DrawTo(img)
	}

	a.drawCursor(band)
	return img
}

func (a *App) drawCursor(band int) {
	img := a.frame
	in := a.input
	if in.MouseY > band {
		return
	}
	if in.MouseDown {
		lo, hi := min(a.selStart, in.MouseX), max(a.selStart, in.MouseX)
		img.DrawRect(lo, 0, hi-lo, band, colorSelection)
		img.DrawLine(shade.V2(float64(a.selStart), 0), shade.V2(float64(a.selStart), float64(band)), colorCursor)
	}
	img.DrawLine(shade.V2(float64(in.MouseX), 0), shade.V2(float64(in.MouseX), float64(band)), colorCursor)
}
