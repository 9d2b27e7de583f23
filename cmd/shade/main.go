// Command shade shows an audio waveform in a software-rendered window.
//
// Usage:
//
//	shade [window] [--audio=FILE] [--logo=FILE] [--aa] [--smooth]
//	shade render --frames=60 --output=frame.png
package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"

	"github.com/gogpu/shade"
	"github.com/gogpu/shade/internal/demo"
	"github.com/gogpu/shade/waveform"
)

// SceneParams configures the scene shared by all subcommands.
type SceneParams struct {
	Width  int `help:"Frame width in pixels" default:"1280"`
	Height int `help:"Frame height in pixels" default:"720"`

	Audio     string  `help:"WAV or MP3 file to display" type:"existingfile"`
	Synth     string  `help:"Synthesized signal when no audio file is given" enum:"sine,osc,noise" default:"osc"`
	Frequency float64 `help:"Synthesized signal frequency in Hz" default:"220"`
	Samples   int     `help:"Number of synthesized samples" default:"96000"`
	Rate      float64 `help:"Synthesized sample rate in Hz" default:"48000"`
	Window    int     `help:"Samples visible at once" default:"2048"`

	Logo        string `help:"Image drawn in the top-left corner" type:"existingfile"`
	AA          bool   `name:"aa" help:"Use antialiased lines"`
	Smooth      bool   `help:"Smooth the waveform with a Catmull-Rom spline"`
	LegacyEdges bool   `name:"legacy-edges" help:"Never blend into row 0 or column 0"`
}

// CLI is the command line.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Window WindowCmd `cmd:"" default:"withargs" help:"Open an interactive window"`
	Render RenderCmd `cmd:"" help:"Render frames without a window and save the last one as PNG"`
}

// RenderCmd renders headless frames.
type RenderCmd struct {
	SceneParams

	Frames int    `help:"Number of frames to simulate" default:"60"`
	Output string `help:"Output PNG file" default:"shade.png" type:"path"`
}

// Run implements the render subcommand.
func (c *RenderCmd) Run() error {
	app, err := c.newApp()
	if err != nil {
		return err
	}
	dt := time.Second / 60
	for range c.Frames {
		if err := app.Update(dt, demo.Input{MouseY: c.Height}); err != nil {
			return err
		}
		app.Render()
	}
	if err := app.Frame().SavePNG(c.Output); err != nil {
		return fmt.Errorf("could not save frame %q: %w", c.Output, err)
	}
	slog.Info("frame saved", "file", c.Output, "stats", app.Stats().String())
	return nil
}

func (p *SceneParams) newApp() (*demo.App, error) {
	wave, err := p.loadWave()
	if err != nil {
		return nil, err
	}

	var logo image.Image
	if p.Logo != "" {
		if logo, err = loadImage(p.Logo); err != nil {
			return nil, err
		}
	}

	var opts []shade.ImageOption
	if p.AA {
		opts = append(opts, shade.WithLineMode(shade.LineAntialiased))
	}
	if p.LegacyEdges {
		opts = append(opts, shade.WithEdgePolicy(shade.EdgeLegacy))
	}

	return demo.New(demo.Config{
		Width:   p.Width,
		Height:  p.Height,
		Wave:    wave,
		Window:  p.Window,
		Logo:    logo,
		Smooth:  p.Smooth,
		Options: opts,
	})
}

func (p *SceneParams) loadWave() (*shade.Waveform, error) {
	if p.Audio != "" {
		return waveform.Load(p.Audio)
	}
	switch p.Synth {
	case "sine":
		return waveform.Sine(p.Frequency, p.Samples, p.Rate), nil
	case "noise":
		return waveform.Noise(p.Samples, p.Rate, nil), nil
	default:
		return waveform.Osc(p.Frequency, p.Samples, p.Rate), nil
	}
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "file", path, "error", closeErr)
		}
	}()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not read image %q: %w", path, err)
	}
	slog.Debug("image loaded", "file", path, "format", format, "size", img.Bounds().Size())
	return img, nil
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("shade"),
		kong.Description("Software-rendered audio waveform viewer."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	shade.SetLogger(logger)

	kctx.FatalIfErrorf(kctx.Run())
}
