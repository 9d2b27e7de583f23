// Package shade is a small real-time 2D software renderer.
//
// # Overview
//
// shade draws into an owned buffer of packed ARGB colors ([Image]). It
// provides the primitives a frame loop needs: bulk fill, alpha compositing
// of single pixels, clipped rectangles, fixed-point and antialiased lines,
// sprite blitting, linear gradients, Catmull-Rom smoothing and waveform
// traces.
//
// # Quick Start
//
//	import "github.com/gogpu/shade"
//
//	img, err := shade.NewImageColor(640, 480, shade.Hex(0xFF161616))
//	if err != nil {
//	    return err
//	}
//	img.DrawRect(10, 10, 100, 40, shade.Hex(0xFFA08563))
//	img.DrawLine(shade.V2(0, 0), shade.V2(639, 479), shade.Red)
//
// # Compositing
//
// Every translucent write goes through one law, see [Image.PixelOver].
// Alpha 0 never writes and alpha 255 always copies, so opaque sprites and
// rectangles take bulk paths.
//
// # Clipping
//
// Drawing never fails. Coordinates outside the image are clipped or
// dropped; only constructors return errors.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Concurrency
//
// An Image is owned by one goroutine at a time. Drawing calls run to
// completion and allocate nothing except where they return a new Image.
package shade
