package shade

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/shade/internal/span"
)

// Common errors for image construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("shade: invalid dimensions")

	// ErrDataSize is returned when pixel data does not hold width*height colors.
	ErrDataSize = errors.New("shade: data size mismatch")
)

// Image is an owned, row-major buffer of packed colors.
//
// len(Pix()) == Width()*Height() at all times. Drawing methods clip silently;
// an Image is not safe for concurrent mutation.
type Image struct {
	width  int
	height int
	pix    []Color
	opts   imageOptions
}

// NewImage creates a fully transparent image.
// Returns ErrInvalidDimensions if width or height is non-positive.
func NewImage(width, height int, opts ...ImageOption) (*Image, error) {
	return NewImageColor(width, height, Transparent, opts...)
}

// NewImageColor creates an image with every pixel set to c.
func NewImageColor(width, height int, c Color, opts ...ImageOption) (*Image, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	img := &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
		opts:   applyOptions(opts),
	}
	if c != Transparent {
		img.Fill(c)
	}
	return img, nil
}

// NewImageFromData wraps existing pixel data without copying.
// The image takes ownership of data; len(data) must equal width*height.
func NewImageFromData(width, height int, data []Color, opts ...ImageOption) (*Image, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: %d colors for %dx%d", ErrDataSize, len(data), width, height)
	}
	return &Image{
		width:  width,
		height: height,
		pix:    data,
		opts:   applyOptions(opts),
	}, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Width returns the width of the image.
func (img *Image) Width() int {
	return img.width
}

// Height returns the height of the image.
func (img *Image) Height() int {
	return img.height
}

// Pix returns the pixel slice. Row y starts at index y*Width().
func (img *Image) Pix() []Color {
	return img.pix
}

// Row returns the pixels of row y, or nil if y is out of range.
func (img *Image) Row(y int) []Color {
	if y < 0 || y >= img.height {
		return nil
	}
	return img.pix[y*img.width : (y+1)*img.width]
}

// Get returns the pixel at (x, y), or Transparent if out of range.
func (img *Image) Get(x, y int) Color {
	if !img.inBounds(x, y) {
		return Transparent
	}
	return img.pix[y*img.width+x]
}

// Set overwrites the pixel at (x, y) without blending.
// Out-of-range coordinates are ignored.
func (img *Image) Set(x, y int, c Color) {
	if !img.inBounds(x, y) {
		return
	}
	img.pix[y*img.width+x] = c
}

// Fill overwrites every pixel with c.
func (img *Image) Fill(c Color) {
	span.Fill(img.pix, c)
}

// Clear makes every pixel fully transparent.
func (img *Image) Clear() {
	clear(img.pix)
}

// Clone returns a deep copy of the image with the same options.
func (img *Image) Clone() *Image {
	pix := make([]Color, len(img.pix))
	copy(pix, img.pix)
	return &Image{
		width:  img.width,
		height: img.height,
		pix:    pix,
		opts:   img.opts,
	}
}

func (img *Image) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// At implements the image.Image interface.
func (img *Image) At(x, y int) color.Color {
	return img.Get(x, y)
}

// RGBA64At implements the image.RGBA64Image interface.
func (img *Image) RGBA64At(x, y int) color.RGBA64 {
	r, g, b, a := img.Get(x, y).RGBA()
	return color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: uint16(a)}
}

// Bounds implements the image.Image interface.
func (img *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// ColorModel implements the image.Image interface.
func (img *Image) ColorModel() color.Model {
	return ColorModel
}
