package shade

import (
	"image"
	"image/png"
	"os"

	"golang.org/x/image/draw"
)

// Scaler selects the resampling filter used by Scale.
type Scaler int

const (
	// ScaleNearest picks the nearest source pixel. Fast, blocky.
	ScaleNearest Scaler = iota
	// ScaleApproxBiLinear is a fast bilinear approximation.
	ScaleApproxBiLinear
	// ScaleBiLinear is exact bilinear filtering.
	ScaleBiLinear
	// ScaleCatmullRom is the slowest and sharpest filter.
	ScaleCatmullRom
)

// String returns the scaler name.
func (s Scaler) String() string {
	switch s {
	case ScaleNearest:
		return "Nearest"
	case ScaleApproxBiLinear:
		return "ApproxBiLinear"
	case ScaleBiLinear:
		return "BiLinear"
	case ScaleCatmullRom:
		return "CatmullRom"
	default:
		return unknownMode
	}
}

func (s Scaler) interpolator() draw.Interpolator {
	switch s {
	case ScaleApproxBiLinear:
		return draw.ApproxBiLinear
	case ScaleBiLinear:
		return draw.BiLinear
	case ScaleCatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// FromImage copies any image.Image into a new Image.
func FromImage(src image.Image, opts ...ImageOption) (*Image, error) {
	b := src.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), src, b.Min, draw.Src)
	return fromNRGBA(nrgba, opts...)
}

// Scale resamples src to width x height with the given filter.
func Scale(src image.Image, width, height int, s Scaler, opts ...ImageOption) (*Image, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	r := image.Rect(0, 0, width, height)

	// The nearest-neighbor scalers only draw into an *image.NRGBA from
	// image.RGBA64Image sources. Anything else goes through *image.RGBA.
	if _, ok := src.(image.RGBA64Image); !ok {
		dst := image.NewRGBA(r)
		s.interpolator().Scale(dst, r, src, src.Bounds(), draw.Src, nil)
		return FromImage(dst, opts...)
	}
	dst := image.NewNRGBA(r)
	s.interpolator().Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	return fromNRGBA(dst, opts...)
}

func fromNRGBA(src *image.NRGBA, opts ...ImageOption) (*Image, error) {
	w, h := src.Rect.Dx(), src.Rect.Dy()
	pix := make([]Color, w*h)
	for y := range h {
		row := src.Pix[y*src.Stride : y*src.Stride+w*4]
		for x := range w {
			p := row[x*4 : x*4+4 : x*4+4]
			pix[y*w+x] = Pack(p[0], p[1], p[2], p[3])
		}
	}
	return NewImageFromData(w, h, pix, opts...)
}

// AppendRGBA appends the image as alpha-premultiplied RGBA bytes, the layout
// of image.RGBA.Pix and of most presentation surfaces.
func (img *Image) AppendRGBA(dst []byte) []byte {
	for _, c := range img.pix {
		r, g, b, a := c.Unpack()
		if a != 255 {
			r = premul(r, a)
			g = premul(g, a)
			b = premul(b, a)
		}
		dst = append(dst, r, g, b, a)
	}
	return dst
}

func premul(c, a uint8) uint8 {
	return uint8((uint32(c)*uint32(a) + 127) / 255)
}

// ToRGBA converts the image to an *image.RGBA.
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(img.Bounds())
	out.Pix = img.AppendRGBA(out.Pix[:0])
	return out
}

// SavePNG writes the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img.ToRGBA()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
