package shade

// ImageOption configures an Image during creation.
//
// Example:
//
//	// Default: strict edges, fixed-point lines
//	img, err := shade.NewImage(800, 600)
//
//	// Antialiased lines, legacy border behavior
//	img, err := shade.NewImage(800, 600,
//	    shade.WithLineMode(shade.LineAntialiased),
//	    shade.WithEdgePolicy(shade.EdgeLegacy))
type ImageOption func(*imageOptions)

// imageOptions holds optional configuration for Image creation.
type imageOptions struct {
	edge     EdgePolicy
	lineMode LineMode
}

// defaultOptions returns the default image options.
func defaultOptions() imageOptions {
	return imageOptions{
		edge:     EdgeStrict,
		lineMode: LineFast,
	}
}

func applyOptions(opts []ImageOption) imageOptions {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithEdgePolicy sets the edge policy used by PixelOver and everything
// built on it.
func WithEdgePolicy(p EdgePolicy) ImageOption {
	return func(o *imageOptions) {
		o.edge = p
	}
}

// WithLineMode selects the rasterizer used by DrawLine and DrawPolyline.
func WithLineMode(m LineMode) ImageOption {
	return func(o *imageOptions) {
		o.lineMode = m
	}
}

// Options returns options that reproduce the configuration of img.
// Use it to create images that behave like an existing one.
func (img *Image) Options() []ImageOption {
	return []ImageOption{WithEdgePolicy(img.opts.edge), WithLineMode(img.opts.lineMode)}
}
