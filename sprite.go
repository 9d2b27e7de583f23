package shade

import "fmt"

// Layer orders sprites in a scene. Lower layers are drawn first.
type Layer int

const (
	LayerBase Layer = iota
	LayerBackground
	LayerWave
	LayerGUI
	LayerLast
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerBase:
		return "Base"
	case LayerBackground:
		return "Background"
	case LayerWave:
		return "Wave"
	case LayerGUI:
		return "GUI"
	case LayerLast:
		return "Last"
	default:
		return unknownMode
	}
}

// Sprite is a positioned, independently regenerable image.
//
// The sprite owns its image. When marked dirty, Regenerate asks Content for
// new pixels at the sprite's size. Children are owned by the sprite and are
// regenerated with it, but drawing a sprite draws only its own image.
type Sprite struct {
	Position Vector2
	Layer    Layer
	Content  Content
	Children []*Sprite

	image  *Image
	width  int
	height int
	opts   []ImageOption
	dirty  bool
}

// NewSprite creates a dirty sprite of the given size. Its image is produced
// by the first Regenerate.
func NewSprite(layer Layer, width, height int, content Content, opts ...ImageOption) (*Sprite, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Sprite{
		Layer:   layer,
		Content: content,
		width:   width,
		height:  height,
		opts:    opts,
		dirty:   true,
	}, nil
}

// Image returns the current image, or nil before the first Regenerate.
func (s *Sprite) Image() *Image {
	return s.image
}

// Size returns the size the next Regenerate renders at.
func (s *Sprite) Size() (width, height int) {
	return s.width, s.height
}

// Dirty reports whether the content must be regenerated.
func (s *Sprite) Dirty() bool {
	return s.dirty
}

// MarkDirty flags the sprite for regeneration.
func (s *Sprite) MarkDirty() {
	s.dirty = true
}

// Resize changes the sprite size and marks it dirty when the size changed.
func (s *Sprite) Resize(width, height int) error {
	if err := checkDimensions(width, height); err != nil {
		return err
	}
	if width != s.width || height != s.height {
		s.width, s.height = width, height
		s.dirty = true
	}
	return nil
}

// Add appends a child sprite.
func (s *Sprite) Add(child *Sprite) {
	s.Children = append(s.Children, child)
}

// Regenerate re-renders the image if the sprite is dirty and clears the
// flag. On error the previous image and the dirty flag are kept.
func (s *Sprite) Regenerate() error {
	if !s.dirty {
		return nil
	}
	if s.Content == nil {
		return fmt.Errorf("shade: %s sprite has no content", s.Layer)
	}
	img, err := s.Content.Render(s.width, s.height, s.opts...)
	if err != nil {
		return fmt.Errorf("regenerate %s sprite: %w", s.Layer, err)
	}
	Logger().Debug("sprite regenerated", "layer", s.Layer, "width", s.width, "height", s.height)
	s.image = img
	s.dirty = false
	return nil
}

// RegenerateAll regenerates the sprite and then its children, depth first.
// It stops at the first error.
func (s *Sprite) RegenerateAll() error {
	if err := s.Regenerate(); err != nil {
		return err
	}
	for _, c := range s.Children {
		if err := c.RegenerateAll(); err != nil {
			return err
		}
	}
	return nil
}

// DrawTo composites the sprite's own image onto dst at its position.
func (s *Sprite) DrawTo(dst *Image) {
	if s.image == nil {
		return
	}
	dst.DrawBitmapV(s.image, s.Position)
}
