package systems

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/chestfx/internal/particle"
)

// DefaultFrameDurationMs is the time each frame of an animated texture is
// shown for: one frame per 60 Hz tick.
const DefaultFrameDurationMs = 1000.0 / 60.0

// TextureResolver maps a texture ID to an image. Returning nil skips drawing.
type TextureResolver func(id particle.TextureID) *ebiten.Image

// SpriteLayer is the ebiten-backed implementation of Drawable. It owns one
// Sprite per pool slot of every emitter that draws into it, and draws the
// attached ones in creation order.
type SpriteLayer struct {
	resolve TextureResolver
	sprites []*Sprite

	// FrameDurationMs controls animated texture playback.
	FrameDurationMs float64
	// Additive switches the layer to additive blending (glow look).
	Additive bool
}

// NewSpriteLayer creates a layer that resolves textures through resolve.
func NewSpriteLayer(resolve TextureResolver) *SpriteLayer {
	return &SpriteLayer{
		resolve:         resolve,
		FrameDurationMs: DefaultFrameDurationMs,
	}
}

// NewDrawable allocates a detached Sprite owned by the layer.
// Its signature matches DrawableFactory.
func (l *SpriteLayer) NewDrawable() Drawable {
	s := &Sprite{scale: 1}
	l.sprites = append(l.sprites, s)
	return s
}

// Sprites returns every sprite ever allocated, attached or not.
func (l *SpriteLayer) Sprites() []*Sprite {
	return l.sprites
}

// AttachedCount returns the number of visible sprites.
func (l *SpriteLayer) AttachedCount() int {
	n := 0
	for _, s := range l.sprites {
		if s.attached {
			n++
		}
	}
	return n
}

// Update advances animated textures by dt milliseconds.
func (l *SpriteLayer) Update(dt float64) {
	if l.FrameDurationMs <= 0 {
		return
	}
	for _, s := range l.sprites {
		if !s.attached || !s.animated || len(s.frames) < 2 {
			continue
		}
		s.frameElapsed += dt
		for s.frameElapsed >= l.FrameDurationMs {
			s.frameElapsed -= l.FrameDurationMs
			s.frameIndex = (s.frameIndex + 1) % len(s.frames)
		}
	}
}

// Draw renders every attached sprite centred on its position.
func (l *SpriteLayer) Draw(screen *ebiten.Image) {
	if l.resolve == nil {
		return
	}
	for _, s := range l.sprites {
		if !s.attached {
			continue
		}
		id, ok := s.CurrentFrame()
		if !ok {
			continue
		}
		img := l.resolve(id)
		if img == nil {
			continue
		}

		bounds := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		// 锚点居中 (anchor 0.5)
		op.GeoM.Translate(-float64(bounds.Dx())/2, -float64(bounds.Dy())/2)
		op.GeoM.Scale(s.scale, s.scale)
		op.GeoM.Rotate(s.rotation)
		op.GeoM.Translate(s.x, s.y)
		if l.Additive {
			op.Blend = ebiten.BlendLighter
		}
		screen.DrawImage(img, op)
	}
}

// Sprite is one drawable particle in a SpriteLayer.
type Sprite struct {
	attached bool

	frames       []particle.TextureID
	animated     bool
	frameIndex   int
	frameElapsed float64

	x, y     float64
	rotation float64
	scale    float64
}

// Attach implements Drawable.
func (s *Sprite) Attach() {
	s.attached = true
}

// Detach implements Drawable.
func (s *Sprite) Detach() {
	s.attached = false
}

// SetTexture implements Drawable. Animated sprites restart from frame 0.
func (s *Sprite) SetTexture(frames []particle.TextureID, animated bool) {
	s.frames = frames
	s.animated = animated
	s.frameIndex = 0
	s.frameElapsed = 0
}

// SetTransform implements Drawable.
func (s *Sprite) SetTransform(x, y, rotation, scale float64) {
	s.x, s.y = x, y
	s.rotation = rotation
	s.scale = scale
}

// Attached reports whether the sprite is visible.
func (s *Sprite) Attached() bool {
	return s.attached
}

// CurrentFrame returns the texture currently shown.
func (s *Sprite) CurrentFrame() (particle.TextureID, bool) {
	if len(s.frames) == 0 {
		return "", false
	}
	return s.frames[s.frameIndex%len(s.frames)], true
}

// Transform returns the last pushed transform.
func (s *Sprite) Transform() (x, y, rotation, scale float64) {
	return s.x, s.y, s.rotation, s.scale
}
