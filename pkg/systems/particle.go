package systems

import (
	"math"

	"github.com/gonewx/chestfx/internal/particle"
	"github.com/gonewx/chestfx/pkg/components"
	"github.com/gonewx/chestfx/pkg/utils"
)

// Drawable is the visual side of one pooled particle. The simulation only
// pushes state into it; it never reads anything back.
type Drawable interface {
	// Attach makes the drawable visible in its layer.
	Attach()
	// Detach hides the drawable without destroying it.
	Detach()
	// SetTexture selects a fixed texture (one frame) or an animated frame set.
	SetTexture(frames []particle.TextureID, animated bool)
	// SetTransform positions the drawable. rotation is in radians.
	SetTransform(x, y, rotation, scale float64)
}

// DrawableFactory allocates the drawable of a new pool slot.
type DrawableFactory func() Drawable

type nopDrawable struct{}

func (nopDrawable) Attach() {}
func (nopDrawable) Detach() {}
func (nopDrawable) SetTexture([]particle.TextureID, bool) {}
func (nopDrawable) SetTransform(float64, float64, float64, float64) {}

// Particle is one pool slot: its simulation state plus its drawable.
// It is created once and recycled through Reset.
type Particle struct {
	components.ParticleComponent

	drawable Drawable
}

func newParticle(d Drawable) *Particle {
	if d == nil {
		d = nopDrawable{}
	}
	return &Particle{drawable: d}
}

// Drawable returns the drawable bound to this slot.
func (p *Particle) Drawable() Drawable {
	return p.drawable
}

// Reset reinitializes every field from spawn, marks the particle alive and
// pushes texture and transform to the drawable.
func (p *Particle) Reset(spawn components.ParticleComponent) {
	p.ParticleComponent = spawn
	p.LifeElapsed = 0
	p.Alive = true

	p.drawable.Attach()
	p.drawable.SetTexture(p.Frames, p.Animated)
	p.pushTransform()
}

// Kill marks the particle dead and detaches its drawable. Idempotent.
func (p *Particle) Kill() {
	if !p.Alive {
		return
	}
	p.Alive = false
	p.drawable.Detach()
}

// Update advances the particle by dt milliseconds.
//
// A particle whose elapsed life reaches its budget is killed during this
// call, but the rest of the frame (motion, scale, rotation) is still applied.
func (p *Particle) Update(dt float64) {
	if !p.Alive {
		return
	}

	// 1. 生命周期
	p.LifeElapsed += dt
	if p.LifeElapsed >= p.Life {
		p.Kill()
	}

	// 2. 速度曲线
	p.updateVelocity()

	// 3. 位置
	p.X += p.DirX*p.Speed*dt + p.GravityX*p.GravityFactor*dt
	p.Y += p.DirY*p.Speed*dt + p.GravityY*p.GravityFactor*dt

	// 4. 缩放
	if len(p.ScaleOverLife) > 0 {
		p.ScaleFactor = utils.InterpolateCurve(p.LifeElapsed, 0, p.Life, p.ScaleOverLife)
	}

	// 5. 旋转 (per frame, not scaled by dt)
	p.Rotation += p.RotationSpeed

	p.pushTransform()
}

func (p *Particle) updateVelocity() {
	if len(p.SpiralSpeed) > 0 {
		delta := utils.InterpolateCurve(p.LifeElapsed, 0, p.Life, p.SpiralSpeed)
		ang := math.Atan2(p.DirY, p.DirX) + delta
		p.DirX = math.Cos(ang)
		p.DirY = math.Sin(ang)
	}
	if len(p.SpeedOverLife) > 0 {
		p.Speed = utils.InterpolateCurve(p.LifeElapsed, 0, p.Life, p.SpeedOverLife)
	}
}

func (p *Particle) pushTransform() {
	p.drawable.SetTransform(p.X, p.Y, p.Rotation, p.ScaleFactor)
}

func unitVector(angle float64) (float64, float64) {
	return math.Cos(angle), math.Sin(angle)
}
