package particle

import "log"

// EmitterOverrides is a partial EmitterConfig. A nil field keeps the value
// it is merged onto; a non-nil field replaces it. Curves and texture lists
// are pointers to slices so that an explicit empty list clears the curve.
type EmitterOverrides struct {
	StartPosition *Vec2    `yaml:"startPosition"`
	BirthRate     *float64 `yaml:"birthrate"`
	Duration      *float64 `yaml:"duration"`
	Amount        *int     `yaml:"amount"`
	Width         *float64 `yaml:"width"`
	Height        *float64 `yaml:"height"`
	Life          *float64 `yaml:"life"`
	LifeRandom    *float64 `yaml:"lifeRandom"`

	// Texture is shorthand for a single-entry Textures list.
	Texture         *TextureID   `yaml:"texture"`
	Textures        *[]TextureID `yaml:"textures"`
	AnimatedTexture *bool        `yaml:"animatedTexture"`

	Behavior *BehaviorOverrides `yaml:"behavior"`
	Force    *ForceOverrides    `yaml:"force"`
}

// BehaviorOverrides is the partial form of Behavior.
type BehaviorOverrides struct {
	Velocity *VelocityOverrides `yaml:"velocity"`
	Scale    *ScaleOverrides    `yaml:"scale"`
	Rotation *RotationOverrides `yaml:"rotation"`
}

// VelocityOverrides is the partial form of VelocityBehavior.
type VelocityOverrides struct {
	Angle         *float64   `yaml:"angle"`
	Random        *float64   `yaml:"random"`
	Spread        *float64   `yaml:"spread"`
	Speed         *float64   `yaml:"speed"`
	SpeedOverLife *[]float64 `yaml:"speedOverLife"`
	SpiralSpeed   *[]float64 `yaml:"spiralSpeed"`
}

// ScaleOverrides is the partial form of ScaleBehavior.
type ScaleOverrides struct {
	Start         *float64   `yaml:"start"`
	Random        *float64   `yaml:"random"`
	ScaleOverLife *[]float64 `yaml:"scaleOverLife"`
}

// RotationOverrides is the partial form of RotationBehavior.
type RotationOverrides struct {
	Start         *float64   `yaml:"start"`
	Random        *float64   `yaml:"random"`
	Speed         *float64   `yaml:"speed"`
	SpeedOverLife *[]float64 `yaml:"speedOverLife"`
}

// ForceOverrides is the partial form of Force.
type ForceOverrides struct {
	Gravity *GravityOverrides `yaml:"gravity"`
}

// GravityOverrides is the partial form of Gravity.
type GravityOverrides struct {
	Vector *Vec2    `yaml:"vector"`
	Factor *float64 `yaml:"factor"`
}

// Ptr returns a pointer to v. Handy for building overrides in code.
func Ptr[T any](v T) *T {
	return &v
}

// Clone returns a deep copy of c. The copy shares no slices with c.
func (c EmitterConfig) Clone() EmitterConfig {
	out := c
	out.Textures = cloneSlice(c.Textures)
	out.Behavior.Velocity.SpeedOverLife = cloneSlice(c.Behavior.Velocity.SpeedOverLife)
	out.Behavior.Velocity.SpiralSpeed = cloneSlice(c.Behavior.Velocity.SpiralSpeed)
	out.Behavior.Scale.ScaleOverLife = cloneSlice(c.Behavior.Scale.ScaleOverLife)
	out.Behavior.Rotation.SpeedOverLife = cloneSlice(c.Behavior.Rotation.SpeedOverLife)
	return out
}

// Merge returns a deep copy of c with every non-nil field of o applied.
// Nested blocks merge recursively; slices and scalars replace.
// The receiver is never modified.
func (c EmitterConfig) Merge(o *EmitterOverrides) EmitterConfig {
	out := c.Clone()
	if o == nil {
		return out.sanitized()
	}

	setIf(&out.StartPosition, o.StartPosition)
	setIf(&out.BirthRate, o.BirthRate)
	setIf(&out.Duration, o.Duration)
	setIf(&out.Amount, o.Amount)
	setIf(&out.Width, o.Width)
	setIf(&out.Height, o.Height)
	setIf(&out.Life, o.Life)
	setIf(&out.LifeRandom, o.LifeRandom)
	setIf(&out.AnimatedTexture, o.AnimatedTexture)

	if o.Texture != nil {
		out.Textures = []TextureID{*o.Texture}
	}
	if o.Textures != nil {
		out.Textures = cloneSlice(*o.Textures)
	}

	if b := o.Behavior; b != nil {
		if v := b.Velocity; v != nil {
			dst := &out.Behavior.Velocity
			setIf(&dst.Angle, v.Angle)
			setIf(&dst.Random, v.Random)
			setIf(&dst.Spread, v.Spread)
			setIf(&dst.Speed, v.Speed)
			setSliceIf(&dst.SpeedOverLife, v.SpeedOverLife)
			setSliceIf(&dst.SpiralSpeed, v.SpiralSpeed)
		}
		if s := b.Scale; s != nil {
			dst := &out.Behavior.Scale
			setIf(&dst.Start, s.Start)
			setIf(&dst.Random, s.Random)
			setSliceIf(&dst.ScaleOverLife, s.ScaleOverLife)
		}
		if r := b.Rotation; r != nil {
			dst := &out.Behavior.Rotation
			setIf(&dst.Start, r.Start)
			setIf(&dst.Random, r.Random)
			setIf(&dst.Speed, r.Speed)
			setSliceIf(&dst.SpeedOverLife, r.SpeedOverLife)
		}
	}

	if f := o.Force; f != nil && f.Gravity != nil {
		setIf(&out.Force.Gravity.Vector, f.Gravity.Vector)
		setIf(&out.Force.Gravity.Factor, f.Gravity.Factor)
	}

	return out.sanitized()
}

// sanitized clamps values the simulation cannot honour.
func (c EmitterConfig) sanitized() EmitterConfig {
	if c.Amount < 0 {
		log.Printf("[EmitterConfig] ⚠️ amount %d < 0, clamped to 0", c.Amount)
		c.Amount = 0
	}
	if c.BirthRate < 0 {
		log.Printf("[EmitterConfig] ⚠️ birthrate %.2f < 0, treated as single burst", c.BirthRate)
		c.BirthRate = 0
	}
	if c.Duration < 0 {
		log.Printf("[EmitterConfig] ⚠️ duration %.2f < 0, treated as unlimited", c.Duration)
		c.Duration = 0
	}
	if c.LifeRandom < 0 {
		log.Printf("[EmitterConfig] ⚠️ lifeRandom %.2f < 0, clamped to 0", c.LifeRandom)
		c.LifeRandom = 0
	}
	return c
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

func setSliceIf[T any](dst *[]T, src *[]T) {
	if src == nil {
		return
	}
	if len(*src) == 0 {
		*dst = nil
		return
	}
	*dst = cloneSlice(*src)
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
