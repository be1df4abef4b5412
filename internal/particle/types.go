// Package particle provides the configuration model for chestfx particle
// emitters.
//
// An emitter is described by an EmitterConfig. Configs are never written by
// hand in full: callers start from DefaultEmitterConfig and deep-merge an
// EmitterOverrides value on top (usually decoded from a YAML effect file).
// Nested behaviour blocks merge key by key; slices and scalars replace the
// default wholesale.
//
// Units: milliseconds for time, pixels for distance, radians for angles,
// pixels per millisecond for speed.
package particle

// TextureID names a texture or animation frame. The rendering layer resolves
// it; the simulation never looks inside.
type TextureID string

// Vec2 is an [x, y] pair. It decodes from a two-element YAML sequence.
type Vec2 [2]float64

// EmitterConfig is the complete, resolved configuration of one emitter.
type EmitterConfig struct {
	// Spawn anchor (发射锚点), moved with Emitter.SetPosition
	StartPosition Vec2 `yaml:"startPosition"`

	// Spawn cadence (发射节奏)
	BirthRate float64 `yaml:"birthrate"` // ms between birth cycles, 0 = single burst
	Duration  float64 `yaml:"duration"`  // ms of emission before auto-stop, 0 = until stopped
	Amount    int     `yaml:"amount"`    // particles per birth cycle

	// Spawn area (发射区域), uniform jitter box centred on the anchor
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Particle lifetime (生命周期)
	Life       float64 `yaml:"life"`       // base lifespan in ms
	LifeRandom float64 `yaml:"lifeRandom"` // additive jitter in [0, LifeRandom)

	// Textures: one entry = fixed texture, several = random pick per particle,
	// or the frame set itself when AnimatedTexture is true.
	Textures        []TextureID `yaml:"textures"`
	AnimatedTexture bool        `yaml:"animatedTexture"`

	Behavior Behavior `yaml:"behavior"`
	Force    Force    `yaml:"force"`
}

// Behavior groups the per-particle motion descriptors.
type Behavior struct {
	Velocity VelocityBehavior `yaml:"velocity"`
	Scale    ScaleBehavior    `yaml:"scale"`
	Rotation RotationBehavior `yaml:"rotation"`
}

// VelocityBehavior describes launch direction and speed.
type VelocityBehavior struct {
	Angle  float64 `yaml:"angle"`  // launch direction
	Random float64 `yaml:"random"` // additive speed jitter
	Spread float64 `yaml:"spread"` // full cone width around Angle
	Speed  float64 `yaml:"speed"`  // px/ms

	// Optional over-life curves. nil = constant.
	SpeedOverLife []float64 `yaml:"speedOverLife"`
	SpiralSpeed   []float64 `yaml:"spiralSpeed"` // angular increment per frame
}

// ScaleBehavior describes initial scale and scale over life.
type ScaleBehavior struct {
	Start         float64   `yaml:"start"`
	Random        float64   `yaml:"random"`
	ScaleOverLife []float64 `yaml:"scaleOverLife"`
}

// RotationBehavior describes initial rotation and spin.
//
// SpeedOverLife is carried through to particles but the simulation does not
// sample it; spin stays constant at Speed.
type RotationBehavior struct {
	Start         float64   `yaml:"start"`
	Random        float64   `yaml:"random"`
	Speed         float64   `yaml:"speed"` // radians per frame
	SpeedOverLife []float64 `yaml:"speedOverLife"`
}

// Force holds the forces applied to every particle every tick.
type Force struct {
	Gravity Gravity `yaml:"gravity"`
}

// Gravity is a constant acceleration-free drift: position += Vector*Factor*dt.
type Gravity struct {
	Vector Vec2    `yaml:"vector"`
	Factor float64 `yaml:"factor"`
}

// HasTextures reports whether at least one texture is configured.
func (c *EmitterConfig) HasTextures() bool {
	return len(c.Textures) > 0
}
