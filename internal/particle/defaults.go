package particle

import "math"

// DefaultEmitterConfig returns the documented defaults every emitter starts
// from. Each call returns a fresh value; callers may mutate it freely.
func DefaultEmitterConfig() EmitterConfig {
	return EmitterConfig{
		StartPosition: Vec2{0, 0},
		BirthRate:     0,
		Duration:      0,
		Amount:        20,
		Width:         0,
		Height:        0,
		Life:          1000,
		LifeRandom:    0,
		Behavior: Behavior{
			Velocity: VelocityBehavior{
				Angle:  0,
				Random: 0,
				Spread: math.Pi,
				Speed:  0.1,
			},
			Scale: ScaleBehavior{
				Start:  1,
				Random: 0,
			},
			Rotation: RotationBehavior{
				Start:  0,
				Random: 0,
				Speed:  0,
			},
		},
		Force: Force{
			Gravity: Gravity{
				Vector: Vec2{0, 1},
				Factor: 0,
			},
		},
	}
}

// NewEmitterConfig merges overrides on top of DefaultEmitterConfig.
// A nil overrides value yields the defaults.
func NewEmitterConfig(o *EmitterOverrides) EmitterConfig {
	return DefaultEmitterConfig().Merge(o)
}
