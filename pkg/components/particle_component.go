// Package components holds the pure data records of chestfx.
// Behaviour lives in pkg/systems.
package components

import "github.com/gonewx/chestfx/internal/particle"

// ParticleComponent represents the runtime state of one pooled particle.
//
// A pool slot owns exactly one ParticleComponent for its whole life; the
// emitter reinitializes it on reuse instead of allocating a new one.
//
// This is a pure data component - it contains no methods.
type ParticleComponent struct {
	// Transform (变换)
	X, Y        float64
	Rotation    float64 // radians
	ScaleFactor float64

	// Velocity (速度)
	// DirX/DirY is a unit vector; Speed is px/ms.
	DirX, DirY    float64
	Speed         float64
	SpeedOverLife []float64 // already offset by the spawn-time speed draw
	SpiralSpeed   []float64 // angular increment per frame, sampled over life

	// Scale over life (缩放曲线), already offset by the spawn-time scale draw
	ScaleOverLife []float64

	// Rotation (旋转)
	RotationSpeed         float64 // radians per frame
	RotationSpeedOverLife []float64

	// Gravity (重力), copied from the emitter config at spawn time
	GravityX, GravityY float64
	GravityFactor      float64

	// Texture selection (纹理)
	Frames   []particle.TextureID
	Animated bool

	// Lifecycle (生命周期, 毫秒)
	Life        float64
	LifeElapsed float64
	Alive       bool
}
