package systems

import (
	"math/rand"

	"github.com/gonewx/chestfx/internal/particle"
	"github.com/gonewx/chestfx/pkg/components"
)

// particle_emitter.go - 粒子发射器
//
// Emitter 拥有一个只增不减的粒子池：
//  - addParticle 优先复用索引最小的死亡粒子，否则追加新槽位
//  - Start 同步发射 amount 个粒子，birthrate > 0 时通过 Scheduler 自我重排
//  - duration 计时器只在周期发射时启动一次，到期调用 Stop
//  - Stop 取消所有挂起的计时器，已存在的粒子继续模拟直到死亡

// Scheduler runs fn once after delayMs of clock time. The returned cancel
// func prevents fn from running if it has not run yet; calling it more than
// once is safe.
type Scheduler interface {
	After(delayMs float64, fn func()) (cancel func())
}

// EventPublisher receives emitter lifecycle notifications.
type EventPublisher interface {
	Emit(event string, payload any)
}

// Emitter lifecycle events.
const (
	EventEmitterStarted = "emitter.started"
	EventEmitterStopped = "emitter.stopped"
)

// EmitterEvent is the payload of emitter lifecycle events.
type EmitterEvent struct {
	Name    string
	Emitter *Emitter
}

// EmitterOption configures an Emitter at construction time.
type EmitterOption func(*Emitter)

// WithRand sets the random source used for spawn jitter. Tests pass a seeded
// source to make spawns reproducible.
func WithRand(rng *rand.Rand) EmitterOption {
	return func(e *Emitter) {
		e.rng = rng
	}
}

// WithEvents publishes emitter.started / emitter.stopped to bus.
func WithEvents(bus EventPublisher) EmitterOption {
	return func(e *Emitter) {
		e.events = bus
	}
}

// WithName sets the name used in events and stats.
func WithName(name string) EmitterOption {
	return func(e *Emitter) {
		e.name = name
	}
}

// Emitter spawns and simulates a pool of particles from one EmitterConfig.
type Emitter struct {
	name        string
	config      particle.EmitterConfig
	scheduler   Scheduler
	newDrawable DrawableFactory
	rng         *rand.Rand
	events      EventPublisher

	pool    []*Particle
	enabled bool

	cancelBirth    func()
	cancelDuration func()
}

// NewEmitter creates an enabled emitter. config is deep-copied. scheduler
// may be nil when the config never uses birthrate; newDrawable may be nil
// for headless simulation.
func NewEmitter(config particle.EmitterConfig, scheduler Scheduler, newDrawable DrawableFactory, opts ...EmitterOption) *Emitter {
	e := &Emitter{
		config:      config.Clone(),
		scheduler:   scheduler,
		newDrawable: newDrawable,
		enabled:     true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return e
}

// Name returns the emitter name ("" if none was given).
func (e *Emitter) Name() string { return e.name }

// Config returns a copy of the emitter configuration.
func (e *Emitter) Config() particle.EmitterConfig { return e.config.Clone() }

// Enabled reports whether Start will spawn.
func (e *Emitter) Enabled() bool { return e.enabled }

// Pool returns the pool slots in insertion order. The slice must not be modified.
func (e *Emitter) Pool() []*Particle { return e.pool }

// AliveCount returns the number of live particles.
func (e *Emitter) AliveCount() int {
	n := 0
	for _, p := range e.pool {
		if p.Alive {
			n++
		}
	}
	return n
}

// Position returns the spawn anchor.
func (e *Emitter) Position() (x, y float64) {
	return e.config.StartPosition[0], e.config.StartPosition[1]
}

// SetPosition moves the spawn anchor. Only future spawns are affected.
func (e *Emitter) SetPosition(x, y float64) {
	e.config.StartPosition = particle.Vec2{x, y}
}

// Get implements tween.Target so the anchor can be animated.
func (e *Emitter) Get(prop string) (float64, bool) {
	switch prop {
	case "x":
		return e.config.StartPosition[0], true
	case "y":
		return e.config.StartPosition[1], true
	}
	return 0, false
}

// Set implements tween.Target.
func (e *Emitter) Set(prop string, v float64) {
	switch prop {
	case "x":
		e.config.StartPosition[0] = v
	case "y":
		e.config.StartPosition[1] = v
	}
}

// Enable re-arms a stopped emitter. It does not spawn; call Start.
func (e *Emitter) Enable() {
	e.enabled = true
}

// Start spawns one birth cycle. With a birthrate it keeps spawning every
// birthrate ms until stopped, and a duration stops it after duration ms.
// Start on a disabled emitter is a no-op. Calling Start while a cycle is
// pending restarts the cycle instead of running a second one.
func (e *Emitter) Start() {
	if !e.enabled {
		return
	}
	if e.cancelBirth != nil {
		e.cancelBirth()
		e.cancelBirth = nil
	}
	e.publish(EventEmitterStarted)
	e.birth()
}

func (e *Emitter) birth() {
	e.cancelBirth = nil
	if !e.enabled {
		return
	}

	for i := 0; i < e.config.Amount; i++ {
		e.addParticle(e.spawnData())
	}

	if e.config.BirthRate > 0 && e.enabled && e.scheduler != nil {
		e.cancelBirth = e.scheduler.After(e.config.BirthRate, e.birth)
		if e.config.Duration > 0 && e.cancelDuration == nil {
			e.cancelDuration = e.scheduler.After(e.config.Duration, func() {
				e.cancelDuration = nil
				e.Stop()
			})
		}
	}
}

// Stop disables the emitter and cancels pending timers. Live particles keep
// simulating. Idempotent.
func (e *Emitter) Stop() {
	if e.cancelBirth != nil {
		e.cancelBirth()
		e.cancelBirth = nil
	}
	if e.cancelDuration != nil {
		e.cancelDuration()
		e.cancelDuration = nil
	}
	if !e.enabled {
		return
	}
	e.enabled = false
	e.publish(EventEmitterStopped)
}

// Update advances every live particle by dt milliseconds, in slot order.
func (e *Emitter) Update(dt float64) {
	for _, p := range e.pool {
		if p.Alive {
			p.Update(dt)
		}
	}
}

// addParticle reuses the lowest-index dead slot or appends a new one.
func (e *Emitter) addParticle(spawn components.ParticleComponent) *Particle {
	p := e.firstDead()
	if p == nil {
		var d Drawable
		if e.newDrawable != nil {
			d = e.newDrawable()
		}
		p = newParticle(d)
		e.pool = append(e.pool, p)
	}
	p.Reset(spawn)
	return p
}

func (e *Emitter) firstDead() *Particle {
	for _, p := range e.pool {
		if !p.Alive {
			return p
		}
	}
	return nil
}

// uniform returns a value in [0, n).
func (e *Emitter) uniform(n float64) float64 {
	return e.rng.Float64() * n
}

// spawnData draws the randomized initial state of one particle.
func (e *Emitter) spawnData() components.ParticleComponent {
	cfg := &e.config
	vel := &cfg.Behavior.Velocity
	scl := &cfg.Behavior.Scale
	rot := &cfg.Behavior.Rotation

	var s components.ParticleComponent

	// 位置：锚点 + 发射区域内均匀抖动
	s.X = cfg.StartPosition[0] + e.uniform(cfg.Width) - cfg.Width/2
	s.Y = cfg.StartPosition[1] + e.uniform(cfg.Height) - cfg.Height/2

	// 寿命
	s.Life = cfg.Life + e.uniform(cfg.LifeRandom)

	// 纹理
	switch {
	case len(cfg.Textures) == 0:
	case cfg.AnimatedTexture:
		s.Frames = cfg.Textures
		s.Animated = true
	case len(cfg.Textures) == 1:
		s.Frames = cfg.Textures[:1:1]
	default:
		i := e.rng.Intn(len(cfg.Textures))
		s.Frames = cfg.Textures[i : i+1 : i+1]
	}

	// 速度：方向在 angle ± spread/2 内，速度叠加 [0, random) 的随机量
	spread := e.uniform(vel.Spread) - vel.Spread/2
	extra := e.uniform(vel.Random)
	s.DirX, s.DirY = unitVector(vel.Angle + spread)
	s.Speed = vel.Speed + extra
	if len(vel.SpeedOverLife) > 0 {
		s.SpeedOverLife = offsetCurve(vel.SpeedOverLife, extra)
		s.Speed = s.SpeedOverLife[0]
	}
	s.SpiralSpeed = vel.SpiralSpeed

	// 缩放：曲线与初始值各自独立抽取随机偏移
	curveExtra := e.uniform(scl.Random)
	s.ScaleFactor = scl.Start + e.uniform(scl.Random)
	if len(scl.ScaleOverLife) > 0 {
		s.ScaleOverLife = offsetCurve(scl.ScaleOverLife, curveExtra)
	}

	// 旋转
	s.Rotation = rot.Start + e.uniform(rot.Random)
	s.RotationSpeed = rot.Speed
	s.RotationSpeedOverLife = rot.SpeedOverLife

	// 重力
	g := cfg.Force.Gravity
	s.GravityX, s.GravityY = g.Vector[0], g.Vector[1]
	s.GravityFactor = g.Factor

	return s
}

func (e *Emitter) publish(event string) {
	if e.events == nil {
		return
	}
	e.events.Emit(event, EmitterEvent{Name: e.name, Emitter: e})
}

func offsetCurve(points []float64, delta float64) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p + delta
	}
	return out
}
