package app

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/gonewx/chestfx/pkg/config"
	"github.com/gonewx/chestfx/pkg/game"
	"github.com/gonewx/chestfx/pkg/systems"
	"github.com/gonewx/chestfx/pkg/tween"
)

// 逻辑屏幕尺寸
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// FrameMs 每个 ebiten tick 的毫秒数（60 TPS）
const FrameMs = 1000.0 / 60.0

// Viewer 特效查看器的场景状态
//
// 一个 FrameClock 依次驱动粒子系统、精灵层的帧动画和补间组；
// 补间组同时作为发射器的定时器。输入处理和绘制在 App 中。
type Viewer struct {
	Clock     *game.FrameClock
	Group     *tween.Group
	Bus       *game.EventBus
	Particles *systems.ParticleSystem
	Layer     *systems.SpriteLayer

	Chest    *Chest
	Balloons []*Balloon

	library  *config.EffectLibrary
	settings *game.SettingsManager
	rng      *rand.Rand

	names   []string
	current int
	win     bool
	status  string
}

// NewViewer 为 library 中的每个预设注册一个发射器
func NewViewer(library *config.EffectLibrary, resolve systems.TextureResolver, settings *game.SettingsManager, rng *rand.Rand) (*Viewer, error) {
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	v := &Viewer{
		Clock:     game.NewFrameClock(),
		Group:     tween.NewGroup(),
		Bus:       game.NewEventBus(),
		Particles: systems.NewParticleSystem(),
		Layer:     systems.NewSpriteLayer(resolve),
		library:   library,
		settings:  settings,
		rng:       rng,
	}
	v.Layer.Additive = settings.GetSettings().Additive

	for _, preset := range library.Presets() {
		if _, err := v.Particles.RegisterPreset(preset, v.Group, v.Layer.NewDrawable,
			systems.WithEvents(v.Bus), systems.WithRand(rng)); err != nil {
			return nil, fmt.Errorf("failed to register effect %s: %w", preset.Name, err)
		}
	}
	v.names = v.Particles.Names()
	if len(v.names) == 0 {
		return nil, fmt.Errorf("no effects to show")
	}
	v.selectEffect(settings.GetSettings().LastEffect)

	v.Bus.On(systems.EventEmitterStarted, v.onEmitterEvent)
	v.Bus.On(systems.EventEmitterStopped, v.onEmitterEvent)

	v.Clock.Subscribe(v.Particles.Update)
	v.Clock.Subscribe(v.Layer.Update)
	v.Clock.Subscribe(v.Group.Update)

	v.Chest = NewChest(ScreenWidth/2, ScreenHeight/2+60, v.emit)
	v.Balloons = NewBalloonRow("bonus", ScreenWidth/2, ScreenHeight/3, 70)

	log.Printf("[Viewer] Ready with %d effects, current=%s", len(v.names), v.CurrentEffect())
	return v, nil
}

func (v *Viewer) onEmitterEvent(event string, payload any) {
	ev, ok := payload.(systems.EmitterEvent)
	if !ok {
		return
	}
	v.status = fmt.Sprintf("%s: %s", event, ev.Name)
}

func (v *Viewer) emit(effect string, x, y float64) {
	if err := v.Particles.Emit(effect, x, y); err != nil {
		log.Printf("[Viewer] Failed to emit %s: %v", effect, err)
		v.status = err.Error()
	}
}

func (v *Viewer) selectEffect(name string) {
	for i, n := range v.names {
		if n == name {
			v.current = i
			return
		}
	}
	v.current = 0
}

// Tick 按时间缩放推进一帧
func (v *Viewer) Tick(dtMs float64) {
	v.Clock.Tick(dtMs * v.settings.GetSettings().TimeScale)
}

// CurrentEffect 当前选中的特效名
func (v *Viewer) CurrentEffect() string {
	return v.names[v.current]
}

// Effects 所有特效名（注册顺序）
func (v *Viewer) Effects() []string {
	return v.names
}

// Status 最近一条状态信息
func (v *Viewer) Status() string {
	return v.status
}

// Settings 返回设置管理器
func (v *Viewer) Settings() *game.SettingsManager {
	return v.settings
}

// SelectEffect 切换到指定特效，名称不存在时返回错误
func (v *Viewer) SelectEffect(name string) error {
	if !v.library.Has(name) {
		return fmt.Errorf("effect %q not found", name)
	}
	v.selectEffect(name)
	v.rememberEffect()
	return nil
}

// CycleEffect 按 delta 循环切换特效
func (v *Viewer) CycleEffect(delta int) {
	n := len(v.names)
	v.current = ((v.current+delta)%n + n) % n
	v.rememberEffect()
}

func (v *Viewer) rememberEffect() {
	v.settings.SetLastEffect(v.CurrentEffect())
	v.saveSettings()
}

func (v *Viewer) saveSettings() {
	if err := v.settings.Save(); err != nil {
		log.Printf("[Viewer] Warning: %v", err)
	}
}

// EmitCurrent 在 (x, y) 触发当前特效
func (v *Viewer) EmitCurrent(x, y float64) {
	v.emit(v.CurrentEffect(), x, y)
}

// ToggleChest 宝箱关闭时播放开箱动画（中奖与否交替），打开时复原
func (v *Viewer) ToggleChest() {
	if v.Chest.Busy() {
		return
	}
	if v.Chest.IsOpen {
		v.Chest.Reset(v.Group, 0)
		return
	}
	v.win = !v.win
	v.Chest.Open(v.Group, v.win, nil)
}

// PlayBonusIntro 奖励场景开场：气球落下，金币漩涡和背景星星开始发射
func (v *Viewer) PlayBonusIntro() {
	DropBalloons(v.Group, v.Balloons, v.rng)
	for _, name := range []string{"twirl", "fieldStars"} {
		if e := v.Particles.Emitter(name); e != nil {
			e.SetPosition(ScreenWidth/2, ScreenHeight/2)
			e.Enable()
			e.Start()
		}
	}
}

// StopAll 停止所有发射器，已有粒子继续走完生命周期
func (v *Viewer) StopAll() {
	v.Particles.StopAll()
}

// AdjustTimeScale 按 delta 调整时间缩放
func (v *Viewer) AdjustTimeScale(delta float64) {
	v.settings.SetTimeScale(v.settings.GetSettings().TimeScale + delta)
	v.saveSettings()
}

// ToggleHUD 切换调试信息显示
func (v *Viewer) ToggleHUD() {
	v.settings.SetShowHUD(!v.settings.GetSettings().ShowHUD)
	v.saveSettings()
}

// ToggleAdditive 切换粒子层叠加混合
func (v *Viewer) ToggleAdditive() {
	additive := !v.settings.GetSettings().Additive
	v.settings.SetAdditive(additive)
	v.Layer.Additive = additive
	v.saveSettings()
}

// AliveParticles 所有发射器的存活粒子总数
func (v *Viewer) AliveParticles() int {
	total := 0
	for _, s := range v.Particles.Stats() {
		total += s.Alive
	}
	return total
}
