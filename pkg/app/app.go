// Package app 提供特效查看器的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/chestfx/pkg/config"
	"github.com/gonewx/chestfx/pkg/game"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Effect 启动时选中的特效，为空则使用上次的设置
	Effect string
	// TimeScale 时间缩放，0 表示使用上次的设置
	TimeScale float64
	// Settings 设置管理器，为 nil 时只在内存中保存设置
	Settings *game.SettingsManager
	// EffectsDir 嵌入资源中的特效目录，为空使用 config.DefaultEffectsDir
	EffectsDir string
}

// App 是查看器的核心包装器，实现 ebiten.Game 接口
type App struct {
	viewer   *Viewer
	textures *Textures

	chestImage   *ebiten.Image
	shineImage   *ebiten.Image
	balloonImage *ebiten.Image

	verbose bool
}

// NewApp 创建并初始化查看器
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	dir := cfg.EffectsDir
	if dir == "" {
		dir = config.DefaultEffectsDir
	}
	library, err := config.LoadEffectLibrary(dir)
	if err != nil {
		return nil, fmt.Errorf("特效配置加载失败: %w", err)
	}

	settings := cfg.Settings
	if settings == nil {
		settings = game.NewSettingsManager(nil)
	}
	if cfg.TimeScale > 0 {
		settings.SetTimeScale(cfg.TimeScale)
	}

	textures := NewTextures()
	viewer, err := NewViewer(library, textures.Resolve, settings, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return nil, err
	}
	if cfg.Effect != "" {
		if err := viewer.SelectEffect(cfg.Effect); err != nil {
			return nil, err
		}
	}
	log.Printf("[App] Generated %d textures", textures.Len())

	return &App{
		viewer:       viewer,
		textures:     textures,
		chestImage:   newChestImage(120, 90),
		shineImage:   newShineImage(220),
		balloonImage: newBalloonImage(50),
		verbose:      cfg.Verbose,
	}, nil
}

// Update 处理输入并推进一帧
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	v := a.viewer

	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		v.CycleEffect(1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		v.CycleEffect(-1)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		v.EmitCurrent(float64(x), float64(y))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.ToggleChest()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		v.PlayBonusIntro()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.StopAll()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		v.ToggleHUD()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		v.ToggleAdditive()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		v.AdjustTimeScale(0.25)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		v.AdjustTimeScale(-0.25)
	}

	v.Tick(FrameMs)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 38, G: 24, B: 52, A: 255})

	a.drawChest(screen)
	a.drawBalloons(screen)
	a.viewer.Layer.Draw(screen)

	if a.viewer.Settings().GetSettings().ShowHUD {
		a.drawHUD(screen)
	}
}

func (a *App) drawChest(screen *ebiten.Image) {
	c := a.viewer.Chest

	if c.ShineVisible {
		b := a.shineImage.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
		op.GeoM.Scale(c.ShineX, c.ShineY)
		op.GeoM.Translate(c.X, c.Y)
		op.Blend = ebiten.BlendLighter
		screen.DrawImage(a.shineImage, op)
	}

	b := a.chestImage.Bounds()
	op := &ebiten.DrawImageOptions{}
	// 锚点在底部中心，挤压时底边不动
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy()))
	op.GeoM.Scale(c.ScaleX*0.9, c.ScaleY*0.9)
	op.GeoM.Rotate(c.Angle * math.Pi / 180)
	op.GeoM.Translate(c.X, c.Y+float64(b.Dy())/2+c.OffsetY)
	// 灰化：向灰色插值
	gray := float32(1 - 0.4*c.Gray)
	op.ColorScale.Scale(gray, gray, gray, 1)
	screen.DrawImage(a.chestImage, op)
}

func (a *App) drawBalloons(screen *ebiten.Image) {
	b := a.balloonImage.Bounds()
	for _, balloon := range a.viewer.Balloons {
		if !balloon.Visible {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(balloon.X-float64(b.Dx())/2, balloon.Y-float64(b.Dx())/2)
		screen.DrawImage(a.balloonImage, op)
		ebitenutil.DebugPrintAt(screen, balloon.Letter, int(balloon.X)-3, int(balloon.Y)-8)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	v := a.viewer
	s := v.Settings().GetSettings()

	lines := []string{
		fmt.Sprintf("Effect: %s (%d/%d)", v.CurrentEffect(), v.current+1, len(v.Effects())),
		fmt.Sprintf("Particles: %d  Tweens: %d  Time scale: %.2fx  Additive: %v", v.AliveParticles(), v.Group.Len(), s.TimeScale, s.Additive),
		fmt.Sprintf("Chest: open=%v busy=%v", v.Chest.IsOpen, v.Chest.Busy()),
	}
	if status := v.Status(); status != "" {
		lines = append(lines, status)
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 10, 10+i*20)
	}

	controls := []string{
		"Click = Emit  <-/-> = Prev/Next  Space = Open/Reset chest  B = Bonus intro",
		"S = Stop all  H = HUD  A = Additive  +/- = Time scale",
	}
	y := ScreenHeight - len(controls)*20 - 10
	for i, line := range controls {
		ebitenutil.DebugPrintAt(screen, line, 10, y+i*20)
	}
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Viewer 返回场景状态
func (a *App) Viewer() *Viewer {
	return a.viewer
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
