// Package main 宝箱特效查看器
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	--effect <name>       启动时选中的特效（如 --effect=twirl）
//	--time-scale <float>  时间缩放（0.1 ~ 4.0）
//	--verbose             输出详细日志
//
// Controls:
//
//	Mouse Click       - 在光标处触发当前特效
//	Left/Right Arrow  - 切换特效
//	Space             - 开箱 / 复原宝箱
//	B                 - 奖励场景开场（气球 + 金币漩涡）
//	S                 - 停止所有发射器
//	H                 - 显示/隐藏调试信息
//	A                 - 切换叠加混合
//	+/-               - 调整时间缩放
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/chestfx/pkg/app"
	"github.com/gonewx/chestfx/pkg/embedded"
	"github.com/gonewx/chestfx/pkg/game"
)

var (
	effectFlag    = flag.String("effect", "", "Start with specific effect name")
	timeScaleFlag = flag.Float64("time-scale", 0, "Time scale (0 = last used)")
	verboseFlag   = flag.Bool("verbose", false, "Enable verbose logging (default off)")
)

func main() {
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	// 设置持久化失败时降级为内存设置
	var settings *game.SettingsManager
	manager, err := gdata.Open(gdata.Config{AppName: "chestfx"})
	if err != nil {
		log.Printf("[Main] Warning: gdata unavailable: %v (settings will not persist)", err)
		settings = game.NewSettingsManager(nil)
	} else {
		settings = game.NewSettingsManager(manager)
	}

	viewer, err := app.NewApp(app.Config{
		Verbose:   *verboseFlag,
		Effect:    *effectFlag,
		TimeScale: *timeScaleFlag,
		Settings:  settings,
	})
	if err != nil {
		log.Fatalf("查看器初始化失败: %v", err)
	}

	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)
	ebiten.SetWindowTitle("Chest FX Viewer")

	if err := ebiten.RunGame(viewer); err != nil {
		log.Fatal(err)
	}

	if err := settings.Save(); err != nil {
		log.Printf("[Main] Warning: %v", err)
	}
}
