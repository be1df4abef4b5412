package app

import (
	"github.com/gonewx/chestfx/pkg/tween"
)

// EmitFunc 在 (x, y) 触发指定名称的粒子特效
type EmitFunc func(effect string, x, y float64)

// Chest 演示用宝箱
// 所有可动画属性都是普通 float64，通过 tween.Fields 暴露给补间
type Chest struct {
	X, Y float64 // 宝箱中心（屏幕坐标）

	ScaleX, ScaleY float64 // 形变缩放
	OffsetY        float64 // 相对中心的竖直偏移
	Angle          float64 // 角度（度）

	ShineX, ShineY float64 // 背后光芒缩放
	ShineVisible   bool

	Gray float64 // 打开后的灰化程度 0..1

	IsOpen bool

	emit    EmitFunc
	current *tween.Sequence
}

// NewChest 创建位于 (x, y) 的宝箱
func NewChest(x, y float64, emit EmitFunc) *Chest {
	if emit == nil {
		emit = func(string, float64, float64) {}
	}
	return &Chest{
		X:      x,
		Y:      y,
		ScaleX: 1,
		ScaleY: 1,
		emit:   emit,
	}
}

func (c *Chest) scaleTarget() tween.Fields {
	return tween.Fields{"x": &c.ScaleX, "y": &c.ScaleY}
}

func (c *Chest) bodyTarget() tween.Fields {
	return tween.Fields{"y": &c.OffsetY, "angle": &c.Angle}
}

func (c *Chest) shineTarget() tween.Fields {
	return tween.Fields{"x": &c.ShineX, "y": &c.ShineY}
}

func (c *Chest) grayTarget() tween.Fields {
	return tween.Fields{"alpha": &c.Gray}
}

// Busy 当前是否有动画在播放
func (c *Chest) Busy() bool {
	return c.current != nil && c.current.IsPlaying()
}

func (c *Chest) stopCurrent() {
	if c.current != nil && c.current.IsPlaying() {
		c.current.Stop()
	}
	c.current = nil
}

// Open 播放开箱动画并喷出 chestOpen 粒子
//
// 流程：挤压弹起 + 光芒展开（500ms）→ 中奖时额外跳动（400ms）→
// 延迟 500ms 后光芒收起、箱体灰化（600ms）。
// win 为 true 时第一段结束后喷出 starsFlow。
func (c *Chest) Open(g *tween.Group, win bool, onDone func()) *tween.Sequence {
	c.stopCurrent()
	c.ShineX, c.ShineY = 0, 0
	c.emit("chestOpen", c.X, c.Y)

	seq := tween.New(g, tween.Options{
		Time:   500,
		Easing: "cubicOut",
		OnStart: func() {
			c.ShineVisible = true
		},
		OnComplete: func() {
			if win {
				c.emit("starsFlow", c.X, c.Y)
			}
		},
	},
		tween.Animation{Target: c.scaleTarget(), To: tween.Values{
			"x": {0.8, 1.1, 1},
			"y": {1.2, 0.9, 1},
		}},
		tween.Animation{Target: c.bodyTarget(), To: tween.Values{
			"y":     {-5, 10, -2, 0},
			"angle": {-2, 1, -0.4, 0},
		}},
		tween.Animation{Target: c.shineTarget(), To: tween.Values{
			"x": {0, 1.5, 1},
			"y": {0, 1.5, 1},
		}},
	)

	if win {
		seq.Next(tween.Options{Time: 400, Easing: "cubicOut"},
			tween.Animation{Target: c.bodyTarget(), To: tween.Values{
				"y":     {-15, 5, 0},
				"angle": {-3, 2, -1, 0},
			}},
		)
	}

	seq.Next(tween.Options{
		Delay:  500,
		Time:   600,
		Easing: "sineInOut",
		OnComplete: func() {
			c.ShineVisible = false
			c.IsOpen = true
			if onDone != nil {
				onDone()
			}
		},
	},
		tween.Animation{Target: c.shineTarget(), To: tween.Values{
			"x": {1.2, 0},
			"y": {1.2, 0},
		}},
		tween.Animation{Target: c.scaleTarget(), To: tween.Values{
			"x": {1, 1.05, 0.9},
			"y": {1, 1.05, 0.9},
		}},
		tween.Animation{Target: c.grayTarget(), To: tween.To(map[string]float64{"alpha": 1})},
	)

	c.current = seq
	seq.Start()
	return seq
}

// Reset 播放宝箱复原动画，开始时喷出 chestRefresh 粒子
func (c *Chest) Reset(g *tween.Group, delay float64) *tween.Sequence {
	c.stopCurrent()

	seq := tween.New(g, tween.Options{
		Delay:  delay,
		Time:   1000,
		Easing: "cubicOut",
		OnStart: func() {
			c.emit("chestRefresh", c.X, c.Y)
		},
		OnComplete: func() {
			c.IsOpen = false
		},
	},
		tween.Animation{Target: c.scaleTarget(), To: tween.Values{
			"x": {1.1, 0.9, 1},
			"y": {1.2, 0.8, 1},
		}},
		tween.Animation{Target: c.grayTarget(), To: tween.Values{
			"alpha": {1, 0},
		}},
	)

	c.current = seq
	seq.Start()
	return seq
}
