package app

import (
	"math/rand"

	"github.com/gonewx/chestfx/pkg/tween"
)

// 气球下落参数（ms / px）
const (
	balloonFromY       = -200.0
	balloonGapBase     = 50.0
	balloonGapRandom   = 60.0
	balloonTimeBase    = 1500.0
	balloonTimeRandom  = 500.0
	balloonDelayRandom = 200.0
)

// Balloon 奖励场景的字母气球
type Balloon struct {
	Letter  string
	X, Y    float64
	TargetY float64
	Visible bool
}

// NewBalloonRow 在 centerY 高度、以 centerX 为中心排列一行字母气球
func NewBalloonRow(word string, centerX, centerY, spacing float64) []*Balloon {
	letters := []rune(word)
	balloons := make([]*Balloon, len(letters))
	left := centerX - spacing*float64(len(letters)-1)/2
	for i, r := range letters {
		balloons[i] = &Balloon{
			Letter:  string(r),
			X:       left + spacing*float64(i),
			Y:       centerY,
			TargetY: centerY,
		}
	}
	return balloons
}

// DropBalloons 让每个气球从屏幕上方落下并回弹到 TargetY
// 每个气球的回弹幅度、时长和延迟独立随机
func DropBalloons(g *tween.Group, balloons []*Balloon, rng *rand.Rand) []*tween.Sequence {
	seqs := make([]*tween.Sequence, 0, len(balloons))
	for _, b := range balloons {
		b := b // per-iteration copy for the OnStart closure (go 1.21 loop semantics)
		toY := b.TargetY
		gap := balloonGapBase + rng.Float64()*balloonGapRandom
		duration := balloonTimeBase + rng.Float64()*balloonTimeRandom
		delay := rng.Float64() * balloonDelayRandom

		b.Visible = false
		b.Y = balloonFromY

		seq := tween.New(g, tween.Options{
			Time:      duration,
			Delay:     delay,
			Easing:    "sinInOut",
			AutoStart: true,
			OnStart: func() {
				b.Visible = true
			},
		}, tween.Animation{
			Target: tween.Fields{"y": &b.Y},
			To:     tween.Values{"y": {toY + gap, toY - gap*0.4, toY + gap*0.2, toY}},
		})
		seqs = append(seqs, seq)
	}
	return seqs
}
