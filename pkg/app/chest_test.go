package app

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonewx/chestfx/pkg/tween"
)

type emitRecorder struct {
	effects []string
	ys      []float64
}

func (r *emitRecorder) emit(effect string, x, y float64) {
	r.effects = append(r.effects, effect)
	r.ys = append(r.ys, y)
}

func advance(g *tween.Group, totalMs, stepMs float64) {
	for t := 0.0; t < totalMs; t += stepMs {
		g.Update(stepMs)
	}
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestChest_Open(t *testing.T) {
	tests := []struct {
		name        string
		win         bool
		wantEffects []string
		wantSteps   int
	}{
		{name: "中奖", win: true, wantEffects: []string{"chestOpen", "starsFlow"}, wantSteps: 3},
		{name: "未中奖", win: false, wantEffects: []string{"chestOpen"}, wantSteps: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tween.NewGroup()
			rec := &emitRecorder{}
			c := NewChest(400, 300, rec.emit)
			done := 0

			seq := c.Open(g, tt.win, func() { done++ })
			if seq.Steps() != tt.wantSteps {
				t.Errorf("Steps() = %d, want %d", seq.Steps(), tt.wantSteps)
			}
			if !c.Busy() {
				t.Error("chest should be busy right after Open")
			}

			advance(g, 2500, 16)

			if len(rec.effects) != len(tt.wantEffects) {
				t.Fatalf("effects = %v, want %v", rec.effects, tt.wantEffects)
			}
			for i := range tt.wantEffects {
				if rec.effects[i] != tt.wantEffects[i] {
					t.Errorf("effects = %v, want %v", rec.effects, tt.wantEffects)
				}
			}
			if done != 1 || !c.IsOpen || c.Busy() {
				t.Errorf("done=%d IsOpen=%v Busy=%v", done, c.IsOpen, c.Busy())
			}
			if seq.State() != tween.Completed {
				t.Errorf("State() = %v, want completed", seq.State())
			}
			if c.ShineVisible || !near(c.ShineX, 0) {
				t.Errorf("shine visible=%v x=%v after open", c.ShineVisible, c.ShineX)
			}
			if !near(c.Gray, 1) || !near(c.ScaleX, 0.9) || !near(c.ScaleY, 0.9) {
				t.Errorf("gray=%v scale=(%v,%v), want 1/(0.9,0.9)", c.Gray, c.ScaleX, c.ScaleY)
			}
			if !near(c.OffsetY, 0) || !near(c.Angle, 0) {
				t.Errorf("offset=%v angle=%v, want 0/0", c.OffsetY, c.Angle)
			}
		})
	}
}

func TestChest_OpenShowsShineOnStart(t *testing.T) {
	g := tween.NewGroup()
	c := NewChest(0, 0, nil)
	c.Open(g, false, nil)

	if c.ShineVisible {
		t.Fatal("shine visible before first update")
	}
	g.Update(16)
	if !c.ShineVisible {
		t.Error("shine should be visible once the first step starts")
	}
}

func TestChest_OpenInterruptsRunning(t *testing.T) {
	g := tween.NewGroup()
	c := NewChest(0, 0, nil)

	first := c.Open(g, true, nil)
	advance(g, 100, 16)
	second := c.Open(g, false, nil)

	if first.State() != tween.Stopped {
		t.Errorf("first State() = %v, want stopped", first.State())
	}
	if second.State() != tween.Running {
		t.Errorf("second State() = %v, want running", second.State())
	}
}

func TestChest_Reset(t *testing.T) {
	g := tween.NewGroup()
	rec := &emitRecorder{}
	c := NewChest(400, 300, rec.emit)

	c.Open(g, false, nil)
	advance(g, 2500, 16)
	rec.effects = nil

	c.Reset(g, 200)
	advance(g, 100, 16)
	if len(rec.effects) != 0 {
		t.Errorf("chestRefresh emitted before delay: %v", rec.effects)
	}
	advance(g, 1200, 16)

	if len(rec.effects) != 1 || rec.effects[0] != "chestRefresh" {
		t.Errorf("effects = %v, want [chestRefresh]", rec.effects)
	}
	if c.IsOpen || !near(c.Gray, 0) || !near(c.ScaleX, 1) {
		t.Errorf("IsOpen=%v gray=%v scaleX=%v after reset", c.IsOpen, c.Gray, c.ScaleX)
	}
}

func TestDropBalloons(t *testing.T) {
	g := tween.NewGroup()
	balloons := NewBalloonRow("bonus", 400, 200, 70)
	if len(balloons) != 5 {
		t.Fatalf("len(balloons) = %d, want 5", len(balloons))
	}
	if !near(balloons[0].X, 260) || !near(balloons[4].X, 540) {
		t.Errorf("row x = %v..%v, want 260..540", balloons[0].X, balloons[4].X)
	}

	seqs := DropBalloons(g, balloons, rand.New(rand.NewSource(7)))
	for _, b := range balloons {
		if b.Visible || b.Y != balloonFromY {
			t.Fatalf("balloon %s visible=%v y=%v before drop", b.Letter, b.Visible, b.Y)
		}
	}

	advance(g, balloonDelayRandom+balloonTimeBase+balloonTimeRandom+50, 16)

	for i, b := range balloons {
		if !b.Visible || !near(b.Y, b.TargetY) {
			t.Errorf("balloon %s visible=%v y=%v, want visible at %v", b.Letter, b.Visible, b.Y, b.TargetY)
		}
		if seqs[i].State() != tween.Completed {
			t.Errorf("balloon %s State() = %v", b.Letter, seqs[i].State())
		}
	}
}
