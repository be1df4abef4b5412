package systems

import (
	"testing"

	"github.com/gonewx/chestfx/internal/particle"
)

func TestSpriteLayer_NewDrawable(t *testing.T) {
	layer := NewSpriteLayer(nil)
	d := layer.NewDrawable()

	if len(layer.Sprites()) != 1 {
		t.Fatalf("Sprites() len = %d, want 1", len(layer.Sprites()))
	}
	s := d.(*Sprite)
	if s.Attached() {
		t.Error("new sprite should start detached")
	}
	if _, _, _, scale := s.Transform(); scale != 1 {
		t.Errorf("initial scale = %v, want 1", scale)
	}
}

// 发射器通过 SpriteLayer 工厂分配精灵，死亡粒子的精灵被隐藏但保留
func TestSpriteLayer_WithEmitter(t *testing.T) {
	layer := NewSpriteLayer(nil)
	cfg := testConfig()
	cfg.Amount = 3
	cfg.Life = 50
	cfg.Textures = []particle.TextureID{"star"}
	e := NewEmitter(cfg, nil, layer.NewDrawable)

	e.Start()
	if layer.AttachedCount() != 3 {
		t.Fatalf("attached = %d, want 3", layer.AttachedCount())
	}
	if id, ok := layer.Sprites()[0].CurrentFrame(); !ok || id != "star" {
		t.Errorf("CurrentFrame() = %q, %v", id, ok)
	}

	e.Update(50)
	if layer.AttachedCount() != 0 {
		t.Errorf("attached after death = %d, want 0", layer.AttachedCount())
	}
	if len(layer.Sprites()) != 3 {
		t.Errorf("sprites = %d, want 3", len(layer.Sprites()))
	}

	e.Start()
	if len(layer.Sprites()) != 3 || layer.AttachedCount() != 3 {
		t.Errorf("reuse: sprites=%d attached=%d, want 3/3", len(layer.Sprites()), layer.AttachedCount())
	}
}

func TestSpriteLayer_AnimatedFrames(t *testing.T) {
	layer := NewSpriteLayer(nil)
	layer.FrameDurationMs = 10

	s := layer.NewDrawable().(*Sprite)
	s.Attach()
	s.SetTexture([]particle.TextureID{"c1", "c2", "c3"}, true)

	tests := []struct {
		dt   float64
		want particle.TextureID
	}{
		{5, "c1"},
		{5, "c2"},
		{20, "c1"},
		{25, "c3"},
	}
	for i, tt := range tests {
		layer.Update(tt.dt)
		if got, _ := s.CurrentFrame(); got != tt.want {
			t.Errorf("step %d: CurrentFrame() = %q, want %q", i, got, tt.want)
		}
	}

	// 重新设置纹理从第一帧开始
	s.SetTexture([]particle.TextureID{"c1", "c2", "c3"}, true)
	if got, _ := s.CurrentFrame(); got != "c1" {
		t.Errorf("after SetTexture CurrentFrame() = %q, want c1", got)
	}
}

func TestSpriteLayer_StaticFramesDoNotAdvance(t *testing.T) {
	layer := NewSpriteLayer(nil)
	s := layer.NewDrawable().(*Sprite)
	s.Attach()
	s.SetTexture([]particle.TextureID{"line"}, false)

	layer.Update(1000)
	if got, _ := s.CurrentFrame(); got != "line" {
		t.Errorf("CurrentFrame() = %q, want line", got)
	}
	if _, ok := (&Sprite{}).CurrentFrame(); ok {
		t.Error("sprite without frames should report no frame")
	}
}
