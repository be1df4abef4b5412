package particle

import (
	"math"
	"reflect"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/gonewx/chestfx/pkg/embedded"
)

const sampleEffects = `
effects:
  starsFlow:
    offset: [0, 15]
    emitter:
      birthrate: 50
      duration: 1000
      width: 80
      height: 10
      amount: 2
      life: 300
      lifeRandom: 900
      textures: [coin1, coin2, coin3]
      animatedTexture: true
      behavior:
        velocity:
          random: 0.01
          angle: -1.5707963267948966
          spread: 0.39269908169872414
          speedOverLife: [0.6, 0.1, 0]
        scale:
          start: 0.1
          random: 0.1
          scaleOverLife: [0.1, 0.5, 0]
        rotation:
          random: 3.141592653589793
      force:
        gravity:
          factor: 0.3
  fieldStars:
    emitter:
      texture: star
      amount: 1
`

func TestParseEffectYAML(t *testing.T) {
	file, err := ParseEffectYAML([]byte(sampleEffects), "sample.yaml")
	if err != nil {
		t.Fatalf("ParseEffectYAML() error = %v", err)
	}

	if len(file.Presets) != 2 {
		t.Fatalf("got %d presets, want 2", len(file.Presets))
	}
	// 保持声明顺序
	if file.Presets[0].Name != "starsFlow" || file.Presets[1].Name != "fieldStars" {
		t.Errorf("preset order = [%s %s], want [starsFlow fieldStars]", file.Presets[0].Name, file.Presets[1].Name)
	}

	stars := file.Lookup("starsFlow")
	if stars == nil {
		t.Fatal("Lookup(starsFlow) = nil")
	}
	if stars.Offset != (Vec2{0, 15}) {
		t.Errorf("Offset = %v, want [0 15]", stars.Offset)
	}

	cfg := stars.Config()
	if cfg.BirthRate != 50 || cfg.Duration != 1000 || cfg.Amount != 2 {
		t.Errorf("cadence = %v/%v/%d, want 50/1000/2", cfg.BirthRate, cfg.Duration, cfg.Amount)
	}
	if !cfg.AnimatedTexture || len(cfg.Textures) != 3 {
		t.Errorf("textures = %v animated=%v", cfg.Textures, cfg.AnimatedTexture)
	}
	if math.Abs(cfg.Behavior.Velocity.Angle+math.Pi/2) > 1e-12 {
		t.Errorf("Angle = %v, want -π/2", cfg.Behavior.Velocity.Angle)
	}
	// 未写 speed，保留默认值
	if cfg.Behavior.Velocity.Speed != 0.1 {
		t.Errorf("Speed = %v, want default 0.1", cfg.Behavior.Velocity.Speed)
	}
	if !reflect.DeepEqual(cfg.Behavior.Velocity.SpeedOverLife, []float64{0.6, 0.1, 0}) {
		t.Errorf("SpeedOverLife = %v", cfg.Behavior.Velocity.SpeedOverLife)
	}
	if cfg.Force.Gravity.Factor != 0.3 || cfg.Force.Gravity.Vector != (Vec2{0, 1}) {
		t.Errorf("Gravity = %+v", cfg.Force.Gravity)
	}

	field := file.Lookup("fieldStars").Config()
	if !reflect.DeepEqual(field.Textures, []TextureID{"star"}) {
		t.Errorf("fieldStars textures = %v, want [star]", field.Textures)
	}
	if field.Life != 1000 {
		t.Errorf("fieldStars life = %v, want default 1000", field.Life)
	}
}

func TestParseEffectYAML_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errPart string
	}{
		{"非法 YAML", "effects: [", "failed to parse"},
		{"缺少 effects", "foo: 1\n", "no 'effects' mapping"},
		{"空 effects", "effects: {}\n", "contains no effects"},
		{"重复名称", "effects:\n  a: {}\n  a: {}\n", `"a"`},
		{"类型错误", "effects:\n  a:\n    emitter:\n      amount: many\n", "failed to decode effect"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEffectYAML([]byte(tt.input), "bad.yaml")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("error = %q, want it to contain %q", err.Error(), tt.errPart)
			}
		})
	}
}

func TestParseEffectFile(t *testing.T) {
	embedded.Init(fstest.MapFS{
		"data/effects/sample.yaml": {Data: []byte(sampleEffects)},
	})
	defer embedded.Init(nil)

	file, err := ParseEffectFile("data/effects/sample.yaml")
	if err != nil {
		t.Fatalf("ParseEffectFile() error = %v", err)
	}
	if file.Source != "data/effects/sample.yaml" {
		t.Errorf("Source = %q", file.Source)
	}

	if _, err := ParseEffectFile("data/effects/missing.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}
