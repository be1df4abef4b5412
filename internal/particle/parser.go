package particle

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/chestfx/pkg/embedded"
)

// EffectPreset is one named effect in an effect file: the emitter overrides
// plus the offset applied to the emit position.
type EffectPreset struct {
	Name    string           `yaml:"-"`
	Offset  Vec2             `yaml:"offset"`
	Emitter EmitterOverrides `yaml:"emitter"`
}

// Config resolves the preset against DefaultEmitterConfig.
func (p *EffectPreset) Config() EmitterConfig {
	return NewEmitterConfig(&p.Emitter)
}

// EffectFile is the parsed content of one YAML effect file.
// Presets keep the order they were declared in.
type EffectFile struct {
	Source  string
	Presets []*EffectPreset
}

// Lookup returns the preset with the given name, or nil.
func (f *EffectFile) Lookup(name string) *EffectPreset {
	for _, p := range f.Presets {
		if p.Name == name {
			return p
		}
	}
	return nil
}

type effectFileDoc struct {
	Effects yaml.Node `yaml:"effects"`
}

// ParseEffectFile reads an effect file from the embedded FS and parses it.
//
// Example usage:
//
//	file, err := ParseEffectFile("data/effects/chest.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cfg := file.Lookup("chestOpen").Config()
func ParseEffectFile(path string) (*EffectFile, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect file %s: %w", path, err)
	}
	return ParseEffectYAML(data, path)
}

// ParseEffectYAML parses effect file content. source is only used in errors.
//
// The document must have a top-level "effects" mapping of
// name -> {offset: [x, y], emitter: {...overrides}}.
func ParseEffectYAML(data []byte, source string) (*EffectFile, error) {
	var doc effectFileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse effect file %s: %w", source, err)
	}

	if doc.Effects.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("effect file %s has no 'effects' mapping", source)
	}

	file := &EffectFile{Source: source}
	seen := make(map[string]bool)

	// Mapping node content alternates key, value
	for i := 0; i+1 < len(doc.Effects.Content); i += 2 {
		keyNode, valueNode := doc.Effects.Content[i], doc.Effects.Content[i+1]
		name := keyNode.Value
		if seen[name] {
			return nil, fmt.Errorf("effect file %s: duplicate effect %q (line %d)", source, name, keyNode.Line)
		}
		seen[name] = true

		preset := &EffectPreset{Name: name}
		if err := valueNode.Decode(preset); err != nil {
			return nil, fmt.Errorf("effect file %s: failed to decode effect %q: %w", source, name, err)
		}
		file.Presets = append(file.Presets, preset)
	}

	if len(file.Presets) == 0 {
		return nil, fmt.Errorf("effect file %s contains no effects", source)
	}

	return file, nil
}
