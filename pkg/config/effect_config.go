package config

import (
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"
	"strings"

	"github.com/gonewx/chestfx/internal/particle"
	"github.com/gonewx/chestfx/pkg/embedded"
)

// DefaultEffectsDir 内置特效预设目录
const DefaultEffectsDir = "data/effects"

// EffectLibrary 已加载的全部特效预设
// 预设按文件名排序后、再按文件内声明顺序排列
type EffectLibrary struct {
	presets []*particle.EffectPreset
	byName  map[string]*particle.EffectPreset
	sources map[string]string
}

// LoadEffectLibrary 从嵌入资源目录加载所有 *.yaml 特效文件
func LoadEffectLibrary(dir string) (*EffectLibrary, error) {
	if !embedded.IsInitialized() {
		return nil, fmt.Errorf("failed to load effects from %s: embedded data not initialized", dir)
	}
	return LoadEffectLibraryFS(embedded.FS(), dir)
}

// LoadEffectLibraryFS 从任意 fs.FS 加载特效目录（命令行工具使用 os.DirFS）
func LoadEffectLibraryFS(fsys fs.FS, dir string) (*EffectLibrary, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read effects directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			files = append(files, path.Join(dir, name))
		}
	}
	sort.Strings(files)

	if len(files) == 0 {
		return nil, fmt.Errorf("effects directory %s contains no YAML files", dir)
	}

	lib := &EffectLibrary{
		byName:  make(map[string]*particle.EffectPreset),
		sources: make(map[string]string),
	}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("failed to read effect file %s: %w", file, err)
		}
		parsed, err := particle.ParseEffectYAML(data, file)
		if err != nil {
			return nil, err
		}
		if err := lib.add(parsed); err != nil {
			return nil, err
		}
	}

	log.Printf("[EffectConfig] Loaded %d effects from %d files in %s", len(lib.presets), len(files), dir)
	return lib, nil
}

func (l *EffectLibrary) add(file *particle.EffectFile) error {
	for _, preset := range file.Presets {
		if prev, exists := l.sources[preset.Name]; exists {
			return fmt.Errorf("effect %q defined in both %s and %s", preset.Name, prev, file.Source)
		}
		if err := validateEffect(preset); err != nil {
			return fmt.Errorf("invalid effect in %s: %w", file.Source, err)
		}
		l.presets = append(l.presets, preset)
		l.byName[preset.Name] = preset
		l.sources[preset.Name] = file.Source
	}
	return nil
}

// validateEffect 检查预设中无法自动修正的取值
func validateEffect(p *particle.EffectPreset) error {
	if p.Name == "" {
		return fmt.Errorf("effect name cannot be empty")
	}
	e := p.Emitter
	if e.Width != nil && *e.Width < 0 {
		return fmt.Errorf("effect %s: width cannot be negative, got %v", p.Name, *e.Width)
	}
	if e.Height != nil && *e.Height < 0 {
		return fmt.Errorf("effect %s: height cannot be negative, got %v", p.Name, *e.Height)
	}
	if e.Texture != nil && e.Textures != nil {
		return fmt.Errorf("effect %s: use either texture or textures, not both", p.Name)
	}
	return nil
}

// Get 返回指定名称的预设
func (l *EffectLibrary) Get(name string) (*particle.EffectPreset, error) {
	p, ok := l.byName[name]
	if !ok {
		return nil, fmt.Errorf("effect %q not found", name)
	}
	return p, nil
}

// Has 检查预设是否存在
func (l *EffectLibrary) Has(name string) bool {
	_, ok := l.byName[name]
	return ok
}

// Names 返回所有预设名（加载顺序）
func (l *EffectLibrary) Names() []string {
	names := make([]string, len(l.presets))
	for i, p := range l.presets {
		names[i] = p.Name
	}
	return names
}

// Presets 返回所有预设（加载顺序）
func (l *EffectLibrary) Presets() []*particle.EffectPreset {
	return l.presets
}

// Source 返回预设所在的文件
func (l *EffectLibrary) Source(name string) string {
	return l.sources[name]
}
