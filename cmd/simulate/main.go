// Package main 无图形的粒子特效模拟器
//
// 用固定时钟运行特效，按间隔打印每个发射器的池大小和存活粒子数，
// 用于调整特效参数和检查粒子池是否按预期复用。
//
// Usage:
//
//	go run ./cmd/simulate [flags]
//
// Flags:
//
//	--effects <dir>     特效 YAML 目录（默认 data/effects）
//	--effect <name>     要运行的特效，all 表示全部（默认 chestOpen）
//	--ms <float>        模拟总时长 ms（默认 3000）
//	--step <float>      每帧时长 ms（默认 16）
//	--interval <float>  统计输出间隔 ms（默认 250）
//	--seed <int>        随机种子（默认 1）
//	--verbose           输出加载日志
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/gonewx/chestfx/internal/particle"
	"github.com/gonewx/chestfx/pkg/config"
	"github.com/gonewx/chestfx/pkg/game"
	"github.com/gonewx/chestfx/pkg/systems"
	"github.com/gonewx/chestfx/pkg/tween"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "simulate:", err)
		os.Exit(1)
	}
}

type options struct {
	effectsDir string
	effect     string
	totalMs    float64
	stepMs     float64
	intervalMs float64
	seed       int64
	verbose    bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	opts := &options{}
	fs.StringVar(&opts.effectsDir, "effects", config.DefaultEffectsDir, "Directory containing effect YAML files")
	fs.StringVar(&opts.effect, "effect", "chestOpen", "Effect to run (all = every effect)")
	fs.Float64Var(&opts.totalMs, "ms", 3000, "Total simulated time in ms")
	fs.Float64Var(&opts.stepMs, "step", 16, "Frame duration in ms")
	fs.Float64Var(&opts.intervalMs, "interval", 250, "Stats interval in ms")
	fs.Int64Var(&opts.seed, "seed", 1, "Random seed")
	fs.BoolVar(&opts.verbose, "verbose", false, "Enable verbose logging")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.stepMs <= 0 {
		return nil, fmt.Errorf("--step must be positive, got %v", opts.stepMs)
	}
	if opts.totalMs < 0 {
		return nil, fmt.Errorf("--ms cannot be negative, got %v", opts.totalMs)
	}
	return opts, nil
}

func run(args []string, out io.Writer) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}
	if !opts.verbose {
		log.SetOutput(io.Discard)
		defer log.SetOutput(os.Stderr)
	}

	library, err := config.LoadEffectLibraryFS(os.DirFS(opts.effectsDir), ".")
	if err != nil {
		return err
	}

	presets, err := selectPresets(library, opts.effect)
	if err != nil {
		return err
	}

	clock := game.NewFrameClock()
	group := tween.NewGroup()
	ps := systems.NewParticleSystem()
	rng := rand.New(rand.NewSource(opts.seed))

	for _, p := range presets {
		// 无图形模拟不需要 Drawable
		if _, err := ps.RegisterPreset(p, group, nil, systems.WithRand(rng)); err != nil {
			return err
		}
	}
	peak := make(map[string]int)
	clock.Subscribe(ps.Update)
	clock.Subscribe(group.Update)
	clock.Subscribe(func(float64) {
		for _, s := range ps.Stats() {
			if s.Alive > peak[s.Name] {
				peak[s.Name] = s.Alive
			}
		}
	})

	for _, p := range presets {
		if err := ps.Emit(p.Name, 0, 0); err != nil {
			return err
		}
	}

	nextReport := 0.0
	for {
		if clock.Elapsed() >= nextReport {
			report(out, clock.Elapsed(), ps.Stats())
			nextReport += opts.intervalMs
			if opts.intervalMs <= 0 {
				nextReport = opts.totalMs + 1
			}
		}
		if clock.Elapsed() >= opts.totalMs {
			break
		}
		clock.Tick(opts.stepMs)
	}

	fmt.Fprintf(out, "--- %d frames, %.0fms\n", clock.Frames(), clock.Elapsed())
	for _, s := range ps.Stats() {
		fmt.Fprintf(out, "%-12s pool=%d peak=%d\n", s.Name, s.PoolSize, peak[s.Name])
	}
	return nil
}

func selectPresets(library *config.EffectLibrary, name string) ([]*particle.EffectPreset, error) {
	if name == "all" {
		return library.Presets(), nil
	}
	p, err := library.Get(name)
	if err != nil {
		return nil, err
	}
	return []*particle.EffectPreset{p}, nil
}

func report(out io.Writer, now float64, stats []systems.EmitterStats) {
	for _, s := range stats {
		fmt.Fprintf(out, "t=%6.0fms %-12s pool=%3d alive=%3d enabled=%v\n", now, s.Name, s.PoolSize, s.Alive, s.Enabled)
	}
}
