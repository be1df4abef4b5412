package utils

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		expected    float64
	}{
		{"区间内", 5, 0, 10, 5},
		{"低于下限", -3, 0, 10, 0},
		{"高于上限", 12, 0, 10, 10},
		{"边界", 10, 0, 10, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.min, tt.max); got != tt.expected {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}

func TestNormalize01(t *testing.T) {
	tests := []struct {
		name        string
		v, min, max float64
		expected    float64
	}{
		{"起点", 0, 0, 100, 0},
		{"中点", 50, 0, 100, 0.5},
		{"终点", 100, 0, 100, 1},
		{"越过终点", 250, 0, 100, 1},
		{"低于起点", -5, 0, 100, 0},
		{"偏移区间", 15, 10, 20, 0.5},
		{"零宽区间", 7, 3, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize01(tt.v, tt.min, tt.max); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Normalize01(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.expected)
			}
		})
	}
}

func TestInterpolateCurve(t *testing.T) {
	tests := []struct {
		name     string
		elapsed  float64
		points   []float64
		expected float64
	}{
		{"两点中点", 500, []float64{0.1, 0.4}, 0.25},
		{"三点上升段", 250, []float64{0, 0.5, 0}, 0.25},
		{"三点峰值", 500, []float64{0, 0.5, 0}, 0.5},
		{"三点下降段", 750, []float64{0, 0.5, 0}, 0.25},
		{"四点", 1000.0 / 3, []float64{0, 0.3, 0.5, 0}, 0.3},
		{"空数组", 500, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := InterpolateCurve(tt.elapsed, 0, 1000, tt.points)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("InterpolateCurve(%v, 0, 1000, %v) = %v, want %v", tt.elapsed, tt.points, got, tt.expected)
			}
		})
	}
}

// 曲线边界：elapsed<=0 返回首点，elapsed>=life 返回末点
func TestInterpolateCurve_Boundaries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		points := rapid.SliceOfN(rapid.Float64Range(-100, 100), 1, 12).Draw(t, "points")
		life := rapid.Float64Range(1, 10000).Draw(t, "life")
		before := rapid.Float64Range(-1000, 0).Draw(t, "before")
		after := rapid.Float64Range(0, 1000).Draw(t, "after")

		if got := InterpolateCurve(before, 0, life, points); got != points[0] {
			t.Fatalf("InterpolateCurve(%v) = %v, want first point %v", before, got, points[0])
		}
		last := points[len(points)-1]
		if got := InterpolateCurve(life+after, 0, life, points); got != last {
			t.Fatalf("InterpolateCurve(%v) = %v, want last point %v", life+after, got, last)
		}
	})
}

// 单点曲线对任意 elapsed 都返回该点
func TestInterpolateCurve_SinglePoint(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := rapid.Float64Range(-50, 50).Draw(t, "p")
		elapsed := rapid.Float64Range(-1e4, 1e4).Draw(t, "elapsed")
		if got := InterpolateCurve(elapsed, 0, 1000, []float64{p}); got != p {
			t.Fatalf("InterpolateCurve(%v, [%v]) = %v", elapsed, p, got)
		}
	})
}

// 插值结果不超出相邻控制点的范围
func TestInterpolateCurve_WithinHull(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		points := rapid.SliceOfN(rapid.Float64Range(-10, 10), 2, 8).Draw(t, "points")
		elapsed := rapid.Float64Range(0, 1000).Draw(t, "elapsed")
		lo, hi := points[0], points[0]
		for _, p := range points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
		got := InterpolateCurve(elapsed, 0, 1000, points)
		if got < lo-1e-9 || got > hi+1e-9 {
			t.Fatalf("InterpolateCurve(%v, %v) = %v outside [%v, %v]", elapsed, points, got, lo, hi)
		}
	})
}
