package utils

import "math"

// Clamp 将 value 限制在 [min, max] 范围内
func Clamp(value, min, max float64) float64 {
	return math.Max(min, math.Min(value, max))
}

// Normalize01 将 value 先限制到 [min, max]，再线性映射到 [0, 1]
// min == max 时返回 0（避免除以零）
func Normalize01(value, min, max float64) float64 {
	if max == min {
		return 0
	}
	n := Clamp(value, min, max)
	return (n - min) / (max - min)
}

// InterpolateCurve 在控制点数组上做分段线性插值
//
// elapsed 先通过 Normalize01 映射到 [0, 1]，再缩放到索引区间 [0, len(points)-1]，
// 最后在两个相邻控制点之间线性插值。
//
// 示例：
//
//	InterpolateCurve(250, 0, 1000, []float64{0, 0.5, 0})  // 0.25
//	InterpolateCurve(500, 0, 1000, []float64{0, 0.5, 0})  // 0.5
//
// 单点数组直接返回该点；空数组返回 0。
func InterpolateCurve(elapsed, min, max float64, points []float64) float64 {
	switch len(points) {
	case 0:
		return 0
	case 1:
		return points[0]
	}

	last := float64(len(points) - 1)
	pos := Normalize01(elapsed, min, max) * last
	from := math.Floor(pos)
	to := math.Ceil(pos)
	if from == to {
		return points[int(from)]
	}

	ratio := Normalize01(pos, from, to)
	return points[int(to)]*ratio + points[int(from)]*(1-ratio)
}
