package utils

import "math"

// Easing Functions (缓动函数)
//
// 缓动函数用于控制动画的速度曲线，使动画看起来更自然。
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值（Back/Elastic 会短暂越界）。
//
// 参考：https://easings.net/

// EasingFunc 缓动函数签名
type EasingFunc func(t float64) float64

// EaseLinear 线性缓动（无缓动）
// 返回值 = 输入值（匀速运动）
func EaseLinear(t float64) float64 {
	return t
}

// EaseInQuad 二次方缓入
// 公式：f(t) = t²
func EaseInQuad(t float64) float64 {
	return t * t
}

// EaseOutQuad 二次方缓出
// 特点：开始较快，结束慢（比 Cubic 更柔和）
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

// EaseInOutQuad 二次方缓入缓出
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// EaseInCubic 三次方缓入
// 特点：开始慢，结束快
// 公式：f(t) = t³
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（宝箱弹跳动画使用）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutCubic 三次方缓入缓出
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// EaseInQuart 四次方缓入
func EaseInQuart(t float64) float64 {
	return t * t * t * t
}

// EaseOutQuart 四次方缓出
func EaseOutQuart(t float64) float64 {
	return 1 - math.Pow(1-t, 4)
}

// EaseInOutQuart 四次方缓入缓出
func EaseInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 4)/2
}

// EaseInQuint 五次方缓入
func EaseInQuint(t float64) float64 {
	return t * t * t * t * t
}

// EaseOutQuint 五次方缓出
func EaseOutQuint(t float64) float64 {
	return 1 - math.Pow(1-t, 5)
}

// EaseInOutQuint 五次方缓入缓出
func EaseInOutQuint(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 5)/2
}

// EaseInSine 正弦缓入
// 公式：f(t) = 1 - cos(tπ/2)
func EaseInSine(t float64) float64 {
	return 1 - math.Cos(t*math.Pi/2)
}

// EaseOutSine 正弦缓出
func EaseOutSine(t float64) float64 {
	return math.Sin(t * math.Pi / 2)
}

// EaseInOutSine 正弦缓入缓出（气球下落动画使用）
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// EaseInExpo 指数缓入
func EaseInExpo(t float64) float64 {
	if t <= 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// EaseOutExpo 指数缓出
// 特点：开始非常快，结束非常慢（适合"弹性"效果）
// 公式：f(t) = 1 - 2^(-10t)
func EaseOutExpo(t float64) float64 {
	if t >= 1.0 {
		return 1.0
	}
	return 1 - math.Pow(2, -10*t)
}

// EaseInOutExpo 指数缓入缓出
func EaseInOutExpo(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	}
	return (2 - math.Pow(2, -20*t+10)) / 2
}

// EaseInCirc 圆形缓入
func EaseInCirc(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

// EaseOutCirc 圆形缓出
func EaseOutCirc(t float64) float64 {
	return math.Sqrt(1 - (t-1)*(t-1))
}

// EaseInOutCirc 圆形缓入缓出
func EaseInOutCirc(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-4*t*t)) / 2
	}
	return (math.Sqrt(1-math.Pow(-2*t+2, 2)) + 1) / 2
}

// 弹性/回弹常量
const (
	backOvershoot      = 1.70158
	backOvershootInOut = backOvershoot * 1.525
	elasticPeriod      = 2 * math.Pi / 3
	elasticPeriodInOut = 2 * math.Pi / 4.5
)

// EaseInElastic 弹性缓入
func EaseInElastic(t float64) float64 {
	if t <= 0 || t >= 1 {
		return math.Round(Clamp(t, 0, 1))
	}
	return -math.Pow(2, 10*t-10) * math.Sin((t*10-10.75)*elasticPeriod)
}

// EaseOutElastic 弹性缓出
func EaseOutElastic(t float64) float64 {
	if t <= 0 || t >= 1 {
		return math.Round(Clamp(t, 0, 1))
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticPeriod) + 1
}

// EaseInOutElastic 弹性缓入缓出
func EaseInOutElastic(t float64) float64 {
	if t <= 0 || t >= 1 {
		return math.Round(Clamp(t, 0, 1))
	}
	if t < 0.5 {
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*elasticPeriodInOut)) / 2
	}
	return math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*elasticPeriodInOut)/2 + 1
}

// EaseInBack 回弹缓入（先向反方向拉一点）
func EaseInBack(t float64) float64 {
	return (backOvershoot+1)*t*t*t - backOvershoot*t*t
}

// EaseOutBack 回弹缓出（冲过终点再回来）
func EaseOutBack(t float64) float64 {
	u := t - 1
	return 1 + (backOvershoot+1)*u*u*u + backOvershoot*u*u
}

// EaseInOutBack 回弹缓入缓出
func EaseInOutBack(t float64) float64 {
	if t < 0.5 {
		return (math.Pow(2*t, 2) * ((backOvershootInOut+1)*2*t - backOvershootInOut)) / 2
	}
	return (math.Pow(2*t-2, 2)*((backOvershootInOut+1)*(t*2-2)+backOvershootInOut) + 2) / 2
}

// EaseOutBounce 弹跳缓出
func EaseOutBounce(t float64) float64 {
	const n1, d1 = 7.5625, 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	}
	t -= 2.625 / d1
	return n1*t*t + 0.984375
}

// EaseInBounce 弹跳缓入
func EaseInBounce(t float64) float64 {
	return 1 - EaseOutBounce(1-t)
}

// EaseInOutBounce 弹跳缓入缓出
func EaseInOutBounce(t float64) float64 {
	if t < 0.5 {
		return EaseInBounce(2*t) / 2
	}
	return EaseOutBounce(2*t-1)/2 + 0.5
}

// Lerp 线性插值
// 在 a 和 b 之间根据 t 插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
