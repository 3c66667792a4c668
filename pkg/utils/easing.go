package utils

import "math"

// 缓动函数，输入进度 t ∈ [0, 1]，超出范围会被截断

// EaseOutCubic 三次方缓出：开始快，结束慢
func EaseOutCubic(t float64) float64 {
	t = Clamp(t, 0, 1)
	return 1 - math.Pow(1-t, 3)
}

// EaseInOutSine 正弦缓入缓出，用于呼吸式闪烁
func EaseInOutSine(t float64) float64 {
	t = Clamp(t, 0, 1)
	return -(math.Cos(math.Pi*t) - 1) / 2
}

// Lerp 线性插值
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
