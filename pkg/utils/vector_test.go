package utils

import (
	"math"
	"testing"
)

func TestAABBOverlap(t *testing.T) {
	tests := []struct {
		name   string
		bx, by float64
		want   bool
	}{
		{"中心重合", 100, 100, true},
		{"水平刚好相接", 100 + 16 + 2, 100, false},
		{"水平略有重叠", 100 + 17.9, 100, true},
		{"垂直刚好相接", 100, 100 + 16 + 6, false},
		{"垂直略有重叠", 100, 100 + 21.5, true},
		{"远离", 300, 300, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 敌人 32x32 位于 (100,100)，子弹 4x12
			got := AABBOverlap(100, 100, 32, 32, tt.bx, tt.by, 4, 12)
			if got != tt.want {
				t.Errorf("AABBOverlap = %v, 期望 %v", got, tt.want)
			}
		})
	}
}

func TestCirclesOverlap(t *testing.T) {
	if CirclesOverlap(0, 0, 3, 7, 0, 4) {
		t.Error("距离恰好等于半径和时不应判定碰撞")
	}
	if !CirclesOverlap(0, 0, 3, 6.9, 0, 4) {
		t.Error("距离小于半径和时应判定碰撞")
	}
}

func TestClampAndDistance(t *testing.T) {
	if Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp 结果错误")
	}
	if d := Distance(0, 0, 3, 4); math.Abs(d-5) > 1e-9 {
		t.Errorf("Distance = %v, 期望 5", d)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 4)
	if math.Abs(v.X) > 1e-9 || math.Abs(v.Y-4) > 1e-9 {
		t.Errorf("FromAngle(π/2, 4) = %+v, 期望 (0, 4)", v)
	}
	if a := AngleTo(0, 0, 0, 10); math.Abs(a-math.Pi/2) > 1e-9 {
		t.Errorf("AngleTo 向下应为 π/2, 实际 %v", a)
	}
}

func TestEasing(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"EaseOutCubic 起点", EaseOutCubic, 0, 0},
		{"EaseOutCubic 中点", EaseOutCubic, 0.5, 0.875},
		{"EaseOutCubic 截断", EaseOutCubic, 2, 1},
		{"EaseInOutSine 中点", EaseInOutSine, 0.5, 0.5},
		{"EaseInOutSine 终点", EaseInOutSine, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); math.Abs(got-tt.want) > 0.001 {
				t.Errorf("got %v, 期望 %v", got, tt.want)
			}
		})
	}
	if Lerp(10, 20, 0.25) != 12.5 {
		t.Error("Lerp 结果错误")
	}
}
