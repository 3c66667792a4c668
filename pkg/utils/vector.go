package utils

import "math"

// Vec2 二维向量（像素坐标，y 轴向下）
type Vec2 struct {
	X, Y float64
}

// Add 向量相加
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub 向量相减
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale 向量数乘
func (v Vec2) Scale(k float64) Vec2 { return Vec2{v.X * k, v.Y * k} }

// Len 向量长度
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// FromAngle 由角度（弧度）和长度构造向量
// 角度 π/2 指向屏幕下方
func FromAngle(angle, length float64) Vec2 {
	return Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// AngleTo 返回从 (x1,y1) 指向 (x2,y2) 的角度
func AngleTo(x1, y1, x2, y2 float64) float64 {
	return math.Atan2(y2-y1, x2-x1)
}

// Distance 两点间欧氏距离
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Clamp 将 v 限制在 [lo, hi] 区间
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// AABBOverlap 两个以中心点表示的矩形是否重叠
// 使用严格不等式：边缘恰好相接不算碰撞
func AABBOverlap(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return math.Abs(ax-bx) < aw/2+bw/2 && math.Abs(ay-by) < ah/2+bh/2
}

// CirclesOverlap 两个圆是否相交（严格不等式）
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	return Distance(ax, ay, bx, by) < ar+br
}

// OutsideRect 点是否位于矩形 [minX,maxX]×[minY,maxY] 之外
func OutsideRect(x, y, minX, minY, maxX, maxY float64) bool {
	return x < minX || x > maxX || y < minY || y > maxY
}
