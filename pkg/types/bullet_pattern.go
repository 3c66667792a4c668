package types

import "fmt"

// BulletPattern 敌方子弹的弹型
// 决定子弹的碰撞半径、外观以及是否随时间加速
type BulletPattern int

const (
	BulletNormal BulletPattern = iota // 普通弹（杂兵散射）
	BulletSpiral                      // 螺旋弹（环形发射，每帧加速）
	BulletCross                       // 十字弹
	BulletAimed                       // 自机狙
)

// SpiralGrowth 螺旋弹每帧的速度倍率
const SpiralGrowth = 1.01

// Radius 返回弹型对应的碰撞半径（像素）
func (p BulletPattern) Radius() float64 {
	switch p {
	case BulletSpiral:
		return 6
	case BulletCross:
		return 7
	case BulletAimed:
		return 5
	default:
		return 4
	}
}

// Accelerates 该弹型的速度是否每帧乘以 SpiralGrowth
func (p BulletPattern) Accelerates() bool {
	return p == BulletSpiral
}

func (p BulletPattern) String() string {
	switch p {
	case BulletNormal:
		return "normal"
	case BulletSpiral:
		return "spiral"
	case BulletCross:
		return "cross"
	case BulletAimed:
		return "aimed"
	default:
		return fmt.Sprintf("BulletPattern(%d)", int(p))
	}
}

// ParseBulletPattern 从字符串解析弹型，空字符串视为 normal
func ParseBulletPattern(s string) (BulletPattern, error) {
	switch s {
	case "", "normal":
		return BulletNormal, nil
	case "spiral":
		return BulletSpiral, nil
	case "cross":
		return BulletCross, nil
	case "aimed":
		return BulletAimed, nil
	default:
		return BulletNormal, fmt.Errorf("unknown bullet pattern %q", s)
	}
}
