package components

import "image/color"

// ParticleComponent 单个粒子的生命周期与外观
//
// 粒子的速度存放在 VelocityComponent 中，每帧衰减为原来的 0.98 倍，
// Life 递减到 0 时被销毁。渲染时以 Life/MaxLife 作为透明度。
type ParticleComponent struct {
	Color   color.RGBA
	Life    int
	MaxLife int
	Size    float64
}

// LifeRatio 剩余寿命比例 [0, 1]
func (p *ParticleComponent) LifeRatio() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return float64(p.Life) / float64(p.MaxLife)
}
