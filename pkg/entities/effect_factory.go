package entities

import (
	"image/color"
	"math"

	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/ecs"
)

// 粒子颜色
var (
	ColorBombSpark  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff} // 炸弹
	ColorHitSpark   = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff} // 命中
	ColorBasicDeath = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff} // 杂兵爆炸
	ColorBossDeath  = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff} // 首领爆炸
)

// ParticleSize 粒子边长（像素）
const ParticleSize = 4.0

// NewParticle 创建一个沿 angle 方向以 speed 飞出的粒子
func NewParticle(em *ecs.EntityManager, x, y, angle, speed float64, c color.RGBA, life int) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{
		VX: math.Cos(angle) * speed,
		VY: math.Sin(angle) * speed,
	})
	ecs.AddComponent(em, id, &components.ParticleComponent{
		Color:   c,
		Life:    life,
		MaxLife: life,
		Size:    ParticleSize,
	})
	return id
}

// NewStar 创建背景星
func NewStar(em *ecs.EntityManager, x, y, speed, size float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.StarComponent{Speed: speed, Size: size})
	return id
}
