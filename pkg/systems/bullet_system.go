package systems

import (
	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/types"
)

// BulletSystem 子弹系统
// 移动敌弹和自机子弹，并删除飞出有效区域的子弹
type BulletSystem struct {
	em      *ecs.EntityManager
	profile *config.GameProfile
}

// NewBulletSystem 创建子弹系统
func NewBulletSystem(em *ecs.EntityManager, profile *config.GameProfile) *BulletSystem {
	return &BulletSystem{em: em, profile: profile}
}

// UpdateEnemyBullets 移动敌弹
// 螺旋弹每帧加速；离开画布超过 BulletMargin 的敌弹被删除
func (s *BulletSystem) UpdateEnemyBullets() {
	m := s.profile.Enemies.BulletMargin
	w, h := s.profile.Canvas.Width, s.profile.Canvas.Height

	for _, id := range ecs.GetEntitiesWith3[*components.EnemyBulletComponent, *components.PositionComponent, *components.VelocityComponent](s.em) {
		b, _ := ecs.GetComponent[*components.EnemyBulletComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		if b.Pattern.Accelerates() {
			vel.VX *= types.SpiralGrowth
			vel.VY *= types.SpiralGrowth
		}

		inside := pos.X > -m && pos.X < w+m && pos.Y > -m && pos.Y < h+m
		if !inside {
			s.em.DestroyEntity(id)
		}
	}
}

// UpdatePlayerBullets 移动自机子弹，y ≤ BulletMinY 时删除
func (s *BulletSystem) UpdatePlayerBullets() {
	minY := s.profile.Player.BulletMinY

	for _, id := range ecs.GetEntitiesWith3[*components.PlayerBulletComponent, *components.PositionComponent, *components.VelocityComponent](s.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](s.em, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		if pos.Y <= minY {
			s.em.DestroyEntity(id)
		}
	}
}
