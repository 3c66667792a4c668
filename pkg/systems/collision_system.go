package systems

import (
	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/utils"
)

// CollisionSystem 碰撞检测与伤害结算
//
// 处理顺序固定为实体ID升序，同一帧内结果确定：
//  1. 自机子弹 vs 敌人（AABB）：子弹命中第一个敌人后消失，被击破的敌人不再参与本帧检测
//  2. 敌弹 vs 自机（圆形判定点）：自机无敌时跳过；第一次被弹获得的无敌吸收本帧其余命中
type CollisionSystem struct {
	em      *ecs.EntityManager
	enemies *EnemySystem
	player  *PlayerSystem
}

// NewCollisionSystem 创建碰撞系统
func NewCollisionSystem(em *ecs.EntityManager, enemies *EnemySystem, player *PlayerSystem) *CollisionSystem {
	return &CollisionSystem{em: em, enemies: enemies, player: player}
}

// Update 执行本帧的全部碰撞检测
func (s *CollisionSystem) Update() {
	s.checkPlayerBullets()
	s.checkEnemyBullets()
}

func (s *CollisionSystem) checkPlayerBullets() {
	bullets := ecs.GetEntitiesWith2[*components.PlayerBulletComponent, *components.PositionComponent](s.em)
	enemies := ecs.GetEntitiesWith3[*components.EnemyComponent, *components.PositionComponent, *components.CollisionComponent](s.em)

	for _, bid := range bullets {
		if !s.em.IsAlive(bid) {
			continue
		}
		b, _ := ecs.GetComponent[*components.PlayerBulletComponent](s.em, bid)
		bpos, _ := ecs.GetComponent[*components.PositionComponent](s.em, bid)

		for _, eid := range enemies {
			if !s.em.IsAlive(eid) {
				continue
			}
			epos, _ := ecs.GetComponent[*components.PositionComponent](s.em, eid)
			col, _ := ecs.GetComponent[*components.CollisionComponent](s.em, eid)

			if !utils.AABBOverlap(bpos.X, bpos.Y, b.Width, b.Height, epos.X, epos.Y, col.Width, col.Height) {
				continue
			}

			s.em.DestroyEntity(bid)
			if s.enemies.TakeDamage(eid, 1) {
				s.em.DestroyEntity(eid)
			}
			break
		}
	}
}

func (s *CollisionSystem) checkEnemyBullets() {
	pc, ppos, ok := s.player.Player()
	if !ok || pc.Invulnerable > 0 {
		return
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyBulletComponent, *components.PositionComponent](s.em) {
		if pc.Invulnerable > 0 {
			return
		}
		b, _ := ecs.GetComponent[*components.EnemyBulletComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		if utils.CirclesOverlap(ppos.X, ppos.Y, pc.HitboxRadius, pos.X, pos.Y, b.Radius) {
			s.player.Hit()
		}
	}
}
