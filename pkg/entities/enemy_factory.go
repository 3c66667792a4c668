package entities

import (
	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/types"
)

// NewBasicEnemy 创建杂兵
//
// 参数:
//   - movePhase: 初始摆动相位（通常取随机值，让各杂兵不同步）
//
// 射击冷却从 0 开始，因此杂兵出现的第一帧就会开火。
func NewBasicEnemy(em *ecs.EntityManager, cfg config.BasicEnemyConfig, x, y, movePhase float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Kind:      types.EnemyBasic,
		Speed:     cfg.Speed,
		MovePhase: movePhase,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: cfg.HP, MaxHealth: cfg.HP})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: cfg.Width, Height: cfg.Height})
	return id
}

// NewBoss 创建首领
func NewBoss(em *ecs.EntityManager, cfg config.BossConfig, x, y, movePhase float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.EnemyComponent{
		Kind:      types.EnemyBoss,
		Speed:     cfg.Speed,
		MovePhase: movePhase,
	})
	ecs.AddComponent(em, id, &components.HealthComponent{CurrentHealth: cfg.HP, MaxHealth: cfg.HP})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: cfg.Width, Height: cfg.Height})
	return id
}

// NewEnemyBullet 创建敌弹，碰撞半径由弹型决定
func NewEnemyBullet(em *ecs.EntityManager, x, y, vx, vy float64, pattern types.BulletPattern) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.EnemyBulletComponent{
		Pattern: pattern,
		Radius:  pattern.Radius(),
	})
	return id
}
