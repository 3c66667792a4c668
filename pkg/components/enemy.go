package components

import "github.com/decker502/danmaku/pkg/types"

// EnemyComponent 敌人（杂兵或首领）的运行时状态
// 生命值存放在 HealthComponent 中，尺寸以 CollisionComponent 为准
type EnemyComponent struct {
	Kind  types.EnemyKind
	Speed float64

	// ShootCooldown 剩余冷却帧数，为 0 时发射并重置
	ShootCooldown int

	// MovePhase 移动相位累加器（驱动正弦摆动）
	MovePhase float64

	// AttackPhase 首领攻击阶段 0/1/2，由剩余生命比例决定；杂兵恒为 0
	AttackPhase int
}

// EnemyBulletComponent 敌方子弹
// 速度存放在 VelocityComponent 中
type EnemyBulletComponent struct {
	Pattern types.BulletPattern
	Radius  float64
}
