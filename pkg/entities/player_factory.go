package entities

import (
	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
)

// NewPlayer 创建自机实体
// 自机初始停在入场终点（画布底部上方），不处于入场动画中；
// 开局时由 PlayerSystem.StartEntry 把它移到画布外再飞入。
func NewPlayer(em *ecs.EntityManager, profile *config.GameProfile) ecs.EntityID {
	pc := profile.Player
	h := profile.Canvas.Height

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{
		X: profile.Canvas.Width / 2,
		Y: pc.EntryTargetY(h),
	})
	ecs.AddComponent(em, id, &components.PlayerComponent{
		Width:        pc.Width,
		Height:       pc.Height,
		Speed:        pc.Speed,
		SlowSpeed:    pc.SlowSpeed,
		FireCooldown: pc.FireCooldown,
		HitboxRadius: pc.HitboxRadius,
		EntryStartY:  pc.EntryStartY(h),
		EntryTargetY: pc.EntryTargetY(h),
		EntrySpeed:   pc.EntrySpeed,
	})
	return id
}

// NewPlayerBullet 创建自机子弹，以固定速度向上飞行
func NewPlayerBullet(em *ecs.EntityManager, owner ecs.EntityID, x, y float64, pc config.PlayerConfig) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VY: -pc.BulletSpeed})
	ecs.AddComponent(em, id, &components.PlayerBulletComponent{
		OwnerID: uint64(owner),
		Width:   pc.BulletWidth,
		Height:  pc.BulletHeight,
	})
	return id
}
