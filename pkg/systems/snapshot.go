package systems

import (
	"image/color"

	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/types"
)

// PlayerView 自机的只读视图
type PlayerView struct {
	X, Y          float64
	Width, Height float64
	HitboxRadius  float64
	Invulnerable  int
	Entering      bool
	Focused       bool
}

// Blinking 无敌中每 4 帧闪烁一次（渲染用）
func (p PlayerView) Blinking(frame int) bool {
	return p.Invulnerable > 0 && (frame/4)%2 == 1
}

// EnemyView 敌人的只读视图
type EnemyView struct {
	ID            ecs.EntityID
	Kind          types.EnemyKind
	X, Y          float64
	Width, Height float64
	HPRatio       float64
	AttackPhase   int
}

// EnemyBulletView 敌弹的只读视图
type EnemyBulletView struct {
	X, Y    float64
	Radius  float64
	Pattern types.BulletPattern
}

// PlayerBulletView 自机子弹的只读视图
type PlayerBulletView struct {
	X, Y          float64
	Width, Height float64
}

// ParticleView 粒子的只读视图，Alpha = Life/MaxLife
type ParticleView struct {
	X, Y  float64
	Size  float64
	Color color.RGBA
	Alpha float64
}

// StarView 背景星
type StarView struct {
	X, Y float64
	Size float64
}

// HUDView 抬头显示
type HUDView struct {
	Score int
	Lives int
	Bombs int
}

// Snapshot 一帧结束时的世界快照
//
// 渲染器（Ebitengine、终端）只读取快照，不直接访问实体管理器。
// 快照中的切片在下一次 Snapshot 调用之前保持不变。
type Snapshot struct {
	Frame  int
	Mode   game.Mode
	Level  int
	Width  float64
	Height float64

	Player        PlayerView
	Enemies       []EnemyView
	EnemyBullets  []EnemyBulletView
	PlayerBullets []PlayerBulletView
	Particles     []ParticleView
	Stars         []StarView

	// BossVisible 场上有首领；BossHPRatio 为其剩余生命比例
	BossVisible bool
	BossHPRatio float64

	BackgroundScrollY float64

	HUD      HUDView
	Dialogue DialogueView
	Events   []game.EventKind
}

// buildSnapshot 从实体管理器收集快照
func buildSnapshot(em *ecs.EntityManager, playerID ecs.EntityID) Snapshot {
	var snap Snapshot

	if pc, ok := ecs.GetComponent[*components.PlayerComponent](em, playerID); ok {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, playerID)
		snap.Player = PlayerView{
			X: pos.X, Y: pos.Y,
			Width: pc.Width, Height: pc.Height,
			HitboxRadius: pc.HitboxRadius,
			Invulnerable: pc.Invulnerable,
			Entering:     pc.Entering,
			Focused:      pc.Focused,
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		var w, h float64
		if box, ok := ecs.GetComponent[*components.CollisionComponent](em, id); ok {
			w, h = box.Width, box.Height
		}
		ratio := 1.0
		if hp, ok := ecs.GetComponent[*components.HealthComponent](em, id); ok {
			ratio = hp.Ratio()
		}
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID: id, Kind: ec.Kind,
			X: pos.X, Y: pos.Y,
			Width: w, Height: h,
			HPRatio:     ratio,
			AttackPhase: ec.AttackPhase,
		})
		if ec.Kind == types.EnemyBoss && !snap.BossVisible {
			snap.BossVisible = true
			snap.BossHPRatio = ratio
		}
	}

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyBulletComponent, *components.PositionComponent](em) {
		b, _ := ecs.GetComponent[*components.EnemyBulletComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.EnemyBullets = append(snap.EnemyBullets, EnemyBulletView{X: pos.X, Y: pos.Y, Radius: b.Radius, Pattern: b.Pattern})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.PlayerBulletComponent, *components.PositionComponent](em) {
		b, _ := ecs.GetComponent[*components.PlayerBulletComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.PlayerBullets = append(snap.PlayerBullets, PlayerBulletView{X: pos.X, Y: pos.Y, Width: b.Width, Height: b.Height})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.ParticleComponent, *components.PositionComponent](em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Particles = append(snap.Particles, ParticleView{X: pos.X, Y: pos.Y, Size: p.Size, Color: p.Color, Alpha: p.LifeRatio()})
	}

	for _, id := range ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](em) {
		s, _ := ecs.GetComponent[*components.StarComponent](em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		snap.Stars = append(snap.Stars, StarView{X: pos.X, Y: pos.Y, Size: s.Size})
	}

	return snap
}
