package systems

import (
	"math"

	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/types"
)

// EnemySystem 敌人系统
// 负责杂兵和首领的移动、攻击阶段切换、开火以及受伤结算
type EnemySystem struct {
	em         *ecs.EntityManager
	gs         *game.GameState
	profile    *config.GameProfile
	events     *game.EventLog
	rng        Random
	attacks    *AttackPatternEngine
	difficulty *DifficultyEngine
	player     *PlayerSystem
}

// NewEnemySystem 创建敌人系统
//
// 参数:
//   - attacks: 弹幕引擎，敌人冷却结束时通过它开火
//   - player: 自机系统，用于自机狙的瞄准
func NewEnemySystem(
	em *ecs.EntityManager,
	gs *game.GameState,
	profile *config.GameProfile,
	events *game.EventLog,
	rng Random,
	attacks *AttackPatternEngine,
	difficulty *DifficultyEngine,
	player *PlayerSystem,
) *EnemySystem {
	return &EnemySystem{
		em:         em,
		gs:         gs,
		profile:    profile,
		events:     events,
		rng:        rng,
		attacks:    attacks,
		difficulty: difficulty,
		player:     player,
	}
}

// Update 按实体ID顺序更新所有敌人
// 飞出画面下方的敌人在这里被标记删除
func (s *EnemySystem) Update() {
	limitY := s.profile.Canvas.Height + s.profile.Enemies.RemoveMargin

	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](s.em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		switch ec.Kind {
		case types.EnemyBoss:
			s.moveBoss(id, ec, pos)
		default:
			s.moveBasic(ec, pos)
		}

		if ec.ShootCooldown > 0 {
			ec.ShootCooldown--
		}
		if ec.ShootCooldown == 0 {
			s.shoot(ec, pos)
			ec.ShootCooldown = s.difficulty.EnemyCooldown(ec.Kind, ec.AttackPhase, s.gs.FrameCount)
		}

		if pos.Y >= limitY {
			s.em.DestroyEntity(id)
		}
	}
}

func (s *EnemySystem) moveBasic(ec *components.EnemyComponent, pos *components.PositionComponent) {
	cfg := s.profile.Enemies.Basic
	ec.MovePhase += cfg.PhaseStep
	pos.X += math.Sin(ec.MovePhase) * cfg.Sway
	pos.Y += ec.Speed
}

func (s *EnemySystem) moveBoss(id ecs.EntityID, ec *components.EnemyComponent, pos *components.PositionComponent) {
	cfg := s.profile.Enemies.Boss
	ec.MovePhase += cfg.PhaseStep
	pos.X = s.profile.Canvas.Width/2 + math.Sin(ec.MovePhase)*cfg.SwayAmplitude
	if pos.Y < cfg.DescendUntil {
		pos.Y += ec.Speed
	}

	if hp, ok := ecs.GetComponent[*components.HealthComponent](s.em, id); ok {
		ec.AttackPhase = clampPhase(PhaseForRatio(hp.Ratio(), cfg.PhaseThresholds), len(cfg.Phases))
	}
}

func (s *EnemySystem) shoot(ec *components.EnemyComponent, pos *components.PositionComponent) {
	ctx := EmitContext{X: pos.X, Y: pos.Y, Frame: s.gs.FrameCount}
	if s.player != nil {
		if _, ppos, ok := s.player.Player(); ok {
			ctx.PlayerX, ctx.PlayerY, ctx.HasPlayer = ppos.X, ppos.Y, true
		}
	}
	s.attacks.Fire(ec.Kind, ec.AttackPhase, ctx)
}

// BossAlive 场上是否存在存活的首领
func (s *EnemySystem) BossAlive() bool {
	return BossAlive(s.em)
}

// BossAlive 场上是否存在存活（未被标记删除）的首领
func BossAlive(em *ecs.EntityManager) bool {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		if isBoss(em, id) {
			return true
		}
	}
	return false
}

// CountEnemies 统计存活敌人数量
func CountEnemies(em *ecs.EntityManager, kind types.EnemyKind) int {
	n := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		ec, _ := ecs.GetComponent[*components.EnemyComponent](em, id)
		if ec.Kind == kind {
			n++
		}
	}
	return n
}
