package systems

import (
	"log"
	"math"

	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/entities"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/types"
	"github.com/decker502/danmaku/pkg/utils"
)

// 炸弹粒子参数
const (
	bombParticleLife   = 60
	bombParticleSpread = 10.0 // 生成位置在自机周围 ±10 像素
)

// PlayerSystem 自机系统
// 负责入场动画、移动、射击、炸弹以及被弹处理
type PlayerSystem struct {
	em      *ecs.EntityManager
	gs      *game.GameState
	profile *config.GameProfile
	events  *game.EventLog
	rng     Random

	playerID ecs.EntityID
}

// NewPlayerSystem 创建自机系统并生成自机实体
func NewPlayerSystem(em *ecs.EntityManager, gs *game.GameState, profile *config.GameProfile, events *game.EventLog, rng Random) *PlayerSystem {
	s := &PlayerSystem{
		em:      em,
		gs:      gs,
		profile: profile,
		events:  events,
		rng:     rng,
	}
	s.playerID = entities.NewPlayer(em, profile)
	return s
}

// PlayerID 自机实体ID
func (s *PlayerSystem) PlayerID() ecs.EntityID {
	return s.playerID
}

// Respawn 重新生成自机实体（世界被清空后调用）
func (s *PlayerSystem) Respawn() ecs.EntityID {
	if s.em.IsAlive(s.playerID) {
		s.em.DestroyEntity(s.playerID)
	}
	s.playerID = entities.NewPlayer(s.em, s.profile)
	return s.playerID
}

// Player 返回自机组件和位置
func (s *PlayerSystem) Player() (*components.PlayerComponent, *components.PositionComponent, bool) {
	pc, ok := ecs.GetComponent[*components.PlayerComponent](s.em, s.playerID)
	if !ok {
		return nil, nil, false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.playerID)
	if !ok {
		return nil, nil, false
	}
	return pc, pos, true
}

// Update 每帧更新自机
//
// 入场动画期间不处理任何输入；动画结束的那一帧给予短暂无敌并直接返回。
func (s *PlayerSystem) Update(in game.InputState) {
	pc, pos, ok := s.Player()
	if !ok {
		return
	}

	if pc.Entering {
		s.updateEntry(pc, pos)
		// 入场期间松开炸弹键也要记录，避免入场结束后误触发
		pc.BombLatch = in.Bomb
		return
	}

	pc.Focused = in.Focus
	speed := pc.Speed
	if in.Focus {
		speed = pc.SlowSpeed
	}

	if in.Left {
		pos.X -= speed
	}
	if in.Right {
		pos.X += speed
	}
	if in.Up {
		pos.Y -= speed
	}
	if in.Down {
		pos.Y += speed
	}
	w, h := s.profile.Canvas.Width, s.profile.Canvas.Height
	pos.X = utils.Clamp(pos.X, pc.Width/2, w-pc.Width/2)
	pos.Y = utils.Clamp(pos.Y, pc.Height/2, h-pc.Height/2)

	if pc.ShootCooldown > 0 {
		pc.ShootCooldown--
	}
	if in.Fire && pc.ShootCooldown == 0 {
		s.shoot(pos)
		pc.ShootCooldown = pc.FireCooldown
	}

	if in.Bomb && !pc.BombLatch && s.gs.Bombs > 0 {
		s.UseBomb()
	}
	pc.BombLatch = in.Bomb

	if pc.Invulnerable > 0 {
		pc.Invulnerable--
	}
}

func (s *PlayerSystem) updateEntry(pc *components.PlayerComponent, pos *components.PositionComponent) {
	if pos.Y > pc.EntryTargetY {
		pos.Y -= pc.EntrySpeed
	}
	if pos.Y <= pc.EntryTargetY {
		pos.Y = pc.EntryTargetY
		pc.Entering = false
		pc.Invulnerable = s.profile.Player.EntryGrace
		log.Printf("[PlayerSystem] Entry finished at y=%.1f, grace %d frames", pos.Y, pc.Invulnerable)
	}
}

func (s *PlayerSystem) shoot(pos *components.PositionComponent) {
	pcfg := s.profile.Player
	entities.NewPlayerBullet(s.em, s.playerID, pos.X, pos.Y+pcfg.BulletOffsetY, pcfg)
	s.events.Emit(game.EventPlayerShot)
}

// UseBomb 使用炸弹
//
// 消去全部敌弹和除首领外的全部敌人，给予无敌时间并放出白色粒子。
// 没有炸弹时什么也不做。
func (s *PlayerSystem) UseBomb() {
	if !s.gs.ConsumeBomb() {
		return
	}

	for _, id := range ecs.GetEntitiesWith1[*components.EnemyBulletComponent](s.em) {
		s.em.DestroyEntity(id)
	}
	cleared := 0
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](s.em) {
		if isBoss(s.em, id) {
			continue
		}
		s.em.DestroyEntity(id)
		cleared++
	}

	pc, pos, ok := s.Player()
	if ok {
		pc.Invulnerable = s.profile.Player.BombInvulnerability
		for i := 0; i < s.profile.Player.BombParticles; i++ {
			entities.NewParticle(s.em,
				pos.X+s.rng.Float64()*2*bombParticleSpread-bombParticleSpread,
				pos.Y+s.rng.Float64()*2*bombParticleSpread-bombParticleSpread,
				s.rng.Float64()*2*math.Pi,
				s.rng.Float64()*5+2,
				entities.ColorBombSpark,
				bombParticleLife,
			)
		}
	}

	s.events.Emit(game.EventBomb)
	log.Printf("[PlayerSystem] Bomb used: cleared %d enemies, %d bombs left", cleared, s.gs.Bombs)
}

// Hit 自机被弹
//
// 无敌中或残机已为 0 时无效；否则扣除一条残机，给予无敌时间，
// 并从画面下方重新入场。残机归零时进入 GameOver。
func (s *PlayerSystem) Hit() {
	pc, pos, ok := s.Player()
	if !ok || pc.Invulnerable > 0 || s.gs.Lives <= 0 {
		return
	}

	gameOver := s.gs.LoseLife()
	pc.Invulnerable = s.profile.Player.HitInvulnerability
	pos.X = s.profile.Canvas.Width / 2
	pos.Y = pc.EntryStartY
	pc.Entering = true

	s.events.Emit(game.EventPlayerHit)
	log.Printf("[PlayerSystem] Player hit, %d lives left", s.gs.Lives)
	if gameOver {
		s.events.Emit(game.EventGameOver)
	}
}

// StartEntry 把自机移到画面下方外侧并开始入场动画
func (s *PlayerSystem) StartEntry() {
	pc, pos, ok := s.Player()
	if !ok {
		return
	}
	pos.X = s.profile.Canvas.Width / 2
	pos.Y = pc.EntryStartY
	pc.Entering = true
}

// IsInvulnerable 自机当前是否无敌
func (s *PlayerSystem) IsInvulnerable() bool {
	pc, _, ok := s.Player()
	return ok && pc.Invulnerable > 0
}

func isBoss(em *ecs.EntityManager, id ecs.EntityID) bool {
	ec, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
	return ok && ec.Kind == types.EnemyBoss
}
