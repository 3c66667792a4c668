package systems

import (
	"log"
	"math"

	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/entities"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/types"
)

// 受伤与击破特效参数
const (
	hitSparkSpeed     = 3.0
	hitSparkLife      = 20
	deathBurstCount   = 10
	deathBurstLife    = 30
	deathBurstSpread  = 10.0
	deathBurstMinSpd  = 1.0
	deathBurstRandSpd = 3.0
)

// TakeDamage 对敌人造成伤害
//
// 每次受伤放出一个黄色火花；生命值降到 0 以下时加分、放出爆炸粒子并返回 true。
// 实体的删除由调用方负责。对不存在或已被标记删除的实体无效并返回 false。
func (s *EnemySystem) TakeDamage(id ecs.EntityID, amount int) bool {
	if !s.em.IsAlive(id) {
		return false
	}
	ec, ok := ecs.GetComponent[*components.EnemyComponent](s.em, id)
	if !ok {
		return false
	}
	hp, ok := ecs.GetComponent[*components.HealthComponent](s.em, id)
	if !ok {
		return false
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, id)
	if !ok {
		return false
	}

	hp.CurrentHealth -= amount
	entities.NewParticle(s.em, pos.X, pos.Y, s.rng.Float64()*2*math.Pi, hitSparkSpeed, entities.ColorHitSpark, hitSparkLife)
	s.events.Emit(game.EventEnemyHit)

	if hp.CurrentHealth > 0 {
		return false
	}

	s.gs.AddScore(ec.Kind.KillScore())

	burst := entities.ColorBasicDeath
	if ec.Kind == types.EnemyBoss {
		burst = entities.ColorBossDeath
	}
	for i := 0; i < deathBurstCount; i++ {
		entities.NewParticle(s.em,
			pos.X+s.rng.Float64()*2*deathBurstSpread-deathBurstSpread,
			pos.Y+s.rng.Float64()*2*deathBurstSpread-deathBurstSpread,
			s.rng.Float64()*2*math.Pi,
			s.rng.Float64()*deathBurstRandSpd+deathBurstMinSpd,
			burst,
			deathBurstLife,
		)
	}

	if ec.Kind == types.EnemyBoss {
		s.events.Emit(game.EventBossDestroyed)
		log.Printf("[EnemySystem] Boss destroyed at frame %d, score %d", s.gs.FrameCount, s.gs.Score)
	} else {
		s.events.Emit(game.EventEnemyDestroyed)
	}
	return true
}
