package systems

import (
	"log"
	"math"

	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/entities"
	"github.com/decker502/danmaku/pkg/game"
)

// 出怪位置参数
const (
	topSpawnY      = -20.0
	topSpawnMargin = 20.0 // 顶部出怪 x ∈ [20, W-20)
	sideSpawnInset = 20.0 // 侧面出怪在画布外 20 像素
	pairSpawnShift = 20.0
)

// SpawnDirector 出怪导演
//
// 完全由帧数、场上敌人和注入的随机数源决定：
//   - 首领在场时不生成杂兵
//   - 顶部、侧面、成对三条周期规则，间隔随难度等级缩短
//   - 到达首领时机时开始对话，对话结束后才生成首领
type SpawnDirector struct {
	em         *ecs.EntityManager
	gs         *game.GameState
	profile    *config.GameProfile
	rng        Random
	difficulty *DifficultyEngine
	dialogue   *DialogueSystem
	bossLines  []components.DialogueLine
}

// NewSpawnDirector 创建出怪导演
//
// 参数:
//   - dialogue: 首领出现前的对话系统
//   - bossLines: 首领对话台词
func NewSpawnDirector(
	em *ecs.EntityManager,
	gs *game.GameState,
	profile *config.GameProfile,
	rng Random,
	difficulty *DifficultyEngine,
	dialogue *DialogueSystem,
	bossLines []components.DialogueLine,
) *SpawnDirector {
	return &SpawnDirector{
		em:         em,
		gs:         gs,
		profile:    profile,
		rng:        rng,
		difficulty: difficulty,
		dialogue:   dialogue,
		bossLines:  bossLines,
	}
}

// Update 根据当前帧数生成敌人或触发首领对话
func (d *SpawnDirector) Update() {
	frame := d.gs.FrameCount
	level := d.difficulty.Level(frame)
	bossAlive := BossAlive(d.em)
	spawn := d.profile.Spawn

	if !bossAlive {
		if rule := spawn.Top; d.due(rule, frame, level) {
			w := d.profile.Canvas.Width
			x := d.rng.Float64()*(w-2*topSpawnMargin) + topSpawnMargin
			d.spawnBasic(x, topSpawnY)
		}

		if rule := spawn.Side; d.due(rule, frame, level) {
			x := -sideSpawnInset
			if d.rng.Float64() >= 0.5 {
				x = d.profile.Canvas.Width + sideSpawnInset
			}
			y := rule.YMin + d.rng.Float64()*rule.YRange
			d.spawnBasic(x, y)
		}

		if rule := spawn.Pair; d.due(rule, frame, level) {
			w := d.profile.Canvas.Width
			for i := 0; i < rule.Count; i++ {
				x := w/float64(rule.Count+1)*float64(i+1) - pairSpawnShift
				d.spawnBasic(x, topSpawnY)
			}
		}
	}

	if d.bossDue(frame) && !d.gs.BossDialogueShown && !bossAlive {
		log.Printf("[SpawnDirector] Boss trigger at frame %d (level %d)", frame, level)
		d.dialogue.Start(d.bossLines)
	}
}

// due 规则在本帧是否触发
func (d *SpawnDirector) due(rule config.SpawnRule, frame, level int) bool {
	if !rule.Enabled() || level < rule.MinLevel || frame <= rule.AfterFrame {
		return false
	}
	return frame%rule.IntervalAt(level) == 0
}

// bossDue 首领时机
func (d *SpawnDirector) bossDue(frame int) bool {
	b := d.profile.Spawn.Boss
	switch b.Policy {
	case config.BossPolicyCadence:
		return frame > 0 && frame%b.Frame == 0
	default:
		return frame == b.Frame
	}
}

func (d *SpawnDirector) spawnBasic(x, y float64) ecs.EntityID {
	return entities.NewBasicEnemy(d.em, d.profile.Enemies.Basic, x, y, d.rng.Float64()*2*math.Pi)
}
