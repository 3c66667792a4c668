package systems

import (
	"fmt"
	"math"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/entities"
	"github.com/decker502/danmaku/pkg/types"
	"github.com/decker502/danmaku/pkg/utils"
)

// BulletSpec 一发待生成的敌弹
type BulletSpec struct {
	X, Y    float64
	VX, VY  float64
	Pattern types.BulletPattern
}

// EmitContext 发射时的环境
type EmitContext struct {
	X, Y  float64 // 射手中心
	Frame int

	PlayerX, PlayerY float64
	HasPlayer        bool
}

// AttackEmitter 弹幕发射器
// 每次开火调用一次 Emit，返回本次要生成的子弹
type AttackEmitter interface {
	Emit(ctx EmitContext) []BulletSpec
}

// RingEmitter 环形弹幕：Count 发均匀分布，整体随帧数旋转
type RingEmitter struct {
	Count   int
	Spin    float64 // 每帧旋转量（弧度）
	Radius  float64 // 起始半径
	Speed   float64
	OffsetY float64
	Pattern types.BulletPattern
}

// Emit 实现 AttackEmitter
func (e *RingEmitter) Emit(ctx EmitContext) []BulletSpec {
	out := make([]BulletSpec, 0, e.Count)
	step := 2 * math.Pi / float64(e.Count)
	for i := 0; i < e.Count; i++ {
		a := step*float64(i) + float64(ctx.Frame)*e.Spin
		cos, sin := math.Cos(a), math.Sin(a)
		out = append(out, BulletSpec{
			X:       ctx.X + cos*e.Radius,
			Y:       ctx.Y + sin*e.Radius + e.OffsetY,
			VX:      cos * e.Speed,
			VY:      sin * e.Speed,
			Pattern: e.Pattern,
		})
	}
	return out
}

// SpreadEmitter 扇形弹幕：以 Center 为中心、间隔 Step 对称展开
type SpreadEmitter struct {
	Count   int
	Center  float64 // 弧度
	Step    float64 // 弧度
	Speed   float64
	OffsetY float64
	Pattern types.BulletPattern
}

// Emit 实现 AttackEmitter
func (e *SpreadEmitter) Emit(ctx EmitContext) []BulletSpec {
	return fan(ctx.X, ctx.Y+e.OffsetY, e.Center, e.Step, e.Speed, e.Count, e.Pattern)
}

// CrossEmitter 从 Start 起每隔 Step 发射一发（Count=4、Step=π/2 即十字）
type CrossEmitter struct {
	Count   int
	Start   float64
	Step    float64
	Speed   float64
	OffsetY float64
	Pattern types.BulletPattern
}

// Emit 实现 AttackEmitter
func (e *CrossEmitter) Emit(ctx EmitContext) []BulletSpec {
	out := make([]BulletSpec, 0, e.Count)
	for i := 0; i < e.Count; i++ {
		v := utils.FromAngle(e.Start+e.Step*float64(i), e.Speed)
		out = append(out, BulletSpec{X: ctx.X, Y: ctx.Y + e.OffsetY, VX: v.X, VY: v.Y, Pattern: e.Pattern})
	}
	return out
}

// AimedEmitter 自机狙：以射手中心指向自机的方向为中心的扇形
// 没有自机时朝正下方
type AimedEmitter struct {
	Count   int
	Step    float64
	Speed   float64
	OffsetY float64
	Pattern types.BulletPattern
}

// Emit 实现 AttackEmitter
func (e *AimedEmitter) Emit(ctx EmitContext) []BulletSpec {
	center := math.Pi / 2
	if ctx.HasPlayer {
		center = utils.AngleTo(ctx.X, ctx.Y, ctx.PlayerX, ctx.PlayerY)
	}
	return fan(ctx.X, ctx.Y+e.OffsetY, center, e.Step, e.Speed, e.Count, e.Pattern)
}

// fan 以 center 为中心对称展开 count 发
func fan(x, y, center, step, speed float64, count int, pattern types.BulletPattern) []BulletSpec {
	out := make([]BulletSpec, 0, count)
	mid := float64(count-1) / 2
	for i := 0; i < count; i++ {
		v := utils.FromAngle(center+(float64(i)-mid)*step, speed)
		out = append(out, BulletSpec{X: x, Y: y, VX: v.X, VY: v.Y, Pattern: pattern})
	}
	return out
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}

// NewEmitter 根据配置创建发射器
func NewEmitter(cfg config.EmitterConfig) (AttackEmitter, error) {
	pattern, err := types.ParseBulletPattern(cfg.Pattern)
	if err != nil {
		return nil, err
	}

	switch cfg.Kind {
	case config.EmitterRing:
		return &RingEmitter{Count: cfg.Count, Spin: cfg.Spin, Radius: cfg.Radius, Speed: cfg.Speed, OffsetY: cfg.OffsetY, Pattern: pattern}, nil
	case config.EmitterSpread:
		return &SpreadEmitter{Count: cfg.Count, Center: degToRad(cfg.AngleDeg), Step: degToRad(cfg.StepDeg), Speed: cfg.Speed, OffsetY: cfg.OffsetY, Pattern: pattern}, nil
	case config.EmitterCross:
		return &CrossEmitter{Count: cfg.Count, Start: degToRad(cfg.AngleDeg), Step: degToRad(cfg.StepDeg), Speed: cfg.Speed, OffsetY: cfg.OffsetY, Pattern: pattern}, nil
	case config.EmitterAimed:
		return &AimedEmitter{Count: cfg.Count, Step: degToRad(cfg.StepDeg), Speed: cfg.Speed, OffsetY: cfg.OffsetY, Pattern: pattern}, nil
	case config.EmitterScript:
		return NewScriptEmitter(cfg)
	default:
		return nil, fmt.Errorf("unknown emitter kind %q", cfg.Kind)
	}
}

// AttackPatternEngine 根据敌人类型和攻击阶段选择发射器并生成子弹
type AttackPatternEngine struct {
	em         *ecs.EntityManager
	basic      []AttackEmitter
	bossPhases [][]AttackEmitter
}

// NewAttackPatternEngine 从配置档构建全部发射器
// 脚本编译失败等配置错误在这里返回，运行时不会再出错
func NewAttackPatternEngine(em *ecs.EntityManager, profile *config.GameProfile) (*AttackPatternEngine, error) {
	e := &AttackPatternEngine{em: em}

	for i, cfg := range profile.Enemies.Basic.Emitters {
		emitter, err := NewEmitter(cfg)
		if err != nil {
			return nil, fmt.Errorf("basic emitter %d: %w", i, err)
		}
		e.basic = append(e.basic, emitter)
	}

	for p, phase := range profile.Enemies.Boss.Phases {
		var list []AttackEmitter
		for i, cfg := range phase.Emitters {
			emitter, err := NewEmitter(cfg)
			if err != nil {
				return nil, fmt.Errorf("boss phase %d emitter %d: %w", p, i, err)
			}
			list = append(list, emitter)
		}
		e.bossPhases = append(e.bossPhases, list)
	}

	return e, nil
}

// Emitters 返回指定敌人类型、阶段的发射器
func (e *AttackPatternEngine) Emitters(kind types.EnemyKind, phase int) []AttackEmitter {
	if kind == types.EnemyBoss {
		if len(e.bossPhases) == 0 {
			return nil
		}
		return e.bossPhases[clampPhase(phase, len(e.bossPhases))]
	}
	return e.basic
}

// Plan 计算一次开火的全部子弹（不创建实体）
func (e *AttackPatternEngine) Plan(kind types.EnemyKind, phase int, ctx EmitContext) []BulletSpec {
	var specs []BulletSpec
	for _, emitter := range e.Emitters(kind, phase) {
		specs = append(specs, emitter.Emit(ctx)...)
	}
	return specs
}

// Fire 开火并创建子弹实体，返回生成的数量
func (e *AttackPatternEngine) Fire(kind types.EnemyKind, phase int, ctx EmitContext) int {
	specs := e.Plan(kind, phase, ctx)
	for _, s := range specs {
		entities.NewEnemyBullet(e.em, s.X, s.Y, s.VX, s.VY, s.Pattern)
	}
	return len(specs)
}
