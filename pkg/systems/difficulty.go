package systems

import (
	"math/rand"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/types"
)

// Random 系统使用的随机数源
// *rand.Rand 满足此接口；测试中可以注入固定序列
type Random interface {
	Float64() float64
}

// NewRandom 创建以 seed 初始化的随机数源
func NewRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DifficultyEngine 难度引擎
// 根据帧数计算难度等级，并给出当前等级下的出怪间隔和射击冷却
type DifficultyEngine struct {
	profile *config.GameProfile
}

// NewDifficultyEngine 创建新的难度引擎实例
func NewDifficultyEngine(profile *config.GameProfile) *DifficultyEngine {
	return &DifficultyEngine{profile: profile}
}

// Level 难度等级 = floor(frame / levelFrames)
func (d *DifficultyEngine) Level(frame int) int {
	lf := d.profile.Spawn.LevelFrames
	if lf <= 0 || frame < 0 {
		return 0
	}
	return frame / lf
}

// EnemyCooldown 敌人开火后的冷却帧数
//
// 杂兵：max(min, base - perLevel*level)
// 首领：由当前攻击阶段决定，阶段超出配置范围时使用最后一个阶段
func (d *DifficultyEngine) EnemyCooldown(kind types.EnemyKind, attackPhase, frame int) int {
	switch kind {
	case types.EnemyBoss:
		phases := d.profile.Enemies.Boss.Phases
		return phases[clampPhase(attackPhase, len(phases))].Cooldown
	default:
		return d.profile.Enemies.Basic.Cooldown.At(d.Level(frame))
	}
}

// PhaseForRatio 根据生命比例计算首领攻击阶段
//
// thresholds 严格递减；比例严格大于 thresholds[i] 时返回 i，
// 都不满足时返回 len(thresholds)。
// 例如 [0.66, 0.33]：0.7 → 0，0.5 → 1，0.2 → 2，0.66 → 1，0.33 → 2。
func PhaseForRatio(ratio float64, thresholds []float64) int {
	for i, t := range thresholds {
		if ratio > t {
			return i
		}
	}
	return len(thresholds)
}

func clampPhase(phase, n int) int {
	if phase < 0 {
		return 0
	}
	if phase >= n {
		return n - 1
	}
	return phase
}
