package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/decker502/danmaku/pkg/embedded"
	"github.com/decker502/danmaku/pkg/types"
	"gopkg.in/yaml.v3"
)

// 内置配置档名称
const (
	ProfileExtended = "extended"
	ProfileClassic  = "classic"

	// DefaultProfile 未指定时使用的配置档
	DefaultProfile = ProfileExtended
)

// Boss 出现策略
const (
	// BossPolicyThreshold 在 frame == Frame 时触发一次
	BossPolicyThreshold = "threshold"
	// BossPolicyCadence 每 Frame 帧检查一次
	BossPolicyCadence = "cadence"
)

// 发射器类型
const (
	EmitterRing   = "ring"
	EmitterSpread = "spread"
	EmitterCross  = "cross"
	EmitterAimed  = "aimed"
	EmitterScript = "script"
)

// GameProfile 一套完整的游戏调校参数
// 所有数值单位为像素与帧（60 帧/秒）
type GameProfile struct {
	Name     string         `yaml:"name"`
	Canvas   CanvasConfig   `yaml:"canvas"`
	Player   PlayerConfig   `yaml:"player"`
	Enemies  EnemiesConfig  `yaml:"enemies"`
	Spawn    SpawnConfig    `yaml:"spawn"`
	Dialogue DialogueConfig `yaml:"dialogue"`
	Audio    AudioConfig    `yaml:"audio"`
	Visual   VisualConfig   `yaml:"visual"`
}

// CanvasConfig 游戏画布尺寸
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig 自机参数
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	SlowSpeed    float64 `yaml:"slowSpeed"`
	HitboxRadius float64 `yaml:"hitboxRadius"`

	FireCooldown  int     `yaml:"fireCooldown"`
	BulletSpeed   float64 `yaml:"bulletSpeed"`
	BulletWidth   float64 `yaml:"bulletWidth"`
	BulletHeight  float64 `yaml:"bulletHeight"`
	BulletOffsetY float64 `yaml:"bulletOffsetY"` // 子弹生成位置相对自机中心的 Y 偏移
	BulletMinY    float64 `yaml:"bulletMinY"`    // y ≤ 此值时移除

	// 入场动画：起点 = 画布高 + EntryStartOffset，终点 = 画布高 - EntryTargetOffset
	EntrySpeed        float64 `yaml:"entrySpeed"`
	EntryStartOffset  float64 `yaml:"entryStartOffset"`
	EntryTargetOffset float64 `yaml:"entryTargetOffset"`
	EntryGrace        int     `yaml:"entryGrace"`

	HitInvulnerability  int `yaml:"hitInvulnerability"`
	BombInvulnerability int `yaml:"bombInvulnerability"`

	Lives int `yaml:"lives"`
	Bombs int `yaml:"bombs"`

	BombParticles int `yaml:"bombParticles"`
}

// EntryStartY 入场动画起点
func (p PlayerConfig) EntryStartY(canvasHeight float64) float64 {
	return canvasHeight + p.EntryStartOffset
}

// EntryTargetY 入场动画终点
func (p PlayerConfig) EntryTargetY(canvasHeight float64) float64 {
	return canvasHeight - p.EntryTargetOffset
}

// EnemiesConfig 敌人参数
type EnemiesConfig struct {
	Basic BasicEnemyConfig `yaml:"basic"`
	Boss  BossConfig       `yaml:"boss"`
	// RemoveMargin 敌人 y ≥ 画布高 + RemoveMargin 时移除
	RemoveMargin float64 `yaml:"removeMargin"`
	// BulletMargin 敌弹离开画布超过此距离时移除
	BulletMargin float64 `yaml:"bulletMargin"`
}

// CooldownConfig 随难度等级缩短的冷却：max(Min, Base - PerLevel*level)
type CooldownConfig struct {
	Base     int `yaml:"base"`
	PerLevel int `yaml:"perLevel"`
	Min      int `yaml:"min"`
}

// At 返回指定难度等级下的冷却帧数
func (c CooldownConfig) At(level int) int {
	v := c.Base - c.PerLevel*level
	if v < c.Min {
		v = c.Min
	}
	return v
}

// BasicEnemyConfig 杂兵参数
type BasicEnemyConfig struct {
	Width     float64         `yaml:"width"`
	Height    float64         `yaml:"height"`
	HP        int             `yaml:"hp"`
	Speed     float64         `yaml:"speed"`
	PhaseStep float64         `yaml:"phaseStep"`
	Sway      float64         `yaml:"sway"`
	Cooldown  CooldownConfig  `yaml:"cooldown"`
	Emitters  []EmitterConfig `yaml:"emitters"`
}

// BossConfig 首领参数
type BossConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	HP            int     `yaml:"hp"`
	Speed         float64 `yaml:"speed"`
	PhaseStep     float64 `yaml:"phaseStep"`
	SwayAmplitude float64 `yaml:"swayAmplitude"`
	DescendUntil  float64 `yaml:"descendUntil"`
	SpawnY        float64 `yaml:"spawnY"`

	// PhaseThresholds 生命比例严格大于 thresholds[i] 时处于阶段 i
	// 例如 [0.66, 0.33]：>0.66 → 0，>0.33 → 1，其余 → 2
	PhaseThresholds []float64     `yaml:"phaseThresholds"`
	Phases          []PhaseConfig `yaml:"phases"`
}

// PhaseConfig 首领单个攻击阶段
type PhaseConfig struct {
	Cooldown int             `yaml:"cooldown"`
	Emitters []EmitterConfig `yaml:"emitters"`
}

// EmitterConfig 一个弹幕发射器
//
// 角度单位：AngleDeg/StepDeg 为角度制，Spin 为弧度/帧。
//   - ring:   Count 发均匀分布，整体旋转 frame*Spin，起始半径 Radius
//   - spread: Count 发以 AngleDeg 为中心、间隔 StepDeg 的扇形
//   - cross:  Count 发从 AngleDeg 起、间隔 StepDeg
//   - aimed:  以发射点指向自机的方向为中心的扇形
//   - script: 由 tengo 脚本计算弹道
type EmitterConfig struct {
	Kind     string  `yaml:"kind"`
	Count    int     `yaml:"count"`
	Speed    float64 `yaml:"speed"`
	AngleDeg float64 `yaml:"angleDeg"`
	StepDeg  float64 `yaml:"stepDeg"`
	Spin     float64 `yaml:"spin"`
	Radius   float64 `yaml:"radius"`
	OffsetY  float64 `yaml:"offsetY"`
	Pattern  string  `yaml:"pattern"`
	Script   string  `yaml:"script"` // kind=script 时的脚本路径
}

// BulletPattern 解析后的弹型
func (e EmitterConfig) BulletPattern() types.BulletPattern {
	p, err := types.ParseBulletPattern(e.Pattern)
	if err != nil {
		return types.BulletNormal
	}
	return p
}

// SpawnConfig 出怪节奏
type SpawnConfig struct {
	// LevelFrames 难度等级 = floor(frame / LevelFrames)
	LevelFrames int         `yaml:"levelFrames"`
	Top         SpawnRule   `yaml:"top"`
	Side        SpawnRule   `yaml:"side"`
	Pair        SpawnRule   `yaml:"pair"`
	Boss        BossTrigger `yaml:"boss"`
}

// SpawnRule 一条周期性出怪规则
// 间隔 = max(Min, Interval - PerLevel*level)；Interval 为 0 表示禁用
type SpawnRule struct {
	Interval   int `yaml:"interval"`
	PerLevel   int `yaml:"perLevel"`
	Min        int `yaml:"min"`
	MinLevel   int `yaml:"minLevel"`   // 难度等级达到后才生效
	AfterFrame int `yaml:"afterFrame"` // frame 严格大于此值后才生效
	Count      int `yaml:"count"`      // 一次生成的数量（pair 规则）

	// YMin/YRange 侧面出怪的 y 范围 [YMin, YMin+YRange)
	YMin   float64 `yaml:"yMin"`
	YRange float64 `yaml:"yRange"`
}

// Enabled 规则是否启用
func (r SpawnRule) Enabled() bool {
	return r.Interval > 0
}

// IntervalAt 返回指定难度等级下的出怪间隔
func (r SpawnRule) IntervalAt(level int) int {
	v := r.Interval - r.PerLevel*level
	if v < r.Min {
		v = r.Min
	}
	if v < 1 {
		v = 1
	}
	return v
}

// BossTrigger Boss 出现条件
type BossTrigger struct {
	Policy string `yaml:"policy"`
	Frame  int    `yaml:"frame"`
}

// DialogueConfig 对话参数
type DialogueConfig struct {
	Script      string  `yaml:"script"`      // 对话脚本路径
	CharDelayMs float64 `yaml:"charDelayMs"` // 打字机每字间隔（毫秒）
}

// CharDelay 每字间隔（秒）
func (d DialogueConfig) CharDelay() float64 {
	return d.CharDelayMs / 1000
}

// AudioConfig 音频参数
type AudioConfig struct {
	BGM       string  `yaml:"bgm"`
	BGMVolume float64 `yaml:"bgmVolume"`
	// SFX 事件名到音效文件的映射，例如 player_hit: sounds/hit.ogg
	SFX map[string]string `yaml:"sfx"`
}

// VisualConfig 渲染参数（不影响模拟）
type VisualConfig struct {
	Stars          int     `yaml:"stars"`
	PlayerShot     string  `yaml:"playerShot"` // "petal" 或 "bar"
	PlayerImage    string  `yaml:"playerImage"`
	BossImage      string  `yaml:"bossImage"`
	EnemyImage     string  `yaml:"enemyImage"`
	Background     string  `yaml:"background"`
	BackgroundFall float64 `yaml:"backgroundFall"`
}

// ReadDataFile 读取数据文件
// 磁盘上的文件优先（便于热重载时修改），不存在时对 "data/" 开头的路径退回嵌入文件系统
func ReadDataFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return data, nil
	}
	if strings.HasPrefix(strings.TrimPrefix(path, "./"), "data/") && embedded.IsInitialized() {
		if data, embErr := embedded.ReadFile(strings.TrimPrefix(path, "./")); embErr == nil {
			return data, nil
		}
	}
	return nil, err
}

// ProfilePath 返回内置配置档的路径
func ProfilePath(name string) string {
	return "data/profiles/" + name + ".yaml"
}

// LoadProfile 加载配置档
// nameOrPath 可以是内置配置档名称（extended/classic）或 YAML 文件路径
func LoadProfile(nameOrPath string) (*GameProfile, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultProfile
	}
	path := nameOrPath
	if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
		path = ProfilePath(nameOrPath)
	}

	data, err := ReadDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	profile, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return profile, nil
}

// ParseProfile 解析并校验 YAML 配置档
func ParseProfile(data []byte) (*GameProfile, error) {
	var profile GameProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	applyProfileDefaults(&profile)

	if err := validateProfile(&profile); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &profile, nil
}

// applyProfileDefaults 填充可省略字段
func applyProfileDefaults(p *GameProfile) {
	if p.Enemies.RemoveMargin == 0 {
		p.Enemies.RemoveMargin = 50
	}
	if p.Enemies.BulletMargin == 0 {
		p.Enemies.BulletMargin = 20
	}
	if p.Spawn.LevelFrames == 0 {
		p.Spawn.LevelFrames = 600
	}
	if len(p.Enemies.Boss.PhaseThresholds) == 0 {
		p.Enemies.Boss.PhaseThresholds = []float64{0.66, 0.33}
	}
	if p.Dialogue.CharDelayMs == 0 {
		p.Dialogue.CharDelayMs = 30
	}
	if p.Spawn.Pair.Count == 0 && p.Spawn.Pair.Enabled() {
		p.Spawn.Pair.Count = 2
	}
	if p.Visual.Stars == 0 {
		p.Visual.Stars = 50
	}
}

// validateProfile 验证配置的有效性
func validateProfile(p *GameProfile) error {
	if p.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if p.Canvas.Width <= 0 || p.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %vx%v", p.Canvas.Width, p.Canvas.Height)
	}

	pl := p.Player
	if pl.Speed <= 0 || pl.SlowSpeed <= 0 {
		return fmt.Errorf("player speeds must be positive")
	}
	if pl.HitboxRadius <= 0 {
		return fmt.Errorf("player.hitboxRadius must be positive, got %v", pl.HitboxRadius)
	}
	if pl.FireCooldown < 1 {
		return fmt.Errorf("player.fireCooldown must be >= 1, got %d", pl.FireCooldown)
	}
	if pl.EntrySpeed <= 0 {
		return fmt.Errorf("player.entrySpeed must be positive, got %v", pl.EntrySpeed)
	}
	if pl.Lives < 1 {
		return fmt.Errorf("player.lives must be >= 1, got %d", pl.Lives)
	}
	if pl.Bombs < 0 {
		return fmt.Errorf("player.bombs must be >= 0, got %d", pl.Bombs)
	}

	b := p.Enemies.Basic
	if b.HP < 1 {
		return fmt.Errorf("enemies.basic.hp must be >= 1, got %d", b.HP)
	}
	if b.Cooldown.Base < 1 || b.Cooldown.Min < 1 {
		return fmt.Errorf("enemies.basic.cooldown base/min must be >= 1")
	}
	for i, e := range b.Emitters {
		if err := validateEmitter(e); err != nil {
			return fmt.Errorf("enemies.basic.emitters[%d]: %w", i, err)
		}
	}

	boss := p.Enemies.Boss
	if boss.HP < 1 {
		return fmt.Errorf("enemies.boss.hp must be >= 1, got %d", boss.HP)
	}
	if len(boss.Phases) == 0 {
		return fmt.Errorf("enemies.boss.phases cannot be empty")
	}
	for i := 1; i < len(boss.PhaseThresholds); i++ {
		if boss.PhaseThresholds[i] >= boss.PhaseThresholds[i-1] {
			return fmt.Errorf("enemies.boss.phaseThresholds must be strictly decreasing, got %v", boss.PhaseThresholds)
		}
	}
	for i, ph := range boss.Phases {
		if ph.Cooldown < 1 {
			return fmt.Errorf("enemies.boss.phases[%d].cooldown must be >= 1, got %d", i, ph.Cooldown)
		}
		for j, e := range ph.Emitters {
			if err := validateEmitter(e); err != nil {
				return fmt.Errorf("enemies.boss.phases[%d].emitters[%d]: %w", i, j, err)
			}
		}
	}

	switch p.Spawn.Boss.Policy {
	case BossPolicyThreshold, BossPolicyCadence:
	default:
		return fmt.Errorf("spawn.boss.policy must be %q or %q, got %q", BossPolicyThreshold, BossPolicyCadence, p.Spawn.Boss.Policy)
	}
	if p.Spawn.Boss.Frame < 1 {
		return fmt.Errorf("spawn.boss.frame must be >= 1, got %d", p.Spawn.Boss.Frame)
	}
	if !p.Spawn.Top.Enabled() {
		return fmt.Errorf("spawn.top.interval must be >= 1")
	}

	if p.Dialogue.CharDelayMs < 0 {
		return fmt.Errorf("dialogue.charDelayMs must be >= 0, got %v", p.Dialogue.CharDelayMs)
	}
	if p.Audio.BGMVolume < 0 || p.Audio.BGMVolume > 1 {
		return fmt.Errorf("audio.bgmVolume must be in [0, 1], got %v", p.Audio.BGMVolume)
	}

	return nil
}

func validateEmitter(e EmitterConfig) error {
	switch e.Kind {
	case EmitterRing, EmitterSpread, EmitterCross, EmitterAimed:
		if e.Count < 1 {
			return fmt.Errorf("%s emitter count must be >= 1, got %d", e.Kind, e.Count)
		}
		if e.Speed <= 0 {
			return fmt.Errorf("%s emitter speed must be positive, got %v", e.Kind, e.Speed)
		}
	case EmitterScript:
		if e.Script == "" {
			return fmt.Errorf("script emitter requires a script path")
		}
	default:
		return fmt.Errorf("unknown emitter kind %q", e.Kind)
	}
	if _, err := types.ParseBulletPattern(e.Pattern); err != nil {
		return err
	}
	return nil
}
