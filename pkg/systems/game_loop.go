package systems

import (
	"fmt"
	"log"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/entities"
	"github.com/decker502/danmaku/pkg/game"
)

// TickSeconds 一帧的时长（60 TPS）
const TickSeconds = 1.0 / 60.0

// Options GameLoop 的可选参数
type Options struct {
	// Seed 随机数种子；相同种子与相同输入序列得到相同的结果
	Seed int64
	// Audio 背景音乐控制，nil 时静音
	Audio game.AudioController
	// Dialogue 首领对话脚本，nil 时从 profile.Dialogue.Script 加载
	Dialogue *config.DialogueScript
	// ProfileSource 配置档名称或路径，热重载时重新读取
	ProfileSource string
	// Watcher 配置目录监听器，nil 时不热重载
	Watcher *config.Watcher
	// OnProfile 每次配置档生效（创建时和重置时应用新配置档）后调用
	OnProfile func(*config.GameProfile)
}

// Stats 一局内的累计统计（由事件汇总）
type Stats struct {
	Shots          int `yaml:"shots"`
	PlayerHits     int `yaml:"playerHits"`
	EnemyHits      int `yaml:"enemyHits"`
	EnemiesKilled  int `yaml:"enemiesKilled"`
	BossesSpawned  int `yaml:"bossesSpawned"`
	BossesKilled   int `yaml:"bossesKilled"`
	BombsUsed      int `yaml:"bombsUsed"`
	DialoguesShown int `yaml:"dialoguesShown"`
}

func (s *Stats) record(events []game.EventKind) {
	for _, e := range events {
		switch e {
		case game.EventPlayerShot:
			s.Shots++
		case game.EventPlayerHit:
			s.PlayerHits++
		case game.EventEnemyHit:
			s.EnemyHits++
		case game.EventEnemyDestroyed:
			s.EnemiesKilled++
		case game.EventBossSpawned:
			s.BossesSpawned++
		case game.EventBossDestroyed:
			s.BossesKilled++
		case game.EventBomb:
			s.BombsUsed++
		case game.EventDialogueStarted:
			s.DialoguesShown++
		}
	}
}

// GameLoop 游戏主循环（无渲染）
//
// 持有世界（EntityManager）和 GameState，每次 Tick 按固定顺序驱动各系统：
// 背景 → 模式判断 → 帧数+1 → 自机 → 敌人 → 敌弹 → 自机子弹 → 粒子 → 出怪 → 碰撞 → 删除实体。
// Ebitengine 场景、终端前端和模拟器共用同一个 GameLoop。
type GameLoop struct {
	em      *ecs.EntityManager
	gs      *game.GameState
	profile *config.GameProfile
	events  *game.EventLog
	rng     Random
	audio   game.AudioController

	script        *config.DialogueScript
	explicitLines bool
	source        string
	watcher       *config.Watcher
	pending       *config.GameProfile
	onProfile     func(*config.GameProfile)

	difficulty *DifficultyEngine
	attacks    *AttackPatternEngine
	background *BackgroundSystem
	player     *PlayerSystem
	enemies    *EnemySystem
	bullets    *BulletSystem
	particles  *ParticleSystem
	dialogue   *DialogueSystem
	spawner    *SpawnDirector
	collision  *CollisionSystem

	prevInput game.InputState
	stats     Stats
}

// NewGameLoop 创建游戏循环，初始处于标题画面（NotStarted）
// 弹幕脚本编译失败、对话脚本无法读取等配置错误在这里返回
func NewGameLoop(profile *config.GameProfile, opts Options) (*GameLoop, error) {
	if profile == nil {
		return nil, fmt.Errorf("profile cannot be nil")
	}

	gl := &GameLoop{
		em:            ecs.NewEntityManager(),
		events:        &game.EventLog{},
		rng:           NewRandom(opts.Seed),
		audio:         opts.Audio,
		script:        opts.Dialogue,
		explicitLines: opts.Dialogue != nil,
		source:        opts.ProfileSource,
		watcher:       opts.Watcher,
		onProfile:     opts.OnProfile,
	}
	if gl.audio == nil {
		gl.audio = game.NopAudio{}
	}

	if err := gl.build(profile); err != nil {
		return nil, err
	}
	gl.background.SpawnStars()

	log.Printf("[GameLoop] Created with profile %q (seed %d)", profile.Name, opts.Seed)
	return gl, nil
}

// build 按配置档构建全部系统
func (gl *GameLoop) build(profile *config.GameProfile) error {
	script := gl.script
	if !gl.explicitLines {
		var err error
		script, err = loadDialogue(profile)
		if err != nil {
			return err
		}
	}

	attacks, err := NewAttackPatternEngine(gl.em, profile)
	if err != nil {
		return fmt.Errorf("failed to build attack patterns: %w", err)
	}

	gl.profile = profile
	gl.script = script
	gl.gs = game.NewGameState(profile.Player.Lives, profile.Player.Bombs)
	gl.difficulty = NewDifficultyEngine(profile)
	gl.attacks = attacks
	gl.background = NewBackgroundSystem(gl.em, profile, gl.rng)
	gl.player = NewPlayerSystem(gl.em, gl.gs, profile, gl.events, gl.rng)
	gl.enemies = NewEnemySystem(gl.em, gl.gs, profile, gl.events, gl.rng, attacks, gl.difficulty, gl.player)
	gl.bullets = NewBulletSystem(gl.em, profile)
	gl.particles = NewParticleSystem(gl.em)
	gl.dialogue = NewDialogueSystem(gl.em, gl.gs, profile, gl.events, gl.rng, script)
	gl.spawner = NewSpawnDirector(gl.em, gl.gs, profile, gl.rng, gl.difficulty, gl.dialogue, entities.LinesFromScript(script))
	gl.collision = NewCollisionSystem(gl.em, gl.enemies, gl.player)

	if gl.onProfile != nil {
		gl.onProfile(profile)
	}
	return nil
}

func loadDialogue(profile *config.GameProfile) (*config.DialogueScript, error) {
	if profile.Dialogue.Script == "" {
		return config.DefaultDialogueScript(), nil
	}
	script, err := config.LoadDialogueScript(profile.Dialogue.Script)
	if err != nil {
		return nil, fmt.Errorf("failed to load dialogue script: %w", err)
	}
	return script, nil
}

// Start 从标题画面开始游戏：自机入场并播放背景音乐
func (gl *GameLoop) Start() {
	if gl.gs.Mode != game.ModeNotStarted {
		return
	}
	gl.gs.Reset()
	gl.player.StartEntry()
	gl.audio.PlayBGM()
	log.Printf("[GameLoop] Game started")
}

// ResetGame 重新开始一局
//
// 清空世界，分数、残机、炸弹和帧数恢复初始值，进入 Running 并开始自机入场。
// 热重载得到的新配置档在这里生效。
func (gl *GameLoop) ResetGame() {
	gl.em.Clear()
	gl.dialogue.Reset()

	if gl.pending != nil {
		next := gl.pending
		gl.pending = nil
		if err := gl.build(next); err != nil {
			log.Printf("[GameLoop] Warning: reloaded profile rejected: %v", err)
			gl.player.Respawn()
		} else {
			log.Printf("[GameLoop] Applied reloaded profile %q", next.Name)
		}
	} else {
		gl.player.Respawn()
	}

	gl.background.SpawnStars()
	gl.gs.Reset()
	gl.player.StartEntry()
	gl.stats = Stats{}
	gl.audio.PlayBGM()
	log.Printf("[GameLoop] Game reset")
}

// Tick 推进一帧
//
// 参数:
//   - in: 本帧输入快照
//   - dt: 本帧时长（秒），只用于对话打字机
func (gl *GameLoop) Tick(in game.InputState, dt float64) {
	gl.events.Clear()
	gl.pollReload()

	confirm := in.Confirm && !gl.prevInput.Confirm
	advance := in.Advance && !gl.prevInput.Advance
	gl.prevInput = in

	gl.background.Update()

	switch gl.gs.Mode {
	case game.ModeNotStarted:
		if confirm {
			gl.Start()
		}
	case game.ModeGameOver:
		if confirm {
			gl.ResetGame()
		}
	case game.ModeDialogue:
		gl.dialogue.Update(dt)
		if advance {
			gl.dialogue.Advance()
		}
	case game.ModeRunning:
		gl.gs.FrameCount++
		gl.player.Update(in)
		gl.enemies.Update()
		gl.bullets.UpdateEnemyBullets()
		gl.bullets.UpdatePlayerBullets()
		gl.particles.Update()
		gl.spawner.Update()
		gl.collision.Update()
	}

	gl.em.RemoveMarkedEntities()
	gl.stats.record(gl.events.Events())
}

// pollReload 取出配置目录的变化并尝试重新加载配置档
func (gl *GameLoop) pollReload() {
	if gl.watcher == nil {
		return
	}
	changed := gl.watcher.Drain()
	if len(changed) == 0 {
		return
	}

	source := gl.source
	if source == "" {
		source = gl.profile.Name
	}
	profile, err := config.LoadProfile(source)
	if err != nil {
		log.Printf("[GameLoop] Warning: reload of %s failed: %v", source, err)
		return
	}
	gl.pending = profile
	log.Printf("[GameLoop] Profile %q reloaded (%d files changed), applies on next reset", profile.Name, len(changed))
}

// Snapshot 当前帧的只读快照
func (gl *GameLoop) Snapshot() Snapshot {
	snap := buildSnapshot(gl.em, gl.player.PlayerID())
	snap.Frame = gl.gs.FrameCount
	snap.Mode = gl.gs.Mode
	snap.Level = gl.difficulty.Level(gl.gs.FrameCount)
	snap.Width = gl.profile.Canvas.Width
	snap.Height = gl.profile.Canvas.Height
	snap.BackgroundScrollY = gl.background.ScrollY
	snap.HUD = HUDView{Score: gl.gs.Score, Lives: gl.gs.Lives, Bombs: gl.gs.Bombs}
	snap.Dialogue = gl.dialogue.View()
	snap.Events = append([]game.EventKind(nil), gl.events.Events()...)
	return snap
}

// State 当前游戏状态（只读使用）
func (gl *GameLoop) State() *game.GameState {
	return gl.gs
}

// Profile 当前生效的配置档
func (gl *GameLoop) Profile() *config.GameProfile {
	return gl.profile
}

// Stats 本局累计统计
func (gl *GameLoop) Stats() Stats {
	return gl.stats
}

// World 实体管理器（测试和调试用）
func (gl *GameLoop) World() *ecs.EntityManager {
	return gl.em
}

// Player 自机系统
func (gl *GameLoop) Player() *PlayerSystem {
	return gl.player
}

// Enemies 敌人系统
func (gl *GameLoop) Enemies() *EnemySystem {
	return gl.enemies
}

// Dialogue 对话系统
func (gl *GameLoop) Dialogue() *DialogueSystem {
	return gl.dialogue
}

// HasPendingProfile 是否有等待下次重置时生效的新配置档
func (gl *GameLoop) HasPendingProfile() bool {
	return gl.pending != nil
}

// SetPendingProfile 指定下次重置时使用的配置档
func (gl *GameLoop) SetPendingProfile(p *config.GameProfile) {
	gl.pending = p
}

// PlayerPosition 自机位置（自动驾驶用）
func (gl *GameLoop) PlayerPosition() (x, y float64, ok bool) {
	_, pos, ok := gl.player.Player()
	if !ok {
		return 0, 0, false
	}
	return pos.X, pos.Y, true
}
