package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/resources"
	"github.com/decker502/danmaku/pkg/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// GameSceneOptions 创建 GameScene 所需的依赖
type GameSceneOptions struct {
	Profile       *config.GameProfile
	ProfileSource string // 热重载时重新读取的名称或路径
	Seed          int64
	Watcher       *config.Watcher // 可为 nil

	Resources *resources.ResourceManager
	Settings  *game.SettingsManager // 可为 nil（不保存设置）
	Input     game.InputSource      // nil 时使用默认键位
	FontPath  string                // 为空时使用内置位图字体
}

// sceneImages 当前配置档引用的图片，加载失败的为 nil（绘制程序化图形）
type sceneImages struct {
	player, enemy, boss, background *ebiten.Image
}

// GameScene 把 systems.GameLoop 接到 Ebitengine 上
//
// Update 采样一次键盘输入并推进一帧；Draw 只读取最近一次的快照。
// 标题和结算画面用 ebitenui 面板，其余内容用 vector 与 text/v2 绘制。
type GameScene struct {
	loop     *systems.GameLoop
	rm       *resources.ResourceManager
	audio    *resources.AudioManager
	settings *game.SettingsManager
	input    game.InputSource

	face     text.Face
	fontPath string
	images   sceneImages

	titleUI    *ebitenui.UI
	gameOverUI *ebitenui.UI
	resultText *widget.Text

	snap     systems.Snapshot
	lastMode game.Mode
	newBest  bool
	// ticks 场景自身的计数，对话中游戏帧数冻结时仍然递增
	ticks int
}

// NewGameScene 创建游戏场景，初始停在标题画面
func NewGameScene(opts GameSceneOptions) (*GameScene, error) {
	if opts.Profile == nil {
		return nil, fmt.Errorf("profile cannot be nil")
	}
	if opts.Resources == nil {
		opts.Resources = resources.NewResourceManager(nil, "")
	}

	s := &GameScene{
		rm:       opts.Resources,
		settings: opts.Settings,
		input:    opts.Input,
		fontPath: opts.FontPath,
	}
	if s.input == nil {
		s.input = NewKeyboardInput(DefaultKeyBindings())
	}
	s.audio = resources.NewAudioManager(s.rm, opts.Profile.Audio.BGM, opts.Profile.Audio.BGMVolume, s.settings)
	s.face = s.rm.FaceOrDefault(s.fontPath, 14)

	loop, err := systems.NewGameLoop(opts.Profile, systems.Options{
		Seed:          opts.Seed,
		Audio:         s.audio,
		ProfileSource: opts.ProfileSource,
		Watcher:       opts.Watcher,
		OnProfile:     s.applyProfile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game loop: %w", err)
	}
	s.loop = loop
	s.snap = loop.Snapshot()
	s.lastMode = s.snap.Mode

	s.titleUI = s.newTitleUI()
	s.gameOverUI, s.resultText = s.newGameOverUI()

	if s.settings != nil {
		s.settings.SetLastProfile(opts.Profile.Name)
	}
	log.Printf("[GameScene] Created with profile %q", opts.Profile.Name)
	return s, nil
}

// applyProfile 配置档生效时重新加载图片并切换背景音乐
func (s *GameScene) applyProfile(p *config.GameProfile) {
	s.images = sceneImages{
		player:     s.rm.ImageOrNil(p.Visual.PlayerImage),
		enemy:      s.rm.ImageOrNil(p.Visual.EnemyImage),
		boss:       s.rm.ImageOrNil(p.Visual.BossImage),
		background: s.rm.ImageOrNil(p.Visual.Background),
	}
	if s.audio != nil {
		s.audio.SetTrack(p.Audio.BGM, p.Audio.BGMVolume)
		s.audio.SetEffects(p.Audio.SFX)
	}
	if s.settings != nil {
		s.settings.SetLastProfile(p.Name)
	}
}

// Update 推进一帧
func (s *GameScene) Update(deltaTime float64) error {
	s.ticks++
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		enabled := s.audio.ToggleMusic()
		log.Printf("[GameScene] Music enabled: %v", enabled)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		enabled := s.audio.ToggleSound()
		log.Printf("[GameScene] Sound enabled: %v", enabled)
	}

	// 面板按钮可能直接开始或重置游戏，必须在 Tick 之前处理
	switch s.loop.State().Mode {
	case game.ModeNotStarted:
		s.titleUI.Update()
	case game.ModeGameOver:
		s.gameOverUI.Update()
	}

	s.loop.Tick(s.input.Poll(), deltaTime)
	s.snap = s.loop.Snapshot()
	for _, e := range s.snap.Events {
		s.audio.PlaySound(e)
	}

	if s.snap.Mode == game.ModeGameOver && s.lastMode != game.ModeGameOver {
		s.onGameOver()
	}
	s.lastMode = s.snap.Mode
	return nil
}

// onGameOver 记录最高分并刷新结算面板
func (s *GameScene) onGameOver() {
	score := s.snap.HUD.Score
	s.newBest = false
	if s.settings != nil {
		s.newBest = s.settings.RecordScore(score)
		if err := s.settings.Save(); err != nil {
			log.Printf("[GameScene] Warning: failed to save settings: %v", err)
		}
	}
	s.resultText.Label = resultLabel(score, s.newBest)
	log.Printf("[GameScene] Game over, score %d (new best: %v)", score, s.newBest)
}

// Draw 绘制当前快照
func (s *GameScene) Draw(screen *ebiten.Image) {
	snap := &s.snap

	s.drawBackground(screen, snap)
	s.drawParticles(screen, snap)
	s.drawEnemies(screen, snap)
	s.drawEnemyBullets(screen, snap)
	s.drawPlayerBullets(screen, snap)
	s.drawPlayer(screen, snap)
	s.drawHUD(screen, snap)
	s.drawBossBar(screen, snap)
	s.drawDialogue(screen, snap)

	switch snap.Mode {
	case game.ModeNotStarted:
		s.titleUI.Draw(screen)
	case game.ModeGameOver:
		s.gameOverUI.Draw(screen)
	}
}

// Layout 返回当前配置档的画布尺寸
func (s *GameScene) Layout() (int, int) {
	return int(s.snap.Width), int(s.snap.Height)
}

// SaveOnExit 实现 Saveable：退出时保存设置
func (s *GameScene) SaveOnExit() bool {
	if s.settings == nil {
		return true
	}
	if err := s.settings.Save(); err != nil {
		log.Printf("[GameScene] Warning: failed to save settings on exit: %v", err)
		return false
	}
	return true
}

// Loop 返回底层游戏循环
func (s *GameScene) Loop() *systems.GameLoop {
	return s.loop
}
