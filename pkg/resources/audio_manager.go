package resources

import (
	"log"

	"github.com/decker502/danmaku/pkg/game"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioManager 背景音乐播放器，实现 game.AudioController
//
// 所有调用都是"发射后不管"：加载失败只记录一次警告，之后静默。
// 实际音量 = 配置档音量 × 用户设置音量（音乐关闭时为 0）。
type AudioManager struct {
	rm       *ResourceManager
	settings *game.SettingsManager // 可为 nil

	bgmName       string
	profileVolume float64

	current *audio.Player
	warned  bool

	sfx       map[string]string
	sfxWarned map[string]bool
}

var _ game.AudioController = (*AudioManager)(nil)

// NewAudioManager 创建音频管理器
//
// 参数：
//   - bgm: 背景音乐文件名（相对于资源目录），为空表示无音乐
//   - profileVolume: 配置档中的 BGM 音量
//   - settings: 用户设置，可为 nil
func NewAudioManager(rm *ResourceManager, bgm string, profileVolume float64, settings *game.SettingsManager) *AudioManager {
	return &AudioManager{
		rm:            rm,
		settings:      settings,
		bgmName:       bgm,
		profileVolume: profileVolume,
		sfxWarned:     make(map[string]bool),
	}
}

// SetEffects 设置事件音效表（键为 game.EventKind 的名称）
func (am *AudioManager) SetEffects(sfx map[string]string) {
	am.sfx = sfx
}

// PlaySound 播放事件对应的音效；未配置、已关闭或加载失败时静默
func (am *AudioManager) PlaySound(e game.EventKind) {
	name := am.sfx[e.String()]
	if name == "" {
		return
	}
	volume := am.SoundVolume()
	if volume == 0 {
		return
	}

	p, err := am.rm.LoadSoundEffect(name)
	if err != nil {
		if !am.sfxWarned[name] {
			log.Printf("[AudioManager] Warning: %v (sound disabled)", err)
			am.sfxWarned[name] = true
		}
		return
	}
	p.SetVolume(volume)
	if err := p.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind %s: %v", name, err)
	}
	p.Play()
}

// SoundVolume 音效音量；没有用户设置时为 1
func (am *AudioManager) SoundVolume() float64 {
	if am.settings == nil {
		return 1
	}
	st := am.settings.GetSettings()
	if !st.SoundEnabled {
		return 0
	}
	return clamp01(st.SoundVolume)
}

// ToggleSound 切换音效开关，返回切换后的状态
func (am *AudioManager) ToggleSound() bool {
	if am.settings == nil {
		return true
	}
	enabled := !am.settings.GetSettings().SoundEnabled
	am.settings.SetSoundEnabled(enabled)
	return enabled
}

// SetTrack 切换配置档后更新曲目与音量
// 曲目变化时停止旧音乐，下次 PlayBGM 时播放新曲目
func (am *AudioManager) SetTrack(bgm string, profileVolume float64) {
	if bgm != am.bgmName {
		am.StopBGM()
		am.current = nil
		am.warned = false
	}
	am.bgmName = bgm
	am.profileVolume = profileVolume
	am.applyVolume()
}

// PlayBGM 从头播放背景音乐
func (am *AudioManager) PlayBGM() {
	player := am.player()
	if player == nil {
		return
	}

	am.applyVolume()
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind %s: %v", am.bgmName, err)
	}
	player.Play()
	log.Printf("[AudioManager] Playing BGM: %s (volume: %.2f)", am.bgmName, am.Volume())
}

// StopBGM 停止背景音乐
func (am *AudioManager) StopBGM() {
	if am.current != nil {
		am.current.Pause()
	}
}

// IsPlaying 背景音乐是否正在播放
func (am *AudioManager) IsPlaying() bool {
	return am.current != nil && am.current.IsPlaying()
}

// Volume 当前生效的音量
func (am *AudioManager) Volume() float64 {
	if am.settings == nil {
		return clamp01(am.profileVolume)
	}
	return am.settings.EffectiveMusicVolume(am.profileVolume)
}

// SetMusicVolume 修改用户音量并立即生效
func (am *AudioManager) SetMusicVolume(volume float64) {
	if am.settings != nil {
		am.settings.SetMusicVolume(volume)
	}
	am.applyVolume()
}

// ToggleMusic 切换音乐开关，返回切换后的状态
func (am *AudioManager) ToggleMusic() bool {
	if am.settings == nil {
		return true
	}
	enabled := !am.settings.GetSettings().MusicEnabled
	am.settings.SetMusicEnabled(enabled)
	am.applyVolume()
	return enabled
}

func (am *AudioManager) applyVolume() {
	if am.current != nil {
		am.current.SetVolume(am.Volume())
	}
}

func (am *AudioManager) player() *audio.Player {
	if am.current != nil {
		return am.current
	}
	if am.bgmName == "" {
		return nil
	}

	p, err := am.rm.LoadAudio(am.bgmName)
	if err != nil {
		if !am.warned {
			log.Printf("[AudioManager] Warning: %v (continuing without music)", err)
			am.warned = true
		}
		return nil
	}
	am.current = p
	return p
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
