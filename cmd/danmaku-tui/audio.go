package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/decker502/danmaku/pkg/game"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// terminalAudio 终端前端的声音接口
type terminalAudio interface {
	game.AudioController
	SetTrack(bgm string, volume float64)
	ToggleMusic() bool
	Tone(e game.EventKind)
	Close()
}

// tone 事件提示音
type tone struct {
	freq     float64
	duration time.Duration
}

var eventTones = map[game.EventKind]tone{
	game.EventPlayerHit:      {220, 120 * time.Millisecond},
	game.EventBomb:           {110, 250 * time.Millisecond},
	game.EventBossSpawned:    {440, 200 * time.Millisecond},
	game.EventBossDestroyed:  {880, 300 * time.Millisecond},
	game.EventEnemyDestroyed: {660, 30 * time.Millisecond},
}

// volumeFor 把线性音量 [0,1] 转换为 effects.Volume 的以 2 为底的参数
// 0 时返回 silent
func volumeFor(v float64) (level float64, silent bool) {
	if v <= 0 {
		return 0, true
	}
	if v > 1 {
		v = 1
	}
	return math.Log2(v), false
}

func newVolume(s beep.Streamer, v float64) *effects.Volume {
	level, silent := volumeFor(v)
	return &effects.Volume{Streamer: s, Base: 2, Volume: level, Silent: silent}
}

// beepAudio 用 beep 播放背景音乐（mp3）和事件提示音
//
// 所有对正在播放的流的修改都在 speaker.Lock 内进行。
type beepAudio struct {
	assetsDir string
	mixer     *beep.Mixer

	track         string
	profileVolume float64
	muted         bool

	stream beep.StreamSeekCloser
	bgm    *beep.Ctrl
	volume *effects.Volume
}

var _ terminalAudio = (*beepAudio)(nil)

// newBeepAudio 初始化扬声器；没有音频设备时返回错误
func newBeepAudio(assetsDir string) (*beepAudio, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	a := &beepAudio{assetsDir: assetsDir, mixer: &beep.Mixer{}}
	speaker.Play(a.mixer)
	return a, nil
}

// SetTrack 切换背景音乐；曲目相同时只更新音量
func (a *beepAudio) SetTrack(bgm string, volume float64) {
	a.profileVolume = volume
	if bgm == a.track && a.bgm != nil {
		a.applyVolume()
		return
	}

	a.detach()
	a.track = bgm
	if bgm == "" {
		return
	}

	stream, format, err := openTrack(filepath.Join(a.assetsDir, bgm))
	if err != nil {
		log.Printf("[Audio] Warning: %v (music disabled)", err)
		return
	}

	ctrl := &beep.Ctrl{
		Streamer: beep.Resample(4, format.SampleRate, sampleRate, beep.Loop(-1, stream)),
		Paused:   true,
	}
	vol := newVolume(ctrl, a.effectiveVolume())

	speaker.Lock()
	a.stream, a.bgm, a.volume = stream, ctrl, vol
	a.mixer.Add(vol)
	speaker.Unlock()
	log.Printf("[Audio] Loaded BGM %s (%d Hz)", bgm, format.SampleRate)
}

// openTrack 解码音乐文件，目前只支持 mp3
func openTrack(path string) (beep.StreamSeekCloser, beep.Format, error) {
	if !strings.EqualFold(filepath.Ext(path), ".mp3") {
		return nil, beep.Format{}, fmt.Errorf("unsupported music format: %s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	stream, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return nil, beep.Format{}, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return stream, format, nil
}

// detach 把当前曲目从混音器中摘下并关闭
func (a *beepAudio) detach() {
	if a.bgm == nil {
		return
	}
	speaker.Lock()
	// Ctrl 的 Streamer 为 nil 时流结束，混音器会自动移除它
	a.bgm.Streamer = nil
	speaker.Unlock()
	if err := a.stream.Close(); err != nil {
		log.Printf("[Audio] Warning: failed to close %s: %v", a.track, err)
	}
	a.stream, a.bgm, a.volume = nil, nil, nil
}

func (a *beepAudio) effectiveVolume() float64 {
	if a.muted {
		return 0
	}
	return a.profileVolume
}

func (a *beepAudio) applyVolume() {
	if a.volume == nil {
		return
	}
	level, silent := volumeFor(a.effectiveVolume())
	speaker.Lock()
	a.volume.Volume, a.volume.Silent = level, silent
	speaker.Unlock()
}

// PlayBGM 从头播放
func (a *beepAudio) PlayBGM() {
	if a.bgm == nil {
		return
	}
	speaker.Lock()
	if err := a.stream.Seek(0); err != nil {
		log.Printf("[Audio] Warning: failed to rewind %s: %v", a.track, err)
	}
	a.bgm.Paused = false
	speaker.Unlock()
}

// StopBGM 暂停
func (a *beepAudio) StopBGM() {
	if a.bgm == nil {
		return
	}
	speaker.Lock()
	a.bgm.Paused = true
	speaker.Unlock()
}

// ToggleMusic 切换静音，返回切换后音乐是否开启
func (a *beepAudio) ToggleMusic() bool {
	a.muted = !a.muted
	a.applyVolume()
	return !a.muted
}

// Tone 为游戏事件播放一个短促的正弦音
func (a *beepAudio) Tone(e game.EventKind) {
	t, ok := eventTones[e]
	if !ok || a.muted {
		return
	}
	sine, err := generators.SineTone(sampleRate, t.freq)
	if err != nil {
		return
	}
	blip := newVolume(beep.Take(sampleRate.N(t.duration), sine), 0.25)
	speaker.Lock()
	a.mixer.Add(blip)
	speaker.Unlock()
}

// Close 停止所有声音并关闭扬声器
func (a *beepAudio) Close() {
	a.detach()
	speaker.Lock()
	a.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// silentAudio 没有音频设备或使用 -mute 时的实现
type silentAudio struct {
	game.NopAudio
}

func (silentAudio) SetTrack(string, float64) {}
func (silentAudio) ToggleMusic() bool        { return false }
func (silentAudio) Tone(game.EventKind)      {}
func (silentAudio) Close()                   {}
