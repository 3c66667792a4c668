// danmaku-tui 在终端里运行弹幕射击游戏
//
// 与图形版共用同一个 GameLoop，只替换输入、渲染和声音：
//   - tcell 负责屏幕和键盘
//   - beep 播放背景音乐和事件提示音
//
// 使用方法:
//
//	go run ./cmd/danmaku-tui [-profile classic] [-seed 42] [-mute]
//
// 需要在项目根目录运行（从 data/ 读取配置档和对话脚本）。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/systems"
	"github.com/gdamore/tcell/v2"
)

var (
	profileFlag = flag.String("profile", config.DefaultProfile, "Profile name (extended/classic/bloom) or YAML path")
	seedFlag    = flag.Int64("seed", 0, "Random seed (0 = time based)")
	assetsFlag  = flag.String("assets", "assets", "Assets directory (music)")
	logFlag     = flag.String("log", "", "Write logs to this file (terminal is busy drawing)")
	muteFlag    = flag.Bool("mute", false, "Disable all audio")
	watchFlag   = flag.Bool("watch", false, "Reload profiles and patterns on change (applied on restart)")
)

func main() {
	flag.Parse()

	if err := setupLogging(*logFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return nil
}

func run() error {
	profile, err := config.LoadProfile(*profileFlag)
	if err != nil {
		return err
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var watcher *config.Watcher
	if *watchFlag {
		watcher, err = config.NewWatcher(filepath.Join("data", "profiles"), filepath.Join("data", "patterns"))
		if err != nil {
			log.Printf("[TUI] Warning: watcher disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	sound := openAudio(*assetsFlag, *muteFlag)
	defer sound.Close()

	loop, err := systems.NewGameLoop(profile, systems.Options{
		Seed:          seed,
		Audio:         sound,
		ProfileSource: *profileFlag,
		Watcher:       watcher,
		OnProfile: func(p *config.GameProfile) {
			sound.SetTrack(p.Audio.BGM, p.Audio.BGMVolume)
		},
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	s := newSession(screen, loop, sound)
	s.run()
	log.Printf("[TUI] %s", exitSummary(loop.State()))
	return nil
}

// exitSummary 退出时写入日志的一行摘要
func exitSummary(gs *game.GameState) string {
	return fmt.Sprintf("Exit at frame %d, score %d, mode %s", gs.FrameCount, gs.Score, gs.Mode)
}

func openAudio(assetsDir string, mute bool) terminalAudio {
	if mute {
		return silentAudio{}
	}
	a, err := newBeepAudio(assetsDir)
	if err != nil {
		log.Printf("[TUI] Warning: %v (audio disabled)", err)
		return silentAudio{}
	}
	return a
}

// session 一次终端游戏会话：事件处理、tick 和绘制
type session struct {
	screen   tcell.Screen
	loop     *systems.GameLoop
	sound    terminalAudio
	latch    keyLatch
	renderer *renderer
}

func newSession(screen tcell.Screen, loop *systems.GameLoop, sound terminalAudio) *session {
	return &session{
		screen:   screen,
		loop:     loop,
		sound:    sound,
		renderer: newRenderer(screen),
	}
}

// run 主循环：事件在单独的 goroutine 中读取，通过 channel 交给主 goroutine
func (s *session) run() {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	for {
		select {
		case ev := <-events:
			if s.handleEvent(ev) {
				return
			}
		case <-ticker.C:
			s.step()
		}
	}
}

// handleEvent 处理一个终端事件，返回 true 表示退出
func (s *session) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch s.latch.handleKey(ev) {
		case cmdQuit:
			return true
		case cmdToggleMusic:
			on := s.sound.ToggleMusic()
			log.Printf("[TUI] Music on: %v", on)
		}
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return false
}

// step 推进一帧并重绘
func (s *session) step() {
	s.loop.Tick(s.latch.Poll(), systems.TickSeconds)
	snap := s.loop.Snapshot()
	for _, e := range snap.Events {
		s.sound.Tone(e)
	}
	s.renderer.Draw(&snap)
}

var _ game.InputSource = (*keyLatch)(nil)
