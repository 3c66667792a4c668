// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/resources"
	"github.com/decker502/danmaku/pkg/scenes"
	"github.com/decker502/danmaku/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// settingsAppName gdata 存储使用的应用名
const settingsAppName = "danmaku"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Profile 配置档名称（extended/classic）或 YAML 路径，为空时使用上次的配置档
	Profile string
	// AssetsDir 图片、音乐、字体所在目录
	AssetsDir string
	// FontPath 字体文件（相对 AssetsDir），为空使用内置位图字体
	FontPath string
	// Watch 监听配置档目录，修改后在下一局生效
	Watch bool
	// Seed 随机数种子，0 表示使用当前时间
	Seed int64
	// NoSave 不读写本地设置
	NoSave bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *scenes.SceneManager
	settings     *game.SettingsManager
	watcher      *config.Watcher
	verbose      bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
	width, height            int
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入数据文件。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	settings := openSettings(cfg.NoSave)

	profileName := cfg.Profile
	if profileName == "" {
		profileName = settings.GetSettings().LastProfile
	}
	if profileName == "" {
		profileName = config.DefaultProfile
	}

	profile, err := config.LoadProfile(profileName)
	if err != nil {
		return nil, fmt.Errorf("配置档加载失败: %w", err)
	}
	log.Printf("[App] Profile %q loaded (%vx%v)", profile.Name, profile.Canvas.Width, profile.Canvas.Height)

	var watcher *config.Watcher
	if cfg.Watch {
		watcher, err = config.NewWatcher(watchDirs(profileName)...)
		if err != nil {
			// 热重载是可选功能，失败不影响游戏
			log.Printf("[App] Warning: config watcher disabled: %v", err)
			watcher = nil
		}
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(48000)
	resourceManager := resources.NewResourceManager(audioContext, cfg.AssetsDir)

	a := &App{
		sceneManager: scenes.NewSceneManager(),
		settings:     settings,
		watcher:      watcher,
		verbose:      cfg.Verbose,
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Printf("[App] Seed: %d", seed)
	a.sceneManager.SetSceneFactory(func(name string) (scenes.Scene, error) {
		p := profile
		if name != profileName {
			loaded, err := config.LoadProfile(name)
			if err != nil {
				return nil, err
			}
			p = loaded
		}
		return scenes.NewGameScene(scenes.GameSceneOptions{
			Profile:       p,
			ProfileSource: name,
			Seed:          seed,
			Watcher:       watcher,
			Resources:     resourceManager,
			Settings:      settings,
			FontPath:      cfg.FontPath,
		})
	})

	if err := a.sceneManager.LoadProfile(profileName); err != nil {
		a.closeWatcher()
		return nil, fmt.Errorf("游戏场景创建失败: %w", err)
	}
	a.width, a.height = config.WindowSize(profile.Canvas.Width, profile.Canvas.Height)
	if settings.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}
	return a, nil
}

// openSettings 打开本地设置；存储不可用时以内存模式运行
func openSettings(noSave bool) *game.SettingsManager {
	if noSave {
		return game.NewSettingsManager(nil)
	}
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	storage, err := game.OpenSettingsStorage(settingsAppName)
	if err != nil {
		log.Printf("[App] Warning: %v (settings will not be saved)", err)
		return game.NewSettingsManager(nil)
	}
	log.Printf("[App] Settings stored under %s", utils.StorageLocation(settingsAppName))
	return game.NewSettingsManager(storage)
}

// watchDirs 热重载监听的目录：配置档所在目录和弹幕脚本目录
func watchDirs(profile string) []string {
	dirs := []string{filepath.Join("data", "profiles"), filepath.Join("data", "patterns")}
	if strings.HasSuffix(profile, ".yaml") || strings.HasSuffix(profile, ".yml") {
		dirs = []string{filepath.Dir(profile)}
	}

	var existing []string
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			existing = append(existing, d)
		}
	}
	return existing
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(a.width, a.height)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
		a.settings.SetFullscreen(!a.settings.GetSettings().Fullscreen)
	}

	if ebiten.IsWindowBeingClosed() {
		a.Close()
		return ebiten.Termination
	}

	return a.sceneManager.Update(1.0 / 60.0)
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 全屏时用黑边填充并线性缩放
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回当前配置档的画布尺寸
// 热重载切换配置档后画布尺寸可能变化，窗口大小在下一次退出全屏时同步
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.sceneManager.Layout(a.width, a.height)
	if w != a.width || h != a.height {
		a.width, a.height = w, h
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 1
	}
	return w, h
}

// WindowSize 初始窗口大小
func (a *App) WindowSize() (int, int) {
	return a.width, a.height
}

// Close 保存设置并停止配置监听；可重复调用
func (a *App) Close() {
	if !a.sceneManager.SaveOnExit() {
		log.Printf("[App] Warning: settings were not saved")
	}
	a.closeWatcher()
}

func (a *App) closeWatcher() {
	if a.watcher != nil {
		if err := a.watcher.Close(); err != nil {
			log.Printf("[App] Warning: failed to close watcher: %v", err)
		}
		a.watcher = nil
	}
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *scenes.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
