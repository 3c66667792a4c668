package scenes

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the game (title, gameplay).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by deltaTime seconds.
	Update(deltaTime float64) error

	// Draw renders the scene to screen.
	Draw(screen *ebiten.Image)

	// Layout returns the logical canvas size of the scene.
	Layout() (width, height int)
}

// Saveable 可选接口：场景在程序退出时保存状态（设置、最高分）
type Saveable interface {
	// SaveOnExit 返回 false 表示保存失败（程序仍会正常退出）
	SaveOnExit() bool
}

var errNoSceneFactory = errors.New("scene factory not set")

// SceneFactory 按配置档名创建场景，避免 app 与具体场景之间的循环依赖
type SceneFactory func(profile string) (Scene, error)

// SceneManager ensures only one scene's Update and Draw run at a time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
}

// NewSceneManager creates a manager with no active scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// LoadProfile 用工厂函数创建指定配置档的场景并切换过去
// 创建失败时保持当前场景不变
func (sm *SceneManager) LoadProfile(profile string) error {
	log.Printf("[SceneManager] Loading profile: %s", profile)
	if sm.sceneFactory == nil {
		return errNoSceneFactory
	}

	scene, err := sm.sceneFactory(profile)
	if err != nil {
		log.Printf("[SceneManager] Error: failed to create scene for %s: %v", profile, err)
		return err
	}
	sm.SwitchTo(scene)
	return nil
}

// Update updates the active scene; no-op without one.
func (sm *SceneManager) Update(deltaTime float64) error {
	if sm.currentScene == nil {
		return nil
	}
	return sm.currentScene.Update(deltaTime)
}

// Draw renders the active scene; no-op without one.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}

// Layout 当前场景的画布尺寸；没有场景时返回 fallback
func (sm *SceneManager) Layout(fallbackW, fallbackH int) (int, int) {
	if sm.currentScene == nil {
		return fallbackW, fallbackH
	}
	return sm.currentScene.Layout()
}

// SaveOnExit 通知当前场景保存状态
func (sm *SceneManager) SaveOnExit() bool {
	if s, ok := sm.currentScene.(Saveable); ok {
		return s.SaveOnExit()
	}
	return true
}
