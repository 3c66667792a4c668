package scenes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/embedded"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestMain(m *testing.M) {
	// data/... 路径退回到仓库根目录下的数据文件
	embedded.Init(os.DirFS(filepath.Join("..", "..")))
	os.Exit(m.Run())
}

func loadProfile(t *testing.T, name string) *config.GameProfile {
	t.Helper()
	p, err := config.LoadProfile(name)
	if err != nil {
		t.Fatalf("LoadProfile(%s) failed: %v", name, err)
	}
	return p
}

// mockScene 记录调用次数的测试场景
type mockScene struct {
	updates, draws int
	w, h           int
	saved          bool
}

func (m *mockScene) Update(float64) error { m.updates++; return nil }
func (m *mockScene) Draw(*ebiten.Image)   { m.draws++ }
func (m *mockScene) Layout() (int, int)   { return m.w, m.h }
func (m *mockScene) SaveOnExit() bool     { m.saved = true; return true }

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	if err := sm.Update(1.0 / 60); err != nil {
		t.Errorf("Update without scene: %v", err)
	}
	if w, h := sm.Layout(400, 600); w != 400 || h != 600 {
		t.Errorf("Layout fallback = %dx%d", w, h)
	}
	if !sm.SaveOnExit() {
		t.Error("SaveOnExit without scene should succeed")
	}
	if err := sm.LoadProfile("extended"); !errors.Is(err, errNoSceneFactory) {
		t.Errorf("LoadProfile without factory: %v", err)
	}
}

func TestSceneManagerDelegates(t *testing.T) {
	sm := NewSceneManager()
	scene := &mockScene{w: 500, h: 750}
	sm.SwitchTo(scene)

	sm.Update(1.0 / 60)
	sm.Update(1.0 / 60)
	if scene.updates != 2 {
		t.Errorf("updates = %d, want 2", scene.updates)
	}
	if w, h := sm.Layout(0, 0); w != 500 || h != 750 {
		t.Errorf("Layout = %dx%d, want 500x750", w, h)
	}
	sm.SaveOnExit()
	if !scene.saved {
		t.Error("Saveable scene should be asked to save")
	}
}

func TestSceneManagerLoadProfile(t *testing.T) {
	sm := NewSceneManager()
	first := &mockScene{}
	sm.SwitchTo(first)

	sm.SetSceneFactory(func(profile string) (Scene, error) {
		if profile == "broken" {
			return nil, errors.New("boom")
		}
		return &mockScene{w: 400, h: 600}, nil
	})

	if err := sm.LoadProfile("broken"); err == nil {
		t.Error("Factory error should be returned")
	}
	if sm.GetCurrentScene() != first {
		t.Error("Failed load must keep the current scene")
	}
	if err := sm.LoadProfile("classic"); err != nil {
		t.Fatal(err)
	}
	if sm.GetCurrentScene() == first {
		t.Error("Scene should be switched")
	}
}

func TestKeyBindingsSample(t *testing.T) {
	b := DefaultKeyBindings()
	tests := []struct {
		name string
		keys []ebiten.Key
		want game.InputState
	}{
		{"nothing", nil, game.InputState{}},
		{"arrows", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowUp}, game.InputState{Left: true, Up: true}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyS}, game.InputState{Right: true, Down: true}},
		{"z fires and advances", []ebiten.Key{ebiten.KeyZ}, game.InputState{Fire: true, Advance: true}},
		{"enter confirms", []ebiten.Key{ebiten.KeyEnter}, game.InputState{Advance: true, Confirm: true}},
		{"bomb and focus", []ebiten.Key{ebiten.KeyX, ebiten.KeyShiftRight}, game.InputState{Bomb: true, Focus: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			down := map[ebiten.Key]bool{}
			for _, k := range tt.keys {
				down[k] = true
			}
			got := b.Sample(func(k ebiten.Key) bool { return down[k] })
			if got != tt.want {
				t.Errorf("Sample = %+v, want %+v", got, tt.want)
			}
		})
	}
}
