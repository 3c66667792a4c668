package systems

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/types"
)

// repoPath 把仓库相对路径转换为测试目录下可用的路径
func repoPath(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join("..", "..", p)
}

// loadTestProfile 从仓库 data/profiles 加载配置档，并修正其中的相对路径
func loadTestProfile(t testing.TB, name string) *config.GameProfile {
	t.Helper()
	p, err := config.LoadProfile(repoPath("data/profiles/" + name + ".yaml"))
	if err != nil {
		t.Fatalf("Failed to load profile %s: %v", name, err)
	}
	p.Dialogue.Script = repoPath(p.Dialogue.Script)
	for i := range p.Enemies.Boss.Phases {
		for j := range p.Enemies.Boss.Phases[i].Emitters {
			e := &p.Enemies.Boss.Phases[i].Emitters[j]
			if strings.HasPrefix(e.Script, "data/") {
				e.Script = repoPath(e.Script)
			}
		}
	}
	return p
}

// newTestLoop 创建未开始的游戏循环
func newTestLoop(t testing.TB, name string) *GameLoop {
	t.Helper()
	gl, err := NewGameLoop(loadTestProfile(t, name), Options{Seed: 1})
	if err != nil {
		t.Fatalf("NewGameLoop failed: %v", err)
	}
	return gl
}

// fixedRandom 总是返回同一个值的随机数源
type fixedRandom float64

func (r fixedRandom) Float64() float64 { return float64(r) }

func countWith[T any](em *ecs.EntityManager) int {
	return ecs.CountEntitiesWith1[T](em)
}

func playerOf(t testing.TB, gl *GameLoop) (*components.PlayerComponent, *components.PositionComponent) {
	t.Helper()
	pc, pos, ok := gl.player.Player()
	if !ok {
		t.Fatal("Player entity missing")
	}
	return pc, pos
}

func lines(texts ...string) []components.DialogueLine {
	out := make([]components.DialogueLine, 0, len(texts))
	for i, text := range texts {
		side := types.SideLeft
		if i%2 == 1 {
			side = types.SideRight
		}
		out = append(out, components.DialogueLine{Speaker: "S", Side: side, Text: text})
	}
	return out
}

var _ game.InputSource = (*Autopilot)(nil)
