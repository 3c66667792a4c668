package main

import (
	"reflect"
	"strings"
	"testing"

	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/systems"
	"github.com/decker502/danmaku/pkg/types"
	"github.com/gdamore/tcell/v2"
)

// newSimScreen 创建 w×h 的模拟终端
func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

func rowText(s tcell.SimulationScreen, y int) string {
	_, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

// 20×22 的屏幕：游戏区 20×20，每格对应 100×100 画布上的 5×5 像素
func runningSnapshot() systems.Snapshot {
	return systems.Snapshot{
		Mode:   game.ModeRunning,
		Width:  100,
		Height: 100,
		Player: systems.PlayerView{X: 50, Y: 50},
		HUD:    systems.HUDView{Score: 120, Lives: 2, Bombs: 3},
		Level:  1,
	}
}

func TestRendererPlacesPlayer(t *testing.T) {
	screen := newSimScreen(t, 20, 22)
	snap := runningSnapshot()
	newRenderer(screen).Draw(&snap)

	if got := runeAt(screen, 10, 12); got != 'A' {
		t.Errorf("player cell = %q, want 'A'", got)
	}
	if !strings.HasPrefix(rowText(screen, 0), "SCORE 0000120") {
		t.Errorf("HUD row = %q", rowText(screen, 0))
	}
}

func TestRendererBulletGlyphs(t *testing.T) {
	screen := newSimScreen(t, 20, 22)
	snap := runningSnapshot()
	snap.EnemyBullets = []systems.EnemyBulletView{
		{X: 0, Y: 0, Pattern: types.BulletNormal},
		{X: 10, Y: 0, Pattern: types.BulletSpiral},
		{X: 20, Y: 0, Pattern: types.BulletCross},
		{X: 30, Y: 0, Pattern: types.BulletAimed},
	}
	snap.PlayerBullets = []systems.PlayerBulletView{{X: 40, Y: 0}}
	snap.Enemies = []systems.EnemyView{{Kind: types.EnemyBasic, X: 50, Y: 0}}
	newRenderer(screen).Draw(&snap)

	want := []rune{'o', '*', '+', 'x', '|', 'W'}
	for i, r := range want {
		if got := runeAt(screen, i*2, hudRows); got != r {
			t.Errorf("cell %d = %q, want %q", i*2, got, r)
		}
	}
}

func TestRendererSkipsOffscreen(t *testing.T) {
	screen := newSimScreen(t, 20, 22)
	snap := runningSnapshot()
	snap.EnemyBullets = []systems.EnemyBulletView{{X: -5, Y: 50}, {X: 50, Y: 120}}
	r := newRenderer(screen)
	r.Draw(&snap)

	if _, _, ok := r.cell(&snap, -5, 50); ok {
		t.Error("negative x should be off screen")
	}
	if _, _, ok := r.cell(&snap, 50, 100); ok {
		t.Error("y == height should be off screen")
	}
}

func TestRendererTitleHidesPlayer(t *testing.T) {
	screen := newSimScreen(t, 60, 22)
	snap := runningSnapshot()
	snap.Mode = game.ModeNotStarted
	newRenderer(screen).Draw(&snap)

	if !strings.Contains(rowText(screen, 10), "D A N M A K U") {
		t.Errorf("title row = %q", rowText(screen, 10))
	}
	for y := hudRows; y < 22; y++ {
		if strings.ContainsRune(rowText(screen, y), 'A') && !strings.Contains(rowText(screen, y), "D A N") {
			t.Errorf("player should be hidden on the title screen (row %d: %q)", y, rowText(screen, y))
		}
	}
}

func TestRendererGameOver(t *testing.T) {
	screen := newSimScreen(t, 40, 22)
	snap := runningSnapshot()
	snap.Mode = game.ModeGameOver
	newRenderer(screen).Draw(&snap)

	if !strings.Contains(rowText(screen, 10), "GAME OVER") {
		t.Errorf("row 10 = %q", rowText(screen, 10))
	}
	if !strings.Contains(rowText(screen, 11), "Score: 120") {
		t.Errorf("row 11 = %q", rowText(screen, 11))
	}
}

func TestRendererBossBar(t *testing.T) {
	screen := newSimScreen(t, 20, 22)
	snap := runningSnapshot()
	snap.BossVisible = true
	snap.BossHPRatio = 0.5
	newRenderer(screen).Draw(&snap)

	// 宽 20：标签 5 格，血条 14 格，一半填充
	want := "BOSS " + strings.Repeat("=", 7) + strings.Repeat("-", 7) + " "
	if got := rowText(screen, 1); got != want {
		t.Errorf("boss bar = %q, want %q", got, want)
	}
}

func TestRendererDialogue(t *testing.T) {
	screen := newSimScreen(t, 30, 22)
	snap := runningSnapshot()
	snap.Mode = game.ModeDialogue
	snap.Dialogue = systems.DialogueView{
		Visible: true,
		Speaker: "Usagi",
		Side:    types.SideRight,
		Text:    "Hello",
		State:   types.DialogueWaitingForAdvance,
	}
	newRenderer(screen).Draw(&snap)

	// 一行正文：对话框占最后 3 行
	top := 22 - 3
	if got := rowText(screen, top); !strings.HasSuffix(got, "Usagi ") {
		t.Errorf("speaker row = %q, want right aligned name", got)
	}
	if got := rowText(screen, top+1); !strings.HasPrefix(got, " Hello") {
		t.Errorf("text row = %q", got)
	}
	if got := runeAt(screen, 28, 21); got != 'v' {
		t.Errorf("advance marker = %q, want 'v'", got)
	}
}

func TestWrapRunes(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"fits", "abc", 10, []string{"abc"}},
		{"split", "abcdef", 3, []string{"abc", "def"}},
		{"newline", "ab\ncd", 10, []string{"ab", "cd"}},
		{"empty", "", 5, []string{""}},
		{"wide runes", "（ab）", 4, []string{"（ab", "）"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapRunes(tt.in, tt.width); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapRunes(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}
