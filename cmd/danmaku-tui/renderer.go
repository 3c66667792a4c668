package main

import (
	"fmt"
	"strings"

	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/systems"
	"github.com/decker502/danmaku/pkg/types"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows 屏幕顶部留给 HUD 和首领血条的行数
const hudRows = 2

var (
	styleDefault  = tcell.StyleDefault
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleStar     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleFocused  = tcell.StyleDefault.Foreground(tcell.ColorAqua).Reverse(true)
	styleShot     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleEnemy    = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBoss     = tcell.StyleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleBossBar  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleDialogue = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
	styleSpeaker  = styleDialogue.Foreground(tcell.ColorYellow).Bold(true)
	styleParticle = tcell.StyleDefault.Foreground(tcell.ColorOrange)
)

// bulletGlyphs 每种弹型在终端里的字符和颜色
var bulletGlyphs = map[types.BulletPattern]struct {
	r     rune
	style tcell.Style
}{
	types.BulletNormal: {'o', tcell.StyleDefault.Foreground(tcell.ColorFuchsia)},
	types.BulletSpiral: {'*', tcell.StyleDefault.Foreground(tcell.ColorLime)},
	types.BulletCross:  {'+', tcell.StyleDefault.Foreground(tcell.ColorOrange)},
	types.BulletAimed:  {'x', tcell.StyleDefault.Foreground(tcell.ColorRed)},
}

// renderer 把快照画到终端上
//
// 画布坐标按比例缩放到 HUD 以下的区域，每个字符格对应一块矩形区域。
// 绘制顺序与图形前端一致，后画的覆盖先画的。
type renderer struct {
	screen tcell.Screen
	// ticks 已绘制的帧数，对话中游戏帧数冻结，闪烁用它计时
	ticks int
}

func newRenderer(screen tcell.Screen) *renderer {
	return &renderer{screen: screen}
}

// field 返回游戏区域的字符尺寸
func (r *renderer) field() (w, h int) {
	sw, sh := r.screen.Size()
	h = sh - hudRows
	if h < 1 {
		h = 1
	}
	return sw, h
}

// cell 把画布坐标转换为屏幕格；超出游戏区域返回 false
func (r *renderer) cell(snap *systems.Snapshot, x, y float64) (cx, cy int, ok bool) {
	if snap.Width <= 0 || snap.Height <= 0 {
		return 0, 0, false
	}
	fw, fh := r.field()
	if x < 0 || y < 0 || x >= snap.Width || y >= snap.Height {
		return 0, 0, false
	}
	cx = int(x / snap.Width * float64(fw))
	cy = int(y/snap.Height*float64(fh)) + hudRows
	return cx, cy, true
}

func (r *renderer) put(snap *systems.Snapshot, x, y float64, ch rune, style tcell.Style) {
	if cx, cy, ok := r.cell(snap, x, y); ok {
		r.screen.SetContent(cx, cy, ch, nil, style)
	}
}

// putString 从 (x, y) 开始写一行文字，超出屏幕宽度的部分被截断
// 全角字符占两格
func (r *renderer) putString(x, y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if x+cw > w {
			return
		}
		if x >= 0 {
			r.screen.SetContent(x, y, ch, nil, style)
		}
		x += cw
	}
}

func (r *renderer) putCentered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	r.putString((w-runewidth.StringWidth(s))/2, y, s, style)
}

// Draw 绘制一帧
func (r *renderer) Draw(snap *systems.Snapshot) {
	r.screen.Clear()

	for _, s := range snap.Stars {
		r.put(snap, s.X, s.Y, '.', styleStar)
	}
	for _, p := range snap.Particles {
		if p.Alpha > 0.3 {
			r.put(snap, p.X, p.Y, '·', styleParticle)
		}
	}
	r.drawEnemies(snap)
	for _, b := range snap.EnemyBullets {
		g, ok := bulletGlyphs[b.Pattern]
		if !ok {
			g = bulletGlyphs[types.BulletNormal]
		}
		r.put(snap, b.X, b.Y, g.r, g.style)
	}
	for _, b := range snap.PlayerBullets {
		r.put(snap, b.X, b.Y, '|', styleShot)
	}
	r.drawPlayer(snap)
	r.drawHUD(snap)

	switch snap.Mode {
	case game.ModeNotStarted:
		r.drawTitle()
	case game.ModeDialogue:
		r.drawDialogue(snap)
	case game.ModeGameOver:
		r.drawGameOver(snap)
	}

	r.screen.Show()
	r.ticks++
}

func (r *renderer) drawEnemies(snap *systems.Snapshot) {
	for _, e := range snap.Enemies {
		if e.Kind != types.EnemyBoss {
			r.put(snap, e.X, e.Y, 'W', styleEnemy)
			continue
		}
		// 首领按实际大小填充一块区域
		x0, y0, ok0 := r.cell(snap, clampTo(e.X-e.Width/2, snap.Width), clampTo(e.Y-e.Height/2, snap.Height))
		x1, y1, ok1 := r.cell(snap, clampTo(e.X+e.Width/2, snap.Width), clampTo(e.Y+e.Height/2, snap.Height))
		if !ok0 || !ok1 {
			r.put(snap, e.X, e.Y, '#', styleBoss)
			continue
		}
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				r.screen.SetContent(cx, cy, '#', nil, styleBoss)
			}
		}
	}
}

// clampTo 把坐标限制在 [0, limit) 内
func clampTo(v, limit float64) float64 {
	if v < 0 {
		return 0
	}
	if v >= limit {
		return limit - 0.001
	}
	return v
}

func (r *renderer) drawPlayer(snap *systems.Snapshot) {
	if snap.Mode == game.ModeNotStarted || snap.Player.Blinking(snap.Frame) {
		return
	}
	style := stylePlayer
	if snap.Player.Focused {
		style = styleFocused
	}
	r.put(snap, snap.Player.X, snap.Player.Y, 'A', style)
}

func (r *renderer) drawHUD(snap *systems.Snapshot) {
	hud := fmt.Sprintf("SCORE %07d  LIVES %s  BOMBS %s  LV %d",
		snap.HUD.Score,
		strings.Repeat("♥", max(snap.HUD.Lives, 0)),
		strings.Repeat("*", max(snap.HUD.Bombs, 0)),
		snap.Level)
	r.putString(0, 0, hud, styleHUD)

	if !snap.BossVisible {
		return
	}
	w, _ := r.screen.Size()
	barWidth := w - 6
	if barWidth < 1 {
		return
	}
	filled := int(snap.BossHPRatio * float64(barWidth))
	r.putString(0, 1, "BOSS ", styleHUD)
	for i := 0; i < barWidth; i++ {
		ch := '-'
		if i < filled {
			ch = '='
		}
		r.screen.SetContent(5+i, 1, ch, nil, styleBossBar)
	}
}

func (r *renderer) drawTitle() {
	_, h := r.screen.Size()
	r.putCentered(h/2-1, "D A N M A K U", styleHUD)
	r.putCentered(h/2+1, "Press Enter to start", styleDefault)
	r.putCentered(h/2+2, "arrows/wasd move  z fire  x bomb  f focus  q quit", styleStar)
}

func (r *renderer) drawGameOver(snap *systems.Snapshot) {
	_, h := r.screen.Size()
	r.putCentered(h/2-1, "GAME OVER", styleEnemy.Bold(true))
	r.putCentered(h/2, fmt.Sprintf("Score: %d", snap.HUD.Score), styleHUD)
	r.putCentered(h/2+2, "Press Enter to restart", styleDefault)
}

// drawDialogue 在屏幕底部画对话框：说话人一行，正文按宽度折行
func (r *renderer) drawDialogue(snap *systems.Snapshot) {
	d := snap.Dialogue
	if !d.Visible {
		return
	}
	w, h := r.screen.Size()
	lines := wrapRunes(d.Text, w-2)
	boxHeight := len(lines) + 2
	top := h - boxHeight
	if top < hudRows {
		top = hudRows
	}
	for y := top; y < h; y++ {
		for x := 0; x < w; x++ {
			r.screen.SetContent(x, y, ' ', nil, styleDialogue)
		}
	}

	speaker := d.Speaker
	if d.Side == types.SideRight {
		r.putString(w-runewidth.StringWidth(speaker)-1, top, speaker, styleSpeaker)
	} else {
		r.putString(1, top, speaker, styleSpeaker)
	}
	for i, line := range lines {
		r.putString(1, top+1+i, line, styleDialogue)
	}
	if d.State == types.DialogueWaitingForAdvance && (r.ticks/20)%2 == 0 {
		r.screen.SetContent(w-2, h-1, 'v', nil, styleSpeaker)
	}
}

// wrapRunes 按显示宽度折行，保留原有换行
func wrapRunes(s string, width int) []string {
	if width < 2 {
		width = 2
	}
	var out []string
	for _, para := range strings.Split(s, "\n") {
		var line strings.Builder
		lineWidth := 0
		for _, ch := range para {
			cw := runewidth.RuneWidth(ch)
			if lineWidth+cw > width {
				out = append(out, line.String())
				line.Reset()
				lineWidth = 0
			}
			line.WriteRune(ch)
			lineWidth += cw
		}
		out = append(out, line.String())
	}
	return out
}
