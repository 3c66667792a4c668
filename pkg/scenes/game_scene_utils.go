package scenes

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/decker502/danmaku/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	colorPlayer      = color.RGBA{R: 0x00, G: 0xff, B: 0xff, A: 0xff}
	colorHitbox      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorText        = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorHitboxRing  = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	colorEnemy       = color.RGBA{R: 0xff, G: 0x44, B: 0x44, A: 0xff}
	colorBoss        = color.RGBA{R: 0xcc, G: 0x33, B: 0xcc, A: 0xff}
	colorPetal       = color.RGBA{R: 0xff, G: 0xb7, B: 0xd5, A: 0xff}
	colorShotBar     = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	colorBossBarBack = color.RGBA{R: 0x40, G: 0x00, B: 0x00, A: 0xc0}
	colorBossBar     = color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0xff}
	colorDialogueBox = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xc8}
	colorDim         = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	colorSky         = color.RGBA{R: 0x08, G: 0x08, B: 0x20, A: 0xff}
)

// bulletColors 每种弹型的填充色（外圈）与核心色
var bulletColors = map[types.BulletPattern][2]color.RGBA{
	types.BulletNormal: {{R: 0xff, G: 0x8c, B: 0x00, A: 0xff}, {R: 0xff, G: 0xe0, B: 0xa0, A: 0xff}},
	types.BulletSpiral: {{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}, {R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
	types.BulletCross:  {{R: 0x40, G: 0x80, B: 0xff, A: 0xff}, {R: 0xd0, G: 0xe0, B: 0xff, A: 0xff}},
	types.BulletAimed:  {{R: 0xff, G: 0x30, B: 0x30, A: 0xff}, {R: 0xff, G: 0xd0, B: 0xd0, A: 0xff}},
}

// bulletColor 返回弹型的外圈色和核心色，未知弹型用普通弹配色
func bulletColor(p types.BulletPattern) (outer, core color.RGBA) {
	c, ok := bulletColors[p]
	if !ok {
		c = bulletColors[types.BulletNormal]
	}
	return c[0], c[1]
}

// pulsePhase 周期为 period 的三角波，取值 0→1→0
func pulsePhase(ticks, period int) float64 {
	if period <= 0 {
		return 1
	}
	half := float64(period) / 2
	t := float64(ticks%period) / half
	if t > 1 {
		t = 2 - t
	}
	return t
}

// withAlpha 按比例缩放颜色的透明度（预乘 alpha）
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// bossBarWidth 首领血条长度，比例限制在 [0, 1]
func bossBarWidth(ratio, fullWidth float64) float64 {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return fullWidth * ratio
}

// resultLabel 结算面板文字
func resultLabel(score int, newBest bool) string {
	if newBest {
		return fmt.Sprintf("Score: %d  NEW RECORD!", score)
	}
	return fmt.Sprintf("Score: %d", score)
}

// wrapText 按宽度折行，逐字符测量（对话文本以中日文为主，没有空格可断）
// 已有的换行符保留
func wrapText(s string, face text.Face, maxWidth float64) []string {
	var out []string
	for _, para := range strings.Split(s, "\n") {
		var line []rune
		for _, r := range para {
			candidate := append(line, r)
			if len(line) > 0 && text.Advance(string(candidate), face) > maxWidth {
				out = append(out, string(line))
				line = []rune{r}
				continue
			}
			line = candidate
		}
		out = append(out, string(line))
	}
	return out
}

// drawImageCentered 把图片缩放到 w×h 并以 (cx, cy) 为中心绘制
func drawImageCentered(dst, img *ebiten.Image, cx, cy, w, h float64, alpha float32) {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleAlpha(alpha)
	dst.DrawImage(img, op)
}

// drawText 在 (x, y) 处左上对齐绘制文字
func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

// drawTextCentered 水平居中绘制文字
func drawTextCentered(dst *ebiten.Image, s string, face text.Face, centerX, y float64, clr color.Color) {
	w := text.Advance(s, face)
	drawText(dst, s, face, centerX-w/2, y, clr)
}
