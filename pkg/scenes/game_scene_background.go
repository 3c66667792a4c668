package scenes

import (
	"github.com/decker502/danmaku/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawBackground 绘制滚动背景
//
// 有背景图时把图片纵向平铺两次并按 BackgroundScrollY 向下滚动；
// 没有背景图时填充夜空色并绘制星空。
func (s *GameScene) drawBackground(screen *ebiten.Image, snap *systems.Snapshot) {
	if s.images.background == nil {
		screen.Fill(colorSky)
		s.drawStars(screen, snap)
		return
	}

	w, h := snap.Width, snap.Height
	scroll := snap.BackgroundScrollY
	drawImageCentered(screen, s.images.background, w/2, scroll+h/2, w, h, 1)
	drawImageCentered(screen, s.images.background, w/2, scroll-h/2, w, h, 1)
}

func (s *GameScene) drawStars(screen *ebiten.Image, snap *systems.Snapshot) {
	for _, star := range snap.Stars {
		size := float32(star.Size)
		if size < 1 {
			size = 1
		}
		vector.DrawFilledRect(screen, float32(star.X), float32(star.Y), size, size, colorHitbox, false)
	}
}
