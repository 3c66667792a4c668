package scenes

import (
	"github.com/decker502/danmaku/pkg/systems"
	"github.com/decker502/danmaku/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawParticles 粒子按剩余寿命比例淡出，末段加速消失
func (s *GameScene) drawParticles(screen *ebiten.Image, snap *systems.Snapshot) {
	for _, p := range snap.Particles {
		size := p.Size
		if size <= 0 {
			size = 3
		}
		c := withAlpha(p.Color, utils.EaseOutCubic(p.Alpha))
		vector.DrawFilledRect(screen, float32(p.X-size/2), float32(p.Y-size/2), float32(size), float32(size), c, false)
	}
}
