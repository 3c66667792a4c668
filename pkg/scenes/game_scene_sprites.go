package scenes

import (
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/systems"
	"github.com/decker502/danmaku/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawPlayer 绘制自机；无敌期间闪烁，低速模式显示判定点
func (s *GameScene) drawPlayer(screen *ebiten.Image, snap *systems.Snapshot) {
	if snap.Mode == game.ModeNotStarted {
		return
	}
	p := snap.Player
	if p.Blinking(snap.Frame) {
		return
	}

	if s.images.player != nil {
		drawImageCentered(screen, s.images.player, p.X, p.Y, p.Width, p.Height, 1)
	} else {
		// 机身 + 两翼
		x, y := float32(p.X), float32(p.Y)
		w, h := float32(p.Width), float32(p.Height)
		vector.DrawFilledRect(screen, x-w/8, y-h/2, w/4, h, colorPlayer, false)
		vector.DrawFilledRect(screen, x-w/2, y, w, h/6, colorPlayer, false)
	}

	if p.Focused {
		r := float32(p.HitboxRadius)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r+2, colorHitboxRing, true)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r, colorHitbox, true)
	}
}

// drawEnemies 杂兵与首领
func (s *GameScene) drawEnemies(screen *ebiten.Image, snap *systems.Snapshot) {
	for _, e := range snap.Enemies {
		img, fallback := s.images.enemy, colorEnemy
		if e.Kind == types.EnemyBoss {
			img, fallback = s.images.boss, colorBoss
		}
		if img != nil {
			drawImageCentered(screen, img, e.X, e.Y, e.Width, e.Height, 1)
			continue
		}
		vector.DrawFilledRect(screen,
			float32(e.X-e.Width/2), float32(e.Y-e.Height/2),
			float32(e.Width), float32(e.Height), fallback, false)
	}
}

// drawEnemyBullets 每种弹型一种配色：外圈 + 亮色核心
func (s *GameScene) drawEnemyBullets(screen *ebiten.Image, snap *systems.Snapshot) {
	for _, b := range snap.EnemyBullets {
		outer, core := bulletColor(b.Pattern)
		x, y, r := float32(b.X), float32(b.Y), float32(b.Radius)
		vector.DrawFilledCircle(screen, x, y, r, outer, true)
		vector.DrawFilledCircle(screen, x, y, r/2, core, true)
	}
}

// drawPlayerBullets 花瓣（extended）或黄色光条（classic）
func (s *GameScene) drawPlayerBullets(screen *ebiten.Image, snap *systems.Snapshot) {
	petal := s.loop.Profile().Visual.PlayerShot == "petal"
	for _, b := range snap.PlayerBullets {
		if petal {
			vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Width), colorPetal, true)
			continue
		}
		vector.DrawFilledRect(screen,
			float32(b.X-b.Width/2), float32(b.Y-b.Height/2),
			float32(b.Width), float32(b.Height), colorShotBar, false)
	}
}
