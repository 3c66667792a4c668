package systems

import (
	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/entities"
)

// 星星重生时的 y 坐标（画面上方外侧）
const starRespawnY = -10

// BackgroundSystem 背景装饰：滚动背景图偏移和星空
//
// 与战斗无关，标题画面、对话和 GameOver 期间也继续更新。
type BackgroundSystem struct {
	em      *ecs.EntityManager
	profile *config.GameProfile
	rng     Random

	// ScrollY 背景图当前的纵向偏移 [0, 画布高]
	ScrollY float64
}

// NewBackgroundSystem 创建背景系统
func NewBackgroundSystem(em *ecs.EntityManager, profile *config.GameProfile, rng Random) *BackgroundSystem {
	return &BackgroundSystem{em: em, profile: profile, rng: rng}
}

// SpawnStars 在画布内随机撒下星星
// 速度 [0.5, 2.5)，大小 [0, 2)
func (s *BackgroundSystem) SpawnStars() {
	w, h := s.profile.Canvas.Width, s.profile.Canvas.Height
	for i := 0; i < s.profile.Visual.Stars; i++ {
		entities.NewStar(s.em,
			s.rng.Float64()*w,
			s.rng.Float64()*h,
			s.rng.Float64()*2+0.5,
			s.rng.Float64()*2,
		)
	}
}

// Update 滚动背景并移动星星；落到画布下方的星星回到顶部并随机横坐标
func (s *BackgroundSystem) Update() {
	w, h := s.profile.Canvas.Width, s.profile.Canvas.Height

	s.ScrollY += s.profile.Visual.BackgroundFall
	if s.ScrollY > h {
		s.ScrollY = 0
	}

	for _, id := range ecs.GetEntitiesWith2[*components.StarComponent, *components.PositionComponent](s.em) {
		star, _ := ecs.GetComponent[*components.StarComponent](s.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.em, id)

		pos.Y += star.Speed
		if pos.Y > h {
			pos.Y = starRespawnY
			pos.X = s.rng.Float64() * w
		}
	}
}
