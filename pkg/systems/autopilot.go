package systems

import (
	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/game"
)

// 自动驾驶参数
const (
	autopilotDodgeRadius = 60.0
	autopilotAlignSlack  = 8.0
)

// Autopilot 简单的自动操作，用于无头模拟
//
// 一直射击；附近有敌弹时低速横向躲避，否则对准最近的敌人。
// 对话中每隔一帧按一次推进键，标题画面和 GameOver 时按确认键。
type Autopilot struct {
	loop *GameLoop
	tick int
	// Bombs 被弹前是否自动使用炸弹
	Bombs bool
}

// NewAutopilot 创建自动驾驶输入源
func NewAutopilot(loop *GameLoop) *Autopilot {
	return &Autopilot{loop: loop}
}

// Poll 实现 game.InputSource
func (a *Autopilot) Poll() game.InputState {
	a.tick++
	pulse := a.tick%2 == 0

	switch a.loop.State().Mode {
	case game.ModeNotStarted, game.ModeGameOver:
		return game.InputState{Confirm: pulse}
	case game.ModeDialogue:
		return game.InputState{Advance: pulse}
	}

	in := game.InputState{Fire: true}
	x, y, ok := a.loop.PlayerPosition()
	if !ok {
		return in
	}
	em := a.loop.World()

	if b, found := nearestEnemyBullet(em, x, y); found {
		dx, dy := b.X-x, b.Y-y
		if dx*dx+dy*dy < autopilotDodgeRadius*autopilotDodgeRadius {
			in.Focus = true
			if dx > 0 {
				in.Left = true
			} else {
				in.Right = true
			}
			if dy < 0 {
				in.Down = true
			}
			in.Bomb = a.Bombs && pulse && !a.loop.Player().IsInvulnerable()
			return in
		}
	}

	if tx, found := nearestEnemyX(em, x); found {
		switch {
		case tx < x-autopilotAlignSlack:
			in.Left = true
		case tx > x+autopilotAlignSlack:
			in.Right = true
		}
	}
	return in
}

// nearestEnemyBullet 距离 (x, y) 最近的敌弹
func nearestEnemyBullet(em *ecs.EntityManager, x, y float64) (*components.PositionComponent, bool) {
	var best *components.PositionComponent
	bestD := 0.0
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyBulletComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		dx, dy := pos.X-x, pos.Y-y
		d := dx*dx + dy*dy
		if best == nil || d < bestD {
			best, bestD = pos, d
		}
	}
	return best, best != nil
}

// nearestEnemyX 横向距离最近的敌人的 x 坐标
func nearestEnemyX(em *ecs.EntityManager, x float64) (float64, bool) {
	found := false
	best, bestD := 0.0, 0.0
	for _, id := range ecs.GetEntitiesWith2[*components.EnemyComponent, *components.PositionComponent](em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
		d := pos.X - x
		if d < 0 {
			d = -d
		}
		if !found || d < bestD {
			best, bestD, found = pos.X, d, true
		}
	}
	return best, found
}
