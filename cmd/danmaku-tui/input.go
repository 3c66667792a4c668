package main

import (
	"github.com/decker502/danmaku/pkg/game"
	"github.com/gdamore/tcell/v2"
)

// action 终端里可以"按住"的动作
type action int

const (
	actLeft action = iota
	actRight
	actUp
	actDown
	actFire
	actBomb
	actAdvance
	actConfirm
	actionCount
)

// 终端只发送按下事件（长按时靠系统的按键重复），没有抬起事件。
// keyLatch 把每次按下保持若干 tick，连续的重复事件就会被看成一直按住。
const (
	moveHoldTicks = 6
	fireHoldTicks = 20
	edgeHoldTicks = 1
)

var holdTicks = [actionCount]int{
	actLeft:    moveHoldTicks,
	actRight:   moveHoldTicks,
	actUp:      moveHoldTicks,
	actDown:    moveHoldTicks,
	actFire:    fireHoldTicks,
	actBomb:    edgeHoldTicks,
	actAdvance: edgeHoldTicks,
	actConfirm: edgeHoldTicks,
}

// keyLatch 把终端按键事件转换为 game.InputState
// 只在主 goroutine 中使用，不需要加锁
type keyLatch struct {
	remaining [actionCount]int
	focus     bool
}

// press 按下一个动作；相反方向立即松开
func (l *keyLatch) press(a action) {
	switch a {
	case actLeft:
		l.remaining[actRight] = 0
	case actRight:
		l.remaining[actLeft] = 0
	case actUp:
		l.remaining[actDown] = 0
	case actDown:
		l.remaining[actUp] = 0
	}
	l.remaining[a] = holdTicks[a]
}

// toggleFocus 终端收不到 Shift 单独按下，低速模式改为切换
func (l *keyLatch) toggleFocus() {
	l.focus = !l.focus
}

// Poll 返回本 tick 的输入并让所有保持计数减一
func (l *keyLatch) Poll() game.InputState {
	held := func(a action) bool { return l.remaining[a] > 0 }
	in := game.InputState{
		Left:    held(actLeft),
		Right:   held(actRight),
		Up:      held(actUp),
		Down:    held(actDown),
		Fire:    held(actFire),
		Bomb:    held(actBomb),
		Focus:   l.focus,
		Advance: held(actAdvance),
		Confirm: held(actConfirm),
	}
	for i := range l.remaining {
		if l.remaining[i] > 0 {
			l.remaining[i]--
		}
	}
	return in
}

// keyCommand 按键对应的非游戏命令
type keyCommand int

const (
	cmdNone keyCommand = iota
	cmdQuit
	cmdToggleMusic
)

// handleKey 处理一个按键事件，返回需要主循环执行的命令
func (l *keyLatch) handleKey(ev *tcell.EventKey) keyCommand {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit
	case tcell.KeyLeft:
		l.press(actLeft)
	case tcell.KeyRight:
		l.press(actRight)
	case tcell.KeyUp:
		l.press(actUp)
	case tcell.KeyDown:
		l.press(actDown)
	case tcell.KeyEnter:
		l.press(actConfirm)
		l.press(actAdvance)
	case tcell.KeyRune:
		return l.handleRune(ev.Rune())
	}
	return cmdNone
}

func (l *keyLatch) handleRune(r rune) keyCommand {
	switch r {
	case 'q', 'Q':
		return cmdQuit
	case 'm', 'M':
		return cmdToggleMusic
	case 'a', 'A', 'h':
		l.press(actLeft)
	case 'd', 'D', 'l':
		l.press(actRight)
	case 'w', 'W', 'k':
		l.press(actUp)
	case 's', 'S', 'j':
		l.press(actDown)
	case 'z', 'Z', ' ':
		l.press(actFire)
		l.press(actAdvance)
	case 'x', 'X':
		l.press(actBomb)
	case 'f', 'F':
		l.toggleFocus()
	}
	return cmdNone
}
