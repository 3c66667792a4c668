package scenes

import (
	"github.com/decker502/danmaku/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyBindings 每个输入动作对应的按键（任意一个按下即视为按下）
type KeyBindings struct {
	Left, Right, Up, Down []ebiten.Key
	Fire, Bomb, Focus     []ebiten.Key
	Advance, Confirm      []ebiten.Key
}

// DefaultKeyBindings 方向键/WASD 移动，Z/空格射击，X 炸弹，Shift 低速，
// Z/Enter/空格推进对话，Enter 开始或重新开始
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Up:      []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		Down:    []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		Fire:    []ebiten.Key{ebiten.KeyZ, ebiten.KeySpace},
		Bomb:    []ebiten.Key{ebiten.KeyX},
		Focus:   []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
		Advance: []ebiten.Key{ebiten.KeyZ, ebiten.KeyEnter, ebiten.KeySpace},
		Confirm: []ebiten.Key{ebiten.KeyEnter},
	}
}

// KeyboardInput 从 Ebitengine 键盘状态采样输入，实现 game.InputSource
type KeyboardInput struct {
	bindings KeyBindings
	pressed  func(ebiten.Key) bool
}

// NewKeyboardInput 创建键盘输入源
func NewKeyboardInput(bindings KeyBindings) *KeyboardInput {
	return &KeyboardInput{bindings: bindings, pressed: ebiten.IsKeyPressed}
}

// Poll 实现 game.InputSource
func (k *KeyboardInput) Poll() game.InputState {
	return k.bindings.Sample(k.pressed)
}

// Sample 用给定的按键查询函数生成一帧输入
func (b KeyBindings) Sample(pressed func(ebiten.Key) bool) game.InputState {
	held := func(keys []ebiten.Key) bool {
		for _, key := range keys {
			if pressed(key) {
				return true
			}
		}
		return false
	}
	return game.InputState{
		Left:    held(b.Left),
		Right:   held(b.Right),
		Up:      held(b.Up),
		Down:    held(b.Down),
		Fire:    held(b.Fire),
		Bomb:    held(b.Bomb),
		Focus:   held(b.Focus),
		Advance: held(b.Advance),
		Confirm: held(b.Confirm),
	}
}
