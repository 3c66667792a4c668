package game

// InputState 一帧的输入快照（只读）
//
// 输入源每帧只采样一次，所有系统读取同一份快照。
// 上升沿检测（炸弹、对话推进、确认）由消费方对比上一帧完成。
type InputState struct {
	Left, Right, Up, Down bool

	Fire  bool // 射击（按住连发）
	Bomb  bool // 炸弹（上升沿触发）
	Focus bool // 低速模式

	Advance bool // 推进对话
	Confirm bool // 开始 / 重新开始
}

// Any 是否有任意按键按下
func (s InputState) Any() bool {
	return s.Left || s.Right || s.Up || s.Down || s.Fire || s.Bomb || s.Focus || s.Advance || s.Confirm
}

// InputSource 输入源：键盘、终端或自动驾驶
type InputSource interface {
	Poll() InputState
}

// InputFunc 把普通函数适配为 InputSource
type InputFunc func() InputState

// Poll 实现 InputSource
func (f InputFunc) Poll() InputState {
	return f()
}

// StaticInput 始终返回同一输入的输入源（测试与模拟用）
type StaticInput InputState

// Poll 实现 InputSource
func (s StaticInput) Poll() InputState {
	return InputState(s)
}
