package components

import "github.com/decker502/danmaku/pkg/types"

// DialogueLine 一行台词
type DialogueLine struct {
	Speaker string
	Side    types.DialogueSide
	Text    string
}

// DialogueComponent 对话会话（纯数据）
//
// 只在游戏处于 Dialogue 模式时存在；对话结束后实体被销毁。
// 打字机效果完全由帧时间驱动：Elapsed 累加每帧的 deltaTime，
// 每满 CharDelay 秒多显示一个字符（按 rune 计数）。
type DialogueComponent struct {
	Lines  []DialogueLine
	Cursor int
	State  types.DialogueState

	// Revealed 当前行已显示的字符数（rune）
	Revealed int
	// Elapsed 自上一个字符显示以来累计的时间（秒）
	Elapsed float64
	// CharDelay 每个字符的显示间隔（秒）
	CharDelay float64

	// ThoughtOpen / ThoughtClose 心理活动括号，以此包裹的台词立即完整显示
	ThoughtOpen  string
	ThoughtClose string
}

// CurrentLine 返回当前行；越界时返回 false
func (d *DialogueComponent) CurrentLine() (DialogueLine, bool) {
	if d.Cursor < 0 || d.Cursor >= len(d.Lines) {
		return DialogueLine{}, false
	}
	return d.Lines[d.Cursor], true
}
