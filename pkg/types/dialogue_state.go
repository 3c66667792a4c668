package types

// DialogueState 对话系统的状态
//
// 状态转换：
//
//	Idle → Presenting → Typing → WaitingForAdvance → (下一行 Presenting | Ended)
//
// 心理活动（括号包裹）的台词跳过 Typing，直接进入 WaitingForAdvance。
type DialogueState int

const (
	DialogueIdle DialogueState = iota
	DialoguePresenting
	DialogueTyping
	DialogueWaitingForAdvance
	DialogueEnded
)

func (s DialogueState) String() string {
	switch s {
	case DialogueIdle:
		return "Idle"
	case DialoguePresenting:
		return "Presenting"
	case DialogueTyping:
		return "Typing"
	case DialogueWaitingForAdvance:
		return "WaitingForAdvance"
	case DialogueEnded:
		return "Ended"
	default:
		return "Unknown"
	}
}

// DialogueSide 说话人所在的一侧（决定立绘高亮）
type DialogueSide int

const (
	SideLeft DialogueSide = iota
	SideRight
)

func (s DialogueSide) String() string {
	if s == SideRight {
		return "right"
	}
	return "left"
}

// ParseDialogueSide 解析 "left"/"right"，其他值按 left 处理
func ParseDialogueSide(s string) DialogueSide {
	if s == "right" {
		return SideRight
	}
	return SideLeft
}
