package entities

import (
	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/types"
)

// LinesFromScript 把对话脚本转换为组件使用的台词列表
func LinesFromScript(script *config.DialogueScript) []components.DialogueLine {
	lines := make([]components.DialogueLine, 0, len(script.Lines))
	for _, l := range script.Lines {
		lines = append(lines, components.DialogueLine{
			Speaker: l.Speaker,
			Side:    types.ParseDialogueSide(l.Side),
			Text:    l.Text,
		})
	}
	return lines
}

// NewDialogueSession 创建对话会话实体（初始为 Idle，由 DialogueSystem.Start 推进）
func NewDialogueSession(em *ecs.EntityManager, lines []components.DialogueLine, charDelay float64, open, close string) ecs.EntityID {
	if open == "" {
		open = config.DefaultThoughtOpen
	}
	if close == "" {
		close = config.DefaultThoughtClose
	}

	copied := make([]components.DialogueLine, len(lines))
	copy(copied, lines)

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.DialogueComponent{
		Lines:        copied,
		State:        types.DialogueIdle,
		CharDelay:    charDelay,
		ThoughtOpen:  open,
		ThoughtClose: close,
	})
	return id
}
