package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// 默认心理活动括号
const (
	DefaultThoughtOpen  = "（"
	DefaultThoughtClose = "）"
)

// DialogueScript 对话脚本
type DialogueScript struct {
	Thought ThoughtBrackets      `yaml:"thought"`
	Lines   []DialogueLineConfig `yaml:"lines"`
}

// ThoughtBrackets 心理活动括号对
type ThoughtBrackets struct {
	Open  string `yaml:"open"`
	Close string `yaml:"close"`
}

// DialogueLineConfig 一行台词
type DialogueLineConfig struct {
	Speaker string `yaml:"speaker"`
	Side    string `yaml:"side"` // left / right
	Text    string `yaml:"text"`
}

// LoadDialogueScript 从数据文件加载对话脚本
func LoadDialogueScript(path string) (*DialogueScript, error) {
	data, err := ReadDataFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dialogue script %s: %w", path, err)
	}
	script, err := ParseDialogueScript(data)
	if err != nil {
		return nil, fmt.Errorf("dialogue script %s: %w", path, err)
	}
	return script, nil
}

// ParseDialogueScript 解析并校验对话脚本
func ParseDialogueScript(data []byte) (*DialogueScript, error) {
	var script DialogueScript
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("failed to parse dialogue YAML: %w", err)
	}

	if script.Thought.Open == "" {
		script.Thought.Open = DefaultThoughtOpen
	}
	if script.Thought.Close == "" {
		script.Thought.Close = DefaultThoughtClose
	}

	if err := validateDialogueScript(&script); err != nil {
		return nil, fmt.Errorf("invalid dialogue script: %w", err)
	}
	return &script, nil
}

func validateDialogueScript(s *DialogueScript) error {
	if len(s.Lines) == 0 {
		return fmt.Errorf("lines cannot be empty")
	}
	for i, l := range s.Lines {
		if l.Speaker == "" {
			return fmt.Errorf("lines[%d].speaker cannot be empty", i)
		}
		switch l.Side {
		case "", "left", "right":
		default:
			return fmt.Errorf("lines[%d].side must be left or right, got %q", i, l.Side)
		}
	}
	return nil
}

// DefaultDialogueScript 脚本缺失时使用的最小对话
func DefaultDialogueScript() *DialogueScript {
	return &DialogueScript{
		Thought: ThoughtBrackets{Open: DefaultThoughtOpen, Close: DefaultThoughtClose},
		Lines: []DialogueLineConfig{
			{Speaker: "???", Side: "right", Text: "..."},
		},
	}
}
