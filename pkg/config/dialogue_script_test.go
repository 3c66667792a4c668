package config

import (
	"strings"
	"testing"
)

func TestLoadBossDialogue(t *testing.T) {
	script, err := LoadDialogueScript("../../data/dialogue/boss.yaml")
	if err != nil {
		t.Fatalf("LoadDialogueScript failed: %v", err)
	}
	if len(script.Lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(script.Lines))
	}
	if script.Thought.Open != "（" || script.Thought.Close != "）" {
		t.Errorf("unexpected thought brackets %+v", script.Thought)
	}

	last := script.Lines[len(script.Lines)-1].Text
	if !strings.HasPrefix(last, script.Thought.Open) || !strings.HasSuffix(last, script.Thought.Close) {
		t.Errorf("last line should be a thought line, got %q", last)
	}
}

func TestParseDialogueScript(t *testing.T) {
	tests := []struct {
		name        string
		yaml        string
		wantErr     bool
		errContains string
		open        string
	}{
		{
			name: "custom brackets",
			yaml: `
thought: { open: "(", close: ")" }
lines:
  - { speaker: A, side: left, text: "(hmm)" }
`,
			open: "(",
		},
		{
			name: "default brackets",
			yaml: `
lines:
  - { speaker: A, text: "hi" }
`,
			open: DefaultThoughtOpen,
		},
		{
			name:        "empty lines",
			yaml:        "lines: []",
			wantErr:     true,
			errContains: "lines cannot be empty",
		},
		{
			name: "bad side",
			yaml: `
lines:
  - { speaker: A, side: top, text: "hi" }
`,
			wantErr:     true,
			errContains: "side must be left or right",
		},
		{
			name: "missing speaker",
			yaml: `
lines:
  - { text: "hi" }
`,
			wantErr:     true,
			errContains: "speaker cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			script, err := ParseDialogueScript([]byte(tt.yaml))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if script.Thought.Open != tt.open {
				t.Errorf("expected open bracket %q, got %q", tt.open, script.Thought.Open)
			}
		})
	}
}
