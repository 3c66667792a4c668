package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/danmaku/pkg/types"
)

func TestLoadBuiltinProfiles(t *testing.T) {
	tests := []struct {
		file       string
		name       string
		width      float64
		height     float64
		bossPhases int
		policy     string
		bossFrame  int
		bgmVolume  float64
	}{
		{"../../data/profiles/extended.yaml", "extended", 500, 750, 3, BossPolicyThreshold, 1800, 0.5},
		{"../../data/profiles/classic.yaml", "classic", 400, 600, 1, BossPolicyCadence, 480, 0.1},
		{"../../data/profiles/bloom.yaml", "bloom", 500, 750, 3, BossPolicyThreshold, 1800, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := LoadProfile(tt.file)
			if err != nil {
				t.Fatalf("LoadProfile(%s) failed: %v", tt.file, err)
			}
			if p.Name != tt.name {
				t.Errorf("expected name %q, got %q", tt.name, p.Name)
			}
			if p.Canvas.Width != tt.width || p.Canvas.Height != tt.height {
				t.Errorf("expected canvas %vx%v, got %vx%v", tt.width, tt.height, p.Canvas.Width, p.Canvas.Height)
			}
			if len(p.Enemies.Boss.Phases) != tt.bossPhases {
				t.Errorf("expected %d boss phases, got %d", tt.bossPhases, len(p.Enemies.Boss.Phases))
			}
			if p.Spawn.Boss.Policy != tt.policy || p.Spawn.Boss.Frame != tt.bossFrame {
				t.Errorf("unexpected boss trigger %+v", p.Spawn.Boss)
			}
			if p.Audio.BGMVolume != tt.bgmVolume {
				t.Errorf("expected bgm volume %v, got %v", tt.bgmVolume, p.Audio.BGMVolume)
			}
			// 共同的自机参数
			if p.Player.Speed != 5 || p.Player.SlowSpeed != 2 || p.Player.HitboxRadius != 3 {
				t.Errorf("unexpected player tuning %+v", p.Player)
			}
			if p.Player.EntryStartY(p.Canvas.Height) != tt.height+50 {
				t.Errorf("entry start should be canvas height + 50")
			}
			if p.Player.EntryTargetY(p.Canvas.Height) != tt.height-100 {
				t.Errorf("entry target should be canvas height - 100")
			}
			if p.Enemies.Boss.HP != 150 || p.Enemies.Basic.HP != 2 {
				t.Errorf("unexpected enemy hp: basic=%d boss=%d", p.Enemies.Basic.HP, p.Enemies.Boss.HP)
			}
		})
	}
}

func TestExtendedProfileEmitters(t *testing.T) {
	p, err := LoadProfile("../../data/profiles/extended.yaml")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}

	wantCooldowns := []int{20, 15, 10}
	for i, ph := range p.Enemies.Boss.Phases {
		if ph.Cooldown != wantCooldowns[i] {
			t.Errorf("phase %d cooldown = %d, want %d", i, ph.Cooldown, wantCooldowns[i])
		}
	}

	last := p.Enemies.Boss.Phases[2].Emitters
	if len(last) != 2 || last[0].Count != 16 || last[1].Kind != EmitterAimed {
		t.Fatalf("unexpected final phase emitters %+v", last)
	}
	if last[1].BulletPattern() != types.BulletAimed {
		t.Errorf("aimed emitter should fire aimed bullets")
	}
}

func TestCooldownAndSpawnIntervals(t *testing.T) {
	c := CooldownConfig{Base: 60, PerLevel: 5, Min: 30}
	tests := []struct {
		level int
		want  int
	}{
		{0, 60}, {1, 55}, {5, 35}, {6, 30}, {20, 30},
	}
	for _, tt := range tests {
		if got := c.At(tt.level); got != tt.want {
			t.Errorf("CooldownConfig.At(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}

	top := SpawnRule{Interval: 60, PerLevel: 5, Min: 20}
	if top.IntervalAt(0) != 60 || top.IntervalAt(8) != 20 || top.IntervalAt(100) != 20 {
		t.Errorf("unexpected top spawn intervals")
	}
	side := SpawnRule{Interval: 60, PerLevel: 3, Min: 30}
	if side.IntervalAt(2) != 54 || side.IntervalAt(10) != 30 {
		t.Errorf("unexpected side spawn intervals")
	}
	if (SpawnRule{}).Enabled() {
		t.Error("zero rule should be disabled")
	}
}

func TestParseProfileValidation(t *testing.T) {
	base, err := os.ReadFile("../../data/profiles/extended.yaml")
	if err != nil {
		t.Fatalf("failed to read base profile: %v", err)
	}

	tests := []struct {
		name        string
		from, to    string
		errContains string
	}{
		{"empty name", "name: extended", "name: \"\"", "name cannot be empty"},
		{"bad policy", "policy: threshold", "policy: sometimes", "spawn.boss.policy"},
		{"bad emitter kind", "kind: aimed", "kind: laser", "unknown emitter kind"},
		{"bad pattern", "pattern: cross", "pattern: zigzag", "unknown bullet pattern"},
		{"zero lives", "lives: 3", "lives: 0", "player.lives"},
		{"volume out of range", "bgmVolume: 0.5", "bgmVolume: 1.5", "audio.bgmVolume"},
		{"thresholds not decreasing", "phaseThresholds: [0.66, 0.33]", "phaseThresholds: [0.33, 0.66]", "strictly decreasing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(string(base), tt.from, tt.to, 1)
			if data == string(base) {
				t.Fatalf("replacement %q not found in profile", tt.from)
			}
			_, err := ParseProfile([]byte(data))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
			}
		})
	}
}

func TestParseProfileDefaults(t *testing.T) {
	p, err := LoadProfile("../../data/profiles/classic.yaml")
	if err != nil {
		t.Fatalf("LoadProfile failed: %v", err)
	}
	// classic.yaml 省略了这些字段
	if p.Enemies.RemoveMargin != 50 || p.Enemies.BulletMargin != 20 {
		t.Errorf("unexpected margins %v/%v", p.Enemies.RemoveMargin, p.Enemies.BulletMargin)
	}
	if p.Spawn.LevelFrames != 600 {
		t.Errorf("expected default levelFrames 600, got %d", p.Spawn.LevelFrames)
	}
	if len(p.Enemies.Boss.PhaseThresholds) != 2 {
		t.Errorf("expected default phase thresholds, got %v", p.Enemies.Boss.PhaseThresholds)
	}
	if p.Spawn.Pair.Enabled() {
		t.Error("classic profile has no pair spawns")
	}
}

func TestLoadProfileErrors(t *testing.T) {
	if _, err := LoadProfile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("name: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadProfile(bad)
	if err == nil || !strings.Contains(err.Error(), "failed to parse profile YAML") {
		t.Errorf("expected parse error, got %v", err)
	}
}
