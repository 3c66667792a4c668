package systems

import (
	"testing"

	"github.com/decker502/danmaku/pkg/types"
)

func TestPhaseForRatio(t *testing.T) {
	thresholds := []float64{0.66, 0.33}
	tests := []struct {
		ratio float64
		want  int
	}{
		{1.0, 0},
		{0.7, 0},
		{0.661, 0},
		{0.66, 1},
		{0.5, 1},
		{0.331, 1},
		{0.33, 2},
		{0.2, 2},
		{0, 2},
	}
	for _, tt := range tests {
		if got := PhaseForRatio(tt.ratio, thresholds); got != tt.want {
			t.Errorf("PhaseForRatio(%v) = %d, want %d", tt.ratio, got, tt.want)
		}
	}
}

func TestBossPhaseFlipsAtHP99(t *testing.T) {
	thresholds := []float64{0.66, 0.33}
	if got := PhaseForRatio(100.0/150.0, thresholds); got != 0 {
		t.Errorf("hp 100/150 should be phase 0, got %d", got)
	}
	if got := PhaseForRatio(99.0/150.0, thresholds); got != 1 {
		t.Errorf("hp 99/150 should be phase 1, got %d", got)
	}
}

func TestDifficultyLevel(t *testing.T) {
	d := NewDifficultyEngine(loadTestProfile(t, "extended"))
	tests := []struct{ frame, want int }{
		{0, 0}, {599, 0}, {600, 1}, {1799, 2}, {1800, 3}, {-5, 0},
	}
	for _, tt := range tests {
		if got := d.Level(tt.frame); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.frame, got, tt.want)
		}
	}
}

func TestEnemyCooldown(t *testing.T) {
	ext := NewDifficultyEngine(loadTestProfile(t, "extended"))
	classic := NewDifficultyEngine(loadTestProfile(t, "classic"))

	tests := []struct {
		name   string
		engine *DifficultyEngine
		kind   types.EnemyKind
		phase  int
		frame  int
		want   int
	}{
		{"extended basic level 0", ext, types.EnemyBasic, 0, 0, 60},
		{"extended basic level 3", ext, types.EnemyBasic, 0, 1800, 45},
		{"extended basic floor", ext, types.EnemyBasic, 0, 600 * 20, 30},
		{"extended boss phase 0", ext, types.EnemyBoss, 0, 0, 20},
		{"extended boss phase 1", ext, types.EnemyBoss, 1, 0, 15},
		{"extended boss phase 2", ext, types.EnemyBoss, 2, 0, 10},
		{"extended boss phase clamped", ext, types.EnemyBoss, 7, 0, 10},
		{"classic basic", classic, types.EnemyBasic, 0, 6000, 40},
		{"classic boss any phase", classic, types.EnemyBoss, 2, 0, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.engine.EnemyCooldown(tt.kind, tt.phase, tt.frame); got != tt.want {
				t.Errorf("EnemyCooldown = %d, want %d", got, tt.want)
			}
		})
	}
}
