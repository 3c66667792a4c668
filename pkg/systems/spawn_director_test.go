package systems

import (
	"math"
	"testing"

	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/entities"
	"github.com/decker502/danmaku/pkg/game"
	"github.com/decker502/danmaku/pkg/types"
)

// newTestDirector 使用固定随机数 0.5 的出怪导演
func newTestDirector(t *testing.T, profile string) (*GameLoop, *SpawnDirector) {
	t.Helper()
	gl := newTestLoop(t, profile)
	gl.gs.Reset()
	d := NewSpawnDirector(gl.em, gl.gs, gl.profile, fixedRandom(0.5), gl.difficulty, gl.dialogue, lines("boss incoming"))
	return gl, d
}

func enemyPositions(gl *GameLoop) [][2]float64 {
	var out [][2]float64
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](gl.em) {
		pos, _ := ecs.GetComponent[*components.PositionComponent](gl.em, id)
		out = append(out, [2]float64{pos.X, pos.Y})
	}
	return out
}

func TestSpawnDirectorExtendedRules(t *testing.T) {
	tests := []struct {
		name  string
		frame int
		want  [][2]float64
	}{
		{"top spawn at level 0", 60, [][2]float64{{250, -20}}},
		{"nothing off cadence", 61, nil},
		{"side spawn at level 2", 1242, [][2]float64{{520, 200}}},
		{"pair at level 4", 2430, [][2]float64{{500.0/3 - 20, -20}, {500.0/3*2 - 20, -20}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gl, d := newTestDirector(t, "extended")
			gl.gs.FrameCount = tt.frame
			d.Update()

			got := enemyPositions(gl)
			if len(got) != len(tt.want) {
				t.Fatalf("Spawned %v, want %v", got, tt.want)
			}
			for i := range got {
				if math.Abs(got[i][0]-tt.want[i][0]) > 1e-9 || got[i][1] != tt.want[i][1] {
					t.Errorf("enemy %d at %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestNoBasicSpawnsWhileBossAlive(t *testing.T) {
	gl, d := newTestDirector(t, "extended")
	entities.NewBoss(gl.em, gl.profile.Enemies.Boss, 250, 100, 0)

	for f := 1; f <= 3000; f++ {
		gl.gs.FrameCount = f
		d.Update()
	}
	if n := CountEnemies(gl.em, types.EnemyBasic); n != 0 {
		t.Errorf("Basic enemies spawned under a boss: %d", n)
	}
	if gl.dialogue.Active() {
		t.Error("Boss trigger must not fire while a boss is alive")
	}
}

func TestBossThresholdStartsDialogue(t *testing.T) {
	gl, d := newTestDirector(t, "extended")

	gl.gs.FrameCount = 1799
	d.Update()
	if gl.dialogue.Active() {
		t.Fatal("Dialogue started too early")
	}

	gl.gs.FrameCount = 1800
	d.Update()
	if !gl.dialogue.Active() || gl.gs.Mode != game.ModeDialogue {
		t.Fatal("Dialogue should start at frame 1800")
	}
	if CountEnemies(gl.em, types.EnemyBoss) != 0 {
		t.Error("Boss must not spawn before the dialogue ends")
	}
}

func TestBossTriggerGuardedByShownFlag(t *testing.T) {
	gl, d := newTestDirector(t, "extended")
	gl.gs.BossDialogueShown = true

	gl.gs.FrameCount = 1800
	d.Update()
	if gl.dialogue.Active() {
		t.Error("Boss dialogue must only be shown once per game")
	}
}

func TestClassicCadence(t *testing.T) {
	gl, d := newTestDirector(t, "classic")

	gl.gs.FrameCount = 90
	d.Update()
	if n := CountEnemies(gl.em, types.EnemyBasic); n != 1 {
		t.Errorf("Frame 90: only the top rule fires before frame 120, got %d", n)
	}

	gl.gs.FrameCount = 135
	d.Update()
	if n := CountEnemies(gl.em, types.EnemyBasic); n != 2 {
		t.Errorf("Frame 135: side rule should add one enemy, got %d", n)
	}

	gl.gs.FrameCount = 480
	d.Update()
	if !gl.dialogue.Active() {
		t.Fatal("Classic boss cadence should trigger at frame 480")
	}
	for gl.dialogue.Active() {
		gl.dialogue.Advance()
	}
	gl.em.RemoveMarkedEntities()
	boss := ecs.GetEntitiesWith1[*components.EnemyComponent](gl.em)
	if len(boss) != 1 || CountEnemies(gl.em, types.EnemyBoss) != 1 {
		t.Fatalf("Expected exactly the boss on field, got %d enemies", len(boss))
	}

	// 首领被击破后再到 960 帧也不会再触发
	gl.em.DestroyEntity(boss[0])
	gl.em.RemoveMarkedEntities()
	gl.gs.FrameCount = 960
	d.Update()
	if gl.dialogue.Active() {
		t.Error("Cadence must respect BossDialogueShown")
	}
}
