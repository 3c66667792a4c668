package entities

import (
	"testing"

	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/config"
	"github.com/decker502/danmaku/pkg/ecs"
	"github.com/decker502/danmaku/pkg/types"
)

func loadExtended(t *testing.T) *config.GameProfile {
	t.Helper()
	p, err := config.LoadProfile("../../data/profiles/extended.yaml")
	if err != nil {
		t.Fatalf("failed to load profile: %v", err)
	}
	return p
}

func TestNewPlayer(t *testing.T) {
	p := loadExtended(t)
	em := ecs.NewEntityManager()

	id := NewPlayer(em, p)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("player should have a position")
	}
	if pos.X != 250 || pos.Y != 650 {
		t.Errorf("player should start at (250, 650), got (%v, %v)", pos.X, pos.Y)
	}

	pc, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		t.Fatal("player component missing")
	}
	if pc.EntryStartY != 800 || pc.EntryTargetY != 650 || pc.EntrySpeed != 3 {
		t.Errorf("unexpected entry settings %+v", pc)
	}
	if pc.Entering {
		t.Error("player should not be entering before the game starts")
	}
}

func TestNewEnemies(t *testing.T) {
	p := loadExtended(t)
	em := ecs.NewEntityManager()

	tests := []struct {
		name   string
		create func() ecs.EntityID
		kind   types.EnemyKind
		hp     int
		size   float64
	}{
		{"basic", func() ecs.EntityID { return NewBasicEnemy(em, p.Enemies.Basic, 100, -20, 0) }, types.EnemyBasic, 2, 32},
		{"boss", func() ecs.EntityID { return NewBoss(em, p.Enemies.Boss, 250, -50, 0) }, types.EnemyBoss, 150, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.create()
			enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
			if !ok {
				t.Fatal("enemy component missing")
			}
			if enemy.Kind != tt.kind || enemy.ShootCooldown != 0 {
				t.Errorf("unexpected enemy %+v", enemy)
			}
			hp, ok := ecs.GetComponent[*components.HealthComponent](em, id)
			if !ok || hp.CurrentHealth != tt.hp || hp.MaxHealth != tt.hp {
				t.Errorf("unexpected health %+v", hp)
			}
			box, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
			if !ok {
				t.Fatal("enemy should be collidable")
			}
			if box.Width != tt.size || box.Height != tt.size {
				t.Errorf("collision box = %vx%v, want %vx%v", box.Width, box.Height, tt.size, tt.size)
			}
		})
	}
}

func TestNewEnemyBulletRadius(t *testing.T) {
	em := ecs.NewEntityManager()
	for _, pat := range []types.BulletPattern{types.BulletNormal, types.BulletSpiral, types.BulletCross, types.BulletAimed} {
		id := NewEnemyBullet(em, 0, 0, 1, 1, pat)
		b, _ := ecs.GetComponent[*components.EnemyBulletComponent](em, id)
		if b.Radius != pat.Radius() {
			t.Errorf("%s bullet radius = %v, want %v", pat, b.Radius, pat.Radius())
		}
	}
}

func TestNewParticle(t *testing.T) {
	em := ecs.NewEntityManager()
	id := NewParticle(em, 10, 10, 0, 3, ColorHitSpark, 20)

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VX != 3 || vel.VY != 0 {
		t.Errorf("angle 0 should move right, got (%v, %v)", vel.VX, vel.VY)
	}
	part, _ := ecs.GetComponent[*components.ParticleComponent](em, id)
	if part.Life != 20 || part.MaxLife != 20 || part.LifeRatio() != 1 {
		t.Errorf("unexpected particle %+v", part)
	}
}

func TestNewDialogueSessionCopiesLines(t *testing.T) {
	em := ecs.NewEntityManager()
	lines := []components.DialogueLine{{Speaker: "A", Text: "hello"}}

	id := NewDialogueSession(em, lines, 0.03, "", "")
	lines[0].Text = "changed"

	d, ok := ecs.GetComponent[*components.DialogueComponent](em, id)
	if !ok {
		t.Fatal("dialogue component missing")
	}
	if d.Lines[0].Text != "hello" {
		t.Error("session should own a copy of the lines")
	}
	if d.ThoughtOpen != config.DefaultThoughtOpen || d.State != types.DialogueIdle {
		t.Errorf("unexpected session defaults %+v", d)
	}
}
