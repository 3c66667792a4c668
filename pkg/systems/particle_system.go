package systems

import (
	"github.com/decker502/danmaku/pkg/components"
	"github.com/decker502/danmaku/pkg/ecs"
)

// ParticleDrag is the per-tick velocity multiplier applied to every particle.
const ParticleDrag = 0.98

// ParticleSystem moves particles, applies drag and removes expired ones.
//
// Particles are purely cosmetic: they never collide and never affect
// scoring, so the system only talks to the EntityManager.
type ParticleSystem struct {
	em *ecs.EntityManager
}

// NewParticleSystem creates a new ParticleSystem instance.
func NewParticleSystem(em *ecs.EntityManager) *ParticleSystem {
	return &ParticleSystem{em: em}
}

// Update advances all particles by one tick.
// A particle whose life reaches zero is marked for removal.
func (ps *ParticleSystem) Update() {
	for _, id := range ecs.GetEntitiesWith3[*components.ParticleComponent, *components.PositionComponent, *components.VelocityComponent](ps.em) {
		p, _ := ecs.GetComponent[*components.ParticleComponent](ps.em, id)
		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)

		pos.X += vel.VX
		pos.Y += vel.VY
		vel.VX *= ParticleDrag
		vel.VY *= ParticleDrag
		p.Life--

		if p.Life <= 0 {
			ps.em.DestroyEntity(id)
		}
	}
}

// Count returns the number of live particles.
func (ps *ParticleSystem) Count() int {
	return ecs.CountEntitiesWith1[*components.ParticleComponent](ps.em)
}
