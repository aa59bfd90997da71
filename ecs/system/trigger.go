package system

import (
	"github.com/milk9111/mistwood/ecs"
	"github.com/milk9111/mistwood/ecs/component"
	"github.com/milk9111/mistwood/ecs/entity"
	"github.com/milk9111/mistwood/prefabs"
)

// TriggerSystem applies what the player touched this tick. Outcomes that end
// the stage are pushed as events for the scene:
//
//   - EventStageCleared (Data: next stage index) or EventGameWon for exits,
//   - EventPlayerHurt after a hit that leaves lives, EventPlayerDied after
//     the last one,
//   - EventCoinCollected for every coin picked up.
//
// An exit or an obstacle ends the scan for the tick.
type TriggerSystem struct {
	Stage      int
	StageCount int
	Particles  prefabs.ParticleSpec
	RNG        entity.RNG
}

func NewTriggerSystem(stage, stageCount int, particles prefabs.ParticleSpec, rng entity.RNG) *TriggerSystem {
	return &TriggerSystem{Stage: stage, StageCount: stageCount, Particles: particles, RNG: rng}
}

func (s *TriggerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, p, t, ok := player(w)
	if !ok {
		return
	}

	for _, e := range w.Query(component.ColliderComponent, component.TransformComponent) {
		c, ok := ecs.Get(w, e, component.ColliderComponent)
		if !ok {
			continue
		}
		ct, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		if !p.Box(*t).Overlaps(c.Box(*ct)) {
			continue
		}

		switch c.Tag {
		case component.TagNext:
			next := s.Stage + 1
			if next >= s.StageCount {
				w.Events().Push(ecs.Event{Kind: ecs.EventGameWon})
			} else {
				w.Events().Push(ecs.Event{Kind: ecs.EventStageCleared, Data: next})
			}
			return
		case component.TagObstacle:
			// the first obstacle ends the scan, so overlapping hazards cost one life
			s.hurt(w, p, t)
			return
		case component.TagTheEnd:
			w.Events().Push(ecs.Event{Kind: ecs.EventGameWon})
			return
		case component.TagCoin:
			w.DestroyEntity(e)
			emitSound(w, soundCoin)
			w.Events().Push(ecs.Event{Kind: ecs.EventCoinCollected})
		}
	}
}

func (s *TriggerSystem) hurt(w *ecs.World, p *component.Player, t *component.Transform) {
	if p.Life <= 1 {
		p.Life = 0
		w.Events().Push(ecs.Event{Kind: ecs.EventPlayerDied})
		return
	}

	p.Life--
	emitSound(w, soundDeath)
	if s.RNG != nil {
		_, _ = entity.SpawnBurst(w, s.Particles, t.X, t.Y, s.RNG)
	}
	returnToSpawn(p, t)
	w.Events().Push(ecs.Event{Kind: ecs.EventPlayerHurt, Data: p.Life})
}
