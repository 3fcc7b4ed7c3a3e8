package system

import (
	"github.com/milk9111/wanderers/ecs"
	"github.com/milk9111/wanderers/ecs/component"
)

// AmbientMotionSystem advances each instance's motion controller, moves
// walking instances and turns them to face their velocity.
type AmbientMotionSystem struct {
	rng component.RandSource
}

func NewAmbientMotionSystem(rng component.RandSource) *AmbientMotionSystem {
	return &AmbientMotionSystem{rng: rng}
}

func (s *AmbientMotionSystem) Update(w *ecs.World) {
	if s == nil || s.rng == nil {
		return
	}
	clock := w.Clock()
	dt := clock.Elapsed.Seconds()

	ecs.ForEach2(w, component.AmbientMotionComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, motion *component.AmbientMotion, t *component.Transform) {
		if motion.Update(clock.Now, s.rng) {
			w.Events().Push(ecs.Event{Type: ecs.EventMotionChanged, Entity: e, Data: motion.State.Kind})
		}

		v, walking := motion.State.Walking()
		if !walking {
			return
		}
		t.Position = t.Position.Add(v.Mult(dt))

		facing, ok := ecs.Get(w, e, component.FacingComponent.Kind())
		if !ok {
			return
		}
		dir := component.ResolveDirection(v)
		if dir == facing.Direction {
			return
		}

		if table, ok := ecs.Get(w, e, component.DirectionalAnimationsComponent.Kind()); ok {
			if animator, ok := ecs.Get(w, e, component.AnimatorComponent.Kind()); ok {
				animator.Rebind(table.For(dir))
			}
		}
		facing.Direction = dir
		w.Events().Push(ecs.Event{Type: ecs.EventDirectionChanged, Entity: e, Data: dir})
	})
}
