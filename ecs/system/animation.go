package system

import (
	"github.com/milk9111/wanderers/ecs"
	"github.com/milk9111/wanderers/ecs/component"
)

// AnimationSystem advances every animator, standing or walking. Ticks with no
// elapsed time are skipped.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	clock := w.Clock()
	if clock.Elapsed <= 0 {
		return
	}
	ecs.ForEach(w, component.AnimatorComponent.Kind(), func(e ecs.Entity, anim *component.Animator) {
		if idx, ok := anim.Update(clock.Now); ok {
			w.Events().Push(ecs.Event{Type: ecs.EventFrameAdvanced, Entity: e, Data: idx})
		}
	})
}
