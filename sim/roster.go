// Package sim runs the wandering-instance simulation on top of the ECS world.
package sim

import (
	"errors"
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wanderers/ecs"
	"github.com/milk9111/wanderers/ecs/component"
	"github.com/milk9111/wanderers/ecs/system"
)

var (
	ErrEmptyRoster  = errors.New("sim: roster count must be positive")
	ErrNoAnimations = errors.New("sim: animation table is incomplete")
	ErrNoRandom     = errors.New("sim: random source is nil")
)

// eventBacklog bounds the world event queue for hosts that never drain it.
const eventBacklog = 1024

// Config describes how a roster is populated.
type Config struct {
	Count  int
	Spawn  cp.Vector
	Timing component.MotionTiming
}

// Roster is a fixed, ordered set of instances. Instance i is always driven by
// controller i; the set never grows or shrinks after construction.
type Roster struct {
	world     *ecs.World
	entities  []ecs.Entity
	table     *component.DirectionalAnimations
	scheduler *ecs.Scheduler
}

// NewRoster creates cfg.Count instances at cfg.Spawn. Instance i starts facing
// Direction(i mod 4) with that direction's animation, standing for
// cfg.Timing.InitialStand from now.
func NewRoster(cfg Config, table *component.DirectionalAnimations, rng component.RandSource, now time.Time) (*Roster, error) {
	if cfg.Count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrEmptyRoster, cfg.Count)
	}
	if err := cfg.Timing.Validate(); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if table == nil {
		return nil, ErrNoAnimations
	}
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoAnimations, err)
	}
	if rng == nil {
		return nil, ErrNoRandom
	}

	w := ecs.NewWorld()
	w.Events().SetLimit(eventBacklog)
	r := &Roster{
		world:    w,
		entities: make([]ecs.Entity, 0, cfg.Count),
		table:    table,
		scheduler: ecs.NewScheduler(
			system.NewAmbientMotionSystem(rng),
			system.NewAnimationSystem(),
		),
	}

	for i := 0; i < cfg.Count; i++ {
		e := ecs.CreateEntity(w)
		dir := component.Direction(i % component.DirectionCount)
		if err := r.spawn(e, dir, cfg, now); err != nil {
			return nil, fmt.Errorf("sim: spawn instance %d: %w", i, err)
		}
		r.entities = append(r.entities, e)
	}
	return r, nil
}

func (r *Roster) spawn(e ecs.Entity, dir component.Direction, cfg Config, now time.Time) error {
	w := r.world
	if err := ecs.Add(w, e, component.AmbientMotionComponent.Kind(), component.NewAmbientMotion(cfg.Timing, now)); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: cfg.Spawn}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.FacingComponent.Kind(), &component.Facing{Direction: dir}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.AnimatorComponent.Kind(), component.NewAnimator(r.table.For(dir), now)); err != nil {
		return err
	}
	return ecs.Add(w, e, component.DirectionalAnimationsComponent.Kind(), r.table)
}

// Tick runs one simulation step: every controller and position first, then
// every animator.
func (r *Roster) Tick(now time.Time, elapsed time.Duration) {
	r.scheduler.Update(r.world, now, elapsed)
}

// World exposes the backing ECS world to renderers.
func (r *Roster) World() *ecs.World { return r.world }

// Len is the fixed number of instances.
func (r *Roster) Len() int { return len(r.entities) }

// Entity returns the entity backing instance i.
func (r *Roster) Entity(i int) ecs.Entity { return r.entities[i] }

// Animations returns the direction table shared by every instance.
func (r *Roster) Animations() *component.DirectionalAnimations { return r.table }

// Position returns where instance i is.
func (r *Roster) Position(i int) cp.Vector {
	return ecs.MustGet(r.world, r.entities[i], component.TransformComponent.Kind()).Position
}

// Frame returns the sheet frame instance i displays.
func (r *Roster) Frame(i int) int {
	return ecs.MustGet(r.world, r.entities[i], component.AnimatorComponent.Kind()).Frame()
}

// Direction returns the facing of instance i.
func (r *Roster) Direction(i int) component.Direction {
	return ecs.MustGet(r.world, r.entities[i], component.FacingComponent.Kind()).Direction
}

// Animator returns instance i's animator.
func (r *Roster) Animator(i int) *component.Animator {
	return ecs.MustGet(r.world, r.entities[i], component.AnimatorComponent.Kind())
}

// Motion returns instance i's motion controller.
func (r *Roster) Motion(i int) *component.AmbientMotion {
	return ecs.MustGet(r.world, r.entities[i], component.AmbientMotionComponent.Kind())
}

// Snapshot is a read-only view of one instance.
type Snapshot struct {
	Index     int
	Position  cp.Vector
	Direction component.Direction
	Frame     int
	Motion    component.MotionKind
}

// Snapshots returns every instance in roster order.
func (r *Roster) Snapshots() []Snapshot {
	out := make([]Snapshot, len(r.entities))
	for i := range r.entities {
		out[i] = Snapshot{
			Index:     i,
			Position:  r.Position(i),
			Direction: r.Direction(i),
			Frame:     r.Frame(i),
			Motion:    r.Motion(i).State.Kind,
		}
	}
	return out
}
