package system

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/wanderers/ecs"
	"github.com/milk9111/wanderers/ecs/component"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

type constRand struct {
	u uint64
	f float64
}

func (c constRand) Uint64() uint64   { return c.u }
func (c constRand) Float64() float64 { return c.f }

func testTable() *component.DirectionalAnimations {
	var table component.DirectionalAnimations
	for d := range table {
		table[d] = component.MustAnimation(component.Direction(d).String(), component.FrameRange(d*6, 5), 100*time.Millisecond)
	}
	return &table
}

type fixture struct {
	w      *ecs.World
	e      ecs.Entity
	table  *component.DirectionalAnimations
	motion *component.AmbientMotion
}

func newFixture(t *testing.T, dir component.Direction) fixture {
	t.Helper()
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	table := testTable()
	motion := component.NewAmbientMotion(component.DefaultMotionTiming, epoch)

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(ecs.Add(w, e, component.AmbientMotionComponent.Kind(), motion))
	must(ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{}))
	must(ecs.Add(w, e, component.FacingComponent.Kind(), &component.Facing{Direction: dir}))
	must(ecs.Add(w, e, component.AnimatorComponent.Kind(), component.NewAnimator(table.For(dir), epoch)))
	must(ecs.Add(w, e, component.DirectionalAnimationsComponent.Kind(), table))
	return fixture{w: w, e: e, table: table, motion: motion}
}

func walking(v cp.Vector) component.MotionState {
	return component.MotionState{Kind: component.Walking, Duration: time.Hour, Started: epoch, Velocity: v}
}

func TestAmbientMotionSystemIntegratesPosition(t *testing.T) {
	f := newFixture(t, component.West)
	f.motion.State = walking(cp.Vector{X: 1, Y: 0})

	f.w.SetClock(epoch.Add(500*time.Millisecond), 500*time.Millisecond)
	NewAmbientMotionSystem(constRand{}).Update(f.w)

	tr := ecs.MustGet(f.w, f.e, component.TransformComponent.Kind())
	if math.Abs(tr.Position.X-0.5) > 1e-9 || tr.Position.Y != 0 {
		t.Fatalf("expected position (0.5,0), got %v", tr.Position)
	}
}

func TestAmbientMotionSystemStandingDoesNotMove(t *testing.T) {
	f := newFixture(t, component.South)

	f.w.SetClock(epoch.Add(time.Second), time.Second)
	NewAmbientMotionSystem(constRand{}).Update(f.w)

	tr := ecs.MustGet(f.w, f.e, component.TransformComponent.Kind())
	if tr.Position.X != 0 || tr.Position.Y != 0 {
		t.Fatalf("standing instance moved to %v", tr.Position)
	}
	if got := ecs.MustGet(f.w, f.e, component.FacingComponent.Kind()).Direction; got != component.South {
		t.Fatalf("standing instance turned to %s", got)
	}
}

func TestAmbientMotionSystemRebindsOnTurn(t *testing.T) {
	f := newFixture(t, component.South)
	animator := ecs.MustGet(f.w, f.e, component.AnimatorComponent.Kind())
	animator.Update(epoch.Add(150 * time.Millisecond))
	animator.Update(epoch.Add(300 * time.Millisecond))

	f.motion.State = walking(cp.Vector{X: -1, Y: 0.2})
	f.w.SetClock(epoch.Add(320*time.Millisecond), 20*time.Millisecond)
	NewAmbientMotionSystem(constRand{}).Update(f.w)

	facing := ecs.MustGet(f.w, f.e, component.FacingComponent.Kind())
	if facing.Direction != component.East {
		t.Fatalf("expected East, got %s", facing.Direction)
	}
	if animator.Animation() != f.table.For(component.East) {
		t.Fatalf("animator not rebound to east animation")
	}
	if animator.Index() != 2 || animator.Frame() != f.table.For(component.East).Frame(2) {
		t.Fatalf("expected index carried over, got index=%d frame=%d", animator.Index(), animator.Frame())
	}

	events := f.w.Events().Drain()
	var sawTurn bool
	for _, ev := range events {
		if ev.Type == ecs.EventDirectionChanged && ev.Entity == f.e && ev.Data == component.East {
			sawTurn = true
		}
	}
	if !sawTurn {
		t.Fatalf("expected direction_changed event, got %v", events)
	}
}

func TestAmbientMotionSystemSameDirectionKeepsAnimation(t *testing.T) {
	f := newFixture(t, component.North)
	animator := ecs.MustGet(f.w, f.e, component.AnimatorComponent.Kind())
	before := animator.Animation()

	f.motion.State = walking(cp.Vector{X: 0.1, Y: 0.9})
	f.w.SetClock(epoch.Add(10*time.Millisecond), 10*time.Millisecond)
	NewAmbientMotionSystem(constRand{}).Update(f.w)

	if animator.Animation() != before {
		t.Fatalf("animation swapped without a direction change")
	}
	if f.w.Events().Len() != 0 {
		t.Fatalf("unexpected events %v", f.w.Events().Drain())
	}
}

func TestAnimationSystemSkipsZeroElapsed(t *testing.T) {
	f := newFixture(t, component.South)
	animator := ecs.MustGet(f.w, f.e, component.AnimatorComponent.Kind())

	f.w.SetClock(epoch.Add(time.Second), 0)
	NewAnimationSystem().Update(f.w)
	if animator.Index() != 0 {
		t.Fatalf("animator advanced on a zero-length tick")
	}

	f.w.SetClock(epoch.Add(time.Second), time.Millisecond)
	NewAnimationSystem().Update(f.w)
	if animator.Index() != 1 {
		t.Fatalf("expected advance, got index %d", animator.Index())
	}
}

func TestAnimationSystemRunsWhileStanding(t *testing.T) {
	f := newFixture(t, component.West)
	animator := ecs.MustGet(f.w, f.e, component.AnimatorComponent.Kind())

	f.w.SetClock(epoch.Add(101*time.Millisecond), 101*time.Millisecond)
	NewAnimationSystem().Update(f.w)
	if f.motion.State.Kind != component.Standing {
		t.Fatalf("fixture should be standing")
	}
	if animator.Frame() != f.table.For(component.West).Frame(1) {
		t.Fatalf("standing instance did not animate, frame=%d", animator.Frame())
	}
}
