package ecs

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/wanderers/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func TestEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex < 0 {
				return
			}
			if !DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("DestroyEntity should return true for alive entity")
			}
			if IsAlive(w, ents[c.destroyIndex]) {
				t.Fatalf("entity should not be alive after destruction")
			}
			if DestroyEntity(w, ents[c.destroyIndex]) {
				t.Fatalf("second destroy should report false")
			}
			if len(Entities(w)) != c.create-1 {
				t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
			}
		})
	}
}

func TestZeroEntityNeverAlive(t *testing.T) {
	w := NewWorld()
	CreateEntity(w)
	var zero Entity
	if zero.Valid() || IsAlive(w, zero) {
		t.Fatalf("zero entity reported alive")
	}
}

func TestRecycledSlotRejectsStaleHandle(t *testing.T) {
	w := NewWorld()
	k := component.NewComponentKind[int]()

	old := CreateEntity(w)
	if err := Add(w, old, k, intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	fresh := CreateEntity(w)
	if fresh.id() != old.id() || fresh.generation() == old.generation() {
		t.Fatalf("expected recycled slot with new generation, old=%s fresh=%s", old, fresh)
	}
	if _, ok := Get(w, old, k); ok {
		t.Fatalf("stale handle still resolves")
	}
	if Has(w, fresh, k) {
		t.Fatalf("recycled entity inherited a component")
	}
	if err := Add(w, old, k, intPtr(2)); !errors.Is(err, component.ErrEntityNotAlive) {
		t.Fatalf("expected ErrEntityNotAlive, got %v", err)
	}
}

func TestComponents(t *testing.T) {
	w := NewWorld()
	hi := component.NewComponent[int]()
	hs := component.NewComponent[string]()
	e := CreateEntity(w)

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "add_get_remove",
			run: func(t *testing.T) {
				if err := Add(w, e, hi.Kind(), intPtr(10)); err != nil {
					t.Fatal(err)
				}
				v, ok := Get(w, e, hi.Kind())
				if !ok || *v != 10 {
					t.Fatalf("expected 10, got %v ok=%v", v, ok)
				}
				*v = 11
				if got := MustGet(w, e, hi.Kind()); *got != 11 {
					t.Fatalf("expected pointer semantics, got %d", *got)
				}
				if !Remove(w, e, hi.Kind()) || Has(w, e, hi.Kind()) {
					t.Fatalf("remove failed")
				}
			},
		},
		{
			name: "kinds_are_separate",
			run: func(t *testing.T) {
				s := "a"
				if err := Add(w, e, hs.Kind(), &s); err != nil {
					t.Fatal(err)
				}
				if Has(w, e, hi.Kind()) {
					t.Fatalf("string component leaked into int store")
				}
			},
		},
		{
			name: "nil_and_invalid",
			run: func(t *testing.T) {
				if err := Add[int](w, e, hi.Kind(), nil); !errors.Is(err, component.ErrNilComponent) {
					t.Fatalf("expected ErrNilComponent, got %v", err)
				}
				var zero component.ComponentKind[int]
				if err := Add(w, e, zero, intPtr(1)); !errors.Is(err, component.ErrInvalidComponentKind) {
					t.Fatalf("expected ErrInvalidComponentKind, got %v", err)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestForEachKeepsInsertionOrder(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()

	var want []Entity
	for i := 0; i < 6; i++ {
		e := CreateEntity(w)
		if err := Add(w, e, ka, intPtr(i)); err != nil {
			t.Fatal(err)
		}
		if i%2 == 0 {
			if err := Add(w, e, kb, intPtr(i)); err != nil {
				t.Fatal(err)
			}
			want = append(want, e)
		}
	}
	DestroyEntity(w, want[1])
	want = append(want[:1], want[2:]...)

	var got []Entity
	ForEach2(w, ka, kb, func(e Entity, a *int, b *int) {
		if *a != *b {
			t.Fatalf("mismatched components for %s", e)
		}
		got = append(got, e)
	})
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestForEach4(t *testing.T) {
	w := NewWorld()
	ka := component.NewComponentKind[int]()
	kb := component.NewComponentKind[int]()
	kc := component.NewComponentKind[int]()
	kd := component.NewComponentKind[int]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	for _, k := range []component.ComponentKind[int]{ka, kb, kc, kd} {
		if err := Add(w, e2, k, intPtr(1)); err != nil {
			t.Fatal(err)
		}
	}
	if err := Add(w, e1, ka, intPtr(1)); err != nil {
		t.Fatal(err)
	}

	var res []Entity
	ForEach4(w, ka, kb, kc, kd, func(e Entity, _ *int, _ *int, _ *int, _ *int) { res = append(res, e) })
	if len(res) != 1 || res[0] != e2 {
		t.Fatalf("expected only e2, got %v", res)
	}

	missing := component.NewComponentKind[int]()
	res = nil
	ForEach3(w, ka, kb, missing, func(e Entity, _ *int, _ *int, _ *int) { res = append(res, e) })
	if len(res) != 0 {
		t.Fatalf("expected empty when a store is missing, got %v", res)
	}
}

type recordingSystem struct {
	name string
	log  *[]string
}

func (r recordingSystem) Update(w *World) {
	*r.log = append(*r.log, r.name+"@"+w.Clock().Elapsed.String())
}

func TestSchedulerRunsInOrder(t *testing.T) {
	var log []string
	s := NewScheduler(recordingSystem{"a", &log}, nil, recordingSystem{"b", &log}, recordingSystem{"c", &log})

	w := NewWorld()
	s.Update(w, time.Unix(10, 0), 5*time.Millisecond)

	want := []string{"a@5ms", "b@5ms", "c@5ms"}
	if len(log) != len(want) {
		t.Fatalf("expected %v, got %v", want, log)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, log)
		}
	}
	if !w.Clock().Now.Equal(time.Unix(10, 0)) {
		t.Fatalf("scheduler did not stamp the clock")
	}
}

func TestEventQueueLimit(t *testing.T) {
	var q EventQueue
	q.SetLimit(2)
	for i := 0; i < 5; i++ {
		q.Push(Event{Type: EventFrameAdvanced, Data: i})
	}
	got := q.Drain()
	if len(got) != 2 || got[0].Data != 3 || got[1].Data != 4 {
		t.Fatalf("expected newest two events, got %v", got)
	}
	if q.Len() != 0 || q.Drain() != nil {
		t.Fatalf("drain did not clear queue")
	}
}
