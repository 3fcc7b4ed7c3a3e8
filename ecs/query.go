package ecs

import "github.com/milk9111/wanderers/ecs/component"

// ForEach visits every live entity that has kind, in insertion order.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	if w == nil || fn == nil {
		return
	}
	s := w.store(kind.ID(), false)
	for i, e := range s.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		v, ok := s.Values()[i].(*T)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 visits entities having both kinds. Iteration follows a's order.
func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	if w == nil || fn == nil {
		return
	}
	sb := w.store(kb.ID(), false)
	if sb == nil {
		return
	}
	ForEach(w, ka, func(e Entity, a *A) {
		b, ok := sb.Get(e).(*B)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

// ForEach3 visits entities having all three kinds.
func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	if w == nil || fn == nil {
		return
	}
	sc := w.store(kc.ID(), false)
	if sc == nil {
		return
	}
	ForEach2(w, ka, kb, func(e Entity, a *A, b *B) {
		c, ok := sc.Get(e).(*C)
		if !ok {
			return
		}
		fn(e, a, b, c)
	})
}

// ForEach4 visits entities having all four kinds.
func ForEach4[A, B, C, D any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], kd component.ComponentKind[D], fn func(Entity, *A, *B, *C, *D)) {
	if w == nil || fn == nil {
		return
	}
	sd := w.store(kd.ID(), false)
	if sd == nil {
		return
	}
	ForEach3(w, ka, kb, kc, func(e Entity, a *A, b *B, c *C) {
		d, ok := sd.Get(e).(*D)
		if !ok {
			return
		}
		fn(e, a, b, c, d)
	})
}
