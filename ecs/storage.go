package ecs

// entityStore tracks entity generations and free ids.
// Slot 0 is reserved so the zero Entity is never alive.
type entityStore struct {
	gen   []generation
	alive []bool
	free  []entityID
	order []Entity
}

func (s *entityStore) create() Entity {
	if len(s.gen) == 0 {
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
	}

	var id entityID
	if len(s.free) > 0 {
		id = s.free[len(s.free)-1]
		s.free = s.free[:len(s.free)-1]
	} else {
		id = entityID(len(s.gen))
		s.gen = append(s.gen, 0)
		s.alive = append(s.alive, false)
	}
	s.alive[id] = true

	e := makeEntity(id, s.gen[id])
	s.order = append(s.order, e)
	return e
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	id := e.id()
	s.alive[id] = false
	s.gen[id]++
	s.free = append(s.free, id)

	for i, o := range s.order {
		if o == e {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) >= len(s.gen) {
		return false
	}
	return s.alive[id] && s.gen[id] == e.generation()
}

// entities returns live entities in creation order.
func (s *entityStore) entities() []Entity {
	out := make([]Entity, len(s.order))
	copy(out, s.order)
	return out
}
