package ecs

import "time"

// Scheduler runs systems in a fixed order. Each system sees the whole world
// before the next one starts.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	copied := make([]System, 0, len(systems))
	for _, s := range systems {
		if s != nil {
			copied = append(copied, s)
		}
	}
	return &Scheduler{systems: copied}
}

// Update stamps the world clock and runs every system once.
func (s *Scheduler) Update(w *World, now time.Time, elapsed time.Duration) {
	w.SetClock(now, elapsed)
	for _, system := range s.systems {
		system.Update(w)
	}
}
