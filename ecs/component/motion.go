package component

import (
	"errors"
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
)

// RandSource supplies randomness to the ambient motion controller.
// *math/rand/v2.Rand satisfies it.
type RandSource interface {
	Uint64() uint64
	Float64() float64
}

// MotionKind names the active motion state.
type MotionKind int

const (
	Standing MotionKind = iota
	Walking
)

func (k MotionKind) String() string {
	if k == Walking {
		return "walking"
	}
	return "standing"
}

// MotionState is the controller's current state. Velocity is only meaningful
// while Walking and is zero otherwise.
type MotionState struct {
	Kind     MotionKind
	Duration time.Duration
	Started  time.Time
	Velocity cp.Vector
}

// Expired reports whether more than Duration has passed since Started.
func (s MotionState) Expired(now time.Time) bool {
	return now.Sub(s.Started) > s.Duration
}

// Walking returns the velocity when the state is Walking.
func (s MotionState) Walking() (cp.Vector, bool) {
	if s.Kind != Walking {
		return cp.Vector{}, false
	}
	return s.Velocity, true
}

// MotionTiming holds the durations used by the controller.
type MotionTiming struct {
	InitialStand time.Duration
	MinDuration  time.Duration
	// Jitter is added as whole milliseconds in [0, Jitter).
	Jitter   time.Duration
	MaxSpeed float64
}

// ErrMotionTiming reports a negative duration or speed in a MotionTiming.
var ErrMotionTiming = errors.New("motion: timings must not be negative")

// Validate rejects timings the controller cannot sample from.
func (t MotionTiming) Validate() error {
	switch {
	case t.InitialStand < 0:
		return fmt.Errorf("%w: initial stand %v", ErrMotionTiming, t.InitialStand)
	case t.MinDuration < 0:
		return fmt.Errorf("%w: min duration %v", ErrMotionTiming, t.MinDuration)
	case t.Jitter < 0:
		return fmt.Errorf("%w: jitter %v", ErrMotionTiming, t.Jitter)
	case t.MaxSpeed < 0:
		return fmt.Errorf("%w: max speed %v", ErrMotionTiming, t.MaxSpeed)
	}
	return nil
}

// DefaultMotionTiming stands 2s first, then alternates with 800-1799ms states
// and velocities in [-1, 1] per axis.
var DefaultMotionTiming = MotionTiming{
	InitialStand: 2 * time.Second,
	MinDuration:  800 * time.Millisecond,
	Jitter:       1000 * time.Millisecond,
	MaxSpeed:     1,
}

// AmbientMotion alternates an instance between standing still and walking in a
// random direction.
type AmbientMotion struct {
	State  MotionState
	Timing MotionTiming
}

var AmbientMotionComponent = NewComponent[AmbientMotion]()

// NewAmbientMotion starts Standing for timing.InitialStand from now.
func NewAmbientMotion(timing MotionTiming, now time.Time) *AmbientMotion {
	return &AmbientMotion{
		State: MotionState{
			Kind:     Standing,
			Duration: timing.InitialStand,
			Started:  now,
		},
		Timing: timing,
	}
}

// Update switches state once the current one has run longer than its
// duration. It reports whether a transition happened.
func (m *AmbientMotion) Update(now time.Time, rng RandSource) bool {
	if !m.State.Expired(now) {
		return false
	}

	switch m.State.Kind {
	case Standing:
		m.State = MotionState{
			Kind:     Walking,
			Started:  now,
			Duration: m.sampleDuration(rng),
			Velocity: cp.Vector{
				X: m.sampleAxis(rng),
				Y: m.sampleAxis(rng),
			},
		}
	default:
		m.State = MotionState{
			Kind:     Standing,
			Started:  now,
			Duration: m.sampleDuration(rng),
		}
	}
	return true
}

func (m *AmbientMotion) sampleDuration(rng RandSource) time.Duration {
	jitterMS := int64(m.Timing.Jitter / time.Millisecond)
	if jitterMS <= 0 {
		return m.Timing.MinDuration
	}
	return m.Timing.MinDuration + time.Duration(rng.Uint64()%uint64(jitterMS))*time.Millisecond
}

func (m *AmbientMotion) sampleAxis(rng RandSource) float64 {
	return (rng.Float64()*2 - 1) * m.Timing.MaxSpeed
}
