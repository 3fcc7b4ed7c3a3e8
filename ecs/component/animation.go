package component

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrEmptyAnimation  = errors.New("animation: no frames")
	ErrAnimationTiming = errors.New("animation: frame timing must be positive")
)

// Animation is an immutable list of sheet frame indices shown for Timing each.
// Instances share one *Animation; nothing mutates it after construction.
type Animation struct {
	name   string
	frames []int
	timing time.Duration
}

// NewAnimation copies frames and validates them.
func NewAnimation(name string, frames []int, timing time.Duration) (*Animation, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyAnimation, name)
	}
	if timing <= 0 {
		return nil, fmt.Errorf("%w: %q has %s", ErrAnimationTiming, name, timing)
	}
	return &Animation{
		name:   name,
		frames: append([]int(nil), frames...),
		timing: timing,
	}, nil
}

// MustAnimation is NewAnimation for static tables.
func MustAnimation(name string, frames []int, timing time.Duration) *Animation {
	a, err := NewAnimation(name, frames, timing)
	if err != nil {
		panic(err)
	}
	return a
}

// FrameRange builds count consecutive frame indices starting at first.
func FrameRange(first, count int) []int {
	if count <= 0 {
		return nil
	}
	frames := make([]int, count)
	for i := range frames {
		frames[i] = first + i
	}
	return frames
}

func (a *Animation) Name() string          { return a.name }
func (a *Animation) Len() int              { return len(a.frames) }
func (a *Animation) Frame(i int) int       { return a.frames[i] }
func (a *Animation) Timing() time.Duration { return a.timing }

// Frames returns a copy of the frame list.
func (a *Animation) Frames() []int {
	return append([]int(nil), a.frames...)
}

// Animator is a per-instance cursor over a shared Animation.
type Animator struct {
	animation *Animation
	index     int
	frame     int
	lastFrame time.Time
}

var AnimatorComponent = NewComponent[Animator]()

// NewAnimator starts at the first frame of anim with its timer set to now.
func NewAnimator(anim *Animation, now time.Time) *Animator {
	return &Animator{
		animation: anim,
		frame:     anim.frames[0],
		lastFrame: now,
	}
}

// Update advances one frame once more than the animation's timing has passed
// since the last advance. It returns the new index and true on advance; the
// animator is left untouched otherwise.
func (a *Animator) Update(now time.Time) (int, bool) {
	if now.Sub(a.lastFrame) <= a.animation.timing {
		return 0, false
	}
	a.index = (a.index + 1) % len(a.animation.frames)
	a.frame = a.animation.frames[a.index]
	a.lastFrame = now
	return a.index, true
}

// Rebind points the animator at anim. The index carries over, wrapped to the
// new length, and the displayed frame is refreshed from anim. The frame timer
// keeps running.
func (a *Animator) Rebind(anim *Animation) {
	if anim == nil || anim == a.animation {
		return
	}
	a.animation = anim
	a.index %= len(anim.frames)
	a.frame = anim.frames[a.index]
}

func (a *Animator) Animation() *Animation { return a.animation }
func (a *Animator) Index() int            { return a.index }

// Frame is the sheet frame currently displayed.
func (a *Animator) Frame() int { return a.frame }

// LastFrameTime is when the animator last advanced.
func (a *Animator) LastFrameTime() time.Time { return a.lastFrame }

// DirectionalAnimations maps each Direction to the animation shown while facing
// it. Instances of a roster share one table.
type DirectionalAnimations [DirectionCount]*Animation

// For returns the animation for d.
func (t *DirectionalAnimations) For(d Direction) *Animation {
	return t[d]
}

// Validate fails when any direction is missing an animation.
func (t *DirectionalAnimations) Validate() error {
	for d, anim := range t {
		if anim == nil {
			return fmt.Errorf("%w: direction %s", ErrEmptyAnimation, Direction(d))
		}
	}
	return nil
}

var DirectionalAnimationsComponent = NewComponent[DirectionalAnimations]()
