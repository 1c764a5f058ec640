// SPDX-License-Identifier: Unlicense OR MIT

/*
Package anim implements animations driven by frame time.

An animation never runs by itself: the owner calls Update with the
current frame time, and Update reports when the animation reaches its
target. This keeps every state change on the goroutine that handles
frames.
*/
package anim

import (
	"math"
	"time"
)

// Slide moves a value in the range [0, 1] towards a target with an
// ease-out curve. The zero value rests at 0.
type Slide struct {
	// Duration is the time a complete 0 to 1 slide takes. Shorter
	// distances take proportionally less time.
	Duration time.Duration

	value  float32
	from   float32
	to     float32
	start  time.Time
	span   time.Duration
	active bool
}

// Value returns the current value.
func (s *Slide) Value() float32 {
	return s.value
}

// Active reports whether a slide is in progress.
func (s *Slide) Active() bool {
	return s.active
}

// Start begins a slide from the current value towards to, replacing
// any slide in progress.
func (s *Slide) Start(now time.Time, to float32) {
	to = clamp(to)
	s.from = s.value
	s.to = to
	s.start = now
	dist := math.Abs(float64(to - s.value))
	s.span = time.Duration(float64(s.Duration) * dist)
	s.active = true
}

// Set stops the slide and moves the value to v.
func (s *Slide) Set(v float32) {
	s.active = false
	s.value = clamp(v)
}

// Update advances the slide to now. It returns true exactly once, on
// the update that completes the slide.
func (s *Slide) Update(now time.Time) (finished bool) {
	if !s.active {
		return false
	}
	elapsed := now.Sub(s.start)
	if elapsed >= s.span {
		s.value = s.to
		s.active = false
		return true
	}
	t := float64(elapsed) / float64(s.span)
	if t < 0 {
		t = 0
	}
	s.value = s.from + (s.to-s.from)*float32(easeOut(t))
	return false
}

// easeOut is a cubic ease-out curve mapping [0, 1] to [0, 1].
func easeOut(t float64) float64 {
	t = 1 - t
	return 1 - t*t*t
}

func clamp(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
