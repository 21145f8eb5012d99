// Package playback moves a cursor over an already-materialized trace.
// Navigation never recomputes anything: the step list is produced eagerly
// by tracegen and replayed here, so every movement is idempotent and
// boundary hits are no-ops rather than errors.
package playback

import "algolens/internal/trace"

// Cursor points at one step of a fixed trace.
type Cursor struct {
	steps   []trace.TraceStep
	index   int
	playing bool
}

func NewCursor(steps []trace.TraceStep) *Cursor {
	return &Cursor{steps: steps}
}

// Index reports the current position. It is always within [0, len-1] for a
// non-empty trace and 0 for an empty one.
func (c *Cursor) Index() int { return c.index }

func (c *Cursor) Len() int { return len(c.steps) }

func (c *Cursor) Playing() bool { return c.playing }

// Current returns the step under the cursor; ok is false for an empty
// trace.
func (c *Cursor) Current() (trace.TraceStep, bool) {
	if len(c.steps) == 0 {
		return trace.TraceStep{}, false
	}
	return c.steps[c.index], true
}

// Forward advances one step. At the last step it is a no-op and reports
// false; playback also stops there.
func (c *Cursor) Forward() bool {
	if c.index >= len(c.steps)-1 {
		c.playing = false
		return false
	}
	c.index++
	return true
}

// Backward moves one step back. At index 0 it is a no-op and reports
// false.
func (c *Cursor) Backward() bool {
	if c.index <= 0 {
		return false
	}
	c.index--
	return true
}

// Seek clamps the requested index into range.
func (c *Cursor) Seek(index int) {
	if len(c.steps) == 0 {
		c.index = 0
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(c.steps)-1 {
		index = len(c.steps) - 1
	}
	c.index = index
}

func (c *Cursor) Play()  { c.playing = true }
func (c *Cursor) Pause() { c.playing = false }

// Reset rewinds to the first step and pauses.
func (c *Cursor) Reset() {
	c.index = 0
	c.playing = false
}
