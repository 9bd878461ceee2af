// Package zoom tracks the scale and pan offset of one zoomable image.
//
// A Controller is a plain state machine driven by pointer events. It never
// touches the screen; the renderer reads Scale, X and Y (or Transform) after
// every event.
package zoom

import (
	"fmt"
	"math"
	"time"
)

const (
	MinScale = 1.0
	MaxScale = 3.0
	Step     = 0.1

	// ClearDelay is how long the reset transform stays pinned after the
	// pointer leaves a zoomed image before the idle style takes over again.
	ClearDelay = 300 * time.Millisecond
)

// Controller holds the transform state of a single image.
type Controller struct {
	Scale float64
	X, Y  float64

	dragging     bool
	lastX, lastY int

	// override is set while the inline transform drives the image.
	override bool
	gen      uint64
}

// New returns a controller at rest.
func New() *Controller {
	return &Controller{Scale: MinScale}
}

// Wheel zooms in one step for an upward tick and out otherwise.
func (c *Controller) Wheel(up bool) {
	if up {
		c.Scale += Step
	} else {
		c.Scale -= Step
	}
	c.Scale = clamp(c.Scale)
	c.override = true
	c.gen++
}

// Press starts a drag when the image is zoomed in.
func (c *Controller) Press(x, y int) {
	if c.Scale <= MinScale {
		return
	}
	c.dragging = true
	c.lastX, c.lastY = x, y
}

// Move accumulates the cursor delta since the last recorded position.
func (c *Controller) Move(x, y int) {
	if !c.dragging {
		return
	}
	c.X += float64(x - c.lastX)
	c.Y += float64(y - c.lastY)
	c.lastX, c.lastY = x, y
	c.override = true
}

// Release ends a drag.
func (c *Controller) Release() {
	c.dragging = false
}

// Leave ends a drag and, when the image was zoomed, snaps it back to rest.
// The returned token must be handed to Clear after ClearDelay.
func (c *Controller) Leave() (pending bool, token uint64) {
	c.dragging = false
	if c.Scale <= MinScale {
		return false, 0
	}
	c.Scale = MinScale
	c.X, c.Y = 0, 0
	c.override = true
	c.gen++
	return true, c.gen
}

// Clear drops the inline transform unless the image was touched again since
// the token was issued.
func (c *Controller) Clear(token uint64) bool {
	if token != c.gen || c.Scale > MinScale {
		return false
	}
	c.override = false
	return true
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool { return c.dragging }

// Overridden reports whether the inline transform is active.
func (c *Controller) Overridden() bool { return c.override }

// Zoomed reports whether the image is scaled above rest.
func (c *Controller) Zoomed() bool { return c.Scale > MinScale }

// Cursor names the pointer shape for the current state.
func (c *Controller) Cursor() string {
	switch {
	case c.dragging:
		return "grabbing"
	case c.Scale > MinScale:
		return "grab"
	default:
		return "default"
	}
}

// Transform renders the inline transform, or "" when idle.
func (c *Controller) Transform() string {
	if !c.override {
		return ""
	}
	return fmt.Sprintf("scale(%g) translate(%gpx, %gpx)", c.Scale, c.X, c.Y)
}

func clamp(s float64) float64 {
	// keep one decimal so repeated steps do not drift past the bounds
	s = math.Round(s*10) / 10
	return math.Min(math.Max(s, MinScale), MaxScale)
}
