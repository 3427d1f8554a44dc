package videoslider

import (
	"math"

	"github.com/DEVAIEXP/gradio-component-videoslider/hiccup"
)

// DragThreshold is the cumulative pointer displacement, in pixels, past
// which a press is classified as a drag rather than a click. Exactly
// this many pixels of movement still counts as a click.
const DragThreshold = 3.0

// dragSession is the ephemeral state between pointer-down and pointer-up.
type dragSession struct {
	startX float64
	moved  bool
}

// DragController converts pointer gestures into a normalized divider
// position and disambiguates drags from clicks.
//
// The controller is a two-state machine (idle, dragging). A press snaps
// the divider to the press point and opens a session; movement past
// DragThreshold marks the session as a drag; release emits a click
// notification only for sessions that never moved. All transitions are
// no-ops while the controller is disabled.
//
// The normalized position is the single source of truth. The pixel
// handle position is derived from it on every update and rederived on
// resize, so layout changes never disturb the position itself.
type DragController struct {
	rect           Rect
	containerWidth float64

	position float64
	handleX  float64

	disabled bool
	session  *dragSession

	callbacks Callbacks
	log       *hiccup.Log
}

// NewDragController creates an idle controller at position 0 with the
// given notification hooks. The hiccup log is optional.
func NewDragController(callbacks Callbacks, log *hiccup.Log) *DragController {
	return &DragController{callbacks: callbacks, log: log}
}

// Position returns the current normalized divider position in [0, 1].
func (d *DragController) Position() float64 {
	return d.position
}

// HandleX returns the derived pixel position of the divider handle.
func (d *DragController) HandleX() float64 {
	return d.handleX
}

// Geometry returns the last measured content rect.
func (d *DragController) Geometry() Rect {
	return d.rect
}

// Dragging reports whether a pointer session is currently open.
func (d *DragController) Dragging() bool {
	return d.session != nil
}

// Disabled reports whether interaction is currently suppressed.
func (d *DragController) Disabled() bool {
	return d.disabled
}

// SetDisabled toggles interaction. Disabling mid-drag abandons the open
// session without emitting a click.
func (d *DragController) SetDisabled(disabled bool) {
	d.disabled = disabled
	if disabled {
		d.session = nil
	}
}

// SetGeometry installs a fresh measurement of the content rect and
// container width, then rederives the handle pixel position from the
// current normalized position.
func (d *DragController) SetGeometry(r Rect, containerWidth float64) {
	d.rect = r
	d.containerWidth = containerWidth
	d.handleX = NormalizedToPixel(d.position, d.rect, d.containerWidth)
}

// Resize is the resize-observation entry point. It only rederives the
// handle pixel position; the normalized position is left untouched.
func (d *DragController) Resize(r Rect, containerWidth float64) {
	d.SetGeometry(r, containerWidth)
}

// SetPosition installs a host-pushed position (the write side of the
// two-way binding). The value is clamped and rounded like any pointer
// update, but no change notification fires: the host already holds it.
func (d *DragController) SetPosition(p float64) {
	d.position = RoundPosition(ClampPosition(p))
	d.handleX = NormalizedToPixel(d.position, d.rect, d.containerWidth)
}

// PointerDown opens a drag session and snaps the divider to the press
// point, so a press without movement still moves the divider.
func (d *DragController) PointerDown(ev PointerEvent) {
	if d.disabled {
		d.log.Record(hiccup.New(hiccup.Input, "pointer down dropped while disabled", nil))
		return
	}
	d.session = &dragSession{startX: ev.X}
	d.updateFromPointer(ev.X)
}

// PointerMove updates the divider from the current pointer position and
// promotes the session to a drag once displacement exceeds the threshold.
func (d *DragController) PointerMove(ev PointerEvent) {
	if d.disabled || d.session == nil {
		return
	}
	if math.Abs(ev.X-d.session.startX) > DragThreshold {
		d.session.moved = true
	}
	d.updateFromPointer(ev.X)
}

// PointerUp closes the session. Sessions that never crossed the drag
// threshold emit a click carrying the originating release event.
func (d *DragController) PointerUp(ev PointerEvent) {
	if d.disabled || d.session == nil {
		return
	}
	moved := d.session.moved
	d.session = nil
	if !moved {
		d.callbacks.click(ev)
	}
}

func (d *DragController) updateFromPointer(x float64) {
	if d.rect.Width == 0 {
		// Not laid out yet; the next geometry observation re-syncs.
		d.log.Record(hiccup.New(hiccup.Geometry, "pointer update before layout",
			hiccup.Context{"x": x}).WithSeverity(hiccup.Skip))
		return
	}
	p := PixelToNormalized(x, d.rect)
	if p != d.position {
		d.position = p
		d.callbacks.change(p)
	}
	d.handleX = NormalizedToPixel(p, d.rect, d.containerWidth)
}
