package videoslider

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DEVAIEXP/gradio-component-videoslider/hiccup"
)

// recorder captures notifications emitted by a drag controller.
type recorder struct {
	changes []float64
	clicks  []PointerEvent
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnChange: func(p float64) { r.changes = append(r.changes, p) },
		OnClick:  func(ev PointerEvent) { r.clicks = append(r.clicks, ev) },
	}
}

func newTestController(rec *recorder) *DragController {
	d := NewDragController(rec.callbacks(), hiccup.NewLog(hiccup.DefaultCapacity))
	d.SetGeometry(Rect{Left: 100, Width: 400, Height: 200}, 600)
	return d
}

func TestPressWithoutMovementIsClick(t *testing.T) {
	rec := &recorder{}
	d := newTestController(rec)

	d.PointerDown(PointerEvent{X: 300})
	d.PointerUp(PointerEvent{X: 300})

	require.Len(t, rec.clicks, 1, "a still press emits exactly one click")
	assert.Equal(t, 300.0, rec.clicks[0].X, "click carries the originating event")
	// The press itself snaps the divider; nothing moves afterwards.
	assert.Equal(t, []float64{0.5}, rec.changes)
	assert.False(t, d.Dragging())
}

func TestDragSuppressesClick(t *testing.T) {
	rec := &recorder{}
	d := newTestController(rec)

	d.PointerDown(PointerEvent{X: 300})
	d.PointerMove(PointerEvent{X: 310})
	d.PointerUp(PointerEvent{X: 310})

	assert.Empty(t, rec.clicks, "a real drag never emits a click")
	assert.GreaterOrEqual(t, len(rec.changes), 1)
	assert.Equal(t, 0.525, d.Position())
}

func TestDragThresholdBoundary(t *testing.T) {
	t.Run("exactly 3px stays a click", func(t *testing.T) {
		rec := &recorder{}
		d := newTestController(rec)

		d.PointerDown(PointerEvent{X: 300})
		d.PointerMove(PointerEvent{X: 303})
		d.PointerUp(PointerEvent{X: 303})

		assert.Len(t, rec.clicks, 1)
	})

	t.Run("4px becomes a drag", func(t *testing.T) {
		rec := &recorder{}
		d := newTestController(rec)

		d.PointerDown(PointerEvent{X: 300})
		d.PointerMove(PointerEvent{X: 304})
		d.PointerUp(PointerEvent{X: 304})

		assert.Empty(t, rec.clicks)
	})

	t.Run("threshold is cumulative from start, not per move", func(t *testing.T) {
		rec := &recorder{}
		d := newTestController(rec)

		d.PointerDown(PointerEvent{X: 300})
		d.PointerMove(PointerEvent{X: 302})
		d.PointerMove(PointerEvent{X: 305})
		d.PointerUp(PointerEvent{X: 305})

		assert.Empty(t, rec.clicks)
	})
}

func TestDisabledDropsEverything(t *testing.T) {
	rec := &recorder{}
	d := newTestController(rec)
	d.SetDisabled(true)

	d.PointerDown(PointerEvent{X: 300})
	d.PointerMove(PointerEvent{X: 340})
	d.PointerUp(PointerEvent{X: 340})

	assert.Empty(t, rec.changes)
	assert.Empty(t, rec.clicks)
	assert.Equal(t, 0.0, d.Position())
	assert.False(t, d.Dragging())
}

func TestDisableMidDragAbandonsSession(t *testing.T) {
	rec := &recorder{}
	d := newTestController(rec)

	d.PointerDown(PointerEvent{X: 300})
	d.SetDisabled(true)
	d.SetDisabled(false)
	d.PointerUp(PointerEvent{X: 300})

	assert.Empty(t, rec.clicks, "abandoned session must not emit a click on release")
}

func TestResizeKeepsNormalizedPosition(t *testing.T) {
	rec := &recorder{}
	d := newTestController(rec)

	d.PointerDown(PointerEvent{X: 300})
	d.PointerUp(PointerEvent{X: 300})
	require.Equal(t, 0.5, d.Position())

	changesBefore := len(rec.changes)
	d.Resize(Rect{Left: 0, Width: 800, Height: 300}, 800)

	assert.Equal(t, 0.5, d.Position(), "resize never alters the normalized position")
	assert.Equal(t, 400.0, d.HandleX(), "handle pixel is rederived from the position")
	assert.Len(t, rec.changes, changesBefore, "resize emits no change notification")
}

func TestSetPositionIsSilent(t *testing.T) {
	rec := &recorder{}
	d := newTestController(rec)

	d.SetPosition(1.4)

	assert.Equal(t, 1.0, d.Position(), "host pushes are clamped like any update")
	assert.Equal(t, 500.0, d.HandleX())
	assert.Empty(t, rec.changes, "the host already holds the value it pushed")
}

func TestPointerBeforeLayout(t *testing.T) {
	rec := &recorder{}
	log := hiccup.NewLog(hiccup.DefaultCapacity)
	d := NewDragController(rec.callbacks(), log)

	d.PointerDown(PointerEvent{X: 300})

	assert.Empty(t, rec.changes, "zero-width geometry degrades to a no-op")
	assert.Equal(t, 1, log.Count(hiccup.Geometry))

	// The next measurement self-corrects and dragging resumes.
	d.SetGeometry(Rect{Left: 100, Width: 400, Height: 200}, 600)
	d.PointerMove(PointerEvent{X: 340})
	assert.Equal(t, []float64{0.6}, rec.changes)
}

func TestEndToEndDragScenario(t *testing.T) {
	rec := &recorder{}
	d := newTestController(rec)

	d.PointerDown(PointerEvent{X: 300})
	assert.Equal(t, 0.5, d.Position())

	d.PointerMove(PointerEvent{X: 340})
	assert.Equal(t, 0.6, d.Position())

	d.PointerUp(PointerEvent{X: 340})
	assert.Empty(t, rec.clicks)
	assert.Equal(t, 0.6, d.Position())
	assert.Equal(t, []float64{0.5, 0.6}, rec.changes)
}
