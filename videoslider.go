// Package videoslider implements the interaction and synchronization
// core of a split-screen video comparison widget.
//
// A draggable vertical divider reveals one of two overlapping media
// surfaces while two playback streams are kept in lockstep, so the pair
// reads as a single video with a movable seam. The package owns the
// three pieces that require care: converting pointer gestures into a
// normalized divider position while telling drags apart from clicks
// (DragController), mirroring transport state from a primary to a
// secondary handle (MediaSyncController), and deriving the clip
// geometry that the reveal effect is built from (RevealCompositor,
// Layout).
//
// Basic usage:
//
//	slider := videoslider.New(videoslider.DefaultOptions(), videoslider.Callbacks{
//		OnChange: func(p float64) { /* redraw at p */ },
//		OnClick:  func(videoslider.PointerEvent) { slider.TogglePlayback() },
//	})
//
//	slider.AttachMedia(videoslider.MediaPair{Primary: left, Secondary: right})
//	slider.Drag().SetGeometry(videoslider.Rect{Left: 100, Width: 400, Height: 200}, 600)
//
//	// per pointer event:
//	slider.Drag().PointerDown(ev)
//	// per host update pass:
//	slider.Tick()
//
// Everything around the core (upload widgets, labels, download links,
// host-framework wiring) lives with the host; the package only consumes
// pointer samples, geometry measurements, and media handles, and emits
// position changes and click notifications back.
package videoslider

import (
	"encoding/json"
	"fmt"

	"github.com/DEVAIEXP/gradio-component-videoslider/hiccup"
)

// Options configures a VideoSlider. The zero value is usable;
// DefaultOptions matches the original component's defaults.
type Options struct {
	// Position is the initial divider location on a 0..100 scale.
	Position int
	// Autoplay attempts playback once the primary handle is ready.
	Autoplay bool
	// Loop is passed through to media handles that support it.
	Loop bool
	// Disabled suppresses all drag interaction.
	Disabled bool
	// SliderColor is pure presentation, forwarded to renderers untouched.
	SliderColor string
	// Height and Width are presentation hints in pixels (0 = natural).
	Height int
	Width  int
	// ShowDownloadButton and ShowFullscreenButton are presentation
	// flags carried for hosts; they have no behavioral effect here.
	ShowDownloadButton   bool
	ShowFullscreenButton bool
}

// DefaultOptions returns the component defaults: divider centered,
// download and fullscreen affordances shown, everything else off.
func DefaultOptions() Options {
	return Options{
		Position:             50,
		ShowDownloadButton:   true,
		ShowFullscreenButton: true,
	}
}

// FileData identifies one media source by local path or URL. The core
// never fetches or stores the file; the reference is carried for hosts.
type FileData struct {
	Path string `json:"path"`
	URL  string `json:"url,omitempty"`
}

// Value is the ordered (primary, secondary) pair of media sources.
//
// On the wire it is a two-element array of nullable file objects, the
// same shape the original component exchanges with its frontend. A pair
// with both halves absent encodes as null.
type Value struct {
	Primary   *FileData
	Secondary *FileData
}

// Empty reports whether both sources are absent.
func (v Value) Empty() bool {
	return v.Primary == nil && v.Secondary == nil
}

// Complete reports whether both sources are present.
func (v Value) Complete() bool {
	return v.Primary != nil && v.Secondary != nil
}

// MarshalJSON encodes the pair as [primary, secondary], or null when
// both halves are absent.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.Empty() {
		return []byte("null"), nil
	}
	return json.Marshal([2]*FileData{v.Primary, v.Secondary})
}

// UnmarshalJSON decodes null or a two-element array of nullable file
// objects.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Value{}
		return nil
	}
	var pair []*FileData
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("videoslider: value must hold exactly 2 sources, got %d", len(pair))
	}
	v.Primary, v.Secondary = pair[0], pair[1]
	return nil
}

// VideoSlider aggregates the interaction core behind one widget-shaped
// entry point: a drag controller, a sync controller over the attached
// media pair, and the configured options.
//
// The widget does not render; hosts read Drag().Position() (or listen
// on OnChange) and feed it to Layout or RevealCompositor themselves.
type VideoSlider struct {
	opts      Options
	callbacks Callbacks

	drag *DragController
	sync *MediaSyncController
	log  *hiccup.Log

	value Value
}

// New creates a widget from options and notification hooks.
func New(opts Options, callbacks Callbacks) *VideoSlider {
	log := hiccup.NewLog(hiccup.DefaultCapacity)
	drag := NewDragController(callbacks, log)
	drag.SetPosition(float64(opts.Position) / 100)
	drag.SetDisabled(opts.Disabled)

	return &VideoSlider{
		opts:      opts,
		callbacks: callbacks,
		drag:      drag,
		sync:      NewMediaSyncController(MediaPair{}, opts.Autoplay, log),
		log:       log,
	}
}

// Options returns the configuration the widget was built with.
func (v *VideoSlider) Options() Options {
	return v.opts
}

// Drag exposes the drag controller for pointer and geometry wiring.
func (v *VideoSlider) Drag() *DragController {
	return v.drag
}

// Sync exposes the media sync controller.
func (v *VideoSlider) Sync() *MediaSyncController {
	return v.sync
}

// Value returns the current pair of media sources.
func (v *VideoSlider) Value() Value {
	return v.value
}

// SetValue installs a new pair of media sources and fires the upload
// notification once both halves are present.
func (v *VideoSlider) SetValue(val Value) {
	v.value = val
	if val.Complete() {
		v.callbacks.upload(val)
	}
}

// Clear drops the value and detaches both media handles, then fires the
// clear notification. The divider position is left where it was.
func (v *VideoSlider) Clear() {
	v.value = Value{}
	v.sync.SetPair(MediaPair{})
	v.callbacks.clear()
}

// AttachMedia mounts the resolved playback handles for the current
// value, propagating the Loop option to handles that support it.
func (v *VideoSlider) AttachMedia(pair MediaPair) {
	if l, ok := pair.Primary.(Looper); ok {
		l.SetLoop(v.opts.Loop)
	}
	if l, ok := pair.Secondary.(Looper); ok {
		l.SetLoop(v.opts.Loop)
	}
	v.sync.SetPair(pair)
}

// Media returns the currently attached pair.
func (v *VideoSlider) Media() MediaPair {
	return v.sync.Pair()
}

// Tick runs one synchronization pass. Hosts call it from their render
// or update hook, at least once per meaningful media state change.
func (v *VideoSlider) Tick() {
	v.sync.Tick()
}

// TogglePlayback starts or stops both streams together.
func (v *VideoSlider) TogglePlayback() {
	v.sync.TogglePlayback()
}
