package videoslider

// PointerEvent is a single pointer or touch sample delivered by the
// host's input system. Only the horizontal coordinate drives the
// divider; the full event is carried through so click notifications can
// hand the originating sample back to the host.
type PointerEvent struct {
	// X is the clientX coordinate in pixel space.
	X float64
	// Y is the clientY coordinate in pixel space.
	Y float64
}

// Callbacks carries the notification hooks a host registers at
// construction time. Every field is optional; nil hooks are skipped.
//
// Registration is explicit by design: the core never dispatches through
// an ambient event bus, so a host sees exactly the notifications it
// asked for and nothing else.
//
// Example:
//
//	slider := videoslider.New(videoslider.DefaultOptions(), videoslider.Callbacks{
//		OnChange: func(p float64) { fmt.Printf("divider at %.2f\n", p) },
//		OnClick:  func(ev videoslider.PointerEvent) { togglePlayback() },
//	})
type Callbacks struct {
	// OnChange fires synchronously on every normalized position change.
	OnChange func(position float64)
	// OnClick fires on pointer-up for presses that never exceeded the
	// drag threshold, carrying the originating release event.
	OnClick func(ev PointerEvent)
	// OnClear fires when the widget's value is cleared.
	OnClear func()
	// OnUpload fires when both media sources of the value are set.
	OnUpload func(v Value)
}

func (c Callbacks) change(p float64) {
	if c.OnChange != nil {
		c.OnChange(p)
	}
}

func (c Callbacks) click(ev PointerEvent) {
	if c.OnClick != nil {
		c.OnClick(ev)
	}
}

func (c Callbacks) clear() {
	if c.OnClear != nil {
		c.OnClear()
	}
}

func (c Callbacks) upload(v Value) {
	if c.OnUpload != nil {
		c.OnUpload(v)
	}
}
