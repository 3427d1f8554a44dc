package videoslider

// Player is the capability set the sync controller needs from a media
// handle. It is deliberately an interface rather than a concrete
// UI-toolkit element reference: the controller depends on transport
// operations, not on whatever widget happens to back them.
//
// Play is asynchronous in spirit; an implementation reports a runtime
// rejection (autoplay policy, unready media) as a non-nil error, which
// callers in this package always swallow.
type Player interface {
	// CurrentTime returns the playback position in seconds.
	CurrentTime() float64
	// SetCurrentTime seeks to the given position in seconds.
	SetCurrentTime(seconds float64)
	// Paused reports whether the handle is paused.
	Paused() bool
	// Ended reports whether playback ran past the final frame.
	Ended() bool
	// Play starts playback. A rejection is returned, never panicked.
	Play() error
	// Pause stops playback immediately.
	Pause()
}

// Buffered is optionally implemented by handles that can report whether
// enough data is buffered to sustain playback. Handles without it are
// assumed ready.
type Buffered interface {
	HasEnoughData() bool
}

// Looper is optionally implemented by handles whose loop behavior can
// be configured. The widget passes its Loop option through untouched.
type Looper interface {
	SetLoop(loop bool)
}

// MediaPair holds the two synchronized playback handles. Secondary
// always follows primary; nothing else in the system may mutate their
// transport state.
type MediaPair struct {
	Primary   Player
	Secondary Player
}

// Complete reports whether both handles are present.
func (p MediaPair) Complete() bool {
	return p.Primary != nil && p.Secondary != nil
}
