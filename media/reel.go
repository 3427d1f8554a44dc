// Package media provides in-process playback handles for driving the
// videoslider core without decoding any actual video.
//
// A Reel is a scripted transport: its playback position advances with a
// clock while playing and holds still while paused, with loop and
// end-of-media behavior matching what a real media element reports.
// Reels back the runnable example and give tests a handle whose time
// source is injectable.
package media

import (
	"math"
	"time"
)

// Clock supplies the current time. Injectable so tests can script
// playback deterministically.
type Clock func() time.Time

// Reel is a clock-driven playback handle. It implements the
// videoslider Player, Buffered, and Looper capabilities.
type Reel struct {
	name     string
	duration float64
	clock    Clock

	loop    bool
	ready   bool
	onReady func()

	// playErr, when set, makes Play report a rejection, simulating a
	// runtime autoplay policy or an unready stream.
	playErr error

	playing  bool
	playedAt time.Time // start of the current play span
	base     float64   // seconds accumulated before the current span
}

// NewReel creates a paused reel of the given duration in seconds,
// positioned at zero and timed by the wall clock.
func NewReel(name string, duration float64) *Reel {
	return &Reel{
		name:     name,
		duration: duration,
		clock:    time.Now,
	}
}

// WithClock replaces the time source.
func (r *Reel) WithClock(clock Clock) *Reel {
	r.clock = clock
	return r
}

// WithPlayError makes every Play call report the given rejection.
func (r *Reel) WithPlayError(err error) *Reel {
	r.playErr = err
	return r
}

// Name returns the label the reel was created with.
func (r *Reel) Name() string {
	return r.name
}

// Duration returns the reel length in seconds.
func (r *Reel) Duration() float64 {
	return r.duration
}

// SetLoop configures wraparound at end of media.
func (r *Reel) SetLoop(loop bool) {
	r.loop = loop
}

// OnReady registers the readiness notification, the analog of a media
// element's loadeddata event.
func (r *Reel) OnReady(fn func()) {
	r.onReady = fn
}

// MarkReady flags the reel as decodable and fires the readiness hook.
func (r *Reel) MarkReady() {
	r.ready = true
	if r.onReady != nil {
		r.onReady()
	}
}

// HasEnoughData reports whether the reel has been marked ready.
func (r *Reel) HasEnoughData() bool {
	return r.ready
}

// CurrentTime returns the playback position in seconds. While playing
// it advances with the clock; looping reels wrap, others hold at the
// final frame.
func (r *Reel) CurrentTime() float64 {
	return r.position()
}

// SetCurrentTime seeks to the given position, clamped to the reel
// bounds. Seeking restarts the current play span from the new position.
func (r *Reel) SetCurrentTime(seconds float64) {
	if seconds < 0 {
		seconds = 0
	}
	if seconds > r.duration {
		seconds = r.duration
	}
	r.base = seconds
	if r.playing {
		r.playedAt = r.clock()
	}
}

// Paused reports whether the transport is stopped.
func (r *Reel) Paused() bool {
	return !r.playing
}

// Ended reports whether playback ran past the final frame of a
// non-looping reel.
func (r *Reel) Ended() bool {
	return !r.loop && r.elapsed() >= r.duration && r.duration > 0
}

// Play starts the transport. A configured rejection is returned
// as-is; playing an ended reel restarts it from the beginning.
func (r *Reel) Play() error {
	if r.playErr != nil {
		return r.playErr
	}
	if r.playing {
		return nil
	}
	if r.Ended() {
		r.base = 0
	}
	r.playing = true
	r.playedAt = r.clock()
	return nil
}

// Pause stops the transport, folding the current span into the
// accumulated position.
func (r *Reel) Pause() {
	if !r.playing {
		return
	}
	r.base = r.position()
	r.playing = false
}

// elapsed returns total uncapped seconds since position zero.
func (r *Reel) elapsed() float64 {
	total := r.base
	if r.playing {
		total += r.clock().Sub(r.playedAt).Seconds()
	}
	return total
}

func (r *Reel) position() float64 {
	total := r.elapsed()
	if r.duration <= 0 {
		return 0
	}
	if total < r.duration {
		return total
	}
	if r.loop {
		return math.Mod(total, r.duration)
	}
	return r.duration
}
