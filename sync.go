package videoslider

import (
	"math"

	"github.com/DEVAIEXP/gradio-component-videoslider/hiccup"
)

// SyncTolerance is the time drift, in seconds, above which the
// secondary handle is snapped to the primary's playback position.
const SyncTolerance = 0.1

// MediaSyncController keeps two playback handles in lockstep so they
// behave as one perceptual unit.
//
// Synchronization is level-triggered: Tick compares observable state
// each pass rather than reacting to individual events, so a missed or
// out-of-order event self-heals on the next tick. The secondary handle
// is always the follower; corrections only ever flow primary to
// secondary, which keeps a single source of truth and rules out
// oscillation between the two streams.
//
// Play rejections are expected, routine behavior (autoplay policy,
// unready media). They are swallowed at every call site and recorded to
// the hiccup log, never propagated.
type MediaSyncController struct {
	pair     MediaPair
	autoplay bool

	// autoplayed is the one-shot autoplay latch.
	autoplayed bool

	// missingLogged dedups the media-absent hiccup per pairing.
	missingLogged bool

	log *hiccup.Log
}

// NewMediaSyncController creates a controller over the given pair. The
// hiccup log is optional.
func NewMediaSyncController(pair MediaPair, autoplay bool, log *hiccup.Log) *MediaSyncController {
	return &MediaSyncController{pair: pair, autoplay: autoplay, log: log}
}

// Pair returns the current media pair.
func (c *MediaSyncController) Pair() MediaPair {
	return c.pair
}

// SetPair retargets the controller at a freshly mounted pair of
// handles. The autoplay latch resets: new media gets one new attempt.
func (c *MediaSyncController) SetPair(pair MediaPair) {
	c.pair = pair
	c.autoplayed = false
	c.missingLogged = false
}

// Hiccups exposes the log of swallowed faults, so a host can notice a
// chronically rejecting stream without the controller ever raising.
func (c *MediaSyncController) Hiccups() *hiccup.Log {
	return c.log
}

// OnPrimaryReady marks the primary handle as decodable. With autoplay
// configured it invokes Play once per pairing, swallowing any
// rejection; the latch guarantees later readiness events never
// re-trigger playback.
func (c *MediaSyncController) OnPrimaryReady() {
	if !c.autoplay || c.autoplayed {
		return
	}
	c.autoplayed = true
	p := c.pair.Primary
	if p == nil {
		return
	}
	if err := p.Play(); err != nil {
		c.log.Record(hiccup.New(hiccup.Playback, "autoplay rejected",
			hiccup.Context{"handle": "primary", "error": err.Error()}))
	}
}

// Tick reconciles the secondary handle with the primary. It must run at
// least once per meaningful state change (time update, play/pause
// toggle) to preserve convergence; running it more often is harmless.
func (c *MediaSyncController) Tick() {
	p, s := c.pair.Primary, c.pair.Secondary
	if p == nil || s == nil {
		if !c.missingLogged {
			c.log.Record(hiccup.New(hiccup.Media, "sync skipped, handle missing",
				hiccup.Context{"primary": p != nil, "secondary": s != nil}).WithSeverity(hiccup.Skip))
			c.missingLogged = true
		}
		return
	}

	if drift := math.Abs(p.CurrentTime() - s.CurrentTime()); drift > SyncTolerance {
		s.SetCurrentTime(p.CurrentTime())
	}

	if p.Paused() != s.Paused() {
		if p.Paused() {
			s.Pause()
		} else if err := s.Play(); err != nil {
			c.log.Record(hiccup.New(hiccup.Playback, "secondary play rejected",
				hiccup.Context{"handle": "secondary", "error": err.Error()}))
		}
	}
}

// TogglePlayback starts or stops both handles based on whether the
// primary is actually playing. The two calls are issued independently:
// a rejection on one never suppresses the other.
func (c *MediaSyncController) TogglePlayback() {
	p, s := c.pair.Primary, c.pair.Secondary
	if p == nil || s == nil {
		return
	}
	if activelyPlaying(p) {
		p.Pause()
		s.Pause()
		return
	}
	if err := p.Play(); err != nil {
		c.log.Record(hiccup.New(hiccup.Playback, "toggle play rejected",
			hiccup.Context{"handle": "primary", "error": err.Error()}))
	}
	if err := s.Play(); err != nil {
		c.log.Record(hiccup.New(hiccup.Playback, "toggle play rejected",
			hiccup.Context{"handle": "secondary", "error": err.Error()}))
	}
}

// activelyPlaying mirrors the "is it really playing" check for media
// elements: a handle that is unpaused but has never produced a frame,
// already ended, or lacks buffered data counts as not playing.
func activelyPlaying(p Player) bool {
	if p.Paused() || p.Ended() {
		return false
	}
	if b, ok := p.(Buffered); ok && !b.HasEnoughData() {
		return false
	}
	return p.CurrentTime() > 0
}
