// Package hiccup records the small faults a synchronized playback
// surface swallows by design.
//
// Nothing in the videoslider core is allowed to fail loudly: autoplay
// rejections, not-yet-measured geometry, and missing media all degrade
// to safe defaults and self-heal on a later event or tick. A hiccup is
// the paper trail such a condition leaves behind, so an embedding host
// can notice a chronically failing stream without the core ever raising.
//
// Example:
//
//	log := hiccup.NewLog(hiccup.DefaultCapacity)
//	log.Record(hiccup.New(hiccup.Playback, "autoplay rejected",
//		hiccup.Context{"source": "primary"}))
//
//	if log.Count(hiccup.Playback) > 5 {
//		// surface a muted-playback indicator
//	}
package hiccup

import (
	"fmt"
	"strings"
	"time"
)

// Kind categorizes a hiccup by the subsystem that swallowed it.
type Kind string

const (
	// Geometry marks conversions attempted before the container was laid out.
	Geometry Kind = "geometry"
	// Playback marks rejected play() calls on a media handle.
	Playback Kind = "playback"
	// Media marks operations skipped because a media handle was absent.
	Media Kind = "media"
	// Input marks pointer input dropped while interaction was disabled.
	Input Kind = "input"
)

// Severity grades how much a hiccup matters to an observing host.
type Severity int

const (
	// Blip is routine and expected, like an autoplay policy rejection.
	Blip Severity = iota
	// Skip means one update pass produced degraded output.
	Skip
	// Stall means the same fault keeps recurring and a host may want
	// to surface it.
	Stall
)

func (s Severity) String() string {
	switch s {
	case Blip:
		return "blip"
	case Skip:
		return "skip"
	case Stall:
		return "stall"
	default:
		return "unknown"
	}
}

// Context carries structured detail about the state at record time.
type Context map[string]interface{}

// Hiccup is one swallowed fault with enough context to debug it later.
type Hiccup struct {
	Kind      Kind
	Message   string
	Context   Context
	Timestamp time.Time
	Severity  Severity
}

// New creates a hiccup with Blip severity and the current timestamp.
func New(kind Kind, message string, context Context) *Hiccup {
	return &Hiccup{
		Kind:      kind,
		Message:   message,
		Context:   context,
		Timestamp: time.Now(),
		Severity:  Blip,
	}
}

// WithSeverity overrides the severity grade.
func (h *Hiccup) WithSeverity(severity Severity) *Hiccup {
	h.Severity = severity
	return h
}

// Error implements the error interface so a hiccup can travel through
// error-shaped plumbing, even though the core never returns one.
func (h *Hiccup) Error() string {
	return fmt.Sprintf("[%s:%s] %s", h.Kind, h.Severity, h.Message)
}

// DetailedString returns the hiccup with timestamp and context expanded.
func (h *Hiccup) DetailedString() string {
	var b strings.Builder
	b.WriteString(h.Error())
	b.WriteString(fmt.Sprintf("\n  Time: %s", h.Timestamp.Format("15:04:05.000")))
	if len(h.Context) > 0 {
		b.WriteString("\n  Context:")
		for k, v := range h.Context {
			b.WriteString(fmt.Sprintf("\n    %s: %v", k, v))
		}
	}
	return b.String()
}

// DefaultCapacity bounds a Log at 32 retained hiccups.
const DefaultCapacity = 32

// Log is a bounded, append-only record of hiccups. When full, the
// oldest entries are discarded and counted as dropped.
//
// All methods are nil-receiver safe, so components can carry an
// optional *Log and record unconditionally.
type Log struct {
	capacity int
	entries  []*Hiccup
	dropped  int
}

// NewLog creates a log retaining at most capacity hiccups. A capacity
// below one falls back to DefaultCapacity.
func NewLog(capacity int) *Log {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Record appends a hiccup, evicting the oldest entry when full.
func (l *Log) Record(h *Hiccup) {
	if l == nil || h == nil {
		return
	}
	if len(l.entries) == l.capacity {
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:l.capacity-1]
		l.dropped++
	}
	l.entries = append(l.entries, h)
}

// Len returns the number of retained hiccups.
func (l *Log) Len() int {
	if l == nil {
		return 0
	}
	return len(l.entries)
}

// Dropped returns how many hiccups were evicted to stay within capacity.
func (l *Log) Dropped() int {
	if l == nil {
		return 0
	}
	return l.dropped
}

// Last returns the most recent hiccup, or nil when none were recorded.
func (l *Log) Last() *Hiccup {
	if l == nil || len(l.entries) == 0 {
		return nil
	}
	return l.entries[len(l.entries)-1]
}

// All returns the retained hiccups in chronological order.
func (l *Log) All() []*Hiccup {
	if l == nil {
		return nil
	}
	out := make([]*Hiccup, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count returns how many retained hiccups have the given kind.
func (l *Log) Count(kind Kind) int {
	if l == nil {
		return 0
	}
	n := 0
	for _, h := range l.entries {
		if h.Kind == kind {
			n++
		}
	}
	return n
}

// Summary returns a one-line overview of the log contents.
func (l *Log) Summary() string {
	if l.Len() == 0 {
		return "no hiccups"
	}
	return fmt.Sprintf("%d hiccups (%d dropped), last: %s",
		l.Len(), l.Dropped(), l.Last().Error())
}
