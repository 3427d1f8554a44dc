package hiccup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogRecordAndQuery(t *testing.T) {
	log := NewLog(4)

	log.Record(New(Playback, "autoplay rejected", Context{"handle": "primary"}))
	log.Record(New(Media, "handle missing", nil).WithSeverity(Skip))

	assert.Equal(t, 2, log.Len())
	assert.Equal(t, 1, log.Count(Playback))
	assert.Equal(t, 1, log.Count(Media))
	assert.Equal(t, 0, log.Count(Geometry))

	last := log.Last()
	require.NotNil(t, last)
	assert.Equal(t, Media, last.Kind)
	assert.Equal(t, Skip, last.Severity)
}

func TestLogBoundedEviction(t *testing.T) {
	log := NewLog(3)

	for i := 0; i < 5; i++ {
		log.Record(New(Playback, "rejected", Context{"n": i}))
	}

	assert.Equal(t, 3, log.Len())
	assert.Equal(t, 2, log.Dropped())

	all := log.All()
	require.Len(t, all, 3)
	assert.Equal(t, 2, all[0].Context["n"], "oldest entries are evicted first")
	assert.Equal(t, 4, all[2].Context["n"])
}

func TestNilLogIsSafe(t *testing.T) {
	var log *Log

	assert.NotPanics(t, func() {
		log.Record(New(Input, "dropped", nil))
	})
	assert.Equal(t, 0, log.Len())
	assert.Equal(t, 0, log.Dropped())
	assert.Nil(t, log.Last())
	assert.Nil(t, log.All())
	assert.Equal(t, 0, log.Count(Input))
	assert.Equal(t, "no hiccups", log.Summary())
}

func TestHiccupError(t *testing.T) {
	h := New(Geometry, "pointer update before layout", nil).WithSeverity(Stall)

	assert.Equal(t, "[geometry:stall] pointer update before layout", h.Error())
	assert.Contains(t, h.DetailedString(), "Time:")
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "blip", Blip.String())
	assert.Equal(t, "skip", Skip.String())
	assert.Equal(t, "stall", Stall.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestSummary(t *testing.T) {
	log := NewLog(2)
	log.Record(New(Playback, "rejected", nil))

	assert.Contains(t, log.Summary(), "1 hiccups")
	assert.Contains(t, log.Summary(), "rejected")
}
