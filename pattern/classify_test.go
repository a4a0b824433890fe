package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"piano-fingering/note"
)

func notesFromPitches(pitches []int, dur float64) []note.Note {
	notes := make([]note.Note, len(pitches))
	for i, p := range pitches {
		notes[i] = note.Note{Pitch: p, Duration: dur, Beat: float64(i) * dur}
	}
	return notes
}

func TestClassifyScaleAscending(t *testing.T) {
	window := notesFromPitches([]int{60, 62, 64, 65, 67, 69, 71, 72}, 0.5)
	typ, conf, feat := classify(window)
	assert.Equal(t, Scale, typ)
	assert.Equal(t, "ascending", feat.Direction)
	assert.Equal(t, "major", feat.ScaleType)
	assert.Greater(t, conf, 0.0)
}

func TestClassifyScaleDescending(t *testing.T) {
	window := notesFromPitches([]int{72, 71, 69, 67, 65, 64, 62, 60}, 0.5)
	typ, _, feat := classify(window)
	assert.Equal(t, Scale, typ)
	assert.Equal(t, "descending", feat.Direction)
}

func TestClassifyArpeggioTriad(t *testing.T) {
	// Broken-chord tenths spanning a C major triad; large enough leaps to
	// clear the leapRatio gate while the pitch classes still form a triad.
	window := notesFromPitches([]int{48, 67, 52, 72, 55, 76}, 0.5)
	typ, _, feat := classify(window)
	assert.Equal(t, Arpeggio, typ)
	assert.Equal(t, "triad", feat.ChordType)
	assert.Equal(t, 0, feat.Root)
}

func TestClassifyRepeatedSingle(t *testing.T) {
	window := notesFromPitches([]int{60, 60, 60, 60, 60}, 0.25)
	typ, _, feat := classify(window)
	assert.Equal(t, Repeated, typ)
	assert.Equal(t, "single", feat.Subtype)
}

// Strict alternation between exactly two distinct pitches always yields an
// entropy at or near the maximum for a two-outcome distribution (>= 0.5
// bits for any split closer than roughly 9:1), so the REPEATED entropy gate
// forecloses the "alternating" subtype for this window; it falls through
// to UNKNOWN. This documents observed behavior, not a desired one. The
// window has five notes because six would repeat the two-note unit three
// times and be caught earlier by OSTINATO.
func TestClassifyAlternatingPitchesFallsThroughEntropyGate(t *testing.T) {
	window := notesFromPitches([]int{60, 64, 60, 64, 60}, 0.25)
	typ, _, _ := classify(window)
	assert.Equal(t, Unknown, typ)
}

func TestClassifyChordal(t *testing.T) {
	window := []note.Note{
		{Pitch: 60, Beat: 0},
		{Pitch: 64, Beat: 0},
		{Pitch: 67, Beat: 0},
		{Pitch: 60, Beat: 1},
		{Pitch: 64, Beat: 1},
		{Pitch: 67, Beat: 1},
	}
	typ, _, _ := classify(window)
	assert.Equal(t, Chordal, typ)
}

func TestClassifyLeap(t *testing.T) {
	window := notesFromPitches([]int{60, 72, 55, 79, 50, 84}, 0.5)
	typ, _, feat := classify(window)
	assert.Equal(t, Leap, typ)
	assert.Equal(t, "jagged", feat.Contour)
}

func TestClassifyOrnamentedFlag(t *testing.T) {
	window := []note.Note{
		{Pitch: 60, Duration: 0.5},
		{Pitch: 62, Duration: 0.5, HasTrill: true},
		{Pitch: 60, Duration: 0.5},
	}
	typ, conf, feat := classify(window)
	assert.Equal(t, Ornamented, typ)
	assert.Equal(t, "trill", feat.OrnamentType)
	assert.Equal(t, 1.0, conf)
}

func TestClassifyAlberti(t *testing.T) {
	// A single Alberti cell: low, high, middle, high. Ratio threshold
	// (0.6) only clears when the window is close to one period long.
	window := notesFromPitches([]int{48, 55, 52, 55}, 0.25)
	for i := range window {
		window[i].Staff = 2
	}
	typ, _, feat := classify(window)
	assert.Equal(t, Alberti, typ)
	assert.Equal(t, 1.0, feat.MatchRatio)
}

func TestClassifyOstinato(t *testing.T) {
	window := notesFromPitches([]int{60, 64, 67, 60, 64, 67, 60, 64, 67}, 0.25)
	typ, _, feat := classify(window)
	assert.Equal(t, Ostinato, typ)
	assert.Equal(t, 3, feat.PatternLength)
}

func TestClassifyPolyphonic(t *testing.T) {
	window := []note.Note{
		{Pitch: 60, Voice: 1, Beat: 0},
		{Pitch: 64, Voice: 1, Beat: 1},
		{Pitch: 48, Voice: 2, Beat: 0.25},
		{Pitch: 50, Voice: 2, Beat: 1.25},
	}
	typ, _, _ := classify(window)
	assert.Equal(t, Polyphonic, typ)
}

func TestClassifyMelodicBySlur(t *testing.T) {
	window := []note.Note{
		{Pitch: 60, Duration: 1.5, Beat: 0, HasSlur: true},
		{Pitch: 63, Duration: 1.5, Beat: 1.5, HasSlur: true},
	}
	typ, _, feat := classify(window)
	assert.Equal(t, Melodic, typ)
	assert.Equal(t, "cantabile", feat.Style)
}

func TestClassifyUnknownFallback(t *testing.T) {
	window := notesFromPitches([]int{60, 62, 61, 63, 60}, 1.0)
	typ, conf, _ := classify(window)
	assert.Equal(t, Unknown, typ)
	assert.Equal(t, 0.5, conf)
}

func TestTypeStringAllCases(t *testing.T) {
	cases := map[Type]string{
		Unknown: "UNKNOWN", Scale: "SCALE", Arpeggio: "ARPEGGIO",
		Repeated: "REPEATED", Leap: "LEAP", Chordal: "CHORDAL",
		Melodic: "MELODIC", Alberti: "ALBERTI", Ornamented: "ORNAMENTED",
		Ostinato: "OSTINATO", Polyphonic: "POLYPHONIC",
	}
	for typ, want := range cases {
		assert.Equal(t, want, typ.String())
	}
}

func TestSegmentLen(t *testing.T) {
	s := Segment{StartIndex: 3, EndIndex: 7}
	assert.Equal(t, 5, s.Len())
}
