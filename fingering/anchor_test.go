package fingering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"piano-fingering/note"
)

func notesOf(pitches []int) []note.Note {
	notes := make([]note.Note, len(pitches))
	for i, p := range pitches {
		notes[i] = note.Note{Pitch: p}
	}
	return notes
}

func TestComputeAnchorsSingleSegmentRH(t *testing.T) {
	notes := notesOf([]int{60, 62, 64, 67})
	anchors := computeAnchors(notes, note.RH)
	for _, a := range anchors {
		assert.Equal(t, 60, a)
	}
}

func TestComputeAnchorsSingleSegmentLH(t *testing.T) {
	notes := notesOf([]int{60, 62, 64, 67})
	anchors := computeAnchors(notes, note.LH)
	for _, a := range anchors {
		assert.Equal(t, 67, a)
	}
}

func TestComputeAnchorsSplitsOnWideRange(t *testing.T) {
	notes := notesOf([]int{60, 72})
	anchors := computeAnchors(notes, note.RH)
	assert.Equal(t, []int{60, 72}, anchors)
}

func TestComputeAnchorsEmpty(t *testing.T) {
	assert.Equal(t, []int{}, computeAnchors(nil, note.RH))
}

func TestExpectedFingerRHBoundaries(t *testing.T) {
	assert.Equal(t, 1, expectedFinger(note.RH, 60, 60))
	assert.Equal(t, 2, expectedFinger(note.RH, 62, 60))
	assert.Equal(t, 3, expectedFinger(note.RH, 64, 60))
	assert.Equal(t, 4, expectedFinger(note.RH, 66, 60))
	assert.Equal(t, 5, expectedFinger(note.RH, 67, 60))
}

func TestExpectedFingerLHBoundaries(t *testing.T) {
	assert.Equal(t, 1, expectedFinger(note.LH, 60, 60))
	assert.Equal(t, 2, expectedFinger(note.LH, 58, 60))
	assert.Equal(t, 3, expectedFinger(note.LH, 56, 60))
	assert.Equal(t, 4, expectedFinger(note.LH, 54, 60))
	assert.Equal(t, 5, expectedFinger(note.LH, 53, 60))
}

func TestComputeScaleMaskMarksRunOfFour(t *testing.T) {
	notes := notesOf([]int{60, 62, 64, 66, 68})
	mask := computeScaleMask(notes)
	for _, m := range mask {
		assert.True(t, m)
	}
}

func TestComputeScaleMaskIgnoresShortRun(t *testing.T) {
	notes := notesOf([]int{60, 62, 64, 66})
	mask := computeScaleMask(notes)
	for _, m := range mask {
		assert.False(t, m)
	}
}

func TestComputeScaleMaskBreaksOnDirectionChange(t *testing.T) {
	// Ascending run of 2 steps (too short), then a descending run of 4
	// steps starting at note index 2 — only the second run qualifies.
	notes := notesOf([]int{60, 62, 64, 62, 60, 58, 56})
	mask := computeScaleMask(notes)
	assert.Equal(t, []bool{false, false, true, true, true, true, true}, mask)
}

func TestComputeScaleMaskTooShort(t *testing.T) {
	assert.Equal(t, []bool{}, computeScaleMask(nil))
	assert.Equal(t, []bool{false}, computeScaleMask(notesOf([]int{60})))
}
