package fingering

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"piano-fingering/note"
)

func streamOf(pitches []int) []note.Note {
	notes := make([]note.Note, len(pitches))
	for i, p := range pitches {
		notes[i] = note.Note{Pitch: p, Duration: 0.5}
	}
	return notes
}

func TestSolveEmpty(t *testing.T) {
	p := NewPlanner(Intermediate)
	sol := p.Solve(note.RH, nil, nil)
	assert.Equal(t, Solution{}, sol)
}

func TestSolveSingleNote(t *testing.T) {
	p := NewPlanner(Intermediate)
	sol := p.Solve(note.RH, streamOf([]int{60}), nil)
	assert.Len(t, sol.Fingers, 1)
	assert.Equal(t, 1, sol.Fingers[0]) // matches the anchor, cheapest by initialCost
}

func TestSolveFingersInRange(t *testing.T) {
	p := NewPlanner(Intermediate)
	pitches := make([]int, 20)
	for i := range pitches {
		pitches[i] = 60 + (i % 8)
	}
	sol := p.Solve(note.RH, streamOf(pitches), nil)
	assert.Len(t, sol.Fingers, 20)
	for _, f := range sol.Fingers {
		assert.GreaterOrEqual(t, f, 1)
		assert.LessOrEqual(t, f, 5)
	}
}

func TestSolveChunkingBoundary(t *testing.T) {
	p := NewPlanner(Intermediate)

	pitches64 := make([]int, 64)
	for i := range pitches64 {
		pitches64[i] = 60 + (i % 7)
	}
	sol64 := p.Solve(note.RH, streamOf(pitches64), nil)
	assert.Len(t, sol64.Fingers, 64)

	pitches65 := make([]int, 65)
	for i := range pitches65 {
		pitches65[i] = 60 + (i % 7)
	}
	sol65 := p.Solve(note.RH, streamOf(pitches65), nil)
	assert.Len(t, sol65.Fingers, 65)

	for _, f := range sol65.Fingers {
		assert.GreaterOrEqual(t, f, 1)
		assert.LessOrEqual(t, f, 5)
	}
}

func TestReasonStrings(t *testing.T) {
	sol := Solution{Reasons: [][]string{{"a", "b"}, {"c"}, nil}}
	out := sol.ReasonStrings()
	assert.Equal(t, []string{"a; b", "c", ""}, out)
}
