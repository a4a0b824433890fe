package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"piano-fingering/fingering"
	"piano-fingering/note"
	"piano-fingering/pattern"
)

func TestAnalyzeEmpty(t *testing.T) {
	result := Analyze(nil, fingering.Intermediate)
	assert.Empty(t, result.Fingers)
	assert.Empty(t, result.Segments)
	assert.Equal(t, 0, result.TotalCost)
}

func TestAnalyzePreservesInputOrderAcrossHands(t *testing.T) {
	notes := []note.Note{
		{Pitch: 60, Hand: note.RH, Duration: 0.5},
		{Pitch: 48, Hand: note.LH, Duration: 0.5},
		{Pitch: 62, Hand: note.RH, Duration: 0.5},
		{Pitch: 50, Hand: note.LH, Duration: 0.5},
	}
	result := Analyze(notes, fingering.Intermediate)
	assert.Len(t, result.Fingers, 4)
	assert.Len(t, result.Reasons, 4)

	rh, lh := note.Split(notes)
	recognizer := pattern.NewRecognizer()
	planner := fingering.NewPlanner(fingering.Intermediate)
	rhSol := planner.Solve(note.RH, rh, recognizer.Recognize(rh))
	lhSol := planner.Solve(note.LH, lh, recognizer.Recognize(lh))
	assert.Equal(t, []int{rhSol.Fingers[0], lhSol.Fingers[0], rhSol.Fingers[1], lhSol.Fingers[1]}, result.Fingers)
}

func TestAnalyzeDropsRests(t *testing.T) {
	notes := []note.Note{
		{Pitch: 60, Hand: note.RH, Duration: 0.5},
		{Pitch: 0, Hand: note.RH, Duration: 0.5, IsRest: true},
		{Pitch: 62, Hand: note.RH, Duration: 0.5},
	}
	result := Analyze(notes, fingering.Intermediate)
	assert.Len(t, result.Fingers, 2)
}

func TestMergeSegmentsOrdersByStartIndexRHBeforeLH(t *testing.T) {
	rh := []pattern.Segment{{StartIndex: 2, EndIndex: 5, Type: pattern.Scale}}
	lh := []pattern.Segment{{StartIndex: 2, EndIndex: 4, Type: pattern.Arpeggio}, {StartIndex: 0, EndIndex: 1, Type: pattern.Leap}}

	merged := mergeSegments(rh, lh)
	assert.Len(t, merged, 3)
	assert.Equal(t, 0, merged[0].StartIndex)
	assert.Equal(t, note.LH, merged[0].Hand)
	assert.Equal(t, 2, merged[1].StartIndex)
	assert.Equal(t, note.RH, merged[1].Hand) // RH wins the tie at index 2
	assert.Equal(t, note.LH, merged[2].Hand)
}

func TestAnalyzeTotalCostIsSumOfHandTotals(t *testing.T) {
	notes := []note.Note{
		{Pitch: 60, Hand: note.RH, Duration: 0.5},
		{Pitch: 48, Hand: note.LH, Duration: 0.5},
	}
	result := Analyze(notes, fingering.Beginner)

	rh, lh := note.Split(notes)
	recognizer := pattern.NewRecognizer()
	planner := fingering.NewPlanner(fingering.Beginner)
	rhSol := planner.Solve(note.RH, rh, recognizer.Recognize(rh))
	lhSol := planner.Solve(note.LH, lh, recognizer.Recognize(lh))

	assert.Equal(t, rhSol.TotalCost+lhSol.TotalCost, result.TotalCost)
}
