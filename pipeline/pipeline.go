// Package pipeline wires the hand splitter, pattern recognizer, fingering
// planner, and merger into the single entry point external callers use:
// a pure function from (notes, difficulty) to (solution, segments).
package pipeline

import (
	"sort"

	"piano-fingering/fingering"
	"piano-fingering/note"
	"piano-fingering/pattern"
)

// MergedSegment is a pattern segment tagged with the hand it was
// recognized on, for the combined two-hand segment list.
type MergedSegment struct {
	pattern.Segment
	Hand note.Hand
}

// Result is the merged, input-order output of running the full pipeline.
type Result struct {
	Fingers   []int
	Reasons   [][]string
	TotalCost int
	Segments  []MergedSegment
}

// Analyze runs the hand splitter, recognizer, and planner per hand, then
// merges the two hand-local solutions and segment lists back into input
// order. It is a pure function: it never mutates notes and never errors.
func Analyze(notes []note.Note, difficulty fingering.Difficulty) Result {
	rh, lh := note.Split(notes)

	recognizer := pattern.NewRecognizer()
	rhSegments := recognizer.Recognize(rh)
	lhSegments := recognizer.Recognize(lh)

	planner := fingering.NewPlanner(difficulty)
	rhSolution := planner.Solve(note.RH, rh, rhSegments)
	lhSolution := planner.Solve(note.LH, lh, lhSegments)

	fingers := make([]int, 0, len(notes))
	reasons := make([][]string, 0, len(notes))
	rhIdx, lhIdx := 0, 0
	for _, n := range notes {
		if n.IsRest {
			continue
		}
		if n.Hand == note.LH {
			fingers = append(fingers, lhSolution.Fingers[lhIdx])
			reasons = append(reasons, lhSolution.Reasons[lhIdx])
			lhIdx++
		} else {
			fingers = append(fingers, rhSolution.Fingers[rhIdx])
			reasons = append(reasons, rhSolution.Reasons[rhIdx])
			rhIdx++
		}
	}

	return Result{
		Fingers:   fingers,
		Reasons:   reasons,
		TotalCost: rhSolution.TotalCost + lhSolution.TotalCost,
		Segments:  mergeSegments(rhSegments, lhSegments),
	}
}

// mergeSegments concatenates the two hands' segment lists and sorts by
// startIndex ascending, breaking ties with RH before LH.
func mergeSegments(rh, lh []pattern.Segment) []MergedSegment {
	merged := make([]MergedSegment, 0, len(rh)+len(lh))
	for _, s := range rh {
		merged = append(merged, MergedSegment{Segment: s, Hand: note.RH})
	}
	for _, s := range lh {
		merged = append(merged, MergedSegment{Segment: s, Hand: note.LH})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].StartIndex != merged[j].StartIndex {
			return merged[i].StartIndex < merged[j].StartIndex
		}
		return merged[i].Hand == note.RH && merged[j].Hand == note.LH
	})
	return merged
}
