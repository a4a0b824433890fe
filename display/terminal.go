package display

import (
	"fmt"
	"strings"

	"piano-fingering/note"
	"piano-fingering/pipeline"
)

// ShowAnalysis prints a boxed report of a fingering analysis: header,
// recognized segments, and a per-note finger table, in the style the
// teacher uses for its track header box.
func ShowAnalysis(title string, notes []note.Note, difficulty string, result pipeline.Result) {
	info := fmt.Sprintf("Difficulty: %s | Notes: %d | Total cost: %d", difficulty, len(notes), result.TotalCost)

	maxLen := len(title)
	if len(info) > maxLen {
		maxLen = len(info)
	}

	fmt.Printf("┌─ %s %s┐\n", title, strings.Repeat("─", maxLen-len(title)+1))
	fmt.Printf("│ %s%s │\n", info, strings.Repeat(" ", maxLen-len(info)))
	fmt.Printf("└%s┘\n\n", strings.Repeat("─", maxLen+2))

	fmt.Printf("Segments (%d):\n", len(result.Segments))
	for _, seg := range result.Segments {
		fmt.Printf("  [%3d-%3d] %-6s %-12s confidence=%.2f\n",
			seg.StartIndex, seg.EndIndex, seg.Hand, seg.Type, seg.Confidence)
	}
	fmt.Println()

	fmt.Println("Fingering:")
	idx := 0
	for i, n := range notes {
		if n.IsRest {
			continue
		}
		if idx >= len(result.Fingers) {
			break
		}
		reason := strings.Join(result.Reasons[idx], "; ")
		fmt.Printf("  %3d. %-4s%-2d  finger %d   %s\n", i, note.StepName(n.PitchClass()), n.Octave(), result.Fingers[idx], reason)
		idx++
	}
}
