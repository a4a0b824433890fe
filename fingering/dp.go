package fingering

import (
	"strings"

	"piano-fingering/note"
	"piano-fingering/pattern"
)

const infeasibleCost = 1 << 30
const pruneThreshold = 500

// Solution is the result of planning a single hand-local note stream:
// one finger per note, in the same order, plus the reason tags that
// justified each choice and the solution's total cost.
type Solution struct {
	Fingers   []int
	Reasons   [][]string
	TotalCost int
}

// ReasonStrings renders each note's reason tags as a single joined string,
// the shape spec section 6 calls for at the external interface.
func (s Solution) ReasonStrings() []string {
	out := make([]string, len(s.Reasons))
	for i, r := range s.Reasons {
		out[i] = strings.Join(r, "; ")
	}
	return out
}

// Planner solves the minimum-cost finger assignment DP described in spec
// section 4.2, for one hand at a time. A Planner value is constructed per
// invocation from a difficulty profile; it holds no shared mutable state.
type Planner struct {
	profile    Profile
	difficulty Difficulty
}

// NewPlanner constructs a Planner for the given difficulty.
func NewPlanner(d Difficulty) *Planner {
	return &Planner{profile: ProfileFor(d), difficulty: d}
}

const (
	fullDPLimit = 64
	chunkSize   = 32
	chunkOverlap = 4
)

// Solve computes the minimum-cost finger assignment for a hand-local note
// stream under the segments recognized for it. Streams of length <= 64 run
// a single full DP; longer streams are chunked into overlapping 32-note
// windows (4-note overlap) solved independently, trading strict optimality
// for linear scaling, per spec section 4.2.
func (p *Planner) Solve(hand note.Hand, notes []note.Note, segments []pattern.Segment) Solution {
	n := len(notes)
	if n == 0 {
		return Solution{}
	}

	anchors := computeAnchors(notes, hand)
	scaleMask := computeScaleMask(notes)

	fingers := make([]int, n)
	reasons := make([][]string, n)
	totalCost := 0

	type span struct{ start, end int }
	var spans []span
	if n <= fullDPLimit {
		spans = []span{{0, n}}
	} else {
		s := 0
		for {
			e := s + chunkSize
			if e > n {
				e = n
			}
			spans = append(spans, span{s, e})
			if e == n {
				break
			}
			s += chunkSize - chunkOverlap
		}
	}

	for idx, sp := range spans {
		chunk := solveChunk(p.profile, p.difficulty, hand, notes[sp.start:sp.end], segments,
			anchors[sp.start:sp.end], scaleMask[sp.start:sp.end], sp.start)

		skip := 0
		if idx > 0 {
			skip = chunkOverlap
		}
		if skip > len(chunk.fingers) {
			skip = len(chunk.fingers)
		}
		for li := skip; li < len(chunk.fingers); li++ {
			gi := sp.start + li
			fingers[gi] = chunk.fingers[li]
			reasons[gi] = chunk.reasons[li]
			totalCost += chunk.stepCost[li]
		}
	}

	return Solution{Fingers: fingers, Reasons: reasons, TotalCost: totalCost}
}

type chunkResult struct {
	fingers  []int
	reasons  [][]string
	stepCost []int
}

// solveChunk runs the DP over a single contiguous span of the hand-local
// stream. globalOffset is the span's start index in the full stream, used
// to look up pattern context and anchors/scale-mask that were computed
// against the full stream.
func solveChunk(profile Profile, difficulty Difficulty, hand note.Hand, notes []note.Note,
	segments []pattern.Segment, anchors []int, scaleMask []bool, globalOffset int) chunkResult {

	n := len(notes)
	type cell struct {
		total    int
		parent   int // predecessor finger 1..5, or -1 for "no predecessor / fallback"
		stepCost int
		reasons  []string
	}
	table := make([][5]cell, n)

	for f := 1; f <= 5; f++ {
		c, r := initialCost(profile, difficulty, hand, notes[0], f, anchors[0])
		table[0][f-1] = cell{total: c, parent: -1, stepCost: c, reasons: r}
	}

	for i := 1; i < n; i++ {
		patCtx := patternAt(segments, globalOffset+i)
		inScale := scaleMask[i]
		ctx := transitionContext{
			profile: profile, difficulty: difficulty, hand: hand,
			prev: notes[i-1], curr: notes[i],
			patCtx: patCtx, inScale: inScale, anchor: anchors[i],
		}

		allPruned := true
		for f := 1; f <= 5; f++ {
			best := infeasibleCost
			bestG := 0
			var bestStep int
			var bestReasons []string
			for g := 1; g <= 5; g++ {
				step, rs := transition(ctx, g, f)
				if step > pruneThreshold {
					continue
				}
				total := table[i-1][g-1].total + step
				if total < best {
					best = total
					bestG = g
					bestStep = step
					bestReasons = rs
				}
			}
			if bestG != 0 {
				allPruned = false
				table[i][f-1] = cell{total: best, parent: bestG, stepCost: bestStep, reasons: bestReasons}
			} else {
				table[i][f-1] = cell{total: infeasibleCost, parent: -1}
			}
		}

		if allPruned {
			// Documented-but-unreachable fallback: finger 3, cost 0.
			table[i][2] = cell{total: 0, parent: -1, stepCost: 0}
		}
	}

	fingers := make([]int, n)
	reasons := make([][]string, n)
	stepCost := make([]int, n)

	bestFinal := 1
	for f := 2; f <= 5; f++ {
		if table[n-1][f-1].total < table[n-1][bestFinal-1].total {
			bestFinal = f
		}
	}
	fingers[n-1] = bestFinal

	for i := n - 1; i >= 0; i-- {
		c := table[i][fingers[i]-1]
		reasons[i] = c.reasons
		stepCost[i] = c.stepCost
		if i == 0 {
			break
		}
		if c.parent == -1 {
			fingers[i-1] = 3
		} else {
			fingers[i-1] = c.parent
		}
	}

	return chunkResult{fingers: fingers, reasons: reasons, stepCost: stepCost}
}
