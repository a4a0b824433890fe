package fingering

import (
	"piano-fingering/note"
	"piano-fingering/pattern"
)

// patternAt returns the pattern type of the segment covering note index i,
// found by note-index bounds only. The source's measure-vs-index lookup
// (see DESIGN.md changelog) is not reproduced; this always falls back to
// UNKNOWN when no segment covers i.
func patternAt(segments []pattern.Segment, i int) pattern.Type {
	for _, seg := range segments {
		if i >= seg.StartIndex && i <= seg.EndIndex {
			return seg.Type
		}
	}
	return pattern.Unknown
}

// initialCost scores the first finger assignment of a hand-local stream,
// per spec section 4.2 "initialCost".
func initialCost(profile Profile, difficulty Difficulty, hand note.Hand, n note.Note, f int, anchor int) (int, []string) {
	cost := 0
	var reasons []string

	expected := expectedFinger(hand, n.Pitch, anchor)
	if f == expected {
		cost += -25
		reasons = append(reasons, "Matches position")
	} else {
		cost += 12 * abs(f-expected)
	}

	if difficulty == Beginner {
		if f == 4 {
			cost += profile.Finger4Penalty
		}
		if f == 5 {
			cost += profile.Finger5Penalty
		}
		if f == 1 || f == 2 || f == 3 {
			cost += -5
		}
	}

	if n.IsBlackKey() {
		if f == 1 || f == 5 {
			if profile.AllowThumbOnBlack {
				cost += 10
			} else {
				cost += 25
				reasons = append(reasons, "Short finger on black key")
			}
		} else {
			cost += -8
			reasons = append(reasons, "Long finger on black key")
		}
	}

	return cost, reasons
}

// nonThumbCrossing is the dormant "finger crossing" predicate described in
// spec section 9's second Open Question: sign(Δf) opposite to sign(I)
// with neither finger being 1. It is never invoked from transition; the
// documented +80 rule stays dormant, per the spec's guidance that a clean
// re-implementation may keep the predicate unwired rather than delete it.
func nonThumbCrossing(g, f, interval int) bool {
	if g == 1 || f == 1 {
		return false
	}
	deltaF := f - g
	return sign(deltaF) != 0 && sign(deltaF) == -sign(interval)
}

// transitionContext bundles the per-step state transition needs beyond
// the two fingers being compared.
type transitionContext struct {
	profile    Profile
	difficulty Difficulty
	hand       note.Hand
	prev, curr note.Note
	patCtx     pattern.Type
	inScale    bool
	anchor     int
}

// transition scores moving from finger g on the previous note to finger f
// on the current note, per spec section 4.2 rules 1-9, applied additively.
func transition(ctx transitionContext, g, f int) (int, []string) {
	cost := 0
	var reasons []string

	interval := ctx.curr.Pitch - ctx.prev.Pitch
	absInterval := abs(interval)
	deltaF := f - g

	if interval == 0 {
		// Rule 2: repeated pitch.
		if f == g {
			cost += 25
		} else {
			cost += -10
		}
	} else {
		// Rule 1: same finger, different pitch.
		if f == g {
			cost += 40 + 5*absInterval
			reasons = append(reasons, "Same finger leap")
		}

		// Rule 3: natural progression / thumb crossing.
		ascending := interval > 0
		var natural bool
		switch {
		case ctx.hand == note.RH && ascending:
			natural = deltaF > 0
		case ctx.hand == note.RH && !ascending:
			natural = deltaF < 0
		case ctx.hand == note.LH && ascending:
			natural = deltaF < 0
		default: // LH descending
			natural = deltaF > 0
		}
		if natural {
			cost += -20
		} else if (g == 1) != (f == 1) {
			if ctx.inScale || ctx.patCtx == pattern.Scale {
				cost += ctx.profile.ThumbCrossingPenalty / 3
			} else {
				cost += ctx.profile.ThumbCrossingPenalty
			}
			reasons = append(reasons, "Thumb crossing")
		}
	}

	// Rule 4: span / stretch.
	span := naturalSpan(g, f)
	over := absInterval - span
	if over > 0 && over > ctx.profile.MaxComfortableSpan-span {
		cost += 200
		reasons = append(reasons, "Impossible stretch")
	} else {
		cost += over * ctx.profile.StretchPenalty
	}

	// Rule 5: position adherence, outside scale runs.
	if !ctx.inScale {
		expected := expectedFinger(ctx.hand, ctx.curr.Pitch, ctx.anchor)
		if f == expected {
			cost += -15
			reasons = append(reasons, "Matches position")
		} else {
			cost += 8 * abs(f-expected)
		}
	}

	// Rule 6: scale shaping.
	if ctx.inScale || ctx.patCtx == pattern.Scale {
		if f == g {
			cost += 50
		} else if isGoodScaleTransition(ctx.hand, interval, g, f) {
			cost += -25
			reasons = append(reasons, "Scale motion")
		}
		if ctx.profile.PreferSimplePatterns && (g == 1) != (f == 1) {
			cost += 20
		}
	}

	// Rule 7: black-key preference on the current pitch.
	if ctx.curr.IsBlackKey() {
		switch {
		case f == 1:
			if ctx.profile.AllowThumbOnBlack {
				cost += 15
			} else {
				cost += 35
			}
			reasons = append(reasons, "Short finger on black key")
		case f == 5:
			cost += 20
			reasons = append(reasons, "Short finger on black key")
		default:
			cost += -5
			reasons = append(reasons, "Long finger on black key")
		}
	}

	// Rule 8: difficulty shaping.
	switch ctx.difficulty {
	case Beginner:
		if f == 4 {
			cost += ctx.profile.Finger4Penalty
		}
		if f == 5 && !ctx.curr.IsBlackKey() {
			cost += ctx.profile.Finger5Penalty
		}
		if abs(deltaF) <= 1 && absInterval <= 2 {
			cost += -10
			reasons = append(reasons, "Simple transition")
		}
	case Advanced:
		if absInterval > 5 && (g == 1) != (f == 1) {
			cost += -10
			reasons = append(reasons, "Efficient crossing")
		}
	}

	// Rule 9: arpeggio shaping.
	if ctx.patCtx == pattern.Arpeggio && isGoodArpeggioTransition(ctx.hand, interval, g, f) {
		cost += -15
		reasons = append(reasons, "Good arpeggio motion")
	}

	return cost, reasons
}

// isGoodScaleTransition reports whether (g, f) is one of the idiomatic
// scale fingering pairs for the hand and direction of motion (rule 6).
func isGoodScaleTransition(hand note.Hand, interval, g, f int) bool {
	ascending := interval > 0
	rhAscendingOrLhDescending := (hand == note.RH && ascending) || (hand == note.LH && !ascending)

	type pair struct{ g, f int }
	if rhAscendingOrLhDescending {
		pairs := []pair{{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 5}, {4, 1}}
		for _, p := range pairs {
			if p.g == g && p.f == f {
				return true
			}
		}
		return false
	}
	pairs := []pair{{5, 4}, {4, 3}, {3, 2}, {2, 1}, {1, 3}, {1, 2}, {1, 4}}
	for _, p := range pairs {
		if p.g == g && p.f == f {
			return true
		}
	}
	return false
}

// isGoodArpeggioTransition reports whether (g, f) is an idiomatic arpeggio
// fingering move for the hand and direction of motion (rule 9).
func isGoodArpeggioTransition(hand note.Hand, interval, g, f int) bool {
	ascending := interval > 0
	rhAscending := hand == note.RH && ascending
	rhDescending := hand == note.RH && !ascending
	lhAscending := hand == note.LH && ascending
	lhDescending := hand == note.LH && !ascending

	switch {
	case rhAscending || lhDescending:
		return g < f || (g >= 3 && f == 1)
	case rhDescending || lhAscending:
		return g > f || (g == 1 && f >= 3)
	default:
		return false
	}
}
