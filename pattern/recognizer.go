package pattern

import "piano-fingering/note"

// Recognizer segments a hand-local note stream into PatternSegments. It
// holds no mutable state between calls; a value is safe to reuse or share,
// and a zero Recognizer is ready to use.
type Recognizer struct{}

// NewRecognizer constructs a Recognizer. There are no parameters to
// configure: window sizing and classification thresholds are fixed design
// constants (spec section 4.1), not runtime knobs.
func NewRecognizer() *Recognizer {
	return &Recognizer{}
}

// Recognize converts a hand-local ordered note stream into a sorted list of
// non-overlapping segments whose union covers the stream. It never fails;
// an empty stream yields an empty segment list.
func (r *Recognizer) Recognize(stream []note.Note) []Segment {
	n := len(stream)
	if n == 0 {
		return nil
	}

	var raw []Segment
	i := 0
	for i < n {
		remaining := n - i
		var windowEnd int
		if remaining < 2 {
			windowEnd = n
		} else {
			w := adaptiveWindowSize(stream, i)
			windowEnd = i + w
			if windowEnd > n {
				windowEnd = n
			}
			if windowEnd-i < 2 {
				windowEnd = n
			}
		}

		window := stream[i:windowEnd]
		t, conf, feat := classify(window)

		w := windowEnd - i
		advance := w / 2
		if advance < 1 {
			advance = 1
		}
		chunkEnd := i + advance
		if chunkEnd >= n {
			chunkEnd = n
		}

		raw = append(raw, Segment{
			StartIndex: i,
			EndIndex:   chunkEnd - 1,
			Type:       t,
			Confidence: conf,
			Features:   feat,
		})
		i = chunkEnd
	}

	return postProcess(raw)
}

// adaptiveWindowSize computes the window width for a cursor position from
// the mean duration of up to the next 16 notes, per spec section 4.1.
func adaptiveWindowSize(stream []note.Note, i int) int {
	end := i + 16
	if end > len(stream) {
		end = len(stream)
	}
	lookahead := stream[i:end]

	sum := 0.0
	for _, n := range lookahead {
		sum += n.Duration
	}
	d := 0.0
	if len(lookahead) > 0 {
		d = sum / float64(len(lookahead))
	}

	switch {
	case d < 0.25:
		return 16
	case d < 0.5:
		return 12
	case d > 2:
		return 4
	default:
		return 8
	}
}

// postProcess walks the raw, already-tiling window classifications left to
// right and merges a running segment with the next one when they share a
// pattern type, or when either side's length is under 3 notes — a window
// that short carries no real classifying evidence of its own (see e.g.
// classifyScale's stepwise-ratio gate or classifyRepeated's run-length
// gate, both of which need several notes to fire and fall to UNKNOWN
// otherwise). Confidence of a merge is the max of the two. Which label
// wins depends on which side was too short to stand on its own: a short
// trailing window is absorbed into the already-established running
// segment's label, while a short running segment instead adopts the next,
// better-evidenced segment's label.
func postProcess(raw []Segment) []Segment {
	if len(raw) == 0 {
		return nil
	}
	merged := []Segment{raw[0]}
	for _, seg := range raw[1:] {
		last := &merged[len(merged)-1]
		switch {
		case last.Type == seg.Type:
			last.EndIndex = seg.EndIndex
			if seg.Confidence > last.Confidence {
				last.Confidence = seg.Confidence
			}
		case seg.Len() < 3:
			last.EndIndex = seg.EndIndex
			if seg.Confidence > last.Confidence {
				last.Confidence = seg.Confidence
			}
		case last.Len() < 3:
			last.EndIndex = seg.EndIndex
			last.Type = seg.Type
			last.Features = seg.Features
			if seg.Confidence > last.Confidence {
				last.Confidence = seg.Confidence
			}
		default:
			merged = append(merged, seg)
		}
	}
	return merged
}
