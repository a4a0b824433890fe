// Package note defines the pitched-note record the fingering core reads.
//
// Notes are immutable as far as the core is concerned: neither the pattern
// recognizer nor the fingering planner ever mutates a Note, and both
// produce fresh output per call.
package note

// Hand identifies which hand a note belongs to, derived upstream from the
// note's staff number (staff 1 = upper/RH, staff 2 = lower/LH).
type Hand int

const (
	RH Hand = iota
	LH
)

func (h Hand) String() string {
	if h == LH {
		return "LH"
	}
	return "RH"
}

// blackPitchClasses are the pitch classes (pitch mod 12) of the black keys.
var blackPitchClasses = map[int]bool{1: true, 3: true, 6: true, 8: true, 10: true}

// Note is a single pitched event in a hand-local stream. Rests are filtered
// out before entering the core, so every Note here sounds.
type Note struct {
	Pitch         int     // MIDI number, 0-127; middle C = 60
	Duration      float64 // abstract beat units, > 0
	Voice         int
	Staff         int
	Hand          Hand
	MeasureNumber int
	Beat          float64 // rational position within the measure

	IsChord   bool
	IsGrace   bool
	IsRest    bool
	HasSlur   bool
	HasTrill  bool
	HasMordent bool
	HasTurn   bool
	HasAccent bool
	HasStaccato bool

	TieStart bool
	TieEnd   bool
	SlurStart bool
	SlurEnd   bool
}

// IsBlackKey reports whether the note's pitch class is a black key
// (pitch mod 12 in {1,3,6,8,10}).
func (n Note) IsBlackKey() bool {
	return blackPitchClasses[((n.Pitch % 12) + 12) % 12]
}

// PitchClass returns pitch mod 12, in [0, 11].
func (n Note) PitchClass() int {
	return ((n.Pitch % 12) + 12) % 12
}

// Octave returns the note's octave, with middle C (60) in octave 4.
func (n Note) Octave() int {
	return n.Pitch/12 - 1
}

// HasOrnament reports whether any ornament flag (trill, mordent, or turn) is set.
func (n Note) HasOrnament() bool {
	return n.HasTrill || n.HasMordent || n.HasTurn
}

// stepNames are the natural-letter names used by StepName, sharps preferred.
var stepNames = []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// StepName returns the conventional sharp spelling of the note's pitch class.
func StepName(pitchClass int) string {
	return stepNames[((pitchClass%12)+12)%12]
}

// Split partitions an ordered note stream into RH and LH hand-local streams,
// preserving relative order within each hand and dropping rests.
func Split(notes []Note) (rh, lh []Note) {
	for _, n := range notes {
		if n.IsRest {
			continue
		}
		if n.Hand == LH {
			lh = append(lh, n)
		} else {
			rh = append(rh, n)
		}
	}
	return rh, lh
}
