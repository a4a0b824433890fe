// Package fingering implements the Fingering Planner: a per-hand dynamic
// program over (note-index, finger) states whose transition costs are
// parameterized by the recognized pattern context, the active hand
// position anchor, and a calibrated difficulty profile.
package fingering

// Difficulty selects one of the three calibrated cost profiles.
type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
)

// ParseDifficulty maps a configuration string to a Difficulty, defaulting
// to Intermediate for anything unrecognized.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "beginner":
		return Beginner
	case "advanced":
		return Advanced
	default:
		return Intermediate
	}
}

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Advanced:
		return "advanced"
	default:
		return "intermediate"
	}
}

// Profile is the exact configuration surface spec section 4.2 describes:
// no other knobs are exposed. All values are additive cost constants;
// units are abstract.
type Profile struct {
	ThumbCrossingPenalty  int
	PositionChangePenalty int
	Finger4Penalty        int
	Finger5Penalty        int
	StretchPenalty        int // per extra semitone beyond the comfortable span
	MaxComfortableSpan    int // semitones
	PreferSimplePatterns  bool
	AllowThumbOnBlack     bool
}

var profiles = map[Difficulty]Profile{
	Beginner: {
		ThumbCrossingPenalty:  80,
		PositionChangePenalty: 60,
		Finger4Penalty:        15,
		Finger5Penalty:        10,
		StretchPenalty:        25,
		MaxComfortableSpan:    5,
		PreferSimplePatterns:  true,
		AllowThumbOnBlack:     false,
	},
	Intermediate: {
		ThumbCrossingPenalty:  30,
		PositionChangePenalty: 30,
		Finger4Penalty:        5,
		Finger5Penalty:        5,
		StretchPenalty:        12,
		MaxComfortableSpan:    7,
		PreferSimplePatterns:  false,
		AllowThumbOnBlack:     false,
	},
	Advanced: {
		ThumbCrossingPenalty:  10,
		PositionChangePenalty: 15,
		Finger4Penalty:        0,
		Finger5Penalty:        0,
		StretchPenalty:        5,
		MaxComfortableSpan:    9,
		PreferSimplePatterns:  false,
		AllowThumbOnBlack:     true,
	},
}

// ProfileFor returns the calibrated profile for a difficulty level.
func ProfileFor(d Difficulty) Profile {
	return profiles[d]
}

// naturalSpans holds the comfortable semitone span between every pair of
// distinct fingers; lookup is symmetric.
var naturalSpans = map[[2]int]int{
	{1, 2}: 2,
	{2, 3}: 2,
	{3, 4}: 1,
	{4, 5}: 2,
	{1, 3}: 4,
	{2, 4}: 3,
	{3, 5}: 3,
	{1, 4}: 5,
	{2, 5}: 5,
	{1, 5}: 8,
}

// naturalSpan looks up the comfortable span between two fingers,
// regardless of order. Same finger has span 0.
func naturalSpan(f1, f2 int) int {
	if f1 == f2 {
		return 0
	}
	key := [2]int{f1, f2}
	if f1 > f2 {
		key = [2]int{f2, f1}
	}
	return naturalSpans[key]
}
