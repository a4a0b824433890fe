// Package score is the external-collaborator boundary around the core: it
// loads an already-itemized note list (standing in for "a score already
// decoded into a note list", never real notation decoding) from a YAML
// file or a Standard MIDI File, and writes fingering results back out.
package score

import (
	"piano-fingering/fingering"
	"piano-fingering/note"
)

// NoteRecord is the on-disk shape of a single note, tagged for
// gopkg.in/yaml.v3 the way the teacher's parser.TrackInfo tags its fields.
type NoteRecord struct {
	Pitch         int     `yaml:"pitch"`
	Duration      float64 `yaml:"duration"`
	Voice         int     `yaml:"voice,omitempty"`
	Staff         int     `yaml:"staff"`
	Measure       int     `yaml:"measure,omitempty"`
	Beat          float64 `yaml:"beat,omitempty"`
	IsChord       bool    `yaml:"isChord,omitempty"`
	IsGrace       bool    `yaml:"isGrace,omitempty"`
	IsRest        bool    `yaml:"isRest,omitempty"`
	HasSlur       bool    `yaml:"hasSlur,omitempty"`
	HasTrill      bool    `yaml:"hasTrill,omitempty"`
	HasMordent    bool    `yaml:"hasMordent,omitempty"`
	HasTurn       bool    `yaml:"hasTurn,omitempty"`
	HasAccent     bool    `yaml:"hasAccent,omitempty"`
	HasStaccato   bool    `yaml:"hasStaccato,omitempty"`
	TieStart      bool    `yaml:"tieStart,omitempty"`
	TieEnd        bool    `yaml:"tieEnd,omitempty"`
	SlurStart     bool    `yaml:"slurStart,omitempty"`
	SlurEnd       bool    `yaml:"slurEnd,omitempty"`

	// Finger and Reasons are written on export. Load reads them back if
	// present, but NoteList does not pass them into the core.
	Finger  int      `yaml:"finger,omitempty"`
	Reasons []string `yaml:"reasons,omitempty"`
}

// Score is the on-disk score description: metadata plus the ordered note
// list the core pipeline consumes.
type Score struct {
	Title      string       `yaml:"title"`
	Difficulty string       `yaml:"difficulty,omitempty"`
	Notes      []NoteRecord `yaml:"notes"`
}

// staffToHand maps staff 1 to RH and staff 2 (or anything else) to LH, per
// spec section 3.
func staffToHand(staff int) note.Hand {
	if staff == 1 {
		return note.RH
	}
	return note.LH
}

func handToStaff(h note.Hand) int {
	if h == note.RH {
		return 1
	}
	return 2
}

// NoteList converts the on-disk records to the core's Note type, dropping
// rests (spec section 3: "Rests are filtered before entering the core").
func (sc *Score) NoteList() []note.Note {
	notes := make([]note.Note, 0, len(sc.Notes))
	for _, r := range sc.Notes {
		if r.IsRest {
			continue
		}
		notes = append(notes, note.Note{
			Pitch:         r.Pitch,
			Duration:      r.Duration,
			Voice:         r.Voice,
			Staff:         r.Staff,
			Hand:          staffToHand(r.Staff),
			MeasureNumber: r.Measure,
			Beat:          r.Beat,
			IsChord:       r.IsChord,
			IsGrace:       r.IsGrace,
			IsRest:        r.IsRest,
			HasSlur:       r.HasSlur,
			HasTrill:      r.HasTrill,
			HasMordent:    r.HasMordent,
			HasTurn:       r.HasTurn,
			HasAccent:     r.HasAccent,
			HasStaccato:   r.HasStaccato,
			TieStart:      r.TieStart,
			TieEnd:        r.TieEnd,
			SlurStart:     r.SlurStart,
			SlurEnd:       r.SlurEnd,
		})
	}
	return notes
}

// ResolveDifficulty returns the score's own difficulty, or the override if
// non-empty, defaulting to intermediate when neither is set.
func (sc *Score) ResolveDifficulty(override string) fingering.Difficulty {
	if override != "" {
		return fingering.ParseDifficulty(override)
	}
	if sc.Difficulty != "" {
		return fingering.ParseDifficulty(sc.Difficulty)
	}
	return fingering.Intermediate
}
