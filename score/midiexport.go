package score

import (
	"fmt"
	"os"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"piano-fingering/pipeline"
)

type fingerEvent struct {
	tick    uint32
	message []byte
}

type noteEvent struct {
	tick    uint32
	message midi.Message
}

// SaveMIDI writes the original score's pitches back out as a Standard MIDI
// File, with each note's assigned finger attached as a lyric meta-event at
// the note's start tick, the way a notation program annotates fingerings
// above the staff. It is the MIDI counterpart to Save, grounded the same
// way the teacher's midi.GenerateFromTrack builds a track: accumulate
// absolute-tick events per channel, sort, then replay as deltas.
func SaveMIDI(path string, original *Score, result pipeline.Result) error {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ticksPerQuarter)

	var meta smf.Track
	meta.Add(0, smf.MetaTempo(120))
	meta.Close(0)
	s.Add(meta)

	rhEvents := make([]noteEvent, 0, len(original.Notes))
	lhEvents := make([]noteEvent, 0, len(original.Notes))
	rhLyrics := make([]fingerEvent, 0, len(original.Notes))
	lhLyrics := make([]fingerEvent, 0, len(original.Notes))

	idx := 0
	tick := uint32(0)
	for _, rec := range original.Notes {
		durTicks := uint32(rec.Duration * float64(ticksPerQuarter))
		if durTicks == 0 {
			durTicks = ticksPerQuarter / 4
		}
		if !rec.IsRest {
			channel := uint8(0)
			events := &rhEvents
			lyrics := &rhLyrics
			if rec.Staff != 1 {
				channel = 1
				events = &lhEvents
				lyrics = &lhLyrics
			}
			*events = append(*events,
				noteEvent{tick, midi.NoteOn(channel, uint8(rec.Pitch), 80)},
				noteEvent{tick + durTicks, midi.NoteOff(channel, uint8(rec.Pitch))},
			)
			if idx < len(result.Fingers) {
				*lyrics = append(*lyrics, fingerEvent{tick, smf.MetaLyric(fmt.Sprintf("%d", result.Fingers[idx]))})
			}
			idx++
		}
		tick += durTicks
	}

	rhTrack := buildNoteTrack(midi.ProgramChange(0, 0), rhEvents, rhLyrics)
	s.Add(rhTrack)

	if len(lhEvents) > 0 {
		lhTrack := buildNoteTrack(midi.ProgramChange(1, 0), lhEvents, lhLyrics)
		s.Add(lhTrack)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create MIDI %q: %w", path, err)
	}
	defer f.Close()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("write MIDI %q: %w", path, err)
	}
	return nil
}

func buildNoteTrack(program midi.Message, notes []noteEvent, lyrics []fingerEvent) smf.Track {
	var track smf.Track
	track.Add(0, program)

	sort.Slice(notes, func(i, j int) bool { return notes[i].tick < notes[j].tick })
	sort.Slice(lyrics, func(i, j int) bool { return lyrics[i].tick < lyrics[j].tick })

	type tagged struct {
		tick    uint32
		message []byte
		isMIDI  bool
		midiMsg midi.Message
	}
	var all []tagged
	for _, e := range notes {
		all = append(all, tagged{tick: e.tick, isMIDI: true, midiMsg: e.message})
	}
	for _, e := range lyrics {
		all = append(all, tagged{tick: e.tick, message: e.message})
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].tick < all[j].tick })

	prev := uint32(0)
	for _, e := range all {
		delta := e.tick - prev
		if e.isMIDI {
			track.Add(delta, e.midiMsg)
		} else {
			track.Add(delta, e.message)
		}
		prev = e.tick
	}
	track.Close(0)
	return track
}
