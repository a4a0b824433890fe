package score

import (
	"fmt"
	"path/filepath"
	"sort"

	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	ticksPerQuarter = 480
	ticksPerBar     = ticksPerQuarter * 4
)

type rawMIDINote struct {
	channel   uint8
	key       uint8
	startTick uint32
	durTicks  uint32
}

// LoadMIDI reads a Standard MIDI File and buckets NoteOn/NoteOff pairs per
// channel into staff 1 (channel 0, RH) / staff 2 (channel 1, LH), deriving
// measure/beat from a fixed 4/4, 480-ticks-per-quarter grid. It is a
// convenience decoder, not a notation engine: ties, slurs, and ornaments
// are never inferred from MIDI, so those flags default false (spec
// section 6.2).
func LoadMIDI(path string) (*Score, error) {
	pendingByChannel := map[uint8]map[uint8]uint32{}

	var raw []rawMIDINote
	closeNote := func(channel, key uint8, endTick uint32) {
		starts, ok := pendingByChannel[channel]
		if !ok {
			return
		}
		start, ok := starts[key]
		if !ok {
			return
		}
		delete(starts, key)
		if endTick <= start {
			endTick = start + 1
		}
		raw = append(raw, rawMIDINote{channel: channel, key: key, startTick: start, durTicks: endTick - start})
	}

	err := smf.ReadFile(path, func(te smf.TrackEvent) {
		var channel, key, vel uint8
		if te.Message.GetNoteOn(&channel, &key, &vel) {
			if vel == 0 {
				closeNote(channel, key, te.AbsTicks)
				return
			}
			if pendingByChannel[channel] == nil {
				pendingByChannel[channel] = map[uint8]uint32{}
			}
			pendingByChannel[channel][key] = te.AbsTicks
			return
		}
		if te.Message.GetNoteOff(&channel, &key, &vel) {
			closeNote(channel, key, te.AbsTicks)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("read MIDI %q: %w", path, err)
	}

	sort.SliceStable(raw, func(i, j int) bool {
		if raw[i].startTick != raw[j].startTick {
			return raw[i].startTick < raw[j].startTick
		}
		return raw[i].channel < raw[j].channel
	})

	records := make([]NoteRecord, 0, len(raw))
	for _, rn := range raw {
		staff := 1
		if rn.channel != 0 {
			staff = 2
		}
		measure := int(rn.startTick/ticksPerBar) + 1
		beat := float64(rn.startTick%ticksPerBar) / float64(ticksPerQuarter)
		duration := float64(rn.durTicks) / float64(ticksPerQuarter)
		records = append(records, NoteRecord{
			Pitch:    int(rn.key),
			Duration: duration,
			Staff:    staff,
			Measure:  measure,
			Beat:     beat,
		})
	}

	return &Score{Title: filepath.Base(path), Notes: records}, nil
}
