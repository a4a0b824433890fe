package score

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"piano-fingering/pipeline"
)

// Load reads and parses a YAML score description.
func Load(path string) (*Score, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read score %q: %w", path, err)
	}

	var sc Score
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse score %q: %w", path, err)
	}
	return &sc, nil
}

// Save writes the original score back out with finger labels and reason
// tags attached to each non-rest note, standing in for "back-writing
// finger labels into a serialized score" (an external collaborator per
// spec section 1, never attempted inside the core itself).
func Save(path string, original *Score, result pipeline.Result) error {
	annotated := *original
	annotated.Notes = make([]NoteRecord, len(original.Notes))
	copy(annotated.Notes, original.Notes)

	idx := 0
	for i := range annotated.Notes {
		if annotated.Notes[i].IsRest {
			continue
		}
		if idx >= len(result.Fingers) {
			break
		}
		annotated.Notes[i].Finger = result.Fingers[idx]
		annotated.Notes[i].Reasons = result.Reasons[idx]
		idx++
	}

	data, err := yaml.Marshal(&annotated)
	if err != nil {
		return fmt.Errorf("encode annotated score: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write annotated score %q: %w", path, err)
	}
	return nil
}
