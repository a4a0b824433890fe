package score

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"piano-fingering/pipeline"
)

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "exercise.yaml")
	content := `title: "Sample Exercise"
difficulty: intermediate
notes:
  - pitch: 60
    duration: 1.0
    staff: 1
    measure: 1
    beat: 0
  - pitch: 62
    duration: 1.0
    staff: 1
    measure: 1
    beat: 1
    hasSlur: true
`
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))

	sc, err := Load(src)
	require.NoError(t, err)
	assert.Equal(t, "Sample Exercise", sc.Title)
	assert.Equal(t, "intermediate", sc.Difficulty)
	assert.Len(t, sc.Notes, 2)
	assert.True(t, sc.Notes[1].HasSlur)

	result := pipeline.Analyze(sc.NoteList(), sc.ResolveDifficulty(""))

	out := filepath.Join(dir, "exercise.fingered.yaml")
	require.NoError(t, Save(out, sc, result))

	reloaded, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, "Sample Exercise", reloaded.Title)
	assert.Len(t, reloaded.Notes, 2)
	assert.NotZero(t, reloaded.Notes[0].Finger)
	assert.GreaterOrEqual(t, reloaded.Notes[0].Finger, 1)
	assert.LessOrEqual(t, reloaded.Notes[0].Finger, 5)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(src, []byte("notes: [this is not valid: ["), 0o644))

	_, err := Load(src)
	assert.Error(t, err)
}
