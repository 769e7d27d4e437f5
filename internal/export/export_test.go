package export

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelsic/dialogia/internal/dialogue"
	"github.com/kelsic/dialogia/internal/scorer"
)

func samplePair() Pair {
	return Pair{
		Transcript: &dialogue.Transcript{
			RunID:       "abc123",
			ScenarioID:  "recursion-wall",
			PersonaIDs:  []string{"indira"},
			StudentName: "Casey",
			Exchanges: []dialogue.Exchange{
				{Role: dialogue.RolePersona, SpeakerID: "indira", Diegetic: "What have you tried?"},
			},
		},
		Verdict: &scorer.Verdict{
			RunID:     "abc123",
			Accept:    true,
			Rationale: "accepted",
			Dimensions: []scorer.DimensionScore{
				{Name: scorer.DimTraumaBoundaryRespect, Score: 1, Rationale: "clean"},
			},
		},
	}
}

func TestWriteAndReadPair(t *testing.T) {
	w, err := NewWriter(filepath.Join(t.TempDir(), "accepted"))
	require.NoError(t, err)

	path, err := w.Write(samplePair())
	require.NoError(t, err)
	assert.Equal(t, "run_abc123.json", filepath.Base(path))

	got, err := ReadPair(path)
	require.NoError(t, err)
	assert.Equal(t, "abc123", got.Transcript.RunID)
	assert.True(t, got.Verdict.Accept)
	assert.Len(t, got.Transcript.Exchanges, 1)
	assert.Equal(t, scorer.DimTraumaBoundaryRespect, got.Verdict.Dimensions[0].Name)
}

func TestWriteRejectsPartial(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	p := samplePair()
	p.Transcript.Partial = true
	_, err = w.Write(p)
	assert.Error(t, err)
}

func TestWriteRejectsNilTranscript(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	require.NoError(t, err)

	_, err = w.Write(Pair{})
	assert.Error(t, err)
}
