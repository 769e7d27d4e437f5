// Package export writes accepted transcript and verdict pairs to disk
// as JSON artifacts for downstream consumers.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelsic/dialogia/internal/dialogue"
	"github.com/kelsic/dialogia/internal/scorer"
)

// Pair couples a transcript with its verdict. Only accepted pairs are
// worth exporting, but the writer does not enforce that; the caller
// decides what to keep.
type Pair struct {
	Transcript *dialogue.Transcript `json:"transcript"`
	Verdict    *scorer.Verdict      `json:"verdict"`
}

// Writer writes pairs into a single directory, one file per run.
type Writer struct {
	dir string
}

// NewWriter creates the directory if needed and returns a writer for it.
func NewWriter(dir string) (*Writer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// Dir returns the directory this writer writes into.
func (w *Writer) Dir() string { return w.dir }

// Write serializes one pair to <dir>/run_<id>.json and returns the path.
func (w *Writer) Write(p Pair) (string, error) {
	if p.Transcript == nil {
		return "", fmt.Errorf("export: nil transcript")
	}
	if p.Transcript.Partial {
		return "", fmt.Errorf("export: run %s is partial", p.Transcript.RunID)
	}

	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal pair: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("run_%s.json", p.Transcript.RunID))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write pair: %w", err)
	}
	return path, nil
}

// ReadPair loads a previously written pair.
func ReadPair(path string) (*Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pair: %w", err)
	}
	var p Pair
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse pair %s: %w", path, err)
	}
	return &p, nil
}
