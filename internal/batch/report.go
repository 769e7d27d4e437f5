package batch

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kelsic/dialogia/internal/export"
)

// ReportFileName is the cycle report file inside the cycle directory.
const ReportFileName = "cycle_report.json"

// AcceptedDirName is the subdirectory holding accepted pair exports.
const AcceptedDirName = "accepted"

// writeArtifacts lays out one cycle directory:
//
//	<artifactDir>/<cycleID>/cycle_report.json
//	<artifactDir>/<cycleID>/accepted/run_<id>.json
func writeArtifacts(artifactDir string, report *Report, pairs []*export.Pair) error {
	cycleDir := filepath.Join(artifactDir, report.CycleID)
	if err := os.MkdirAll(cycleDir, 0o755); err != nil {
		return fmt.Errorf("create cycle dir: %w", err)
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(filepath.Join(cycleDir, ReportFileName), data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	w, err := export.NewWriter(filepath.Join(cycleDir, AcceptedDirName))
	if err != nil {
		return err
	}
	for _, p := range pairs {
		if p == nil {
			continue
		}
		if _, err := w.Write(*p); err != nil {
			return err
		}
	}
	return nil
}

// LoadReport reads a cycle report back from a cycle directory.
func LoadReport(cycleDir string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(cycleDir, ReportFileName))
	if err != nil {
		return nil, fmt.Errorf("read cycle report: %w", err)
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse cycle report: %w", err)
	}
	return &report, nil
}
