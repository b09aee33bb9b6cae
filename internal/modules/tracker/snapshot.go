// Package tracker persists run output: JSON snapshots per analysis, a
// rolling track-record file, and the README regions derived from them.
package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aristath/pli-alpha/internal/domain"
)

// snapshotGlob matches the per-run analysis files inside the reports dir.
const snapshotGlob = "analysis_*.json"

// TopCompany is the snapshot's detailed view of the winning pick.
type TopCompany struct {
	Name             string   `json:"name"`
	Symbol           string   `json:"symbol"`
	CurrentPrice     float64  `json:"current_price"`
	FiftyTwoWeekLow  float64  `json:"fifty_two_week_low"`
	FiftyTwoWeekHigh float64  `json:"fifty_two_week_high"`
	AsymmetryScore   int      `json:"asymmetry_score"`
	AsymmetryReasons []string `json:"asymmetry_reasons"`
	RiskFlags        []string `json:"risk_flags"`
}

// CompanyRow is the flattened per-company line kept for every run.
type CompanyRow struct {
	Symbol string  `json:"symbol"`
	Name   string  `json:"name"`
	Price  float64 `json:"price"`
	Score  int     `json:"score"`
}

// Snapshot is the JSON document written once at the end of a run and
// never read back within the same run.
type Snapshot struct {
	RunID        string       `json:"run_id,omitempty"`
	Timestamp    string       `json:"timestamp"`
	Variant      string       `json:"variant,omitempty"`
	TopCompany   *TopCompany  `json:"top_company,omitempty"`
	AllCompanies []CompanyRow `json:"all_companies"`
}

// NewSnapshot flattens an analysis into its persisted form.
func NewSnapshot(a domain.Analysis) Snapshot {
	snap := Snapshot{
		RunID:     a.RunID,
		Timestamp: a.Timestamp.Format(time.RFC3339),
		Variant:   string(a.Variant),
	}

	if a.Top != nil {
		snap.TopCompany = &TopCompany{
			Name:             a.Top.Name,
			Symbol:           a.Top.Symbol,
			CurrentPrice:     a.Top.CurrentPrice,
			FiftyTwoWeekLow:  a.Top.FiftyTwoWeekLow,
			FiftyTwoWeekHigh: a.Top.FiftyTwoWeekHigh,
			AsymmetryScore:   a.Top.AsymmetryScore,
			AsymmetryReasons: a.Top.AsymmetryReasons,
			RiskFlags:        a.Top.RiskFlags,
		}
	}

	for _, c := range a.Companies {
		snap.AllCompanies = append(snap.AllCompanies, CompanyRow{
			Symbol: c.Symbol,
			Name:   c.Name,
			Price:  c.CurrentPrice,
			Score:  c.AsymmetryScore,
		})
	}

	return snap
}

// SaveSnapshot writes the snapshot into the reports directory, named by
// the run's wall-clock minute, and returns the written path.
func SaveSnapshot(reportsDir string, a domain.Analysis) (string, error) {
	if err := os.MkdirAll(reportsDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create reports dir: %w", err)
	}

	snap := NewSnapshot(a)
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	path := filepath.Join(reportsDir, fmt.Sprintf("analysis_%s.json", a.Timestamp.Format("20060102_1504")))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}

	return path, nil
}

// LoadLatestSnapshot finds the most recently modified snapshot in the
// reports directory. Returns os.ErrNotExist when no snapshot exists.
func LoadLatestSnapshot(reportsDir string) (*Snapshot, error) {
	matches, err := filepath.Glob(filepath.Join(reportsDir, snapshotGlob))
	if err != nil {
		return nil, fmt.Errorf("failed to scan reports dir: %w", err)
	}
	if len(matches) == 0 {
		return nil, os.ErrNotExist
	}

	var latest string
	var latestMod time.Time
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().After(latestMod) {
			latest = path
			latestMod = info.ModTime()
		}
	}
	if latest == "" {
		return nil, os.ErrNotExist
	}

	data, err := os.ReadFile(latest)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", latest, err)
	}

	return &snap, nil
}
