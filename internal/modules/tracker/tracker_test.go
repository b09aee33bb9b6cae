package tracker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/pli-alpha/internal/config"
	"github.com/aristath/pli-alpha/internal/domain"
)

func testAnalysis(ts time.Time) domain.Analysis {
	top := domain.Company{
		Symbol:           "SAHASRA",
		Name:             "Sahasra Electronic Solutions",
		CurrentPrice:     310,
		FiftyTwoWeekLow:  250,
		FiftyTwoWeekHigh: 400,
		AsymmetryScore:   7,
		AsymmetryReasons: []string{"Near 52-week low (₹250.00)"},
	}
	return domain.Analysis{
		RunID:     "test-run",
		Timestamp: ts,
		Variant:   domain.VariantLive,
		Companies: []domain.Company{top},
		Top:       &top,
	}
}

func TestSaveAndLoadSnapshot(t *testing.T) {
	dir := t.TempDir()
	ts := time.Date(2026, 2, 23, 9, 30, 0, 0, time.UTC)

	path, err := SaveSnapshot(dir, testAnalysis(ts))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "analysis_20260223_0930.json"), path)

	snap, err := LoadLatestSnapshot(dir)
	require.NoError(t, err)
	require.NotNil(t, snap.TopCompany)

	assert.Equal(t, "test-run", snap.RunID)
	assert.Equal(t, "SAHASRA", snap.TopCompany.Symbol)
	assert.Equal(t, 7, snap.TopCompany.AsymmetryScore)
	require.Len(t, snap.AllCompanies, 1)
	assert.Equal(t, 310.0, snap.AllCompanies[0].Price)
}

func TestLoadLatestSnapshotPicksNewest(t *testing.T) {
	dir := t.TempDir()
	base := time.Date(2026, 2, 23, 9, 0, 0, 0, time.UTC)

	older, err := SaveSnapshot(dir, testAnalysis(base))
	require.NoError(t, err)
	newer, err := SaveSnapshot(dir, testAnalysis(base.Add(time.Hour)))
	require.NoError(t, err)

	// Make modification order explicit rather than trusting write timing.
	require.NoError(t, os.Chtimes(older, base, base))
	require.NoError(t, os.Chtimes(newer, base.Add(time.Hour), base.Add(time.Hour)))

	snap, err := LoadLatestSnapshot(dir)
	require.NoError(t, err)
	assert.Equal(t, base.Add(time.Hour).Format(time.RFC3339), snap.Timestamp)
}

func TestLoadLatestSnapshotEmptyDir(t *testing.T) {
	_, err := LoadLatestSnapshot(t.TempDir())
	assert.True(t, os.IsNotExist(err))
}

func TestAppendTrackRecordDeduplicatesByDate(t *testing.T) {
	dir := t.TempDir()
	snap := NewSnapshot(testAnalysis(time.Now()))
	now := time.Date(2026, 2, 23, 10, 0, 0, 0, time.UTC)

	entries, err := AppendTrackRecord(dir, &snap, now)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2026-02-23", entries[0].Date)
	assert.Equal(t, "Active", entries[0].Status)

	entries, err = AppendTrackRecord(dir, &snap, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "same-day runs must not add a second row")

	entries, err = AppendTrackRecord(dir, &snap, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestTrackRecordTable(t *testing.T) {
	assert.Equal(t, "No track record yet. Run analysis first!", TrackRecordTable(nil))

	var entries []RecordEntry
	for i := 0; i < 12; i++ {
		entries = append(entries, RecordEntry{
			Date: time.Date(2026, 2, 1+i, 0, 0, 0, 0, time.UTC).Format("2006-01-02"),
			Symbol: "SAHASRA", Price: 310, Target: 400, Status: "Active",
		})
	}

	table := TrackRecordTable(entries)
	lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
	assert.Len(t, lines, 12, "header, separator and the last 10 entries")
	assert.Contains(t, table, "| 2026-02-12 | SAHASRA | ₹310 | ₹400 | Active |")
	assert.NotContains(t, table, "2026-02-02")
}

func TestUpdaterRewritesAndStaysIdempotent(t *testing.T) {
	tmp := t.TempDir()
	cfg := &config.Config{
		ReadmePath: filepath.Join(tmp, "README.md"),
		ReportsDir: filepath.Join(tmp, "reports"),
		DataDir:    filepath.Join(tmp, "data"),
	}

	readme := `# Project

Last Updated: never

## 📈 Track Record

placeholder

## 🎯 Current Top Pick (stale)

**Old Pick (OLD)**
- stale line

## Disclaimer

Keep this section.
`
	require.NoError(t, os.WriteFile(cfg.ReadmePath, []byte(readme), 0o644))

	_, err := SaveSnapshot(cfg.ReportsDir, testAnalysis(time.Date(2026, 2, 23, 9, 30, 0, 0, time.UTC)))
	require.NoError(t, err)

	updater := NewUpdater(cfg, zerolog.Nop())
	now := time.Date(2026, 2, 23, 11, 45, 0, 0, time.UTC)
	require.NoError(t, updater.Update(now))

	content, err := os.ReadFile(cfg.ReadmePath)
	require.NoError(t, err)
	text := string(content)

	assert.Contains(t, text, "Last Updated: February 23, 2026 at 11:45 IST")
	assert.Contains(t, text, "| 2026-02-23 | SAHASRA | ₹310 | ₹400 | Active |")
	assert.Contains(t, text, "## 🎯 Current Top Pick (February 23, 2026)")
	assert.Contains(t, text, "**Sahasra Electronic Solutions (SAHASRA)**")
	// Buy trigger is derived from the 52-week low: 250 × 1.02
	assert.Contains(t, text, "- Buy Trigger: ₹255.00")
	assert.Contains(t, text, "Keep this section.")
	assert.NotContains(t, text, "Old Pick")

	require.NoError(t, updater.Update(now))
	again, err := os.ReadFile(cfg.ReadmePath)
	require.NoError(t, err)
	assert.Equal(t, text, string(again), "a second update must not change the document")
}
