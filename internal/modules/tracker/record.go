package tracker

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const trackRecordFile = "track_record.json"

// maxTableRows caps the rendered track-record table to the most recent
// entries; the JSON file itself keeps the full history.
const maxTableRows = 10

// RecordEntry is one row of the rolling track record, one per day.
type RecordEntry struct {
	Date    string  `json:"date"`
	Company string  `json:"company"`
	Symbol  string  `json:"symbol"`
	Price   float64 `json:"price"`
	Target  float64 `json:"target"`
	Status  string  `json:"status"`
}

// LoadTrackRecord reads the record file; a missing file is an empty
// record, not an error.
func LoadTrackRecord(dataDir string) ([]RecordEntry, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, trackRecordFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read track record: %w", err)
	}

	var entries []RecordEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse track record: %w", err)
	}
	return entries, nil
}

// AppendTrackRecord adds a row for the snapshot's top pick dated now,
// skipping the append when an entry for the same date already exists,
// and writes the file back. The updated record is returned either way.
func AppendTrackRecord(dataDir string, snap *Snapshot, now time.Time) ([]RecordEntry, error) {
	entries, err := LoadTrackRecord(dataDir)
	if err != nil {
		return nil, err
	}
	if snap == nil || snap.TopCompany == nil {
		return entries, nil
	}

	entry := RecordEntry{
		Date:    now.Format("2006-01-02"),
		Company: snap.TopCompany.Name,
		Symbol:  snap.TopCompany.Symbol,
		Price:   snap.TopCompany.CurrentPrice,
		Target:  snap.TopCompany.FiftyTwoWeekHigh,
		Status:  "Active",
	}

	duplicate := false
	for _, e := range entries {
		if e.Date == entry.Date {
			duplicate = true
			break
		}
	}
	if !duplicate {
		entries = append(entries, entry)
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal track record: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, trackRecordFile), data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write track record: %w", err)
	}

	return entries, nil
}

// TrackRecordTable renders the most recent entries as a markdown table.
func TrackRecordTable(entries []RecordEntry) string {
	if len(entries) == 0 {
		return "No track record yet. Run analysis first!"
	}

	var b strings.Builder
	b.WriteString("| Date | Pick | Entry | Target | Status |\n")
	b.WriteString("|------|------|-------|--------|--------|\n")

	start := 0
	if len(entries) > maxTableRows {
		start = len(entries) - maxTableRows
	}
	for _, e := range entries[start:] {
		fmt.Fprintf(&b, "| %s | %s | ₹%.0f | ₹%.0f | %s |\n", e.Date, e.Symbol, e.Price, e.Target, e.Status)
	}

	return b.String()
}
