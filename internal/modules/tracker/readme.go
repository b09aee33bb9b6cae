package tracker

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/pli-alpha/internal/config"
)

// Rewritable README regions. Each region either ends at the next H2
// heading or at the end of the document, so rewrites are idempotent.
var (
	lastUpdatedRe = regexp.MustCompile(`Last Updated: .*`)
	trackRecordRe = regexp.MustCompile(`(?s)(## 📈 Track Record\n\n)(.*?)(\n## |\z)`)
	topPickRe     = regexp.MustCompile(`(?s)(## 🎯 Current Top Pick.*?)(\n## |\z)`)
)

// Updater rewrites the README's generated regions from the latest
// snapshot and the rolling track record.
type Updater struct {
	readmePath string
	reportsDir string
	dataDir    string
	log        zerolog.Logger
}

// NewUpdater creates a README updater.
func NewUpdater(cfg *config.Config, log zerolog.Logger) *Updater {
	return &Updater{
		readmePath: cfg.ReadmePath,
		reportsDir: cfg.ReportsDir,
		dataDir:    cfg.DataDir,
		log:        log.With().Str("component", "tracker").Logger(),
	}
}

// Update loads the most recent snapshot, appends it to the track record
// and rewrites the README regions. A missing snapshot still refreshes
// the timestamp and track-record table.
func (u *Updater) Update(now time.Time) error {
	snap, err := LoadLatestSnapshot(u.reportsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		u.log.Warn().Str("dir", u.reportsDir).Msg("No analysis snapshots found")
		snap = nil
	}

	entries, err := AppendTrackRecord(u.dataDir, snap, now)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(u.readmePath)
	if err != nil {
		return fmt.Errorf("failed to read README: %w", err)
	}
	content := string(raw)

	content = lastUpdatedRe.ReplaceAllString(content,
		"Last Updated: "+now.Format("January 02, 2006 at 15:04 IST"))
	content = replaceTrackRecord(content, TrackRecordTable(entries))
	if snap != nil && snap.TopCompany != nil {
		content = replaceTopPick(content, snap.TopCompany, now)
	}

	if err := os.WriteFile(u.readmePath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write README: %w", err)
	}

	u.log.Info().Str("path", u.readmePath).Int("entries", len(entries)).Msg("README updated")
	return nil
}

// replaceTrackRecord swaps the body between the Track Record heading and
// the next section for the rendered table.
func replaceTrackRecord(content, table string) string {
	m := trackRecordRe.FindStringSubmatchIndex(content)
	if m == nil {
		return content
	}
	// m[4]:m[5] is the old body between heading and boundary.
	return content[:m[4]] + table + "\n\n" + content[m[5]:]
}

// replaceTopPick swaps the whole Current Top Pick section for a fresh
// one built from the snapshot.
func replaceTopPick(content string, top *TopCompany, now time.Time) string {
	m := topPickRe.FindStringSubmatchIndex(content)
	if m == nil {
		return content
	}

	block := fmt.Sprintf(
		"## 🎯 Current Top Pick (%s)\n\n**%s (%s)**\n- Price: ₹%.2f\n- Buy Trigger: ₹%.2f\n- Target: ₹%.2f\n- Asymmetry Score: %d/10\n",
		now.Format("January 02, 2006"),
		top.Name, top.Symbol,
		top.CurrentPrice,
		top.FiftyTwoWeekLow*config.BuyTriggerPct,
		top.FiftyTwoWeekHigh,
		top.AsymmetryScore,
	)

	// m[2]:m[3] is the old section, excluding the boundary.
	return content[:m[2]] + block + content[m[3]:]
}
