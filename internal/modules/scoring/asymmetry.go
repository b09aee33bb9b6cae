package scoring

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/aristath/pli-alpha/internal/config"
	"github.com/aristath/pli-alpha/internal/domain"
)

// Rule weights and thresholds for the expert-validated asymmetry pass.
const (
	nearLowMultiplier = 1.10
	nearLowBonus      = 3

	momentumThreshold = -5.0
	momentumBonus     = 2

	catalystBonus   = 4
	catalystPreview = 50

	highStealthBonus     = 5
	moderateStealthBonus = 2
	defaultStealthRank   = 5

	debtPenalty      = 2
	geoPenalty       = 3
	extremePEPenalty = 4
)

// Symbol-specific rules from the expert analysis. These are deliberate
// per-symbol special cases, not generic thresholds: the debt check only
// applies to SYRMA and the extreme-P/E check only to AMBER.
const (
	debtWatchSymbol = "SYRMA"
	peWatchSymbol   = "AMBER"
)

// AsymmetryScorer runs the expert-validated rule set over merged company
// records. The score is a plain additive total; rule order only matters
// for the order of the human-readable reason list.
type AsymmetryScorer struct {
	industryAvgDebtEquity float64
	log                   zerolog.Logger
}

// NewAsymmetryScorer creates a scorer using the given industry-average
// debt/equity reference from the expert overlay.
func NewAsymmetryScorer(industryAvgDebtEquity float64, log zerolog.Logger) *AsymmetryScorer {
	return &AsymmetryScorer{
		industryAvgDebtEquity: industryAvgDebtEquity,
		log:                   log.With().Str("component", "scoring").Logger(),
	}
}

// Rank scores every company and returns a new slice sorted descending by
// asymmetry score. The sort is stable, so ties keep input order. The
// input slice is not mutated; scoring the result again yields the same
// scores, since each pass starts from zero.
func (s *AsymmetryScorer) Rank(companies []domain.Company) domain.Ranking {
	s.log.Info().Int("companies", len(companies)).Msg("Running expert-validated asymmetry analysis")

	out := make([]domain.Company, len(companies))
	copy(out, companies)

	for i := range out {
		s.score(&out[i])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AsymmetryScore > out[j].AsymmetryScore
	})

	ranking := domain.Ranking{Companies: out}
	if len(out) > 0 {
		ranking.Top = &out[0]
	}
	return ranking
}

func (s *AsymmetryScorer) score(c *domain.Company) {
	score := 0
	var reasons []string
	var riskFlags []string

	// Price proximity to the 52-week low
	if c.CurrentPrice < c.FiftyTwoWeekLow*nearLowMultiplier {
		score += nearLowBonus
		reasons = append(reasons, fmt.Sprintf("Near 52-week low (₹%.2f)", c.FiftyTwoWeekLow))
	}

	// Recent momentum
	if c.ThreeMonthChange != nil && *c.ThreeMonthChange < momentumThreshold {
		score += momentumBonus
		reasons = append(reasons, fmt.Sprintf("Down %.1f%% in 3 months", *c.ThreeMonthChange))
	}

	// Expert-identified catalyst
	if c.ExpertCatalyst != "" {
		score += catalystBonus
		reasons = append(reasons, fmt.Sprintf("Expert catalyst: %s...", truncateRunes(c.ExpertCatalyst, catalystPreview)))
	}

	// Stealth factor: lower rank = higher stealth opportunity
	stealthRank := c.StealthRank
	if stealthRank == 0 {
		stealthRank = defaultStealthRank
	}
	if stealthRank <= 2 {
		score += highStealthBonus
		reasons = append(reasons, fmt.Sprintf("High stealth (Rank %d): %s", stealthRank, c.StealthDetail))
	} else if stealthRank == 3 {
		score += moderateStealthBonus
		reasons = append(reasons, fmt.Sprintf("Moderate stealth (Rank %d)", stealthRank))
	}

	// Expert-identified debt risk, SYRMA only
	if c.Symbol == debtWatchSymbol && c.DebtToEquity != nil && *c.DebtToEquity > s.industryAvgDebtEquity*2 {
		riskFlags = append(riskFlags, fmt.Sprintf("⚠️ High debt: %.2f vs industry %.2f", *c.DebtToEquity, s.industryAvgDebtEquity))
		score -= debtPenalty
	}

	// Geopolitical exposure penalty. The overlay sets the field on every
	// strategic winner, so all three winners take it even when the risk
	// text is empty.
	if c.GeopoliticalRisk != nil {
		riskFlags = append(riskFlags, "⚠️ Geopolitical: "+*c.GeopoliticalRisk)
		score -= geoPenalty
	}

	// Expert-identified extreme valuation, AMBER only
	if c.Symbol == peWatchSymbol && c.PERatio > config.PEHighThreshold {
		riskFlags = append(riskFlags, "⚠️ Extreme P/E: 166 (3 years growth priced in)")
		score -= extremePEPenalty
	}

	c.AsymmetryScore = score
	c.AsymmetryReasons = reasons
	c.RiskFlags = riskFlags
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		return string(r[:n])
	}
	return s
}
