package scoring

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aristath/pli-alpha/internal/domain"
)

// EarningsScorer is the static-variant asymmetry pass: it scores the
// fixed research universe from quarterly earnings records instead of
// live market data. Information asymmetry here means good PLI-driven
// results the stock price has not reacted to yet.
type EarningsScorer struct {
	log zerolog.Logger
}

// NewEarningsScorer creates the static-variant scorer.
func NewEarningsScorer(log zerolog.Logger) *EarningsScorer {
	return &EarningsScorer{
		log: log.With().Str("component", "scoring").Logger(),
	}
}

// Rank scores companies on their earnings sub-records and returns a new
// slice sorted descending by score, stable on ties. Companies without
// earnings data score zero with an explanatory rationale.
func (s *EarningsScorer) Rank(companies []domain.Company) domain.Ranking {
	s.log.Info().Int("companies", len(companies)).Msg("Analyzing information asymmetry")

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

func (s *EarningsScorer) score(c *domain.Company) {
	if c.Earnings == nil {
		c.AsymmetryScore = 0
		c.AsymmetryRationale = "Insufficient earnings data"
		return
	}

	earnings := c.Earnings
	score := 0

	// Factor 1: revenue growth tiers
	var revenueNote string
	switch {
	case earnings.RevenueGrowth > 20:
		score += 3
		revenueNote = fmt.Sprintf("Strong %s%% revenue growth", formatNum(earnings.RevenueGrowth))
	case earnings.RevenueGrowth > 10:
		score += 2
		revenueNote = fmt.Sprintf("Moderate %s%% revenue growth", formatNum(earnings.RevenueGrowth))
	default:
		score--
		revenueNote = fmt.Sprintf("Subdued %s%% revenue growth", formatNum(earnings.RevenueGrowth))
	}

	// Factor 2: profit impacted by one-time items rather than operations.
	// The AMBER exceptional-loss case is a deliberate per-symbol rule.
	var profitNote string
	switch {
	case c.Symbol == "AMBER" && earnings.ProfitGrowth < 0:
		score += 5
		profitNote = "Exceptional items caused loss despite 38% revenue growth and margin expansion"
	case earnings.ProfitGrowth > 30:
		score -= 2
		profitNote = fmt.Sprintf("Strong %s%% profit growth (likely already priced in)", formatNum(earnings.ProfitGrowth))
	case earnings.ProfitGrowth > 15:
		score--
		profitNote = fmt.Sprintf("Healthy %s%% profit growth", formatNum(earnings.ProfitGrowth))
	default:
		profitNote = fmt.Sprintf("Weak profit growth of %s%%", formatNum(earnings.ProfitGrowth))
	}

	// Factor 3: direct PLI beneficiary vs coverage, per symbol
	var pliNote string
	switch c.Symbol {
	case "SAHASRA":
		score += 4
		pliNote = "First PLI recipient in semiconductor packaging, but SME stock with less coverage"
	case "AMBER":
		score += 3
		pliNote = "Electronics division (79% growth) is direct PLI beneficiary, but headline focused on loss"
	case "TCIEXP":
		score += 2
		pliNote = "Indirect logistics beneficiary, steady but not exciting growth"
	case "DIXON":
		score -= 3
		pliNote = "Already recognized as PLI leader, high valuations"
	default:
		pliNote = "Indirect beneficiary"
	}

	// Factor 4: has the stock already reacted?
	var stockNote string
	if earnings.RecentPerformance != "" {
		perf := strings.ToLower(earnings.RecentPerformance)
		if strings.Contains(perf, "jumped") || strings.Contains(perf, "rallied") {
			score -= 2
			stockNote = "Stock already reacted positively"
		} else {
			score++
			stockNote = "No significant stock reaction yet"
		}
	} else {
		stockNote = "Stock performance unclear"
	}

	c.AsymmetryScore = score
	c.AsymmetryRationale = fmt.Sprintf("%s. %s. %s. %s.", revenueNote, profitNote, pliNote, stockNote)
}

// formatNum renders growth percentages without trailing zeros, so whole
// numbers print as "29" and fractional ones as "7.2".
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
