package scoring

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/pli-alpha/internal/domain"
	"github.com/aristath/pli-alpha/internal/modules/universe"
)

func TestEarningsRankStaticUniverse(t *testing.T) {
	scorer := NewEarningsScorer(zerolog.Nop())

	ranking := scorer.Rank(universe.NewStaticProvider().Companies())
	require.Len(t, ranking.Companies, 5)
	require.NotNil(t, ranking.Top)

	expected := map[string]int{
		"AMBER":    12, // +3 revenue, +5 exceptional loss, +3 PLI, +1 no reaction
		"SAHASRA":  7,  // +3 revenue, -1 profit, +4 PLI, +1 no reaction
		"TCIEXP":   2,  // -1 revenue, +2 PLI, +1 no reaction
		"DIXON":    -4, // +3 revenue, -2 profit, -3 PLI, -2 already rallied
		"BLUEDART": -5, // -1 revenue, -2 profit, -2 already jumped
	}
	for _, c := range ranking.Companies {
		assert.Equal(t, expected[c.Symbol], c.AsymmetryScore, c.Symbol)
	}

	assert.Equal(t, "AMBER", ranking.Top.Symbol)
	assert.Equal(t, "SAHASRA", ranking.Companies[1].Symbol)
	assert.Equal(t, "TCIEXP", ranking.Companies[2].Symbol)
}

func TestEarningsRationaleShape(t *testing.T) {
	scorer := NewEarningsScorer(zerolog.Nop())

	company := domain.Company{
		Symbol: "TCIEXP",
		Earnings: &domain.Earnings{
			RevenueGrowth:     7.2,
			ProfitGrowth:      10.4,
			RecentPerformance: "Adding two new ships for capacity expansion",
		},
	}

	ranking := scorer.Rank([]domain.Company{company})
	require.NotNil(t, ranking.Top)

	assert.Equal(t,
		"Subdued 7.2% revenue growth. Weak profit growth of 10.4%. Indirect logistics beneficiary, steady but not exciting growth. No significant stock reaction yet.",
		ranking.Top.AsymmetryRationale)
}

func TestEarningsMissingDataScoresZero(t *testing.T) {
	scorer := NewEarningsScorer(zerolog.Nop())

	ranking := scorer.Rank([]domain.Company{{Symbol: "NODATA", Name: "No Data Ltd"}})
	require.NotNil(t, ranking.Top)

	assert.Equal(t, 0, ranking.Top.AsymmetryScore)
	assert.Equal(t, "Insufficient earnings data", ranking.Top.AsymmetryRationale)
}
