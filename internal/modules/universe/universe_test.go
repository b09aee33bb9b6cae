package universe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticProviderCompanies(t *testing.T) {
	companies := NewStaticProvider().Companies()
	require.Len(t, companies, 5)

	bySymbol := map[string]int{}
	for i, c := range companies {
		bySymbol[c.Symbol] = i
		require.NotNil(t, c.Earnings, c.Symbol)
		assert.NotEmpty(t, c.Sector, c.Symbol)
		assert.NotEmpty(t, c.Connection, c.Symbol)
		assert.Greater(t, c.CurrentPrice, 0.0, c.Symbol)
	}

	assert.Len(t, bySymbol, 5, "symbols must be unique")

	amber := companies[bySymbol["AMBER"]]
	assert.Equal(t, 7022.0, amber.CurrentPrice)
	assert.Equal(t, "Q3FY26", amber.Earnings.Quarter)
	assert.Equal(t, -125.0, amber.Earnings.ProfitGrowth)

	dixon := companies[bySymbol["DIXON"]]
	assert.Contains(t, dixon.Earnings.RecentPerformance, "rallied")
}

func TestStaticProviderReturnsFreshCopies(t *testing.T) {
	provider := NewStaticProvider()

	first := provider.Companies()
	first[0].AsymmetryScore = 99
	first[0].Earnings.Sentiment = "mutated"

	second := provider.Companies()
	assert.Zero(t, second[0].AsymmetryScore)
	assert.NotEqual(t, "mutated", second[0].Earnings.Sentiment)
}

func TestDisplaySymbol(t *testing.T) {
	assert.Equal(t, "DIXON", displaySymbol("DIXON.NS"))
	assert.Equal(t, "AMBER", displaySymbol("AMBER"))
}
