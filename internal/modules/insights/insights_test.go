package insights

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/pli-alpha/internal/domain"
)

func TestApplyOverlaysKnownSymbols(t *testing.T) {
	ins := Defaults()

	input := []domain.Company{
		{Symbol: "DIXON", Name: "Dixon Technologies"},
		{Symbol: "SYRMA", Name: "Syrma SGS"},
		{Symbol: "UNKNOWN", Name: "Not In Overlay"},
	}

	out := ins.Apply(input)
	require.Len(t, out, 3)

	dixon := out[0]
	assert.Equal(t, "Display and camera module JVs for backward integration", dixon.ExpertCatalyst)
	assert.Equal(t, "Mobile PLI allocation slashed from ₹9,000 Cr to ₹1,527 Cr", dixon.ExpertWarning)
	require.NotNil(t, dixon.GeopoliticalRisk)
	assert.Equal(t, "49% Chinese ownership in Kunshan Q Tech JV - vulnerable to Press Note 3", *dixon.GeopoliticalRisk)
	assert.Equal(t, 4, dixon.StealthRank)
	assert.Equal(t, "Crowded/Testing", dixon.StealthScore)
	assert.Equal(t, []string{"PLI allocation cut 9,000→1,527 Cr", "49% Chinese JV ownership"}, dixon.HiddenRisks)

	// Winners without geopolitical text still get the field set, so
	// presence marks winner membership.
	syrma := out[1]
	require.NotNil(t, syrma.GeopoliticalRisk)
	assert.Empty(t, *syrma.GeopoliticalRisk)

	unknown := out[2]
	assert.Empty(t, unknown.ExpertCatalyst)
	assert.Nil(t, unknown.GeopoliticalRisk)
	assert.Zero(t, unknown.StealthRank)
	assert.Nil(t, unknown.HiddenRisks)

	// Apply returns a new slice; the input stays untouched.
	assert.Empty(t, input[0].ExpertCatalyst)
}

func TestRankedEntry(t *testing.T) {
	ins := Defaults()

	for rank := 1; rank <= 5; rank++ {
		entry, ok := ins.RankedEntry(rank)
		assert.True(t, ok, "rank %d", rank)
		assert.NotEmpty(t, entry.Symbol)
	}

	top, _ := ins.RankedEntry(1)
	assert.Equal(t, "SYRMA", top.Symbol)
	assert.Equal(t, "High Alpha", top.Score)

	_, ok := ins.RankedEntry(6)
	assert.False(t, ok)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	ins, err := Load(filepath.Join(t.TempDir(), "missing.toml"), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, Defaults(), ins)
}

func TestLoadTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "expert_insights.toml")
	doc := `
[strategic_winners.ACME]
reason = "test reason"
catalyst = "test catalyst"

[stealth_ranking.1]
symbol = "ACME"
name = "Acme Corp"
score = "High Alpha"
detail = "nobody noticed"

[hidden_risks]
ACME = ["only risk"]

[industry_metrics]
avg_debt_equity = 0.2
component_pli_size = 1000.0
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	ins, err := Load(path, zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "test catalyst", ins.StrategicWinners["ACME"].Catalyst)
	entry, ok := ins.RankedEntry(1)
	require.True(t, ok)
	assert.Equal(t, "ACME", entry.Symbol)
	assert.Equal(t, []string{"only risk"}, ins.HiddenRisks["ACME"])
	assert.Equal(t, 0.2, ins.IndustryMetrics.AvgDebtEquity)
}
