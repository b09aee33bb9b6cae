package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/pli-alpha/internal/domain"
	"github.com/aristath/pli-alpha/internal/modules/insights"
	"github.com/aristath/pli-alpha/internal/modules/triggers"
)

func liveAnalysis() domain.Analysis {
	change := -12.5
	companies := []domain.Company{
		{
			Symbol: "SYRMA", Name: "Syrma SGS Technology Limited",
			CurrentPrice: 420.50, FiftyTwoWeekLow: 380, FiftyTwoWeekHigh: 700,
			MFPercentage: 10.2, ThreeMonthChange: &change,
			StealthRank: 1, StealthScore: "High Alpha",
			AsymmetryScore:   9,
			AsymmetryReasons: []string{"Near 52-week low (₹380.00)"},
			HiddenRisks:      []string{"Debt-to-Equity 3x industry avg"},
		},
		{
			Symbol: "AMBER", Name: "Amber Enterprises India Limited",
			CurrentPrice: 7022, FiftyTwoWeekLow: 6000, FiftyTwoWeekHigh: 8200,
			MFPercentage: 3.4, PERatio: 166,
			StealthRank: 5, StealthScore: "High Hype",
			AsymmetryScore: -4,
			RiskFlags:      []string{"⚠️ Extreme P/E: 166 (3 years growth priced in)"},
		},
	}
	return domain.Analysis{
		RunID:     "live-run",
		Timestamp: time.Date(2026, 2, 23, 9, 30, 0, 0, time.UTC),
		Variant:   domain.VariantLive,
		Companies: companies,
		Top:       &companies[0],
	}
}

func TestRenderLiveSections(t *testing.T) {
	a := liveAnalysis()
	levels := triggers.LiveFor(*a.Top)

	out := RenderLive(a, insights.Defaults(), &levels)

	assert.Contains(t, out, "🚀 AUTONOMOUS PLI ALPHA GENERATOR v2.0")
	assert.Contains(t, out, "Analysis Timestamp: 2026-02-23 09:30:00 IST")
	assert.Contains(t, out, "• Component PLI boost: ₹40,000 Cr")
	assert.Contains(t, out, "🕵️ INSTITUTIONAL STEALTH RANKING")
	assert.Contains(t, out, "⚠️ Extreme P/E: 166 (3 years growth priced in)")
	assert.Contains(t, out, "Syrma SGS Technology Limited (SYRMA)")
	assert.Contains(t, out, "Asymmetry Score: 9/10")
	assert.Contains(t, out, "52-Week Range: ₹380.00 - ₹700.00")
	assert.Contains(t, out, "Buy at: ₹387.60")
	assert.Contains(t, out, "Stop: ₹361.00")
	assert.Contains(t, out, "DISCLAIMER")

	// Stealth table: only fetched symbols get rows, names capped at 18 runes.
	assert.Contains(t, out, "Syrma SGS Technolo")
	assert.NotContains(t, out, "TCIEXP")
}

func TestRenderLiveDeterministicWinnerOrder(t *testing.T) {
	a := liveAnalysis()
	levels := triggers.LiveFor(*a.Top)
	ins := insights.Defaults()

	first := RenderLive(a, ins, &levels)
	second := RenderLive(a, ins, &levels)
	assert.Equal(t, first, second)

	// Winners render alphabetically: AMBER, DIXON, SYRMA.
	amber := strings.Index(first, "AMBER - ")
	dixon := strings.Index(first, "DIXON - ")
	syrma := strings.Index(first, "SYRMA - ")
	require.True(t, amber >= 0 && dixon >= 0 && syrma >= 0)
	assert.Less(t, amber, dixon)
	assert.Less(t, dixon, syrma)
}

func TestRenderStaticSections(t *testing.T) {
	companies := []domain.Company{
		{
			Symbol: "AMBER", Name: "Amber Enterprises", Sector: "Electronics Manufacturing Services (EMS)",
			Connection: "Key player in electronics manufacturing", CurrentPrice: 7022,
			AsymmetryScore:     12,
			AsymmetryRationale: "Strong 38% revenue growth. Exceptional items caused loss despite 38% revenue growth and margin expansion. Electronics division (79% growth) is direct PLI beneficiary, but headline focused on loss. No significant stock reaction yet.",
			Earnings: &domain.Earnings{
				Quarter: "Q3FY26", RevenueGrowth: 38, ProfitGrowth: -125, Margin: 8.35,
				Sentiment: "Strong operating performance",
			},
		},
		{Symbol: "SAHASRA", Name: "Sahasra Electronic Solutions", Sector: "Semiconductor Packaging", CurrentPrice: 310, AsymmetryScore: 7},
	}
	a := domain.Analysis{
		Timestamp: time.Date(2026, 2, 23, 9, 30, 0, 0, time.UTC),
		Variant:   domain.VariantStatic,
		Headline: domain.Headline{
			Title:       "Apple iPhone becomes India's top export item in 2025 with USD 23 billion shipments",
			Source:      "Economic Times / NewsAPI Fallback",
			PublishedAt: "2026-02-23",
		},
		Companies: companies,
		Top:       &companies[0],
	}
	plan := triggers.PlanFor(*a.Top)

	out := RenderStatic(a, &plan)

	assert.Contains(t, out, "📊 QUANT MACRO ANALYST REPORT")
	assert.Contains(t, out, "Source: Economic Times / NewsAPI Fallback")
	assert.Contains(t, out, "1. Amber Enterprises (AMBER)")
	assert.Contains(t, out, "Recent Earnings (Q3FY26):")
	assert.Contains(t, out, "• Revenue Growth: 38% YoY")
	assert.Contains(t, out, "• Profit Growth: -125% YoY")
	assert.Contains(t, out, "Highest Asymmetry: Amber Enterprises (AMBER)")
	assert.Contains(t, out, "Score: 12/10")
	assert.Contains(t, out, "Why Amber Enterprises has highest information asymmetry:")
	assert.Contains(t, out, "Current Price: ₹7,022")
	assert.Contains(t, out, "Buy Trigger: ₹6,460")
	assert.Contains(t, out, "Aggressive Buy Zone: ₹5969-6460")
	assert.Contains(t, out, "📋 SUMMARY")
}

func TestRenderWithoutTopCompany(t *testing.T) {
	empty := domain.Analysis{}

	assert.Equal(t, "Unable to generate analysis", RenderLive(empty, insights.Defaults(), nil))
	assert.Equal(t, "Unable to generate analysis", RenderStatic(empty, nil))
}

func TestCommaFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{40000, "40,000"},
		{7022, "7,022"},
		{310, "310"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, commaFloat(tt.in))
	}
}
