// Package report formats an analysis into plain-text reports. Rendering
// only reads already-computed fields; it never mutates a record and never
// computes new figures.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aristath/pli-alpha/internal/domain"
	"github.com/aristath/pli-alpha/internal/modules/insights"
	"github.com/aristath/pli-alpha/internal/modules/triggers"
)

const noAnalysisMessage = "Unable to generate analysis"

// RenderLive builds the expert-validated live report: macro view,
// strategic winners, stealth ranking table, hidden risks matrix and the
// top asymmetry opportunity with its live trigger levels.
func RenderLive(a domain.Analysis, ins *insights.Insights, levels *triggers.Levels) string {
	if a.Top == nil || len(a.Companies) == 0 {
		return noAnalysisMessage
	}

	var b strings.Builder
	rule := strings.Repeat("=", 100)

	fmt.Fprintf(&b, "\n%s\n", rule)
	b.WriteString("🚀 AUTONOMOUS PLI ALPHA GENERATOR v2.0\n")
	b.WriteString("   Expert-Validated Supply Chain Intelligence\n")
	fmt.Fprintf(&b, "%s\n\n", rule)
	fmt.Fprintf(&b, "Analysis Timestamp: %s IST\n", a.Timestamp.Format("2006-01-02 15:04:05"))
	b.WriteString("Expert Insights Date: February 23, 2026 (Gemini Analysis)\n\n")

	b.WriteString("📊 EXPERT MACRO VIEW\n")
	b.WriteString("• PLI disbursed: ₹28,748 crore (as of late 2025)\n")
	fmt.Fprintf(&b, "• Component PLI boost: ₹%s Cr\n", commaFloat(ins.IndustryMetrics.ComponentPLISize))
	b.WriteString("• Shift: 'Screw-Driver Technology' → Core Component Manufacturing\n\n")

	b.WriteString("🏭 STRATEGIC CORRELATION: 20%+ Utilization Candidates\n")
	for _, sym := range sortedWinnerSymbols(ins) {
		winner := ins.StrategicWinners[sym]
		fmt.Fprintf(&b, "\n%s - %s\n", sym, livePriceLabel(a.Companies, sym))
		fmt.Fprintf(&b, "  • Catalyst: %s\n", winner.Catalyst)
		fmt.Fprintf(&b, "  • Warning: %s\n", orNone(winner.Warning))
		if winner.GeopoliticalRisk != "" {
			fmt.Fprintf(&b, "  • Geo Risk: %s\n", winner.GeopoliticalRisk)
		}
	}

	b.WriteString("\n🕵️ INSTITUTIONAL STEALTH RANKING\n")
	fmt.Fprintf(&b, "%-6s %-20s %-18s %-10s %-10s\n", "Rank", "Company", "Score", "Live MF %", "Current")
	b.WriteString(strings.Repeat("-", 70) + "\n")
	for rank := 1; rank <= 5; rank++ {
		entry, ok := ins.RankedEntry(rank)
		if !ok {
			continue
		}
		company := findBySymbol(a.Companies, entry.Symbol)
		if company == nil {
			continue
		}
		mfPct := fmt.Sprintf("%.1f%%", company.MFPercentage)
		price := fmt.Sprintf("₹%.2f", company.CurrentPrice)
		fmt.Fprintf(&b, "%-6d %-20s %-18s %-10s %-10s\n",
			rank, truncateRunes(company.Name, 18), entry.Score, mfPct, price)
	}

	b.WriteString("\n⚠️ HIDDEN RISKS MATRIX\n")
	for _, company := range a.Companies {
		if len(company.HiddenRisks) == 0 && len(company.RiskFlags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", company.Symbol)
		for _, risk := range company.HiddenRisks {
			fmt.Fprintf(&b, "  • %s\n", risk)
		}
		for _, risk := range company.RiskFlags {
			fmt.Fprintf(&b, "  • %s\n", risk)
		}
	}

	top := a.Top
	b.WriteString("\n🎯 CURRENT HIGHEST ASYMMETRY OPPORTUNITY\n")
	fmt.Fprintf(&b, "%s (%s)\n", top.Name, top.Symbol)
	fmt.Fprintf(&b, "Asymmetry Score: %d/10\n", top.AsymmetryScore)
	fmt.Fprintf(&b, "Live Price: ₹%.2f\n", top.CurrentPrice)
	fmt.Fprintf(&b, "52-Week Range: ₹%.2f - ₹%.2f\n", top.FiftyTwoWeekLow, top.FiftyTwoWeekHigh)
	if top.Volatility3M > 0 {
		fmt.Fprintf(&b, "3-Month Volatility: %.1f%% annualized\n", top.Volatility3M)
	}
	if len(top.AsymmetryReasons) > 0 {
		b.WriteString("Asymmetry Drivers:\n")
		for _, reason := range top.AsymmetryReasons {
			fmt.Fprintf(&b, "  • %s\n", reason)
		}
	}

	if levels != nil {
		b.WriteString("\n💰 BUY TRIGGER (Live)\n")
		fmt.Fprintf(&b, "   Buy at: ₹%.2f\n", levels.BuyTrigger)
		fmt.Fprintf(&b, "   Target: ₹%.2f\n", levels.Target)
		fmt.Fprintf(&b, "   Stop: ₹%.2f\n", levels.Stop)
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	b.WriteString("⚠️  DISCLAIMER: Expert insights from Feb 23, 2026. Prices are live.\n")
	b.WriteString("   Always validate with current fundamentals.\n")

	return b.String()
}

// sortedWinnerSymbols returns the strategic winner symbols in stable
// alphabetical order so repeated renders of the same analysis are
// byte-identical.
func sortedWinnerSymbols(ins *insights.Insights) []string {
	symbols := make([]string, 0, len(ins.StrategicWinners))
	for sym := range ins.StrategicWinners {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

func livePriceLabel(companies []domain.Company, symbol string) string {
	if c := findBySymbol(companies, symbol); c != nil {
		return fmt.Sprintf("₹%.2f", c.CurrentPrice)
	}
	return "N/A"
}

func findBySymbol(companies []domain.Company, symbol string) *domain.Company {
	for i := range companies {
		if companies[i].Symbol == symbol {
			return &companies[i]
		}
	}
	return nil
}

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
