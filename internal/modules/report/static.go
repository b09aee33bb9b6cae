package report

import (
	"fmt"
	"strings"

	"github.com/aristath/pli-alpha/internal/domain"
	"github.com/aristath/pli-alpha/internal/modules/triggers"
)

// RenderStatic builds the quant macro analyst report for the static
// variant: headline, key insight, top-3 supplier cards, the asymmetry
// verdict and the buy trigger plan for the top company.
func RenderStatic(a domain.Analysis, plan *triggers.Plan) string {
	if a.Top == nil || len(a.Companies) == 0 {
		return noAnalysisMessage
	}

	top := a.Top
	var b strings.Builder
	rule := strings.Repeat("=", 70)

	fmt.Fprintf(&b, "\n%s\n", rule)
	b.WriteString("📊 QUANT MACRO ANALYST REPORT\n")
	fmt.Fprintf(&b, "%s\n\n", rule)

	b.WriteString("📰 NEWS HEADLINE\n")
	fmt.Fprintf(&b, "%s\n", a.Headline.Title)
	fmt.Fprintf(&b, "Source: %s\n", a.Headline.Source)
	fmt.Fprintf(&b, "Published: %s\n\n", a.Headline.PublishedAt)

	b.WriteString("🔑 KEY INSIGHT\n")
	b.WriteString("iPhone exports reached $23 billion in 2025, making smartphones India's top export category.\n")
	b.WriteString("Apple accounts for 76% of India's smartphone exports, driven by the PLI scheme.\n\n")

	b.WriteString("🏭 TOP 3 PUBLICLY TRADED INDIAN SUPPLIER COMPANIES\n")
	limit := 3
	if len(a.Companies) < limit {
		limit = len(a.Companies)
	}
	for i, company := range a.Companies[:limit] {
		fmt.Fprintf(&b, "\n%d. %s (%s)\n", i+1, company.Name, company.Symbol)
		fmt.Fprintf(&b, "   Sector: %s\n", company.Sector)
		fmt.Fprintf(&b, "   Connection: %s\n", company.Connection)
		if e := company.Earnings; e != nil {
			fmt.Fprintf(&b, "   Recent Earnings (%s):\n", e.Quarter)
			fmt.Fprintf(&b, "   • Revenue Growth: %s%% YoY\n", formatNum(e.RevenueGrowth))
			fmt.Fprintf(&b, "   • Profit Growth: %s%% YoY\n", formatNum(e.ProfitGrowth))
			fmt.Fprintf(&b, "   • EBITDA Margin: %s%%\n", formatNum(e.Margin))
			fmt.Fprintf(&b, "   • Sentiment: %s\n", e.Sentiment)
		}
	}

	b.WriteString("\n📈 INFORMATION ASYMMETRY ANALYSIS\n")
	fmt.Fprintf(&b, "Highest Asymmetry: %s (%s)\n", top.Name, top.Symbol)
	fmt.Fprintf(&b, "Score: %d/10\n", top.AsymmetryScore)
	fmt.Fprintf(&b, "Rationale: %s\n", top.AsymmetryRationale)
	writeAsymmetryCase(&b, top)

	if plan != nil {
		b.WriteString("\n💰 BUY TRIGGER PRICE\n")
		fmt.Fprintf(&b, "Current Price: ₹%s\n", commaFloat(plan.CurrentPrice))
		fmt.Fprintf(&b, "Buy Trigger: ₹%s\n", commaFloat(plan.BuyTriggerPrice))
		fmt.Fprintf(&b, "Aggressive Buy Zone: %s\n", plan.AggressiveBuyZone)

		b.WriteString("\nRationale:\n")
		for _, point := range plan.Rationale {
			fmt.Fprintf(&b, "  • %s\n", point)
		}
		b.WriteString("\nRisk Factors:\n")
		for _, risk := range plan.RiskFactors {
			fmt.Fprintf(&b, "  • %s\n", risk)
		}
	}

	fmt.Fprintf(&b, "\n%s\n", rule)
	b.WriteString("📋 SUMMARY\n")
	b.WriteString("The PLI scheme has transformed India's electronics export landscape, with iPhone exports reaching $23 billion.\n")
	fmt.Fprintf(&b, "%s presents the highest information asymmetry opportunity\n", top.Name)
	b.WriteString("due to strong operational performance masked by one-time items/low coverage.\n")
	if plan != nil {
		fmt.Fprintf(&b, "Consider accumulating in the %s range.\n", plan.AggressiveBuyZone)
	}
	fmt.Fprintf(&b, "%s\n", rule)

	return b.String()
}

// writeAsymmetryCase adds the hand-written case paragraph for the two
// companies the analysis has a detailed narrative for.
func writeAsymmetryCase(b *strings.Builder, top *domain.Company) {
	switch top.Symbol {
	case "AMBER":
		fmt.Fprintf(b, "\nWhy %s has highest information asymmetry:\n", top.Name)
		b.WriteString("• Strong operating performance: Q3 revenue surged 38% YoY, beating estimates by 20%\n")
		b.WriteString("• Electronics division explosion: Revenue up 79% YoY with margins expanding to 10.18%\n")
		b.WriteString("• One-time exceptional loss: ₹103 crore charge for labour codes and Sidwal created a net loss\n")
		b.WriteString("• Market overreacted to loss: Stock fell despite strong core business\n")
		b.WriteString("• PLI beneficiary: Electronics division directly benefits from Apple's export surge\n")
	case "SAHASRA":
		fmt.Fprintf(b, "\nWhy %s has highest information asymmetry:\n", top.Name)
		b.WriteString("• First-mover advantage: First company to receive PLI for semiconductor packaging in 2020\n")
		b.WriteString("• Critical for Apple's supply chain: Semiconductor packaging is essential for iPhone components\n")
		b.WriteString("• Low coverage: SME listing means less institutional research coverage\n")
		b.WriteString("• Scaling up: Recent IPO proceeds funding capacity expansion in Bhiwadi\n")
	}
}
