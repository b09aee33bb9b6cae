package triggers

import (
	"fmt"
	"math"

	"github.com/aristath/pli-alpha/internal/domain"
)

// Policy defines the static-variant entry levels for one symbol: discount
// multipliers off the current price plus the written case for the trade.
// Policies are data, looked up at runtime; unknown symbols fall back to
// the default policy.
type Policy struct {
	ConservativeMult float64
	AggressiveMult   float64
	Rationale        []string
	RiskFactors      []string
}

// defaultPolicy applies the generic 10%/15% discount pair.
var defaultPolicy = Policy{
	ConservativeMult: 0.90,
	AggressiveMult:   0.85,
	Rationale: []string{
		"Based on 10% discount to current price",
	},
	RiskFactors: []string{
		"Market volatility",
		"Sector-specific risks",
	},
}

// policies carries the hand-written per-symbol cases from the original
// analysis. The numeric pairs are part of the published track record, so
// they change only deliberately.
var policies = map[string]Policy{
	"AMBER": {
		// Strong electronics growth, exceptional loss created the entry
		ConservativeMult: 0.92,
		AggressiveMult:   0.85,
		Rationale: []string{
			"Electronics division growing at 79% YoY with margin expansion to 10.18%",
			"Exceptional loss of ₹103 crore masks strong operating performance",
			"Q3 revenue beat estimates by 20% (₹2,943cr vs est. ₹2,457cr)",
			"Full-year electronics revenue guidance of ₹3,200cr implies H2 growth acceleration",
		},
		RiskFactors: []string{
			"Consumer durables segment growth muted at 27%",
			"Higher financing costs from Power-One stake purchase",
			"Increased competition in EMS space",
		},
	},
	"SAHASRA": {
		// SME listing, less liquid, higher risk/reward
		ConservativeMult: 0.88,
		AggressiveMult:   0.80,
		Rationale: []string{
			"First company to receive PLI for semiconductor packaging in 2020",
			"Scaling up Bhiwadi facility with IPO proceeds",
			"Semiconductor packaging is critical for Apple's supply chain diversification",
			"Small-cap with less institutional coverage = higher information asymmetry",
		},
		RiskFactors: []string{
			"SME listing with lower liquidity",
			"Semiconductor industry cyclicality",
			"Execution risk in capacity expansion",
		},
	},
	"TCIEXP": {
		// Steady logistics play
		ConservativeMult: 0.90,
		AggressiveMult:   0.85,
		Rationale: []string{
			"Direct logistics partner for electronics manufacturers",
			"40,000+ pickup/delivery locations across India",
			"Maintaining 10-12% growth guidance",
			"Adding two new ships for capacity expansion",
		},
		RiskFactors: []string{
			"MSME slowdown affecting freight volumes",
			"Fuel price volatility",
			"Competition from organized players",
		},
	},
}

// Plan is the static-variant buy recommendation for a company.
type Plan struct {
	Symbol            string   `json:"symbol"`
	CurrentPrice      float64  `json:"current_price"`
	BuyTriggerPrice   float64  `json:"buy_trigger_price"`
	AggressiveBuyZone string   `json:"aggressive_buy_zone"`
	Rationale         []string `json:"rationale"`
	RiskFactors       []string `json:"risk_factors"`
}

// PolicyFor returns the policy applied to a symbol.
func PolicyFor(symbol string) Policy {
	if p, ok := policies[symbol]; ok {
		return p
	}
	return defaultPolicy
}

// PlanFor calculates the static-variant buy trigger for a company from
// its current price and symbol policy. Trigger prices are rounded to
// whole rupees.
func PlanFor(c domain.Company) Plan {
	policy := PolicyFor(c.Symbol)

	conservative := math.Round(c.CurrentPrice * policy.ConservativeMult)
	aggressive := math.Round(c.CurrentPrice * policy.AggressiveMult)

	return Plan{
		Symbol:            c.Symbol,
		CurrentPrice:      c.CurrentPrice,
		BuyTriggerPrice:   conservative,
		AggressiveBuyZone: fmt.Sprintf("₹%.0f-%.0f", aggressive, conservative),
		Rationale:         policy.Rationale,
		RiskFactors:       policy.RiskFactors,
	}
}
