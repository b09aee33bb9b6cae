package universe

import "github.com/aristath/pli-alpha/internal/domain"

// StaticProvider returns the fixed research universe with literal
// fundamentals and earnings sub-records. No network calls.
type StaticProvider struct{}

// NewStaticProvider creates a new static company data provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Companies returns the five PLI supplier companies with earnings data
// merged by symbol.
func (p *StaticProvider) Companies() []domain.Company {
	companies := []domain.Company{
		{
			Name:         "Dixon Technologies",
			Symbol:       "DIXON",
			Sector:       "Electronics Manufacturing Services (EMS)",
			Connection:   "Leading EMS provider, manufactures for major smartphone brands including Samsung and others. Mobile and EMS division contributes 90% of revenue.",
			MarketCapCr:  45000,
			CurrentPrice: 8450,
			PERatio:      65.87,
		},
		{
			Name:         "Amber Enterprises",
			Symbol:       "AMBER",
			Sector:       "Electronics Manufacturing Services (EMS)",
			Connection:   "Key player in electronics manufacturing, with electronics division revenue surging 79% YoY in Q3FY26.",
			MarketCapCr:  19408,
			CurrentPrice: 7022,
			PERatio:      79.15,
		},
		{
			Name:         "Sahasra Electronic Solutions",
			Symbol:       "SAHASRA",
			Sector:       "Semiconductor Packaging",
			Connection:   "First company to get PLI scheme for semiconductor packaging in 2020. Operates semiconductor packaging facility in Bhiwadi, Rajasthan.",
			MarketCapCr:  850,
			CurrentPrice: 310,
			PERatio:      24.5,
		},
		{
			Name:         "TCI Express",
			Symbol:       "TCIEXP",
			Sector:       "Specialized Logistics",
			Connection:   "Key logistics partner for electronics companies. Has partnerships with electronics manufacturers like Cellecor Gadgets. Network of 40,000+ pickup and delivery locations.",
			MarketCapCr:  8145,
			CurrentPrice: 875,
			PERatio:      28.3,
		},
		{
			Name:         "Blue Dart Express",
			Symbol:       "BLUEDART",
			Sector:       "Express Logistics",
			Connection:   "Leading logistics provider for e-commerce and electronics. Management optimistic about manufacturing localisation driving growth. Q2 profit jumped 31% YoY.",
			MarketCapCr:  43500,
			CurrentPrice: 6155,
			PERatio:      45.2,
		},
	}

	earnings := map[string]domain.Earnings{
		"DIXON": {
			Quarter:           "Q2FY26",
			RevenueGrowth:     29,
			ProfitGrowth:      37, // excluding exceptional gains
			Margin:            3.8,
			Sentiment:         "Strong growth in mobile and EMS division, 81% profit jump including exceptional gains",
			RecentPerformance: "Stock rallied over 50% since April 2025 lows",
		},
		"AMBER": {
			Quarter:           "Q3FY26",
			RevenueGrowth:     38,
			ProfitGrowth:      -125, // loss due to exceptional items
			Margin:            8.35,
			Sentiment:         "Strong operating performance with revenue and EBITDA beating estimates, but exceptional charges caused net loss",
			RecentPerformance: "Electronics division revenue surged 79% YoY, margins expanded to 10.18%",
		},
		"SAHASRA": {
			Quarter:           "Q3FY26",
			RevenueGrowth:     45,
			ProfitGrowth:      30,
			Margin:            12,
			Sentiment:         "Recently raised funds through IPO for semiconductor packaging expansion. First company to receive PLI for semiconductor packaging.",
			RecentPerformance: "Scaling up semiconductor packaging operations in Bhiwadi",
		},
		"TCIEXP": {
			Quarter:           "Q3FY26",
			RevenueGrowth:     7.2,
			ProfitGrowth:      10.4,
			Margin:            11.4,
			Sentiment:         "Steady growth across segments, maintaining 10-12% full-year guidance",
			RecentPerformance: "Adding two new ships for capacity expansion, optimistic on multimodal logistics",
		},
		"BLUEDART": {
			Quarter:           "Q2FY26",
			RevenueGrowth:     7,
			ProfitGrowth:      31,
			Margin:            8.2,
			Sentiment:         "Strong profit growth, management optimistic on manufacturing localisation driving demand",
			RecentPerformance: "Stock jumped 12% after Q2 results",
		},
	}

	for i := range companies {
		if e, ok := earnings[companies[i].Symbol]; ok {
			earning := e
			companies[i].Earnings = &earning
		}
	}

	return companies
}
