package domain

import "time"

// Headline represents a single news article used to anchor a run.
// Produced once per run, consumed read-only by the renderer.
type Headline struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Source      string   `json:"source"`
	PublishedAt string   `json:"published_at"` // ISO date, first 10 chars
	URL         string   `json:"url"`
	Keywords    []string `json:"keywords"`
}

// Earnings holds the quarterly earnings sub-record attached to static
// company data.
type Earnings struct {
	Quarter           string  `json:"quarter"`
	RevenueGrowth     float64 `json:"revenue_growth"` // percent YoY
	ProfitGrowth      float64 `json:"profit_growth"`  // percent YoY
	Margin            float64 `json:"margin"`         // EBITDA margin, percent
	Sentiment         string  `json:"sentiment"`
	RecentPerformance string  `json:"recent_performance"`
}

// Company is the record flowing through the pipeline. Fetched fields are
// set by a provider, overlay fields by the insights merge, and scoring
// fields by a scorer. Symbol uniquely identifies a company within a run.
type Company struct {
	Symbol       string  `json:"symbol"`
	Name         string  `json:"name"`
	Sector       string  `json:"sector,omitempty"`
	Connection   string  `json:"connection,omitempty"`
	CurrentPrice float64 `json:"current_price"`
	MarketCap    float64 `json:"market_cap,omitempty"`
	MarketCapCr  float64 `json:"market_cap_cr,omitempty"` // static variant, ₹ crore
	PERatio      float64 `json:"pe_ratio,omitempty"`
	Volume       int64   `json:"volume,omitempty"`
	AvgVolume    int64   `json:"avg_volume,omitempty"`

	FiftyTwoWeekHigh float64 `json:"fifty_two_week_high,omitempty"`
	FiftyTwoWeekLow  float64 `json:"fifty_two_week_low,omitempty"`
	Beta             float64 `json:"beta,omitempty"`

	// Derived live fields. DebtToEquity stays nil when the balance sheet
	// has no usable data; rules depending on it simply do not fire.
	DebtToEquity       *float64 `json:"debt_to_equity,omitempty"`
	InstitutionalValue float64  `json:"institutional_value,omitempty"`
	MutualFundValue    float64  `json:"mutual_fund_value,omitempty"`
	MFPercentage       float64  `json:"mf_percentage,omitempty"`
	ThreeMonthChange   *float64 `json:"three_month_change,omitempty"`

	// Annualized volatility over the 3-month history, percent.
	Volatility3M float64 `json:"volatility_3m,omitempty"`

	Earnings *Earnings `json:"earnings,omitempty"`

	// Expert overlay fields, merged by exact symbol match.
	// GeopoliticalRisk is set (possibly to an empty string) on every
	// strategic winner, so a non-nil pointer marks winner membership.
	ExpertCatalyst   string   `json:"expert_catalyst,omitempty"`
	ExpertWarning    string   `json:"expert_warning,omitempty"`
	GeopoliticalRisk *string  `json:"geopolitical_risk,omitempty"`
	StealthRank      int      `json:"stealth_rank,omitempty"` // 1-5, 0 = unranked
	StealthScore     string   `json:"stealth_score,omitempty"`
	StealthDetail    string   `json:"stealth_detail,omitempty"`
	HiddenRisks      []string `json:"hidden_risks,omitempty"`

	// Scoring output. Recomputed fully on each scoring pass.
	AsymmetryScore     int      `json:"asymmetry_score"`
	AsymmetryReasons   []string `json:"asymmetry_reasons,omitempty"`
	AsymmetryRationale string   `json:"asymmetry_rationale,omitempty"`
	RiskFlags          []string `json:"risk_flags,omitempty"`
}

// Ranking is the output of a scoring pass: companies sorted descending by
// asymmetry score (stable, so ties keep provider order).
type Ranking struct {
	Top       *Company
	Companies []Company
}

// Variant selects which provider / scorer / trigger policy set a run uses.
type Variant string

const (
	VariantStatic Variant = "static"
	VariantLive   Variant = "live"
)

// Analysis bundles everything one pipeline run produced.
type Analysis struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Variant   Variant   `json:"variant"`
	Headline  Headline  `json:"headline"`
	Companies []Company `json:"all_companies"`
	Top       *Company  `json:"top_company,omitempty"`
}
