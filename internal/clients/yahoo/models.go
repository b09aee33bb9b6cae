package yahoo

import "time"

// Quote holds the quote-level fields the live provider consumes.
type Quote struct {
	Symbol           string
	LongName         string
	CurrentPrice     float64
	MarketCap        float64
	TrailingPE       float64
	Volume           int64
	AvgVolume        int64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
	Beta             float64
}

// BalanceSheet is the first reported balance-sheet period. Values are nil
// when the provider omits them.
type BalanceSheet struct {
	TotalDebt   *float64
	TotalEquity *float64
}

// DebtToEquity derives total debt / total equity from the first reported
// period. Returns nil when either side is missing or equity is zero.
func (b *BalanceSheet) DebtToEquity() *float64 {
	if b == nil || b.TotalDebt == nil || b.TotalEquity == nil || *b.TotalEquity == 0 {
		return nil
	}
	de := *b.TotalDebt / *b.TotalEquity
	return &de
}

// Ownership aggregates holder tables: institutional value and mutual fund
// value summed across holders.
type Ownership struct {
	InstitutionalValue float64
	MutualFundValue    float64
}

// HistoricalPrice is a single daily close from the chart API.
type HistoricalPrice struct {
	Date  time.Time
	Close float64
}
