package universe

import (
	"strings"

	"github.com/rs/zerolog"

	"github.com/aristath/pli-alpha/internal/clients/yahoo"
	"github.com/aristath/pli-alpha/internal/config"
	"github.com/aristath/pli-alpha/internal/domain"
	"github.com/aristath/pli-alpha/pkg/formulas"
)

// DefaultLiveSymbols is the core expert-validated watchlist, in NSE
// notation as the market-data provider expects it.
var DefaultLiveSymbols = []string{"DIXON.NS", "SYRMA.NS", "AMBER.NS", "TCIEXP.NS", "BLUEDART.NS"}

// LiveProvider fetches company records from the market-data provider,
// one blocking call chain per symbol. A symbol either yields a full
// record or is skipped entirely.
type LiveProvider struct {
	client  *yahoo.Client
	symbols []string
	log     zerolog.Logger
}

// NewLiveProvider creates a live company data provider over the given
// symbol list.
func NewLiveProvider(client *yahoo.Client, symbols []string, log zerolog.Logger) *LiveProvider {
	if len(symbols) == 0 {
		symbols = DefaultLiveSymbols
	}
	return &LiveProvider{
		client:  client,
		symbols: symbols,
		log:     log.With().Str("component", "universe").Logger(),
	}
}

// Companies fetches the watchlist sequentially. Provider errors for a
// symbol are logged and the symbol is dropped; the run continues with
// whatever subset succeeded.
func (p *LiveProvider) Companies() []domain.Company {
	var companies []domain.Company

	for _, symbol := range p.symbols {
		company, err := p.fetchOne(symbol)
		if err != nil {
			p.log.Warn().Err(err).Str("symbol", symbol).Msg("Could not fetch symbol, skipping")
			continue
		}
		companies = append(companies, *company)
		p.log.Info().Str("symbol", company.Symbol).Str("name", company.Name).Msg("Analyzed company")
	}

	return companies
}

func (p *LiveProvider) fetchOne(symbol string) (*domain.Company, error) {
	quote, err := p.client.GetQuote(symbol)
	if err != nil {
		return nil, err
	}

	company := &domain.Company{
		Symbol:           displaySymbol(symbol),
		Sector:           config.SectorFor(symbol),
		Name:             quote.LongName,
		CurrentPrice:     quote.CurrentPrice,
		MarketCap:        quote.MarketCap,
		PERatio:          quote.TrailingPE,
		Volume:           quote.Volume,
		AvgVolume:        quote.AvgVolume,
		FiftyTwoWeekHigh: quote.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  quote.FiftyTwoWeekLow,
		Beta:             quote.Beta,
	}

	sheet, ownership, err := p.client.GetBalanceSheetAndOwnership(symbol)
	if err != nil {
		return nil, err
	}

	// Missing balance-sheet values leave the derived field nil; the
	// scoring rule that depends on it simply does not fire.
	company.DebtToEquity = sheet.DebtToEquity()
	if company.Volume > 0 && company.Volume < config.VolumeLowThreshold {
		p.log.Warn().Str("symbol", company.Symbol).Int64("volume", company.Volume).Msg("Trading volume below liquidity threshold")
	}
	if company.DebtToEquity != nil && *company.DebtToEquity > config.DebtEquityThreshold {
		p.log.Warn().Str("symbol", company.Symbol).Float64("debt_to_equity", *company.DebtToEquity).Msg("Debt/equity above comfort threshold")
	}
	company.InstitutionalValue = ownership.InstitutionalValue
	company.MutualFundValue = ownership.MutualFundValue
	if company.MarketCap > 0 {
		company.MFPercentage = company.MutualFundValue / company.MarketCap * 100
	}

	history, err := p.client.GetHistoricalPrices(symbol, "3mo")
	if err != nil {
		return nil, err
	}
	if len(history) > 1 {
		closes := make([]float64, len(history))
		for i, h := range history {
			closes[i] = h.Close
		}
		change := formulas.PercentChange(closes)
		company.ThreeMonthChange = &change
		company.Volatility3M = formulas.AnnualizedVolatility(formulas.CalculateReturns(closes)) * 100
	}

	return company, nil
}

// displaySymbol strips the exchange suffix for report and overlay keys.
func displaySymbol(symbol string) string {
	return strings.TrimSuffix(symbol, ".NS")
}
