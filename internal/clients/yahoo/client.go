package yahoo

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// Client is a Yahoo Finance API client
type Client struct {
	client *http.Client
	log    zerolog.Logger
}

// NewClient creates a new Yahoo Finance client
func NewClient(log zerolog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		log: log.With().Str("client", "yahoo").Logger(),
	}
}

// yahooQuoteResponse represents the response from Yahoo Finance quote API
type yahooQuoteResponse struct {
	QuoteResponse struct {
		Result []map[string]interface{} `json:"result"`
		Error  interface{}              `json:"error"`
	} `json:"quoteResponse"`
}

// GetQuote fetches quote-level data for a symbol. A quote without a
// longName is treated as unknown and rejected.
func (c *Client) GetQuote(symbol string) (*Quote, error) {
	info, err := c.getQuoteInfo(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote info: %w", err)
	}

	longName := getString(info, "longName", "")
	if longName == "" {
		return nil, fmt.Errorf("no long name for symbol %s", symbol)
	}

	price := getFloat64OrZero(info, "currentPrice")
	if price == 0 {
		price = getFloat64OrZero(info, "regularMarketPrice")
	}

	return &Quote{
		Symbol:           symbol,
		LongName:         longName,
		CurrentPrice:     price,
		MarketCap:        getFloat64OrZero(info, "marketCap"),
		TrailingPE:       getFloat64OrZero(info, "trailingPE"),
		Volume:           getInt64OrZero(info, "regularMarketVolume"),
		AvgVolume:        getInt64OrZero(info, "averageDailyVolume3Month"),
		FiftyTwoWeekHigh: getFloat64OrZero(info, "fiftyTwoWeekHigh"),
		FiftyTwoWeekLow:  getFloat64OrZero(info, "fiftyTwoWeekLow"),
		Beta:             getFloat64OrZero(info, "beta"),
	}, nil
}

// getQuoteInfo fetches quote information from Yahoo Finance API
func (c *Client) getQuoteInfo(symbol string) (map[string]interface{}, error) {
	baseURL := "https://query1.finance.yahoo.com/v7/finance/quote"

	params := url.Values{}
	params.Add("symbols", symbol)
	params.Add("fields", "symbol,longName,shortName,currentPrice,regularMarketPrice,marketCap,"+
		"trailingPE,regularMarketVolume,averageDailyVolume3Month,fiftyTwoWeekHigh,"+
		"fiftyTwoWeekLow,beta,quoteType")

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var result yahooQuoteResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.QuoteResponse.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.QuoteResponse.Error)
	}

	if len(result.QuoteResponse.Result) == 0 {
		return nil, fmt.Errorf("no quote data returned for symbol %s", symbol)
	}

	return result.QuoteResponse.Result[0], nil
}

// rawValue is Yahoo's number-with-formatting wrapper
type rawValue struct {
	Raw float64 `json:"raw"`
	Fmt string  `json:"fmt"`
}

// quoteSummaryResponse covers the modules the live provider needs
type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []struct {
			BalanceSheetHistory struct {
				BalanceSheetStatements []struct {
					TotalDebt              *rawValue `json:"totalDebt"`
					TotalStockholderEquity *rawValue `json:"totalStockholderEquity"`
				} `json:"balanceSheetStatements"`
			} `json:"balanceSheetHistory"`
			InstitutionOwnership struct {
				OwnershipList []struct {
					Value *rawValue `json:"value"`
				} `json:"ownershipList"`
			} `json:"institutionOwnership"`
			FundOwnership struct {
				OwnershipList []struct {
					Value *rawValue `json:"value"`
				} `json:"ownershipList"`
			} `json:"fundOwnership"`
		} `json:"result"`
		Error interface{} `json:"error"`
	} `json:"quoteSummary"`
}

// GetBalanceSheetAndOwnership fetches the balance-sheet snapshot and the
// holder tables in a single quoteSummary call.
func (c *Client) GetBalanceSheetAndOwnership(symbol string) (*BalanceSheet, *Ownership, error) {
	baseURL := "https://query1.finance.yahoo.com/v10/finance/quoteSummary/" + url.PathEscape(symbol)

	params := url.Values{}
	params.Add("modules", "balanceSheetHistory,institutionOwnership,fundOwnership")

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, nil, err
	}

	var result quoteSummaryResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.QuoteSummary.Error != nil {
		return nil, nil, fmt.Errorf("Yahoo Finance API error: %v", result.QuoteSummary.Error)
	}

	if len(result.QuoteSummary.Result) == 0 {
		return nil, nil, fmt.Errorf("no summary data returned for symbol %s", symbol)
	}

	data := result.QuoteSummary.Result[0]

	// First reported period only
	sheet := &BalanceSheet{}
	if len(data.BalanceSheetHistory.BalanceSheetStatements) > 0 {
		first := data.BalanceSheetHistory.BalanceSheetStatements[0]
		if first.TotalDebt != nil {
			v := first.TotalDebt.Raw
			sheet.TotalDebt = &v
		}
		if first.TotalStockholderEquity != nil {
			v := first.TotalStockholderEquity.Raw
			sheet.TotalEquity = &v
		}
	}

	ownership := &Ownership{}
	for _, holder := range data.InstitutionOwnership.OwnershipList {
		if holder.Value != nil {
			ownership.InstitutionalValue += holder.Value.Raw
		}
	}
	for _, holder := range data.FundOwnership.OwnershipList {
		if holder.Value != nil {
			ownership.MutualFundValue += holder.Value.Raw
		}
	}

	return sheet, ownership, nil
}

// GetHistoricalPrices fetches daily closes from the Yahoo chart API.
//
// Supports periods: 1d, 5d, 1mo, 3mo, 6mo, 1y, 2y, 5y, 10y, ytd, max
func (c *Client) GetHistoricalPrices(symbol string, period string) ([]HistoricalPrice, error) {
	baseURL := "https://query1.finance.yahoo.com/v8/finance/chart/" + url.PathEscape(symbol)

	params := url.Values{}
	params.Add("interval", "1d")
	params.Add("range", period)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var result struct {
		Chart struct {
			Result []struct {
				Timestamp  []int64 `json:"timestamp"`
				Indicators struct {
					Quote []struct {
						Close []float64 `json:"close"`
					} `json:"quote"`
				} `json:"indicators"`
			} `json:"result"`
			Error interface{} `json:"error"`
		} `json:"chart"`
	}

	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.Chart.Error != nil {
		return nil, fmt.Errorf("Yahoo Finance API error: %v", result.Chart.Error)
	}

	if len(result.Chart.Result) == 0 || len(result.Chart.Result[0].Indicators.Quote) == 0 {
		c.log.Warn().Str("symbol", symbol).Msg("No historical data returned")
		return []HistoricalPrice{}, nil
	}

	chartData := result.Chart.Result[0]
	closes := chartData.Indicators.Quote[0].Close

	var prices []HistoricalPrice
	for i, ts := range chartData.Timestamp {
		if i >= len(closes) {
			break
		}
		// Yahoo sometimes returns null values
		if closes[i] == 0 {
			continue
		}
		prices = append(prices, HistoricalPrice{
			Date:  time.Unix(ts, 0),
			Close: closes[i],
		})
	}

	c.log.Debug().
		Str("symbol", symbol).
		Str("period", period).
		Int("count", len(prices)).
		Msg("Fetched historical prices")

	return prices, nil
}

// get performs a GET request with browser-like headers and returns the body
func (c *Client) get(reqURL string) ([]byte, error) {
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("Yahoo Finance API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// Helper functions to safely extract values from map

func getFloat64OrZero(m map[string]interface{}, key string) float64 {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return v
		case int:
			return float64(v)
		case int64:
			return float64(v)
		}
	}
	return 0
}

func getInt64OrZero(m map[string]interface{}, key string) int64 {
	if val, ok := m[key]; ok && val != nil {
		switch v := val.(type) {
		case float64:
			return int64(v)
		case int:
			return int64(v)
		case int64:
			return v
		}
	}
	return 0
}

func getString(m map[string]interface{}, key string, defaultVal string) string {
	if val, ok := m[key]; ok && val != nil {
		if s, ok := val.(string); ok {
			return s
		}
	}
	return defaultVal
}
