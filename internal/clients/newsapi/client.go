package newsapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/pli-alpha/internal/domain"
)

const baseURL = "https://newsapi.org/v2/everything"

// placeholderKey is the sample key shipped in the original docs. Requests
// are never sent with it; the fetcher goes straight to the fallback.
const placeholderKey = "e1a3eb1a81d849449f2bff0d4f301fc7"

// Client is a NewsAPI client
type Client struct {
	client   *http.Client
	apiKey   string
	lookback int // days
	log      zerolog.Logger
}

// NewClient creates a new NewsAPI client
func NewClient(apiKey string, lookbackDays int, log zerolog.Logger) *Client {
	if lookbackDays <= 0 {
		lookbackDays = 7
	}
	return &Client{
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		apiKey:   apiKey,
		lookback: lookbackDays,
		log:      log.With().Str("client", "newsapi").Logger(),
	}
}

// everythingResponse represents the /v2/everything response
type everythingResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []article `json:"articles"`
}

type article struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	PublishedAt string `json:"publishedAt"`
	URL         string `json:"url"`
}

// Latest fetches the single most recent article matching the query within
// the lookback window. Every failure path (missing or placeholder key,
// HTTP error, zero results, decode error) resolves to the fixed fallback
// headline; there is exactly one fallback and no retry.
func (c *Client) Latest(query string) domain.Headline {
	if c.apiKey == "" || c.apiKey == placeholderKey {
		c.log.Warn().Msg("NEWS_API_KEY not configured, using fallback headline")
		return Fallback()
	}

	params := url.Values{}
	params.Add("q", query)
	params.Add("apiKey", c.apiKey)
	params.Add("pageSize", "1")
	params.Add("sortBy", "publishedAt")
	params.Add("language", "en")
	params.Add("from", time.Now().AddDate(0, 0, -c.lookback).Format("2006-01-02"))

	c.log.Info().Str("query", query).Msg("Fetching latest headline")

	article, err := c.fetch(baseURL + "?" + params.Encode())
	if err != nil {
		c.log.Error().Err(err).Msg("Headline fetch failed, using fallback")
		return Fallback()
	}

	headline := domain.Headline{
		Title:       article.Title,
		Description: article.Description,
		Source:      article.Source.Name,
		PublishedAt: truncateDate(article.PublishedAt),
		URL:         article.URL,
		Keywords:    []string{query},
	}

	c.log.Info().Str("source", headline.Source).Msg("Fetched headline")
	return headline
}

func (c *Client) fetch(reqURL string) (*article, error) {
	req, err := http.NewRequest("GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch headline: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("NewsAPI returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var result everythingResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	if result.Status != "ok" || result.TotalResults == 0 || len(result.Articles) == 0 {
		return nil, fmt.Errorf("no results (status=%s, total=%d)", result.Status, result.TotalResults)
	}

	return &result.Articles[0], nil
}

// truncateDate keeps the ISO date portion of a publishedAt timestamp.
func truncateDate(publishedAt string) string {
	if len(publishedAt) < 10 {
		if publishedAt == "" {
			return "Unknown"
		}
		return publishedAt
	}
	return publishedAt[:10]
}

// Fallback returns the pre-baked headline used whenever the API is
// unavailable. Based on actual news from February 23, 2026.
func Fallback() domain.Headline {
	return domain.Headline{
		Title:       "Apple iPhone becomes India's top export item in 2025 with USD 23 billion shipments",
		Description: "Smartphones overtook automotive fuel as India's top export category, driven by the Production Linked Incentive (PLI) scheme and diversification from Chinese suppliers. Apple alone accounted for 76% of India's smartphone exports, with approximately $23 billion worth of devices shipped in 2025—mostly to the United States.",
		Source:      "Economic Times / NewsAPI Fallback",
		PublishedAt: "2026-02-23",
		URL:         "https://economictimes.indiatimes.com/industry/cons-products/electronics/indias-iphone-exports-hit-23-billion-in-2025-as-smartphones-become-top-export-segment/articleshow/128687555.cms",
		Keywords:    []string{"PLI Scheme", "iPhone", "Exports", "Apple"},
	}
}
