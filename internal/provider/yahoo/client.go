// Package yahoo implements provider.Provider on top of the Yahoo Finance v8
// chart REST endpoint.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/provider"
)

const (
	chartPath = "/v8/finance/chart/{symbol}"
	quotePath = "/v7/finance/quote"
)

// Client talks to query1.finance.yahoo.com (or any compatible base URL).
type Client struct {
	http *resty.Client
}

var _ provider.Provider = (*Client)(nil)

// NewClient creates a Yahoo chart client.
//
// Parameters:
//   - baseURL: API root, e.g. "https://query1.finance.yahoo.com".
//   - timeout: per-request HTTP timeout.
//   - userAgent: sent on every call; Yahoo rejects requests without one.
func NewClient(baseURL string, timeout time.Duration, userAgent string) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)

	return &Client{http: c}
}

// Name implements provider.Provider.
func (c *Client) Name() string { return "yahoo" }

// Snapshot reads the chart meta block of a one-day range, which carries the
// regular-market price, names, volume and day range. Market capitalization
// is not part of the chart meta; it comes from the quote endpoint and stays
// nil when that call fails.
func (c *Client) Snapshot(ctx context.Context, symbol string) (*models.Snapshot, error) {
	res, err := c.chart(ctx, symbol, map[string]string{
		"range":    "1d",
		"interval": "1d",
	})
	if err != nil {
		return nil, err
	}
	snap := snapshotFromMeta(res.Meta)

	q, err := c.quote(ctx, symbol)
	if err != nil {
		logger.Ctx(ctx).Warn().Err(err).Str("symbol", symbol).Msg("yahoo quote unavailable, market cap unknown")
		return snap, nil
	}
	snap.MarketCap = q.MarketCap
	if snap.LongName == "" {
		snap.LongName = q.LongName
	}
	return snap, nil
}

// History fetches daily bars for [start, end].
func (c *Client) History(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error) {
	res, err := c.chart(ctx, symbol, map[string]string{
		"period1":        strconv.FormatInt(start.Unix(), 10),
		"period2":        strconv.FormatInt(end.Unix(), 10),
		"interval":       "1d",
		"includePrePost": "false",
	})
	if err != nil {
		return nil, err
	}
	return barsFromResult(res), nil
}

// Close implements provider.Provider.
func (c *Client) Close() error {
	c.http.GetClient().CloseIdleConnections()
	return nil
}

func (c *Client) chart(ctx context.Context, symbol string, params map[string]string) (*chartResult, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("symbol", symbol).
		SetQueryParams(params).
		Get(chartPath)
	if err != nil {
		return nil, fmt.Errorf("yahoo chart request: %w", err)
	}

	var body chartResponse
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		if resp.StatusCode() != http.StatusOK {
			return nil, fmt.Errorf("yahoo chart: http %d", resp.StatusCode())
		}
		return nil, fmt.Errorf("yahoo chart: decode response: %w", err)
	}

	if e := body.Chart.Error; e != nil {
		if e.Code == "Not Found" {
			return nil, provider.ErrNotFound
		}
		return nil, fmt.Errorf("yahoo chart: %s: %s", e.Code, e.Description)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, provider.ErrNotFound
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("yahoo chart: http %d", resp.StatusCode())
	}
	if len(body.Chart.Result) == 0 {
		return nil, provider.ErrNotFound
	}

	return &body.Chart.Result[0], nil
}

// quote fetches the v7 quote record for symbol. Yahoo may answer 401 when
// the request carries no session crumb; that is reported as an error.
func (c *Client) quote(ctx context.Context, symbol string) (*quoteResult, error) {
	var body quoteResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"symbols": symbol,
			"fields":  "marketCap,longName",
		}).
		SetResult(&body).
		Get(quotePath)
	if err != nil {
		return nil, fmt.Errorf("yahoo quote request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("yahoo quote: http %d", resp.StatusCode())
	}
	if e := body.QuoteResponse.Error; e != nil {
		return nil, fmt.Errorf("yahoo quote: %s: %s", e.Code, e.Description)
	}
	for i := range body.QuoteResponse.Result {
		if r := &body.QuoteResponse.Result[i]; strings.EqualFold(r.Symbol, symbol) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("yahoo quote: no result for %s", symbol)
}

func snapshotFromMeta(m chartMeta) *models.Snapshot {
	prev := m.PreviousClose
	if prev == nil {
		prev = m.ChartPreviousClose
	}

	s := &models.Snapshot{
		CurrentPrice:  m.RegularMarketPrice,
		LongName:      m.LongName,
		ShortName:     m.ShortName,
		Volume:        m.RegularMarketVolume,
		DayHigh:       m.RegularMarketDayHigh,
		DayLow:        m.RegularMarketDayLow,
		PreviousClose: prev,
	}
	if m.RegularMarketPrice != nil && prev != nil && *prev != 0 {
		pct := (*m.RegularMarketPrice - *prev) / *prev * 100
		s.ChangePercent = &pct
	}
	return s
}

// barsFromResult zips the parallel timestamp/OHLCV arrays. Missing or short
// arrays yield invalid NullDecimals, which normalization rejects.
func barsFromResult(r *chartResult) []models.Bar {
	var series quoteSeries
	if len(r.Indicators.Quote) > 0 {
		series = r.Indicators.Quote[0]
	}

	bars := make([]models.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		bars = append(bars, models.Bar{
			Time:   time.Unix(ts+r.Meta.GMTOffset, 0).UTC(),
			Open:   at(series.Open, i),
			High:   at(series.High, i),
			Low:    at(series.Low, i),
			Close:  at(series.Close, i),
			Volume: at(series.Volume, i),
		})
	}
	return bars
}

func at(values []decimal.NullDecimal, i int) decimal.NullDecimal {
	if i < len(values) {
		return values[i]
	}
	return decimal.NullDecimal{}
}
