// Package financego adapts github.com/piquette/finance-go to provider.Provider.
package financego

import (
	"context"
	"fmt"
	"net/http"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/equity"
	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/provider"
)

// Client wraps the finance-go package-level API. finance-go calls are
// blocking and context-unaware, so every call runs in its own goroutine
// and is abandoned when ctx is done.
type Client struct {
	httpClient *http.Client
}

var _ provider.Provider = (*Client)(nil)

// NewClient installs an HTTP client with the given timeout into finance-go.
func NewClient(timeout time.Duration) *Client {
	hc := &http.Client{Timeout: timeout}
	finance.SetHTTPClient(hc)
	return &Client{httpClient: hc}
}

// Name implements provider.Provider.
func (c *Client) Name() string { return "financego" }

// Snapshot implements provider.Provider using the equity quote endpoint,
// which carries long name and market cap on top of the regular quote.
func (c *Client) Snapshot(ctx context.Context, symbol string) (*models.Snapshot, error) {
	eq, err := await(ctx, func() (*finance.Equity, error) {
		return equity.Get(symbol)
	})
	if err != nil {
		return nil, fmt.Errorf("finance-go equity %s: %w", symbol, err)
	}
	if eq == nil {
		return nil, provider.ErrNotFound
	}
	return snapshotFromEquity(eq), nil
}

// History implements provider.Provider using the chart endpoint at daily interval.
func (c *Client) History(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error) {
	return await(ctx, func() ([]models.Bar, error) {
		params := &chart.Params{
			Symbol:   symbol,
			Start:    datetime.New(&start),
			End:      datetime.New(&end),
			Interval: datetime.OneDay,
		}

		iter := chart.Get(params)
		raw := make([]*finance.ChartBar, 0, 32)
		for iter.Next() {
			raw = append(raw, iter.Bar())
		}
		if err := iter.Err(); err != nil {
			return nil, fmt.Errorf("finance-go chart %s: %w", symbol, err)
		}

		offset := int64(iter.Meta().Gmtoffset)
		bars := make([]models.Bar, 0, len(raw))
		for _, b := range raw {
			bars = append(bars, barFromChart(b, offset))
		}
		return bars, nil
	})
}

// Close implements provider.Provider.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// await runs fn in a goroutine and returns its result, or ctx.Err() if the
// context ends first.
func await[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	ch := make(chan result, 1)

	go func() {
		v, err := fn()
		ch <- result{v: v, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-ch:
		return r.v, r.err
	}
}

// snapshotFromEquity maps finance-go's zero-valued fields to absent values.
func snapshotFromEquity(e *finance.Equity) *models.Snapshot {
	return &models.Snapshot{
		CurrentPrice:  nonZeroFloat(e.RegularMarketPrice),
		LongName:      e.LongName,
		ShortName:     e.ShortName,
		ChangePercent: nonZeroFloat(e.RegularMarketChangePercent),
		Volume:        nonZeroInt(int64(e.RegularMarketVolume)),
		MarketCap:     nonZeroInt(e.MarketCap),
		DayHigh:       nonZeroFloat(e.RegularMarketDayHigh),
		DayLow:        nonZeroFloat(e.RegularMarketDayLow),
		Open:          nonZeroFloat(e.RegularMarketOpen),
		PreviousClose: nonZeroFloat(e.RegularMarketPreviousClose),
	}
}

// barFromChart dates the bar in exchange time, shifting by gmtOffset seconds
// so the calendar day is the trading day. finance-go reports null sessions
// as zero prices; such bars are returned with every value invalid.
func barFromChart(b *finance.ChartBar, gmtOffset int64) models.Bar {
	bar := models.Bar{Time: time.Unix(int64(b.Timestamp)+gmtOffset, 0).UTC()}
	if b.Open.IsZero() && b.High.IsZero() && b.Low.IsZero() && b.Close.IsZero() {
		return bar
	}

	bar.Open = valid(b.Open)
	bar.High = valid(b.High)
	bar.Low = valid(b.Low)
	bar.Close = valid(b.Close)
	bar.Volume = valid(decimal.NewFromInt(int64(b.Volume)))
	return bar
}

func valid(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

func nonZeroFloat(v float64) *float64 {
	if v == 0 {
		return nil
	}
	return &v
}

func nonZeroInt(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
