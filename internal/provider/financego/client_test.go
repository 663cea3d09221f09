package financego

import (
	"context"
	"errors"
	"testing"
	"time"

	finance "github.com/piquette/finance-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/service"
)

func TestSnapshotFromEquity(t *testing.T) {
	eq := &finance.Equity{
		Quote: finance.Quote{
			Symbol:                     "AAPL",
			ShortName:                  "Apple",
			RegularMarketPrice:         189.84,
			RegularMarketChangePercent: 1.27,
			RegularMarketVolume:        48201835,
			RegularMarketDayHigh:       190.1,
		},
		LongName:  "Apple Inc.",
		MarketCap: 2950000000000,
	}

	s := snapshotFromEquity(eq)

	assert.Equal(t, "Apple Inc.", s.LongName)
	assert.Equal(t, "Apple", s.ShortName)
	require.NotNil(t, s.CurrentPrice)
	assert.Equal(t, 189.84, *s.CurrentPrice)
	require.NotNil(t, s.MarketCap)
	assert.Equal(t, int64(2950000000000), *s.MarketCap)
	require.NotNil(t, s.Volume)
	assert.Equal(t, int64(48201835), *s.Volume)
	// zero-valued upstream fields are treated as absent
	assert.Nil(t, s.DayLow)
	assert.Nil(t, s.Open)
	assert.False(t, s.IsEmpty())
}

func TestSnapshotFromEquity_AllZeroIsEmpty(t *testing.T) {
	assert.True(t, snapshotFromEquity(&finance.Equity{}).IsEmpty())
}

func TestBarFromChart(t *testing.T) {
	b := &finance.ChartBar{
		Open:      decimal.RequireFromString("169.58"),
		High:      decimal.RequireFromString("172.71"),
		Low:       decimal.RequireFromString("169.11"),
		Close:     decimal.RequireFromString("169.30"),
		Volume:    50383100,
		Timestamp: 1714570200,
	}

	bar := barFromChart(b, -14400)

	assert.Equal(t, "2024-05-01", bar.Time.Format("2006-01-02"))
	require.True(t, bar.Close.Valid)
	assert.True(t, bar.Close.Decimal.Equal(decimal.RequireFromString("169.3")))
	assert.True(t, bar.Volume.Decimal.Equal(decimal.NewFromInt(50383100)))
}

func TestBarFromChart_ExchangeDate(t *testing.T) {
	cases := []struct {
		name      string
		timestamp int
		offset    int64
		want      string
	}{
		// 2024-01-15 10:00 AEDT is still 2024-01-14 in UTC
		{name: "sydney open", timestamp: 1705273200, offset: 39600, want: "2024-01-15"},
		// 2024-01-15 10:00 NZDT
		{name: "auckland open", timestamp: 1705266000, offset: 46800, want: "2024-01-15"},
		{name: "new york open", timestamp: 1714570200, offset: -14400, want: "2024-05-01"},
		{name: "utc exchange", timestamp: 1705312800, offset: 0, want: "2024-01-15"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := &finance.ChartBar{
				Open:      decimal.NewFromInt(1),
				High:      decimal.NewFromInt(1),
				Low:       decimal.NewFromInt(1),
				Close:     decimal.NewFromInt(1),
				Timestamp: tc.timestamp,
			}
			assert.Equal(t, tc.want, barFromChart(b, tc.offset).Time.Format("2006-01-02"))
		})
	}
}

func TestBarFromChart_NullSessionIsInvalid(t *testing.T) {
	b := &finance.ChartBar{Timestamp: 1714570200, Volume: 0}

	bar := barFromChart(b, -14400)

	assert.Equal(t, "2024-05-01", bar.Time.Format("2006-01-02"))
	assert.False(t, bar.Open.Valid)
	assert.False(t, bar.High.Valid)
	assert.False(t, bar.Low.Valid)
	assert.False(t, bar.Close.Valid)
	assert.False(t, bar.Volume.Valid)

	// normalization rejects it instead of reporting a zero close
	_, err := service.NormalizeBars([]models.Bar{bar})
	var ce *service.CoercionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 0, ce.Index)
}

func TestBarFromChart_ZeroVolumeKeepsPrices(t *testing.T) {
	b := &finance.ChartBar{
		Open:      decimal.NewFromInt(5),
		High:      decimal.NewFromInt(5),
		Low:       decimal.NewFromInt(5),
		Close:     decimal.NewFromInt(5),
		Timestamp: 1714570200,
	}

	bar := barFromChart(b, 0)

	require.True(t, bar.Close.Valid)
	require.True(t, bar.Volume.Valid)
	assert.True(t, bar.Volume.Decimal.IsZero())
}

func TestAwait(t *testing.T) {
	t.Run("returns result", func(t *testing.T) {
		v, err := await(context.Background(), func() (int, error) { return 42, nil })
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("propagates error", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := await(context.Background(), func() (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("context wins over slow call", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		release := make(chan struct{})
		defer close(release)

		_, err := await(ctx, func() (int, error) {
			<-release
			return 1, nil
		})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
