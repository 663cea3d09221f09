package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/quotepulse/internal/provider"
)

const snapshotBody = `{"chart":{"result":[{"meta":{
	"symbol":"AAPL","longName":"Apple Inc.","shortName":"Apple",
	"regularMarketPrice":180.0,"regularMarketVolume":48201835,
	"regularMarketDayHigh":181.5,"regularMarketDayLow":178.25,
	"chartPreviousClose":150.0,"gmtoffset":-14400},
	"timestamp":[1714570200],
	"indicators":{"quote":[{"open":[179.1],"high":[181.5],"low":[178.25],"close":[180.0],"volume":[48201835]}]}}],
	"error":null}}`

const historyBody = `{"chart":{"result":[{"meta":{"symbol":"AAPL","gmtoffset":-14400},
	"timestamp":[1714570200,1714656600,1714743000],
	"indicators":{"quote":[{
		"open":[169.58,172.51,null],
		"high":[172.71,173.42,186.99],
		"low":[169.11,170.89,182.66],
		"close":[169.3,173.03,183.38],
		"volume":[50383100,94214900,163224100]}]}}],
	"error":null}}`

const notFoundBody = `{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found, symbol may be delisted"}}}`

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, 2*time.Second, "quotepulse-test")
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

const quoteBody = `{"quoteResponse":{"result":[{"symbol":"AAPL","longName":"Apple Inc.","marketCap":2950000000000}],"error":null}}`

func TestClient_Snapshot(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "quotepulse-test", r.Header.Get("User-Agent"))
		switch r.URL.Path {
		case "/v8/finance/chart/AAPL":
			assert.Equal(t, "1d", r.URL.Query().Get("range"))
			writeJSON(w, http.StatusOK, snapshotBody)
		case "/v7/finance/quote":
			assert.Equal(t, "AAPL", r.URL.Query().Get("symbols"))
			writeJSON(w, http.StatusOK, quoteBody)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	snap, err := c.Snapshot(context.Background(), "AAPL")
	require.NoError(t, err)
	require.NotNil(t, snap)

	assert.Equal(t, "Apple Inc.", snap.LongName)
	assert.Equal(t, "Apple", snap.ShortName)
	require.NotNil(t, snap.CurrentPrice)
	assert.Equal(t, 180.0, *snap.CurrentPrice)
	require.NotNil(t, snap.Volume)
	assert.Equal(t, int64(48201835), *snap.Volume)
	require.NotNil(t, snap.ChangePercent)
	assert.InDelta(t, 20.0, *snap.ChangePercent, 1e-9)
	require.NotNil(t, snap.MarketCap)
	assert.Equal(t, int64(2950000000000), *snap.MarketCap)
}

func TestClient_Snapshot_QuoteEndpointDegrades(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "unauthorized without crumb", status: http.StatusUnauthorized, body: `{"finance":{"result":null,"error":{"code":"Unauthorized","description":"Invalid Crumb"}}}`},
		{name: "empty result", status: http.StatusOK, body: `{"quoteResponse":{"result":[],"error":null}}`},
		{name: "other symbol only", status: http.StatusOK, body: `{"quoteResponse":{"result":[{"symbol":"MSFT","marketCap":1}],"error":null}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/v7/finance/quote" {
					writeJSON(w, tc.status, tc.body)
					return
				}
				writeJSON(w, http.StatusOK, snapshotBody)
			})

			snap, err := c.Snapshot(context.Background(), "AAPL")
			require.NoError(t, err)
			require.NotNil(t, snap.CurrentPrice)
			assert.Nil(t, snap.MarketCap)
		})
	}
}

func TestClient_Snapshot_LongNameFromQuote(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v7/finance/quote" {
			writeJSON(w, http.StatusOK, `{"quoteResponse":{"result":[{"symbol":"bhp.ax","longName":"BHP Group Limited","marketCap":220000000000}]}}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"chart":{"result":[{"meta":{"symbol":"BHP.AX","regularMarketPrice":45.1}}],"error":null}}`)
	})

	snap, err := c.Snapshot(context.Background(), "BHP.AX")
	require.NoError(t, err)
	assert.Equal(t, "BHP Group Limited", snap.LongName)
	require.NotNil(t, snap.MarketCap)
	assert.Equal(t, int64(220000000000), *snap.MarketCap)
}

func TestClient_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, notFoundBody)
	})

	_, err := c.Snapshot(context.Background(), "ZZZZINVALID")
	require.ErrorIs(t, err, provider.ErrNotFound)

	_, err = c.History(context.Background(), "ZZZZINVALID", time.Now().AddDate(0, 0, -30), time.Now())
	require.ErrorIs(t, err, provider.ErrNotFound)
}

func TestClient_EmptyResultIsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"chart":{"result":[],"error":null}}`)
	})

	_, err := c.Snapshot(context.Background(), "AAPL")
	require.ErrorIs(t, err, provider.ErrNotFound)
}

func TestClient_UpstreamFailure(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{name: "html error page", status: http.StatusBadGateway, body: "<html>bad gateway</html>"},
		{name: "yahoo error code", status: http.StatusBadRequest, body: `{"chart":{"result":null,"error":{"code":"Bad Request","description":"Invalid input"}}}`},
		{name: "garbage 200", status: http.StatusOK, body: "not json"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, tc.status, tc.body)
			})
			_, err := c.Snapshot(context.Background(), "AAPL")
			require.Error(t, err)
			assert.NotErrorIs(t, err, provider.ErrNotFound)
		})
	}
}

func TestClient_History(t *testing.T) {
	start := time.Date(2024, 4, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "1712102400", q.Get("period1"))
		assert.Equal(t, "1714694400", q.Get("period2"))
		assert.Equal(t, "1d", q.Get("interval"))
		writeJSON(w, http.StatusOK, historyBody)
	})

	bars, err := c.History(context.Background(), "AAPL", start, end)
	require.NoError(t, err)
	require.Len(t, bars, 3)

	assert.Equal(t, "2024-05-01", bars[0].Time.Format("2006-01-02"))
	assert.Equal(t, "2024-05-02", bars[1].Time.Format("2006-01-02"))
	assert.Equal(t, "2024-05-03", bars[2].Time.Format("2006-01-02"))

	require.True(t, bars[0].Close.Valid)
	assert.True(t, bars[0].Close.Decimal.Equal(decimal.RequireFromString("169.3")))
	assert.True(t, bars[2].Volume.Decimal.Equal(decimal.NewFromInt(163224100)))

	// null in the upstream series survives as an invalid value
	assert.False(t, bars[2].Open.Valid)
}

func TestBarsFromResult_ShortSeries(t *testing.T) {
	r := &chartResult{Timestamp: []int64{1714570200, 1714656600}}
	r.Indicators.Quote = []quoteSeries{{
		Close: []decimal.NullDecimal{{Decimal: decimal.NewFromInt(1), Valid: true}},
	}}

	bars := barsFromResult(r)
	require.Len(t, bars, 2)
	assert.True(t, bars[0].Close.Valid)
	assert.False(t, bars[1].Close.Valid)
	assert.False(t, bars[0].Volume.Valid)
}

func TestSnapshotFromMeta_PrefersPreviousClose(t *testing.T) {
	price, prev, chartPrev := 110.0, 100.0, 50.0
	s := snapshotFromMeta(chartMeta{RegularMarketPrice: &price, PreviousClose: &prev, ChartPreviousClose: &chartPrev})
	require.NotNil(t, s.ChangePercent)
	assert.InDelta(t, 10.0, *s.ChangePercent, 1e-9)

	noPrice := snapshotFromMeta(chartMeta{PreviousClose: &prev})
	assert.Nil(t, noPrice.ChangePercent)
}
