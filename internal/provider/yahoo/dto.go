package yahoo

import "github.com/shopspring/decimal"

// chartResponse is the v8 /finance/chart/{symbol} envelope.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"chart"`
}

type chartError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Meta       chartMeta  `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Indicators indicators `json:"indicators"`
}

type chartMeta struct {
	Symbol               string   `json:"symbol"`
	LongName             string   `json:"longName"`
	ShortName            string   `json:"shortName"`
	RegularMarketPrice   *float64 `json:"regularMarketPrice"`
	RegularMarketVolume  *int64   `json:"regularMarketVolume"`
	RegularMarketDayHigh *float64 `json:"regularMarketDayHigh"`
	RegularMarketDayLow  *float64 `json:"regularMarketDayLow"`
	ChartPreviousClose   *float64 `json:"chartPreviousClose"`
	PreviousClose        *float64 `json:"previousClose"`
	GMTOffset            int64    `json:"gmtoffset"`
}

type indicators struct {
	Quote []quoteSeries `json:"quote"`
}

// quoteSeries holds parallel arrays; Yahoo emits null for missing sessions.
type quoteSeries struct {
	Open   []decimal.NullDecimal `json:"open"`
	High   []decimal.NullDecimal `json:"high"`
	Low    []decimal.NullDecimal `json:"low"`
	Close  []decimal.NullDecimal `json:"close"`
	Volume []decimal.NullDecimal `json:"volume"`
}

// quoteResponse is the v7 /finance/quote envelope. Only fields the chart
// meta lacks are decoded.
type quoteResponse struct {
	QuoteResponse struct {
		Result []quoteResult `json:"result"`
		Error  *chartError   `json:"error"`
	} `json:"quoteResponse"`
}

type quoteResult struct {
	Symbol    string `json:"symbol"`
	LongName  string `json:"longName"`
	MarketCap *int64 `json:"marketCap"`
}
