package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bar is one raw daily OHLCV entry as handed over by a provider, before
// normalization. Values are nullable because upstream series routinely
// contain gaps.
type Bar struct {
	Time   time.Time
	Open   decimal.NullDecimal
	High   decimal.NullDecimal
	Low    decimal.NullDecimal
	Close  decimal.NullDecimal
	Volume decimal.NullDecimal
}

// HistoricalRecord is one normalized trading day.
//
// Fields:
//   - Date: calendar day in YYYY-MM-DD, no time component.
//   - Open, High, Low, Close: prices as float64.
//   - Volume: shares traded that day.
type HistoricalRecord struct {
	Date   string
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Metrics summarizes a non-empty historical window.
//
// AverageVolume is float64(sum of volumes) / float64(record count).
// CurrentMarketCap is copied from the snapshot and may be nil.
type Metrics struct {
	LowestVolume     int64
	HighestVolume    int64
	LowestClose      float64
	HighestClose     float64
	AverageVolume    float64
	CurrentMarketCap *int64
}
