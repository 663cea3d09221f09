package models

// Quote is the assembled result of a quote lookup: snapshot fields, the
// ordered historical window and the metrics computed over it.
type Quote struct {
	Symbol         string
	Name           string
	CurrentPrice   *float64
	Change         *float64
	Volume         *int64
	MarketCap      *int64
	HistoricalData []HistoricalRecord
	Metrics        Metrics
}
