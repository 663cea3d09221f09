package dto

import "github.com/guttosm/quotepulse/internal/domain/models"

// QuoteResponse represents the JSON structure returned by the
// GET /api/stock/{symbol} endpoint.
//
// Field names are part of the public contract consumed by the dashboard and
// must not change. Nullable numbers are null when the provider did not
// supply them.
type QuoteResponse struct {
	Symbol         string               `json:"symbol" example:"AAPL"`
	CurrentPrice   *float64             `json:"currentPrice" example:"189.84"`
	Name           string               `json:"name" example:"Apple Inc."`
	Change         *float64             `json:"change" example:"1.27"`
	Volume         *int64               `json:"volume" example:"48201835"`
	MarketCap      *int64               `json:"marketCap" example:"2950000000000"`
	HistoricalData []HistoricalDataItem `json:"historicalData"`
	Metrics        MetricsResponse      `json:"metrics"`
}

// HistoricalDataItem is one trading day of the historical window.
type HistoricalDataItem struct {
	Date   string  `json:"date" example:"2024-05-01"`
	Open   float64 `json:"open" example:"169.58"`
	High   float64 `json:"high" example:"172.71"`
	Low    float64 `json:"low" example:"169.11"`
	Close  float64 `json:"close" example:"169.30"`
	Volume int64   `json:"volume" example:"50383100"`
}

// MetricsResponse summarizes the historical window.
type MetricsResponse struct {
	LowestVolume     int64   `json:"lowestVolume" example:"37512100"`
	HighestVolume    int64   `json:"highestVolume" example:"163224100"`
	LowestClose      float64 `json:"lowestClose" example:"165.00"`
	HighestClose     float64 `json:"highestClose" example:"189.99"`
	AverageVolume    float64 `json:"averageVolume" example:"61234567.5"`
	CurrentMarketCap *int64  `json:"currentMarketCap" example:"2950000000000"`
}

// NewQuoteResponse maps a domain quote onto the API contract.
func NewQuoteResponse(q *models.Quote) QuoteResponse {
	history := make([]HistoricalDataItem, 0, len(q.HistoricalData))
	for _, r := range q.HistoricalData {
		history = append(history, HistoricalDataItem{
			Date:   r.Date,
			Open:   r.Open,
			High:   r.High,
			Low:    r.Low,
			Close:  r.Close,
			Volume: r.Volume,
		})
	}

	return QuoteResponse{
		Symbol:         q.Symbol,
		CurrentPrice:   q.CurrentPrice,
		Name:           q.Name,
		Change:         q.Change,
		Volume:         q.Volume,
		MarketCap:      q.MarketCap,
		HistoricalData: history,
		Metrics: MetricsResponse{
			LowestVolume:     q.Metrics.LowestVolume,
			HighestVolume:    q.Metrics.HighestVolume,
			LowestClose:      q.Metrics.LowestClose,
			HighestClose:     q.Metrics.HighestClose,
			AverageVolume:    q.Metrics.AverageVolume,
			CurrentMarketCap: q.Metrics.CurrentMarketCap,
		},
	}
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}
