package service

import "github.com/guttosm/quotepulse/internal/domain/models"

// ComputeMetrics aggregates a non-empty historical window.
//
// Min/max compare values only, so ties resolve to the same value regardless
// of position. AverageVolume is float64(sum)/float64(count) with the sum
// accumulated exactly in int64.
func ComputeMetrics(records []models.HistoricalRecord, marketCap *int64) (models.Metrics, error) {
	if len(records) == 0 {
		return models.Metrics{}, ErrEmptyHistory
	}

	first := records[0]
	m := models.Metrics{
		LowestVolume:     first.Volume,
		HighestVolume:    first.Volume,
		LowestClose:      first.Close,
		HighestClose:     first.Close,
		CurrentMarketCap: marketCap,
	}

	var sum int64
	for _, r := range records {
		if r.Volume < m.LowestVolume {
			m.LowestVolume = r.Volume
		}
		if r.Volume > m.HighestVolume {
			m.HighestVolume = r.Volume
		}
		if r.Close < m.LowestClose {
			m.LowestClose = r.Close
		}
		if r.Close > m.HighestClose {
			m.HighestClose = r.Close
		}
		sum += r.Volume
	}
	m.AverageVolume = float64(sum) / float64(len(records))

	return m, nil
}
