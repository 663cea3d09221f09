package service

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

const dateLayout = "2006-01-02"

// NormalizeBars converts raw provider bars into HistoricalRecords, preserving order.
//
// Behavior:
//   - Date is the bar's calendar day (YYYY-MM-DD) in the bar's own location.
//   - Open/High/Low/Close must be present and finite as float64.
//   - Volume must be present, integral and fit in int64.
//
// Returns the first *CoercionError encountered.
func NormalizeBars(bars []models.Bar) ([]models.HistoricalRecord, error) {
	out := make([]models.HistoricalRecord, 0, len(bars))
	for i, b := range bars {
		open, err := toFloat(i, "open", b.Open)
		if err != nil {
			return nil, err
		}
		high, err := toFloat(i, "high", b.High)
		if err != nil {
			return nil, err
		}
		low, err := toFloat(i, "low", b.Low)
		if err != nil {
			return nil, err
		}
		closePrice, err := toFloat(i, "close", b.Close)
		if err != nil {
			return nil, err
		}
		volume, err := toInt(i, "volume", b.Volume)
		if err != nil {
			return nil, err
		}

		out = append(out, models.HistoricalRecord{
			Date:   b.Time.Format(dateLayout),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closePrice,
			Volume: volume,
		})
	}
	return out, nil
}

func toFloat(i int, field string, v decimal.NullDecimal) (float64, error) {
	if !v.Valid {
		return 0, &CoercionError{Index: i, Field: field}
	}
	f, _ := v.Decimal.Float64()
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, &CoercionError{Index: i, Field: field, Value: v.Decimal.String()}
	}
	return f, nil
}

var (
	maxInt64 = decimal.NewFromInt(math.MaxInt64)
	minInt64 = decimal.NewFromInt(math.MinInt64)
)

func toInt(i int, field string, v decimal.NullDecimal) (int64, error) {
	if !v.Valid {
		return 0, &CoercionError{Index: i, Field: field}
	}
	d := v.Decimal
	if !d.Equal(d.Truncate(0)) || d.GreaterThan(maxInt64) || d.LessThan(minInt64) {
		return 0, &CoercionError{Index: i, Field: field, Value: d.String()}
	}
	return d.IntPart(), nil
}
