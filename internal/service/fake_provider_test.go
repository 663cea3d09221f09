package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/provider"
)

type fakeProvider struct {
	snap    *models.Snapshot
	snapErr error
	bars    []models.Bar
	histErr error

	snapCalls atomic.Int32
	histCalls atomic.Int32
	gotStart  time.Time
	gotEnd    time.Time
}

var _ provider.Provider = (*fakeProvider)(nil)

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Snapshot(_ context.Context, _ string) (*models.Snapshot, error) {
	f.snapCalls.Add(1)
	return f.snap, f.snapErr
}

func (f *fakeProvider) History(_ context.Context, _ string, start, end time.Time) ([]models.Bar, error) {
	f.histCalls.Add(1)
	f.gotStart, f.gotEnd = start, end
	return f.bars, f.histErr
}

func (f *fakeProvider) Close() error { return nil }

// fresh returns a copy with the same canned responses and zeroed counters.
func (f *fakeProvider) fresh() *fakeProvider {
	return &fakeProvider{snap: f.snap, snapErr: f.snapErr, bars: f.bars, histErr: f.histErr}
}

func nd(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.RequireFromString(s), Valid: true}
}

// bar builds a valid daily bar; day is the day of May 2024.
func bar(day int, closePrice string, volume int64) models.Bar {
	return models.Bar{
		Time:   time.Date(2024, 5, day, 13, 30, 0, 0, time.UTC),
		Open:   nd(closePrice),
		High:   nd(closePrice),
		Low:    nd(closePrice),
		Close:  nd(closePrice),
		Volume: decimal.NullDecimal{Decimal: decimal.NewFromInt(volume), Valid: true},
	}
}

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }
