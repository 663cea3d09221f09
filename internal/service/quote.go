package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/guttosm/quotepulse/internal/domain/models"
	"github.com/guttosm/quotepulse/internal/logger"
	"github.com/guttosm/quotepulse/internal/provider"
)

// HistoryWindowDays is the length of the historical window in calendar days,
// ending at request time. Which dates appear inside it is up to the
// provider's trading calendar.
const HistoryWindowDays = 30

//go:generate mockgen -destination=../api/mock_quote_service_test.go -package=api -source=quote.go QuoteService

// QuoteService defines the quote lookup consumed by the HTTP layer.
type QuoteService interface {
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
}

type quoteService struct {
	provider provider.Provider
	parallel bool
	now      func() time.Time
}

// NewQuoteService builds a QuoteService on top of p. When parallel is true
// the snapshot and history calls run concurrently.
func NewQuoteService(p provider.Provider, parallel bool) QuoteService {
	return &quoteService{provider: p, parallel: parallel, now: time.Now}
}

// GetQuote fetches snapshot and history for symbol, normalizes the history,
// computes metrics and assembles the result.
//
// Errors are always *QuoteError:
//   - KindNotFound when the snapshot or the history is empty.
//   - KindCoercion when a historical value cannot be converted.
//   - KindInternal for provider failures and anything else.
func (s *quoteService) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	log := logger.Ctx(ctx).With().Str("symbol", symbol).Str("provider", s.provider.Name()).Logger()

	end := s.now()
	start := end.AddDate(0, 0, -HistoryWindowDays)

	res := s.fetch(ctx, symbol, start, end)
	snap, bars := res.snap, res.bars

	// snapshot outcome is evaluated first so parallel and sequential fetches report the same error
	if err := s.checkSnapshot(symbol, snap, res.snapErr); err != nil {
		logFailure(&log, err)
		return nil, err
	}
	log.Info().Str("stage", StageSnapshot).Msg("snapshot fetched")

	if err := s.checkHistory(symbol, bars, res.histErr); err != nil {
		logFailure(&log, err)
		return nil, err
	}
	log.Info().Str("stage", StageHistory).Int("bars", len(bars)).Msg("history fetched")

	records, err := NormalizeBars(bars)
	if err != nil {
		qe := &QuoteError{Kind: KindCoercion, Symbol: symbol, Stage: StageNormalize, Err: err}
		logFailure(&log, qe)
		return nil, qe
	}
	log.Info().Str("stage", StageNormalize).Int("records", len(records)).Msg("history normalized")

	metrics, err := ComputeMetrics(records, snap.MarketCap)
	if err != nil {
		qe := &QuoteError{Kind: KindInternal, Symbol: symbol, Stage: StageMetrics, Err: err}
		logFailure(&log, qe)
		return nil, qe
	}
	log.Info().Str("stage", StageMetrics).Msg("metrics computed")

	return &models.Quote{
		Symbol:         symbol,
		Name:           snap.DisplayName(symbol),
		CurrentPrice:   snap.CurrentPrice,
		Change:         snap.ChangePercent,
		Volume:         snap.Volume,
		MarketCap:      snap.MarketCap,
		HistoricalData: records,
		Metrics:        metrics,
	}, nil
}

// fetchResult carries both provider outcomes of a lookup.
type fetchResult struct {
	snap    *models.Snapshot
	bars    []models.Bar
	snapErr error
	histErr error
}

// fetch runs both provider calls, concurrently when enabled. Neither call
// cancels the other; both outcomes are returned. The sequential path skips
// the history call once the snapshot has failed.
func (s *quoteService) fetch(ctx context.Context, symbol string, start, end time.Time) fetchResult {
	var res fetchResult

	if !s.parallel {
		res.snap, res.snapErr = s.provider.Snapshot(ctx, symbol)
		if res.snapErr != nil || res.snap.IsEmpty() {
			return res
		}
		res.bars, res.histErr = s.provider.History(ctx, symbol, start, end)
		return res
	}

	var g errgroup.Group
	g.Go(func() error {
		res.snap, res.snapErr = s.provider.Snapshot(ctx, symbol)
		return nil
	})
	g.Go(func() error {
		res.bars, res.histErr = s.provider.History(ctx, symbol, start, end)
		return nil
	})
	_ = g.Wait()

	return res
}

func (s *quoteService) checkSnapshot(symbol string, snap *models.Snapshot, err error) error {
	switch {
	case errors.Is(err, provider.ErrNotFound):
		return &QuoteError{Kind: KindNotFound, Symbol: symbol, Stage: StageSnapshot, Err: err}
	case err != nil:
		return &QuoteError{Kind: KindInternal, Symbol: symbol, Stage: StageSnapshot, Err: err}
	case snap.IsEmpty():
		return &QuoteError{Kind: KindNotFound, Symbol: symbol, Stage: StageSnapshot}
	}
	return nil
}

func (s *quoteService) checkHistory(symbol string, bars []models.Bar, err error) error {
	switch {
	case errors.Is(err, provider.ErrNotFound):
		return &QuoteError{Kind: KindNotFound, Symbol: symbol, Stage: StageHistory, Err: err}
	case err != nil:
		return &QuoteError{Kind: KindInternal, Symbol: symbol, Stage: StageHistory, Err: err}
	case len(bars) == 0:
		return &QuoteError{Kind: KindNotFound, Symbol: symbol, Stage: StageHistory}
	}
	return nil
}

func logFailure(log *zerolog.Logger, err error) {
	var qe *QuoteError
	if errors.As(err, &qe) {
		log.Error().Str("stage", qe.Stage).Str("kind", qe.Kind.String()).Err(qe.Err).Msg(qe.Error())
		return
	}
	log.Error().Err(err).Msg("quote failed")
}
