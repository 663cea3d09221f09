package provider

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/quotepulse/internal/domain/models"
)

// ErrNotFound is returned when the upstream source has no data for a symbol.
// Any other error from a Provider is treated as a transport/availability failure.
var ErrNotFound = errors.New("no data for symbol")

// Provider is the market-data source behind the quote service.
//
// Implementations must be safe for concurrent use: the service calls
// Snapshot and History for many requests at once, and may call both
// concurrently for the same request.
type Provider interface {
	// Name identifies the implementation in logs.
	Name() string

	// Snapshot returns the current descriptive fields for symbol.
	Snapshot(ctx context.Context, symbol string) (*models.Snapshot, error)

	// History returns daily bars in chronological order for [start, end].
	History(ctx context.Context, symbol string, start, end time.Time) ([]models.Bar, error)

	// Close releases idle connections held by the provider.
	Close() error
}
