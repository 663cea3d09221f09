package service

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed quote lookup for the transport layer.
type ErrorKind int

const (
	// KindInternal covers provider transport failures and anything unexpected.
	KindInternal ErrorKind = iota
	// KindNotFound means the provider had no snapshot or no history for the symbol.
	KindNotFound
	// KindCoercion means provider data could not be converted to the response types.
	KindCoercion
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindCoercion:
		return "coercion"
	default:
		return "internal"
	}
}

// Stages of a quote lookup, used in errors and logs.
const (
	StageSnapshot  = "snapshot"
	StageHistory   = "history"
	StageNormalize = "normalize"
	StageMetrics   = "metrics"
)

// QuoteError is the only error type returned by QuoteService.GetQuote.
type QuoteError struct {
	Kind   ErrorKind
	Symbol string
	Stage  string
	Err    error
}

func (e *QuoteError) Error() string {
	switch {
	case e.Kind == KindNotFound && e.Stage == StageHistory:
		return fmt.Sprintf("No historical data found for symbol %s", e.Symbol)
	case e.Kind == KindNotFound:
		return fmt.Sprintf("No data found for symbol %s", e.Symbol)
	case e.Err != nil:
		return fmt.Sprintf("Error fetching data for %s: %s: %v", e.Symbol, e.Stage, e.Err)
	default:
		return fmt.Sprintf("Error fetching data for %s: %s", e.Symbol, e.Stage)
	}
}

func (e *QuoteError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a not-found QuoteError.
func IsNotFound(err error) bool {
	var qe *QuoteError
	return errors.As(err, &qe) && qe.Kind == KindNotFound
}

// CoercionError reports a historical bar field that is missing or not
// representable in the response type.
type CoercionError struct {
	Index int    // position in the provider series
	Field string // open|high|low|close|volume
	Value string // offending value, empty when missing
}

func (e *CoercionError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("record %d: %s is missing", e.Index, e.Field)
	}
	return fmt.Sprintf("record %d: %s %q is not valid", e.Index, e.Field, e.Value)
}

// ErrEmptyHistory is returned by ComputeMetrics for an empty window.
var ErrEmptyHistory = errors.New("empty historical window")
