package models

// Snapshot is the descriptive, point-in-time view of a symbol returned by a
// market-data provider.
//
// Every field is optional. Numeric fields left nil were not supplied by the
// provider and serialize as JSON null; they are never replaced by zero.
//
// swagger:model Snapshot
type Snapshot struct {
	CurrentPrice  *float64 // Last regular-market price
	LongName      string   // Full company name, e.g. "Apple Inc."
	ShortName     string   // Abbreviated name, used when LongName is empty
	ChangePercent *float64 // Regular-market change in percent
	Volume        *int64   // Regular-market volume
	MarketCap     *int64   // Market capitalization
	DayHigh       *float64
	DayLow        *float64
	Open          *float64
	PreviousClose *float64
}

// IsEmpty reports whether the provider supplied no usable field at all.
func (s *Snapshot) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.CurrentPrice == nil &&
		s.LongName == "" &&
		s.ShortName == "" &&
		s.ChangePercent == nil &&
		s.Volume == nil &&
		s.MarketCap == nil &&
		s.DayHigh == nil &&
		s.DayLow == nil &&
		s.Open == nil &&
		s.PreviousClose == nil
}

// DisplayName returns the best descriptive name available, falling back to symbol.
func (s *Snapshot) DisplayName(symbol string) string {
	if s != nil {
		if s.LongName != "" {
			return s.LongName
		}
		if s.ShortName != "" {
			return s.ShortName
		}
	}
	return symbol
}
