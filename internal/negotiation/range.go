package negotiation

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a submitted salary range is malformed.
// Callers are expected to reject such input before the matching engine runs.
var ErrInvalidRange = errors.New("invalid salary range")

// Range is a closed salary interval [Min, Max] in the currency's minor
// units (e.g. cents). Both bounds are inclusive.
type Range struct {
	Min int64
	Max int64
}

// Validate checks that the range is a non-degenerate closed interval of
// positive monetary amounts.
func (r Range) Validate() error {
	if r.Min <= 0 || r.Max <= 0 {
		return fmt.Errorf("%w: bounds must be positive", ErrInvalidRange)
	}
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v int64) bool {
	return r.Min <= v && v <= r.Max
}
