// Package scoring maps hit locations to the points a tag is worth.
package scoring

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownLocation is returned for location codes missing from the table.
var ErrUnknownLocation = errors.New("unknown hit location")

// Option applies a configuration option to the HitValueTable.
type Option func(*HitValueTable)

// WithValues overrides or extends the default values. Non-positive values are
// ignored so a partial config cannot zero out a location.
func WithValues(values map[int]int) Option {
	return func(t *HitValueTable) {
		for code, points := range values {
			if points > 0 {
				t.values[code] = points
			}
		}
	}
}

// HitValueTable resolves location codes to point values.
// It is read-only once constructed.
type HitValueTable struct {
	values map[int]int
}

// DefaultValues returns a copy of the built-in location values, keyed by the
// location code recorded by the vests.
func DefaultValues() map[int]int {
	return map[int]int{1: 5, 2: 8, 3: 10, 4: 15}
}

// NewHitValueTable creates a table seeded with DefaultValues.
func NewHitValueTable(opts ...Option) *HitValueTable {
	t := &HitValueTable{values: DefaultValues()}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// ValueOf returns the points for a location code.
func (t *HitValueTable) ValueOf(code int) (int, error) {
	points, ok := t.values[code]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownLocation, code)
	}
	return points, nil
}

// Codes returns the known location codes in ascending order.
func (t *HitValueTable) Codes() []int {
	codes := make([]int, 0, len(t.values))
	for code := range t.values {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}
