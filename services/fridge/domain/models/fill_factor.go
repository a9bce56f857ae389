package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ghuser/fridgekeeper/services/fridge/domain"
)

// FillFactor is a value object representing how full a single item is.
// Encapsulates validation rules: 0.0 <= fill <= 1.0.
type FillFactor float64

const (
	minFillFactor = 0.0
	maxFillFactor = 1.0
)

// NewFillFactor constructs a valid FillFactor or returns an error wrapping
// domain.ErrInvalidFillFactor if the value is out of range.
func NewFillFactor(v float64) (FillFactor, error) {
	if math.IsNaN(v) {
		return 0, fmt.Errorf("%w: fill factor must be a number", domain.ErrInvalidFillFactor)
	}
	if v < minFillFactor {
		return 0, fmt.Errorf("%w: fill factor %v must be >= %.1f", domain.ErrInvalidFillFactor, v, minFillFactor)
	}
	if v > maxFillFactor {
		return 0, fmt.Errorf("%w: fill factor %v must be <= %.1f", domain.ErrInvalidFillFactor, v, maxFillFactor)
	}
	return FillFactor(v), nil
}

// Float64 returns the underlying value.
func (f FillFactor) Float64() float64 {
	return float64(f)
}

// String renders the shortest decimal form, keeping a trailing ".0" on
// whole numbers (1.0, 0.0) so diagnostics read the same for every value.
func (f FillFactor) String() string {
	s := strconv.FormatFloat(float64(f), 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
