package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidLength is returned for length strings that cannot be parsed or
// that are negative or not finite.
var ErrInvalidLength = errors.New("invalid length")

// Unit is the unit of a Length.
type Unit int

const (
	Cells Unit = iota
	Percent
)

// Length is a non-negative CSS-style distance. Cells are absolute; Percent
// resolves against a reference extent supplied by the caller.
type Length struct {
	Value float64
	Unit  Unit
}

// CellsOf returns an absolute Length.
func CellsOf(v float64) Length {
	return Length{Value: v, Unit: Cells}
}

// PercentOf returns a relative Length.
func PercentOf(v float64) Length {
	return Length{Value: v, Unit: Percent}
}

// IsZero reports whether l resolves to zero for every reference extent.
func (l Length) IsZero() bool {
	return l.Value == 0
}

// Resolve converts l to cells. ref is the extent a percentage refers to.
func (l Length) Resolve(ref float64) float64 {
	if l.Unit == Percent {
		return l.Value / 100 * ref
	}
	return l.Value
}

func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Unit == Percent {
		return v + "%"
	}
	return v
}

// ParseLength accepts "10", "10px", "10c", "10cell", "10cells" and "25%".
// Pixels are treated as cells. The empty string is the zero length.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return Length{}, nil
	}
	unit := Cells
	num := s
	switch {
	case strings.HasSuffix(s, "%"):
		unit = Percent
		num = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "cells"):
		num = strings.TrimSuffix(s, "cells")
	case strings.HasSuffix(s, "cell"):
		num = strings.TrimSuffix(s, "cell")
	case strings.HasSuffix(s, "px"):
		num = strings.TrimSuffix(s, "px")
	case strings.HasSuffix(s, "c"):
		num = strings.TrimSuffix(s, "c")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, s)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Length{}, fmt.Errorf("%w: %q is not finite", ErrInvalidLength, s)
	}
	if v < 0 {
		return Length{}, fmt.Errorf("%w: %q is negative", ErrInvalidLength, s)
	}
	return Length{Value: v, Unit: unit}, nil
}
