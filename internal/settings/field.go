package settings

import (
	"errors"
	"fmt"
)

// Errors reported by settings forms
var (
	ErrUnknownField = errors.New("unknown field")
	ErrOutOfRange   = errors.New("value out of range")
	ErrInvalidColor = errors.New("invalid color")
	ErrInvalidDate  = errors.New("invalid date")
)

// Field is a bounded integer parameter, the model behind one slider
type Field struct {
	Name  string
	Label string
	Unit  string
	Min   int
	Max   int
	Value int
}

// Set stores v clamped to [Min, Max]. It reports whether v had to be clamped.
func (f *Field) Set(v int) bool {
	switch {
	case v < f.Min:
		f.Value = f.Min
		return true
	case v > f.Max:
		f.Value = f.Max
		return true
	default:
		f.Value = v
		return false
	}
}

// OutOfRange describes an assignment of requested that Set had to clamp
func (f *Field) OutOfRange(requested int) error {
	return fmt.Errorf("%w: %s=%d outside [%d, %d], using %d", ErrOutOfRange, f.Name, requested, f.Min, f.Max, f.Value)
}

// Fraction returns the position of Value within the range, from 0 to 1
func (f *Field) Fraction() float64 {
	if f.Max <= f.Min {
		return 1
	}
	return float64(f.Value-f.Min) / float64(f.Max-f.Min)
}

// Values is a snapshot of field values keyed by field name
type Values map[string]int
