package headers

import (
	"iter"

	"braces.dev/errtrace"
)

// Values is a read-side cursor over the raw values stored under one field
// name, supplied to a decode routine by [Get].
//
// A cursor is single-use: it snapshots the value list at open time and does
// not observe later mutations of the header map. It must not be retained
// beyond the decode call it was created for.
//
// After the decode routine returns, [Get] verifies that the cursor was fully
// consumed, unless the routine called [Values.SkipExhaustCheck]. A decoder
// that does not know how to interpret extra values must not silently pretend
// only the first was present.
type Values struct {
	vals    []string
	head    int
	tail    int
	exhaust bool
}

func newValues(vals []string) *Values {
	return &Values{vals: vals, tail: len(vals), exhaust: true}
}

// Next advances the cursor and returns the next raw value,
// or false if the cursor is exhausted.
func (vs *Values) Next() (Value, bool) {
	if vs.head >= vs.tail {
		return Value{}, false
	}
	v := vs.vals[vs.head]
	vs.head++
	return trustedValue(v), true
}

// NextBack is like [Values.Next] but consumes values from the tail.
// It lets a decoder with last-value-wins semantics read the final value
// without draining the whole cursor first.
func (vs *Values) NextBack() (Value, bool) {
	if vs.head >= vs.tail {
		return Value{}, false
	}
	vs.tail--
	return trustedValue(vs.vals[vs.tail]), true
}

// NextOrErr is a convenience for decoders that require at least one value.
// It fails with [ErrEmptyHeader] when the cursor is already exhausted.
func (vs *Values) NextOrErr() (Value, error) {
	v, ok := vs.Next()
	if !ok {
		return Value{}, errtrace.Wrap(ErrEmptyHeader)
	}
	return v, nil
}

// All returns an iterator draining the remaining values front to back.
func (vs *Values) All() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for {
			v, ok := vs.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// SkipExhaustCheck marks the remaining values as deliberately ignored.
//
// By default [Get] fails when a decode routine returns with values still
// unconsumed. Call this only when it is valid to have ignored some values.
func (vs *Values) SkipExhaustCheck() { vs.exhaust = false }

// leftover reports the number of unconsumed values.
func (vs *Values) leftover() int { return vs.tail - vs.head }
