package headers

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/headers/internal/grammar"
	"github.com/ghettovoice/headers/internal/util"
)

// Value represents a raw header field value that is known to satisfy the
// field-value grammar: no CR or LF octets and no control octets except HTAB.
//
// The only way to obtain a Value from free-form text is [NewValue] (or
// [MustValue]), which validates once at construction. Values read back from
// a header map are trusted as-is, because the transport that owns the map
// guarantees their legality.
type Value struct {
	raw string
}

// NewValue validates s and returns it wrapped as a Value.
// It fails with [ErrInvalidValue] if s contains octets that are illegal in
// a header field value.
func NewValue[T ~string](s T) (Value, error) {
	if !grammar.IsFieldValue(s) {
		return Value{}, errtrace.Wrap(NewInvalidValueError(string(s)))
	}
	return Value{raw: string(s)}, nil
}

// MustValue is like [NewValue] but panics on an illegal value.
// It is intended for static values known to be legal at compile time.
func MustValue[T ~string](s T) Value {
	return util.Must2(NewValue(s))
}

// trustedValue wraps a value already owned by a header map without
// re-validating it.
func trustedValue(s string) Value { return Value{raw: s} }

func (v Value) String() string { return v.raw }

// IsZero reports whether v is the zero Value.
// Note that a legal empty field value and the zero Value are the same.
func (v Value) IsZero() bool { return v.raw == "" }

// Equal compares this Value with another for equality.
func (v Value) Equal(val any) bool {
	var other Value
	switch o := val.(type) {
	case Value:
		other = o
	case *Value:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}
	return v.raw == other.raw
}
