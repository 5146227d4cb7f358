package headers

import (
	"fmt"
	"net/http"
)

// ToValues is a write-side accumulator over one field name's entry in a
// header map, supplied to an encode routine by [Set].
//
// The first [ToValues.Append] replaces whatever was previously stored under
// the name, so re-inserting a typed header never duplicates stale raw
// values. Every append after that adds another raw value under the same
// name, which lets headers that legitimately repeat (Set-Cookie and the
// like) emit several raw values in one encode call. The transition from
// unwritten to written is one-way; an accumulator is constructed fresh for
// every encode call and must not be retained.
type ToValues struct {
	hdr     http.Header
	name    string
	written bool
}

func newToValues(hdr http.Header, name Name) *ToValues {
	return &ToValues{hdr: hdr, name: string(name.ToCanonic())}
}

// Append adds the raw value to this header's value list.
//
// While this can be called multiple times, most headers should only
// call it once. The exceptions are outliers like Set-Cookie.
func (to *ToValues) Append(v Value) {
	if to.written {
		to.hdr.Add(to.name, v.String())
		return
	}
	to.hdr.Set(to.name, v.String())
	to.written = true
}

// AppendFormatted formats v with the fmt package and appends the result.
//
// Encoding is expected to be infallible: a header type must only ever format
// text that is a legal field value. AppendFormatted panics otherwise,
// because such a failure is a defect in the type's own formatting logic,
// not a condition its callers could recover from.
func (to *ToValues) AppendFormatted(v any) {
	s := fmt.Sprint(v)
	val, err := NewValue(s)
	if err != nil {
		panic(fmt.Errorf("encode %q: %w", to.name, err))
	}
	to.Append(val)
}
