package headers

import (
	"net/http"

	"braces.dev/errtrace"
)

// Get finds the raw values stored in hdr under H's field name and decodes
// them into an H.
//
// It fails with [ErrNoHeader] when no raw values are present (decode is not
// invoked), with [ErrInvalidHeader] when the type-specific decode fails, and
// with [ErrLeftoverValues] when the decode returned without consuming every
// value and without opting out of the exhaustiveness check. All three are
// distinguishable with [errors.Is]. On any failure the returned H is the
// zero value; Get never returns a partially populated header.
func Get[H Header, PH DecoderOf[H]](hdr http.Header) (H, error) {
	var h H
	name := h.CanonicName().ToCanonic()
	raw := hdr[string(name)]
	if len(raw) == 0 {
		return h, errtrace.Wrap(NewNoHeaderError(string(name)))
	}

	vs := newValues(raw)
	if err := PH(&h).DecodeValues(vs); err != nil {
		var zero H
		return zero, errtrace.Wrap(NewInvalidHeaderError(err))
	}
	// Various headers are only allowed to have a single value, so extra
	// values the decode didn't use are as unsafe as a malformed value.
	if vs.exhaust && vs.leftover() > 0 {
		var zero H
		return zero, errtrace.Wrap(NewLeftoverValuesError("%d unconsumed under %s", vs.leftover(), name))
	}
	return h, nil
}

// Set encodes h and stores the produced raw values in hdr under H's field
// name, replacing any previously stored values.
func Set[H Header](hdr http.Header, h H) {
	to := newToValues(hdr, h.CanonicName())
	h.EncodeValues(to)
}

// Has reports whether hdr stores any raw values under name.
func Has(hdr http.Header, name Name) bool {
	return len(hdr[string(name.ToCanonic())]) > 0
}

// Del removes all raw values stored in hdr under name.
func Del(hdr http.Header, name Name) {
	hdr.Del(string(name))
}
