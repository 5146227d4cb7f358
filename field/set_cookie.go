package field

import (
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/headers"
)

// SetCookie represents the Set-Cookie header field.
// Set-Cookie is one of the few header fields that legitimately repeats:
// each cookie is carried as its own raw value and the values must never be
// folded into a comma-joined list (RFC 6265 Section 3).
//
// Cookie strings are opaque at this layer; no cookie-pair syntax is
// enforced.
type SetCookie []headers.Value

// NewSetCookie validates every cookie string and returns them as a
// SetCookie.
func NewSetCookie[T ~string](cookies ...T) (SetCookie, error) {
	hdr := make(SetCookie, len(cookies))
	for i, c := range cookies {
		v, err := headers.NewValue(c)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		hdr[i] = v
	}
	return hdr, nil
}

// CanonicName returns the canonical name of the header.
func (SetCookie) CanonicName() headers.Name { return "Set-Cookie" }

// Cookies returns the individual cookie values.
func (hdr SetCookie) Cookies() []headers.Value { return hdr }

// DecodeValues reads every raw value as one cookie, preserving order.
func (hdr *SetCookie) DecodeValues(vs *headers.Values) error {
	cookies := make(SetCookie, 0, 1)
	for v := range vs.All() {
		cookies = append(cookies, v)
	}
	*hdr = cookies
	return nil
}

// EncodeValues appends one raw value per cookie.
// Encoding an empty SetCookie is a contract violation: an encode routine
// must append at least one value.
func (hdr SetCookie) EncodeValues(to *headers.ToValues) {
	for _, c := range hdr {
		to.Append(c)
	}
}

// Equal compares this header with another for equality.
func (hdr SetCookie) Equal(val any) bool {
	var other SetCookie
	switch v := val.(type) {
	case SetCookie:
		other = v
	case *SetCookie:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.EqualFunc(hdr, other, func(c1, c2 headers.Value) bool { return c1.Equal(c2) })
}
