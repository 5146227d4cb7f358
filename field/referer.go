package field

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/headers"
)

// Referer represents the Referer header field.
// The Referer [sic] header field allows the user agent to specify a URI
// reference for the resource from which the target URI was obtained.
// RFC 7231 Section 5.5.2.
//
// The value is opaque at this layer; no URI syntax is enforced.
type Referer struct {
	val headers.Value
}

// NewReferer validates s and returns it as a Referer.
func NewReferer[T ~string](s T) (Referer, error) {
	v, err := headers.NewValue(s)
	if err != nil {
		return Referer{}, errtrace.Wrap(err)
	}
	return Referer{val: v}, nil
}

// MustReferer is like [NewReferer] but panics on an illegal value.
// It is intended for static values known to be legal at compile time.
func MustReferer[T ~string](s T) Referer {
	return Referer{val: headers.MustValue(s)}
}

// CanonicName returns the canonical name of the header.
func (Referer) CanonicName() headers.Name { return "Referer" }

// Value returns the raw header value.
func (hdr Referer) Value() headers.Value { return hdr.val }

func (hdr Referer) String() string { return hdr.val.String() }

// DecodeValues reads the header from exactly one raw value.
func (hdr *Referer) DecodeValues(vs *headers.Values) error {
	v, err := headers.SingleValue(vs)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hdr.val = v
	return nil
}

// EncodeValues appends the stored raw value verbatim.
func (hdr Referer) EncodeValues(to *headers.ToValues) {
	to.Append(hdr.val)
}

// Equal compares this header with another for equality.
func (hdr Referer) Equal(val any) bool {
	var other Referer
	switch v := val.(type) {
	case Referer:
		other = v
	case *Referer:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.val.Equal(other.val)
}
