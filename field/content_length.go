package field

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/headers"
	"github.com/ghettovoice/headers/internal/errorutil"
)

// ContentLength represents the Content-Length header field.
// The Content-Length header field indicates the size of the message body in
// decimal number of octets. RFC 7230 Section 3.3.2.
type ContentLength uint64

// CanonicName returns the canonical name of the header.
func (ContentLength) CanonicName() headers.Name { return "Content-Length" }

func (hdr ContentLength) String() string { return strconv.FormatUint(uint64(hdr), 10) }

// DecodeValues reads the header from exactly one decimal raw value.
// Several raw values under Content-Length are rejected by the exhaustiveness
// check, since conflicting lengths cannot be reconciled safely.
func (hdr *ContentLength) DecodeValues(vs *headers.Values) error {
	v, err := headers.SingleValue(vs)
	if err != nil {
		return errtrace.Wrap(err)
	}
	n, err := strconv.ParseUint(v.String(), 10, 64)
	if err != nil {
		return errtrace.Wrap(errorutil.Errorf("invalid content length %q", v))
	}
	*hdr = ContentLength(n)
	return nil
}

// EncodeValues appends the length as a single decimal raw value.
func (hdr ContentLength) EncodeValues(to *headers.ToValues) {
	to.AppendFormatted(uint64(hdr))
}

// Equal compares this header with another for equality.
func (hdr ContentLength) Equal(val any) bool {
	var other ContentLength
	switch v := val.(type) {
	case ContentLength:
		other = v
	case *ContentLength:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr == other
}
