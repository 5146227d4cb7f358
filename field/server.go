package field

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/headers"
)

// Server represents the Server header field.
// The Server header field contains information about the software used by
// the origin server to handle the request. RFC 7231 Section 7.4.2.
//
// The product list is kept opaque at this layer.
type Server struct {
	val headers.Value
}

// NewServer validates s and returns it as a Server.
func NewServer[T ~string](s T) (Server, error) {
	v, err := headers.NewValue(s)
	if err != nil {
		return Server{}, errtrace.Wrap(err)
	}
	return Server{val: v}, nil
}

// MustServer is like [NewServer] but panics on an illegal value.
func MustServer[T ~string](s T) Server {
	return Server{val: headers.MustValue(s)}
}

// CanonicName returns the canonical name of the header.
func (Server) CanonicName() headers.Name { return "Server" }

// Value returns the raw header value.
func (hdr Server) Value() headers.Value { return hdr.val }

func (hdr Server) String() string { return hdr.val.String() }

// DecodeValues reads the header from exactly one raw value.
func (hdr *Server) DecodeValues(vs *headers.Values) error {
	v, err := headers.SingleValue(vs)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hdr.val = v
	return nil
}

// EncodeValues appends the stored raw value verbatim.
func (hdr Server) EncodeValues(to *headers.ToValues) {
	to.Append(hdr.val)
}

// Equal compares this header with another for equality.
func (hdr Server) Equal(val any) bool {
	var other Server
	switch v := val.(type) {
	case Server:
		other = v
	case *Server:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return hdr.val.Equal(other.val)
}
