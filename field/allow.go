package field

import (
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/headers"
	"github.com/ghettovoice/headers/internal/errorutil"
	"github.com/ghettovoice/headers/internal/grammar"
)

// Allow represents the Allow header field.
// The Allow header field lists the set of methods advertised as supported by
// the target resource. RFC 7231 Section 7.4.1.
//
// An empty Allow means all methods are disallowed; it encodes to an empty
// field value and decodes back to a non-nil header of length 0.
type Allow []string

// CanonicName returns the canonical name of the header.
func (Allow) CanonicName() headers.Name { return "Allow" }

// Methods returns the method names.
func (hdr Allow) Methods() []string { return hdr }

func (hdr Allow) String() string { return headers.FlatListOf(hdr...).String() }

// DecodeValues reads the header from any number of raw values, each itself
// possibly a comma-separated list of method tokens.
func (hdr *Allow) DecodeValues(vs *headers.Values) error {
	l, err := headers.DecodeFlatList(vs, checkMethod)
	if err != nil {
		return errtrace.Wrap(err)
	}
	methods := make(Allow, 0)
	for item := range l.Items() {
		methods = append(methods, item)
	}
	*hdr = methods
	return nil
}

// EncodeValues appends the method list as a single comma-joined raw value.
func (hdr Allow) EncodeValues(to *headers.ToValues) {
	headers.FlatListOf(hdr...).EncodeValues(to)
}

// Equal compares this header with another for equality.
func (hdr Allow) Equal(val any) bool {
	var other Allow
	switch v := val.(type) {
	case Allow:
		other = v
	case *Allow:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return slices.Equal(hdr, other)
}

// IsValid checks whether every method name is a token.
func (hdr Allow) IsValid() bool {
	return hdr != nil && !slices.ContainsFunc(hdr, func(m string) bool { return !grammar.IsToken(m) })
}

func checkMethod(item string) error {
	if !grammar.IsToken(item) {
		return errtrace.Wrap(errorutil.Errorf("invalid method %q", item))
	}
	return nil
}
