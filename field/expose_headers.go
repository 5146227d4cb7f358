package field

import (
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/headers"
)

// AccessControlExposeHeaders represents the Access-Control-Expose-Headers
// header field.
// It lists which response header field names the client is allowed to
// access (CORS).
//
// Unlike [AccessControlAllowHeaders], an empty list is a valid value here.
type AccessControlExposeHeaders struct {
	list headers.FlatList
}

// AccessControlExposeHeadersOf builds the header from individual field names.
func AccessControlExposeHeadersOf(names ...headers.Name) AccessControlExposeHeaders {
	items := make([]string, len(names))
	for i, n := range names {
		items[i] = string(n)
	}
	return AccessControlExposeHeaders{list: headers.FlatListOf(items...)}
}

// CanonicName returns the canonical name of the header.
func (AccessControlExposeHeaders) CanonicName() headers.Name {
	return "Access-Control-Expose-Headers"
}

// Names returns an iterator over the exposed field names.
func (hdr AccessControlExposeHeaders) Names() iter.Seq[headers.Name] {
	return func(yield func(headers.Name) bool) {
		for item := range hdr.list.Items() {
			if !yield(headers.Name(item)) {
				return
			}
		}
	}
}

func (hdr AccessControlExposeHeaders) String() string { return hdr.list.String() }

// DecodeValues reads the header from any number of raw values.
// Any element that is not a valid field name fails the whole decode.
func (hdr *AccessControlExposeHeaders) DecodeValues(vs *headers.Values) error {
	l, err := headers.DecodeFlatList(vs, checkFieldName)
	if err != nil {
		return errtrace.Wrap(err)
	}
	hdr.list = l
	return nil
}

// EncodeValues appends the list as a single comma-joined raw value.
func (hdr AccessControlExposeHeaders) EncodeValues(to *headers.ToValues) {
	hdr.list.EncodeValues(to)
}

// Equal compares this header with another for equality.
func (hdr AccessControlExposeHeaders) Equal(val any) bool {
	var other AccessControlExposeHeaders
	switch v := val.(type) {
	case AccessControlExposeHeaders:
		other = v
	case *AccessControlExposeHeaders:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return equalNameLists(hdr.Names(), other.Names())
}
