package field

import (
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/headers"
	"github.com/ghettovoice/headers/internal/errorutil"
)

// AccessControlAllowHeaders represents the Access-Control-Allow-Headers
// header field.
// It indicates, as part of the response to a preflight request, which header
// field names can be used during the actual request (CORS).
type AccessControlAllowHeaders struct {
	list headers.FlatList
}

// AccessControlAllowHeadersOf builds the header from individual field names.
func AccessControlAllowHeadersOf(names ...headers.Name) AccessControlAllowHeaders {
	items := make([]string, len(names))
	for i, n := range names {
		items[i] = string(n)
	}
	return AccessControlAllowHeaders{list: headers.FlatListOf(items...)}
}

// CanonicName returns the canonical name of the header.
func (AccessControlAllowHeaders) CanonicName() headers.Name {
	return "Access-Control-Allow-Headers"
}

// Names returns an iterator over the allowed field names.
func (hdr AccessControlAllowHeaders) Names() iter.Seq[headers.Name] {
	return func(yield func(headers.Name) bool) {
		for item := range hdr.list.Items() {
			if !yield(headers.Name(item)) {
				return
			}
		}
	}
}

func (hdr AccessControlAllowHeaders) String() string { return hdr.list.String() }

// DecodeValues reads the header from any number of raw values, each itself
// possibly a comma-separated list. Any element that is not a valid field
// name fails the whole decode.
func (hdr *AccessControlAllowHeaders) DecodeValues(vs *headers.Values) error {
	l, err := headers.DecodeFlatList(vs, checkFieldName)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if l.IsEmpty() {
		return errtrace.Wrap(errorutil.Error("empty header name list"))
	}
	hdr.list = l
	return nil
}

// EncodeValues appends the list as a single comma-joined raw value.
func (hdr AccessControlAllowHeaders) EncodeValues(to *headers.ToValues) {
	hdr.list.EncodeValues(to)
}

// Equal compares this header with another for equality.
// Field names are compared case-insensitively, element by element.
func (hdr AccessControlAllowHeaders) Equal(val any) bool {
	var other AccessControlAllowHeaders
	switch v := val.(type) {
	case AccessControlAllowHeaders:
		other = v
	case *AccessControlAllowHeaders:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return equalNameLists(hdr.Names(), other.Names())
}

// IsValid checks whether every element is a syntactically valid field name.
func (hdr AccessControlAllowHeaders) IsValid() bool {
	for n := range hdr.Names() {
		if !n.IsValid() {
			return false
		}
	}
	return !hdr.list.IsEmpty()
}

func checkFieldName(item string) error {
	if !headers.Name(item).IsValid() {
		return errtrace.Wrap(errorutil.Errorf("invalid header name %q", item))
	}
	return nil
}

func equalNameLists(names1, names2 iter.Seq[headers.Name]) bool {
	next, stop := iter.Pull(names2)
	defer stop()
	for n := range names1 {
		o, ok := next()
		if !ok || !n.Equal(o) {
			return false
		}
	}
	_, ok := next()
	return !ok
}
