package field

import (
	"iter"

	"braces.dev/errtrace"

	"github.com/ghettovoice/headers"
	"github.com/ghettovoice/headers/internal/errorutil"
)

// Vary represents the Vary header field.
// The Vary header field describes which request header fields the server
// used when selecting the response representation. RFC 7231 Section 7.1.4.
type Vary struct {
	list headers.FlatList
}

// VaryOf builds the header from individual field names.
func VaryOf(names ...headers.Name) Vary {
	items := make([]string, len(names))
	for i, n := range names {
		items[i] = string(n)
	}
	return Vary{list: headers.FlatListOf(items...)}
}

// VaryAny returns the wildcard form "Vary: *".
func VaryAny() Vary {
	return Vary{list: headers.FlatListOf("*")}
}

// CanonicName returns the canonical name of the header.
func (Vary) CanonicName() headers.Name { return "Vary" }

// Names returns an iterator over the field names, in canonical form.
func (hdr Vary) Names() iter.Seq[headers.Name] {
	return func(yield func(headers.Name) bool) {
		for item := range hdr.list.Items() {
			if item == "*" {
				if !yield("*") {
					return
				}
				continue
			}
			if !yield(headers.CanonicName(item)) {
				return
			}
		}
	}
}

// IsAny reports whether the header carries the wildcard "*".
func (hdr Vary) IsAny() bool {
	for item := range hdr.list.Items() {
		if item == "*" {
			return true
		}
	}
	return false
}

func (hdr Vary) String() string { return hdr.list.String() }

// DecodeValues reads the header from any number of raw values.
// Elements must be field-name tokens or the "*" wildcard.
func (hdr *Vary) DecodeValues(vs *headers.Values) error {
	l, err := headers.DecodeFlatList(vs, checkVaryElem)
	if err != nil {
		return errtrace.Wrap(err)
	}
	if l.IsEmpty() {
		return errtrace.Wrap(errorutil.Error("empty field name list"))
	}
	hdr.list = l
	return nil
}

// EncodeValues appends the list as a single comma-joined raw value.
func (hdr Vary) EncodeValues(to *headers.ToValues) {
	hdr.list.EncodeValues(to)
}

// Equal compares this header with another for equality.
func (hdr Vary) Equal(val any) bool {
	var other Vary
	switch v := val.(type) {
	case Vary:
		other = v
	case *Vary:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return equalNameLists(hdr.Names(), other.Names())
}

func checkVaryElem(item string) error {
	if item == "*" {
		return nil
	}
	return checkFieldName(item) //errtrace:skip
}
