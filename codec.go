package headers

import (
	"iter"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/headers/internal/util"
)

// SingleValue decodes a header that consists of exactly one raw value.
// It fails with [ErrEmptyHeader] when the cursor holds no value; a second
// stored value is caught by the exhaustiveness check in [Get].
func SingleValue(vs *Values) (Value, error) {
	return errtrace.Wrap2(vs.NextOrErr())
}

// FlatList is the internal representation of a comma-separated list header.
//
// The HTTP grammar treats a single field line carrying comma-separated
// elements and several field lines under the same name as equivalent for
// list-valued fields (RFC 7230 Section 3.2.2). FlatList keeps the list as
// one comma-joined string in either case, so the two wire forms decode to
// equal values, and exposes the individual elements through a lazy
// splitting iterator.
type FlatList struct {
	joined string
}

// FlatListOf builds a FlatList from individual items.
func FlatListOf(items ...string) FlatList {
	return FlatList{joined: strings.Join(items, ", ")}
}

// DecodeFlatList drains the cursor into a FlatList.
//
// When check is non-nil, it is applied to every comma-separated item after
// trimming optional whitespace, and any failing item fails the whole decode.
// Partial lists are rejected outright, never silently truncated.
func DecodeFlatList(vs *Values, check func(item string) error) (FlatList, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	first := true
	for v := range vs.All() {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(v.String())
		first = false
	}

	l := FlatList{joined: sb.String()}
	if check != nil {
		for item := range l.Items() {
			if err := check(item); err != nil {
				return FlatList{}, errtrace.Wrap(err)
			}
		}
	}
	return l, nil
}

// Items returns an iterator over the individual list elements.
// Elements are trimmed of optional whitespace; empty elements are skipped,
// as they do not contribute to the count of elements present
// (RFC 7230 Section 7).
func (l FlatList) Items() iter.Seq[string] {
	return func(yield func(string) bool) {
		s := l.joined
		for s != "" {
			var item string
			if i := strings.IndexByte(s, ','); i >= 0 {
				item, s = s[:i], s[i+1:]
			} else {
				item, s = s, ""
			}
			item = util.TrimOWS(item)
			if item == "" {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// IsEmpty reports whether the list contains no elements.
func (l FlatList) IsEmpty() bool {
	for range l.Items() {
		return false
	}
	return true
}

// EncodeValues appends the list as a single comma-joined raw value.
func (l FlatList) EncodeValues(to *ToValues) {
	to.AppendFormatted(l.joined)
}

// Equal compares this list with another for equality.
// Two lists are equal when they yield the same ordered sequence of elements,
// regardless of how the elements were spread over raw values.
func (l FlatList) Equal(val any) bool {
	var other FlatList
	switch o := val.(type) {
	case FlatList:
		other = o
	case *FlatList:
		if o == nil {
			return false
		}
		other = *o
	default:
		return false
	}

	next, stop := iter.Pull(other.Items())
	defer stop()
	for item := range l.Items() {
		o, ok := next()
		if !ok || item != o {
			return false
		}
	}
	_, ok := next()
	return !ok
}

func (l FlatList) String() string { return l.joined }
