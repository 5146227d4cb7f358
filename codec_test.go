package headers_test

import (
	"errors"
	"slices"
	"testing"

	"braces.dev/errtrace"

	"github.com/ghettovoice/headers"
)

const errNotToken headers.Error = "not a token"

func tokenCheck(item string) error {
	for i := 0; i < len(item); i++ {
		if item[i] == ' ' || item[i] == '\t' {
			return errtrace.Wrap(errNotToken)
		}
	}
	return nil
}

func TestDecodeFlatList(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		vals      []string
		wantItems []string
		wantErr   error
	}{
		{"empty value", []string{""}, nil, nil},
		{"one line", []string{"a, b"}, []string{"a", "b"}, nil},
		{"two lines", []string{"a", "b"}, []string{"a", "b"}, nil},
		{"mixed", []string{"a, b", "c"}, []string{"a", "b", "c"}, nil},
		{"empty elements", []string{", ,a,,  b,"}, []string{"a", "b"}, nil},
		{"ows", []string{"  a\t,  b "}, []string{"a", "b"}, nil},
		{"invalid item", []string{"foo foo, bar"}, nil, errNotToken},
		{"invalid later line", []string{"foo", "b ar"}, nil, errNotToken},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			l, err := headers.DecodeFlatList(headers.OpenValues(c.vals), tokenCheck)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("headers.DecodeFlatList error = %v, want %v", err, c.wantErr)
			}
			if c.wantErr != nil {
				return
			}

			var items []string
			for item := range l.Items() {
				items = append(items, item)
			}
			if !slices.Equal(items, c.wantItems) {
				t.Errorf("l.Items() yielded %v, want %v", items, c.wantItems)
			}
		})
	}
}

func TestDecodeFlatList_DrainsCursor(t *testing.T) {
	t.Parallel()

	vs := headers.OpenValues([]string{"a", "b", "c"})
	if _, err := headers.DecodeFlatList(vs, nil); err != nil {
		t.Fatalf("headers.DecodeFlatList error = %v, want nil", err)
	}
	if n := vs.Leftover(); n != 0 {
		t.Errorf("vs.Leftover() = %d, want 0", n)
	}
}

func TestFlatList_Equal(t *testing.T) {
	t.Parallel()

	oneLine, err := headers.DecodeFlatList(headers.OpenValues([]string{"a, b"}), nil)
	if err != nil {
		t.Fatal(err)
	}
	twoLines, err := headers.DecodeFlatList(headers.OpenValues([]string{"a", "b"}), nil)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name string
		l1   headers.FlatList
		val  any
		want bool
	}{
		{"wire forms equivalent", oneLine, twoLines, true},
		{"built vs decoded", headers.FlatListOf("a", "b"), oneLine, true},
		{"ptr", oneLine, &twoLines, true},
		{"different order", headers.FlatListOf("b", "a"), oneLine, false},
		{"shorter", headers.FlatListOf("a"), oneLine, false},
		{"longer", headers.FlatListOf("a", "b", "c"), oneLine, false},
		{"not a list", oneLine, "a, b", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.l1.Equal(c.val); got != c.want {
				t.Errorf("l1.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestFlatList_IsEmpty(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		l    headers.FlatList
		want bool
	}{
		{"zero", headers.FlatList{}, true},
		{"only separators", headers.FlatListOf(" ", ""), true},
		{"non-empty", headers.FlatListOf("a"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.l.IsEmpty(); got != c.want {
				t.Errorf("l.IsEmpty() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSingleValue(t *testing.T) {
	t.Parallel()

	vs := headers.OpenValues([]string{"only"})
	v, err := headers.SingleValue(vs)
	if err != nil {
		t.Fatalf("headers.SingleValue error = %v, want nil", err)
	}
	if v.String() != "only" {
		t.Errorf("headers.SingleValue = %q, want %q", v, "only")
	}

	if _, err = headers.SingleValue(vs); !errors.Is(err, headers.ErrEmptyHeader) {
		t.Errorf("headers.SingleValue on exhausted cursor error = %v, want %v", err, headers.ErrEmptyHeader)
	}
}
