package headers_test

import (
	"errors"
	"testing"

	"github.com/ghettovoice/headers"
)

func TestNewValue(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		wantErr error
	}{
		{"empty", "", nil},
		{"plain", "text/html; charset=utf-8", nil},
		{"tab", "a\tb", nil},
		{"obs-text", "na\xefve", nil},
		{"cr", "a\rb", headers.ErrInvalidValue},
		{"lf", "a\nb", headers.ErrInvalidValue},
		{"nul", "a\x00b", headers.ErrInvalidValue},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			v, err := headers.NewValue(c.in)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("headers.NewValue(%q) error = %v, want %v", c.in, err, c.wantErr)
			}
			if c.wantErr == nil && v.String() != c.in {
				t.Errorf("v.String() = %q, want %q", v.String(), c.in)
			}
		})
	}
}

func TestMustValue(t *testing.T) {
	t.Parallel()

	if got := headers.MustValue("ok").String(); got != "ok" {
		t.Errorf("headers.MustValue(%q).String() = %q, want %q", "ok", got, "ok")
	}

	defer func() {
		if recover() == nil {
			t.Error("headers.MustValue with CR did not panic")
		}
	}()
	headers.MustValue("a\rb")
}

func TestValue_Equal(t *testing.T) {
	t.Parallel()

	v := headers.MustValue("abc")

	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"same", headers.MustValue("abc"), true},
		{"ptr", ptr(headers.MustValue("abc")), true},
		{"nil ptr", (*headers.Value)(nil), false},
		{"case differs", headers.MustValue("ABC"), false},
		{"not a value", "abc", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := v.Equal(c.val); got != c.want {
				t.Errorf("v.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}
