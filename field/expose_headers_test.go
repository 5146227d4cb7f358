package field_test

import (
	"errors"
	"net/http"
	"slices"
	"testing"

	"github.com/ghettovoice/headers"
	"github.com/ghettovoice/headers/field"
)

func TestAccessControlExposeHeaders_Decode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		vals    []string
		want    []headers.Name
		wantErr error
	}{
		{"absent", nil, nil, headers.ErrNoHeader},
		{"empty is valid", []string{""}, nil, nil},
		{"one line", []string{"Content-Encoding, X-Kuma-Revision"}, []headers.Name{"Content-Encoding", "X-Kuma-Revision"}, nil},
		{"invalid item", []string{"ok, b ad"}, nil, headers.ErrInvalidHeader},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			hdr := http.Header{}
			for _, v := range c.vals {
				hdr.Add("Access-Control-Expose-Headers", v)
			}

			ech, err := headers.Get[field.AccessControlExposeHeaders](hdr)
			if !errors.Is(err, c.wantErr) {
				t.Fatalf("headers.Get error = %v, want %v", err, c.wantErr)
			}
			if c.wantErr != nil {
				return
			}

			var got []headers.Name
			for n := range ech.Names() {
				got = append(got, n)
			}
			if !slices.Equal(got, c.want) {
				t.Errorf("ech.Names() yielded %v, want %v", got, c.want)
			}
		})
	}
}

func TestAccessControlExposeHeaders_RoundTrip(t *testing.T) {
	t.Parallel()

	hdr := http.Header{}
	headers.Set(hdr, field.AccessControlExposeHeadersOf("Content-Encoding"))

	ech, err := headers.Get[field.AccessControlExposeHeaders](hdr)
	if err != nil {
		t.Fatalf("headers.Get error = %v, want nil", err)
	}
	if !ech.Equal(field.AccessControlExposeHeadersOf("content-encoding")) {
		t.Errorf("round trip = %q, want fold-equal to %q", ech, "content-encoding")
	}
}
