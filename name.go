package headers

import (
	"net/textproto"

	"github.com/ghettovoice/headers/internal/grammar"
	"github.com/ghettovoice/headers/internal/util"
)

// Name represents an HTTP header field name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is a syntactically valid field name.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another for equality.
// The comparison is case-insensitive.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

func (n Name) String() string { return string(n) }

// CanonicName converts name to the canonical form.
// The canonicalization converts the first letter and any letter following a hyphen
// to upper case; the rest are converted to lowercase. For example, the canonical
// name for "accept-encoding" is "Accept-Encoding".
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	return Name(textproto.CanonicalMIMEHeaderKey(string(name)))
}
