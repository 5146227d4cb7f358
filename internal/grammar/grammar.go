// Package grammar implements the RFC 7230 character-level rules used by
// header names and values.
package grammar

import "github.com/ghettovoice/headers/internal/constraints"

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrNotToken      Error = "not a token"
	ErrNotFieldValue Error = "not a field value"
)

var (
	isTchar [256]bool
	isVchar [256]bool
)

func init() {
	// tchar = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
	//         "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
	// RFC 7230 Section 3.2.6.
	tchars := "!#$%&'*+-.^_`|~" +
		"0123456789" +
		"abcdefghijklmnopqrstuvwxyz" +
		"ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	for _, c := range tchars {
		isTchar[c] = true
	}

	// field-value octets: VCHAR, SP, HTAB and obs-text (0x80-0xFF).
	// RFC 7230 Section 3.2.
	for i := 0x21; i <= 0x7E; i++ {
		isVchar[i] = true
	}
	for i := 0x80; i <= 0xFF; i++ {
		isVchar[i] = true
	}
	isVchar[' '] = true
	isVchar['\t'] = true
}

// IsToken reports whether s is a non-empty RFC 7230 token.
func IsToken[T constraints.Byteseq](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isTchar[s[i]] {
			return false
		}
	}
	return true
}

// IsFieldValue reports whether s is a legal header field value.
// An empty value is legal. CR, LF and other control octets except HTAB are not.
func IsFieldValue[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if !isVchar[s[i]] {
			return false
		}
	}
	return true
}
