// Package headers provides a typed codec layer over [net/http.Header].
//
// A raw header map stores opaque strings under case-insensitive field names,
// so every caller ends up hand-parsing and hand-formatting header values.
// This package defines a single protocol for going back and forth between
// the raw multi-valued representation and strongly typed header values:
//
//   - [Header] binds a type to exactly one canonical field name and to an
//     encode routine that emits raw values through a [ToValues] accumulator.
//   - Decoding is declared on the pointer type (see [DecoderOf]) and reads
//     raw values through a [Values] cursor.
//   - [Get] and [Set] compose the two over an [net/http.Header].
//
// The cursor and the accumulator close off two classic header bugs.
// A decode that leaves raw values unconsumed fails the whole [Get] unless it
// explicitly opts out with [Values.SkipExhaustCheck], so a type can never
// silently pretend only the first of several stored values was present.
// An encode always replaces the previously stored values on its first append
// and only then appends, so re-inserting a typed header never accumulates
// stale raw values, while genuinely repeatable headers may still emit
// several raw values in one encode call.
//
// Concrete header types live in the field subpackage.
package headers

//go:generate go tool errtrace -w .
