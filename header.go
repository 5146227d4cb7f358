package headers

// Header is implemented by typed header values.
//
// A type implementing Header owns exactly one field name. Its encode routine
// receives an accumulator already bound to that name and must append at
// least one raw value; appending nothing would leave the map's entry
// partially applied. Encoding must be infallible with respect to raw-value
// legality; see [ToValues.AppendFormatted].
//
// Decoding is declared on the pointer type so that [Get] can construct the
// value it decodes into; see [DecoderOf]. Both routines must be pure apart
// from cursor consumption and accumulator appends.
type Header interface {
	// CanonicName returns the canonical field name this type owns.
	// It must be constant for a given type.
	CanonicName() Name
	// EncodeValues appends one or more raw values representing this value.
	EncodeValues(to *ToValues)
}

// DecoderOf constrains a pointer to a header type that decodes itself from
// a [Values] cursor.
//
// DecodeValues is given a cursor already scoped to the type's field name and
// known to hold at least one value; absence is reported by [Get] before
// decode is ever invoked. It may consume any number of values, but values
// left unconsumed fail the surrounding [Get] unless the routine opted out
// with [Values.SkipExhaustCheck]. The cursor must not be retained beyond
// the call.
type DecoderOf[H Header] interface {
	*H
	DecodeValues(vs *Values) error
}
