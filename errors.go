package headers

import "github.com/ghettovoice/headers/internal/errorutil"

// Error represents a codec error.
// See [errorutil.Error].
type Error = errorutil.Error

// Decode errors.
const (
	// ErrNoHeader is returned by [Get] when no raw values are stored under
	// the requested field name.
	ErrNoHeader Error = "header not present"
	// ErrInvalidHeader is returned by [Get] when stored raw values fail the
	// type-specific decode.
	ErrInvalidHeader Error = "invalid header"
	// ErrLeftoverValues is returned by [Get] when a decode succeeded but left
	// raw values unconsumed without opting out of the exhaustiveness check.
	ErrLeftoverValues Error = "leftover header values"
	// ErrEmptyHeader is returned by [Values.NextOrErr] when the cursor is
	// already exhausted.
	ErrEmptyHeader Error = "no more header values"
)

// ErrInvalidValue is returned by [NewValue] for text that is not a legal
// header field value.
const ErrInvalidValue Error = "invalid header value"

// NewNoHeaderError creates a new error with [ErrNoHeader] or
// wraps provided error with [ErrNoHeader].
func NewNoHeaderError(args ...any) error {
	return errorutil.NewWrapperError(ErrNoHeader, args...) //errtrace:skip
}

// NewInvalidHeaderError creates a new error with [ErrInvalidHeader] or
// wraps provided error with [ErrInvalidHeader].
func NewInvalidHeaderError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidHeader, args...) //errtrace:skip
}

// NewLeftoverValuesError creates a new error with [ErrLeftoverValues] or
// wraps provided error with [ErrLeftoverValues].
func NewLeftoverValuesError(args ...any) error {
	return errorutil.NewWrapperError(ErrLeftoverValues, args...) //errtrace:skip
}

// NewInvalidValueError creates a new error with [ErrInvalidValue] or
// wraps provided error with [ErrInvalidValue].
func NewInvalidValueError(args ...any) error {
	return errorutil.NewWrapperError(ErrInvalidValue, args...) //errtrace:skip
}
