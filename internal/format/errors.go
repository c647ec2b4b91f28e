package format

import "errors"

var (
	// ErrInvalidInput is returned for amounts that cannot be formatted:
	// NaN, ±Inf, or text that is not a plain decimal literal.
	ErrInvalidInput = errors.New("invalid amount")
	// ErrUnknownRounding is returned by ParseRoundingMode for unrecognized names.
	ErrUnknownRounding = errors.New("unknown rounding mode")
	// ErrUnsupportedFormat is returned when a report format name is not registered.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)
