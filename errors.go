package typeid

import (
	"errors"
	"fmt"
)

// Common errors for better error handling and wrapping. Every validation
// failure returned by Parse, Explain, FromBytes, or the codec wraps exactly
// one of these sentinels, so callers can classify failures with errors.Is.
var (
	ErrInvalidInputType      = errors.New("input is not a string")
	ErrInvalidLength         = errors.New("length must be between 26 and 90 characters")
	ErrInvalidCase           = errors.New("must be all lowercase")
	ErrLeadingUnderscore     = errors.New("must not start with an underscore")
	ErrInvalidPrefixType     = errors.New("prefix is not a string")
	ErrPrefixTooLong         = errors.New("prefix length must be at most 63 characters")
	ErrInvalidPrefixFormat   = errors.New("prefix must match [a-z]([a-z_]{0,61}[a-z])?")
	ErrInvalidSuffixLength   = errors.New("suffix must be exactly 26 characters")
	ErrInvalidSuffixAlphabet = errors.New("suffix contains a character outside the base32 alphabet")
	ErrSuffixOverflow        = errors.New("suffix first character must be '7' or smaller")
	ErrInvalidValueLength    = errors.New("value must be exactly 16 bytes")
	ErrDecodeFailure         = errors.New("suffix could not be decoded")
	ErrRandomGeneration      = errors.New("failed to generate random bytes")
)

// ParseError reports why an input was rejected. It carries the offending
// value and, for alphabet and overflow failures, the character position
// involved. Err is always one of the sentinel errors above.
type ParseError struct {
	Err      error  // sentinel classifying the failure
	Input    string // the offending value as given
	Position int    // character position for positional failures, -1 otherwise
}

func (e *ParseError) Error() string {
	if e.Position >= 0 {
		return fmt.Sprintf("typeid: %v (position %d in %q)", e.Err, e.Position, e.Input)
	}
	return fmt.Sprintf("typeid: %v: %q", e.Err, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind returns a stable machine-readable name for the failure, suitable for
// JSON output and conformance tables.
func (e *ParseError) Kind() string {
	switch e.Err {
	case ErrInvalidInputType:
		return "invalid_input_type"
	case ErrInvalidLength:
		return "invalid_length"
	case ErrInvalidCase:
		return "invalid_case"
	case ErrLeadingUnderscore:
		return "leading_underscore"
	case ErrInvalidPrefixType:
		return "invalid_prefix_type"
	case ErrPrefixTooLong:
		return "prefix_too_long"
	case ErrInvalidPrefixFormat:
		return "invalid_prefix_format"
	case ErrInvalidSuffixLength:
		return "invalid_suffix_length"
	case ErrInvalidSuffixAlphabet:
		return "invalid_suffix_alphabet"
	case ErrSuffixOverflow:
		return "suffix_overflow"
	case ErrInvalidValueLength:
		return "invalid_value_length"
	case ErrDecodeFailure:
		return "decode_failure"
	default:
		return "unknown"
	}
}

func parseError(err error, input string) *ParseError {
	return &ParseError{Err: err, Input: input, Position: -1}
}

func parseErrorAt(err error, input string, pos int) *ParseError {
	return &ParseError{Err: err, Input: input, Position: pos}
}
