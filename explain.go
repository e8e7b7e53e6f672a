package typeid

import (
	"errors"
	"fmt"
)

// Explain reports why a candidate is not a valid TypeID, or nil when it is.
// It never panics: values of any dynamic type are accepted, and anything
// other than a string is diagnosed as such. The validation sequence is
// exactly the one Parse runs.
func Explain(v any) *ParseError {
	s, ok := v.(string)
	if !ok {
		return parseError(ErrInvalidInputType, fmt.Sprintf("%v", v))
	}
	if _, err := Parse(s); err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			return pe
		}
		return parseError(ErrDecodeFailure, s)
	}
	return nil
}

// IsValid reports whether s parses as a TypeID.
func IsValid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
