package typeid

// MaxPrefixLen is the longest permitted prefix. Combined with the separator
// and the 26-character suffix this caps a TypeID string at 90 characters.
const MaxPrefixLen = 63

// validatePrefix enforces the prefix grammar: empty, or 1..63 characters
// where the first and last are lowercase ASCII letters and interior
// characters are lowercase letters or underscores. Consecutive interior
// underscores are allowed; leading or trailing underscores are not.
func validatePrefix(prefix string) error {
	if len(prefix) == 0 {
		return nil
	}
	if len(prefix) > MaxPrefixLen {
		return parseError(ErrPrefixTooLong, prefix)
	}
	if !isLowerAlpha(prefix[0]) || !isLowerAlpha(prefix[len(prefix)-1]) {
		return parseError(ErrInvalidPrefixFormat, prefix)
	}
	for i := 1; i < len(prefix)-1; i++ {
		if !isLowerAlpha(prefix[i]) && prefix[i] != '_' {
			return parseErrorAt(ErrInvalidPrefixFormat, prefix, i)
		}
	}
	return nil
}

func isLowerAlpha(c byte) bool {
	return c >= 'a' && c <= 'z'
}
