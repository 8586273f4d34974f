// Package isbn provides normalization and structural validation of
// ISBN-10/ISBN-13 identifiers.
package isbn

// Normalize strips every non-digit character from a raw identifier token.
// It accepts arbitrary input (scanner noise, hyphenated ISBNs, copy-paste
// artifacts) and returns the digits-only form, possibly empty. Normalize
// does not validate length; use Valid for that.
func Normalize(raw string) string {
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			out = append(out, raw[i])
		}
	}
	return string(out)
}

// Valid reports whether a normalized identifier is structurally usable:
// non-empty, digits only, and exactly 10 or 13 characters long.
// Identifiers that fail this check must never reach the network.
func Valid(normalized string) bool {
	if len(normalized) != 10 && len(normalized) != 13 {
		return false
	}
	for i := 0; i < len(normalized); i++ {
		if normalized[i] < '0' || normalized[i] > '9' {
			return false
		}
	}
	return true
}
