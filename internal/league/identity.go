package league

import "strings"

// NormalizeIdentifier reduces a sender identifier to its canonical digit-only
// form. US numbers are canonicalized to ten digits: an eleven-digit number
// with a leading country-code "1" and the bare ten-digit form normalize to
// the same key, so "(858) 735-9353", "858.735.9353" and "+1 858-735-9353"
// all resolve identically.
func NormalizeIdentifier(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if len(digits) == 11 && digits[0] == '1' {
		return digits[1:]
	}
	return digits
}
