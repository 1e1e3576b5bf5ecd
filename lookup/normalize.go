package lookup

import (
	"strings"
	"unicode"
)

// NormalizeEmail canonicalizes an email address for comparison: lowercase
// and trimmed. An empty result means "no email filter".
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizePhone canonicalizes a phone number for comparison by stripping
// whitespace, parentheses and hyphens. Idempotent, like NormalizeEmail.
func NormalizePhone(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) || r == '(' || r == ')' || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
