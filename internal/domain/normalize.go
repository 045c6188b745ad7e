package domain

import (
	"strings"
	"unicode"
)

// NormalizeName produces the canonical display form of a free-text name:
// surrounding whitespace is trimmed, internal whitespace runs collapse to a
// single space, and each word is lowercased with its first letter uppercased.
// Applying it twice yields the same result as once.
func NormalizeName(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// NormalizePhone canonicalizes free-text phone input.
//
// All non-digit characters are stripped, then every applicable rewrite is
// applied in sequence (national 10-digit, bare 9-digit, 40-prefixed 11-digit),
// and a value that ends up in the "+40" 12-character international form is
// grouped as "+40 DDD DDD DDD". Anything else is returned as the bare digit
// string; the function never rejects input.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()

	if strings.HasPrefix(cleaned, "0") && len(cleaned) == 10 {
		cleaned = "+40" + cleaned[1:]
	}
	if len(cleaned) == 9 && !strings.HasPrefix(cleaned, "+") {
		cleaned = "+40" + cleaned
	}
	if strings.HasPrefix(cleaned, "40") && len(cleaned) == 11 {
		cleaned = "+" + cleaned
	}

	if strings.HasPrefix(cleaned, "+40") && len(cleaned) == 12 {
		return cleaned[0:3] + " " + cleaned[3:6] + " " + cleaned[6:9] + " " + cleaned[9:12]
	}
	return cleaned
}
