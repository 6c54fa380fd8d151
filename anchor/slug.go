package anchor

import "strings"

// SlugFunc converts raw heading text into a base anchor.
type SlugFunc func(raw string) string

// Slugify returns the base anchor for raw heading text.
//
// Spaces are replaced with hyphens, characters outside the allowed set are
// dropped and ASCII upper-case letters are lower-cased. Runs of spaces are
// not collapsed and nothing is trimmed.
func Slugify(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))

	for _, r := range raw {
		if r == ' ' {
			r = '-'
		}
		if !allowedRune(r) {
			continue
		}
		if 'A' <= r && r <= 'Z' {
			r += 'a' - 'A'
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// allowedRune reports whether r survives slug filtering.
func allowedRune(r rune) bool {
	switch {
	case 'a' <= r && r <= 'z', 'A' <= r && r <= 'Z':
		return true
	case '0' <= r && r <= '9':
		return true
	case r == '_', r == '-', r == ' ':
		return true
	case 'А' <= r && r <= 'я': // U+0410..U+044F
		return true
	case r == 'Ё', r == 'ё':
		return true
	}
	return false
}
