package viewmodel

import (
	"strings"
	"unicode/utf8"
)

// Initials returns the avatar initials for a display name: the first letter of a single-word
// name, or the first letters of the first and last words. Blank names yield "".
func Initials(name string) string {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return firstUpper(parts[0])
	default:
		return firstUpper(parts[0]) + firstUpper(parts[len(parts)-1])
	}
}

// firstUpper upper-cases the first rune of a non-empty word. Invalid UTF-8 decodes to U+FFFD.
func firstUpper(word string) string {
	r, _ := utf8.DecodeRuneInString(word)
	return strings.ToUpper(string(r))
}
