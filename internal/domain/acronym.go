package domain

import (
	"strings"
	"unicode"
)

// Acronym derives the calendar badge label from a stylist display name:
// first rune of every whitespace-separated word, upper-cased.
// "Jose Luis" -> "JL", пустое имя -> пустая строка.
func Acronym(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}

	var b strings.Builder
	for _, word := range fields {
		for _, r := range word {
			b.WriteRune(unicode.ToUpper(r))
			break
		}
	}

	return b.String()
}
