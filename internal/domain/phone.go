package domain

import "strings"

// NormalizePhone приводит телефон к каноничному виду: выбрасывает всё,
// кроме цифр, и добавляет код страны, если его нет.
// "(612) 345-678" -> "34612345678", "+34 612 345 678" -> "34612345678".
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if digits == "" {
		return ""
	}

	if !strings.HasPrefix(digits, CountryPhonePrefix) {
		digits = CountryPhonePrefix + digits
	}

	return digits
}
