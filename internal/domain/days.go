package domain

import "strings"

// dayLetters are the single-letter weekday codes used in schedules
// (L=lunes, M=martes, I=miércoles, J=jueves, V=viernes, S=sábado, D=domingo).
const dayLetters = "LMIJVSD"

// WeeklyFrequency counts the distinct day tokens in a meeting-days string.
// Tokens may be separated by commas, semicolons, slashes or whitespace
// ("L,M", "L M"), or packed as letters ("LMI"). The result is never below 1.
func WeeklyFrequency(days string) int {
	tokens := strings.FieldsFunc(strings.ToUpper(days), func(r rune) bool {
		return r == ',' || r == ';' || r == '/' || r == '-' || r == ' ' || r == '\t'
	})
	if len(tokens) == 1 && len(tokens[0]) > 1 && isPackedDayLetters(tokens[0]) {
		tokens = strings.Split(tokens[0], "")
	}

	seen := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		seen[tok] = true
	}
	if len(seen) == 0 {
		return 1
	}
	return len(seen)
}

func isPackedDayLetters(s string) bool {
	for _, r := range s {
		if !strings.ContainsRune(dayLetters, r) {
			return false
		}
	}
	return true
}
