package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeeklyFrequency(t *testing.T) {
	cases := map[string]int{
		"L,M":     2,
		"L, M, J": 3,
		"L M I":   3,
		"LMI":     3,
		"L,L":     1,
		"LUNES":   1,
		"":        1,
		"  ,  ":   1,
		"m;j":     2,
		"L/M/I/J": 4,
	}
	for days, want := range cases {
		assert.Equal(t, want, WeeklyFrequency(days), "days %q", days)
	}
}
