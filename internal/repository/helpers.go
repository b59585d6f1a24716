package repository

import (
	"database/sql"
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// timestampLayout is fixed-width so stored timestamps sort as text. Reads
// accept any RFC3339 value.
const timestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// intOrZero reads a numeric column as an int. Missing or non-numeric data is
// zero.
func intOrZero(v sql.NullString) int {
	n, _ := numberOrZero(v)
	return int(n)
}

// floatOrZero reads a numeric column. Missing or non-numeric data is zero.
func floatOrZero(v sql.NullString) float64 {
	n, _ := numberOrZero(v)
	return n
}

// numberOrZero reads a numeric column that may hold stray text, which SQLite
// accepts in any column. NULL and blank read as zero without complaint;
// malformed is set when the stored text is not a finite number.
func numberOrZero(v sql.NullString) (n float64, malformed bool) {
	text := strings.TrimSpace(v.String)
	if !v.Valid || text == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, true
	}
	return n, false
}

// stringOrEmpty reads a nullable text column.
func stringOrEmpty(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

// emptyToNull stores a blank string as SQL NULL.
func emptyToNull(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// parseTimestamp parses an RFC3339 column, returning the zero time for blank
// or malformed values.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// timestampOrNow formats t for storage, substituting the current time for
// the zero value.
func timestampOrNow(t time.Time) string {
	if t.IsZero() {
		return nowUTC()
	}
	return t.UTC().Format(timestampLayout)
}

// nowUTC returns the current UTC time in timestampLayout.
func nowUTC() string {
	return time.Now().UTC().Format(timestampLayout)
}
