package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fabtracko/fabtracko-backend-go/internal/pkg/calendar"
	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		if _, seen := result[err.Field]; seen {
			continue
		}
		result[err.Field] = err.Message
	}
	return result
}

// Add appends a field error.
func (v *ValidationErrors) Add(field, message string) {
	*v = append(*v, ValidationError{Field: field, Message: message})
}

// Err returns v as an error, or nil when empty.
func (v ValidationErrors) Err() error {
	if len(v) == 0 {
		return nil
	}
	return v
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

// MinLength checks the trimmed rune length of s.
func MinLength(s string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
}

// UUIDv7 regex: version 7 (the 15th character must be '7'), all lowercase hex digits.
var uuidv7Regex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-7[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUIDv7 validation
func IsValidUUID(uuid string) bool {
	return uuidv7Regex.MatchString(strings.ToLower(uuid))
}

// Date validation
func IsValidDate(dateStr string) (calendar.Date, bool) {
	date, err := calendar.Parse(dateStr)
	return date, err == nil
}

// IsFutureDate reports whether d is after today in loc.
func IsFutureDate(d calendar.Date, loc *time.Location) bool {
	return d.After(calendar.Today(loc))
}

// IsValidMonth checks a 1-based month number.
func IsValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// IsPositive checks d > 0.
func IsPositive(d decimal.Decimal) bool {
	return d.IsPositive()
}

// AtLeast checks d >= min.
func AtLeast(d decimal.Decimal, min int64) bool {
	return d.GreaterThanOrEqual(decimal.NewFromInt(min))
}

// MaxAmount is the exclusive upper bound of a stored money value, NUMERIC(12, 2).
var MaxAmount = decimal.New(1, 10)

// IsStorableAmount checks that d has at most 2 decimal places and is below MaxAmount
// in magnitude, so the stored value equals the validated one.
func IsStorableAmount(d decimal.Decimal) bool {
	return d.Equal(d.Round(2)) && d.Abs().LessThan(MaxAmount)
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// IsFutureMonth reports whether month/year starts after today's month.
func IsFutureMonth(month, year int, today calendar.Date) bool {
	if year != today.Year() {
		return year > today.Year()
	}
	return time.Month(month) > today.Month()
}
