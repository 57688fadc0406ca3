package types

import (
	"errors"
	"fmt"
	"strconv"
)

// Season bounds. A puzzle season always has exactly 25 days.
const (
	MinYear  = 2000
	FirstDay = 1
	LastDay  = 25
)

// ErrShorthandYear is returned when a year is given in abbreviated form ("18")
var ErrShorthandYear = errors.New(`year must not be shorthand, e.g. "2018", not "18"`)

// ValidateYear checks that year is a full four-digit value
func ValidateYear(year int) error {
	if year < MinYear {
		return fmt.Errorf("%w (got %d)", ErrShorthandYear, year)
	}
	return nil
}

// YearID returns the directory name used for a year
func YearID(year int) string {
	return strconv.Itoa(year)
}

// PadDay returns the two-digit zero-padded day identifier
// Example: 3 -> "03", 25 -> "25"
func PadDay(day int) string {
	return fmt.Sprintf("%02d", day)
}

// Days returns every day of a season in order
func Days() []int {
	days := make([]int, 0, LastDay-FirstDay+1)
	for day := FirstDay; day <= LastDay; day++ {
		days = append(days, day)
	}
	return days
}

// ParseYear parses a directory name as a year, reporting false for anything
// that is not a full year
func ParseYear(name string) (int, bool) {
	year, err := strconv.Atoi(name)
	if err != nil || year < MinYear || YearID(year) != name {
		return 0, false
	}
	return year, true
}
