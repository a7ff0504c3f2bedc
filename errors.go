package freedays

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownCountry is returned by [New] when the country code has no
	// entry in the holiday table.
	ErrUnknownCountry = errors.New("unknown country")

	// ErrInvalidDate is returned by [Calculator.IsHoliday] for input that is
	// neither a date value nor a YYYY-MM-DD string.
	ErrInvalidDate = errors.New("not a date")
)

// UnknownCountryError names the country code that was not found.
type UnknownCountryError struct {
	Country string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("unknown country : %s", e.Country)
}

// Unwrap lets errors.Is match [ErrUnknownCountry].
func (e *UnknownCountryError) Unwrap() error { return ErrUnknownCountry }

// TableError reports a malformed holiday table entry.
type TableError struct {
	Country string
	Holiday string
	Reason  string
}

func (e *TableError) Error() string {
	if e.Holiday == "" {
		return fmt.Sprintf("holiday table: country %q: %s", e.Country, e.Reason)
	}
	return fmt.Sprintf("holiday table: country %q: entry %q: %s", e.Country, e.Holiday, e.Reason)
}
