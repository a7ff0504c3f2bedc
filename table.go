package freedays

//go:generate go run ./cmd/genholidays -source data/holidays.csv -output holidays_data.go

import "time"

// HolidayTable is a read-only country -> holiday list lookup.
// Holidays returns "MM-DD" strings in table order.
type HolidayTable interface {
	Holidays(country string) ([]string, bool)
	Countries() []string
}

// CountryHolidays is one row of a [StaticTable].
type CountryHolidays struct {
	Country string
	Dates   []string
}

// StaticTable is an immutable in-memory [HolidayTable].
// Create one with [NewTable].
type StaticTable struct {
	order   []string
	entries map[string][]string
}

// NewTable validates rows and builds a table. Countries keep the order they
// are given in, and so do the dates of each country.
func NewTable(rows ...CountryHolidays) (*StaticTable, error) {
	t := &StaticTable{entries: make(map[string][]string, len(rows))}
	for _, row := range rows {
		if row.Country == "" {
			return nil, &TableError{Reason: "empty country code"}
		}
		if _, dup := t.entries[row.Country]; dup {
			return nil, &TableError{Country: row.Country, Reason: "duplicate country"}
		}
		for _, h := range row.Dates {
			if _, err := parseMonthDay(h); err != nil {
				return nil, &TableError{Country: row.Country, Holiday: h, Reason: err.Error()}
			}
		}
		t.entries[row.Country] = append([]string(nil), row.Dates...)
		t.order = append(t.order, row.Country)
	}
	return t, nil
}

// MustTable is like [NewTable] but panics on malformed rows.
// It is intended for package-level tables.
func MustTable(rows ...CountryHolidays) *StaticTable {
	t, err := NewTable(rows...)
	if err != nil {
		panic(err)
	}
	return t
}

// Holidays returns a copy of the country's holiday strings.
func (t *StaticTable) Holidays(country string) ([]string, bool) {
	h, ok := t.entries[country]
	if !ok {
		return nil, false
	}
	return append([]string(nil), h...), true
}

// Countries returns the country codes in table order.
func (t *StaticTable) Countries() []string {
	return append([]string(nil), t.order...)
}

// DefaultTable is the built-in holiday table.
var DefaultTable = MustTable(builtinTable...)

// DayNames maps a weekday index (0 = Sunday) to its display name.
type DayNames [7]string

// DefaultDayNames is the fixed English short-name table.
var DefaultDayNames = DayNames{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Name returns the display name for wd.
func (n DayNames) Name(wd time.Weekday) string {
	return n[wd]
}

// Countries returns the country codes of the built-in table.
func Countries() []string { return DefaultTable.Countries() }
