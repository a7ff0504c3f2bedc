package freedays

import (
	"sort"

	"github.com/rickar/cal/v2"
)

// NewRuleTable resolves rule-based holiday definitions into a fixed table
// for one reference year. Each holiday contributes the month and day of its
// actual (not observed) date in year; holidays with no occurrence that
// year are skipped. Countries are ordered by code and dates keep rule order.
//
// The resulting strings are only meaningful for year: a Calculator built on
// this table should use the same year.
func NewRuleTable(year int, rules map[string][]*cal.Holiday) (*StaticTable, error) {
	countries := make([]string, 0, len(rules))
	for country := range rules {
		countries = append(countries, country)
	}
	sort.Strings(countries)

	rows := make([]CountryHolidays, 0, len(countries))
	for _, country := range countries {
		var dates []string
		for _, h := range rules[country] {
			if h == nil {
				continue
			}
			actual, _ := h.Calc(year)
			if actual.IsZero() {
				continue
			}
			dates = append(dates, monthDay{month: actual.Month(), day: actual.Day()}.String())
		}
		rows = append(rows, CountryHolidays{Country: country, Dates: dates})
	}
	return NewTable(rows...)
}
