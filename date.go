package freedays

import (
	"fmt"
	"regexp"
	"time"
)

// FormatLayout is the layout used for [DayInfo.Formatted] (e.g. "Thu Nov 06 2025").
const FormatLayout = "Mon Jan 02 2006"

// isoDatePattern is the only string shape accepted by [ISODate].
var isoDatePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// monthDay is a year-independent holiday key parsed from an "MM-DD" string.
type monthDay struct {
	month time.Month
	day   int
}

// parseMonthDay parses a strict "MM-DD" holiday string. Day ranges are
// checked against a leap year so that "02-29" is accepted.
func parseMonthDay(s string) (monthDay, error) {
	if len(s) != 5 || s[2] != '-' || !isDigit(s[0]) || !isDigit(s[1]) || !isDigit(s[3]) || !isDigit(s[4]) {
		return monthDay{}, fmt.Errorf("want MM-DD, got %q", s)
	}
	m := time.Month(int(s[0]-'0')*10 + int(s[1]-'0'))
	d := int(s[3]-'0')*10 + int(s[4]-'0')
	if m < time.January || m > time.December {
		return monthDay{}, fmt.Errorf("month %02d out of range", int(m))
	}
	// Day 0 of the following month is the last day of m.
	last := time.Date(2024, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if d < 1 || d > last {
		return monthDay{}, fmt.Errorf("day %02d out of range for month %02d", d, int(m))
	}
	return monthDay{month: m, day: d}, nil
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// in resolves the month-day against a year at midnight UTC.
// Feb 29 in a non-leap year normalizes to Mar 1.
func (md monthDay) in(year int) time.Time {
	return time.Date(year, md.month, md.day, 0, 0, 0, 0, time.UTC)
}

func (md monthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.month), md.day)
}

type inputKind uint8

const (
	inputNone inputKind = iota
	inputDate
	inputISO
)

// DateInput is the argument to [Calculator.IsHoliday]: either a calendar
// date built with [Date] or a "YYYY-MM-DD" string built with [ISODate].
// The zero value is not a date.
type DateInput struct {
	kind inputKind
	t    time.Time
	s    string
}

// Date wraps a time value. Month and day are read in t's own location.
func Date(t time.Time) DateInput {
	return DateInput{kind: inputDate, t: t}
}

// ISODate wraps a string that must match YYYY-MM-DD exactly.
func ISODate(s string) DateInput {
	return DateInput{kind: inputISO, s: s}
}

// holidayKey extracts the zero-padded "MM-DD" key. The year is ignored.
func (in DateInput) holidayKey() (string, error) {
	switch in.kind {
	case inputDate:
		return monthDay{month: in.t.Month(), day: in.t.Day()}.String(), nil
	case inputISO:
		if !isoDatePattern.MatchString(in.s) {
			return "", ErrInvalidDate
		}
		return in.s[5:], nil
	default:
		return "", ErrInvalidDate
	}
}
