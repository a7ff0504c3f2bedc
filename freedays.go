// Package freedays computes holiday facts for a country and year: which
// holidays remain, which fall on weekend days, which one is next, and simple
// counts.
//
// Holidays are fixed month-day dates ("MM-DD") stored per country in a
// [HolidayTable]. The built-in table is compiled into this package; see
// [DefaultTable]. Every holiday is resolved to midnight UTC in the
// requested year, so weekday names and comparisons against "now" are done
// in UTC.
//
// Basic usage:
//
//	c, err := freedays.New("Mar", freedays.WithYear(2025))
//	if err != nil {
//		return err
//	}
//	next, _ := c.NextHoliday()
//	fmt.Println(next.Formatted, next.Day)
//
// Time-relative queries read the clock once per call. Inject a fixed clock
// with [WithClock] for deterministic results.
package freedays

import (
	"time"

	"go.uber.org/zap"
)

// Default weekend day names used when the caller passes empty names.
const (
	DefaultWeekendDay1 = "Sat"
	DefaultWeekendDay2 = "Sun"
)

// DayInfo describes one holiday resolved against a year.
type DayInfo struct {
	Date      time.Time `json:"date"`      // Midnight UTC.
	Formatted string    `json:"formatted"` // e.g. "Thu Nov 06 2025".
	Day       string    `json:"day"`       // Weekday name from the day-name table.
}

// Calculator answers holiday queries for one country and year.
// Create one with [New]. A Calculator is immutable and safe for concurrent use.
type Calculator struct {
	country  string
	year     int
	holidays []string
	dates    []monthDay
	days     DayNames
	now      func() time.Time
	logger   *zap.Logger
}

// Option configures a [Calculator].
type Option func(*options)

type options struct {
	year    int
	yearSet bool
	table   HolidayTable
	days    DayNames
	now     func() time.Time
	logger  *zap.Logger
}

// WithYear sets the year holidays are resolved against.
// Without it the year of the clock's current reading is used.
func WithYear(year int) Option {
	return func(o *options) {
		o.year = year
		o.yearSet = true
	}
}

// WithClock replaces time.Now as the source of "now".
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// WithTable replaces [DefaultTable].
func WithTable(t HolidayTable) Option {
	return func(o *options) {
		if t != nil {
			o.table = t
		}
	}
}

// WithDayNames replaces [DefaultDayNames].
func WithDayNames(n DayNames) Option {
	return func(o *options) { o.days = n }
}

// WithLogger sets a logger for debug events. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a Calculator for country. It returns an [*UnknownCountryError]
// if country is not in the table (exact match), or a [*TableError] if one of
// the country's entries is not a valid "MM-DD" string.
func New(country string, opts ...Option) (*Calculator, error) {
	o := options{
		table:  DefaultTable,
		days:   DefaultDayNames,
		now:    time.Now,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	holidays, ok := o.table.Holidays(country)
	if !ok {
		return nil, &UnknownCountryError{Country: country}
	}
	dates := make([]monthDay, len(holidays))
	for i, h := range holidays {
		md, err := parseMonthDay(h)
		if err != nil {
			return nil, &TableError{Country: country, Holiday: h, Reason: err.Error()}
		}
		dates[i] = md
	}

	year := o.year
	if !o.yearSet {
		year = o.now().Year()
	}

	o.logger.Debug("calculator created",
		zap.String("country", country),
		zap.Int("year", year),
		zap.Int("holidays", len(holidays)))

	return &Calculator{
		country:  country,
		year:     year,
		holidays: holidays,
		dates:    dates,
		days:     o.days,
		now:      o.now,
		logger:   o.logger,
	}, nil
}

// Country returns the configured country code.
func (c *Calculator) Country() string { return c.country }

// Year returns the configured year.
func (c *Calculator) Year() int { return c.year }

func (c *Calculator) dayInfo(md monthDay, year int) DayInfo {
	t := md.in(year)
	return DayInfo{
		Date:      t,
		Formatted: t.Format(FormatLayout),
		Day:       c.days.Name(t.Weekday()),
	}
}

// RemainingHolidays returns the holidays strictly after now, in table order.
func (c *Calculator) RemainingHolidays() []DayInfo {
	now := c.now()
	result := []DayInfo{}
	for _, md := range c.dates {
		if md.in(c.year).After(now) {
			result = append(result, c.dayInfo(md, c.year))
		}
	}
	return result
}

// CountRemainingHolidays returns len(RemainingHolidays()).
func (c *Calculator) CountRemainingHolidays() int {
	return len(c.RemainingHolidays())
}

// WeekendHolidays returns the holidays whose weekday name equals day1 or
// day2, in table order. Empty names default to "Sat" and "Sun". Names that
// are not in the day-name table match nothing.
func (c *Calculator) WeekendHolidays(day1, day2 string) []DayInfo {
	if day1 == "" {
		day1 = DefaultWeekendDay1
	}
	if day2 == "" {
		day2 = DefaultWeekendDay2
	}
	result := []DayInfo{}
	for _, md := range c.dates {
		info := c.dayInfo(md, c.year)
		if info.Day == day1 || info.Day == day2 {
			result = append(result, info)
		}
	}
	return result
}

// DefaultWeekendHolidays returns the holidays that fall on Saturday or Sunday.
func (c *Calculator) DefaultWeekendHolidays() []DayInfo {
	return c.WeekendHolidays(DefaultWeekendDay1, DefaultWeekendDay2)
}

// CountWeekendHolidays returns len(WeekendHolidays(day1, day2)).
func (c *Calculator) CountWeekendHolidays(day1, day2 string) int {
	return len(c.WeekendHolidays(day1, day2))
}

// IsHoliday reports whether the month and day of in match one of the
// country's holidays. The year of in is ignored. It returns [ErrInvalidDate]
// for the zero DateInput or a string that is not exactly YYYY-MM-DD.
func (c *Calculator) IsHoliday(in DateInput) (bool, error) {
	key, err := in.holidayKey()
	if err != nil {
		return false, err
	}
	for _, h := range c.holidays {
		if h == key {
			return true, nil
		}
	}
	return false, nil
}

// NextHoliday returns the first holiday in table order that is strictly
// after now in the configured year. If none is left, it returns the first
// holiday of the list resolved in the configured year plus one. It returns
// false only when the country has no holidays.
func (c *Calculator) NextHoliday() (DayInfo, bool) {
	now := c.now()
	for _, md := range c.dates {
		if md.in(c.year).After(now) {
			return c.dayInfo(md, c.year), true
		}
	}
	if len(c.dates) == 0 {
		return DayInfo{}, false
	}
	c.logger.Debug("no holiday left in year, wrapping",
		zap.String("country", c.country),
		zap.Int("year", c.year),
		zap.Int("next_year", c.year+1))
	return c.dayInfo(c.dates[0], c.year+1), true
}

// AllHolidays returns every holiday formatted with [FormatLayout], in table order.
func (c *Calculator) AllHolidays() []string {
	result := make([]string, len(c.dates))
	for i, md := range c.dates {
		result[i] = md.in(c.year).Format(FormatLayout)
	}
	return result
}

// CountHolidays returns the number of holidays configured for the country.
func (c *Calculator) CountHolidays() int {
	return len(c.holidays)
}

// WorkingDayHolidays returns the number of holidays that do not fall on
// day1 or day2.
func (c *Calculator) WorkingDayHolidays(day1, day2 string) int {
	return c.CountHolidays() - c.CountWeekendHolidays(day1, day2)
}
