package freedays

// PassedHolidays returns the holidays on or before now, in table order.
// Together with [Calculator.RemainingHolidays] it partitions the year.
func (c *Calculator) PassedHolidays() []DayInfo {
	now := c.now()
	result := []DayInfo{}
	for _, md := range c.dates {
		if !md.in(c.year).After(now) {
			result = append(result, c.dayInfo(md, c.year))
		}
	}
	return result
}

// CountPassedHolidays returns len(PassedHolidays()).
func (c *Calculator) CountPassedHolidays() int {
	return len(c.PassedHolidays())
}

// HolidayInfo resolves a single "MM-DD" string against the configured year.
// The string does not have to be one of the country's holidays.
func (c *Calculator) HolidayInfo(holiday string) (DayInfo, error) {
	md, err := parseMonthDay(holiday)
	if err != nil {
		return DayInfo{}, &TableError{Country: c.country, Holiday: holiday, Reason: err.Error()}
	}
	return c.dayInfo(md, c.year), nil
}
