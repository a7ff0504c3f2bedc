package freedays_test

import (
	"fmt"
	"time"

	"github.com/rabitt1ove/freedays"
)

func clock(year int, month time.Month, day int) func() time.Time {
	return func() time.Time { return time.Date(year, month, day, 0, 0, 0, 0, time.UTC) }
}

func ExampleCalculator_RemainingHolidays() {
	c, err := freedays.New("Mar", freedays.WithYear(2025), freedays.WithClock(clock(2025, time.November, 1)))
	if err != nil {
		panic(err)
	}
	for _, h := range c.RemainingHolidays() {
		fmt.Println(h.Formatted, h.Day)
	}
	// Output:
	// Thu Nov 06 2025 Thu
	// Tue Nov 18 2025 Tue
}

func ExampleCalculator_NextHoliday() {
	c, _ := freedays.New("Mar", freedays.WithYear(2025), freedays.WithClock(clock(2025, time.December, 25)))
	next, _ := c.NextHoliday()
	fmt.Println(next.Date.Format("2006-01-02"))
	// Output: 2026-01-01
}

func ExampleCalculator_WeekendHolidays() {
	c, _ := freedays.New("Mar", freedays.WithYear(2025))
	for _, h := range c.WeekendHolidays("Thu", "Fri") {
		fmt.Println(h.Date.Format("01-02"), h.Day)
	}
	fmt.Println(c.WorkingDayHolidays("Thu", "Fri"))
	// Output:
	// 05-01 Thu
	// 08-14 Thu
	// 08-21 Thu
	// 10-31 Fri
	// 11-06 Thu
	// 6
}

func ExampleCalculator_IsHoliday() {
	c, _ := freedays.New("Mar", freedays.WithYear(2023))
	ok, _ := c.IsHoliday(freedays.ISODate("2023-01-11"))
	fmt.Println(ok)
	_, err := c.IsHoliday(freedays.ISODate("23ljadf"))
	fmt.Println(err)
	// Output:
	// true
	// not a date
}

func ExampleNew() {
	_, err := freedays.New("Fra")
	fmt.Println(err)
	// Output: unknown country : Fra
}
