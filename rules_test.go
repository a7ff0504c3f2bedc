package freedays

import (
	"reflect"
	"testing"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

func TestNewRuleTable(t *testing.T) {
	t.Parallel()

	table, err := NewRuleTable(2025, map[string][]*cal.Holiday{
		"Usa": {us.NewYear, us.IndependenceDay, us.ThanksgivingDay, us.ChristmasDay},
		"Abc": {us.ChristmasDay, nil},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := table.Countries(); !reflect.DeepEqual(got, []string{"Abc", "Usa"}) {
		t.Errorf("Countries() = %v, want [Abc Usa]", got)
	}
	got, _ := table.Holidays("Usa")
	want := []string{"01-01", "07-04", "11-27", "12-25"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Holidays(Usa) = %v, want %v", got, want)
	}
}

func TestNewRuleTable_WithCalculator(t *testing.T) {
	t.Parallel()

	table, err := NewRuleTable(2025, map[string][]*cal.Holiday{
		"Usa": {us.NewYear, us.MemorialDay, us.IndependenceDay, us.LaborDay, us.ChristmasDay},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c := mustNew(t, "Usa", WithTable(table), WithYear(2025), WithClock(fixedClock(d(2025, time.July, 1))))

	// Memorial Day and Labor Day are Mondays by rule.
	if got := c.CountWeekendHolidays("Mon", "Mon"); got != 2 {
		t.Errorf("CountWeekendHolidays(Mon, Mon) = %d, want 2", got)
	}
	next, ok := c.NextHoliday()
	if !ok || next.Formatted != "Fri Jul 04 2025" {
		t.Errorf("NextHoliday() = %+v, %v; want Fri Jul 04 2025", next, ok)
	}
}
