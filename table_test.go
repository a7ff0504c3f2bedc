package freedays

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestNewTable_PreservesOrder(t *testing.T) {
	t.Parallel()

	table, err := NewTable(
		CountryHolidays{Country: "B", Dates: []string{"12-25", "01-01"}},
		CountryHolidays{Country: "A", Dates: []string{"05-01"}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := table.Countries(); !reflect.DeepEqual(got, []string{"B", "A"}) {
		t.Errorf("Countries() = %v, want [B A]", got)
	}
	got, ok := table.Holidays("B")
	if !ok || !reflect.DeepEqual(got, []string{"12-25", "01-01"}) {
		t.Errorf("Holidays(B) = %v, %v; want [12-25 01-01], true", got, ok)
	}
	if _, ok := table.Holidays("b"); ok {
		t.Error("lookup must be an exact match")
	}
}

func TestNewTable_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows []CountryHolidays
	}{
		{"empty country", []CountryHolidays{{Country: "", Dates: []string{"01-01"}}}},
		{"duplicate", []CountryHolidays{{Country: "A"}, {Country: "A"}}},
		{"bad month", []CountryHolidays{{Country: "A", Dates: []string{"13-01"}}}},
		{"bad day", []CountryHolidays{{Country: "A", Dates: []string{"06-31"}}}},
		{"bad shape", []CountryHolidays{{Country: "A", Dates: []string{"1-1"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.rows...)
			var te *TableError
			if !errors.As(err, &te) {
				t.Fatalf("NewTable() error = %v, want *TableError", err)
			}
		})
	}
}

func TestStaticTable_ReturnsCopies(t *testing.T) {
	t.Parallel()

	table := MustTable(CountryHolidays{Country: "A", Dates: []string{"01-01"}})
	h, _ := table.Holidays("A")
	h[0] = "02-02"
	c := table.Countries()
	c[0] = "Z"

	if again, _ := table.Holidays("A"); again[0] != "01-01" {
		t.Error("Holidays must not expose internal storage")
	}
	if table.Countries()[0] != "A" {
		t.Error("Countries must not expose internal storage")
	}
}

func TestMustTable_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("MustTable should panic on a malformed row")
		}
	}()
	MustTable(CountryHolidays{Country: "A", Dates: []string{"xx"}})
}

func TestDefaultTable(t *testing.T) {
	t.Parallel()

	if got := Countries(); !reflect.DeepEqual(got, []string{"Mar", "Tun", "Alg"}) {
		t.Errorf("Countries() = %v", got)
	}
	mar, ok := DefaultTable.Holidays("Mar")
	if !ok {
		t.Fatal("Mar missing from default table")
	}
	want := []string{"01-01", "01-11", "01-14", "05-01", "07-30", "08-14", "08-20", "08-21", "10-31", "11-06", "11-18"}
	if !reflect.DeepEqual(mar, want) {
		t.Errorf("Mar = %v, want %v", mar, want)
	}
	if _, ok := DefaultTable.Holidays("Fra"); ok {
		t.Error("Fra should not be in the default table")
	}
}

func TestDefaultTable_Chronological(t *testing.T) {
	t.Parallel()

	for _, country := range Countries() {
		h, _ := DefaultTable.Holidays(country)
		for i := 1; i < len(h); i++ {
			if h[i-1] >= h[i] {
				t.Errorf("%s: %s is not before %s", country, h[i-1], h[i])
			}
		}
	}
}

func TestDayNames(t *testing.T) {
	t.Parallel()

	if got := DefaultDayNames.Name(time.Sunday); got != "Sun" {
		t.Errorf("Name(Sunday) = %q, want Sun", got)
	}
	if got := DefaultDayNames.Name(time.Saturday); got != "Sat" {
		t.Errorf("Name(Saturday) = %q, want Sat", got)
	}
}
