package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rabitt1ove/freedays"
)

func (a *app) printDays(w io.Writer, days []freedays.DayInfo) error {
	if a.asJSON {
		return a.printValue(w, days)
	}
	for _, d := range days {
		if _, err := fmt.Fprintf(w, "%s  %s\n", d.Date.Format("2006-01-02"), d.Formatted); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printStrings(w io.Writer, lines []string) error {
	if a.asJSON {
		return a.printValue(w, lines)
	}
	for _, l := range lines {
		if _, err := fmt.Fprintln(w, l); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) printValue(w io.Writer, v any) error {
	if a.asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, v)
	return err
}
