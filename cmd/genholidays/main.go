// Command genholidays reads a holiday CSV and generates a Go source file
// containing the built-in holiday table.
//
// The CSV has a header row "country,date,name" and one row per holiday with
// the date written as MM-DD. Countries and dates keep the order in which
// they appear in the file. The source may be a local path or an HTTPS URL
// on an allow-listed host.
//
// Usage:
//
//	go run ./cmd/genholidays -source data/holidays.csv -output holidays_data.go
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	minExpectedRows = 1

	httpTimeout = 30 * time.Second
	maxRetries  = 3

	// Maximum source size to prevent memory exhaustion.
	maxCSVResponseSize = 1 * 1024 * 1024

	userAgent = "freedays-generator/1.0 (https://github.com/rabitt1ove/freedays)"
)

// retryBaseDelay is the base delay between retry attempts (variable for testing).
var retryBaseDelay = 2 * time.Second

// allowedSourceHosts is the set of hostnames a remote source may live on.
var allowedSourceHosts = map[string]bool{
	"raw.githubusercontent.com":  true,
	"gist.githubusercontent.com": true,
}

type holiday struct {
	country string
	date    string
	name    string
}

func main() {
	source := flag.String("source", "data/holidays.csv", "CSV file path or HTTPS URL")
	output := flag.String("output", "holidays_data.go", "output file path")
	pkg := flag.String("package", "freedays", "package name of the generated file")
	enc := flag.String("encoding", "utf-8", "character encoding of the source (WHATWG label)")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("genholidays: ")

	client := &http.Client{Timeout: httpTimeout}

	raw, err := openSource(client, *source)
	if err != nil {
		log.Fatalf("failed to open source: %v", err)
	}
	if c, ok := raw.(io.Closer); ok {
		defer c.Close()
	}

	body, err := decode(raw, *enc)
	if err != nil {
		log.Fatalf("failed to set up decoding: %v", err)
	}

	holidays, err := parseCSV(body)
	if err != nil {
		log.Fatalf("failed to parse CSV: %v", err)
	}

	if len(holidays) < minExpectedRows {
		log.Fatalf("validation failed: expected at least %d rows, got %d", minExpectedRows, len(holidays))
	}

	src, err := generate(*pkg, holidays)
	if err != nil {
		log.Fatalf("failed to generate source: %v", err)
	}

	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("wrote %d holidays to %s", len(holidays), *output)
}

// openSource returns a reader for a local file or a remote HTTPS source.
func openSource(client *http.Client, source string) (io.Reader, error) {
	if !strings.Contains(source, "://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
	if err := validateSourceURL(source); err != nil {
		return nil, err
	}
	return fetchWithRetry(client, source)
}

// validateSourceURL checks that a URL points to an allowed host (SSRF prevention).
func validateSourceURL(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowedSourceHosts[parsed.Hostname()] {
		return fmt.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

// fetchWithRetry fetches a URL with exponential backoff retries.
// The whole body is read so the connection is released before returning.
func fetchWithRetry(client *http.Client, url string) (io.Reader, error) {
	var lastErr error
	for attempt := range maxRetries {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			log.Printf("  retrying in %v (attempt %d/%d)", delay, attempt+1, maxRetries)
			time.Sleep(delay)
		}

		log.Printf("fetching %s", url)
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("GET %s: %w", url, err)
			log.Printf("  failed: %v", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
			log.Printf("  failed: status %d (retryable)", resp.StatusCode)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}

		b, err := io.ReadAll(io.LimitReader(resp.Body, maxCSVResponseSize))
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("GET %s: reading body: %w", url, err)
			continue
		}
		return bytes.NewReader(b), nil
	}
	return nil, lastErr
}

// decode wraps r so that it yields UTF-8 with any byte order mark removed.
// label is a WHATWG encoding label such as "utf-8" or "windows-1252".
func decode(r io.Reader, label string) (io.Reader, error) {
	var enc encoding.Encoding = unicode.UTF8
	if label != "" {
		e, err := htmlindex.Get(label)
		if err != nil {
			return nil, fmt.Errorf("unknown encoding %q: %w", label, err)
		}
		enc = e
	}
	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// parseCSV parses the holiday CSV and validates its format.
func parseCSV(r io.Reader) ([]holiday, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 3 {
		return nil, fmt.Errorf("unexpected header columns: %d (expected 3)", len(header))
	}
	for i, want := range []string{"country", "date", "name"} {
		if !strings.EqualFold(strings.TrimSpace(header[i]), want) {
			return nil, fmt.Errorf("unexpected header: %q (expected country,date,name)", strings.Join(header, ","))
		}
	}

	var holidays []holiday
	seen := make(map[string]bool)
	lineNum := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		lineNum++

		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: expected 3 columns, got %d", lineNum, len(record))
		}

		country := strings.TrimSpace(record[0])
		date := strings.TrimSpace(record[1])
		name := strings.Join(strings.Fields(record[2]), " ")

		if country == "" && date == "" {
			continue
		}
		if country == "" {
			return nil, fmt.Errorf("line %d: missing country", lineNum)
		}

		// Year 0 is a leap year, so "02-29" parses.
		if _, err := time.Parse("01-02", date); err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q: %w", lineNum, date, err)
		}

		key := country + "/" + date
		if seen[key] {
			return nil, fmt.Errorf("line %d: duplicate date %s for %s", lineNum, date, country)
		}
		seen[key] = true

		holidays = append(holidays, holiday{country: country, date: date, name: name})
	}

	return holidays, nil
}

// groupByCountry keeps countries in order of first appearance.
func groupByCountry(holidays []holiday) ([]string, map[string][]holiday) {
	var order []string
	groups := make(map[string][]holiday)
	for _, h := range holidays {
		if _, ok := groups[h.country]; !ok {
			order = append(order, h.country)
		}
		groups[h.country] = append(groups[h.country], h)
	}
	return order, groups
}

// generate produces a formatted Go source file containing the holiday table.
func generate(pkg string, holidays []holiday) ([]byte, error) {
	order, groups := groupByCountry(holidays)

	var b strings.Builder
	b.WriteString("// Code generated by cmd/genholidays; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	b.WriteString("var builtinTable = []CountryHolidays{\n")

	for _, country := range order {
		fmt.Fprintf(&b, "\t{\n\t\tCountry: %q,\n\t\tDates: []string{\n", country)
		for _, h := range groups[country] {
			if h.name != "" {
				fmt.Fprintf(&b, "\t\t\t%q, // %s\n", h.date, h.name)
			} else {
				fmt.Fprintf(&b, "\t\t\t%q,\n", h.date)
			}
		}
		b.WriteString("\t\t},\n\t},\n")
	}

	b.WriteString("}\n")

	return format.Source([]byte(b.String()))
}
