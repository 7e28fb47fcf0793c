// Command genholidays reads the Vietnamese holiday definitions from a YAML
// file and generates a Go source file containing the solar and lunar
// holiday tables as map literals.
//
// Holiday names are normalized to Unicode NFC, so definitions typed with
// combining diacritics compile to the same strings as precomposed ones.
//
// Usage:
//
//	go run ./cmd/genholidays -input holidays.yaml -output holidays_data.go
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"go.uber.org/multierr"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

const (
	// Minimum table sizes; fewer entries means a truncated input file.
	minSolarRows = 1
	minLunarRows = 1

	// Maximum input size to prevent memory exhaustion.
	maxInputSize = 1 * 1024 * 1024
)

// entry is one holiday definition as it appears in the YAML file.
type entry struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

// definitions is the top-level YAML document.
type definitions struct {
	Solar []entry `yaml:"solar"`
	Lunar []entry `yaml:"lunar"`
}

type holiday struct {
	month int
	day   int
	name  string
}

// tables holds the validated holidays of both calendars.
type tables struct {
	solar []holiday
	lunar []holiday
}

// maxSolarDay is the longest length of each Gregorian month, leap years
// included.
var maxSolarDay = [13]int{0, 31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func main() {
	input := flag.String("input", "holidays.yaml", "holiday definitions file")
	output := flag.String("output", "holidays_data.go", "output file path")
	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("genholidays: ")

	f, err := os.Open(*input)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}
	defer f.Close()

	tabs, err := parseYAML(io.LimitReader(f, maxInputSize))
	if err != nil {
		log.Fatalf("failed to parse definitions: %v", err)
	}

	if len(tabs.solar) < minSolarRows || len(tabs.lunar) < minLunarRows {
		log.Fatalf("validation failed: expected at least %d solar and %d lunar rows, got %d and %d",
			minSolarRows, minLunarRows, len(tabs.solar), len(tabs.lunar))
	}

	src, err := generate(tabs)
	if err != nil {
		log.Fatalf("failed to generate source: %v", err)
	}

	if err := os.WriteFile(*output, src, 0644); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}

	log.Printf("wrote %d solar and %d lunar holidays to %s", len(tabs.solar), len(tabs.lunar), *output)
}

// parseYAML decodes and validates holiday definitions. Every invalid entry
// is reported, not only the first.
func parseYAML(r io.Reader) (tables, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var defs definitions
	if err := dec.Decode(&defs); err != nil {
		if err == io.EOF {
			return tables{}, fmt.Errorf("empty input")
		}
		return tables{}, fmt.Errorf("decoding YAML: %w", err)
	}

	var errs error
	solar, err := validate("solar", defs.Solar, func(m int) int { return maxSolarDay[m] })
	errs = multierr.Append(errs, err)
	lunar, err := validate("lunar", defs.Lunar, func(int) int { return 30 })
	errs = multierr.Append(errs, err)
	if errs != nil {
		return tables{}, errs
	}
	return tables{solar: solar, lunar: lunar}, nil
}

// validate checks one table. maxDay gives the largest valid day of a month.
func validate(table string, entries []entry, maxDay func(month int) int) ([]holiday, error) {
	var errs error
	seen := make(map[[2]int]int)
	var out []holiday
	for i, e := range entries {
		pos := fmt.Sprintf("%s[%d]", table, i)

		month, day, err := parseMonthDay(e.Date)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", pos, err))
			continue
		}
		if day > maxDay(month) {
			errs = multierr.Append(errs, fmt.Errorf("%s: day %d out of range for month %d", pos, day, month))
			continue
		}

		name := norm.NFC.String(strings.TrimSpace(e.Name))
		if name == "" {
			errs = multierr.Append(errs, fmt.Errorf("%s: empty name", pos))
			continue
		}

		key := [2]int{month, day}
		if prev, ok := seen[key]; ok {
			errs = multierr.Append(errs, fmt.Errorf("%s: duplicate date %q (first at %s[%d])", pos, e.Date, table, prev))
			continue
		}
		seen[key] = i

		out = append(out, holiday{month: month, day: day, name: name})
	}
	return out, errs
}

// parseMonthDay parses an "MM-DD" date.
func parseMonthDay(s string) (month, day int, err error) {
	s = strings.TrimSpace(s)
	if _, err := fmt.Sscanf(s, "%d-%d", &month, &day); err != nil {
		return 0, 0, fmt.Errorf("invalid date %q: expected MM-DD", s)
	}
	if month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid date %q: month out of range", s)
	}
	if day < 1 {
		return 0, 0, fmt.Errorf("invalid date %q: day out of range", s)
	}
	return month, day, nil
}

// monthConstName returns the time.Month constant name (e.g., "time.January").
func monthConstName(m int) string {
	return "time." + [...]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}[m-1]
}

func sortHolidays(hs []holiday) {
	sort.Slice(hs, func(i, j int) bool {
		if hs[i].month != hs[j].month {
			return hs[i].month < hs[j].month
		}
		return hs[i].day < hs[j].day
	})
}

// generate produces a formatted Go source file containing both tables.
func generate(tabs tables) ([]byte, error) {
	sortHolidays(tabs.solar)
	sortHolidays(tabs.lunar)

	var b bytes.Buffer
	b.WriteString("// Code generated by cmd/genholidays; DO NOT EDIT.\n\n")
	b.WriteString("package amlich\n\n")
	b.WriteString("import \"time\"\n\n")

	b.WriteString("// solarHolidays holds the holidays fixed in the Gregorian calendar.\n")
	b.WriteString("var solarHolidays = map[solarKey]string{\n")
	for _, h := range tabs.solar {
		fmt.Fprintf(&b, "\t{%s, %d}: %q,\n", monthConstName(h.month), h.day, h.name)
	}
	b.WriteString("}\n\n")

	b.WriteString("// lunarHolidays holds the holidays fixed in the lunar calendar.\n")
	b.WriteString("var lunarHolidays = map[lunarKey]string{\n")
	for _, h := range tabs.lunar {
		fmt.Fprintf(&b, "\t{%d, %d}: %q,\n", h.month, h.day, h.name)
	}
	b.WriteString("}\n")

	return format.Source(b.Bytes())
}
