package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/rabitt1ove/amlich"
	"gopkg.in/yaml.v3"
)

// field is one labeled line of text output.
type field struct {
	label string
	value string
}

// render writes v as JSON or YAML, or the fields as aligned text lines.
func render(w io.Writer, format string, v any, fields []field) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\n", f.label, f.value)
	}
	return tw.Flush()
}

// customHoliday is one entry of a --holidays file.
type customHoliday struct {
	Date string `yaml:"date"`
	Name string `yaml:"name"`
}

// loadCustomHolidays reads a YAML list of {date: YYYY-MM-DD, name: ...}
// entries and registers them on cal.
func loadCustomHolidays(r io.Reader, cal *amlich.Calendar) error {
	var entries []customHoliday
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&entries); err != nil && err != io.EOF {
		return fmt.Errorf("decode: %w", err)
	}
	for i, e := range entries {
		d, err := amlich.ParseSolarDate(e.Date)
		if err != nil {
			return fmt.Errorf("entry %d: %w", i, err)
		}
		if e.Name == "" {
			return fmt.Errorf("entry %d: empty name", i)
		}
		cal.AddCustomHoliday(d.Time(cal.Location()), e.Name)
	}
	return nil
}
