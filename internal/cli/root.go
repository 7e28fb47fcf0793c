// Package cli implements the amlich CLI commands.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rabitt1ove/amlich"
	"github.com/spf13/cobra"
)

// tzEnv overrides the default UTC offset when --tz is not given.
const tzEnv = "AMLICH_TZ"

// options holds the persistent flags shared by every command.
type options struct {
	tz           float64
	format       string
	ascii        bool
	holidaysFile string

	// now is the clock used for commands that default to today.
	now func() time.Time
}

// NewRootCmd builds the top-level command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&options{now: time.Now})
}

func newRootCmd(opts *options) *cobra.Command {
	root := &cobra.Command{
		Use:           "amlich",
		Short:         "Vietnamese lunar calendar",
		Long:          "Convert between solar and Vietnamese lunar dates, name years in the Can Chi cycle and list traditional holidays.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	root.PersistentFlags().Float64VarP(&opts.tz, "tz", "z", amlich.DefaultTimeZone, "UTC offset in hours (default: $"+tzEnv+" or 7)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "text", "Output format: text, json or yaml")
	root.PersistentFlags().BoolVar(&opts.ascii, "ascii", false, "Strip Vietnamese diacritics from names")
	root.PersistentFlags().StringVar(&opts.holidaysFile, "holidays", "", "YAML file of custom holidays")

	root.AddCommand(
		newLunarCmd(opts),
		newSolarCmd(opts),
		newCanChiCmd(opts),
		newHolidaysCmd(opts),
		newTetCmd(opts),
	)
	return root
}

// resolve applies environment defaults and checks flag values.
func (o *options) resolve(cmd *cobra.Command) error {
	if !cmd.Flags().Changed("tz") {
		if env := os.Getenv(tzEnv); env != "" {
			v, err := strconv.ParseFloat(env, 64)
			if err != nil {
				return fmt.Errorf("parse $%s: %w", tzEnv, err)
			}
			o.tz = v
		}
	}
	switch o.format {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("unknown format %q", o.format)
	}
	return nil
}

// calendar returns a calendar for the configured zone with custom holidays
// loaded.
func (o *options) calendar() (*amlich.Calendar, error) {
	cal := amlich.NewInZone(o.tz)
	if o.holidaysFile == "" {
		return cal, nil
	}
	f, err := os.Open(o.holidaysFile)
	if err != nil {
		return nil, fmt.Errorf("open holidays: %w", err)
	}
	defer f.Close()
	if err := loadCustomHolidays(f, cal); err != nil {
		return nil, fmt.Errorf("load holidays %s: %w", o.holidaysFile, err)
	}
	return cal, nil
}

// text applies the --ascii flag to a display string.
func (o *options) text(s string) string {
	if o.ascii {
		return amlich.ASCII(s)
	}
	return s
}

func (o *options) today(cal *amlich.Calendar) time.Time {
	return o.now().In(cal.Location())
}
