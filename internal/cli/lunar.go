package cli

import (
	"fmt"

	"github.com/rabitt1ove/amlich"
	"github.com/spf13/cobra"
)

// lunarView is the output of the lunar command.
type lunarView struct {
	Solar     string           `json:"solar" yaml:"solar"`
	Weekday   string           `json:"weekday" yaml:"weekday"`
	Lunar     amlich.LunarDate `json:"lunar" yaml:"lunar"`
	Text      string           `json:"text" yaml:"text"`
	YearName  string           `json:"year_name" yaml:"year_name"`
	Zodiac    string           `json:"zodiac" yaml:"zodiac"`
	MonthName string           `json:"month_name" yaml:"month_name"`
	DayName   string           `json:"day_name" yaml:"day_name"`
	Holiday   string           `json:"holiday,omitempty" yaml:"holiday,omitempty"`
}

func newLunarCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lunar [YYYY-MM-DD]",
		Short: "Convert a solar date to the lunar calendar (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLunar(cmd, opts, args)
		},
	}
}

func runLunar(cmd *cobra.Command, opts *options, args []string) error {
	cal, err := opts.calendar()
	if err != nil {
		return err
	}

	var sd amlich.SolarDate
	if len(args) == 1 {
		sd, err = amlich.ParseSolarDate(args[0])
		if err != nil {
			return fmt.Errorf("lunar: %w", err)
		}
	} else {
		y, m, d := opts.today(cal).Date()
		sd = amlich.SolarDate{Year: y, Month: m, Day: d}
	}

	t := sd.Time(cal.Location())
	ld := cal.Lunar(t)
	branch := amlich.YearBranch(ld.Year)
	v := lunarView{
		Solar:     sd.String(),
		Weekday:   t.Weekday().String(),
		Lunar:     ld,
		Text:      opts.text(ld.String()),
		YearName:  opts.text(amlich.StemBranchName(ld.Year)),
		Zodiac:    branch.Animal(),
		MonthName: opts.text(amlich.MonthStemBranch(ld.Month, ld.Year)),
		DayName:   opts.text(amlich.DayStemBranch(sd.JulianDay())),
		Holiday:   opts.text(cal.HolidayName(t)),
	}

	return render(cmd.OutOrStdout(), opts.format, v, []field{
		{"solar", v.Solar + " (" + v.Weekday + ")"},
		{"lunar", v.Text},
		{"year", v.YearName + " (" + v.Zodiac + ")"},
		{"month", v.MonthName},
		{"day", v.DayName},
		{"holiday", v.Holiday},
	})
}
