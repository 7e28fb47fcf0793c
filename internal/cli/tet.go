package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rabitt1ove/amlich"
	"github.com/spf13/cobra"
)

// tetView is the output of the tet command.
type tetView struct {
	Year     int    `json:"year" yaml:"year"`
	Name     string `json:"name" yaml:"name"`
	Date     string `json:"date" yaml:"date"`
	Weekday  string `json:"weekday" yaml:"weekday"`
	DaysLeft int    `json:"days_left" yaml:"days_left"`
}

func newTetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tet [YEAR]",
		Short: "Show the date of Tết Nguyên Đán (default: the next one)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTet(cmd, opts, 0, false)
			}
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("tet: invalid year %q", args[0])
			}
			return runTet(cmd, opts, year, true)
		},
	}
}

// runTet reports Tết of year, or the next Tết from today when hasYear is
// false.
func runTet(cmd *cobra.Command, opts *options, year int, hasYear bool) error {
	cal, err := opts.calendar()
	if err != nil {
		return err
	}

	now := opts.today(cal)
	var tet time.Time
	if !hasYear {
		tet = cal.NextTet(now)
	} else {
		tet = cal.TetDate(year)
	}
	ld := cal.Lunar(tet)

	y, m, d := now.Date()
	today := amlich.ToJulianDay(y, m, d)
	ty, tm, td := tet.Date()

	v := tetView{
		Year:     ld.Year,
		Name:     opts.text(amlich.StemBranchName(ld.Year)),
		Date:     tet.Format("2006-01-02"),
		Weekday:  tet.Weekday().String(),
		DaysLeft: amlich.ToJulianDay(ty, tm, td) - today,
	}
	return render(cmd.OutOrStdout(), opts.format, v, []field{
		{"tet", strconv.Itoa(v.Year) + " " + v.Name},
		{"date", v.Date + " (" + v.Weekday + ")"},
		{"days left", strconv.Itoa(v.DaysLeft)},
	})
}
