package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rabitt1ove/amlich"
	"github.com/spf13/cobra"
)

// holidayView is one row of the holidays command output.
type holidayView struct {
	Date  string `json:"date" yaml:"date"`
	Lunar string `json:"lunar" yaml:"lunar"`
	Name  string `json:"name" yaml:"name"`
	Kind  string `json:"kind" yaml:"kind"`
}

func newHolidaysCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays YEAR",
		Short: "List solar, lunar and custom holidays of a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("holidays: invalid year %q", args[0])
			}
			month, _ := cmd.Flags().GetInt("month")
			return runHolidays(cmd, opts, year, month)
		},
	}
	cmd.Flags().IntP("month", "m", 0, "Only list holidays of this month (1-12)")
	return cmd
}

func runHolidays(cmd *cobra.Command, opts *options, year, month int) error {
	if month < 0 || month > 12 {
		return fmt.Errorf("holidays: month %d out of range", month)
	}
	cal, err := opts.calendar()
	if err != nil {
		return err
	}

	var hs []amlich.Holiday
	if month == 0 {
		hs = cal.HolidaysInYear(year)
	} else {
		hs = cal.HolidaysInMonth(year, time.Month(month))
	}

	views := make([]holidayView, 0, len(hs))
	fields := make([]field, 0, len(hs))
	for _, h := range hs {
		v := holidayView{
			Date:  h.Date.Format("2006-01-02"),
			Lunar: opts.text(h.Lunar.String()),
			Name:  opts.text(h.Name),
			Kind:  h.Kind.String(),
		}
		views = append(views, v)
		fields = append(fields, field{v.Date, v.Name + " (" + v.Lunar + ")"})
	}
	return render(cmd.OutOrStdout(), opts.format, views, fields)
}
