package cli

import (
	"fmt"

	"github.com/rabitt1ove/amlich"
	"github.com/spf13/cobra"
)

// solarView is the output of the solar command.
type solarView struct {
	Lunar   string `json:"lunar" yaml:"lunar"`
	Solar   string `json:"solar" yaml:"solar"`
	Weekday string `json:"weekday" yaml:"weekday"`
	Holiday string `json:"holiday,omitempty" yaml:"holiday,omitempty"`
}

func newSolarCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solar DD/MM/YYYY",
		Short: "Convert a lunar date to the solar calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			leap, _ := cmd.Flags().GetBool("leap")
			return runSolar(cmd, opts, args[0], leap)
		},
	}
	cmd.Flags().BoolP("leap", "l", false, "The date is in the leap month")
	return cmd
}

func runSolar(cmd *cobra.Command, opts *options, arg string, leap bool) error {
	cal, err := opts.calendar()
	if err != nil {
		return err
	}

	ld, err := amlich.ParseLunarDate(arg, leap)
	if err != nil {
		return fmt.Errorf("solar: %w", err)
	}
	t, err := cal.Solar(ld)
	if err != nil {
		return fmt.Errorf("solar: %w", err)
	}

	v := solarView{
		Lunar:   opts.text(ld.String()),
		Solar:   t.Format("2006-01-02"),
		Weekday: t.Weekday().String(),
		Holiday: opts.text(cal.HolidayName(t)),
	}
	return render(cmd.OutOrStdout(), opts.format, v, []field{
		{"lunar", v.Lunar},
		{"solar", v.Solar + " (" + v.Weekday + ")"},
		{"holiday", v.Holiday},
	})
}
