package cli

import (
	"fmt"
	"strconv"

	"github.com/rabitt1ove/amlich"
	"github.com/spf13/cobra"
)

// canChiView is the output of the canchi command.
type canChiView struct {
	Year      int    `json:"year" yaml:"year"`
	Name      string `json:"name" yaml:"name"`
	Stem      string `json:"stem" yaml:"stem"`
	Branch    string `json:"branch" yaml:"branch"`
	Animal    string `json:"animal" yaml:"animal"`
	LeapMonth int    `json:"leap_month,omitempty" yaml:"leap_month,omitempty"`
	Tet       string `json:"tet" yaml:"tet"`
}

func newCanChiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "canchi YEAR",
		Short: "Show the Can Chi name, zodiac and leap month of a lunar year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("canchi: invalid year %q", args[0])
			}
			return runCanChi(cmd, opts, year)
		},
	}
}

func runCanChi(cmd *cobra.Command, opts *options, year int) error {
	cal, err := opts.calendar()
	if err != nil {
		return err
	}

	branch := amlich.YearBranch(year)
	v := canChiView{
		Year:   year,
		Name:   opts.text(amlich.StemBranchName(year)),
		Stem:   opts.text(amlich.YearStem(year).String()),
		Branch: opts.text(branch.String()),
		Animal: branch.Animal(),
		Tet:    cal.TetDate(year).Format("2006-01-02"),
	}
	leap := ""
	if m, ok := cal.LeapMonth(year); ok {
		v.LeapMonth = m
		leap = strconv.Itoa(m)
	}

	return render(cmd.OutOrStdout(), opts.format, v, []field{
		{"year", strconv.Itoa(v.Year)},
		{"name", v.Name},
		{"zodiac", v.Branch + " (" + v.Animal + ")"},
		{"leap month", leap},
		{"tet", v.Tet},
	})
}
