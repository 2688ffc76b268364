package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/pkg/census"
	"github.com/spf13/cobra"
)

func getCensusCmd() *cobra.Command {
	var asJSON bool

	censusCmd := &cobra.Command{
		Use:   "census [PLACE]",
		Short: "List national censuses",
		Long: `Census lists the censuses of a country, or of all countries when
PLACE is omitted.

Examples:
  gnkin census
  gnkin census France
  gnkin census "United States" --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			places := census.Places()
			if len(args) == 1 {
				p, ok := census.FindPlace(args[0])
				if !ok {
					err := fmt.Errorf("unknown census place '%s'", args[0])
					gn.Warn("%s", err)
					return err
				}
				places = []census.Place{p}
			}
			if asJSON {
				return printJSON(os.Stdout, places)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CENSUS\tDATE\tPLACE")
			for _, p := range places {
				for _, c := range p.Censuses {
					fmt.Fprintf(w, "%s\t%s\t%s\n", c.Label(), c.Date, c.Place)
				}
			}
			return w.Flush()
		},
	}

	censusCmd.Flags().BoolVarP(&asJSON, "json", "j", false, "print JSON")
	return censusCmd
}
