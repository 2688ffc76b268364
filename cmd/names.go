package cmd

import (
	"fmt"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/pkg/surname"
	"github.com/spf13/cobra"
)

type namesFlags struct {
	tradition string
	father    string
	mother    string
	child     string
	spouse    string
	sex       string
}

func getNamesCmd() *cobra.Command {
	var f namesFlags

	namesCmd := &cobra.Command{
		Use:   "names child|parent|spouse",
		Short: "Suggest names of a new relative",
		Long: `Names prints GEDCOM name fields for a new child, parent or spouse
under a surname tradition. Names use slashes around surnames.

Examples:
  gnkin names child -s spanish \
    --father "Gabriel /Garcia/ /Iglesias/" --mother "Maria /Ruiz/ /Lorca/"
  gnkin names parent -s icelandic --child "Olaf Jonsson" --sex M
  gnkin names spouse -s polish --spouse "Jan /Kowalski/" --sex F`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"child", "parent", "spouse"},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := suggestNames(args[0], f)
			if err != nil {
				gn.Warn("%s", err)
				return err
			}
			return printJSON(os.Stdout, res)
		},
	}

	fs := namesCmd.Flags()
	fs.StringVarP(&f.tradition, "tradition", "s", surname.Paternal, "surname tradition")
	fs.StringVar(&f.father, "father", "", "name of the father")
	fs.StringVar(&f.mother, "mother", "", "name of the mother")
	fs.StringVar(&f.child, "child", "", "name of the child")
	fs.StringVar(&f.spouse, "spouse", "", "name of the spouse")
	fs.StringVar(&f.sex, "sex", "U", "sex of the new relative (M, F or U)")
	return namesCmd
}

func suggestNames(relation string, f namesFlags) (surname.Names, error) {
	trad, err := surname.New(f.tradition)
	if err != nil {
		return nil, err
	}
	sex := surname.ParseSex(f.sex)
	switch relation {
	case "child":
		return trad.NewChildNames(f.father, f.mother, sex), nil
	case "parent":
		return trad.NewParentNames(f.child, sex), nil
	case "spouse":
		return trad.NewSpouseNames(f.spouse, sex), nil
	}
	return nil, fmt.Errorf("unknown relation '%s', use child, parent or spouse", relation)
}
