package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/internal/ioimport"
	"github.com/gnames/gnkin/pkg/roster"
	"github.com/spf13/cobra"
)

func getImportCmd() *cobra.Command {
	var example bool

	importCmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add accounts from a YAML roster",
		Long: `Import adds every account listed in a YAML roster. Accounts whose
user name or email already exists are skipped.

Passwords are hashed concurrently by 'jobs_number' workers and rows are
inserted in batches of 'database.batch_size'.

Use --example to write an annotated roster to FILE instead.

Examples:
  gnkin import --example users.yaml
  gnkin import users.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if example {
				if err := roster.GenerateExample(args[0]); err != nil {
					gn.Warn("%s", err)
					return err
				}
				gn.Info("Example roster written to <em>%s</em>", args[0])
				return nil
			}
			return runImport(cmd.Context(), args[0])
		},
	}

	importCmd.Flags().BoolVarP(&example, "example", "e", false,
		"write an example roster to FILE")
	return importCmd
}

func runImport(ctx context.Context, path string) error {
	r, err := roster.Load(path)
	if err != nil {
		gn.Warn("%s", err)
		return err
	}

	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	if _, err = ioimport.New(op, cfg).Import(ctx, r); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
