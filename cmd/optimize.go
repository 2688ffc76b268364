package cmd

import (
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/internal/iooptimize"
	"github.com/spf13/cobra"
)

func getOptimizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "optimize",
		Short: "Remove stale data and refresh database statistics",
		Long: `Optimize performs routine maintenance:
  1. Removes sessions idle for longer than 'auth.session_ttl_minutes'
  2. Removes settings, blocks, messages and sessions of deleted users
     and trees
  3. Runs VACUUM and ANALYZE

It is safe to run at any time, for example from cron.

Examples:
  gnkin optimize`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runOptimize(cmd.Context())
		},
	}
}

func runOptimize(ctx context.Context) error {
	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	if _, err = iooptimize.New(op, cfg).Optimize(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}
