package cmd

import (
	"fmt"
	"os"

	"github.com/gnames/gnkin/internal/ioconfig"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/spf13/cobra"
)

func getConfigCmd() *cobra.Command {
	var envOnly bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective configuration",
		Long: `Config prints the configuration after config.yaml and environment
variables were applied, followed by supported environment variables.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !envOnly {
				fmt.Printf("# %s\n", config.ConfigFilePath(cfg.HomeDir))
				if err := ioconfig.Dump(os.Stdout, cfg); err != nil {
					return err
				}
				fmt.Println()
			}
			fmt.Println("# Environment variables")
			for _, v := range ioconfig.EnvVars() {
				fmt.Println(v)
			}
			return nil
		},
	}

	configCmd.Flags().BoolVarP(&envOnly, "env", "e", false,
		"list environment variables only")
	return configCmd
}
