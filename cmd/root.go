/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnkin/internal/iodb"
	"github.com/gnames/gnkin/internal/ioconfig"
	"github.com/gnames/gnkin/internal/iofs"
	"github.com/gnames/gnkin/internal/iologger"
	gnkin "github.com/gnames/gnkin/pkg"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/gnames/gnkin/pkg/db"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = getRootCmd()

func getRootCmd() *cobra.Command {
	res := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", gnkin.Version, gnkin.Build),
		Use:     "gnkin",
		Short:   "Users, family trees and surname traditions of a genealogy site",
		Long: `gnkin keeps the accounts of a genealogy site: users, their preferences,
sessions and roles in family trees. It also knows how surnames pass
between relatives in different cultures.

Commands:
  create    create the database schema
  migrate   update the schema to the latest version
  optimize  remove stale data, refresh statistics
  serve     run the JSON API
  user      manage accounts
  import    add accounts from a YAML roster
  tree      manage family trees
  names     suggest names of new relatives
  census    list national censuses
  config    show the effective configuration

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (GNKIN_*)
  3. Config file (~/.config/gnkin/config.yaml)
  4. Built-in defaults

Run 'gnkin config' to see all supported environment variables.`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "gnkin version" prefix
	res.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	res.Flags().BoolP("version", "V", false, "version for gnkin")

	res.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getOptimizeCmd(),
		getServeCmd(),
		getUserCmd(),
		getImportCmd(),
		getTreeCmd(),
		getNamesCmd(),
		getCensusCmd(),
		getConfigCmd(),
	)
	return res
}

func bootstrap(cmd *cobra.Command, _ []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfgPath := config.ConfigFilePath(homeDir)
	if opts, err = ioconfig.Load(cfgPath); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	cfg.Update(opts)

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// The server appends to a rotated log, other commands start fresh.
	appendLog := cmd.Name() == "serve"
	if err = iologger.Init(config.LogDir(homeDir), cfg.Log, appendLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded", "config_file", cfgPath)
	return nil
}

// connect opens the configured database. Callers close the operator.
func connect(ctx context.Context) (db.Operator, error) {
	if err := iofs.EnsureDatabaseDir(&cfg.Database); err != nil {
		return nil, err
	}
	op := iodb.NewOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return nil, err
	}

	if cfg.Database.Driver == "sqlite" {
		gn.Info("Connected to database: <em>%s</em>", cfg.Database.SQLitePath)
	} else {
		gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
			cfg.Database.User, cfg.Database.Host,
			cfg.Database.Port, cfg.Database.Database)
	}
	return op, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
