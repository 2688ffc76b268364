package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/gnames/gn"
	"github.com/gnames/gnkin/internal/iotree"
	"github.com/gnames/gnkin/internal/iouser"
	"github.com/gnames/gnkin/internal/ioweb"
	"github.com/gnames/gnkin/pkg/config"
	"github.com/spf13/cobra"
)

func getServeCmd() *cobra.Command {
	var port int
	var debug bool

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API",
		Long: `Serve runs the JSON API until it receives SIGINT or SIGTERM.

Logs are appended to a rotated file when the log destination is 'file'.

Examples:
  gnkin serve
  gnkin serve --port 9000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if port > 0 {
				cfg.Update([]config.Option{config.OptServerPort(port)})
			}
			if !debug {
				gin.SetMode(gin.ReleaseMode)
			}
			return runServe(cmd.Context())
		},
	}

	serveCmd.Flags().IntVarP(&port, "port", "p", 0,
		"port of the API (default from config)")
	serveCmd.Flags().BoolVarP(&debug, "debug", "d", false,
		"run gin in debug mode")
	return serveCmd
}

func runServe(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	op, err := connect(ctx)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer op.Close()

	users, err := iouser.New(op, cfg)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer users.Close()

	srv := ioweb.New(cfg, users, iotree.New(op))
	gn.Info("Serving the API on port <em>%d</em>", cfg.Server.Port)
	if err = srv.Run(ctx); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Server stopped")
	return nil
}
