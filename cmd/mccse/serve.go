package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mccse/internal/explorer"
	"mccse/internal/logging"
	"mccse/internal/web"
)

var (
	serveAddr    string
	serveJSON    bool
	serveLogFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web-based scenario explorer",
	Long:  "serve starts an HTTP server with the input form, result metrics, session history, and JSON endpoints.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}
		writer, cleanup, err := newWriter(cat, serveJSON, serveLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		exp, err := explorer.New(cat, writer)
		if err != nil {
			return err
		}

		log := logging.New()
		ctx, cancel := context.WithCancel(logging.NewContext(context.Background(), log))
		defer cancel()

		srv := web.NewServer(exp)
		errCh := make(chan error, 1)
		go func() {
			log.Info("explorer UI listening", "addr", serveAddr, "session", exp.SessionID())
			if err := srv.Start(ctx, serveAddr); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case <-sigs:
		}
		cancel()
		log.Info("explorer stopped", "scenarios", exp.Stats().Scenarios)
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "HTTP listen address")
	serveCmd.Flags().BoolVar(&serveJSON, "json", true, "Also print evaluated scenarios as JSON to STDOUT")
	serveCmd.Flags().StringVar(&serveLogFile, "log-file", "", "Path to export scenario rows (JSONL)")
}
