package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"mccse/internal/explorer"
	"mccse/internal/voyage"
)

var exploreLogFile string

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Run the interactive TUI scenario explorer",
	Long:  "explore opens a terminal UI with the catalog, an evaluate dialog, the scenario log, and a live cost breakdown.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		tui := explorer.NewTUIWriter(cat)
		defer tui.Close()

		var writer explorer.ResultWriter = tui
		if exploreLogFile != "" {
			fw, err := explorer.NewFileWriter(exploreLogFile)
			if err != nil {
				return err
			}
			defer fw.Close()
			writer = explorer.NewMultiWriter(tui, fw)
		}

		exp, err := explorer.New(cat, writer)
		if err != nil {
			return err
		}
		tui.SetEvaluator(func(req voyage.Request) {
			// Errors surface in the log only; the dialog stays simple.
			_, _ = exp.Evaluate(req)
		})

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs
		return nil
	},
}

func init() {
	exploreCmd.Flags().StringVar(&exploreLogFile, "log-file", "", "Path to export scenario rows (JSONL)")
}
