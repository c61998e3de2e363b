package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/junetapa-juncheol/portfolio-search/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "psearch",
	Short: "psearch — portfolio content search",
	Long:  "Keyword and fuzzy search over a portfolio content catalog, with history, suggestions, and an optional remote merge.",
}

var catalogPath string

// openApp builds the application for the configured catalog.
func openApp(opts app.Options) (*app.App, error) {
	return app.New(catalogPath, opts)
}

func debugEnabled() bool {
	return os.Getenv("PSEARCH_DEBUG") == "1"
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&catalogPath, "catalog", "c", "portfolio.yaml", "content catalog file")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
