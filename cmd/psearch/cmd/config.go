package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/junetapa-juncheol/portfolio-search/internal/app"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long:  "Prints the search configuration after folding catalog settings over the defaults.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	a, err := openApp(app.Options{NoStore: true})
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.Config
	endpoint := cfg.RemoteEndpoint
	if endpoint == "" {
		endpoint = "(disabled)"
	}

	fmt.Printf("%s⚡ psearch config%s\n", colorBold, colorReset)
	fmt.Printf("  Catalog:          %s\n", catalogPath)
	fmt.Printf("  Min characters:   %d\n", cfg.MinCharacters)
	fmt.Printf("  Max results:      %d\n", cfg.MaxResults)
	fmt.Printf("  Max history:      %d\n", cfg.MaxHistoryItems)
	fmt.Printf("  Debounce:         %s\n", cfg.DebounceDelay)
	fmt.Printf("  History key:      %s\n", cfg.HistoryKey)
	fmt.Printf("  Remote endpoint:  %s\n", endpoint)
	fmt.Printf("  Remote timeout:   %s\n", cfg.RemoteTimeout)
	fmt.Printf("  Highlight:        %v\n", cfg.HighlightResults)
	fmt.Printf("  Suggestions:      %s\n", strings.Join(cfg.Suggestions, ", "))
	return nil
}
