package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/junetapa-juncheol/portfolio-search/internal/app"
	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a one-shot search",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var (
	searchCategory string
	searchType     string
	searchDate     string
	searchLimit    int
	searchRemote   string
	searchJSON     bool
	searchNoSave   bool
)

func init() {
	searchCmd.Flags().StringVar(&searchCategory, "category", ports.FilterAll, "filter by category (about|portfolio|blog|music)")
	searchCmd.Flags().StringVar(&searchType, "type", ports.FilterAll, "filter by item type (page|project|post|track)")
	searchCmd.Flags().StringVar(&searchDate, "date", ports.FilterAll, "filter by date metadata")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "cap the number of results (0 = catalog default)")
	searchCmd.Flags().StringVar(&searchRemote, "remote", "", "remote search endpoint to merge on submit")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "emit results as JSON")
	searchCmd.Flags().BoolVar(&searchNoSave, "no-save", false, "do not record the query in history")
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	a, err := openApp(app.Options{
		RemoteEndpoint: searchRemote,
		NoStore:        searchNoSave,
	})
	if err != nil {
		return err
	}
	defer a.Close()

	cfg := a.Config
	if searchLimit > 0 {
		cfg.MaxResults = searchLimit
	}

	filters := ports.FilterState{Category: searchCategory, Type: searchType, Date: searchDate}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RemoteTimeout)
	defer cancel()
	results := a.Engine.Search(ctx, query, filters, true)
	if searchLimit > 0 && len(results) > searchLimit {
		results = results[:searchLimit]
	}

	if !searchNoSave {
		a.History.Add(query, nil)
	}

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"query": query, "results": results})
	}

	fmt.Print(formatResults(results, query, cfg.HighlightResults))
	if len(results) == 0 {
		fmt.Print(formatSuggestions(a.Engine.Suggest(query)))
	}
	return nil
}
