package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junetapa-juncheol/portfolio-search/internal/app"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show index statistics",
	RunE:  runStats,
}

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp(app.Options{NoStore: true})
	if err != nil {
		return err
	}
	defer a.Close()

	idx := a.Engine.Index()

	byType := make(map[string]int)
	for _, item := range idx.Items {
		byType[string(item.Type)]++
	}

	fmt.Printf("%s⚡ psearch index%s\n", colorBold, colorReset)
	fmt.Printf("  Items:   %d\n", idx.Len())
	fmt.Printf("  Tokens:  %d\n", len(idx.Tokens))
	fmt.Printf("  Dropped: %d\n", idx.Dropped)
	for _, t := range []string{"page", "project", "post", "track"} {
		if n := byType[t]; n > 0 {
			fmt.Printf("  %-8s %d\n", t+":", n)
		}
	}
	return nil
}
