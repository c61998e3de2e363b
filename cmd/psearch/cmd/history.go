package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/junetapa-juncheol/portfolio-search/internal/app"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage search history",
	RunE:  runHistoryList,
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <query>",
	Short: "Remove one history entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRemove,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all search history",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
	historyCmd.AddCommand(historyClearCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	a, err := openApp(app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	fmt.Print(formatHistory(a.History.Entries()))
	return nil
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp(app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	a.History.Remove(args[0])
	fmt.Printf("removed %q\n", args[0])
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	a, err := openApp(app.Options{})
	if err != nil {
		return err
	}
	defer a.Close()

	a.History.Clear()
	fmt.Println("history cleared")
	return nil
}
