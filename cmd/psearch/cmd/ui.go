package cmd

import (
	"github.com/spf13/cobra"

	"github.com/junetapa-juncheol/portfolio-search/internal/adapters/events"
	"github.com/junetapa-juncheol/portfolio-search/internal/adapters/tui"
	"github.com/junetapa-juncheol/portfolio-search/internal/app"
	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
	"github.com/junetapa-juncheol/portfolio-search/internal/session"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Start the interactive search session",
	RunE:  runUI,
}

var uiRemote string

func init() {
	uiCmd.Flags().StringVar(&uiRemote, "remote", "", "remote search endpoint to merge on submit")
}

func runUI(cmd *cobra.Command, args []string) error {
	a, err := openApp(app.Options{RemoteEndpoint: uiRemote})
	if err != nil {
		return err
	}
	defer a.Close()

	var sink ports.EventSink
	if debugEnabled() {
		sink = events.NewLogSink()
	}

	return tui.Run(func(r session.Renderer, nav ports.Navigator) *session.Controller {
		return a.NewController(r, sink, nav)
	}, a.Config.HighlightResults)
}
