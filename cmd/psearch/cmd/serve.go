package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/junetapa-juncheol/portfolio-search/internal/adapters/fsnotify"
	"github.com/junetapa-juncheol/portfolio-search/internal/adapters/web"
	"github.com/junetapa-juncheol/portfolio-search/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the search index over HTTP",
	Long:  "Serves /api/search and /api/health on localhost and rebuilds the index whenever the catalog file changes.",
	RunE:  runServe,
}

var (
	servePort  int
	serveWatch bool
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 7700, "port to listen on (0 picks a free one)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", true, "rebuild the index when the catalog changes")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := openApp(app.Options{NoStore: true})
	if err != nil {
		return err
	}
	defer a.Close()

	srv := web.NewServer(a.Engine)
	if err := srv.Start(servePort); err != nil {
		return err
	}
	defer srv.Stop()
	fmt.Printf("listening on http://127.0.0.1:%d (%d items)\n", srv.Port(), a.Engine.Index().Len())

	if serveWatch {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		defer w.Stop()
		err = w.Watch(catalogPath, func() {
			if err := a.Rebuild(); err != nil {
				log.Printf("rebuild failed, keeping previous index: %v", err)
				return
			}
			log.Printf("catalog changed, index rebuilt (%d items)", a.Engine.Index().Len())
		})
		if err != nil {
			return fmt.Errorf("watch catalog: %w", err)
		}
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	fmt.Println("\nshutting down")
	return nil
}
