// psearch is a portfolio content search engine.
// Single binary — keyword and fuzzy search over a YAML content catalog,
// with an interactive terminal UI and an HTTP search endpoint.
package main

import (
	"os"

	"github.com/junetapa-juncheol/portfolio-search/cmd/psearch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
