package cmd

import (
	"fmt"
	"strings"

	"github.com/junetapa-juncheol/portfolio-search/internal/domain/index"
	"github.com/junetapa-juncheol/portfolio-search/internal/ports"
)

// ANSI color codes for terminal output.
const (
	colorReset   = "\033[0m"
	colorBold    = "\033[1m"
	colorCyan    = "\033[36m"
	colorMagenta = "\033[35m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorGray    = "\033[90m"
)

// formatResults formats ranked results for terminal display.
//
//	⚡ 4 hits
//	  [project] E-Commerce Platform  (score 45.0)  #portfolio
//	    React와 Node.js로 구축한 풀스택 쇼핑몰...
//	    → #portfolio-1
func formatResults(results []ports.SearchResult, query string, highlight bool) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d hits%s\n", colorBold, len(results), colorReset))

	for _, r := range results {
		title := r.Title
		snippet := index.TruncateContent(r.Content, 100)
		if highlight {
			title = index.Highlight(title, query, colorYellow, colorReset)
			snippet = index.Highlight(snippet, query, colorYellow+colorGray, colorReset+colorGray)
		}

		remote := ""
		if r.IsRemote {
			remote = fmt.Sprintf("  %sremote%s", colorMagenta, colorReset)
		}
		sb.WriteString(fmt.Sprintf("  %s[%s]%s %s  %s(score %.1f)%s  %s#%s%s%s\n",
			colorCyan, r.Type, colorReset, title,
			colorGray, r.Score, colorReset,
			colorGreen, r.Category, colorReset, remote))
		if snippet != "" {
			sb.WriteString(fmt.Sprintf("    %s%s%s\n", colorGray, snippet, colorReset))
		}
		sb.WriteString(fmt.Sprintf("    → %s\n", r.URL))
	}
	return sb.String()
}

// formatSuggestions renders the suggestion list shown on empty results.
func formatSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%ssuggestions:%s", colorBold, colorReset))
	for _, s := range suggestions {
		sb.WriteString(" " + s)
	}
	sb.WriteString("\n")
	return sb.String()
}

// formatHistory renders stored history entries, most recent first.
func formatHistory(entries []ports.HistoryEntry) string {
	if len(entries) == 0 {
		return "no search history\n"
	}
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s⚡ %d entries%s\n", colorBold, len(entries), colorReset))
	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("  %d. %s%s%s", i+1, colorCyan, e.Query, colorReset))
		if e.Title != "" {
			sb.WriteString(fmt.Sprintf("  %s→ %s%s", colorGray, e.Title, colorReset))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
