package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/neboloop/webskills/internal/logging"
)

// SetupRootCmd builds the webskills command tree.
func SetupRootCmd() *cobra.Command {
	var quiet bool

	root := &cobra.Command{
		Use:   "webskills",
		Short: "Web automation skills toolkit",
		Long: `Webskills automates interaction with web pages, reusing your existing
logged-in browser profile instead of handling credentials. Browser-backed
commands (crawl, post) detect authentication, wait for you to log in
interactively when needed, and emit one JSON result record on stdout.

The remaining commands are one-shot utilities: page fetching, web search,
spreadsheets, PDF text and markdown rendering.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if quiet {
				logging.Disable()
			}
		},
	}

	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress progress logging on stderr")

	root.AddCommand(
		CrawlCmd(),
		PostCmd(),
		FetchCmd(),
		LinksCmd(),
		SearchCmd(),
		ExcelCmd(),
		PdfCmd(),
		RenderCmd(),
	)

	return root
}

// emitJSON writes the single machine-readable result record to stdout.
func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
