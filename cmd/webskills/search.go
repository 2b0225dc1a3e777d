package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/neboloop/webskills/internal/websearch"
)

// SearchCmd creates the web-search command.
func SearchCmd() *cobra.Command {
	var max int

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search the web via DuckDuckGo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			client := &websearch.Client{}
			results, err := client.Search(cmd.Context(), query, max)
			if err != nil {
				return err
			}

			return emitJSON(map[string]any{
				"query":   query,
				"count":   len(results),
				"results": results,
			})
		},
	}

	cmd.Flags().IntVarP(&max, "max", "n", 0, "maximum number of results (default 10)")

	return cmd
}
