package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/neboloop/webskills/internal/fetch"
)

// FetchCmd creates the plain HTTP page-fetch command.
func FetchCmd() *cobra.Command {
	var (
		selector  string
		maxLength int
		timeout   time.Duration
	)

	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch a page over plain HTTP and extract readable text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := fetch.Page(cmd.Context(), args[0], fetch.PageOptions{
				Selector:  selector,
				MaxLength: maxLength,
				Timeout:   timeout,
			})
			if err != nil {
				return err
			}
			return emitJSON(result)
		},
	}

	cmd.Flags().StringVarP(&selector, "selector", "s", "", "extract only elements matching this selector")
	cmd.Flags().IntVar(&maxLength, "max-length", 0, "truncate text to this many characters (default 4000)")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "request timeout (default 15s)")

	return cmd
}

// LinksCmd creates the link-extraction command.
func LinksCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "links <url>",
		Short: "List a page's links, categorized as internal, external or resource",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := fetch.Links(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			return emitJSON(result)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "maximum number of links (0 = all)")

	return cmd
}
