package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neboloop/webskills/internal/markdown"
)

// RenderCmd creates the markdown-rendering command.
func RenderCmd() *cobra.Command {
	var (
		out      string
		title    string
		fragment bool
	)

	cmd := &cobra.Command{
		Use:   "render <file.md>",
		Short: "Render markdown to HTML with GFM and highlighted code fences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			var html string
			if fragment {
				html, err = markdown.Render(string(content))
			} else {
				if title == "" {
					title = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
				}
				html, err = markdown.RenderDocument(title, string(content))
			}
			if err != nil {
				return err
			}

			if out != "" {
				if err := os.WriteFile(out, []byte(html), 0o644); err != nil {
					return err
				}
				return emitJSON(map[string]any{"file": args[0], "out": out})
			}
			return emitJSON(map[string]any{"file": args[0], "html": html})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write HTML to this file instead of the JSON record")
	cmd.Flags().StringVar(&title, "title", "", "document title (default derived from the filename)")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "emit an HTML fragment instead of a full document")

	return cmd
}
