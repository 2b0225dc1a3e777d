package cli

import (
	"github.com/spf13/cobra"

	"github.com/neboloop/webskills/internal/pdftext"
)

// PdfCmd creates the PDF command group.
func PdfCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Inspect PDFs and extract their text",
	}

	cmd.AddCommand(pdfInfoCmd(), pdfTextCmd())

	return cmd
}

func pdfInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show basic document facts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := pdftext.ReadInfo(args[0])
			if err != nil {
				return err
			}
			return emitJSON(info)
		},
	}
}

func pdfTextCmd() *cobra.Command {
	var from, to int

	cmd := &cobra.Command{
		Use:   "text <file>",
		Short: "Extract text from a page range",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := pdftext.Extract(args[0], from, to)
			if err != nil {
				return err
			}
			return emitJSON(text)
		},
	}

	cmd.Flags().IntVar(&from, "from", 0, "first page (default 1)")
	cmd.Flags().IntVar(&to, "to", 0, "last page (default last)")

	return cmd
}
