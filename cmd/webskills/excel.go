package cli

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/neboloop/webskills/internal/sheet"
)

// ExcelCmd creates the spreadsheet command group.
func ExcelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "excel",
		Short: "Read and write .xlsx workbooks",
	}

	cmd.AddCommand(
		excelSheetsCmd(),
		excelRowsCmd(),
		excelCellCmd(),
		excelWriteCmd(),
	)

	return cmd
}

func excelSheetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <file>",
		Short: "List a workbook's sheet names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := sheet.ListSheets(args[0])
			if err != nil {
				return err
			}
			return emitJSON(map[string]any{"file": args[0], "sheets": names})
		},
	}
}

func excelRowsCmd() *cobra.Command {
	var sheetName string

	cmd := &cobra.Command{
		Use:   "rows <file>",
		Short: "Read every row of a sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := sheet.ReadRows(args[0], sheetName)
			if err != nil {
				return err
			}
			return emitJSON(map[string]any{"file": args[0], "count": len(rows), "rows": rows})
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "sheet name (default first sheet)")

	return cmd
}

func excelCellCmd() *cobra.Command {
	var sheetName string

	cmd := &cobra.Command{
		Use:   "cell <file> <cell>",
		Short: "Read a single cell, e.g. B2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := sheet.ReadCell(args[0], sheetName, args[1])
			if err != nil {
				return err
			}
			return emitJSON(map[string]any{"file": args[0], "cell": args[1], "value": value})
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "sheet name (default first sheet)")

	return cmd
}

func excelWriteCmd() *cobra.Command {
	var (
		sheetName string
		startCell string
		rawRows   []string
	)

	cmd := &cobra.Command{
		Use:   "write <file>",
		Short: "Write rows into a workbook, creating it when missing",
		Long: `Write takes one --row flag per row, each a comma-separated list of cell
values (quoting rules follow CSV):

  webskills excel write report.xlsx --row "name,score" --row "ada,97"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(rawRows) == 0 {
				return fmt.Errorf("at least one --row is required")
			}

			rows := make([][]any, 0, len(rawRows))
			for _, raw := range rawRows {
				fields, err := csv.NewReader(strings.NewReader(raw)).Read()
				if err != nil {
					return fmt.Errorf("invalid row %q: %w", raw, err)
				}
				values := make([]any, len(fields))
				for i, f := range fields {
					values[i] = f
				}
				rows = append(rows, values)
			}

			if err := sheet.WriteRows(args[0], sheetName, startCell, rows); err != nil {
				return err
			}
			return emitJSON(map[string]any{"file": args[0], "written": len(rows)})
		},
	}

	cmd.Flags().StringVar(&sheetName, "sheet", "", "sheet name (default first sheet, created when missing)")
	cmd.Flags().StringVar(&startCell, "start", "A1", "top-left cell of the written block")
	cmd.Flags().StringArrayVar(&rawRows, "row", nil, "comma-separated cell values (repeatable)")

	return cmd
}
