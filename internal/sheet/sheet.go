// Package sheet wraps spreadsheet operations over .xlsx workbooks.
package sheet

import (
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ListSheets returns the workbook's sheet names in order.
func ListSheets(path string) ([]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// ReadRows returns every row of a sheet as strings. An empty sheet name
// reads the first sheet.
func ReadRows(path, sheet string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows from %s: %w", name, err)
	}
	return rows, nil
}

// ReadCell returns a single cell's value.
func ReadCell(path, sheet, cell string) (string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	name, err := resolveSheet(f, sheet)
	if err != nil {
		return "", err
	}

	value, err := f.GetCellValue(name, cell)
	if err != nil {
		return "", fmt.Errorf("failed to read cell %s: %w", cell, err)
	}
	return value, nil
}

// WriteRows writes rows starting at startCell, creating the workbook and
// the sheet when they do not exist yet.
func WriteRows(path, sheet, startCell string, rows [][]any) error {
	var f *excelize.File
	if _, err := os.Stat(path); err == nil {
		f, err = excelize.OpenFile(path)
		if err != nil {
			return fmt.Errorf("failed to open workbook: %w", err)
		}
	} else {
		f = excelize.NewFile()
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}
	}

	if startCell == "" {
		startCell = "A1"
	}
	col, row, err := excelize.CellNameToCoordinates(startCell)
	if err != nil {
		return fmt.Errorf("invalid start cell %s: %w", startCell, err)
	}

	for i, values := range rows {
		cell, err := excelize.CoordinatesToCellName(col, row+i)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row+i, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func resolveSheet(f *excelize.File, sheet string) (string, error) {
	if sheet == "" {
		return f.GetSheetName(0), nil
	}
	idx, err := f.GetSheetIndex(sheet)
	if err != nil || idx < 0 {
		return "", fmt.Errorf("sheet not found: %s", sheet)
	}
	return sheet, nil
}
