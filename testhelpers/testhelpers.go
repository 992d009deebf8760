// Package testhelpers builds synthetic bill workbooks for parser and
// batch tests.
package testhelpers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// BillSheets holds the raw cell grid for each sheet of a synthetic bill
// workbook. A nil sheet is omitted from the file entirely.
type BillSheets struct {
	Title        [][]string
	WorkOrder    [][]string
	BillQuantity [][]string
	ExtraItems   [][]string
}

// SampleBill returns a small final bill with one excess item, one
// unexecuted item, and one extra item.
func SampleBill() BillSheets {
	return BillSheets{
		Title: [][]string{
			{"Agreement No.", "48/2024-25"},
			{"Name of Work", "Construction of CC Road"},
			{"Name of Firm", "M/s Sharma Constructions"},
			{"Date of Commencement", "01/04/2024"},
			{"Schedule Date of Completion", "30/09/2024"},
			{"Bill Serial", "First & Final Bill"},
			{"Amount Paid Vide Last Bill", "0"},
		},
		WorkOrder: [][]string{
			{"Item No.", "Description", "Unit", "Qty", "Rate"},
			{"1", "Earthwork in excavation", "Cum", "100", "50"},
			{"2", "Cement concrete 1:2:4", "Cum", "50", "200"},
		},
		BillQuantity: [][]string{
			{"Item No.", "Description", "Unit", "Bill Qty", "Rate"},
			{"1", "Earthwork in excavation", "Cum", "120", "50"},
		},
		ExtraItems: [][]string{
			{"Item No.", "Description", "Unit", "Qty", "Rate"},
			{"E1", "Extra drain cover", "Rmt", "10", "80"},
		},
	}
}

// WorkbookBytes renders the sheets into an in-memory .xlsx file.
func WorkbookBytes(t *testing.T, sheets BillSheets) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	named := []struct {
		name string
		grid [][]string
	}{
		{"Title", sheets.Title},
		{"Work Order", sheets.WorkOrder},
		{"Bill Quantity", sheets.BillQuantity},
		{"Extra Items", sheets.ExtraItems},
	}

	first := true
	for _, sheet := range named {
		if sheet.grid == nil {
			continue
		}
		if first {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.name); err != nil {
				t.Fatalf("rename sheet: %v", err)
			}
			first = false
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				t.Fatalf("create sheet %s: %v", sheet.name, err)
			}
		}
		for r, row := range sheet.grid {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			rowCopy := row
			if err := f.SetSheetRow(sheet.name, cell, &rowCopy); err != nil {
				t.Fatalf("write row %d of %s: %v", r+1, sheet.name, err)
			}
		}
	}
	if first {
		t.Fatal("workbook needs at least one sheet")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("serialize workbook: %v", err)
	}
	return buf.Bytes()
}

// WriteWorkbook writes the sheets to <dir>/<name>.xlsx and returns the
// full path.
func WriteWorkbook(t *testing.T, dir, name string, sheets BillSheets) string {
	t.Helper()
	path := filepath.Join(dir, fmt.Sprintf("%s.xlsx", name))
	if err := os.WriteFile(path, WorkbookBytes(t, sheets), 0o644); err != nil {
		t.Fatalf("write workbook %s: %v", path, err)
	}
	return path
}
