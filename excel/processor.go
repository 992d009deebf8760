// Package excel reads contractor bill workbooks and hands the engine its
// raw sheet payloads. It knows nothing about billing arithmetic: sheet
// discovery and cell extraction only.
package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/billing"
)

// sheetNames maps canonical sheet names to the spellings accepted in
// uploaded workbooks. Matching is case-insensitive and ignores
// surrounding whitespace.
var sheetNames = map[string][]string{
	billing.SheetTitle:        {"Title"},
	billing.SheetWorkOrder:    {"Work Order", "WorkOrder"},
	billing.SheetBillQuantity: {"Bill Quantity", "BillQuantity", "Bill Qty"},
	billing.SheetExtraItems:   {"Extra Items", "ExtraItems", "Extra Item"},
}

// ReadWorkbook opens an .xlsx file and extracts the four billing sheets.
// Sheet-level validation (which sheets are mandatory) is the normalizer's
// concern; this only reports what was found.
func ReadWorkbook(path string) (billing.RawWorkbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return billing.RawWorkbook{}, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()
	return extract(f)
}

// ReadFrom extracts the billing sheets from an already-open workbook
// stream, for callers that hold uploads in memory.
func ReadFrom(r io.Reader) (billing.RawWorkbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return billing.RawWorkbook{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()
	return extract(f)
}

func extract(f *excelize.File) (billing.RawWorkbook, error) {
	wb := billing.RawWorkbook{Present: make(map[string]bool)}

	for _, actual := range f.GetSheetList() {
		canonical, ok := canonicalSheetName(actual)
		if !ok {
			continue
		}
		rows, err := f.GetRows(actual)
		if err != nil {
			return billing.RawWorkbook{}, fmt.Errorf("read sheet %s: %w", actual, err)
		}
		wb.Present[canonical] = true

		switch canonical {
		case billing.SheetTitle:
			wb.Title = titleRows(rows)
		case billing.SheetWorkOrder:
			wb.WorkOrder = tabularRows(rows)
		case billing.SheetBillQuantity:
			wb.BillQuantity = tabularRows(rows)
		case billing.SheetExtraItems:
			wb.ExtraItems = tabularRows(rows)
		}
	}
	return wb, nil
}

func canonicalSheetName(name string) (string, bool) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for canonical, variants := range sheetNames {
		for _, v := range variants {
			if norm == strings.ToLower(v) {
				return canonical, true
			}
		}
	}
	return "", false
}

// titleRows turns the free-form Title sheet into ordered key/value pairs:
// first non-empty cell is the label, the next non-empty cell the value.
func titleRows(rows [][]string) []billing.KeyValue {
	var kvs []billing.KeyValue
	for _, row := range rows {
		var cells []string
		for _, cell := range row {
			if strings.TrimSpace(cell) != "" {
				cells = append(cells, strings.TrimSpace(cell))
			}
		}
		if len(cells) == 0 {
			continue
		}
		kv := billing.KeyValue{Key: cells[0]}
		if len(cells) > 1 {
			kv.Value = strings.Join(cells[1:], " ")
		}
		kvs = append(kvs, kv)
	}
	return kvs
}

// tabularRows converts a header row plus data rows into row maps keyed by
// the raw header text. excelize truncates trailing empty cells, so short
// rows are padded by omission: missing cells simply read as "".
func tabularRows(rows [][]string) []billing.Row {
	headerIdx := -1
	for i, row := range rows {
		if len(trimRow(row)) > 0 {
			headerIdx = i
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	headers := rows[headerIdx]
	var out []billing.Row
	for _, row := range rows[headerIdx+1:] {
		if len(trimRow(row)) == 0 {
			continue
		}
		r := make(billing.Row, len(headers))
		for i, header := range headers {
			header = strings.TrimSpace(header)
			if header == "" {
				continue
			}
			if i < len(row) {
				r[header] = row[i]
			} else {
				r[header] = ""
			}
		}
		out = append(out, r)
	}
	return out
}

func trimRow(row []string) []string {
	var cells []string
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			cells = append(cells, cell)
		}
	}
	return cells
}
