package billing

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Canonical sheet names. The parsing collaborator reports which of these it
// found; Title, Work Order, and Bill Quantity are mandatory.
const (
	SheetTitle        = "Title"
	SheetWorkOrder    = "Work Order"
	SheetBillQuantity = "Bill Quantity"
	SheetExtraItems   = "Extra Items"
)

// Row is one tabular sheet row keyed by the raw header text of each column.
type Row map[string]string

// KeyValue is one Title-sheet entry in sheet order.
type KeyValue struct {
	Key   string
	Value string
}

// RawWorkbook is the input contract with the spreadsheet parser. Present
// records the sheets actually found so an empty sheet can be told apart
// from a missing one.
type RawWorkbook struct {
	Title        []KeyValue
	WorkOrder    []Row
	BillQuantity []Row
	ExtraItems   []Row
	Present      map[string]bool
}

// columnAliases maps each canonical field to the header spellings seen in
// the wild. Resolution is case-insensitive and ignores trailing periods;
// headers that match nothing are ignored.
var columnAliases = map[string][]string{
	"item_no":     {"Item No", "Item", "S.No", "Sr.No", "Serial No"},
	"description": {"Description", "Description of Work", "Item Description", "Work Description"},
	"unit":        {"Unit", "Units", "UOM"},
	"quantity":    {"Quantity", "Qty", "Work Order Qty", "Ordered Qty", "Bill Qty", "Bill Quantity", "Executed Qty", "Completed Qty"},
	"rate":        {"Rate", "Unit Rate", "Rate per Unit"},
	"remark":      {"Remark", "Remarks", "Comments", "Notes"},
}

// requiredFields must resolve to a column in every required tabular sheet.
var requiredFields = []string{"item_no", "quantity", "rate"}

func normalizeHeader(h string) string {
	h = strings.TrimSpace(h)
	h = strings.TrimSuffix(h, ".")
	return strings.ToLower(h)
}

// resolveColumns maps raw header text to canonical field names for one
// sheet. The first header matching an alias wins; later duplicates are
// ignored like any other unrecognized column.
func resolveColumns(rows []Row) map[string]string {
	resolved := make(map[string]string)
	taken := make(map[string]bool)
	for _, row := range rows {
		for header := range row {
			norm := normalizeHeader(header)
			for field, aliases := range columnAliases {
				if taken[field] {
					continue
				}
				for _, alias := range aliases {
					if norm == normalizeHeader(alias) {
						resolved[header] = field
						taken[field] = true
						break
					}
				}
			}
		}
	}
	return resolved
}

// coerceNumeric turns a cell value into a float64. Currency symbols,
// commas, and inner spaces are stripped first. The second return reports
// whether the cell was genuinely numeric; blank and placeholder cells
// ("nil", "n/a", "-") coerce to zero like any other failure.
func coerceNumeric(raw string) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	switch strings.ToLower(s) {
	case "nil", "na", "n/a", "-":
		return 0, false
	}
	cleaned := strings.NewReplacer("₹", "", "Rs.", "", ",", "", " ", "").Replace(s)
	v, err := cast.ToFloat64E(cleaned)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Normalize turns a raw workbook into canonical records plus project
// metadata. It fails with MissingSheetError or ColumnMappingError; every
// other oddity becomes a Diagnostic on the returned bill.
func Normalize(wb RawWorkbook) (*NormalizedBill, error) {
	for _, sheet := range []string{SheetTitle, SheetWorkOrder, SheetBillQuantity} {
		if !wb.Present[sheet] {
			return nil, &MissingSheetError{Sheet: sheet}
		}
	}

	nb := &NormalizedBill{
		Metadata: extractMetadata(wb.Title),
	}

	var err error
	nb.WorkOrder, err = normalizeSheet(wb.WorkOrder, SheetWorkOrder, SourceWorkOrder, true, &nb.Diagnostics)
	if err != nil {
		return nil, err
	}
	nb.Executed, err = normalizeSheet(wb.BillQuantity, SheetBillQuantity, SourceExecuted, true, &nb.Diagnostics)
	if err != nil {
		return nil, err
	}
	if wb.Present[SheetExtraItems] {
		nb.Extra, err = normalizeSheet(wb.ExtraItems, SheetExtraItems, SourceExtra, false, &nb.Diagnostics)
		if err != nil {
			return nil, err
		}
	}
	return nb, nil
}

// normalizeSheet converts one tabular sheet. Required sheets must resolve
// every required field once they contain data rows; optional sheets take
// whatever columns they have.
func normalizeSheet(rows []Row, sheet string, source ItemSource, required bool, diags *[]Diagnostic) ([]LineItem, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	columns := resolveColumns(rows)
	if required {
		have := make(map[string]bool)
		for _, field := range columns {
			have[field] = true
		}
		for _, field := range requiredFields {
			if !have[field] {
				return nil, &ColumnMappingError{Sheet: sheet, Field: field}
			}
		}
	}

	items := make([]LineItem, 0, len(rows))
	for _, row := range rows {
		fields := make(map[string]string)
		for header, value := range row {
			if field, ok := columns[header]; ok {
				fields[field] = value
			}
		}

		itemNo := strings.TrimSpace(fields["item_no"])
		desc := strings.TrimSpace(fields["description"])
		if itemNo == "" && desc == "" {
			continue
		}

		item := LineItem{
			ItemNo:      itemNo,
			Description: desc,
			Unit:        strings.TrimSpace(fields["unit"]),
			Source:      source,
		}
		item.Quantity = coerceField(fields, "quantity", sheet, itemNo, diags)
		item.Rate = coerceField(fields, "rate", sheet, itemNo, diags)
		items = append(items, item)
	}
	return items, nil
}

func coerceField(fields map[string]string, field, sheet, itemNo string, diags *[]Diagnostic) float64 {
	raw := fields[field]
	v, ok := coerceNumeric(raw)
	if !ok {
		*diags = append(*diags, Diagnostic{
			Kind:    DiagNumericCoercion,
			Sheet:   sheet,
			ItemNo:  itemNo,
			Message: fmt.Sprintf("%s value %q is not numeric, using 0", field, strings.TrimSpace(raw)),
		})
	}
	return v
}

// extractMetadata pulls the project fields out of the Title sheet by
// keyword, tolerating label variants the same way column aliases do.
func extractMetadata(title []KeyValue) ProjectMetadata {
	meta := ProjectMetadata{BillType: BillTypeRunning}

	for _, kv := range title {
		key := strings.ToLower(strings.TrimSpace(kv.Key))
		value := strings.TrimSpace(kv.Value)
		meta.HeaderRows = append(meta.HeaderRows, []string{kv.Key, kv.Value})
		if value == "" {
			continue
		}

		switch {
		case strings.Contains(key, "agreement") || strings.Contains(key, "contract no"):
			meta.AgreementNo = value
		case strings.Contains(key, "name of work") || strings.Contains(key, "project"):
			meta.WorkName = value
		case strings.Contains(key, "firm") || strings.Contains(key, "contractor"):
			meta.FirmName = value
		case strings.Contains(key, "commencement"):
			meta.DateCommencement = value
		case strings.Contains(key, "actual") && strings.Contains(key, "completion"):
			meta.ActualCompletion = value
		case strings.Contains(key, "completion"):
			meta.DateCompletion = value
		case strings.Contains(key, "bill type"):
			if strings.Contains(strings.ToLower(value), "final") {
				meta.BillType = BillTypeFinal
			}
		case strings.Contains(key, "serial") || strings.Contains(key, "bill no"):
			meta.BillSerial = value
		case strings.Contains(key, "vide last bill") || strings.Contains(key, "last bill"):
			amount, _ := coerceNumeric(value)
			meta.AmountPaidLastBill = amount
		}
	}

	// A bill labelled "Final Bill" in its serial line is a final bill even
	// without an explicit Bill Type row.
	if meta.BillType == BillTypeRunning && strings.Contains(strings.ToLower(meta.BillSerial), "final") {
		meta.BillType = BillTypeFinal
	}
	return meta
}
