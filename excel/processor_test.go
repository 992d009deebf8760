package excel

import (
	"bytes"
	"testing"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/billing"
	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/testhelpers"
)

func TestReadFrom_ExtractsAllSheets(t *testing.T) {
	data := testhelpers.WorkbookBytes(t, testhelpers.SampleBill())

	wb, err := ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}

	for _, sheet := range []string{
		billing.SheetTitle, billing.SheetWorkOrder,
		billing.SheetBillQuantity, billing.SheetExtraItems,
	} {
		if !wb.Present[sheet] {
			t.Errorf("sheet %q not reported present", sheet)
		}
	}

	if len(wb.WorkOrder) != 2 {
		t.Fatalf("got %d work order rows, want 2", len(wb.WorkOrder))
	}
	row := wb.WorkOrder[0]
	if row["Item No."] != "1" || row["Qty"] != "100" || row["Rate"] != "50" {
		t.Errorf("work order row = %v", row)
	}
	if len(wb.BillQuantity) != 1 || wb.BillQuantity[0]["Bill Qty"] != "120" {
		t.Errorf("bill quantity rows = %v", wb.BillQuantity)
	}
}

func TestReadFrom_TitleKeyValues(t *testing.T) {
	data := testhelpers.WorkbookBytes(t, testhelpers.SampleBill())

	wb, err := ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}

	byKey := make(map[string]string, len(wb.Title))
	for _, kv := range wb.Title {
		byKey[kv.Key] = kv.Value
	}
	if byKey["Agreement No."] != "48/2024-25" {
		t.Errorf("agreement = %q", byKey["Agreement No."])
	}
	if byKey["Name of Firm"] != "M/s Sharma Constructions" {
		t.Errorf("firm = %q", byKey["Name of Firm"])
	}
}

func TestReadFrom_MissingSheetNotPresent(t *testing.T) {
	sheets := testhelpers.SampleBill()
	sheets.BillQuantity = nil
	data := testhelpers.WorkbookBytes(t, sheets)

	wb, err := ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if wb.Present[billing.SheetBillQuantity] {
		t.Error("Bill Quantity reported present in a workbook without it")
	}
	if !wb.Present[billing.SheetWorkOrder] {
		t.Error("Work Order should still be present")
	}
}

func TestReadFrom_FeedsNormalizer(t *testing.T) {
	data := testhelpers.WorkbookBytes(t, testhelpers.SampleBill())

	wb, err := ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	nb, err := billing.Normalize(wb)
	if err != nil {
		t.Fatalf("Normalize rejected parsed workbook: %v", err)
	}
	if nb.Metadata.BillType != billing.BillTypeFinal {
		t.Errorf("BillType = %q, want Final", nb.Metadata.BillType)
	}
	if len(nb.Executed) != 1 || nb.Executed[0].Quantity != 120 {
		t.Errorf("executed = %+v", nb.Executed)
	}
}

func TestCanonicalSheetName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"exact", "Work Order", billing.SheetWorkOrder, true},
		{"case insensitive", "bill quantity", billing.SheetBillQuantity, true},
		{"padded", "  Title ", billing.SheetTitle, true},
		{"joined variant", "ExtraItems", billing.SheetExtraItems, true},
		{"unknown", "Summary", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := canonicalSheetName(tt.input)
			if got != tt.want || ok != tt.ok {
				t.Errorf("canonicalSheetName(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}
