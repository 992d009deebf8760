package documents

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/billing"
)

func sampleViews(t *testing.T) billing.DocumentViews {
	t.Helper()

	wb := billing.RawWorkbook{
		Title: []billing.KeyValue{
			{Key: "Agreement No.", Value: "48/2024-25"},
			{Key: "Name of Work", Value: "Construction of CC Road"},
			{Key: "Name of Firm", Value: "M/s Sharma Constructions"},
			{Key: "Bill Serial", Value: "First & Final Bill"},
			{Key: "Amount Paid Vide Last Bill", Value: "0"},
		},
		WorkOrder: []billing.Row{
			{"Item No.": "1", "Description": "Earthwork in excavation", "Unit": "Cum", "Qty": "100", "Rate": "50"},
			{"Item No.": "2", "Description": "Cement concrete 1:2:4", "Unit": "Cum", "Qty": "50", "Rate": "200"},
		},
		BillQuantity: []billing.Row{
			{"Item No.": "1", "Description": "Earthwork in excavation", "Unit": "Cum", "Qty": "120", "Rate": "50"},
		},
		ExtraItems: []billing.Row{
			{"Item No.": "E1", "Description": "Extra drain cover", "Unit": "Rmt", "Qty": "10", "Rate": "80"},
		},
		Present: map[string]bool{
			billing.SheetTitle:        true,
			billing.SheetWorkOrder:    true,
			billing.SheetBillQuantity: true,
			billing.SheetExtraItems:   true,
		},
	}

	result, err := billing.Compute(wb, billing.Options{
		PremiumPercent: 0.10,
		Rates: billing.DeductionRates{
			SecurityDeposit: 0.10,
			IncomeTax:       0.02,
			GST:             0.02,
			LabourCess:      0.01,
		},
	})
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	return result.Views()
}

func TestRenderHTML_AllDocuments(t *testing.T) {
	views := sampleViews(t)

	for name, view := range views.Map() {
		t.Run(name, func(t *testing.T) {
			html, err := RenderHTML(name, view, false)
			if err != nil {
				t.Fatalf("RenderHTML(%s) failed: %v", name, err)
			}
			if !strings.Contains(html, "Construction of CC Road") {
				t.Error("work name missing from rendered document")
			}
			if !strings.Contains(html, "48/2024-25") {
				t.Error("agreement number missing from rendered document")
			}
		})
	}
}

func TestRenderHTML_ReverseFont(t *testing.T) {
	views := sampleViews(t)

	plain, err := RenderHTML(billing.DocFirstPage, views.FirstPage, false)
	if err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	reversed, err := RenderHTML(billing.DocFirstPage, views.FirstPage, true)
	if err != nil {
		t.Fatalf("RenderHTML reversed failed: %v", err)
	}

	if strings.Contains(plain, `class="reverse"`) {
		t.Error("plain render carries reverse class")
	}
	if !strings.Contains(reversed, `class="reverse"`) {
		t.Error("reversed render missing reverse class")
	}
}

func TestRenderPDF_AllDocuments(t *testing.T) {
	views := sampleViews(t)

	for name, view := range views.Map() {
		t.Run(name, func(t *testing.T) {
			pdf, err := RenderPDF(name, view)
			if err != nil {
				t.Fatalf("RenderPDF(%s) failed: %v", name, err)
			}
			if !bytes.HasPrefix(pdf, []byte("%PDF")) {
				t.Errorf("output does not start with %%PDF header")
			}
		})
	}
}

func TestRenderDOCX_ValidArchive(t *testing.T) {
	views := sampleViews(t)

	docx, err := RenderDOCX(billing.DocNoteSheet, views.NoteSheet)
	if err != nil {
		t.Fatalf("RenderDOCX failed: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(docx), int64(len(docx)))
	if err != nil {
		t.Fatalf("output is not a zip archive: %v", err)
	}

	var foundDoc bool
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			foundDoc = true
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open document part: %v", err)
			}
			var buf bytes.Buffer
			if _, err := buf.ReadFrom(rc); err != nil {
				t.Fatalf("read document part: %v", err)
			}
			rc.Close()
			if !strings.Contains(buf.String(), "Final Bill Scrutiny Sheet") {
				t.Error("document part missing scrutiny sheet heading")
			}
		}
	}
	if !foundDoc {
		t.Error("archive has no word/document.xml")
	}
}

func TestGenerateSummaryWorkbook_Sheets(t *testing.T) {
	views := sampleViews(t)

	data, err := GenerateSummaryWorkbook(views)
	if err != nil {
		t.Fatalf("GenerateSummaryWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Summary", "Items", "Deviation"}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
	for _, name := range want {
		if idx, _ := f.GetSheetIndex(name); idx < 0 {
			t.Errorf("missing sheet %q", name)
		}
	}

	title, err := f.GetCellValue("Summary", "A1")
	if err != nil {
		t.Fatalf("read A1: %v", err)
	}
	if title != "Construction of CC Road" {
		t.Errorf("Summary!A1 = %q", title)
	}
}

func TestGenerate_WritesSelectedFormats(t *testing.T) {
	views := sampleViews(t)
	dir := t.TempDir()

	written, err := Generate(views, dir, Options{HTML: true, Excel: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	// Six HTML documents (final bill) plus the summary workbook.
	if len(written) != 7 {
		t.Fatalf("wrote %d files, want 7: %v", len(written), written)
	}
	for _, path := range written {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("reported path missing on disk: %v", err)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "first_page.pdf")); !os.IsNotExist(err) {
		t.Error("PDF written although not requested")
	}
}

func TestGenerate_RunningBillSkipsDeviation(t *testing.T) {
	views := sampleViews(t)
	views.Deviation = nil
	dir := t.TempDir()

	written, err := Generate(views, dir, Options{HTML: true})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(written) != 5 {
		t.Fatalf("wrote %d files, want 5: %v", len(written), written)
	}
	if _, err := os.Stat(filepath.Join(dir, "deviation_statement.html")); !os.IsNotExist(err) {
		t.Error("deviation statement written for running bill")
	}
}
