package documents

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/billing"
)

// GenerateSummaryWorkbook builds the financial summary .xlsx for one
// processed bill: a Summary sheet with the payment waterfall, an Items
// sheet with the executed quantities, and a Deviation sheet when the bill
// is a final bill.
func GenerateSummaryWorkbook(views billing.DocumentViews) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), "Summary"); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeSummarySheet(f, styles, views); err != nil {
		return nil, err
	}
	if err := writeItemsSheet(f, styles, views.FirstPage.Items, views.ExtraItems.Items); err != nil {
		return nil, err
	}
	if views.Deviation != nil {
		if err := writeDeviationSheet(f, styles, *views.Deviation); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

type workbookStyles struct {
	title        int
	header       int
	cell         int
	summaryLabel int
	summaryValue int
}

func newWorkbookStyles(f *excelize.File) (workbookStyles, error) {
	var s workbookStyles
	var err error

	s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 14},
	})
	if err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}

	s.header, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}

	s.cell, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create cell style: %w", err)
	}

	s.summaryLabel, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return s, fmt.Errorf("create summary label style: %w", err)
	}

	s.summaryValue, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return s, fmt.Errorf("create summary value style: %w", err)
	}

	return s, nil
}

func writeSummarySheet(f *excelize.File, styles workbookStyles, views billing.DocumentViews) error {
	const sheet = "Summary"
	meta := views.FirstPage.Metadata
	payment := views.FirstPage.Payment
	main := views.FirstPage.Main
	extra := views.FirstPage.Extra

	if err := f.SetColWidth(sheet, "A", "A", 42); err != nil {
		return fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(sheet, "B", "B", 24); err != nil {
		return fmt.Errorf("set col width: %w", err)
	}

	if err := f.MergeCell(sheet, "A1", "B1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(meta.WorkName))
	f.SetCellStyle(sheet, "A1", "B1", styles.title)

	header := []struct{ label, value string }{
		{"Agreement No.", meta.AgreementNo},
		{"Name of Firm", meta.FirmName},
		{"Bill", fmt.Sprintf("%s (%s)", meta.BillSerial, meta.BillType)},
	}
	row := 2
	for _, h := range header {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), h.label)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), sanitizeExcelCell(h.value))
		row++
	}
	row++

	figures := []struct {
		label string
		value float64
	}{
		{"Value of work done", main.BaseTotal},
		{fmt.Sprintf("Tender premium @ %.2f%%", main.PremiumPercent * 100), main.PremiumAmount},
		{"Total value of work", main.GrandTotal},
		{"Extra items (incl. premium)", extra.GrandTotal},
		{"Gross amount payable", payment.GrossPayable},
		{"Security Deposit", payment.SecurityDeposit},
		{"Income Tax", payment.IncomeTax},
		{"GST", payment.GST},
		{"Labour Cess", payment.LabourCess},
		{"Total deductions", payment.TotalDeductions},
		{"Amount paid vide last bill", payment.AmountPaidLastBill},
		{"Net payable this bill", payment.NetPayable},
	}
	for _, fig := range figures {
		cell := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+cell, fig.label)
		f.SetCellStyle(sheet, "A"+cell, "A"+cell, styles.summaryLabel)
		f.SetCellValue(sheet, "B"+cell, billing.FormatINR(fig.value))
		f.SetCellStyle(sheet, "B"+cell, "B"+cell, styles.summaryValue)
		row++
	}

	return nil
}

func writeItemsSheet(f *excelize.File, styles workbookStyles, executed, extra []billing.LineItem) error {
	const sheet = "Items"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	widths := map[string]float64{"A": 8, "B": 46, "C": 8, "D": 10, "E": 14, "F": 16, "G": 12}
	for col, w := range widths {
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headers := []string{"Item", "Description", "Unit", "Qty", "Rate", "Amount", "Source"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "G1", styles.header)

	row := 2
	for _, item := range append(append([]billing.LineItem{}, executed...), extra...) {
		cell := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+cell, sanitizeExcelCell(item.ItemNo))
		f.SetCellValue(sheet, "B"+cell, sanitizeExcelCell(item.Description))
		f.SetCellValue(sheet, "C"+cell, sanitizeExcelCell(item.Unit))
		f.SetCellValue(sheet, "D"+cell, item.Quantity)
		f.SetCellValue(sheet, "E"+cell, item.Rate)
		f.SetCellValue(sheet, "F"+cell, billing.FormatINR(item.Amount()))
		f.SetCellValue(sheet, "G"+cell, string(item.Source))
		f.SetCellStyle(sheet, "A"+cell, "G"+cell, styles.cell)
		row++
	}

	return nil
}

func writeDeviationSheet(f *excelize.File, styles workbookStyles, view billing.DeviationView) error {
	const sheet = "Deviation"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create sheet %s: %w", sheet, err)
	}

	if err := f.SetColWidth(sheet, "B", "B", 40); err != nil {
		return fmt.Errorf("set col width: %w", err)
	}

	headers := []string{
		"Item", "Description", "Unit", "Rate",
		"WO Qty", "WO Amount", "Exec Qty", "Exec Amount",
		"Excess Qty", "Excess Amount", "Saving Qty", "Saving Amount", "Remark",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("cell name: %w", err)
		}
		f.SetCellValue(sheet, cell, h)
	}
	f.SetCellStyle(sheet, "A1", "M1", styles.header)

	row := 2
	for _, rec := range view.Summary.Records {
		cell := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "A"+cell, sanitizeExcelCell(rec.ItemNo))
		f.SetCellValue(sheet, "B"+cell, sanitizeExcelCell(rec.Description))
		f.SetCellValue(sheet, "C"+cell, sanitizeExcelCell(rec.Unit))
		f.SetCellValue(sheet, "D"+cell, rec.Rate)
		f.SetCellValue(sheet, "E"+cell, rec.WorkOrderQty)
		f.SetCellValue(sheet, "F"+cell, rec.WorkOrderAmount)
		f.SetCellValue(sheet, "G"+cell, rec.ExecutedQty)
		f.SetCellValue(sheet, "H"+cell, rec.ExecutedAmount)
		f.SetCellValue(sheet, "I"+cell, rec.ExcessQty)
		f.SetCellValue(sheet, "J"+cell, rec.ExcessAmount)
		f.SetCellValue(sheet, "K"+cell, rec.SavingQty)
		f.SetCellValue(sheet, "L"+cell, rec.SavingAmount)
		f.SetCellValue(sheet, "M"+cell, sanitizeExcelCell(rec.Remark))
		f.SetCellStyle(sheet, "A"+cell, "M"+cell, styles.cell)
		row++
	}
	row++

	totals := []struct {
		label string
		value float64
	}{
		{"Work order grand total", view.Summary.WorkOrderGrandTotal},
		{"Executed grand total", view.Summary.ExecutedGrandTotal},
		{"Overall excess", view.Summary.ExcessGrandTotal},
		{"Overall saving", view.Summary.SavingGrandTotal},
		{"Net difference", view.Summary.NetDifference},
	}
	for _, tot := range totals {
		cell := fmt.Sprintf("%d", row)
		f.SetCellValue(sheet, "B"+cell, tot.label)
		f.SetCellStyle(sheet, "B"+cell, "B"+cell, styles.summaryLabel)
		f.SetCellValue(sheet, "C"+cell, billing.FormatINR(tot.value))
		f.SetCellStyle(sheet, "C"+cell, "C"+cell, styles.summaryValue)
		row++
	}

	return nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous
// leading characters with a single quote.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin black borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
