package documents

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/CRAJKUMARSINGH/Priyanka-TenderV03/billing"
)

// RenderDOCX renders one document view as a minimal .docx: a zip archive
// carrying the WordprocessingML document part and the two manifests Word
// requires. Layout is deliberately simple (headings, label/value lines,
// and pipe-separated table rows); the PDF and HTML renderers carry the
// presentation-grade output.
func RenderDOCX(name string, view any) ([]byte, error) {
	var b docxBody

	switch v := view.(type) {
	case billing.FirstPageView:
		b.heading("Contractor Bill - First Page Summary")
		b.metadata(v.Metadata)
		b.itemLines(v.Items)
		b.moneyLine("Total (Items as per Work Order)", v.Main.BaseTotal)
		b.moneyLine("Tender Premium", v.Main.PremiumAmount)
		b.moneyLine("Grand Total", v.Main.GrandTotal)
		b.moneyLine("Extra Items (incl. premium)", v.Extra.GrandTotal)
		b.moneyLine("Gross Amount Payable", v.Payment.GrossPayable)
		b.moneyLine("Total Deductions", v.Payment.TotalDeductions)
		b.finalLine("Net Payable Amount", v.Payment.NetPayable)
	case billing.DeviationView:
		b.heading("Deviation Statement")
		b.metadata(v.Metadata)
		for _, rec := range v.Summary.Records {
			b.paragraph(fmt.Sprintf("%s | %s | WO %s | Exec %s | Excess %s | Saving %s | %s",
				rec.ItemNo, rec.Description,
				billing.FormatQty(rec.WorkOrderQty), billing.FormatQty(rec.ExecutedQty),
				billing.FormatINR(rec.ExcessAmount), billing.FormatINR(rec.SavingAmount),
				rec.Remark))
		}
		b.moneyLine("Work Order Grand Total", v.Summary.WorkOrderGrandTotal)
		b.moneyLine("Work Executed Grand Total", v.Summary.ExecutedGrandTotal)
		b.moneyLine("Overall Excess", v.Summary.ExcessGrandTotal)
		b.moneyLine("Overall Saving", v.Summary.SavingGrandTotal)
		b.finalLine("Net Difference (Excess - Saving)", v.Summary.NetDifference)
	case billing.ExtraItemsView:
		b.heading("Extra Items Statement")
		b.metadata(v.Metadata)
		b.itemLines(v.Items)
		b.moneyLine("Total Extra Items", v.Summary.BaseTotal)
		b.moneyLine("Tender Premium", v.Summary.PremiumAmount)
		b.finalLine("Grand Total", v.Summary.GrandTotal)
	case billing.NoteSheetView:
		b.heading("Final Bill Scrutiny Sheet")
		b.metadata(v.Metadata)
		b.moneyLine("1. Value of work done", v.Main.BaseTotal)
		b.moneyLine("2. Tender premium", v.Main.PremiumAmount)
		b.moneyLine("3. Total value of work", v.Main.GrandTotal)
		b.moneyLine("4. Extra items (incl. premium)", v.Extra.GrandTotal)
		b.moneyLine("5. Gross amount payable", v.Payment.GrossPayable)
		b.moneyLine("6. Deductions (SD + IT + GST + LC)", v.Payment.TotalDeductions)
		b.moneyLine("7. Amount paid vide last bill", v.Payment.AmountPaidLastBill)
		b.finalLine("8. Net amount payable this bill", v.Payment.NetPayable)
	case billing.CertificateView:
		if v.Kind == billing.DocCertificateIII {
			b.heading("Certificate III - Memorandum of Payment")
			b.metadata(v.Metadata)
			b.moneyLine("1. Total value of work done up to date", v.Payment.GrossPayable)
			b.moneyLine("2. Amount paid vide last bill", v.Payment.AmountPaidLastBill)
			b.moneyLine("3. Payments now to be made", v.Payment.PayableBeforeDeductions())
			b.moneyLine("4. Security Deposit", v.Payment.SecurityDeposit)
			b.moneyLine("5. Income Tax", v.Payment.IncomeTax)
			b.moneyLine("6. GST", v.Payment.GST)
			b.moneyLine("7. Labour Cess", v.Payment.LabourCess)
			b.finalLine("8. Balance payable by cheque", v.Payment.NetPayable)
		} else {
			b.heading("Certificate II")
			b.metadata(v.Metadata)
			b.paragraph("Certified that the work covered by this bill has been executed as per the sanctioned specifications and the measurements on which this bill is based were taken and recorded in the Measurement Book by the undersigned.")
			b.paragraph("Certified further that the quality of work is satisfactory and the quantities billed do not exceed the quantities actually executed.")
			b.finalLine("Gross value of work billed", v.Payment.GrossPayable)
		}
	default:
		return nil, fmt.Errorf("unknown document view for %q", name)
	}

	b.paragraph("")
	b.paragraph("Contractor          Assistant Engineer          Executive Engineer")

	return b.archive()
}

// docxBody accumulates WordprocessingML paragraphs.
type docxBody struct {
	paragraphs []string
}

func (b *docxBody) heading(text string) {
	b.paragraphs = append(b.paragraphs, fmt.Sprintf(
		`<w:p><w:pPr><w:jc w:val="center"/></w:pPr><w:r><w:rPr><w:b/><w:sz w:val="32"/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escapeXML(text)))
}

func (b *docxBody) paragraph(text string) {
	b.paragraphs = append(b.paragraphs, fmt.Sprintf(
		`<w:p><w:r><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escapeXML(text)))
}

func (b *docxBody) boldParagraph(text string) {
	b.paragraphs = append(b.paragraphs, fmt.Sprintf(
		`<w:p><w:r><w:rPr><w:b/></w:rPr><w:t xml:space="preserve">%s</w:t></w:r></w:p>`,
		escapeXML(text)))
}

func (b *docxBody) metadata(meta billing.ProjectMetadata) {
	b.paragraph("Agreement No: " + meta.AgreementNo)
	b.paragraph("Name of Work: " + meta.WorkName)
	b.paragraph("Name of Firm: " + meta.FirmName)
	b.paragraph(fmt.Sprintf("Bill: %s (%s)", meta.BillSerial, meta.BillType))
	b.paragraph("")
}

func (b *docxBody) itemLines(items []billing.LineItem) {
	for _, item := range items {
		b.paragraph(fmt.Sprintf("%s | %s | %s x %s = %s",
			item.ItemNo, item.Description,
			billing.FormatQty(item.Quantity), billing.FormatINR(item.Rate),
			billing.FormatINR(item.Amount())))
	}
	b.paragraph("")
}

func (b *docxBody) moneyLine(label string, value float64) {
	b.paragraph(fmt.Sprintf("%s: %s", label, billing.FormatINR(value)))
}

// finalLine prints a document's bottom figure in whole rupees, bold.
func (b *docxBody) finalLine(label string, value float64) {
	b.boldParagraph(fmt.Sprintf("%s: %s", label, billing.FormatINRWhole(value)))
}

const docxContentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const docxRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

func (b *docxBody) archive() ([]byte, error) {
	var doc bytes.Buffer
	doc.WriteString(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>`)
	doc.WriteString(`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range b.paragraphs {
		doc.WriteString(p)
	}
	doc.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		data string
	}{
		{"[Content_Types].xml", docxContentTypes},
		{"_rels/.rels", docxRels},
		{"word/document.xml", doc.String()},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("create %s: %w", part.name, err)
		}
		if _, err := w.Write([]byte(part.data)); err != nil {
			return nil, fmt.Errorf("write %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close docx archive: %w", err)
	}
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	if err := xml.EscapeText(&buf, []byte(s)); err != nil {
		return s
	}
	return buf.String()
}
