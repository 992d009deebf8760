package billing

import (
	"math"
	"reflect"
	"testing"
)

var testOptions = Options{
	PremiumPercent: 0.10,
	Rates:          testRates,
}

func TestCompute_FinalBillEndToEnd(t *testing.T) {
	result, err := Compute(sampleWorkbook(), testOptions)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	// Executed: 120 x 50 = 6000; extra: 10 x 80 = 800.
	if math.Abs(result.MainSummary.BaseTotal-6000) > 1e-6 {
		t.Errorf("main base = %v, want 6000", result.MainSummary.BaseTotal)
	}
	if math.Abs(result.ExtraSummary.GrandTotal-880) > 1e-6 {
		t.Errorf("extra grand = %v, want 880", result.ExtraSummary.GrandTotal)
	}
	if result.Deviation == nil {
		t.Fatal("final bill must have a deviation summary")
	}
	// Item 2 (50 x 200) unexecuted -> full saving, reported once.
	if math.Abs(result.Deviation.SavingTotal-10000) > 1e-6 {
		t.Errorf("saving total = %v, want 10000", result.Deviation.SavingTotal)
	}

	gross := result.MainSummary.GrandTotal + result.ExtraSummary.GrandTotal
	if math.Abs(result.Payment.GrossPayable-gross) > 1e-6 {
		t.Errorf("gross payable %v disagrees with summaries %v", result.Payment.GrossPayable, gross)
	}
}

func TestCompute_RunningBillSkipsDeviation(t *testing.T) {
	wb := sampleWorkbook()
	wb.Title = append(wb.Title[:5:5], KeyValue{Key: "Bill Serial", Value: "Second Running Bill"},
		KeyValue{Key: "Amount Paid Vide Last Bill", Value: "2500"})

	result, err := Compute(wb, testOptions)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if result.Deviation != nil {
		t.Error("running bill must not have a deviation summary")
	}
	if result.Payment.AmountPaidLastBill != 2500 {
		t.Errorf("AmountPaidLastBill = %v, want 2500", result.Payment.AmountPaidLastBill)
	}

	views := result.Views()
	if views.Deviation != nil {
		t.Error("running bill must not have a deviation view")
	}
	if _, ok := views.Map()[DocDeviationStatement]; ok {
		t.Error("running bill views must not contain the deviation_statement key")
	}
}

func TestCompute_Idempotent(t *testing.T) {
	first, err := Compute(sampleWorkbook(), testOptions)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	second, err := Compute(sampleWorkbook(), testOptions)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical input must produce identical results")
	}
}

func TestViews_AllSixDocumentsOnFinalBill(t *testing.T) {
	result, err := Compute(sampleWorkbook(), testOptions)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	m := result.Views().Map()
	for _, name := range []string{
		DocFirstPage, DocDeviationStatement, DocExtraItems,
		DocNoteSheet, DocCertificateII, DocCertificateIII,
	} {
		if _, ok := m[name]; !ok {
			t.Errorf("missing document view %q", name)
		}
	}
	if len(m) != 6 {
		t.Errorf("got %d views, want 6", len(m))
	}
}

func TestViews_ShareOnePaymentSummary(t *testing.T) {
	result, err := Compute(sampleWorkbook(), testOptions)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	views := result.Views()
	net := result.Payment.NetPayable
	if views.FirstPage.Payment.NetPayable != net {
		t.Error("first page net payable diverges from the payment summary")
	}
	if views.NoteSheet.Payment.NetPayable != net {
		t.Error("note sheet net payable diverges from the payment summary")
	}
	if views.CertificateIII.Payment.NetPayable != net {
		t.Error("certificate III net payable diverges from the payment summary")
	}

	// Certificate III row 8: cheque amount plus deductions reconstructs
	// the gross bill amount net of the last bill.
	p := views.CertificateIII.Payment
	if math.Abs((p.NetPayable+p.TotalDeductions)-(p.GrossPayable-p.AmountPaidLastBill)) > 1e-6 {
		t.Error("cheque amount + deductions does not reconcile with the gross bill amount")
	}
}

func TestAssemble_RejectsInconsistentFigures(t *testing.T) {
	nb := &NormalizedBill{}
	good := CalcBillSummary([]LineItem{{Quantity: 10, Rate: 10}}, 0.10)
	pay, _ := CalcPayment(good, BillSummary{}, 0, testRates)

	tests := []struct {
		name    string
		mutate  func(*BillSummary, *PaymentSummary)
	}{
		{"tampered grand total", func(s *BillSummary, _ *PaymentSummary) { s.GrandTotal += 1 }},
		{"tampered premium", func(s *BillSummary, _ *PaymentSummary) { s.PremiumAmount += 1 }},
		{"tampered gross payable", func(_ *BillSummary, p *PaymentSummary) { p.GrossPayable += 1 }},
		{"tampered net payable", func(_ *BillSummary, p *PaymentSummary) { p.NetPayable += 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, p := good, pay
			tt.mutate(&s, &p)
			if _, err := Assemble(nb, s, BillSummary{}, nil, p); err == nil {
				t.Error("Assemble accepted inconsistent figures")
			}
		})
	}
}

func TestCompute_DiagnosticsAccumulate(t *testing.T) {
	wb := sampleWorkbook()
	// One coercion warning plus one unexecuted work-order item.
	wb.BillQuantity = []Row{
		{"Item No.": "1", "Description": "Earthwork", "Bill Qty": "N/A", "Rate": "50"},
	}

	result, err := Compute(wb, testOptions)
	if err != nil {
		t.Fatalf("Compute failed: %v", err)
	}

	var kinds []DiagnosticKind
	for _, d := range result.Diagnostics {
		kinds = append(kinds, d.Kind)
	}
	if len(result.Diagnostics) < 2 {
		t.Fatalf("diagnostics = %v, want coercion and mismatch entries", kinds)
	}
	hasCoercion, hasMismatch := false, false
	for _, k := range kinds {
		switch k {
		case DiagNumericCoercion:
			hasCoercion = true
		case DiagDeviationMismatch:
			hasMismatch = true
		}
	}
	if !hasCoercion || !hasMismatch {
		t.Errorf("diagnostics = %v", kinds)
	}
}
