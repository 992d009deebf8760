package billing

import (
	"math"
	"testing"
)

var testRates = DeductionRates{
	SecurityDeposit: 0.10,
	IncomeTax:       0.02,
	GST:             0.02,
	LabourCess:      0.01,
}

func TestCalcPayment_NetPayable(t *testing.T) {
	// Gross 55,000 at the standard rates gives 8,250 of deductions.
	main := BillSummary{BaseTotal: 45454.545454545456, PremiumPercent: 0.10, PremiumAmount: 4545.454545454546, GrandTotal: 50000}
	extra := BillSummary{BaseTotal: 4545.454545454546, PremiumPercent: 0.10, PremiumAmount: 454.5454545454545, GrandTotal: 5000}

	pay, diags := CalcPayment(main, extra, 30000, testRates)

	if math.Abs(pay.GrossPayable-55000) > 1e-6 {
		t.Errorf("GrossPayable = %v, want 55000", pay.GrossPayable)
	}
	if math.Abs(pay.TotalDeductions-8250) > 1e-6 {
		t.Errorf("TotalDeductions = %v, want 8250", pay.TotalDeductions)
	}
	if math.Abs(pay.NetPayable-(55000-8250-30000)) > 1e-6 {
		t.Errorf("NetPayable = %v, want 16750", pay.NetPayable)
	}
	if len(diags) != 0 {
		t.Errorf("unexpected diagnostics: %v", diags)
	}
}

func TestCalcPayment_FixedDeductionsScenario(t *testing.T) {
	// Main grand 50,000 + extra grand 5,000, last bill 30,000, total
	// deductions 5,500 -> net payable 19,500.
	main := BillSummary{GrandTotal: 50000}
	extra := BillSummary{GrandTotal: 5000}
	rates := DeductionRates{SecurityDeposit: 0.10} // 10% of 55,000 = 5,500

	pay, _ := CalcPayment(main, extra, 30000, rates)

	if math.Abs(pay.TotalDeductions-5500) > 1e-6 {
		t.Fatalf("TotalDeductions = %v, want 5500", pay.TotalDeductions)
	}
	if math.Abs(pay.NetPayable-19500) > 1e-6 {
		t.Errorf("NetPayable = %v, want 19500", pay.NetPayable)
	}
}

func TestCalcPayment_DeductionsComputedOnGross(t *testing.T) {
	// Deductions must come from the gross payable, not from the figure
	// left after subtracting the last bill.
	main := BillSummary{GrandTotal: 100000}
	pay, _ := CalcPayment(main, BillSummary{}, 90000, DeductionRates{IncomeTax: 0.02})

	if math.Abs(pay.IncomeTax-2000) > 1e-6 {
		t.Errorf("IncomeTax = %v, want 2000 (2%% of gross 100000)", pay.IncomeTax)
	}
}

func TestCalcPayment_NegativeNetPayableKeptAndFlagged(t *testing.T) {
	main := BillSummary{GrandTotal: 10000}
	pay, diags := CalcPayment(main, BillSummary{}, 20000, testRates)

	if pay.NetPayable >= 0 {
		t.Fatalf("NetPayable = %v, expected negative", pay.NetPayable)
	}
	if len(diags) != 1 || diags[0].Kind != DiagPaymentInconsistency {
		t.Errorf("want one payment inconsistency diagnostic, got %v", diags)
	}
}

func TestCalcPayment_EachRateAppliedSeparately(t *testing.T) {
	main := BillSummary{GrandTotal: 10000}
	pay, _ := CalcPayment(main, BillSummary{}, 0, testRates)

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"security deposit", pay.SecurityDeposit, 1000},
		{"income tax", pay.IncomeTax, 200},
		{"gst", pay.GST, 200},
		{"labour cess", pay.LabourCess, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.want) > 1e-6 {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
	if math.Abs(pay.TotalDeductions-1500) > 1e-6 {
		t.Errorf("TotalDeductions = %v, want 1500", pay.TotalDeductions)
	}
}
