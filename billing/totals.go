package billing

// CalcBillSummary sums the items' derived amounts and applies the tender
// premium. Nothing is rounded here: intermediate figures keep full
// precision and only the renderers round for display, so every document
// rounds the same number once.
func CalcBillSummary(items []LineItem, premiumPercent float64) BillSummary {
	var base float64
	for _, item := range items {
		base += item.Amount()
	}
	premium := base * premiumPercent
	return BillSummary{
		BaseTotal:      base,
		PremiumPercent: premiumPercent,
		PremiumAmount:  premium,
		GrandTotal:     base + premium,
	}
}

// ComputeTotals produces the main-bill summary (over executed items) and
// the extra-items summary with the identical premium formula.
func ComputeTotals(nb *NormalizedBill, premiumPercent float64) (main, extra BillSummary) {
	main = CalcBillSummary(nb.Executed, premiumPercent)
	extra = CalcBillSummary(nb.Extra, premiumPercent)
	return main, extra
}
