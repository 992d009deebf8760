package billing

import "testing"

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"zero", 0, "₹0.00"},
		{"with decimals", 42.50, "₹42.50"},
		{"thousands", 1234.56, "₹1,234.56"},
		{"lakhs", 123456.78, "₹1,23,456.78"},
		{"ten lakhs", 1234567.89, "₹12,34,567.89"},
		{"crores", 12345678.90, "₹1,23,45,678.90"},
		{"negative lakhs", -250000.50, "-₹2,50,000.50"},
		{"exact lakh boundary", 100000, "₹1,00,000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatINR(tt.input)
			if got != tt.expect {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestFormatINRWhole(t *testing.T) {
	tests := []struct {
		name   string
		input  float64
		expect string
	}{
		{"rounds up", 1234.56, "₹1,235"},
		{"rounds down", 1234.44, "₹1,234"},
		{"half rounds away from zero", 2.5, "₹3"},
		{"negative", -19500.2, "-₹19,500"},
		{"lakhs", 123456.78, "₹1,23,457"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatINRWhole(tt.input)
			if got != tt.expect {
				t.Errorf("FormatINRWhole(%v) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}

func TestApplyIndianGrouping(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		expect string
	}{
		{"three digits", "999", "999"},
		{"four digits", "1234", "1,234"},
		{"six digits", "123456", "1,23,456"},
		{"nine digits", "123456789", "12,34,56,789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := applyIndianGrouping(tt.input); got != tt.expect {
				t.Errorf("applyIndianGrouping(%q) = %q, want %q", tt.input, got, tt.expect)
			}
		})
	}
}
