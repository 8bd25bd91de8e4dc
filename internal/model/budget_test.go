package model

import "testing"

func TestParseBudgetAmount(t *testing.T) {
	cases := []struct {
		name string
		text string
		want int64
	}{
		{"comma grouped range", "من 1,000 إلى 2,000 ريال", 1000},
		{"comma grouped single", "حتى 12,500 ريال", 12500},
		{"arabic thousands separator", "1٬500 ريال", 1500},
		{"plain range", "1000 - 2000 SAR", 1000},
		{"labelled", "الميزانية: 500", 500},
		{"digits only", "750", 750},
		{"second number ignored", "من 200 إلى 800 ريال", 200},
		{"no digits", "غير محدد", 0},
		{"empty", "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseBudgetAmount(tc.text); got != tc.want {
				t.Fatalf("ParseBudgetAmount(%q) = %d, want %d", tc.text, got, tc.want)
			}
		})
	}
}

func TestInBudgetBand(t *testing.T) {
	cases := []struct {
		name   string
		amount int64
		min    int64
		max    int64
		want   bool
	}{
		{"inside band", 500, 100, 5000, true},
		{"at lower bound", 100, 100, 5000, true},
		{"at upper bound", 5000, 100, 5000, true},
		{"below band", 50, 100, 5000, false},
		{"above band", 6000, 100, 5000, false},
		{"unknown budget passes", 0, 100, 5000, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InBudgetBand(tc.amount, tc.min, tc.max); got != tc.want {
				t.Fatalf("InBudgetBand(%d, %d, %d) = %v, want %v", tc.amount, tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestFormattedBudgetSurvivesBandFilter(t *testing.T) {
	// The scraper formats numeric budgets with thousands separators; the
	// parsed amount must reflect the full number, not the leading group.
	amount := ParseBudgetAmount("من 1,000 إلى 2,000 ريال")
	if amount != 1000 {
		t.Fatalf("amount = %d, want 1000", amount)
	}
	if !InBudgetBand(amount, 100, 5000) {
		t.Fatalf("formatted budget %d rejected by band [100, 5000]", amount)
	}
}
