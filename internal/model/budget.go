package model

import (
	"strconv"
	"unicode"
)

// ParseBudgetAmount extracts the first integer found in a free-text budget
// string ("1,000 - 2,000 SAR", "الميزانية: 500"). Thousands separators inside
// the number are skipped. Returns 0 when no digits exist.
func ParseBudgetAmount(text string) int64 {
	digits := ""
	for _, r := range text {
		if unicode.IsDigit(r) {
			digits += string(r)
			continue
		}
		if digits != "" {
			if r == ',' || r == '٬' {
				continue
			}
			break
		}
	}
	if digits == "" {
		return 0
	}
	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return amount
}

// InBudgetBand reports whether a budget amount falls inside the configured
// band. Unknown budgets (amount 0) pass; a project without a stated budget
// is still worth a proposal.
func InBudgetBand(amount, min, max int64) bool {
	if amount == 0 {
		return true
	}
	return amount >= min && amount <= max
}
