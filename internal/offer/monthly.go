package offer

import "strings"

// monthlyKeywords mark recurring engagements. The list is independent from
// the classifier's table even where terms overlap; the two were never meant
// to stay in sync.
var monthlyKeywords = []string{
	"شهري", "monthly", "شريك", "partner", "مستمر", "continuous",
	"دائم", "permanent", "طويل المدى", "long term", "متعاون", "collaboration",
	"تعاون", "cooperation", "شراكة", "partnership", "مستقل", "freelancer",
	"عن بعد", "remote", "دوام كامل", "full time", "دوام جزئي", "part time",
}

// IsMonthlyProject reports whether a project reads as a recurring monthly
// engagement rather than a one-off deliverable.
func IsMonthlyProject(title, description string) bool {
	text := strings.ToLower(title + " " + description)
	return containsAny(text, monthlyKeywords)
}
