package offer

import (
	"fmt"
	"strings"

	"bahar-go/internal/model"
)

const (
	milestoneBasePrice = 200
	milestoneMinPrice  = 150
	milestoneMaxPrice  = 2000

	monthlyMinPrice = 800
	monthlyMaxPrice = 5000
)

// complexTech terms each add two complexity points when present anywhere in
// the title or description. Independent from the classifier's keyword table.
var complexTech = []string{"react", "node.js", "python", "ai", "machine learning", "api", "database", "mobile app"}

var monthlyBasePrices = map[Category]int{
	CategoryManagement:  2000,
	CategoryDesign:      1500,
	CategoryDevelopment: 2500,
	CategoryMarketing:   1800,
	CategoryContent:     1200,
	CategoryGeneral:     1500,
}

var highComplexityKeywords = []string{"متقدم", "advanced", "معقد", "complex", "احترافي", "professional"}
var lowComplexityKeywords = []string{"بسيط", "simple", "أساسي", "basic", "مبتدئ", "beginner"}

// milestoneTemplates hold deliverable labels per project kind, indexed by
// milestone position. Positions past the template length fall back to a
// generic phase label.
var milestoneTemplates = map[string][]string{
	"website": {
		"تصميم واجهة المستخدم",
		"تطوير الواجهة الأمامية",
		"اختبار وإطلاق الموقع",
	},
	"app": {
		"تصميم واجهة التطبيق",
		"تطوير الوظائف الأساسية",
		"اختبار وإطلاق التطبيق",
	},
	"api": {
		"تصميم هيكل API",
		"تطوير نقاط النهاية",
		"اختبار وتوثيق API",
	},
	"default": {
		"التحليل والتخطيط",
		"التطوير والتنفيذ",
		"الاختبار والتسليم",
	},
}

// MilestonePlan is a priced milestone breakdown. The milestone budgets
// always sum to TotalPrice exactly.
type MilestonePlan struct {
	TotalPrice int
	Milestones []model.Milestone
}

// BuildMilestonePlan prices a one-off project and splits the total across
// count milestones. The integer-division remainder goes to the last
// milestone so the sum stays exact.
func BuildMilestonePlan(info model.ProjectInfo, count int) MilestonePlan {
	if count < 1 {
		count = 1
	}

	total := milestoneTotal(complexityScore(info.Title, info.Description))
	templates, ok := milestoneTemplates[projectKind(info.Title)]
	if !ok {
		templates = milestoneTemplates["default"]
	}

	perMilestone := total / count
	milestones := make([]model.Milestone, 0, count)
	for i := 0; i < count; i++ {
		price := perMilestone
		if i == count-1 {
			price = total - perMilestone*(count-1)
		}

		deliverable := fmt.Sprintf("المرحلة %d", i+1)
		if i < len(templates) {
			deliverable = templates[i]
		}

		milestones = append(milestones, model.Milestone{
			Budget:      price,
			Deliverable: deliverable,
			Outcome:     deliverable,
		})
	}

	return MilestonePlan{TotalPrice: total, Milestones: milestones}
}

// MonthlyPrice derives a recurring monthly rate from the project's category
// base price, adjusted by complexity keywords and clamped to the monthly
// band.
func MonthlyPrice(info model.ProjectInfo) int {
	category := ClassifyProject(info.Title, info.Description, info.Skills)
	price := monthlyBasePrices[category]

	text := strings.ToLower(info.Title + " " + info.Description)
	if containsAny(text, highComplexityKeywords) {
		price = int(float64(price) * 1.5)
	}
	if containsAny(text, lowComplexityKeywords) {
		price = int(float64(price) * 0.8)
	}

	return clamp(price, monthlyMinPrice, monthlyMaxPrice)
}

func complexityScore(title, description string) int {
	text := strings.ToLower(title + " " + description)

	score := 0
	for _, tech := range complexTech {
		if strings.Contains(text, tech) {
			score += 2
		}
	}

	switch projectKind(title) {
	case "website":
		score++
	case "app":
		score += 3
	case "api", "database":
		score += 2
	}
	return score
}

// projectKind is keyed off the title alone; descriptions drift too much to
// pick the milestone template from.
func projectKind(title string) string {
	t := strings.ToLower(title)
	switch {
	case strings.Contains(t, "website") || strings.Contains(t, "موقع"):
		return "website"
	case strings.Contains(t, "app") || strings.Contains(t, "تطبيق"):
		return "app"
	case strings.Contains(t, "api") || strings.Contains(t, "interface"):
		return "api"
	case strings.Contains(t, "database") || strings.Contains(t, "قاعدة بيانات"):
		return "database"
	}
	return "default"
}

func milestoneTotal(score int) int {
	price := milestoneBasePrice
	switch {
	case score <= 2:
		price += score * 50
	case score <= 4:
		price += score * 75
	default:
		price += score * 100
	}
	return clamp(price, milestoneMinPrice, milestoneMaxPrice)
}

func clamp(price, min, max int) int {
	if price < min {
		return min
	}
	if price > max {
		return max
	}
	return price
}
