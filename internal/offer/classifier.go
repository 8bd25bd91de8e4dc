package offer

import "strings"

type Category string

const (
	CategoryManagement  Category = "management"
	CategoryDesign      Category = "design"
	CategoryDevelopment Category = "development"
	CategoryMarketing   Category = "marketing"
	CategoryContent     Category = "content"
	CategoryGeneral     Category = "general"
)

// categoryRules are evaluated in order; the first rule with any keyword hit
// wins. Management sits first so partnership projects never fall through to
// the specialised buckets.
var categoryRules = []struct {
	category Category
	keywords []string
}{
	{CategoryManagement, []string{"شريك", "partner", "إدارة", "management", "تنفيذي", "executive", "مشروع", "project", "شراكة", "partnership", "تعاون", "cooperation", "متعاون", "collaboration"}},
	{CategoryDesign, []string{"تصميم", "design", "ui", "ux", "graphic", "logo", "brand", "visual", "illustration", "photoshop", "figma", "sketch"}},
	{CategoryDevelopment, []string{"تطوير", "development", "programming", "coding", "web", "app", "software", "react", "node", "python", "javascript", "php"}},
	{CategoryMarketing, []string{"تسويق", "marketing", "social media", "advertising", "campaign", "seo", "sem", "facebook", "instagram"}},
	{CategoryContent, []string{"محتوى", "content", "writing", "copywriting", "translation", "editing", "blog", "article", "text"}},
}

// ClassifyProject maps a project's free text and required skills onto a
// fixed category set. It always returns a category; unmatched text is
// general.
func ClassifyProject(title, description string, skills []string) Category {
	text := strings.ToLower(title + " " + description)
	skillsText := strings.ToLower(strings.Join(skills, " "))

	for _, rule := range categoryRules {
		if containsAny(text, rule.keywords) || containsAny(skillsText, rule.keywords) {
			return rule.category
		}
	}
	return CategoryGeneral
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
