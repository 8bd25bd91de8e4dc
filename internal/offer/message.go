package offer

import (
	"fmt"
	"strings"

	"bahar-go/internal/model"
)

// skillFilters pick the user skills worth naming inside each category's
// message.
var skillFilters = map[Category][]string{
	CategoryDesign:      {"design", "ui", "ux", "graphic", "تصميم"},
	CategoryDevelopment: {"development", "programming", "coding", "تطوير", "web", "app"},
	CategoryMarketing:   {"marketing", "social media", "advertising", "تسويق"},
	CategoryContent:     {"content", "writing", "copywriting", "محتوى", "كتابة"},
}

// RenderMessage produces the Arabic brief for a project by dispatching on
// its category. Pure string formatting.
func RenderMessage(info model.ProjectInfo, prefs model.UserPreferences) string {
	category := ClassifyProject(info.Title, info.Description, info.Skills)

	switch category {
	case CategoryManagement:
		return managementMessage
	case CategoryDesign:
		return fmt.Sprintf(designMessage, joinMatching(prefs.Skills, skillFilters[CategoryDesign]))
	case CategoryDevelopment:
		return fmt.Sprintf(developmentMessage, joinMatching(prefs.Skills, skillFilters[CategoryDevelopment]))
	case CategoryMarketing:
		return fmt.Sprintf(marketingMessage, joinMatching(prefs.Skills, skillFilters[CategoryMarketing]))
	case CategoryContent:
		return fmt.Sprintf(contentMessage, joinMatching(prefs.Skills, skillFilters[CategoryContent]))
	}
	return fmt.Sprintf(generalMessage, strings.Join(firstN(prefs.Skills, 3), ", "))
}

func joinMatching(skills, keywords []string) string {
	matched := make([]string, 0, len(skills))
	for _, skill := range skills {
		if containsAny(strings.ToLower(skill), keywords) {
			matched = append(matched, skill)
		}
	}
	return strings.Join(matched, ", ")
}

func firstN(values []string, n int) []string {
	if len(values) <= n {
		return values
	}
	return values[:n]
}

const managementMessage = `السلام عليكم ورحمة الله وبركاته،

أود التعبير عن اهتمامي الشديد بمشروعكم. بعد مراجعة متطلبات المشروع، أعتقد أن لدي الخبرة والمهارات المناسبة للمساهمة في نجاح هذا المشروع.

أنا متحمس للعمل معكم كشريك تنفيذي ومساعدتكم في تحقيق أهداف المشروع. لدي خبرة في إدارة المشاريع والتعاون مع الفرق المختلفة.

أعتقد أن هذا التعاون سيكون مفيداً للطرفين، وسأعمل بجد لضمان نجاح المشروع وتحقيق النتائج المطلوبة.

أنا متاح للبدء فوراً وأتطلع للعمل معكم.

شكراً لكم على هذه الفرصة.`

const designMessage = `السلام عليكم ورحمة الله وبركاته،

أود التعبير عن اهتمامي الشديد بمشروعكم. بعد مراجعة متطلبات المشروع، أعتقد أن مهاراتي في التصميم ستكون مناسبة تماماً لهذا المشروع.

مهاراتي في التصميم:
أمتلك خبرة في تصميم %s، وأعمل على إنتاج تصميمات عالية الجودة تلبي احتياجات العملاء.

نهجي في المشروع:
سأقوم بتطوير التصميمات باستخدام أحدث الأدوات والمعايير في المجال، مع التركيز على:
- التصميم المبتكر والجذاب
- سهولة الاستخدام والتجربة
- التوافق مع هوية العلامة التجارية
- قابلية التطوير والتعديل

أود مناقشة تفاصيل المشروع معكم والإجابة على أي أسئلة لديكم.

مع أطيب التحيات،
مصمم محترف`

const developmentMessage = `السلام عليكم ورحمة الله وبركاته،

أود التعبير عن اهتمامي الشديد بمشروعكم. بعد مراجعة متطلبات المشروع، أعتقد أن مهاراتي في التطوير ستكون مناسبة تماماً لهذا المشروع.

مهاراتي في التطوير:
أمتلك خبرة في %s، وأعمل على تطوير حلول تقنية متكاملة.

نهجي في المشروع:
سأقوم بتطوير المشروع باستخدام أحدث التقنيات وأفضل الممارسات، مع التركيز على:
- الكود النظيف والقابل للصيانة
- الأداء العالي والأمان
- سهولة الاستخدام والتجربة
- قابلية التطوير والتوسع

أود مناقشة تفاصيل المشروع معكم والإجابة على أي أسئلة لديكم.

مع أطيب التحيات،
مطور محترف`

const marketingMessage = `السلام عليكم ورحمة الله وبركاته،

أود التعبير عن اهتمامي الشديد بمشروعكم. بعد مراجعة متطلبات المشروع، أعتقد أن مهاراتي في التسويق ستكون مناسبة تماماً لهذا المشروع.

مهاراتي في التسويق:
أمتلك خبرة في %s، وأعمل على تطوير استراتيجيات تسويقية فعالة.

نهجي في المشروع:
سأقوم بتطوير استراتيجية تسويقية شاملة، مع التركيز على:
- الوصول للجمهور المستهدف
- زيادة الوعي بالعلامة التجارية
- تحسين معدلات التحويل
- قياس وتحليل النتائج

أود مناقشة تفاصيل المشروع معكم والإجابة على أي أسئلة لديكم.

مع أطيب التحيات،
متخصص تسويق محترف`

const contentMessage = `السلام عليكم ورحمة الله وبركاته،

أود التعبير عن اهتمامي الشديد بمشروعكم. بعد مراجعة متطلبات المشروع، أعتقد أن مهاراتي في المحتوى ستكون مناسبة تماماً لهذا المشروع.

مهاراتي في المحتوى:
أمتلك خبرة في %s، وأعمل على إنتاج محتوى عالي الجودة.

نهجي في المشروع:
سأقوم بتطوير محتوى أصلي ومقنع، مع التركيز على:
- المحتوى المميز والجذاب
- تحسين محركات البحث
- التواصل الفعال مع الجمهور
- الحفاظ على هوية العلامة التجارية

أود مناقشة تفاصيل المشروع معكم والإجابة على أي أسئلة لديكم.

مع أطيب التحيات،
كاتب محتوى محترف`

const generalMessage = `السلام عليكم ورحمة الله وبركاته،

أود التعبير عن اهتمامي الشديد بمشروعكم. بعد مراجعة متطلبات المشروع، أعتقد أن مهاراتي ستكون مناسبة تماماً لهذا المشروع.

مهاراتي:
أمتلك خبرة في %s، وأعمل على إنجاز المشاريع بكفاءة عالية وجودة ممتازة.

نهجي في المشروع:
سأقوم بإنجاز المشروع وفقاً للمعايير المطلوبة، مع التركيز على:
- الجودة العالية في العمل
- الالتزام بالجداول الزمنية
- التواصل المستمر والمتابعة
- تحقيق النتائج المطلوبة

أود مناقشة تفاصيل المشروع معكم والإجابة على أي أسئلة لديكم.

مع أطيب التحيات،
محترف متخصص`
