package offer

import (
	"strings"
	"testing"

	"bahar-go/internal/model"
)

func TestRenderMessagePerCategory(t *testing.T) {
	prefs := model.UserPreferences{Skills: []string{"Web Development", "UI Design", "Content Writing", "SEO Marketing"}}

	cases := []struct {
		name      string
		title     string
		fragment  string
		wantSkill string
	}{
		{"design", "تصميم شعار", "مهاراتي في التصميم", "UI Design"},
		{"development", "تطوير موقع", "مهاراتي في التطوير", "Web Development"},
		{"marketing", "حملة تسويق", "مهاراتي في التسويق", "SEO Marketing"},
		{"content", "كتابة محتوى", "مهاراتي في المحتوى", "Content Writing"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := RenderMessage(model.ProjectInfo{Title: tc.title}, prefs)
			if !strings.Contains(msg, tc.fragment) {
				t.Fatalf("message missing category fragment %q", tc.fragment)
			}
			if !strings.Contains(msg, tc.wantSkill) {
				t.Fatalf("message missing matched skill %q", tc.wantSkill)
			}
		})
	}
}

func TestRenderMessageManagementIgnoresSkills(t *testing.T) {
	msg := RenderMessage(model.ProjectInfo{Title: "مطلوب شريك"}, model.UserPreferences{Skills: []string{"UI Design"}})
	if !strings.Contains(msg, "كشريك تنفيذي") {
		t.Fatal("expected the partnership message")
	}
	if strings.Contains(msg, "UI Design") {
		t.Fatal("management message does not interpolate skills")
	}
}

func TestRenderMessageGeneralTakesFirstThreeSkills(t *testing.T) {
	prefs := model.UserPreferences{Skills: []string{"One", "Two", "Three", "Four"}}
	msg := RenderMessage(model.ProjectInfo{Title: "عمل متنوع"}, prefs)

	if !strings.Contains(msg, "One, Two, Three") {
		t.Fatal("general message should list the first three skills")
	}
	if strings.Contains(msg, "Four") {
		t.Fatal("general message should cap the skill list at three")
	}
}
