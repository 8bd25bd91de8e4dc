package preferences

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseSkillsAndFields(t *testing.T) {
	content := `# freelancer profile
Skills: Web Development, UI Design
Extra Skill: Copywriting
Experience: 5 years
Rate: 50 SAR/hour
Name: [YOUR_FIRST_NAME]
`
	prefs := Parse(content)

	wantSkills := []string{"Web Development", "UI Design", "Copywriting"}
	if !reflect.DeepEqual(prefs.Skills, wantSkills) {
		t.Fatalf("skills = %v, want %v", prefs.Skills, wantSkills)
	}
	if prefs.Experience != "5 years" {
		t.Fatalf("experience = %q", prefs.Experience)
	}
	if prefs.Rate != "50 SAR/hour" {
		t.Fatalf("rate = %q", prefs.Rate)
	}
}

func TestParseEmptyContentKeepsDefaults(t *testing.T) {
	prefs := Parse("")

	if len(prefs.Skills) == 0 {
		t.Fatal("expected default skills")
	}
	if prefs.Experience != "Several years" || prefs.Rate != "Competitive rate" {
		t.Fatalf("expected default placeholders, got %q / %q", prefs.Experience, prefs.Rate)
	}
}

func TestParseIgnoresPlaceholdersAndComments(t *testing.T) {
	content := `# Skills: Commented Out
Skills: [FILL_ME]
Rate:
`
	prefs := Parse(content)
	if !reflect.DeepEqual(prefs.Skills, []string{"Web Development", "Programming"}) {
		t.Fatalf("placeholder skills should be ignored, got %v", prefs.Skills)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	prefs := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if len(prefs.Skills) == 0 {
		t.Fatal("expected default skills for a missing file")
	}
}

func TestLoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.txt")
	if err := os.WriteFile(path, []byte("Skills: Go, Postgres\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	prefs := Load(path)
	if !reflect.DeepEqual(prefs.Skills, []string{"Go", "Postgres"}) {
		t.Fatalf("skills = %v", prefs.Skills)
	}
}
