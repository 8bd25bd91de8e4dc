package preferences

import (
	"log"
	"os"
	"strings"

	"bahar-go/internal/model"
)

// Load reads the freelancer preferences file: UTF-8 text, one "key: value"
// pair per line, "#" comments, bracketed placeholder values ignored. A
// missing or unreadable file falls back to defaults; Load never fails.
func Load(path string) model.UserPreferences {
	content, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[preferences] using defaults: %v", err)
		return model.DefaultPreferences()
	}
	return Parse(string(content))
}

// Parse extracts preferences from the raw file content. Skill-ish keys are
// aggregated into the skills list in file order; comma-separated values are
// split.
func Parse(content string) model.UserPreferences {
	prefs := model.DefaultPreferences()

	skills := []string{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)
		if value == "" || strings.HasPrefix(value, "[") {
			continue
		}

		switch {
		case strings.Contains(key, "skill"):
			for _, part := range strings.Split(value, ",") {
				if part = strings.TrimSpace(part); part != "" {
					skills = append(skills, part)
				}
			}
		case key == "experience":
			prefs.Experience = value
		case key == "rate":
			prefs.Rate = value
		}
	}

	if len(skills) > 0 {
		prefs.Skills = skills
	}
	return prefs
}
