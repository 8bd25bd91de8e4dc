package model

// UserPreferences is static freelancer configuration, loaded once at startup.
type UserPreferences struct {
	Skills     []string
	Experience string
	Rate       string
	MinBudget  int64
	MaxBudget  int64
}

// DefaultPreferences are used when no preferences file is available.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Skills:     []string{"Web Development", "Programming"},
		Experience: "Several years",
		Rate:       "Competitive rate",
	}
}
