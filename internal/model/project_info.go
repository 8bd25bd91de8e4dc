package model

// ProjectInfo is a project listing as the discovery layer sees it. Every
// field is optional; consumers treat missing values as empty.
type ProjectInfo struct {
	Source      string
	ExternalID  string
	Title       string
	Description string
	BudgetText  string
	Skills      []string
	Link        string
	Status      string
	PostedAt    string
	BidsCount   *int
}
