package model

// Milestone is one deliverable/payment unit of a proposal.
type Milestone struct {
	Budget      int    `json:"budget"`
	Deliverable string `json:"deliverable"`
	Outcome     string `json:"outcome"`
}

// GeneratedOffer is the complete content of a proposal as the form filler
// consumes it. The JSON field names match the proposal form contract and
// must not change.
type GeneratedOffer struct {
	Duration              int         `json:"duration"`
	MilestoneNumber       int         `json:"milestone_number"`
	Brief                 string      `json:"brief"`
	PlatformCommunication bool        `json:"platform_communication"`
	Milestones            []Milestone `json:"milestones"`
	TotalPriceSAR         int         `json:"total_price_sar"`
	IsMonthly             bool        `json:"is_monthly"`
}
