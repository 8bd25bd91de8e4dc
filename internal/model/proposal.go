package model

import "time"

type Proposal struct {
	ID            int32
	Source        string
	ExternalID    string
	Title         string
	Link          string
	Category      string
	TotalPriceSAR int64
	IsMonthly     bool
	Submitted     bool
	CreatedAt     time.Time
}

type ProposalCreate struct {
	Source        string
	ExternalID    string
	Title         string
	Link          string
	Category      string
	TotalPriceSAR int64
	IsMonthly     bool
	Submitted     bool
}
