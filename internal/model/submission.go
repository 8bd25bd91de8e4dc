package model

// SubmissionResult reports the outcome of driving the proposal form for one
// project.
type SubmissionResult struct {
	Submitted    bool
	Skipped      bool
	Reason       string
	FilledFields []string
}
