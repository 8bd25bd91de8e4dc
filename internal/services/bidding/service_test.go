package bidding

import (
	"context"
	"errors"
	"testing"

	"bahar-go/internal/model"
)

type fakeSource struct {
	projects []model.ProjectInfo
	err      error
}

func (f *fakeSource) Source() string { return "bahar" }

func (f *fakeSource) ListOpenProjects(ctx context.Context) ([]model.ProjectInfo, error) {
	return f.projects, f.err
}

type fakeSubmitter struct {
	results map[string]model.SubmissionResult
	errs    map[string]error
	calls   []string
}

func (f *fakeSubmitter) SubmitOffer(ctx context.Context, project model.ProjectInfo, offer model.GeneratedOffer) (model.SubmissionResult, error) {
	f.calls = append(f.calls, project.ExternalID)
	if err, ok := f.errs[project.ExternalID]; ok {
		return model.SubmissionResult{}, err
	}
	if res, ok := f.results[project.ExternalID]; ok {
		return res, nil
	}
	return model.SubmissionResult{Submitted: true, FilledFields: []string{"brief"}}, nil
}

type fakeRepo struct {
	existing map[string]bool
	created  []model.ProposalCreate
}

func (f *fakeRepo) CreateIfNotExists(ctx context.Context, input model.ProposalCreate) (model.Proposal, bool, error) {
	key := input.Source + "/" + input.ExternalID
	if f.existing[key] {
		return model.Proposal{}, false, nil
	}
	if f.existing == nil {
		f.existing = map[string]bool{}
	}
	f.existing[key] = true
	f.created = append(f.created, input)
	return model.Proposal{
		ID:         int32(len(f.created)),
		Source:     input.Source,
		ExternalID: input.ExternalID,
		Title:      input.Title,
		Link:       input.Link,
	}, true, nil
}

func (f *fakeRepo) Exists(ctx context.Context, source, externalID string) (bool, error) {
	return f.existing[source+"/"+externalID], nil
}

type fakeNotifier struct {
	alerts []string
}

func (f *fakeNotifier) SendAlert(project model.ProjectInfo, offer model.GeneratedOffer) {
	f.alerts = append(f.alerts, project.ExternalID)
}

func openProject(id, title, budget string) model.ProjectInfo {
	return model.ProjectInfo{
		Source:     "bahar",
		ExternalID: id,
		Title:      title,
		BudgetText: budget,
		Link:       "https://bahr.sa/projects/" + id,
		Status:     "open",
	}
}

func TestRunSubmitsAndRecords(t *testing.T) {
	source := &fakeSource{projects: []model.ProjectInfo{
		openProject("p1", "تطوير موقع الكتروني", "من 1,000 إلى 2,000 ريال"),
	}}
	repo := &fakeRepo{}
	submitter := &fakeSubmitter{}
	notifier := &fakeNotifier{}

	svc := NewService(repo, notifier, source, submitter, model.DefaultPreferences(), Config{
		MinBudget: 100,
		MaxBudget: 5000,
	})
	svc.Run(context.Background())

	if len(repo.created) != 1 {
		t.Fatalf("created = %d, want 1", len(repo.created))
	}
	created := repo.created[0]
	if created.ExternalID != "p1" || !created.Submitted {
		t.Fatalf("unexpected proposal: %+v", created)
	}
	if created.Category != "development" {
		t.Fatalf("category = %q, want development", created.Category)
	}
	if created.TotalPriceSAR <= 0 {
		t.Fatalf("total price = %d, want > 0", created.TotalPriceSAR)
	}
	if len(notifier.alerts) != 1 || notifier.alerts[0] != "p1" {
		t.Fatalf("alerts = %v, want [p1]", notifier.alerts)
	}
}

func TestRunFiltersBudgetAndClosed(t *testing.T) {
	source := &fakeSource{projects: []model.ProjectInfo{
		openProject("cheap", "مشروع صغير", "50 ريال"),
		openProject("rich", "مشروع ضخم", "من 20,000 ريال"),
		{Source: "bahar", ExternalID: "done", Title: "تصميم شعار", Status: "closed"},
		openProject("ok", "تصميم شعار للشركة", "من 200 إلى 800 ريال"),
	}}
	repo := &fakeRepo{}
	submitter := &fakeSubmitter{}

	svc := NewService(repo, &fakeNotifier{}, source, submitter, model.DefaultPreferences(), Config{
		MinBudget: 100,
		MaxBudget: 5000,
	})
	svc.Run(context.Background())

	if len(submitter.calls) != 1 || submitter.calls[0] != "ok" {
		t.Fatalf("submitted = %v, want [ok]", submitter.calls)
	}
}

func TestRunSkipsAlreadyRecorded(t *testing.T) {
	source := &fakeSource{projects: []model.ProjectInfo{
		openProject("seen", "تطوير تطبيق جوال", "1,500 ريال"),
	}}
	repo := &fakeRepo{existing: map[string]bool{"bahar/seen": true}}
	submitter := &fakeSubmitter{}

	svc := NewService(repo, &fakeNotifier{}, source, submitter, model.DefaultPreferences(), Config{
		MinBudget: 100,
		MaxBudget: 5000,
	})
	svc.Run(context.Background())

	if len(submitter.calls) != 0 {
		t.Fatalf("submitted = %v, want none", submitter.calls)
	}
}

func TestRunStopsAfterConsecutiveErrors(t *testing.T) {
	projects := []model.ProjectInfo{
		openProject("e1", "تطوير موقع", "500 ريال"),
		openProject("e2", "تطوير متجر", "600 ريال"),
		openProject("e3", "تطوير نظام", "700 ريال"),
		openProject("e4", "تطوير منصة", "800 ريال"),
	}
	submitter := &fakeSubmitter{errs: map[string]error{
		"e1": errors.New("navigation timeout"),
		"e2": errors.New("navigation timeout"),
		"e3": errors.New("navigation timeout"),
	}}

	svc := NewService(&fakeRepo{}, &fakeNotifier{}, &fakeSource{projects: projects}, submitter, model.DefaultPreferences(), Config{
		MinBudget: 100,
		MaxBudget: 5000,
	})
	svc.Run(context.Background())

	if len(submitter.calls) != 3 {
		t.Fatalf("calls = %v, want cycle to stop after 3 failures", submitter.calls)
	}
}

func TestRunHonorsDailyCap(t *testing.T) {
	var projects []model.ProjectInfo
	for _, id := range []string{"a", "b", "c"} {
		projects = append(projects, openProject(id, "تطوير موقع "+id, "500 ريال"))
	}
	submitter := &fakeSubmitter{}

	svc := NewService(&fakeRepo{}, &fakeNotifier{}, &fakeSource{projects: projects}, submitter, model.DefaultPreferences(), Config{
		MaxOffersPerDay: 2,
		MinBudget:       100,
		MaxBudget:       5000,
	})
	svc.Run(context.Background())

	if len(submitter.calls) != 2 {
		t.Fatalf("calls = %v, want 2 before the daily cap", submitter.calls)
	}
}

func TestRunSkippedResultNotRecorded(t *testing.T) {
	source := &fakeSource{projects: []model.ProjectInfo{
		openProject("gone", "تصميم هوية بصرية", "400 ريال"),
	}}
	repo := &fakeRepo{}
	submitter := &fakeSubmitter{results: map[string]model.SubmissionResult{
		"gone": {Skipped: true, Reason: "project closed"},
	}}
	notifier := &fakeNotifier{}

	svc := NewService(repo, notifier, source, submitter, model.DefaultPreferences(), Config{
		MinBudget: 100,
		MaxBudget: 5000,
	})
	svc.Run(context.Background())

	if len(repo.created) != 0 {
		t.Fatalf("created = %v, want none", repo.created)
	}
	if len(notifier.alerts) != 0 {
		t.Fatalf("alerts = %v, want none", notifier.alerts)
	}
}
