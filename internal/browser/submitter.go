package browser

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"bahar-go/internal/model"
)

var applySelectors = []string{
	"[data-testid='submit-offer-button']",
	"a[href*='/apply']",
	"button[class*='apply']",
	"a[class*='apply']",
}

// Submitter drives the Bahar proposal flow in a real browser: open the
// project, verify it still takes offers, fill the form, submit.
type Submitter struct {
	manager    *Manager
	baseURL    string
	username   string
	password   string
	autoSubmit bool

	mu       sync.Mutex
	loggedIn bool
}

func NewSubmitter(manager *Manager, baseURL, username, password string, autoSubmit bool) *Submitter {
	return &Submitter{
		manager:    manager,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		username:   username,
		password:   password,
		autoSubmit: autoSubmit,
	}
}

// SubmitOffer opens the project page and walks the proposal form with the
// generated offer.
func (s *Submitter) SubmitOffer(ctx context.Context, project model.ProjectInfo, offer model.GeneratedOffer) (model.SubmissionResult, error) {
	if err := s.ensureLogin(ctx); err != nil {
		return model.SubmissionResult{}, fmt.Errorf("login: %w", err)
	}

	link := project.Link
	if link == "" {
		link = fmt.Sprintf("%s/projects/%s", s.baseURL, project.ExternalID)
	}

	page, sessionID, err := s.manager.OpenPage(ctx, link)
	if err != nil {
		return model.SubmissionResult{}, fmt.Errorf("open project page: %w", err)
	}
	defer s.manager.ClosePage(sessionID)

	if err := page.WaitLoad(); err != nil {
		return model.SubmissionResult{}, fmt.Errorf("load project page: %w", err)
	}
	s.manager.Touch(sessionID, link)

	status := CheckProjectStatus(page)
	if !status.Eligible {
		return model.SubmissionResult{Skipped: true, Reason: status.Reason}, nil
	}

	if err := s.openOfferForm(page, link); err != nil {
		return model.SubmissionResult{}, err
	}

	fill := FillOfferForm(page, offer)
	if len(fill.FilledFields) == 0 {
		return model.SubmissionResult{}, fmt.Errorf("no form fields found on %s", link)
	}
	log.Printf("[browser] filled fields: %s", strings.Join(fill.FilledFields, ", "))

	submitted, err := SubmitOfferForm(page, !s.autoSubmit)
	if err != nil {
		return model.SubmissionResult{FilledFields: fill.FilledFields}, err
	}

	return model.SubmissionResult{Submitted: submitted, FilledFields: fill.FilledFields}, nil
}

func (s *Submitter) ensureLogin(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loggedIn {
		return nil
	}

	page, sessionID, err := s.manager.OpenPage(ctx, s.baseURL+"/login")
	if err != nil {
		return err
	}
	defer s.manager.ClosePage(sessionID)

	if err := Login(page, s.username, s.password); err != nil {
		return err
	}
	s.loggedIn = true
	return nil
}

// openOfferForm moves from the project page to the proposal form, clicking
// the apply button when one exists and falling back to the direct URL.
func (s *Submitter) openOfferForm(page *rod.Page, link string) error {
	if el, ok := firstElement(page, applySelectors); ok {
		if err := el.Click(proto.InputMouseButtonLeft, 1); err == nil {
			if err := page.WaitLoad(); err != nil {
				return fmt.Errorf("load offer form: %w", err)
			}
			return nil
		}
	}

	if err := page.Navigate(link + "/apply"); err != nil {
		return fmt.Errorf("navigate to offer form: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("load offer form: %w", err)
	}
	return nil
}
