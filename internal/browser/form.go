package browser

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"

	"bahar-go/internal/model"
)

// FillResult reports which proposal fields the filler managed to set.
type FillResult struct {
	FilledFields []string
	Submitted    bool
}

// ProjectStatus is the eligibility verdict for a project page.
type ProjectStatus struct {
	Eligible bool
	Reason   string
}

// CheckProjectStatus inspects the rendered project page for closed or
// already-submitted markers. Unknown status counts as eligible; the form
// step fails on its own if the project is truly gone.
func CheckProjectStatus(page *rod.Page) ProjectStatus {
	content, err := page.HTML()
	if err != nil {
		return ProjectStatus{Eligible: false, Reason: fmt.Sprintf("read page: %v", err)}
	}
	return statusFromContent(content)
}

// statusFromContent case-folds the page text so the English markers match
// regardless of how the markup capitalises them.
func statusFromContent(content string) ProjectStatus {
	folded := strings.ToLower(content)
	for _, marker := range submittedIndicators {
		if strings.Contains(folded, strings.ToLower(marker)) {
			return ProjectStatus{Eligible: false, Reason: "already submitted"}
		}
	}
	for _, marker := range closedIndicators {
		if strings.Contains(folded, strings.ToLower(marker)) {
			return ProjectStatus{Eligible: false, Reason: "project closed"}
		}
	}
	return ProjectStatus{Eligible: true}
}

// FillOfferForm fills the proposal form with the generated offer. Fields the
// current markup does not expose are logged and skipped; the result lists
// what actually got filled.
func FillOfferForm(page *rod.Page, offer model.GeneratedOffer) FillResult {
	result := FillResult{}

	if fillFirst(page, durationSelectors, strconv.Itoa(offer.Duration)) {
		result.FilledFields = append(result.FilledFields, "duration")
	} else {
		log.Printf("[browser] duration field not found")
	}

	if offer.IsMonthly {
		fillMonthly(page, offer, &result)
	} else {
		fillMilestones(page, offer, &result)
	}

	if fillFirst(page, briefSelectors, offer.Brief) {
		result.FilledFields = append(result.FilledFields, "brief")
	} else {
		log.Printf("[browser] brief field not found")
	}

	if offer.PlatformCommunication && checkFirst(page, platformCommunicationSelectors) {
		result.FilledFields = append(result.FilledFields, "platform_communication")
	}

	return result
}

// SubmitOfferForm clicks the submit button. With dryRun set it only verifies
// the button exists.
func SubmitOfferForm(page *rod.Page, dryRun bool) (bool, error) {
	el, ok := firstElement(page, submitSelectors)
	if !ok {
		return false, fmt.Errorf("submit button not found")
	}
	if dryRun {
		log.Printf("[browser] dry run: submit button found, not clicking")
		return false, nil
	}

	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		return false, fmt.Errorf("click submit: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		log.Printf("[browser] post-submit wait: %v", err)
	}
	return true, nil
}

func fillMonthly(page *rod.Page, offer model.GeneratedOffer, result *FillResult) {
	if fillFirst(page, monthlyBudgetSelectors, strconv.Itoa(offer.TotalPriceSAR)) {
		result.FilledFields = append(result.FilledFields, "monthly_budget")
		return
	}

	// Older markup keeps the milestone layout even for monthly offers.
	if fillFirst(page, milestoneBudgetSelectors(0), strconv.Itoa(offer.TotalPriceSAR)) {
		result.FilledFields = append(result.FilledFields, "milestone_0_budget")
	}
	if len(offer.Milestones) > 0 && fillFirst(page, milestoneDeliverableSelectors(0), offer.Milestones[0].Deliverable) {
		result.FilledFields = append(result.FilledFields, "milestone_0_deliverable")
	}
}

func fillMilestones(page *rod.Page, offer model.GeneratedOffer, result *FillResult) {
	if fillFirst(page, milestoneCountSelectors, strconv.Itoa(offer.MilestoneNumber)) {
		result.FilledFields = append(result.FilledFields, "milestone_number")
		ensureMilestonesRendered(page, offer.MilestoneNumber)
	} else {
		log.Printf("[browser] milestone count field not found")
	}

	for i, milestone := range offer.Milestones {
		if fillFirst(page, milestoneBudgetSelectors(i), strconv.Itoa(milestone.Budget)) {
			result.FilledFields = append(result.FilledFields, fmt.Sprintf("milestone_%d_budget", i))
		} else {
			log.Printf("[browser] budget field for milestone %d not found", i+1)
		}
		if fillFirst(page, milestoneDeliverableSelectors(i), milestone.Deliverable) {
			result.FilledFields = append(result.FilledFields, fmt.Sprintf("milestone_%d_deliverable", i))
		} else {
			log.Printf("[browser] deliverable field for milestone %d not found", i+1)
		}
	}
}

// ensureMilestonesRendered waits for milestone rows to appear, clicking the
// add-milestone button when the form needs explicit row creation.
func ensureMilestonesRendered(page *rod.Page, count int) {
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := firstElement(page, milestoneBudgetSelectors(count-1)); ok {
			return
		}
		if el, ok := firstElement(page, addMilestoneSelectors); ok {
			_ = el.Click(proto.InputMouseButtonLeft, 1)
		}
		time.Sleep(300 * time.Millisecond)
	}
	log.Printf("[browser] milestone rows did not render for count %d", count)
}

// firstElement walks a selector fallback chain and returns the first visible
// match without waiting for absent elements.
func firstElement(page *rod.Page, selectors []string) (*rod.Element, bool) {
	for _, selector := range selectors {
		has, el, err := page.Has(selector)
		if err != nil || !has {
			continue
		}
		if visible, err := el.Visible(); err != nil || !visible {
			continue
		}
		return el, true
	}
	return nil, false
}

func fillFirst(page *rod.Page, selectors []string, value string) bool {
	el, ok := firstElement(page, selectors)
	if !ok {
		return false
	}
	// Select any existing text so Input replaces instead of appending.
	_ = el.SelectAllText()
	if err := el.Input(value); err != nil {
		log.Printf("[browser] input failed: %v", err)
		return false
	}
	return true
}

func checkFirst(page *rod.Page, selectors []string) bool {
	el, ok := firstElement(page, selectors)
	if !ok {
		return false
	}

	checked, err := el.Property("checked")
	if err == nil && checked.Bool() {
		return true
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		log.Printf("[browser] checkbox click failed: %v", err)
		return false
	}
	return true
}
