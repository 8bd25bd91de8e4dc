package browser

import "fmt"

// Selector fallback chains for the Bahar proposal and login forms. The site
// markup shifts between releases; each field carries every variant seen so
// far, tried in order.

var loginUsernameSelectors = []string{
	"input[name='email']",
	"input[name='username']",
	"input[type='email']",
}

var loginPasswordSelectors = []string{
	"input[name='password']",
	"input[type='password']",
}

var loginSubmitSelectors = []string{
	"button[type='submit']",
	"form button",
}

var loggedInSelectors = []string{
	"[class*='user-menu']",
	"[class*='avatar']",
	"[class*='profile']",
}

var durationSelectors = []string{
	"input[data-testid='duration-input']",
	"input[id='duration']",
	"input[name='duration']",
	"input[placeholder*='المدة']",
	"input[placeholder*='duration']",
	"input[placeholder*='أيام']",
}

var milestoneCountSelectors = []string{
	"input[data-testid='milestoneNumber-input']",
	"input[id='milestoneNumber']",
	"input[name='milestoneNumber']",
	"input[name='milestones']",
	"input[placeholder*='مراحل']",
	"input[placeholder*='milestone']",
}

var briefSelectors = []string{
	"textarea[data-testid='brief-input']",
	"textarea[id='brief']",
	"textarea[name='brief']",
	"textarea[placeholder*='النبذة']",
	"textarea[placeholder*='brief']",
	"textarea[placeholder*='الوصف']",
	"textarea",
}

var platformCommunicationSelectors = []string{
	"input[id='platformCommunication']",
	"input[data-testid='platformCommunication-checkbox']",
	"input[name='platformCommunication']",
}

var monthlyBudgetSelectors = []string{
	"input[data-testid='monthlyBudget-input']",
	"input[name='monthlyBudget']",
	"input[placeholder*='monthly']",
	"input[placeholder*='شهري']",
}

var addMilestoneSelectors = []string{
	"[data-testid*='add-milestone']",
	"button[aria-label*='milestone']",
}

var submitSelectors = []string{
	"button[data-testid='submit-offer']",
	"button[type='submit']",
	"button[class*='submit']",
}

// closedIndicators and submittedIndicators are matched against the rendered
// page text to decide whether a project can still take offers.
var closedIndicators = []string{"مغلق", "منتهي", "مكتمل", "Closed", "Expired", "Completed"}

var submittedIndicators = []string{"تم التقديم", "عرض مقدم", "Already Applied", "Offer Submitted"}

func milestoneBudgetSelectors(index int) []string {
	return []string{
		fmt.Sprintf("input[name='milestonePrice-%d']", index),
		fmt.Sprintf("input[data-testid='milestonePrice-%d']", index),
		fmt.Sprintf("[data-testid*='milestone-%d'] input[type='number']", index),
	}
}

func milestoneDeliverableSelectors(index int) []string {
	return []string{
		fmt.Sprintf("input[name='milestoneName-%d']", index),
		fmt.Sprintf("input[data-testid='milestoneName-%d']", index),
		fmt.Sprintf("[data-testid*='milestone-%d'] input[type='text']", index),
	}
}
