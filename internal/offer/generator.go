package offer

import (
	"strings"

	"bahar-go/internal/model"
)

const (
	milestoneCount    = 3
	milestoneDuration = 3
	monthlyDuration   = 30

	monthlyDeliverable = "خدمات شهرية مستمرة"
)

// GenerateOffer builds the complete proposal content for a project.
// Deterministic, no I/O; empty inputs fall through to general-category
// defaults.
func GenerateOffer(info model.ProjectInfo, prefs model.UserPreferences) model.GeneratedOffer {
	if len(prefs.Skills) == 0 {
		prefs = model.DefaultPreferences()
	}

	brief := strings.TrimSpace(RenderMessage(info, prefs))

	if IsMonthlyProject(info.Title, info.Description) {
		price := MonthlyPrice(info)
		return model.GeneratedOffer{
			Duration:              monthlyDuration,
			MilestoneNumber:       1,
			Brief:                 brief,
			PlatformCommunication: true,
			Milestones: []model.Milestone{{
				Budget:      price,
				Deliverable: monthlyDeliverable,
				Outcome:     monthlyDeliverable,
			}},
			TotalPriceSAR: price,
			IsMonthly:     true,
		}
	}

	plan := BuildMilestonePlan(info, milestoneCount)
	return model.GeneratedOffer{
		Duration:              milestoneDuration,
		MilestoneNumber:       milestoneCount,
		Brief:                 brief,
		PlatformCommunication: true,
		Milestones:            plan.Milestones,
		TotalPriceSAR:         plan.TotalPrice,
		IsMonthly:             false,
	}
}
