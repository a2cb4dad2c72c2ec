package investigate

import (
	"context"
	"log"
)

// aggregationFunction applied by the security-indicator workflow.
const securityAggregation = "process_data"

// learnAboutSecurity schedules a security-indicator workflow when no
// aggregated indicators exist for the triple yet. Unlike the solver case
// there is no per-backend tier: security indication is all-or-nothing per
// triple, so an absent fact always means one scheduling attempt.
func (inv *Investigator) learnAboutSecurity(ctx context.Context, isAnalyzed bool, packageName, packageVersion, indexURL string) int {
	if isAnalyzed {
		return 0
	}
	return inv.scheduleSecurityIndicator(ctx, packageName, packageVersion, indexURL)
}

func (inv *Investigator) scheduleSecurityIndicator(ctx context.Context, packageName, packageVersion, indexURL string) int {
	analysisID, err := inv.Scheduler.ScheduleSecurityIndicator(ctx, packageName, packageVersion, indexURL, securityAggregation)
	if err != nil {
		log.Printf("Failed to schedule security indicator for package %s in version %s from index %s: %v", packageName, packageVersion, indexURL, err)
		return 0
	}

	log.Printf("Scheduled security indicator for package %s in version %s from index %s, analysis is %s", packageName, packageVersion, indexURL, analysisID)
	return 1
}
