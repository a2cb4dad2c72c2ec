package investigate

import (
	"context"
	"log"
)

// learnUsingRevSolver schedules a reverse-dependency workflow when the
// triple is unknown to the store and the (package, version) pair has not
// already been handled within this dispatch. The pair is marked seen even
// when the scheduling call fails; a failed attempt is not retried.
func (inv *Investigator) learnUsingRevSolver(ctx context.Context, isPresent bool, packageName, packageVersion string, seen seenSet) int {
	pair := packageVersionPair{Name: packageName, Version: packageVersion}

	if isPresent || seen.contains(pair) {
		return 0
	}

	scheduled := inv.scheduleRevSolver(ctx, packageName, packageVersion)
	seen.add(pair)
	return scheduled
}

func (inv *Investigator) scheduleRevSolver(ctx context.Context, packageName, packageVersion string) int {
	analysisID, err := inv.Scheduler.ScheduleRevSolver(ctx, packageName, packageVersion, inv.DebugRevSolver)
	if err != nil {
		log.Printf("Failed to schedule reverse solver for %s in version %s: %v", packageName, packageVersion, err)
		return 0
	}

	log.Printf("Scheduled reverse solver for package %s in version %s, analysis is %s", packageName, packageVersion, analysisID)
	return 1
}
