package investigate

import (
	"context"
	"fmt"
	"log"
)

// packageSpec formats the pinned requirement string solvers consume.
func packageSpec(packageName, packageVersion string) string {
	return fmt.Sprintf("%s===%s", packageName, packageVersion)
}

// learnUsingSolver schedules the solver workflows needed to learn the
// dependencies of a package version. A triple the store has never seen
// gets all solver backends scheduled at once; a partially known triple is
// probed per backend and only the missing ones are scheduled. Returns the
// number of workflows confirmed scheduled.
func (inv *Investigator) learnUsingSolver(ctx context.Context, isPresent bool, packageName, packageVersion, indexURL, requestedSolver string) (int, error) {
	if !isPresent {
		return inv.scheduleAllSolvers(ctx, packageName, packageVersion, []string{indexURL}), nil
	}

	var solvers []string
	if requestedSolver != "" {
		solvers = []string{requestedSolver}
	} else {
		names, err := inv.Scheduler.SolverNames(ctx)
		if err != nil {
			log.Printf("Failed to list solver backends: %v", err)
			return 0, nil
		}
		solvers = names
	}

	scheduled := 0
	for _, solverName := range solvers {
		isSolved, err := inv.Store.FactExistsForSolver(ctx, packageName, packageVersion, indexURL, solverName)
		if err != nil {
			return scheduled, err
		}
		if !isSolved {
			scheduled += inv.scheduleSolver(ctx, solverName, packageName, packageVersion, []string{indexURL})
		}
	}

	return scheduled, nil
}

func (inv *Investigator) scheduleSolver(ctx context.Context, solverName, packageName, packageVersion string, indexes []string) int {
	packages := packageSpec(packageName, packageVersion)

	analysisID, err := inv.Scheduler.ScheduleSolver(ctx, solverName, packages, indexes, false, inv.DebugSolver)
	if err != nil {
		log.Printf("Failed to schedule solver %s for package %s from %v: %v", solverName, packages, indexes, err)
		return 0
	}

	log.Printf("Scheduled solver %s for packages %s from indexes %v, analysis is %s", solverName, packages, indexes, analysisID)
	return 1
}

func (inv *Investigator) scheduleAllSolvers(ctx context.Context, packageName, packageVersion string, indexes []string) int {
	packages := packageSpec(packageName, packageVersion)

	analysisIDs, err := inv.Scheduler.ScheduleAllSolvers(ctx, packages, indexes)
	if err != nil {
		log.Printf("Failed to schedule solvers for package %s from %v: %v", packages, indexes, err)
		return 0
	}

	log.Printf("Scheduled solvers for packages %s from indexes %v, analysis ids are %v", packages, indexes, analysisIDs)
	return len(analysisIDs)
}
