package scheduler

import (
	"context"
)

// Scheduler schedules knowledge-collection workflows on the workflow
// controller. Every call returns the analysis ID (or IDs) assigned by the
// backend; any call may fail with an opaque error.
type Scheduler interface {
	ScheduleSolver(ctx context.Context, solverName, packages string, indexes []string, transitive, debug bool) (string, error)
	ScheduleAllSolvers(ctx context.Context, packages string, indexes []string) ([]string, error)
	ScheduleRevSolver(ctx context.Context, packageName, packageVersion string, debug bool) (string, error)
	ScheduleSecurityIndicator(ctx context.Context, packageName, packageVersion, indexURL, aggregationFunction string) (string, error)
	SolverNames(ctx context.Context) ([]string, error)
}
