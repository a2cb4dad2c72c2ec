package investigate

import (
	"context"
	"errors"
	"log"

	"github.com/deptrace/investigator/internal/index"
	"github.com/deptrace/investigator/internal/metrics"
	"github.com/deptrace/investigator/internal/scheduler"
	"github.com/deptrace/investigator/internal/store"
)

// ErrMissingPackageName marks a structurally invalid event.
var ErrMissingPackageName = errors.New("event carries no package name")

// Investigator decides which knowledge-collection workflows are needed to
// close the gaps around a package and schedules exactly those. All
// collaborators are injected; an Investigator holds no mutable state of
// its own, so one instance may serve concurrent dispatches.
type Investigator struct {
	Store     store.KnowledgeStore
	Scheduler scheduler.Scheduler
	Index     index.PackageIndex
	Metrics   metrics.Sink

	DebugSolver    bool
	DebugRevSolver bool
}

func New(st store.KnowledgeStore, sched scheduler.Scheduler, idx index.PackageIndex, sink metrics.Sink) *Investigator {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Investigator{
		Store:     st,
		Scheduler: sched,
		Index:     idx,
		Metrics:   sink,
	}
}

// Dispatch handles one unresolved-package event: it determines which
// solver, reverse-solver and security-indicator facts are still missing
// for the package's candidate versions and schedules a workflow per gap.
// Scheduler and index failures are absorbed as zero-count contributions;
// knowledge-store failures and malformed events abort the dispatch.
func (inv *Investigator) Dispatch(ctx context.Context, event UnresolvedPackageEvent) (Tally, error) {
	tally, err := inv.dispatch(ctx, event)
	if err != nil {
		inv.Metrics.IncException(MessageUnresolvedPackage)
		return tally, err
	}

	inv.Metrics.IncScheduledWorkflows(MessageUnresolvedPackage, metrics.WorkflowSolver, tally.Solver)
	inv.Metrics.IncScheduledWorkflows(MessageUnresolvedPackage, metrics.WorkflowRevSolver, tally.RevSolver)
	inv.Metrics.IncScheduledWorkflows(MessageUnresolvedPackage, metrics.WorkflowSecurityIndicator, tally.Security)
	inv.Metrics.IncSuccess(MessageUnresolvedPackage)
	return tally, nil
}

func (inv *Investigator) dispatch(ctx context.Context, event UnresolvedPackageEvent) (Tally, error) {
	if event.PackageName == "" {
		return Tally{}, ErrMissingPackageName
	}

	registered, err := inv.Store.RegisteredIndexes(ctx)
	if err != nil {
		return Tally{}, err
	}

	indexes := selectIndexes(registered, event.IndexURLs)

	var tally Tally
	seen := make(seenSet)

	for _, indexURL := range indexes {
		versions := inv.candidateVersions(ctx, event.PackageName, event.PackageVersion, indexURL)

		// Latest version first.
		for _, version := range versions {
			isPresent, err := inv.Store.FactExists(ctx, event.PackageName, version, indexURL)
			if err != nil {
				return tally, err
			}

			solverScheduled, err := inv.learnUsingSolver(ctx, isPresent, event.PackageName, version, indexURL, event.SolverName)
			if err != nil {
				return tally, err
			}

			revSolverScheduled := inv.learnUsingRevSolver(ctx, isPresent, event.PackageName, version, seen)

			isAnalyzed, err := inv.Store.SecurityFactExists(ctx, event.PackageName, version, indexURL)
			if err != nil {
				return tally, err
			}
			securityScheduled := inv.learnAboutSecurity(ctx, isAnalyzed, event.PackageName, version, indexURL)

			tally.add(Tally{
				Solver:    solverScheduled,
				RevSolver: revSolverScheduled,
				Security:  securityScheduled,
			})
		}
	}

	return tally, nil
}

// selectIndexes picks the indexes to examine. Requested indexes are used
// only when every one of them is registered; a single unrecognized index
// falls back to the full registered set, so an unknown index is never
// queried.
func selectIndexes(registered, requested []string) []string {
	if len(requested) == 0 {
		log.Println("Using registered indexes")
		return registered
	}

	registeredSet := make(map[string]struct{}, len(registered))
	for _, url := range registered {
		registeredSet[url] = struct{}{}
	}

	for _, url := range requested {
		if _, ok := registeredSet[url]; !ok {
			log.Printf("Requested index %q is not registered, using registered indexes", url)
			return registered
		}
	}

	log.Println("Using requested indexes")
	return requested
}
