package investigate

import (
	"context"

	"github.com/deptrace/investigator/internal/metrics"
)

// DispatchRelease handles a package-release event. A fresh release is by
// definition unknown to the store, so all solver backends are scheduled
// straight away without probing.
func (inv *Investigator) DispatchRelease(ctx context.Context, event PackageReleaseEvent) (Tally, error) {
	if event.PackageName == "" {
		inv.Metrics.IncException(MessagePackageRelease)
		return Tally{}, ErrMissingPackageName
	}

	scheduled, err := inv.learnUsingSolver(ctx, false, event.PackageName, event.PackageVersion, event.IndexURL, "")
	if err != nil {
		inv.Metrics.IncException(MessagePackageRelease)
		return Tally{}, err
	}
	tally := Tally{Solver: scheduled}

	inv.Metrics.IncScheduledWorkflows(MessagePackageRelease, metrics.WorkflowSolver, scheduled)
	inv.Metrics.IncSuccess(MessagePackageRelease)
	return tally, nil
}
