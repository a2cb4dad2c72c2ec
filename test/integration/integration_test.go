//go:build integration

package integration

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deptrace/investigator/internal/index"
	"github.com/deptrace/investigator/internal/investigate"
	"github.com/deptrace/investigator/internal/metrics"
	"github.com/deptrace/investigator/internal/scheduler"
	"github.com/deptrace/investigator/internal/store"
)

// End-to-end dispatch against a real knowledge graph and workflow
// controller. Requires GRAPH_URI and SCHEDULER_URL.
func TestDispatchFlow(t *testing.T) {
	_ = godotenv.Load("../../.env")

	uri := os.Getenv("GRAPH_URI")
	if uri == "" {
		t.Skip("Skipping integration test: GRAPH_URI not set")
	}
	schedulerURL := os.Getenv("SCHEDULER_URL")
	if schedulerURL == "" {
		t.Skip("Skipping integration test: SCHEDULER_URL not set")
	}

	graphStore, err := store.NewGraphStore(uri, os.Getenv("GRAPH_USER"), os.Getenv("GRAPH_PASSWORD"))
	require.NoError(t, err)
	defer graphStore.Close(context.Background())

	inv := investigate.New(
		graphStore,
		scheduler.NewClient(schedulerURL, os.Getenv("SCHEDULER_TOKEN")),
		index.NewClient(30*time.Second),
		metrics.NewRegistry(),
	)

	registered, err := graphStore.RegisteredIndexes(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, registered, "knowledge graph has no registered indexes")

	tally, err := inv.Dispatch(context.Background(), investigate.UnresolvedPackageEvent{
		PackageName:    "requests",
		PackageVersion: "2.28.0",
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, tally.Total(), 0)
	t.Logf("scheduled: solver=%d revsolver=%d security=%d", tally.Solver, tally.RevSolver, tally.Security)
}
