package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/deptrace/investigator/internal/investigate"
	"github.com/deptrace/investigator/internal/server"
)

// One-shot entry point: inspect an adviser run document and schedule the
// knowledge-collection workflows for every unresolved package it names.
// Exits 2 when the report identifies nothing to solve.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults")
	}

	reportPath := os.Getenv("JSON_FILE_PATH")
	if len(os.Args) > 1 {
		reportPath = os.Args[1]
	}
	if reportPath == "" {
		log.Fatal("No adviser report given: pass a path or set JSON_FILE_PATH")
	}

	report, err := investigate.InvestigateReportFile(reportPath)
	if err != nil {
		if errors.Is(err, investigate.ErrNoUnresolvedPackages) {
			log.Println("Nothing to do")
			os.Exit(2)
		}
		log.Fatalf("Failed to inspect adviser report: %v", err)
	}

	inv, _ := server.Bootstrap()

	ctx := context.Background()
	for packageName, specifier := range report.Packages {
		event := investigate.UnresolvedPackageEvent{
			PackageName:    packageName,
			PackageVersion: investigate.PinnedVersion(specifier),
			SolverName:     report.SolverName,
		}

		tally, err := inv.Dispatch(ctx, event)
		if err != nil {
			log.Printf("Failed to dispatch %s: %v", packageName, err)
			continue
		}
		log.Printf("Package %s: scheduled %d solver, %d revsolver, %d security workflows",
			packageName, tally.Solver, tally.RevSolver, tally.Security)
	}
}
