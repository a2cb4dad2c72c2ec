package server

import (
	"context"
)

type stubStore struct {
	indexes []string
}

func (s *stubStore) FactExists(ctx context.Context, name, version, indexURL string) (bool, error) {
	return false, nil
}

func (s *stubStore) FactExistsForSolver(ctx context.Context, name, version, indexURL, solverName string) (bool, error) {
	return false, nil
}

func (s *stubStore) SecurityFactExists(ctx context.Context, name, version, indexURL string) (bool, error) {
	return false, nil
}

func (s *stubStore) RegisteredIndexes(ctx context.Context) ([]string, error) {
	return s.indexes, nil
}

func (s *stubStore) Close(ctx context.Context) error {
	return nil
}

type stubScheduler struct {
	solvers []string
}

func (s *stubScheduler) ScheduleSolver(ctx context.Context, solverName, packages string, indexes []string, transitive, debug bool) (string, error) {
	return "analysis-1", nil
}

func (s *stubScheduler) ScheduleAllSolvers(ctx context.Context, packages string, indexes []string) ([]string, error) {
	ids := make([]string, len(s.solvers))
	for i := range s.solvers {
		ids[i] = "analysis-1"
	}
	return ids, nil
}

func (s *stubScheduler) ScheduleRevSolver(ctx context.Context, name, version string, debug bool) (string, error) {
	return "analysis-2", nil
}

func (s *stubScheduler) ScheduleSecurityIndicator(ctx context.Context, name, version, indexURL, aggregationFunction string) (string, error) {
	return "analysis-3", nil
}

func (s *stubScheduler) SolverNames(ctx context.Context) ([]string, error) {
	return s.solvers, nil
}

type stubIndex struct {
	versions []string
}

func (s *stubIndex) SortedVersions(ctx context.Context, packageName, indexURL string) ([]string, error) {
	return s.versions, nil
}
