package investigate

import (
	"context"
	"fmt"
)

func factKey(name, version, indexURL string) string {
	return fmt.Sprintf("%s|%s|%s", name, version, indexURL)
}

type MockStore struct {
	Facts         map[string]bool // factKey -> triple known
	SolvedFacts   map[string]bool // factKey + "|" + solver name
	SecurityFacts map[string]bool // factKey -> aggregation exists
	Indexes       []string
	IndexesErr    error
	FactErr       error
}

func (m *MockStore) FactExists(ctx context.Context, name, version, indexURL string) (bool, error) {
	if m.FactErr != nil {
		return false, m.FactErr
	}
	return m.Facts[factKey(name, version, indexURL)], nil
}

func (m *MockStore) FactExistsForSolver(ctx context.Context, name, version, indexURL, solverName string) (bool, error) {
	if m.FactErr != nil {
		return false, m.FactErr
	}
	return m.SolvedFacts[factKey(name, version, indexURL)+"|"+solverName], nil
}

func (m *MockStore) SecurityFactExists(ctx context.Context, name, version, indexURL string) (bool, error) {
	if m.FactErr != nil {
		return false, m.FactErr
	}
	return m.SecurityFacts[factKey(name, version, indexURL)], nil
}

func (m *MockStore) RegisteredIndexes(ctx context.Context) ([]string, error) {
	if m.IndexesErr != nil {
		return nil, m.IndexesErr
	}
	return m.Indexes, nil
}

func (m *MockStore) Close(ctx context.Context) error {
	return nil
}

type MockScheduler struct {
	Solvers        []string
	SolverNamesErr error
	SolverErrs     map[string]error // per backend
	AllSolversErr  error
	RevSolverErr   error
	SecurityErr    error

	SolverCalls    []string // "solver|packages|index"
	AllSolverCalls []string // "packages|index"
	RevSolverCalls []string // "name|version"
	SecurityCalls  []string // "name|version|index"
}

func (m *MockScheduler) ScheduleSolver(ctx context.Context, solverName, packages string, indexes []string, transitive, debug bool) (string, error) {
	if err := m.SolverErrs[solverName]; err != nil {
		return "", err
	}
	m.SolverCalls = append(m.SolverCalls, fmt.Sprintf("%s|%s|%s", solverName, packages, indexes[0]))
	return "analysis-" + solverName, nil
}

func (m *MockScheduler) ScheduleAllSolvers(ctx context.Context, packages string, indexes []string) ([]string, error) {
	if m.AllSolversErr != nil {
		return nil, m.AllSolversErr
	}
	m.AllSolverCalls = append(m.AllSolverCalls, fmt.Sprintf("%s|%s", packages, indexes[0]))
	ids := make([]string, len(m.Solvers))
	for i := range m.Solvers {
		ids[i] = fmt.Sprintf("analysis-%d", i)
	}
	return ids, nil
}

func (m *MockScheduler) ScheduleRevSolver(ctx context.Context, name, version string, debug bool) (string, error) {
	if m.RevSolverErr != nil {
		return "", m.RevSolverErr
	}
	m.RevSolverCalls = append(m.RevSolverCalls, name+"|"+version)
	return "analysis-rev", nil
}

func (m *MockScheduler) ScheduleSecurityIndicator(ctx context.Context, name, version, indexURL, aggregationFunction string) (string, error) {
	if m.SecurityErr != nil {
		return "", m.SecurityErr
	}
	m.SecurityCalls = append(m.SecurityCalls, factKey(name, version, indexURL))
	return "analysis-si", nil
}

func (m *MockScheduler) SolverNames(ctx context.Context) ([]string, error) {
	if m.SolverNamesErr != nil {
		return nil, m.SolverNamesErr
	}
	return m.Solvers, nil
}

type MockIndex struct {
	Versions map[string][]string // package name -> published versions, newest first
	Errs     map[string]error    // per index URL
	Calls    []string            // index URLs queried
}

func (m *MockIndex) SortedVersions(ctx context.Context, packageName, indexURL string) ([]string, error) {
	m.Calls = append(m.Calls, indexURL)
	if err := m.Errs[indexURL]; err != nil {
		return nil, err
	}
	return m.Versions[packageName], nil
}
