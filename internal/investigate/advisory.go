package investigate

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
)

// ErrNoUnresolvedPackages signals an adviser report that names no
// unresolved packages matching the project's declared dependencies. This
// is "nothing to do", distinct from both success and malformed input.
var ErrNoUnresolvedPackages = errors.New("no unresolved packages identified")

// RuntimeEnvironment is the environment an adviser run targeted.
type RuntimeEnvironment struct {
	OperatingSystem struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"operating_system"`
	PythonVersion string `json:"python_version"`
}

// SolverName derives the solver backend matching this environment, e.g.
// "solver-fedora-32-py38". Empty when the environment is underspecified.
func (e *RuntimeEnvironment) SolverName() string {
	if e == nil || e.OperatingSystem.Name == "" || e.OperatingSystem.Version == "" || e.PythonVersion == "" {
		return ""
	}
	pyVersion := strings.ReplaceAll(e.PythonVersion, ".", "")
	return fmt.Sprintf("solver-%s-%s-py%s", e.OperatingSystem.Name, e.OperatingSystem.Version, pyVersion)
}

type adviserDocument struct {
	Result struct {
		Report *struct {
			ErrorDetails struct {
				Unresolved []string `json:"unresolved"`
			} `json:"_ERROR_DETAILS"`
		} `json:"report"`
		Parameters struct {
			Project struct {
				RuntimeEnvironment *RuntimeEnvironment `json:"runtime_environment"`
				Requirements       struct {
					Packages    map[string]json.RawMessage `json:"packages"`
					DevPackages map[string]json.RawMessage `json:"dev-packages"`
				} `json:"requirements"`
			} `json:"project"`
		} `json:"parameters"`
	} `json:"result"`
}

// UnresolvedReport is the outcome of inspecting an adviser run document:
// the unresolved packages matched against the project's declared
// dependencies, each with its version specifier, plus the solver backend
// derived from the run's runtime environment.
type UnresolvedReport struct {
	Packages   map[string]string
	SolverName string
}

// InvestigateReportFile reads an adviser run JSON document and extracts
// the unresolved packages to solve with priority. Returns
// ErrNoUnresolvedPackages when the report flags nothing, and a plain error
// when the file is missing or malformed.
func InvestigateReportFile(path string) (*UnresolvedReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read adviser report %s: %w", path, err)
	}

	var doc adviserDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("cannot parse adviser report %s: %w", path, err)
	}

	var unresolved []string
	if doc.Result.Report != nil {
		unresolved = doc.Result.Report.ErrorDetails.Unresolved
	}
	if len(unresolved) == 0 {
		log.Println("No packages to be solved with priority identified")
		return nil, ErrNoUnresolvedPackages
	}

	project := doc.Result.Parameters.Project

	toSolve := make(map[string]string)
	for _, packageName := range unresolved {
		if raw, ok := project.Requirements.Packages[packageName]; ok {
			toSolve[packageName] = requirementSpecifier(raw)
		}
		if raw, ok := project.Requirements.DevPackages[packageName]; ok {
			toSolve[packageName] = requirementSpecifier(raw)
		}
	}
	if len(toSolve) == 0 {
		return nil, ErrNoUnresolvedPackages
	}

	log.Printf("Unresolved packages identified: %v", toSolve)

	return &UnresolvedReport{
		Packages:   toSolve,
		SolverName: project.RuntimeEnvironment.SolverName(),
	}, nil
}

// PinnedVersion reduces a requirement specifier to a concrete version when
// it pins exactly one ("==1.0" or "===1.0" gives "1.0"), or the wildcard
// otherwise. Range specifiers cannot name a single candidate version.
func PinnedVersion(specifier string) string {
	for _, prefix := range []string{"===", "=="} {
		if strings.HasPrefix(specifier, prefix) {
			version := strings.TrimSpace(strings.TrimPrefix(specifier, prefix))
			if version != "" && !strings.ContainsAny(version, "*,<>!~") {
				return version
			}
			return versionWildcard
		}
	}
	return versionWildcard
}

// requirementSpecifier extracts the version specifier from a Pipfile-style
// requirement entry, which is either a bare string ("==1.0") or a table
// with a "version" key. Anything else means unpinned.
func requirementSpecifier(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var table struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(raw, &table); err == nil && table.Version != "" {
		return table.Version
	}

	return versionWildcard
}
