package investigate

// Message types label the metrics emitted per dispatch.
const (
	MessageUnresolvedPackage = "unresolved-package"
	MessagePackageRelease    = "package-release"
)

const versionWildcard = "*"

// UnresolvedPackageEvent reports a package/version/index combination a
// prior advisory run could not resolve. An empty or wildcard version means
// every published version is a candidate; empty index URLs mean all
// registered indexes.
type UnresolvedPackageEvent struct {
	PackageName    string   `json:"package_name" binding:"required"`
	PackageVersion string   `json:"package_version,omitempty"`
	IndexURLs      []string `json:"index_url,omitempty"`
	SolverName     string   `json:"solver,omitempty"`
}

// PackageReleaseEvent reports a freshly published package version.
type PackageReleaseEvent struct {
	PackageName    string `json:"package_name" binding:"required"`
	PackageVersion string `json:"package_version" binding:"required"`
	IndexURL       string `json:"index_url" binding:"required"`
}

// Tally counts the workflows scheduled by one dispatch.
type Tally struct {
	Solver    int `json:"solver"`
	RevSolver int `json:"revsolver"`
	Security  int `json:"security"`
}

func (t *Tally) add(other Tally) {
	t.Solver += other.Solver
	t.RevSolver += other.RevSolver
	t.Security += other.Security
}

func (t Tally) Total() int {
	return t.Solver + t.RevSolver + t.Security
}

type packageVersionPair struct {
	Name    string
	Version string
}

// seenSet tracks (package, version) pairs already considered for
// reverse-solving within one dispatch. Never shared across dispatches.
type seenSet map[packageVersionPair]struct{}

func (s seenSet) contains(pair packageVersionPair) bool {
	_, ok := s[pair]
	return ok
}

func (s seenSet) add(pair packageVersionPair) {
	s[pair] = struct{}{}
}
