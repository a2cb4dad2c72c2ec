package index

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// PackageIndex lists the published versions of a package on an index.
type PackageIndex interface {
	// SortedVersions returns all published versions, newest first.
	SortedVersions(ctx context.Context, packageName, indexURL string) ([]string, error)
}

// Client queries PEP 691 simple-API JSON endpoints.
type Client struct {
	HTTPClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type projectResponse struct {
	Versions []string `json:"versions"`
}

func (c *Client) SortedVersions(ctx context.Context, packageName, indexURL string) ([]string, error) {
	url := strings.TrimRight(indexURL, "/") + "/" + packageName + "/"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.pypi.simple.v1+json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("index %s returned %d for package %s", indexURL, resp.StatusCode, packageName)
	}

	var project projectResponse
	if err := json.NewDecoder(resp.Body).Decode(&project); err != nil {
		return nil, fmt.Errorf("failed to decode index response: %w", err)
	}

	versions := project.Versions
	SortDescending(versions)
	return versions, nil
}

// SortDescending orders versions newest first. Versions that parse as
// semver are compared semantically; unparseable ones sort after all
// parseable ones, in reverse lexicographic order.
func SortDescending(versions []string) {
	parsed := make(map[string]*semver.Version, len(versions))
	for _, v := range versions {
		if sv, err := semver.NewVersion(v); err == nil {
			parsed[v] = sv
		}
	}

	sort.SliceStable(versions, func(i, j int) bool {
		vi, okI := parsed[versions[i]]
		vj, okJ := parsed[versions[j]]
		switch {
		case okI && okJ:
			return vi.GreaterThan(vj)
		case okI:
			return true
		case okJ:
			return false
		default:
			return versions[i] > versions[j]
		}
	})
}
