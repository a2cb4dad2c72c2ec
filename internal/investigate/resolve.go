package investigate

import (
	"context"
	"log"
)

// candidateVersions resolves the versions to examine on one index. A
// pinned version is returned as-is without consulting the index; an empty
// or wildcard version expands to every published version, newest first. An
// index failure is non-fatal: the path is skipped with an empty result.
func (inv *Investigator) candidateVersions(ctx context.Context, packageName, packageVersion, indexURL string) []string {
	if packageVersion != "" && packageVersion != versionWildcard {
		return []string{packageVersion}
	}

	versions, err := inv.Index.SortedVersions(ctx, packageName, indexURL)
	if err != nil {
		log.Printf("Could not retrieve versions for package %s from index %s: %v", packageName, indexURL, err)
		return nil
	}
	return versions
}
