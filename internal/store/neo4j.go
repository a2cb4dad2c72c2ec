package store

import (
	"context"
	"fmt"
	"log"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type GraphStore struct {
	Driver neo4j.DriverWithContext
}

func NewGraphStore(uri, username, password string) (*GraphStore, error) {
	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(username, password, ""))
	if err != nil {
		return nil, err
	}

	if err := driver.VerifyConnectivity(context.Background()); err != nil {
		return nil, err
	}

	log.Println("Connected to knowledge graph")
	return &GraphStore{Driver: driver}, nil
}

func (s *GraphStore) Close(ctx context.Context) error {
	return s.Driver.Close(ctx)
}

func (s *GraphStore) executeQuery(ctx context.Context, query string, params map[string]interface{}) (neo4j.EagerResult, error) {
	result, err := neo4j.ExecuteQuery(ctx, s.Driver, query, params, neo4j.EagerResultTransformer)
	if err != nil {
		return neo4j.EagerResult{}, fmt.Errorf("failed to execute query: %w", err)
	}
	return *result, nil
}

// existenceQuery runs a query whose single record carries a boolean
// "present" column.
func (s *GraphStore) existenceQuery(ctx context.Context, query string, params map[string]interface{}) (bool, error) {
	result, err := s.executeQuery(ctx, query, params)
	if err != nil {
		return false, err
	}
	if len(result.Records) == 0 {
		return false, nil
	}
	present, ok := result.Records[0].Get("present")
	if !ok {
		return false, fmt.Errorf("existence query returned no 'present' column")
	}
	b, ok := present.(bool)
	if !ok {
		return false, fmt.Errorf("existence query returned non-boolean 'present': %v", present)
	}
	return b, nil
}

func (s *GraphStore) FactExists(ctx context.Context, packageName, packageVersion, indexURL string) (bool, error) {
	return s.existenceQuery(ctx, PackageVersionExistsQuery, map[string]interface{}{
		"name":      packageName,
		"version":   packageVersion,
		"index_url": indexURL,
	})
}

func (s *GraphStore) FactExistsForSolver(ctx context.Context, packageName, packageVersion, indexURL, solverName string) (bool, error) {
	return s.existenceQuery(ctx, SolvedPackageVersionExistsQuery, map[string]interface{}{
		"name":        packageName,
		"version":     packageVersion,
		"index_url":   indexURL,
		"solver_name": solverName,
	})
}

func (s *GraphStore) SecurityFactExists(ctx context.Context, packageName, packageVersion, indexURL string) (bool, error) {
	return s.existenceQuery(ctx, SecurityAggregationExistsQuery, map[string]interface{}{
		"name":      packageName,
		"version":   packageVersion,
		"index_url": indexURL,
	})
}

func (s *GraphStore) RegisteredIndexes(ctx context.Context) ([]string, error) {
	result, err := s.executeQuery(ctx, RegisteredIndexesQuery, nil)
	if err != nil {
		return nil, err
	}

	var urls []string
	for _, record := range result.Records {
		url, ok := record.Get("url")
		if !ok {
			continue
		}
		if u, ok := url.(string); ok {
			urls = append(urls, u)
		}
	}
	return urls, nil
}
