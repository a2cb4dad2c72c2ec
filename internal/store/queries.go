package store

const (
	PackageVersionExistsQuery = `
		MATCH (v:PackageVersion {name: $name, version: $version, index_url: $index_url})
		RETURN count(v) > 0 AS present
	`

	SolvedPackageVersionExistsQuery = `
		MATCH (s:Solver {name: $solver_name})-[:SOLVED]->
			(v:PackageVersion {name: $name, version: $version, index_url: $index_url})
		RETURN count(v) > 0 AS present
	`

	SecurityAggregationExistsQuery = `
		MATCH (v:PackageVersion {name: $name, version: $version, index_url: $index_url})
			-[:HAS_SECURITY_AGGREGATION]->(a:SecurityAggregation)
		RETURN count(a) > 0 AS present
	`

	RegisteredIndexesQuery = `
		MATCH (i:PackageIndex)
		WHERE i.enabled
		RETURN i.url AS url
		ORDER BY i.url
	`
)
